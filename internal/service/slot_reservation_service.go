package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrSlotHeld is returned when another in-flight booking request already
// holds the requested slot.
var ErrSlotHeld = errors.New("slot is held by another booking request")

// releaseIfOwnerScript deletes a hold only if the caller still owns it.
// Running it as a Lua script keeps the GET+DEL pair atomic inside Redis, so
// an expired hold re-acquired by someone else is never deleted by mistake.
var releaseIfOwnerScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

const slotHoldKeyPrefix = "slot:hold:"

// SlotReservationService serializes concurrent booking attempts on the same
// slot with a short-lived Redis hold. The hold spans the conflict re-check
// and the booking insert; the database row is the durable authority, the
// hold only closes the check-then-insert window. A Redis outage degrades to
// plain write-time re-validation, it never blocks bookings.
type SlotReservationService struct {
	redisClient *redis.Client
	log         *logrus.Logger
	holdTTL     time.Duration
}

func NewSlotReservationService(redisClient *redis.Client, log *logrus.Logger, holdTTL time.Duration) *SlotReservationService {
	if holdTTL <= 0 {
		holdTTL = 10 * time.Second
	}
	return &SlotReservationService{
		redisClient: redisClient,
		log:         log,
		holdTTL:     holdTTL,
	}
}

func holdKey(providerID uuid.UUID, start time.Time, durationMin int) string {
	return fmt.Sprintf("%s%s:%d:%d", slotHoldKeyPrefix, providerID, start.UTC().Unix(), durationMin)
}

// Acquire takes the hold for one provider/start/duration triple. Returns an
// owner token to release with, ErrSlotHeld when the slot is already held,
// or the underlying error when Redis is unreachable.
func (s *SlotReservationService) Acquire(ctx context.Context, providerID uuid.UUID, start time.Time, durationMin int) (string, error) {
	token := uuid.New().String()
	key := holdKey(providerID, start, durationMin)

	ok, err := s.redisClient.SetNX(ctx, key, token, s.holdTTL).Result()
	if err != nil {
		return "", fmt.Errorf("acquire slot hold %s: %w", key, err)
	}
	if !ok {
		return "", ErrSlotHeld
	}

	s.log.Debugf("Acquired slot hold %s", key)
	return token, nil
}

// Release gives the hold back early. The TTL covers callers that die before
// releasing, so failure here is logged and swallowed.
func (s *SlotReservationService) Release(ctx context.Context, providerID uuid.UUID, start time.Time, durationMin int, token string) {
	if token == "" {
		return
	}
	key := holdKey(providerID, start, durationMin)

	if err := releaseIfOwnerScript.Run(ctx, s.redisClient, []string{key}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
		s.log.Warnf("Failed to release slot hold %s (expires in %v anyway): %+v", key, s.holdTTL, err)
		return
	}
	s.log.Debugf("Released slot hold %s", key)
}

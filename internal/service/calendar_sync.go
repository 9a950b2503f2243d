package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CalendarSync refreshes a provider's synced CalendarEvent rows from the
// connected external calendar before busy time is computed. Implementations
// wrap provider-specific API clients; the engine only needs a best-effort
// refresh and never treats a failure here as fatal.
type CalendarSync interface {
	SyncForBookingLookup(ctx context.Context, providerID uuid.UUID, from, to time.Time) (synced int, err error)
}

// NoopCalendarSync is the default wiring for providers without a connected
// external calendar.
type NoopCalendarSync struct{}

func (NoopCalendarSync) SyncForBookingLookup(ctx context.Context, providerID uuid.UUID, from, to time.Time) (int, error) {
	return 0, nil
}

// SyncBestEffort runs a calendar resync bounded by timeout. Failure or
// timeout is logged and swallowed so slot computation proceeds with
// possibly-stale busy data instead of blocking the request.
func SyncBestEffort(ctx context.Context, log *logrus.Logger, sync CalendarSync, providerID uuid.UUID, from, to time.Time, timeout time.Duration) {
	if sync == nil {
		return
	}

	syncCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	synced, err := sync.SyncForBookingLookup(syncCtx, providerID, from, to)
	if err != nil {
		log.Warnf("Calendar resync degraded for provider %s (continuing with stale busy data): %+v", providerID, err)
		return
	}
	if synced > 0 {
		log.Debugf("Calendar resync refreshed %d event(s) for provider %s", synced, providerID)
	}
}

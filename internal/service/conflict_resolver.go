package service

import (
	"context"
	"time"

	"go-appointment-booking/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ConflictReason classifies what a requested slot collided with.
type ConflictReason string

const (
	ConflictBookingOverlap       ConflictReason = "BOOKING_OVERLAP"
	ConflictCalendarEventOverlap ConflictReason = "CALENDAR_EVENT_OVERLAP"
)

// Conflict describes a booking-time collision. A nil *Conflict means the
// slot is free.
type Conflict struct {
	Reason ConflictReason `json:"reason"`
	Start  time.Time      `json:"start"`
	End    time.Time      `json:"end"`
}

// FilterAvailable drops candidates whose [start, start+duration) window
// intersects any busy interval. Buffer padding is already baked into the
// intervals by the aggregator.
func FilterAvailable(candidates []SlotCandidate, busy []Interval) []SlotCandidate {
	if len(busy) == 0 {
		return candidates
	}

	var out []SlotCandidate
	for _, c := range candidates {
		end := c.StartUTC.Add(time.Duration(c.Duration) * time.Minute)
		blocked := false
		for _, iv := range busy {
			if iv.Overlaps(c.StartUTC, end) {
				blocked = true
				break
			}
		}
		if !blocked {
			out = append(out, c)
		}
	}
	return out
}

// ConflictResolver re-checks a requested slot against the current store
// state. Slots are computed ahead of time and go stale; this is the
// authority consulted again at booking time.
type ConflictResolver struct {
	log        *logrus.Logger
	aggregator *BusyTimeAggregator
}

func NewConflictResolver(log *logrus.Logger, aggregator *BusyTimeAggregator) *ConflictResolver {
	return &ConflictResolver{
		log:        log,
		aggregator: aggregator,
	}
}

// ValidateBookingRequest returns the first conflict for the requested
// window, or nil if it is bookable. The buffer applies to the existing
// bookings' side only; the new request is not self-padded.
func (r *ConflictResolver) ValidateBookingRequest(ctx context.Context, db *gorm.DB, provider *entity.Provider, start time.Time, durationMin int) (*Conflict, error) {
	end := start.Add(time.Duration(durationMin) * time.Minute)

	busy, err := r.aggregator.BusyIntervals(ctx, db, provider, start, end)
	if err != nil {
		return nil, err
	}

	for _, iv := range busy {
		if !iv.Overlaps(start, end) {
			continue
		}
		reason := ConflictBookingOverlap
		if iv.Source == IntervalSourceCalendarEvent {
			reason = ConflictCalendarEventOverlap
		}
		return &Conflict{Reason: reason, Start: iv.Start, End: iv.End}, nil
	}
	return nil, nil
}

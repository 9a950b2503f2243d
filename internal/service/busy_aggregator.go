package service

import (
	"context"
	"sort"
	"time"

	"go-appointment-booking/internal/domain/entity"
	"go-appointment-booking/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// IntervalSource tags where a busy interval came from.
type IntervalSource string

const (
	IntervalSourceBooking       IntervalSource = "booking"
	IntervalSourceCalendarEvent IntervalSource = "calendar_event"
)

// Interval is a half-open [Start, End) UTC busy range.
type Interval struct {
	Start  time.Time
	End    time.Time
	Source IntervalSource
}

// Overlaps reports whether the interval intersects [start, end).
func (iv Interval) Overlaps(start, end time.Time) bool {
	return start.Before(iv.End) && iv.Start.Before(end)
}

// bookingQueryPad widens the booking query window so a booking scheduled
// just outside the range still contributes its duration-plus-buffer overlap.
const bookingQueryPad = 2 * time.Hour

// BusyTimeAggregator collects everything that occupies a provider's time in
// a range: pending/confirmed bookings padded by the provider's buffer, and
// synced calendar events taken as hard busy time with no padding.
type BusyTimeAggregator struct {
	log         *logrus.Logger
	bookingRepo repository.BookingRepository
	eventRepo   repository.CalendarEventRepository
}

func NewBusyTimeAggregator(log *logrus.Logger, bookingRepo repository.BookingRepository, eventRepo repository.CalendarEventRepository) *BusyTimeAggregator {
	return &BusyTimeAggregator{
		log:         log,
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
	}
}

// BusyIntervals returns the provider's busy time overlapping [from, to),
// sorted by start.
func (a *BusyTimeAggregator) BusyIntervals(ctx context.Context, db *gorm.DB, provider *entity.Provider, from, to time.Time) ([]Interval, error) {
	bookings, err := a.bookingRepo.FindActiveInRange(ctx, db, provider.ID, from.Add(-bookingQueryPad), to.Add(bookingQueryPad))
	if err != nil {
		return nil, err
	}

	buffer := provider.BufferTime()
	var intervals []Interval
	for _, b := range bookings {
		iv := Interval{
			Start:  b.ScheduledAt.Add(-buffer),
			End:    b.EndsAt().Add(buffer),
			Source: IntervalSourceBooking,
		}
		if iv.Overlaps(from, to) {
			intervals = append(intervals, iv)
		}
	}

	events, err := a.eventRepo.FindOverlapping(ctx, db, provider.ID, from, to)
	if err != nil {
		return nil, err
	}
	for _, e := range events {
		// Calendar events block entirely, independent of the legacy
		// allow-bookings flag, and carry no buffer.
		intervals = append(intervals, Interval{
			Start:  e.StartTime,
			End:    e.EndTime,
			Source: IntervalSourceCalendarEvent,
		})
	}

	sort.Slice(intervals, func(i, j int) bool { return intervals[i].Start.Before(intervals[j].Start) })
	return intervals, nil
}

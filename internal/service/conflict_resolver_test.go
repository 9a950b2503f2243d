package service

import (
	"context"
	"testing"
	"time"

	"go-appointment-booking/internal/domain/entity"

	"github.com/google/uuid"
)

func TestValidateBookingRequestBufferEdges(t *testing.T) {
	// Existing booking 10:00-10:30 with a 15 minute buffer blocks
	// [09:45, 10:45).
	provider := &entity.Provider{ID: uuid.New(), BufferTimeMinutes: 15}
	scheduled := time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)

	bookingRepo := &stubBookingRepo{bookings: []entity.Booking{
		{ID: uuid.New(), ScheduledAt: scheduled, Duration: 30, Status: entity.BookingStatusConfirmed},
	}}
	aggregator := NewBusyTimeAggregator(newTestLogger(), bookingRepo, &stubEventRepo{})
	resolver := NewConflictResolver(newTestLogger(), aggregator)

	tests := []struct {
		name     string
		start    time.Time
		conflict bool
	}{
		{"inside buffered window", time.Date(2024, 6, 3, 10, 35, 0, 0, time.UTC), true},
		{"exactly at buffered end", time.Date(2024, 6, 3, 10, 45, 0, 0, time.UTC), false},
		{"request ending at buffered start", time.Date(2024, 6, 3, 9, 15, 0, 0, time.UTC), false},
		{"request overlapping leading buffer", time.Date(2024, 6, 3, 9, 30, 0, 0, time.UTC), true},
		{"same slot", scheduled, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conflict, err := resolver.ValidateBookingRequest(context.Background(), nil, provider, tt.start, 30)
			if err != nil {
				t.Fatalf("ValidateBookingRequest() error = %v", err)
			}
			if (conflict != nil) != tt.conflict {
				t.Errorf("conflict = %v, want conflict=%v", conflict, tt.conflict)
			}
			if conflict != nil && conflict.Reason != ConflictBookingOverlap {
				t.Errorf("reason = %s, want %s", conflict.Reason, ConflictBookingOverlap)
			}
		})
	}
}

func TestValidateBookingRequestCalendarEvent(t *testing.T) {
	provider := &entity.Provider{ID: uuid.New()}
	eventStart := time.Date(2024, 6, 3, 13, 0, 0, 0, time.UTC)

	eventRepo := &stubEventRepo{events: []entity.CalendarEvent{
		{ID: 1, StartTime: eventStart, EndTime: eventStart.Add(time.Hour)},
	}}
	aggregator := NewBusyTimeAggregator(newTestLogger(), &stubBookingRepo{}, eventRepo)
	resolver := NewConflictResolver(newTestLogger(), aggregator)

	conflict, err := resolver.ValidateBookingRequest(context.Background(), nil, provider, eventStart.Add(30*time.Minute), 30)
	if err != nil {
		t.Fatalf("ValidateBookingRequest() error = %v", err)
	}
	if conflict == nil {
		t.Fatal("expected a conflict inside the event window")
	}
	if conflict.Reason != ConflictCalendarEventOverlap {
		t.Errorf("reason = %s, want %s", conflict.Reason, ConflictCalendarEventOverlap)
	}

	// Back to back with the event is fine.
	conflict, err = resolver.ValidateBookingRequest(context.Background(), nil, provider, eventStart.Add(time.Hour), 30)
	if err != nil {
		t.Fatalf("ValidateBookingRequest() error = %v", err)
	}
	if conflict != nil {
		t.Errorf("unexpected conflict for a slot starting at event end: %+v", conflict)
	}
}

func TestFilterAvailable(t *testing.T) {
	base := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	candidates := []SlotCandidate{
		{LocalTime: "09:00", StartUTC: base, Duration: 30},
		{LocalTime: "09:30", StartUTC: base.Add(30 * time.Minute), Duration: 30},
		{LocalTime: "10:00", StartUTC: base.Add(60 * time.Minute), Duration: 30},
	}
	busy := []Interval{
		{Start: base.Add(30 * time.Minute), End: base.Add(60 * time.Minute), Source: IntervalSourceBooking},
	}

	out := FilterAvailable(candidates, busy)
	if len(out) != 2 {
		t.Fatalf("got %d candidates, want 2", len(out))
	}
	if out[0].LocalTime != "09:00" || out[1].LocalTime != "10:00" {
		t.Errorf("surviving slots = %s, %s; want 09:00 and 10:00", out[0].LocalTime, out[1].LocalTime)
	}

	if got := FilterAvailable(candidates, nil); len(got) != len(candidates) {
		t.Error("no busy time must pass all candidates through")
	}
}

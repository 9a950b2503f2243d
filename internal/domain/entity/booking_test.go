package entity

import (
	"testing"
	"time"
)

func TestBookingCanTransitionTo(t *testing.T) {
	tests := []struct {
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusPending, BookingStatusCancelled, true},
		{BookingStatusPending, BookingStatusRescheduled, true},
		{BookingStatusConfirmed, BookingStatusCancelled, true},
		{BookingStatusConfirmed, BookingStatusRescheduled, false},
		{BookingStatusConfirmed, BookingStatusPending, false},
		{BookingStatusCancelled, BookingStatusConfirmed, false},
		{BookingStatusCancelled, BookingStatusPending, false},
		{BookingStatusRescheduled, BookingStatusConfirmed, false},
		{BookingStatusRescheduled, BookingStatusCancelled, false},
	}

	for _, tt := range tests {
		b := &Booking{Status: tt.from}
		if got := b.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestBookingEndsAt(t *testing.T) {
	start := time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)
	b := &Booking{ScheduledAt: start, Duration: 45}
	if want := start.Add(45 * time.Minute); !b.EndsAt().Equal(want) {
		t.Errorf("EndsAt() = %s, want %s", b.EndsAt(), want)
	}
}

func TestProviderIsDurationAllowed(t *testing.T) {
	p := &Provider{DefaultBookingDuration: 30}

	// Empty set permits only the default.
	if !p.IsDurationAllowed(30) {
		t.Error("default duration must be allowed with an empty set")
	}
	if p.IsDurationAllowed(60) {
		t.Error("non-default duration must be rejected with an empty set")
	}

	p.AllowedDurations = IntList{15, 60}
	if !p.IsDurationAllowed(60) {
		t.Error("listed duration must be allowed")
	}
	if p.IsDurationAllowed(30) {
		t.Error("an explicit set replaces the default, not extends it")
	}
}

func TestProviderLocationCoversDate(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatal(err)
		}
		return d
	}
	ptr := func(t time.Time) *time.Time { return &t }

	open := &ProviderLocation{}
	if !open.CoversDate(day("2024-06-03")) {
		t.Error("open-ended location covers everything")
	}

	bounded := &ProviderLocation{
		StartDate: ptr(day("2024-06-01")),
		EndDate:   ptr(day("2024-06-10")),
	}
	if !bounded.CoversDate(day("2024-06-01")) || !bounded.CoversDate(day("2024-06-10")) {
		t.Error("window bounds are inclusive")
	}
	if bounded.CoversDate(day("2024-05-31")) || bounded.CoversDate(day("2024-06-11")) {
		t.Error("dates outside the window must not be covered")
	}

	// Time-of-day on the stored bound must not matter.
	noisy := &ProviderLocation{
		StartDate: ptr(day("2024-06-01").Add(23 * time.Hour)),
	}
	if !noisy.CoversDate(day("2024-06-01")) {
		t.Error("date comparison must ignore time of day")
	}
}

package service

import (
	"testing"
	"time"

	"go-appointment-booking/internal/domain/entity"
)

func TestGenerateSlotsBasicWindow(t *testing.T) {
	windows := []entity.TimeSlot{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", IsEnabled: true},
	}
	day := date("2024-06-03") // a Monday
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	slots := GenerateSlots(windows, day, 30, 15, time.UTC, now, 15*time.Minute)

	// 09:00 through 16:30 inclusive at 15-minute steps.
	if len(slots) != 31 {
		t.Fatalf("got %d slots, want 31", len(slots))
	}
	if slots[0].LocalTime != "09:00" {
		t.Errorf("first slot = %s, want 09:00", slots[0].LocalTime)
	}
	if last := slots[len(slots)-1]; last.LocalTime != "16:30" {
		t.Errorf("last slot = %s, want 16:30 (start+duration must fit in window)", last.LocalTime)
	}
}

func TestGenerateSlotsStepEqualsDuration(t *testing.T) {
	windows := []entity.TimeSlot{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", IsEnabled: true},
	}
	day := date("2024-06-03")
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	slots := GenerateSlots(windows, day, 30, 30, time.UTC, now, 15*time.Minute)

	// Back-to-back half-hour appointments: 09:00 through 16:30.
	if len(slots) != 16 {
		t.Fatalf("got %d slots, want 16", len(slots))
	}
	if slots[0].LocalTime != "09:00" || slots[len(slots)-1].LocalTime != "16:30" {
		t.Errorf("slot range = %s..%s, want 09:00..16:30", slots[0].LocalTime, slots[len(slots)-1].LocalTime)
	}
}

func TestGenerateSlotsHourlyDuration(t *testing.T) {
	windows := []entity.TimeSlot{
		{StartTime: "09:00", EndTime: "17:00", IsEnabled: true},
	}
	day := date("2024-06-03")
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	slots := GenerateSlots(windows, day, 60, 30, time.UTC, now, 15*time.Minute)

	// 09:00 through 16:00 inclusive at 30-minute steps.
	if len(slots) != 15 {
		t.Fatalf("got %d slots, want 15", len(slots))
	}
	if last := slots[len(slots)-1]; last.LocalTime != "16:00" {
		t.Errorf("last slot = %s, want 16:00", last.LocalTime)
	}
}

func TestGenerateSlotsLeadTimeCutoff(t *testing.T) {
	windows := []entity.TimeSlot{
		{StartTime: "08:00", EndTime: "10:00", IsEnabled: true},
	}
	day := date("2024-06-03")
	// 08:05 now, 15 minute lead time: the 08:15 slot is 10 minutes away
	// and excluded, 08:30 is 25 minutes away and included.
	now := time.Date(2024, 6, 3, 8, 5, 0, 0, time.UTC)

	slots := GenerateSlots(windows, day, 30, 15, time.UTC, now, 15*time.Minute)

	if len(slots) == 0 {
		t.Fatal("expected slots after the cutoff")
	}
	if slots[0].LocalTime != "08:30" {
		t.Errorf("first slot = %s, want 08:30", slots[0].LocalTime)
	}

	// A slot exactly on the cutoff boundary is excluded.
	now = time.Date(2024, 6, 3, 8, 15, 0, 0, time.UTC)
	slots = GenerateSlots(windows, day, 30, 15, time.UTC, now, 15*time.Minute)
	if slots[0].LocalTime != "08:45" {
		t.Errorf("first slot = %s, want 08:45 (08:30 sits exactly on the cutoff)", slots[0].LocalTime)
	}
}

func TestGenerateSlotsTimezoneMaterialization(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatal(err)
	}
	windows := []entity.TimeSlot{
		{StartTime: "09:00", EndTime: "10:00", IsEnabled: true},
	}
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	// January: EST, UTC-5.
	winter := GenerateSlots(windows, date("2024-01-15"), 30, 15, loc, now, 15*time.Minute)
	if len(winter) == 0 {
		t.Fatal("expected winter slots")
	}
	if want := time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC); !winter[0].StartUTC.Equal(want) {
		t.Errorf("winter 09:00 local = %s UTC, want %s", winter[0].StartUTC, want)
	}

	// July: EDT, UTC-4. Same wall clock, different instant.
	summer := GenerateSlots(windows, date("2024-07-15"), 30, 15, loc, now, 15*time.Minute)
	if len(summer) == 0 {
		t.Fatal("expected summer slots")
	}
	if want := time.Date(2024, 7, 15, 13, 0, 0, 0, time.UTC); !summer[0].StartUTC.Equal(want) {
		t.Errorf("summer 09:00 local = %s UTC, want %s", summer[0].StartUTC, want)
	}
	if winter[0].LocalTime != summer[0].LocalTime {
		t.Error("local wall clock must be stable across DST")
	}
}

func TestGenerateSlotsOverlappingWindowsDedupe(t *testing.T) {
	windows := []entity.TimeSlot{
		{StartTime: "09:00", EndTime: "12:00", IsEnabled: true},
		{StartTime: "10:00", EndTime: "13:00", IsEnabled: true},
	}
	day := date("2024-06-03")
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	slots := GenerateSlots(windows, day, 30, 30, time.UTC, now, 0)

	seen := make(map[string]bool)
	for _, s := range slots {
		if seen[s.LocalTime] {
			t.Fatalf("duplicate slot %s from overlapping windows", s.LocalTime)
		}
		seen[s.LocalTime] = true
	}
	// 09:00 through 12:30 at 30-minute steps.
	if len(slots) != 8 {
		t.Errorf("got %d slots, want 8", len(slots))
	}
}

func TestGenerateSlotsSkipsMalformedWindows(t *testing.T) {
	windows := []entity.TimeSlot{
		{StartTime: "bogus", EndTime: "10:00", IsEnabled: true},
		{StartTime: "09:00", EndTime: "10:00", IsEnabled: true},
	}
	day := date("2024-06-03")
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	slots := GenerateSlots(windows, day, 30, 15, time.UTC, now, 0)
	if len(slots) != 3 {
		t.Errorf("got %d slots, want 3 from the one valid window", len(slots))
	}
}

func TestGenerateSlotsDurationLongerThanWindow(t *testing.T) {
	windows := []entity.TimeSlot{
		{StartTime: "09:00", EndTime: "09:30", IsEnabled: true},
	}
	day := date("2024-06-03")
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	if slots := GenerateSlots(windows, day, 60, 15, time.UTC, now, 0); len(slots) != 0 {
		t.Errorf("got %d slots, want 0 when duration exceeds the window", len(slots))
	}
}

func TestResolveTimezone(t *testing.T) {
	defaultLoc := entity.ProviderLocation{IsDefault: true, Timezone: "Europe/Berlin"}
	travel := entity.ProviderLocation{
		Timezone:  "America/New_York",
		StartDate: datePtr("2024-06-01"),
		EndDate:   datePtr("2024-06-10"),
	}

	tests := []struct {
		name      string
		fallback  string
		locations []entity.ProviderLocation
		day       string
		want      string
	}{
		{"fallback only", "Asia/Jakarta", nil, "2024-06-05", "Asia/Jakarta"},
		{"empty fallback is UTC", "", nil, "2024-06-05", "UTC"},
		{"default location wins over fallback", "Asia/Jakarta", []entity.ProviderLocation{defaultLoc}, "2024-06-05", "Europe/Berlin"},
		{"covering travel wins over default", "Asia/Jakarta", []entity.ProviderLocation{defaultLoc, travel}, "2024-06-05", "America/New_York"},
		{"travel window over, back to default", "Asia/Jakarta", []entity.ProviderLocation{defaultLoc, travel}, "2024-06-15", "Europe/Berlin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := ResolveTimezone(tt.fallback, tt.locations, date(tt.day))
			if err != nil {
				t.Fatalf("ResolveTimezone() error = %v", err)
			}
			if loc.String() != tt.want {
				t.Errorf("ResolveTimezone() = %s, want %s", loc, tt.want)
			}
		})
	}

	if _, err := ResolveTimezone("Not/AZone", nil, date("2024-06-05")); err == nil {
		t.Error("expected error for unknown timezone name")
	}
}

package service

import (
	"errors"
	"fmt"

	"time"

	"go-appointment-booking/internal/domain/entity"
)

// ErrUnsupportedRecurrence is returned at schedule-creation time for
// recurrence types that exist in the enum but have no matcher branch yet.
// Rejecting them up front beats a schedule that silently never applies.
var ErrUnsupportedRecurrence = errors.New("recurrence type is not supported yet")

// ScheduleActiveOn reports whether an advanced schedule applies on the given
// calendar date. Comparisons are date-only; time-of-day on either side is
// ignored.
func ScheduleActiveOn(s *entity.AvailabilitySchedule, date time.Time) bool {
	day := entity.DateOnly(date)
	start := entity.DateOnly(s.StartDate)

	if day.Before(start) {
		return false
	}
	if s.EndDate != nil && day.After(entity.DateOnly(*s.EndDate)) {
		return false
	}

	if !s.IsRecurring {
		// Bounded one-off: the range check above already did the work.
		// Without an end date the schedule covers its start date only.
		if s.EndDate == nil {
			return day.Equal(start)
		}
		return true
	}

	daysSinceStart := int(day.Sub(start).Hours() / 24)
	interval := s.RecurrenceInterval
	if interval < 1 {
		interval = 1
	}
	weekday := int(day.Weekday())

	switch s.RecurrenceType {
	case entity.RecurrenceDaily:
		return daysSinceStart%interval == 0
	case entity.RecurrenceWeekly:
		return s.DaysOfWeek.Contains(weekday) && (daysSinceStart/7)%interval == 0
	case entity.RecurrenceBiweekly:
		// 14-day cadence anchored at the start date: on-weeks are the
		// even weeks of each 2*interval week period.
		return s.DaysOfWeek.Contains(weekday) && (daysSinceStart/7)%(2*interval) == 0
	case entity.RecurrenceMonthly:
		if s.MonthOfYear != nil && int(day.Month()) != *s.MonthOfYear {
			return false
		}
		if s.WeekOfMonth != nil {
			weekOfMonth := (day.Day() + 6) / 7
			return weekOfMonth == *s.WeekOfMonth && s.DaysOfWeek.Contains(weekday)
		}
		return s.DaysOfWeek.Contains(weekday)
	default:
		return false
	}
}

// ValidateRecurrence checks that a schedule's recurrence fields are
// consistent before it is persisted.
func ValidateRecurrence(s *entity.AvailabilitySchedule) error {
	if !s.IsRecurring {
		if s.EndDate != nil && entity.DateOnly(*s.EndDate).Before(entity.DateOnly(s.StartDate)) {
			return fmt.Errorf("end date precedes start date")
		}
		return nil
	}

	switch s.RecurrenceType {
	case entity.RecurrenceDaily:
		return nil
	case entity.RecurrenceWeekly, entity.RecurrenceBiweekly:
		if len(s.DaysOfWeek) == 0 {
			return fmt.Errorf("%s recurrence requires days of week", s.RecurrenceType)
		}
		for _, d := range s.DaysOfWeek {
			if d < 0 || d > 6 {
				return fmt.Errorf("day of week %d out of range", d)
			}
		}
		return nil
	case entity.RecurrenceMonthly:
		if s.WeekOfMonth != nil && (*s.WeekOfMonth < 1 || *s.WeekOfMonth > 5) {
			return fmt.Errorf("week of month %d out of range", *s.WeekOfMonth)
		}
		if s.MonthOfYear != nil && (*s.MonthOfYear < 1 || *s.MonthOfYear > 12) {
			return fmt.Errorf("month of year %d out of range", *s.MonthOfYear)
		}
		if len(s.DaysOfWeek) == 0 {
			return fmt.Errorf("monthly recurrence requires days of week")
		}
		return nil
	case entity.RecurrenceBimonthly, entity.RecurrenceQuarterly, entity.RecurrenceYearly:
		return ErrUnsupportedRecurrence
	default:
		return fmt.Errorf("unknown recurrence type %q", s.RecurrenceType)
	}
}

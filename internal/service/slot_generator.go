package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"go-appointment-booking/internal/domain/entity"
)

// ErrInvalidTimeOfDay is returned for window bounds that are not "HH:MM".
var ErrInvalidTimeOfDay = errors.New("invalid time of day, use HH:MM")

// SlotCandidate is a concrete bookable start time: the provider-local wall
// clock string plus its UTC instant.
type SlotCandidate struct {
	LocalTime string    `json:"local_time"` // "HH:MM" in the resolved timezone
	StartUTC  time.Time `json:"start_utc"`
	Duration  int       `json:"duration"` // minutes
}

// minutesOfDay parses an "HH:MM" string into minutes since midnight.
func minutesOfDay(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, ErrInvalidTimeOfDay
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// GenerateSlots expands effective time windows into discrete start times of
// the requested duration on date, materialized in loc and filtered to the
// future plus the lead-time buffer. Overlapping windows produce each start
// time once. Malformed windows are skipped rather than failing the whole
// date.
func GenerateSlots(windows []entity.TimeSlot, date time.Time, durationMin, stepMin int, loc *time.Location, now time.Time, leadTime time.Duration) []SlotCandidate {
	if durationMin <= 0 || stepMin <= 0 {
		return nil
	}

	y, m, d := date.Date()
	cutoff := now.Add(leadTime)
	seen := make(map[int]bool)
	var out []SlotCandidate

	for _, w := range windows {
		startMin, err := minutesOfDay(w.StartTime)
		if err != nil {
			continue
		}
		endMin, err := minutesOfDay(w.EndTime)
		if err != nil {
			continue
		}

		for cur := startMin; cur+durationMin <= endMin; cur += stepMin {
			if seen[cur] {
				continue
			}
			seen[cur] = true

			local := time.Date(y, m, d, cur/60, cur%60, 0, 0, loc)
			startUTC := local.UTC()
			if !startUTC.After(cutoff) {
				continue
			}

			out = append(out, SlotCandidate{
				LocalTime: formatMinutes(cur),
				StartUTC:  startUTC,
				Duration:  durationMin,
			})
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].StartUTC.Before(out[j].StartUTC) })
	return out
}

// ResolveTimezone picks the timezone that applies to an appointment date:
// a non-default location whose validity window covers the date wins over the
// default location, which wins over the supplied fallback (the template's
// timezone, or failing that the provider's).
func ResolveTimezone(fallback string, locations []entity.ProviderLocation, date time.Time) (*time.Location, error) {
	name := fallback

	for _, l := range locations {
		if l.IsDefault && l.Timezone != "" {
			name = l.Timezone
			break
		}
	}
	for _, l := range locations {
		if !l.IsDefault && l.Timezone != "" && l.CoversDate(date) {
			name = l.Timezone
			break
		}
	}

	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", name, err)
	}
	return loc, nil
}

package service

import (
	"context"
	"time"

	"go-appointment-booking/internal/domain/entity"
	"go-appointment-booking/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AppliedSchedule identifies an advanced schedule that was active on the
// resolved date. Only the first entry (the winner) contributes time slots;
// the rest are reported for observability.
type AppliedSchedule struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Priority int    `json:"priority"`
}

// EffectiveAvailability is the resolved set of time windows for one date.
type EffectiveAvailability struct {
	TimeSlots        []entity.TimeSlot
	AppliedSchedules []AppliedSchedule
	FromTemplate     bool
}

// ScheduleResolver merges a template's advanced schedules into the effective
// availability for a date. When several schedules are active the single
// highest-priority one wins outright; availability is never a silent merge
// of conflicting schedules. Ties break on earliest creation.
type ScheduleResolver struct {
	log          *logrus.Logger
	scheduleRepo repository.ScheduleRepository
}

func NewScheduleResolver(log *logrus.Logger, scheduleRepo repository.ScheduleRepository) *ScheduleResolver {
	return &ScheduleResolver{
		log:          log,
		scheduleRepo: scheduleRepo,
	}
}

// EffectiveAvailability resolves the time windows for template on date.
// Falls back to the template's own weekly pattern when no schedule applies.
func (r *ScheduleResolver) EffectiveAvailability(ctx context.Context, db *gorm.DB, template *entity.AvailabilityTemplate, date time.Time) (*EffectiveAvailability, error) {
	schedules, err := r.scheduleRepo.FindActiveByTemplateID(ctx, db, template.ID)
	if err != nil {
		return nil, err
	}

	weekday := int(entity.DateOnly(date).Weekday())

	var active []entity.AvailabilitySchedule
	for _, s := range schedules {
		if ScheduleActiveOn(&s, date) {
			active = append(active, s)
		}
	}

	if len(active) == 0 {
		return &EffectiveAvailability{
			TimeSlots:    template.SlotsForWeekday(weekday),
			FromTemplate: true,
		}, nil
	}

	applied := make([]AppliedSchedule, len(active))
	for i, s := range active {
		applied[i] = AppliedSchedule{ID: s.ID, Name: s.Name, Priority: s.Priority}
	}

	// Repo ordering (priority desc, created_at asc) makes the head the winner.
	winner := active[0]
	if len(active) > 1 {
		r.log.Debugf("Schedule %d (priority %d) shadows %d lower-priority schedule(s) on %s",
			winner.ID, winner.Priority, len(active)-1, entity.DateOnly(date).Format("2006-01-02"))
	}

	return &EffectiveAvailability{
		TimeSlots:        winner.SlotsForWeekday(weekday),
		AppliedSchedules: applied,
	}, nil
}

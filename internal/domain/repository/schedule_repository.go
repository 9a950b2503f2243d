package repository

import (
	"context"

	"go-appointment-booking/internal/domain/entity"

	"gorm.io/gorm"
)

type ScheduleRepository interface {
	Create(ctx context.Context, db *gorm.DB, schedule *entity.AvailabilitySchedule) error
	FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.AvailabilitySchedule, error)
	// FindActiveByTemplateID returns active schedules ordered by
	// priority desc, created_at asc, time slots preloaded.
	FindActiveByTemplateID(ctx context.Context, db *gorm.DB, templateID uint) ([]entity.AvailabilitySchedule, error)
	FindByTemplateID(ctx context.Context, db *gorm.DB, templateID uint) ([]entity.AvailabilitySchedule, error)
	Update(ctx context.Context, db *gorm.DB, schedule *entity.AvailabilitySchedule) error
	Delete(ctx context.Context, db *gorm.DB, id uint) (int64, error)
	ReplaceTimeSlots(ctx context.Context, db *gorm.DB, scheduleID uint, slots []entity.TimeSlot) error
}

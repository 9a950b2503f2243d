package repository

import (
	"context"
	"errors"

	"go-appointment-booking/internal/domain/entity"
	domainRepo "go-appointment-booking/internal/domain/repository"

	"gorm.io/gorm"
)

type scheduleRepository struct{}

func NewScheduleRepository() domainRepo.ScheduleRepository {
	return &scheduleRepository{}
}

func (r *scheduleRepository) Create(ctx context.Context, db *gorm.DB, schedule *entity.AvailabilitySchedule) error {
	return db.WithContext(ctx).Create(schedule).Error
}

func (r *scheduleRepository) FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.AvailabilitySchedule, error) {
	var schedule entity.AvailabilitySchedule
	err := db.WithContext(ctx).Preload("TimeSlots").Where("id = ?", id).First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepository) FindActiveByTemplateID(ctx context.Context, db *gorm.DB, templateID uint) ([]entity.AvailabilitySchedule, error) {
	var schedules []entity.AvailabilitySchedule
	err := db.WithContext(ctx).Preload("TimeSlots").
		Where("template_id = ? AND is_active = ?", templateID, true).
		Order("priority DESC, created_at ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) FindByTemplateID(ctx context.Context, db *gorm.DB, templateID uint) ([]entity.AvailabilitySchedule, error) {
	var schedules []entity.AvailabilitySchedule
	err := db.WithContext(ctx).Preload("TimeSlots").
		Where("template_id = ?", templateID).
		Order("priority DESC, created_at ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) Update(ctx context.Context, db *gorm.DB, schedule *entity.AvailabilitySchedule) error {
	return db.WithContext(ctx).Omit("TimeSlots").Save(schedule).Error
}

func (r *scheduleRepository) Delete(ctx context.Context, db *gorm.DB, id uint) (int64, error) {
	var affected int64
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("schedule_id = ?", id).Delete(&entity.TimeSlot{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&entity.AvailabilitySchedule{})
		affected = result.RowsAffected
		return result.Error
	})
	return affected, err
}

func (r *scheduleRepository) ReplaceTimeSlots(ctx context.Context, db *gorm.DB, scheduleID uint, slots []entity.TimeSlot) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("schedule_id = ?", scheduleID).Delete(&entity.TimeSlot{}).Error; err != nil {
			return err
		}
		for i := range slots {
			slots[i].ID = 0
			slots[i].ScheduleID = &scheduleID
			slots[i].TemplateID = nil
		}
		if len(slots) == 0 {
			return nil
		}
		return tx.Create(&slots).Error
	})
}

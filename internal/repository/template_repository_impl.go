package repository

import (
	"context"
	"errors"

	"go-appointment-booking/internal/domain/entity"
	domainRepo "go-appointment-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type templateRepository struct{}

func NewTemplateRepository() domainRepo.TemplateRepository {
	return &templateRepository{}
}

func (r *templateRepository) Create(ctx context.Context, db *gorm.DB, template *entity.AvailabilityTemplate) error {
	return db.WithContext(ctx).Create(template).Error
}

func (r *templateRepository) FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.AvailabilityTemplate, error) {
	var template entity.AvailabilityTemplate
	err := db.WithContext(ctx).Preload("TimeSlots").Where("id = ?", id).First(&template).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &template, nil
}

func (r *templateRepository) FindByProviderID(ctx context.Context, db *gorm.DB, providerID uuid.UUID) ([]entity.AvailabilityTemplate, error) {
	var templates []entity.AvailabilityTemplate
	err := db.WithContext(ctx).Preload("TimeSlots").
		Where("provider_id = ?", providerID).
		Order("is_default DESC, created_at ASC").
		Find(&templates).Error
	if err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *templateRepository) FindDefaultByProviderID(ctx context.Context, db *gorm.DB, providerID uuid.UUID) (*entity.AvailabilityTemplate, error) {
	var template entity.AvailabilityTemplate
	err := db.WithContext(ctx).Preload("TimeSlots").
		Where("provider_id = ? AND is_default = ? AND is_active = ?", providerID, true, true).
		First(&template).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &template, nil
}

func (r *templateRepository) Update(ctx context.Context, db *gorm.DB, template *entity.AvailabilityTemplate) error {
	return db.WithContext(ctx).Omit("TimeSlots").Save(template).Error
}

func (r *templateRepository) ClearDefault(ctx context.Context, db *gorm.DB, providerID uuid.UUID) error {
	return db.WithContext(ctx).Model(&entity.AvailabilityTemplate{}).
		Where("provider_id = ?", providerID).
		Update("is_default", false).Error
}

func (r *templateRepository) ReplaceTimeSlots(ctx context.Context, db *gorm.DB, templateID uint, slots []entity.TimeSlot) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("template_id = ?", templateID).Delete(&entity.TimeSlot{}).Error; err != nil {
			return err
		}
		for i := range slots {
			slots[i].ID = 0
			slots[i].TemplateID = &templateID
			slots[i].ScheduleID = nil
		}
		if len(slots) == 0 {
			return nil
		}
		return tx.Create(&slots).Error
	})
}

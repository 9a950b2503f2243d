package repository

import (
	"context"

	"go-appointment-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TemplateRepository interface {
	Create(ctx context.Context, db *gorm.DB, template *entity.AvailabilityTemplate) error
	FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.AvailabilityTemplate, error)
	FindByProviderID(ctx context.Context, db *gorm.DB, providerID uuid.UUID) ([]entity.AvailabilityTemplate, error)
	FindDefaultByProviderID(ctx context.Context, db *gorm.DB, providerID uuid.UUID) (*entity.AvailabilityTemplate, error)
	Update(ctx context.Context, db *gorm.DB, template *entity.AvailabilityTemplate) error
	ClearDefault(ctx context.Context, db *gorm.DB, providerID uuid.UUID) error
	ReplaceTimeSlots(ctx context.Context, db *gorm.DB, templateID uint, slots []entity.TimeSlot) error
}

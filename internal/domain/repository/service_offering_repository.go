package repository

import (
	"context"

	"go-appointment-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceOfferingRepository interface {
	Create(ctx context.Context, db *gorm.DB, offering *entity.ServiceOffering) error
	FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.ServiceOffering, error)
	FindByProviderID(ctx context.Context, db *gorm.DB, providerID uuid.UUID) ([]entity.ServiceOffering, error)
	// FindActiveByName resolves a booking's service type against the
	// provider's catalog.
	FindActiveByName(ctx context.Context, db *gorm.DB, providerID uuid.UUID, name string) (*entity.ServiceOffering, error)
	Update(ctx context.Context, db *gorm.DB, offering *entity.ServiceOffering) error
	// Delete removes an offering and reports how many rows matched.
	Delete(ctx context.Context, db *gorm.DB, id uint) (int64, error)
}

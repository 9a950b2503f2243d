package repository

import (
	"context"

	"go-appointment-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProviderRepository interface {
	Create(ctx context.Context, db *gorm.DB, provider *entity.Provider) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Provider, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Provider, error)
	Update(ctx context.Context, db *gorm.DB, provider *entity.Provider) error
	CreateLocation(ctx context.Context, db *gorm.DB, location *entity.ProviderLocation) error
	FindLocations(ctx context.Context, db *gorm.DB, providerID uuid.UUID) ([]entity.ProviderLocation, error)
}

package repository

import (
	"context"
	"errors"

	"go-appointment-booking/internal/domain/entity"
	domainRepo "go-appointment-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type providerRepository struct{}

func NewProviderRepository() domainRepo.ProviderRepository {
	return &providerRepository{}
}

func (r *providerRepository) Create(ctx context.Context, db *gorm.DB, provider *entity.Provider) error {
	return db.WithContext(ctx).Create(provider).Error
}

func (r *providerRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Provider, error) {
	var provider entity.Provider
	err := db.WithContext(ctx).Where("id = ?", id).First(&provider).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &provider, nil
}

func (r *providerRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Provider, error) {
	var provider entity.Provider
	err := db.WithContext(ctx).Where("email = ?", email).First(&provider).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &provider, nil
}

func (r *providerRepository) Update(ctx context.Context, db *gorm.DB, provider *entity.Provider) error {
	return db.WithContext(ctx).Save(provider).Error
}

func (r *providerRepository) CreateLocation(ctx context.Context, db *gorm.DB, location *entity.ProviderLocation) error {
	return db.WithContext(ctx).Create(location).Error
}

func (r *providerRepository) FindLocations(ctx context.Context, db *gorm.DB, providerID uuid.UUID) ([]entity.ProviderLocation, error) {
	var locations []entity.ProviderLocation
	err := db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("is_default ASC, start_date ASC").
		Find(&locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}

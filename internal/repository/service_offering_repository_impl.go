package repository

import (
	"context"
	"errors"

	"go-appointment-booking/internal/domain/entity"
	domainRepo "go-appointment-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type serviceOfferingRepository struct{}

func NewServiceOfferingRepository() domainRepo.ServiceOfferingRepository {
	return &serviceOfferingRepository{}
}

func (r *serviceOfferingRepository) Create(ctx context.Context, db *gorm.DB, offering *entity.ServiceOffering) error {
	return db.WithContext(ctx).Create(offering).Error
}

func (r *serviceOfferingRepository) FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.ServiceOffering, error) {
	var offering entity.ServiceOffering
	err := db.WithContext(ctx).Where("id = ?", id).First(&offering).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &offering, nil
}

func (r *serviceOfferingRepository) FindByProviderID(ctx context.Context, db *gorm.DB, providerID uuid.UUID) ([]entity.ServiceOffering, error) {
	var offerings []entity.ServiceOffering
	err := db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("name ASC").
		Find(&offerings).Error
	if err != nil {
		return nil, err
	}
	return offerings, nil
}

func (r *serviceOfferingRepository) FindActiveByName(ctx context.Context, db *gorm.DB, providerID uuid.UUID, name string) (*entity.ServiceOffering, error) {
	var offering entity.ServiceOffering
	err := db.WithContext(ctx).
		Where("provider_id = ? AND name = ? AND is_active = ?", providerID, name, true).
		First(&offering).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &offering, nil
}

func (r *serviceOfferingRepository) Update(ctx context.Context, db *gorm.DB, offering *entity.ServiceOffering) error {
	return db.WithContext(ctx).Save(offering).Error
}

func (r *serviceOfferingRepository) Delete(ctx context.Context, db *gorm.DB, id uint) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.ServiceOffering{})
	return result.RowsAffected, result.Error
}

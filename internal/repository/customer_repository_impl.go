package repository

import (
	"context"
	"errors"
	"strings"

	"go-appointment-booking/internal/domain/entity"
	domainRepo "go-appointment-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type customerRepository struct{}

func NewCustomerRepository() domainRepo.CustomerRepository {
	return &customerRepository{}
}

func (r *customerRepository) Create(ctx context.Context, db *gorm.DB, customer *entity.Customer) error {
	customer.Email = strings.ToLower(customer.Email)
	return db.WithContext(ctx).Create(customer).Error
}

func (r *customerRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Customer, error) {
	var customer entity.Customer
	err := db.WithContext(ctx).Where("id = ?", id).First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Customer, error) {
	var customer entity.Customer
	err := db.WithContext(ctx).Where("email = ?", strings.ToLower(email)).First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) UpsertByEmail(ctx context.Context, db *gorm.DB, customer *entity.Customer) (*entity.Customer, error) {
	existing, err := r.FindByEmail(ctx, db, customer.Email)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		if err := r.Create(ctx, db, customer); err != nil {
			return nil, err
		}
		return customer, nil
	}

	changed := false
	if customer.FullName != "" && customer.FullName != existing.FullName {
		existing.FullName = customer.FullName
		changed = true
	}
	if customer.Phone != "" && customer.Phone != existing.Phone {
		existing.Phone = customer.Phone
		changed = true
	}
	if changed {
		if err := db.WithContext(ctx).Save(existing).Error; err != nil {
			return nil, err
		}
	}
	return existing, nil
}

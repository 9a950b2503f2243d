package repository

import (
	"context"

	"go-appointment-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(ctx context.Context, db *gorm.DB, customer *entity.Customer) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Customer, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Customer, error)
	// UpsertByEmail creates the customer if the email is unknown, otherwise
	// refreshes name and phone on the existing row.
	UpsertByEmail(ctx context.Context, db *gorm.DB, customer *entity.Customer) (*entity.Customer, error)
}

package repository

import (
	"context"
	"time"

	"go-appointment-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(ctx context.Context, db *gorm.DB, booking *entity.Booking) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Booking, error)
	// FindActiveInRange returns pending and confirmed bookings whose
	// scheduled_at falls inside [from, to).
	FindActiveInRange(ctx context.Context, db *gorm.DB, providerID uuid.UUID, from, to time.Time) ([]entity.Booking, error)
	FindByProviderID(ctx context.Context, db *gorm.DB, providerID uuid.UUID, filter *entity.BookingFilter) ([]entity.Booking, error)
	FindByCustomerID(ctx context.Context, db *gorm.DB, customerID uuid.UUID) ([]entity.Booking, error)
	// UpdateStatusIf atomically moves a booking from one of the expected
	// statuses to the next one. Returns affected rows: 0 means the booking
	// was already past the expected state (lost race or repeat call).
	UpdateStatusIf(ctx context.Context, db *gorm.DB, id uuid.UUID, expected []entity.BookingStatus, next entity.BookingStatus) (int64, error)
}

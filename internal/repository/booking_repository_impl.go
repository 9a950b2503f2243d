package repository

import (
	"context"
	"errors"

	"time"

	"go-appointment-booking/internal/domain/entity"
	domainRepo "go-appointment-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bookingRepository struct{}

func NewBookingRepository() domainRepo.BookingRepository {
	return &bookingRepository{}
}

func (r *bookingRepository) Create(ctx context.Context, db *gorm.DB, booking *entity.Booking) error {
	return db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.WithContext(ctx).Preload("Customer").Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindActiveInRange(ctx context.Context, db *gorm.DB, providerID uuid.UUID, from, to time.Time) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := db.WithContext(ctx).
		Where("provider_id = ? AND status IN ? AND scheduled_at >= ? AND scheduled_at < ?",
			providerID,
			[]entity.BookingStatus{entity.BookingStatusPending, entity.BookingStatusConfirmed},
			from, to).
		Order("scheduled_at ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindByProviderID(ctx context.Context, db *gorm.DB, providerID uuid.UUID, filter *entity.BookingFilter) ([]entity.Booking, error) {
	query := db.WithContext(ctx).Preload("Customer").Where("provider_id = ?", providerID)

	if filter != nil {
		if filter.From != "" {
			query = query.Where("scheduled_at >= ?", filter.From)
		}
		if filter.To != "" {
			query = query.Where("scheduled_at < ?", filter.To)
		}
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
		if filter.ServiceType != "" {
			query = query.Where("service_type = ?", filter.ServiceType)
		}
	}

	var bookings []entity.Booking
	err := query.Order("scheduled_at ASC").Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindByCustomerID(ctx context.Context, db *gorm.DB, customerID uuid.UUID) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := db.WithContext(ctx).Preload("Provider").
		Where("customer_id = ?", customerID).
		Order("scheduled_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateStatusIf performs the transition as a conditional update so two
// concurrent transitions cannot both take effect.
func (r *bookingRepository) UpdateStatusIf(ctx context.Context, db *gorm.DB, id uuid.UUID, expected []entity.BookingStatus, next entity.BookingStatus) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.Booking{}).
		Where("id = ? AND status IN ?", id, expected).
		Update("status", next)
	return result.RowsAffected, result.Error
}

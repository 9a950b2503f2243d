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

type calendarEventRepository struct{}

func NewCalendarEventRepository() domainRepo.CalendarEventRepository {
	return &calendarEventRepository{}
}

func (r *calendarEventRepository) Create(ctx context.Context, db *gorm.DB, event *entity.CalendarEvent) error {
	return db.WithContext(ctx).Create(event).Error
}

func (r *calendarEventRepository) UpsertByExternalID(ctx context.Context, db *gorm.DB, event *entity.CalendarEvent) error {
	if event.ExternalID == "" {
		return db.WithContext(ctx).Create(event).Error
	}

	var existing entity.CalendarEvent
	err := db.WithContext(ctx).
		Where("provider_id = ? AND external_id = ?", event.ProviderID, event.ExternalID).
		First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return db.WithContext(ctx).Create(event).Error
		}
		return err
	}

	existing.Title = event.Title
	existing.StartTime = event.StartTime
	existing.EndTime = event.EndTime
	if err := db.WithContext(ctx).Save(&existing).Error; err != nil {
		return err
	}
	*event = existing
	return nil
}

func (r *calendarEventRepository) FindOverlapping(ctx context.Context, db *gorm.DB, providerID uuid.UUID, from, to time.Time) ([]entity.CalendarEvent, error) {
	var events []entity.CalendarEvent
	err := db.WithContext(ctx).
		Where("provider_id = ? AND start_time < ? AND end_time > ?", providerID, to, from).
		Order("start_time ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *calendarEventRepository) FindByProviderID(ctx context.Context, db *gorm.DB, providerID uuid.UUID) ([]entity.CalendarEvent, error) {
	var events []entity.CalendarEvent
	err := db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("start_time ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

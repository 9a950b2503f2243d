package repository

import (
	"context"
	"time"

	"go-appointment-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CalendarEventRepository interface {
	Create(ctx context.Context, db *gorm.DB, event *entity.CalendarEvent) error
	// UpsertByExternalID inserts or refreshes a synced event keyed by its
	// provider-side external identifier.
	UpsertByExternalID(ctx context.Context, db *gorm.DB, event *entity.CalendarEvent) error
	// FindOverlapping returns events intersecting [from, to).
	FindOverlapping(ctx context.Context, db *gorm.DB, providerID uuid.UUID, from, to time.Time) ([]entity.CalendarEvent, error)
	FindByProviderID(ctx context.Context, db *gorm.DB, providerID uuid.UUID) ([]entity.CalendarEvent, error)
}

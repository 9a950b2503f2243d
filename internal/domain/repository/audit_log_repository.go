package repository

import (
	"context"

	"go-appointment-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(ctx context.Context, db *gorm.DB, log *entity.AuditLog) error
	FindByProviderID(ctx context.Context, db *gorm.DB, providerID uuid.UUID, limit int) ([]entity.AuditLog, error)
}

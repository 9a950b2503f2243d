package service

import (
	"context"

	"go-appointment-booking/internal/domain/entity"
	"go-appointment-booking/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService records booking and schedule lifecycle events. Recording is
// best effort: a failed write is logged and never fails the operation it
// describes.
type AuditService interface {
	Record(ctx context.Context, db *gorm.DB, providerID *uuid.UUID, action string, metadata entity.JSON)
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) Record(ctx context.Context, db *gorm.DB, providerID *uuid.UUID, action string, metadata entity.JSON) {
	auditLog := &entity.AuditLog{
		ProviderID: providerID,
		Action:     action,
		Metadata:   metadata,
	}

	if err := s.auditRepo.Create(ctx, db, auditLog); err != nil {
		s.log.Warnf("Failed to write audit log %s: %+v", action, err)
	}
}

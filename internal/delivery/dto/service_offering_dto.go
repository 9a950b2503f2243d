package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateServiceOfferingRequest struct {
	Name            string          `json:"name" validate:"required,max=255"`
	Description     string          `json:"description" validate:"omitempty,max=2000"`
	Price           decimal.Decimal `json:"price" validate:"required"`
	DurationMinutes int             `json:"duration_minutes" validate:"omitempty,min=5,max=480"`
}

type UpdateServiceOfferingRequest struct {
	Name            string           `json:"name" validate:"omitempty,max=255"`
	Description     string           `json:"description" validate:"omitempty,max=2000"`
	Price           *decimal.Decimal `json:"price"`
	DurationMinutes int              `json:"duration_minutes" validate:"omitempty,min=5,max=480"`
	IsActive        *bool            `json:"is_active"`
}

// Response DTOs

type ServiceOfferingResponse struct {
	ID              uint            `json:"id"`
	ProviderID      uuid.UUID       `json:"provider_id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"duration_minutes"`
	IsActive        bool            `json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type ServiceOfferingListResponse struct {
	Offerings []ServiceOfferingResponse `json:"offerings"`
	Total     int                       `json:"total"`
}

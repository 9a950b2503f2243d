package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type TimeSlotRequest struct {
	DayOfWeek int    `json:"day_of_week" validate:"min=0,max=6"`
	StartTime string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string `json:"end_time" validate:"required,datetime=15:04"`
	IsEnabled *bool  `json:"is_enabled"`
}

type CreateTemplateRequest struct {
	ProviderID uuid.UUID         `json:"provider_id" validate:"required"`
	Name       string            `json:"name" validate:"required,max=255"`
	Timezone   string            `json:"timezone" validate:"omitempty,timezone"`
	IsDefault  bool              `json:"is_default"`
	TimeSlots  []TimeSlotRequest `json:"time_slots" validate:"required,min=1,dive"`
}

type UpdateTemplateRequest struct {
	Name      string            `json:"name" validate:"omitempty,max=255"`
	Timezone  string            `json:"timezone" validate:"omitempty,timezone"`
	IsDefault *bool             `json:"is_default"`
	IsActive  *bool             `json:"is_active"`
	TimeSlots []TimeSlotRequest `json:"time_slots" validate:"omitempty,dive"`
}

// Response DTOs

type TimeSlotResponse struct {
	ID        uint   `json:"id"`
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsEnabled bool   `json:"is_enabled"`
}

type TemplateResponse struct {
	ID         uint               `json:"id"`
	ProviderID uuid.UUID          `json:"provider_id"`
	Name       string             `json:"name"`
	Timezone   string             `json:"timezone,omitempty"`
	IsDefault  bool               `json:"is_default"`
	IsActive   bool               `json:"is_active"`
	TimeSlots  []TimeSlotResponse `json:"time_slots"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

type TemplateListResponse struct {
	Templates []TemplateResponse `json:"templates"`
	Total     int                `json:"total"`
}

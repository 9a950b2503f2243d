package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateProviderRequest struct {
	Name                   string `json:"name" validate:"required,max=255"`
	Email                  string `json:"email" validate:"required,email"`
	Timezone               string `json:"timezone" validate:"required,timezone"`
	DefaultBookingDuration int    `json:"default_booking_duration" validate:"omitempty,min=5,max=480"`
	BufferTimeMinutes      int    `json:"buffer_time_minutes" validate:"omitempty,min=0,max=120"`
	AdvanceBookingDays     int    `json:"advance_booking_days" validate:"omitempty,min=1,max=365"`
	AllowedDurations       []int  `json:"allowed_durations" validate:"omitempty,dive,min=5,max=480"`
}

type CreateLocationRequest struct {
	Label     string `json:"label" validate:"required,max=255"`
	Address   string `json:"address" validate:"omitempty,max=255"`
	City      string `json:"city" validate:"omitempty,max=128"`
	Country   string `json:"country" validate:"omitempty,max=64"`
	Timezone  string `json:"timezone" validate:"omitempty,timezone"`
	StartDate string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	IsDefault bool   `json:"is_default"`
}

// Response DTOs

type ProviderResponse struct {
	ID                     uuid.UUID `json:"id"`
	Name                   string    `json:"name"`
	Email                  string    `json:"email"`
	Timezone               string    `json:"timezone"`
	DefaultBookingDuration int       `json:"default_booking_duration"`
	BufferTimeMinutes      int       `json:"buffer_time_minutes"`
	AdvanceBookingDays     int       `json:"advance_booking_days"`
	AllowedDurations       []int     `json:"allowed_durations"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

type LocationResponse struct {
	ID        uint   `json:"id"`
	Label     string `json:"label"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	Country   string `json:"country,omitempty"`
	Timezone  string `json:"timezone,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	IsDefault bool   `json:"is_default"`
}

type LocationListResponse struct {
	Locations []LocationResponse `json:"locations"`
	Total     int                `json:"total"`
}

package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateBookingRequest struct {
	ProviderID    uuid.UUID `json:"provider_id" validate:"required"`
	ScheduledAt   time.Time `json:"scheduled_at" validate:"required"`
	Duration      int       `json:"duration" validate:"omitempty,min=5,max=480"`
	CustomerEmail string    `json:"customer_email" validate:"required,email"`
	CustomerName  string    `json:"customer_name" validate:"required,max=255"`
	CustomerPhone string    `json:"customer_phone" validate:"omitempty,max=32"`
	ServiceType   string    `json:"service_type" validate:"omitempty,max=128"`
	Notes         string    `json:"notes" validate:"omitempty,max=2000"`
}

type ConfirmBookingRequest struct {
	Token string `json:"token" validate:"required"`
}

type RescheduleBookingRequest struct {
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
	Duration    int       `json:"duration" validate:"omitempty,min=5,max=480"`
}

// Response DTOs

type BookingResponse struct {
	ID          uuid.UUID `json:"id"`
	ProviderID  uuid.UUID `json:"provider_id"`
	CustomerID  uuid.UUID `json:"customer_id"`
	BookingCode string    `json:"booking_code"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Duration    int       `json:"duration"`
	Status      string    `json:"status"`
	ServiceType string    `json:"service_type,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	Customer    *CustomerResponse `json:"customer,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CustomerResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Phone    string    `json:"phone,omitempty"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusPending     BookingStatus = "pending"
	BookingStatusConfirmed   BookingStatus = "confirmed"
	BookingStatusCancelled   BookingStatus = "cancelled"
	BookingStatusRescheduled BookingStatus = "rescheduled"
)

// Booking represents a customer appointment against a provider's availability.
// Bookings are never physically deleted; lifecycle lives in Status.
type Booking struct {
	ID              uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CustomerID      uuid.UUID     `gorm:"type:uuid;not null;index" json:"customer_id"`
	ProviderID      uuid.UUID     `gorm:"type:uuid;not null;index" json:"provider_id"`
	CalendarEventID *uint         `gorm:"index" json:"calendar_event_id,omitempty"`
	BookingCode     string        `gorm:"type:varchar(50);uniqueIndex;not null" json:"booking_code"`
	ScheduledAt     time.Time     `gorm:"not null;index" json:"scheduled_at"` // stored UTC
	Duration        int           `gorm:"not null" json:"duration"`           // minutes
	Status          BookingStatus `gorm:"type:booking_status;not null;default:'pending';index" json:"status"`
	ServiceType     string        `gorm:"type:varchar(128)" json:"service_type"`
	Notes           string        `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Customer Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Provider Provider `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}

// EndsAt returns the exclusive end instant of the appointment.
func (b *Booking) EndsAt() time.Time {
	return b.ScheduledAt.Add(time.Duration(b.Duration) * time.Minute)
}

// IsPending checks if booking is in pending status
func (b *Booking) IsPending() bool {
	return b.Status == BookingStatusPending
}

// IsConfirmed checks if booking is confirmed
func (b *Booking) IsConfirmed() bool {
	return b.Status == BookingStatusConfirmed
}

// IsCancelled checks if booking is cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

// CanTransitionTo enforces the booking state machine:
// pending -> confirmed | cancelled | rescheduled, confirmed -> cancelled.
// Cancelled and rescheduled are terminal.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	switch b.Status {
	case BookingStatusPending:
		return next == BookingStatusConfirmed || next == BookingStatusCancelled || next == BookingStatusRescheduled
	case BookingStatusConfirmed:
		return next == BookingStatusCancelled
	default:
		return false
	}
}

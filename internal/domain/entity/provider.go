package entity

import (
	"time"

	"github.com/google/uuid"
)

// Provider represents a service provider exposing bookable availability.
type Provider struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name                   string    `gorm:"type:varchar(255);not null" json:"name"`
	Email                  string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Timezone               string    `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`
	DefaultBookingDuration int       `gorm:"not null;default:30" json:"default_booking_duration"`
	BufferTimeMinutes      int       `gorm:"not null;default:0" json:"buffer_time_minutes"`
	AdvanceBookingDays     int       `gorm:"not null;default:30" json:"advance_booking_days"`
	AllowedDurations       IntList   `gorm:"type:varchar(255)" json:"allowed_durations"`
	CreatedAt              time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Locations []ProviderLocation     `gorm:"foreignKey:ProviderID" json:"locations,omitempty"`
	Templates []AvailabilityTemplate `gorm:"foreignKey:ProviderID" json:"templates,omitempty"`
	Bookings  []Booking              `gorm:"foreignKey:ProviderID" json:"bookings,omitempty"`
}

func (Provider) TableName() string {
	return "providers"
}

// IsDurationAllowed checks a requested appointment length against the
// provider's configured set. An empty set permits only the default duration.
func (p *Provider) IsDurationAllowed(minutes int) bool {
	if len(p.AllowedDurations) == 0 {
		return minutes == p.DefaultBookingDuration
	}
	return p.AllowedDurations.Contains(minutes)
}

// BufferTime returns the booking padding as a duration.
func (p *Provider) BufferTime() time.Duration {
	return time.Duration(p.BufferTimeMinutes) * time.Minute
}

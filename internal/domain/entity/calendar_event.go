package entity

import (
	"time"

	"github.com/google/uuid"
)

// CalendarEvent is externally synced busy time on a provider's connected
// calendar. The engine treats every event as opaque busy time regardless of
// the legacy AllowBookings/MaxBookings columns, which remain persisted for
// providers created under the old manual-slot mode.
type CalendarEvent struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProviderID    uuid.UUID `gorm:"type:uuid;not null;index" json:"provider_id"`
	ExternalID    string    `gorm:"type:varchar(255);index" json:"external_id"`
	Title         string    `gorm:"type:varchar(255)" json:"title"`
	StartTime     time.Time `gorm:"not null;index" json:"start_time"` // stored UTC
	EndTime       time.Time `gorm:"not null" json:"end_time"`         // stored UTC
	AllowBookings bool      `gorm:"not null;default:false" json:"allow_bookings"`
	MaxBookings   int       `gorm:"not null;default:0" json:"max_bookings"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CalendarEvent) TableName() string {
	return "calendar_events"
}

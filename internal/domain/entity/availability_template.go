package entity

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityTemplate is a provider's baseline weekly availability pattern.
// Exactly one template per provider should be marked default; it is the
// fallback when no advanced schedule applies on a date.
type AvailabilityTemplate struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProviderID uuid.UUID `gorm:"type:uuid;not null;index" json:"provider_id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Timezone   string    `gorm:"type:varchar(64)" json:"timezone"`
	IsDefault  bool      `gorm:"not null;default:false" json:"is_default"`
	IsActive   bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	TimeSlots []TimeSlot             `gorm:"foreignKey:TemplateID" json:"time_slots,omitempty"`
	Schedules []AvailabilitySchedule `gorm:"foreignKey:TemplateID" json:"schedules,omitempty"`
}

func (AvailabilityTemplate) TableName() string {
	return "availability_templates"
}

// SlotsForWeekday returns the template's enabled weekly rows for a weekday.
func (t *AvailabilityTemplate) SlotsForWeekday(weekday int) []TimeSlot {
	var out []TimeSlot
	for _, ts := range t.TimeSlots {
		if ts.DayOfWeek == weekday && ts.IsEnabled {
			out = append(out, ts)
		}
	}
	return out
}

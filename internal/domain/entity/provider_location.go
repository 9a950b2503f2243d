package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderLocation is a date-ranged assignment of a provider to a place.
// A non-default location whose window covers an appointment date overrides
// the default for timezone and display purposes.
type ProviderLocation struct {
	ID         uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	ProviderID uuid.UUID  `gorm:"type:uuid;not null;index" json:"provider_id"`
	Label      string     `gorm:"type:varchar(255);not null" json:"label"`
	Address    string     `gorm:"type:varchar(255)" json:"address"`
	City       string     `gorm:"type:varchar(128)" json:"city"`
	Country    string     `gorm:"type:varchar(64)" json:"country"`
	Timezone   string     `gorm:"type:varchar(64)" json:"timezone"`
	StartDate  *time.Time `gorm:"type:date" json:"start_date"`
	EndDate    *time.Time `gorm:"type:date" json:"end_date"`
	IsDefault  bool       `gorm:"not null;default:false" json:"is_default"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ProviderLocation) TableName() string {
	return "provider_locations"
}

// CoversDate reports whether the location's validity window includes the
// given calendar date. Open-ended sides always match.
func (l *ProviderLocation) CoversDate(date time.Time) bool {
	day := DateOnly(date)
	if l.StartDate != nil && day.Before(DateOnly(*l.StartDate)) {
		return false
	}
	if l.EndDate != nil && day.After(DateOnly(*l.EndDate)) {
		return false
	}
	return true
}

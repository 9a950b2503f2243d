package entity

import (
	"time"
)

// TimeSlot is a single weekly-pattern window. A row belongs either to a
// template (baseline pattern) or to an advanced schedule (override pattern).
type TimeSlot struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TemplateID *uint     `gorm:"index" json:"template_id,omitempty"`
	ScheduleID *uint     `gorm:"index" json:"schedule_id,omitempty"`
	DayOfWeek  int       `gorm:"not null" json:"day_of_week"` // 0 = Sunday .. 6 = Saturday
	StartTime  string    `gorm:"type:varchar(5);not null" json:"start_time"` // "HH:MM"
	EndTime    string    `gorm:"type:varchar(5);not null" json:"end_time"`   // "HH:MM"
	IsEnabled  bool      `gorm:"not null;default:true" json:"is_enabled"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TimeSlot) TableName() string {
	return "time_slots"
}

// DateOnly normalizes an instant to its calendar date at midnight UTC.
// All date-level comparisons in the engine go through this so a timestamped
// column never leaks time-of-day into recurrence arithmetic.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

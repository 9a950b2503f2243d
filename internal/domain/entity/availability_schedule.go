package entity

import (
	"time"
)

// RecurrenceType enumerates how an advanced schedule repeats.
type RecurrenceType string

const (
	RecurrenceDaily    RecurrenceType = "DAILY"
	RecurrenceWeekly   RecurrenceType = "WEEKLY"
	RecurrenceBiweekly RecurrenceType = "BIWEEKLY"
	RecurrenceMonthly  RecurrenceType = "MONTHLY"

	// Present in the enum but not accepted at creation time yet.
	RecurrenceBimonthly RecurrenceType = "BIMONTHLY"
	RecurrenceQuarterly RecurrenceType = "QUARTERLY"
	RecurrenceYearly    RecurrenceType = "YEARLY"
)

// AvailabilitySchedule is a prioritized, optionally recurring override of a
// template for a date range. When several schedules are active on the same
// date, the single highest-priority one wins outright.
type AvailabilitySchedule struct {
	ID                 uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	TemplateID         uint           `gorm:"not null;index" json:"template_id"`
	Name               string         `gorm:"type:varchar(255);not null" json:"name"`
	StartDate          time.Time      `gorm:"type:date;not null" json:"start_date"`
	EndDate            *time.Time     `gorm:"type:date" json:"end_date"`
	IsRecurring        bool           `gorm:"not null;default:false" json:"is_recurring"`
	RecurrenceType     RecurrenceType `gorm:"type:varchar(16)" json:"recurrence_type"`
	RecurrenceInterval int            `gorm:"not null;default:1" json:"recurrence_interval"`
	DaysOfWeek         IntList        `gorm:"type:varchar(255)" json:"days_of_week"`
	WeekOfMonth        *int           `json:"week_of_month"`
	MonthOfYear        *int           `json:"month_of_year"`
	Priority           int            `gorm:"not null;default:0;index" json:"priority"`
	IsActive           bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	TimeSlots []TimeSlot `gorm:"foreignKey:ScheduleID" json:"time_slots,omitempty"`
}

func (AvailabilitySchedule) TableName() string {
	return "availability_schedules"
}

// SlotsForWeekday returns the schedule's enabled override rows for a weekday.
func (s *AvailabilitySchedule) SlotsForWeekday(weekday int) []TimeSlot {
	var out []TimeSlot
	for _, ts := range s.TimeSlots {
		if ts.DayOfWeek == weekday && ts.IsEnabled {
			out = append(out, ts)
		}
	}
	return out
}

package dto

import (
	"time"
)

// Request DTOs

type CreateScheduleRequest struct {
	TemplateID         uint              `json:"template_id" validate:"required,min=1"`
	Name               string            `json:"name" validate:"required,max=255"`
	StartDate          string            `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate            string            `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	IsRecurring        bool              `json:"is_recurring"`
	RecurrenceType     string            `json:"recurrence_type" validate:"omitempty,oneof=DAILY WEEKLY BIWEEKLY MONTHLY BIMONTHLY QUARTERLY YEARLY"`
	RecurrenceInterval int               `json:"recurrence_interval" validate:"omitempty,min=1,max=52"`
	DaysOfWeek         []int             `json:"days_of_week" validate:"omitempty,dive,min=0,max=6"`
	WeekOfMonth        *int              `json:"week_of_month" validate:"omitempty,min=1,max=5"`
	MonthOfYear        *int              `json:"month_of_year" validate:"omitempty,min=1,max=12"`
	Priority           int               `json:"priority" validate:"omitempty,min=0,max=1000"`
	TimeSlots          []TimeSlotRequest `json:"time_slots" validate:"required,min=1,dive"`
}

type UpdateScheduleRequest struct {
	Name      string            `json:"name" validate:"omitempty,max=255"`
	StartDate string            `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string            `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Priority  *int              `json:"priority" validate:"omitempty,min=0,max=1000"`
	IsActive  *bool             `json:"is_active"`
	TimeSlots []TimeSlotRequest `json:"time_slots" validate:"omitempty,dive"`
}

// Response DTOs

type ScheduleResponse struct {
	ID                 uint               `json:"id"`
	TemplateID         uint               `json:"template_id"`
	Name               string             `json:"name"`
	StartDate          string             `json:"start_date"`
	EndDate            string             `json:"end_date,omitempty"`
	IsRecurring        bool               `json:"is_recurring"`
	RecurrenceType     string             `json:"recurrence_type,omitempty"`
	RecurrenceInterval int                `json:"recurrence_interval"`
	DaysOfWeek         []int              `json:"days_of_week,omitempty"`
	WeekOfMonth        *int               `json:"week_of_month,omitempty"`
	MonthOfYear        *int               `json:"month_of_year,omitempty"`
	Priority           int                `json:"priority"`
	IsActive           bool               `json:"is_active"`
	TimeSlots          []TimeSlotResponse `json:"time_slots"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

type ScheduleListResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
	Total     int                `json:"total"`
}

// EffectiveAvailabilityResponse previews which windows and schedules apply
// on a date.
type EffectiveAvailabilityResponse struct {
	TemplateID       uint                  `json:"template_id"`
	Date             string                `json:"date"`
	FromTemplate     bool                  `json:"from_template"`
	TimeSlots        []TimeSlotResponse    `json:"time_slots"`
	AppliedSchedules []AppliedScheduleRef  `json:"applied_schedules,omitempty"`
}

type AppliedScheduleRef struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Priority int    `json:"priority"`
}

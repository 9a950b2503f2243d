package dto

import (
	"time"
)

// Request DTOs

type UpsertCalendarEventRequest struct {
	ExternalID string    `json:"external_id" validate:"omitempty,max=255"`
	Title      string    `json:"title" validate:"omitempty,max=255"`
	StartTime  time.Time `json:"start_time" validate:"required"`
	EndTime    time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
}

// Response DTOs

type CalendarEventResponse struct {
	ID         uint      `json:"id"`
	ExternalID string    `json:"external_id,omitempty"`
	Title      string    `json:"title,omitempty"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
}

type CalendarEventListResponse struct {
	Events []CalendarEventResponse `json:"events"`
	Total  int                     `json:"total"`
}

package dto

import (
	"time"

	"github.com/google/uuid"
)

// Response DTOs

// SlotResponse is one bookable start time, in the provider's local wall
// clock and as a UTC instant.
type SlotResponse struct {
	LocalTime string    `json:"local_time"`
	StartUTC  time.Time `json:"start_utc"`
	Duration  int       `json:"duration"`
}

type AvailableSlotsResponse struct {
	ProviderID       uuid.UUID            `json:"provider_id"`
	Date             string               `json:"date"`
	Duration         int                  `json:"duration"`
	Timezone         string               `json:"timezone"`
	Slots            []SlotResponse       `json:"slots"`
	AppliedSchedules []AppliedScheduleRef `json:"applied_schedules,omitempty"`
}

type OpenSlotResponse struct {
	Date      string    `json:"date"`
	LocalTime string    `json:"local_time"`
	StartUTC  time.Time `json:"start_utc"`
	Duration  int       `json:"duration"`
}

type OpenSlotsResponse struct {
	ProviderID uuid.UUID          `json:"provider_id"`
	From       string             `json:"from"`
	To         string             `json:"to"`
	Timezone   string             `json:"timezone"`
	Slots      []OpenSlotResponse `json:"slots"`
	Total      int                `json:"total"`
}

type SlotCheckResponse struct {
	Available bool        `json:"available"`
	Conflict  interface{} `json:"conflict,omitempty"`
}

package converter

import (
	"go-appointment-booking/internal/delivery/dto"
	"go-appointment-booking/internal/domain/entity"
)

// ProviderToResponse converts a Provider entity to ProviderResponse DTO
func ProviderToResponse(p *entity.Provider) *dto.ProviderResponse {
	if p == nil {
		return nil
	}
	return &dto.ProviderResponse{
		ID:                     p.ID,
		Name:                   p.Name,
		Email:                  p.Email,
		Timezone:               p.Timezone,
		DefaultBookingDuration: p.DefaultBookingDuration,
		BufferTimeMinutes:      p.BufferTimeMinutes,
		AdvanceBookingDays:     p.AdvanceBookingDays,
		AllowedDurations:       p.AllowedDurations,
		CreatedAt:              p.CreatedAt,
		UpdatedAt:              p.UpdatedAt,
	}
}

// LocationToResponse converts a ProviderLocation entity to its DTO
func LocationToResponse(l *entity.ProviderLocation) dto.LocationResponse {
	response := dto.LocationResponse{
		ID:        l.ID,
		Label:     l.Label,
		Address:   l.Address,
		City:      l.City,
		Country:   l.Country,
		Timezone:  l.Timezone,
		IsDefault: l.IsDefault,
	}
	if l.StartDate != nil {
		response.StartDate = l.StartDate.Format("2006-01-02")
	}
	if l.EndDate != nil {
		response.EndDate = l.EndDate.Format("2006-01-02")
	}
	return response
}

func LocationsToResponses(locations []entity.ProviderLocation) []dto.LocationResponse {
	responses := make([]dto.LocationResponse, len(locations))
	for i := range locations {
		responses[i] = LocationToResponse(&locations[i])
	}
	return responses
}

// CalendarEventToResponse converts a CalendarEvent entity to its DTO
func CalendarEventToResponse(e *entity.CalendarEvent) dto.CalendarEventResponse {
	return dto.CalendarEventResponse{
		ID:         e.ID,
		ExternalID: e.ExternalID,
		Title:      e.Title,
		StartTime:  e.StartTime,
		EndTime:    e.EndTime,
	}
}

func CalendarEventsToResponses(events []entity.CalendarEvent) []dto.CalendarEventResponse {
	responses := make([]dto.CalendarEventResponse, len(events))
	for i := range events {
		responses[i] = CalendarEventToResponse(&events[i])
	}
	return responses
}

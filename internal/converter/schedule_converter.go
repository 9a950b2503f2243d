package converter

import (
	"go-appointment-booking/internal/delivery/dto"
	"go-appointment-booking/internal/domain/entity"
	"go-appointment-booking/internal/service"
)

// TimeSlotToResponse converts a TimeSlot entity to its DTO
func TimeSlotToResponse(ts *entity.TimeSlot) dto.TimeSlotResponse {
	return dto.TimeSlotResponse{
		ID:        ts.ID,
		DayOfWeek: ts.DayOfWeek,
		StartTime: ts.StartTime,
		EndTime:   ts.EndTime,
		IsEnabled: ts.IsEnabled,
	}
}

func TimeSlotsToResponses(slots []entity.TimeSlot) []dto.TimeSlotResponse {
	responses := make([]dto.TimeSlotResponse, len(slots))
	for i := range slots {
		responses[i] = TimeSlotToResponse(&slots[i])
	}
	return responses
}

// ScheduleToResponse converts an AvailabilitySchedule entity to its DTO
func ScheduleToResponse(s *entity.AvailabilitySchedule) *dto.ScheduleResponse {
	if s == nil {
		return nil
	}

	response := &dto.ScheduleResponse{
		ID:                 s.ID,
		TemplateID:         s.TemplateID,
		Name:               s.Name,
		StartDate:          s.StartDate.Format("2006-01-02"),
		IsRecurring:        s.IsRecurring,
		RecurrenceType:     string(s.RecurrenceType),
		RecurrenceInterval: s.RecurrenceInterval,
		DaysOfWeek:         s.DaysOfWeek,
		WeekOfMonth:        s.WeekOfMonth,
		MonthOfYear:        s.MonthOfYear,
		Priority:           s.Priority,
		IsActive:           s.IsActive,
		TimeSlots:          TimeSlotsToResponses(s.TimeSlots),
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
	if s.EndDate != nil {
		response.EndDate = s.EndDate.Format("2006-01-02")
	}
	return response
}

func SchedulesToResponses(schedules []entity.AvailabilitySchedule) []dto.ScheduleResponse {
	responses := make([]dto.ScheduleResponse, len(schedules))
	for i := range schedules {
		resp := ScheduleToResponse(&schedules[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// TemplateToResponse converts an AvailabilityTemplate entity to its DTO
func TemplateToResponse(t *entity.AvailabilityTemplate) *dto.TemplateResponse {
	if t == nil {
		return nil
	}
	return &dto.TemplateResponse{
		ID:         t.ID,
		ProviderID: t.ProviderID,
		Name:       t.Name,
		Timezone:   t.Timezone,
		IsDefault:  t.IsDefault,
		IsActive:   t.IsActive,
		TimeSlots:  TimeSlotsToResponses(t.TimeSlots),
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

func TemplatesToResponses(templates []entity.AvailabilityTemplate) []dto.TemplateResponse {
	responses := make([]dto.TemplateResponse, len(templates))
	for i := range templates {
		resp := TemplateToResponse(&templates[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// AppliedSchedulesToRefs converts resolver observability entries to DTOs
func AppliedSchedulesToRefs(applied []service.AppliedSchedule) []dto.AppliedScheduleRef {
	if len(applied) == 0 {
		return nil
	}
	refs := make([]dto.AppliedScheduleRef, len(applied))
	for i, a := range applied {
		refs[i] = dto.AppliedScheduleRef{ID: a.ID, Name: a.Name, Priority: a.Priority}
	}
	return refs
}

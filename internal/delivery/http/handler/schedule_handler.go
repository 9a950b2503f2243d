package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go-appointment-booking/internal/delivery/dto"
	"go-appointment-booking/internal/service"
	"go-appointment-booking/internal/usecase"
	"go-appointment-booking/pkg/response"
	"go-appointment-booking/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ScheduleHandler struct {
	scheduleUsecase usecase.ScheduleUsecase
	validator       *validator.CustomValidator
}

func NewScheduleHandler(scheduleUsecase usecase.ScheduleUsecase, validator *validator.CustomValidator) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUsecase: scheduleUsecase,
		validator:       validator,
	}
}

func (h *ScheduleHandler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	template, err := h.scheduleUsecase.CreateTemplate(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrProviderNotFound:
			response.NotFound(w, "Provider not found")
		case usecase.ErrInvalidTimeWindow:
			response.Error(w, http.StatusBadRequest, "Time slot end must be after start", nil)
		default:
			response.InternalServerError(w, "Failed to create template")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Template created successfully", template)
}

func (h *ScheduleHandler) GetTemplate(w http.ResponseWriter, r *http.Request) {
	templateID, ok := parseUintVar(w, r, "id")
	if !ok {
		return
	}

	template, err := h.scheduleUsecase.GetTemplate(r.Context(), templateID)
	if err != nil {
		switch err {
		case usecase.ErrTemplateNotFound:
			response.NotFound(w, "Template not found")
		default:
			response.InternalServerError(w, "Failed to get template")
		}
		return
	}

	response.Success(w, http.StatusOK, "Template retrieved successfully", template)
}

func (h *ScheduleHandler) GetProviderTemplates(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	providerID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid provider ID", nil)
		return
	}

	templates, err := h.scheduleUsecase.GetProviderTemplates(r.Context(), providerID)
	if err != nil {
		switch err {
		case usecase.ErrProviderNotFound:
			response.NotFound(w, "Provider not found")
		default:
			response.InternalServerError(w, "Failed to get templates")
		}
		return
	}

	response.Success(w, http.StatusOK, "Templates retrieved successfully", templates)
}

func (h *ScheduleHandler) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	templateID, ok := parseUintVar(w, r, "id")
	if !ok {
		return
	}

	var req dto.UpdateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	template, err := h.scheduleUsecase.UpdateTemplate(r.Context(), templateID, &req)
	if err != nil {
		switch err {
		case usecase.ErrTemplateNotFound:
			response.NotFound(w, "Template not found")
		case usecase.ErrInvalidTimeWindow:
			response.Error(w, http.StatusBadRequest, "Time slot end must be after start", nil)
		default:
			response.InternalServerError(w, "Failed to update template")
		}
		return
	}

	response.Success(w, http.StatusOK, "Template updated successfully", template)
}

func (h *ScheduleHandler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	schedule, err := h.scheduleUsecase.CreateSchedule(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrTemplateNotFound:
			response.NotFound(w, "Template not found")
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD", nil)
		case usecase.ErrScheduleDateRange:
			response.Error(w, http.StatusBadRequest, "End date precedes start date", nil)
		case usecase.ErrInvalidTimeWindow:
			response.Error(w, http.StatusBadRequest, "Time slot end must be after start", nil)
		case usecase.ErrInvalidRecurrence:
			response.Error(w, http.StatusBadRequest, "Invalid recurrence configuration", nil)
		case service.ErrUnsupportedRecurrence:
			response.Error(w, http.StatusUnprocessableEntity, "Recurrence type is not supported yet", nil)
		default:
			response.InternalServerError(w, "Failed to create schedule")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Schedule created successfully", schedule)
}

func (h *ScheduleHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	scheduleID, ok := parseUintVar(w, r, "id")
	if !ok {
		return
	}

	schedule, err := h.scheduleUsecase.GetSchedule(r.Context(), scheduleID)
	if err != nil {
		switch err {
		case usecase.ErrScheduleNotFound:
			response.NotFound(w, "Schedule not found")
		default:
			response.InternalServerError(w, "Failed to get schedule")
		}
		return
	}

	response.Success(w, http.StatusOK, "Schedule retrieved successfully", schedule)
}

func (h *ScheduleHandler) GetTemplateSchedules(w http.ResponseWriter, r *http.Request) {
	templateID, ok := parseUintVar(w, r, "id")
	if !ok {
		return
	}

	schedules, err := h.scheduleUsecase.GetTemplateSchedules(r.Context(), templateID)
	if err != nil {
		switch err {
		case usecase.ErrTemplateNotFound:
			response.NotFound(w, "Template not found")
		default:
			response.InternalServerError(w, "Failed to get schedules")
		}
		return
	}

	response.Success(w, http.StatusOK, "Schedules retrieved successfully", schedules)
}

func (h *ScheduleHandler) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	scheduleID, ok := parseUintVar(w, r, "id")
	if !ok {
		return
	}

	var req dto.UpdateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	schedule, err := h.scheduleUsecase.UpdateSchedule(r.Context(), scheduleID, &req)
	if err != nil {
		switch err {
		case usecase.ErrScheduleNotFound:
			response.NotFound(w, "Schedule not found")
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD", nil)
		case usecase.ErrScheduleDateRange:
			response.Error(w, http.StatusBadRequest, "End date precedes start date", nil)
		case usecase.ErrInvalidTimeWindow:
			response.Error(w, http.StatusBadRequest, "Time slot end must be after start", nil)
		default:
			response.InternalServerError(w, "Failed to update schedule")
		}
		return
	}

	response.Success(w, http.StatusOK, "Schedule updated successfully", schedule)
}

func (h *ScheduleHandler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	scheduleID, ok := parseUintVar(w, r, "id")
	if !ok {
		return
	}

	if err := h.scheduleUsecase.DeleteSchedule(r.Context(), scheduleID); err != nil {
		switch err {
		case usecase.ErrScheduleNotFound:
			response.NotFound(w, "Schedule not found")
		default:
			response.InternalServerError(w, "Failed to delete schedule")
		}
		return
	}

	response.Success(w, http.StatusOK, "Schedule deleted successfully", nil)
}

func parseUintVar(w http.ResponseWriter, r *http.Request, name string) (uint, bool) {
	raw := mux.Vars(r)[name]
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid "+name, nil)
		return 0, false
	}
	return uint(parsed), true
}

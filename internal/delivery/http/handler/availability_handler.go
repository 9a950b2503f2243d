package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"go-appointment-booking/internal/usecase"
	"go-appointment-booking/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AvailabilityHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
}

func NewAvailabilityHandler(availabilityUsecase usecase.AvailabilityUsecase) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
	}
}

// GetAvailableSlots handles GET /providers/{id}/slots?date=YYYY-MM-DD&duration=30
func (h *AvailabilityHandler) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	providerID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid provider ID", nil)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		response.Error(w, http.StatusBadRequest, "Missing required query parameter: date", nil)
		return
	}

	duration := 0
	if raw := r.URL.Query().Get("duration"); raw != "" {
		duration, err = strconv.Atoi(raw)
		if err != nil || duration < 0 {
			response.Error(w, http.StatusBadRequest, "Invalid duration", nil)
			return
		}
	}

	slots, err := h.availabilityUsecase.GetAvailableSlots(r.Context(), providerID, date, duration)
	if err != nil {
		switch err {
		case usecase.ErrProviderNotFound:
			response.NotFound(w, "Provider not found")
		case usecase.ErrTemplateNotFound:
			response.NotFound(w, "Provider has no active availability template")
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD", nil)
		case usecase.ErrDurationNotAllowed:
			response.Error(w, http.StatusBadRequest, "Duration is not allowed for this provider", nil)
		case usecase.ErrInvalidTimezone:
			response.InternalServerError(w, "Provider timezone configuration is invalid")
		default:
			response.InternalServerError(w, "Failed to compute available slots")
		}
		return
	}

	response.Success(w, http.StatusOK, "Available slots retrieved successfully", slots)
}

// GetOpenSlots handles GET /providers/{id}/open-slots?from=&to=&durations=30,60
func (h *AvailabilityHandler) GetOpenSlots(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	providerID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid provider ID", nil)
		return
	}

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		response.Error(w, http.StatusBadRequest, "Missing required query parameters: from, to", nil)
		return
	}

	var durations []int
	if raw := r.URL.Query().Get("durations"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			d, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || d <= 0 {
				response.Error(w, http.StatusBadRequest, "Invalid durations", nil)
				return
			}
			durations = append(durations, d)
		}
	}

	slots, err := h.availabilityUsecase.GetOpenSlotsRange(r.Context(), providerID, from, to, durations)
	if err != nil {
		switch err {
		case usecase.ErrProviderNotFound:
			response.NotFound(w, "Provider not found")
		case usecase.ErrTemplateNotFound:
			response.NotFound(w, "Provider has no active availability template")
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD", nil)
		case usecase.ErrInvalidDateRange:
			response.Error(w, http.StatusBadRequest, "End date precedes start date", nil)
		case usecase.ErrDurationNotAllowed:
			response.Error(w, http.StatusBadRequest, "Duration is not allowed for this provider", nil)
		default:
			response.InternalServerError(w, "Failed to compute open slots")
		}
		return
	}

	response.Success(w, http.StatusOK, "Open slots retrieved successfully", slots)
}

// CheckSlot handles GET /providers/{id}/slots/check?start=RFC3339&duration=30
func (h *AvailabilityHandler) CheckSlot(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	providerID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid provider ID", nil)
		return
	}

	start, err := time.Parse(time.RFC3339, r.URL.Query().Get("start"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid start, expected RFC3339 timestamp", nil)
		return
	}

	duration := 0
	if raw := r.URL.Query().Get("duration"); raw != "" {
		duration, err = strconv.Atoi(raw)
		if err != nil || duration < 0 {
			response.Error(w, http.StatusBadRequest, "Invalid duration", nil)
			return
		}
	}

	result, err := h.availabilityUsecase.IsSlotAvailable(r.Context(), providerID, start, duration)
	if err != nil {
		switch err {
		case usecase.ErrProviderNotFound:
			response.NotFound(w, "Provider not found")
		case usecase.ErrDurationNotAllowed:
			response.Error(w, http.StatusBadRequest, "Duration is not allowed for this provider", nil)
		default:
			response.InternalServerError(w, "Failed to check slot")
		}
		return
	}

	response.Success(w, http.StatusOK, "Slot checked successfully", result)
}

// GetEffectiveAvailability handles GET /templates/{id}/effective?date=YYYY-MM-DD
func (h *AvailabilityHandler) GetEffectiveAvailability(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	templateID, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid template ID", nil)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		response.Error(w, http.StatusBadRequest, "Missing required query parameter: date", nil)
		return
	}

	result, err := h.availabilityUsecase.EffectiveAvailability(r.Context(), uint(templateID), date)
	if err != nil {
		switch err {
		case usecase.ErrTemplateNotFound:
			response.NotFound(w, "Template not found")
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to resolve effective availability")
		}
		return
	}

	response.Success(w, http.StatusOK, "Effective availability retrieved successfully", result)
}

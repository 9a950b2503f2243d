package handler

import (
	"encoding/json"
	"net/http"

	"go-appointment-booking/internal/delivery/dto"
	"go-appointment-booking/internal/usecase"
	"go-appointment-booking/pkg/response"
	"go-appointment-booking/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ProviderHandler struct {
	providerUsecase usecase.ProviderUsecase
	validator       *validator.CustomValidator
}

func NewProviderHandler(providerUsecase usecase.ProviderUsecase, validator *validator.CustomValidator) *ProviderHandler {
	return &ProviderHandler{
		providerUsecase: providerUsecase,
		validator:       validator,
	}
}

func (h *ProviderHandler) CreateProvider(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProviderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	provider, err := h.providerUsecase.CreateProvider(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrProviderEmailTaken:
			response.Error(w, http.StatusConflict, "Provider email is already registered", nil)
		default:
			response.InternalServerError(w, "Failed to create provider")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Provider created successfully", provider)
}

func (h *ProviderHandler) GetProvider(w http.ResponseWriter, r *http.Request) {
	providerID, ok := parseProviderID(w, r)
	if !ok {
		return
	}

	provider, err := h.providerUsecase.GetProvider(r.Context(), providerID)
	if err != nil {
		switch err {
		case usecase.ErrProviderNotFound:
			response.NotFound(w, "Provider not found")
		default:
			response.InternalServerError(w, "Failed to get provider")
		}
		return
	}

	response.Success(w, http.StatusOK, "Provider retrieved successfully", provider)
}

func (h *ProviderHandler) AddLocation(w http.ResponseWriter, r *http.Request) {
	providerID, ok := parseProviderID(w, r)
	if !ok {
		return
	}

	var req dto.CreateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	location, err := h.providerUsecase.AddLocation(r.Context(), providerID, &req)
	if err != nil {
		switch err {
		case usecase.ErrProviderNotFound:
			response.NotFound(w, "Provider not found")
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD", nil)
		case usecase.ErrInvalidDateRange:
			response.Error(w, http.StatusBadRequest, "End date precedes start date", nil)
		default:
			response.InternalServerError(w, "Failed to create location")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Location created successfully", location)
}

func (h *ProviderHandler) GetLocations(w http.ResponseWriter, r *http.Request) {
	providerID, ok := parseProviderID(w, r)
	if !ok {
		return
	}

	locations, err := h.providerUsecase.GetLocations(r.Context(), providerID)
	if err != nil {
		switch err {
		case usecase.ErrProviderNotFound:
			response.NotFound(w, "Provider not found")
		default:
			response.InternalServerError(w, "Failed to get locations")
		}
		return
	}

	response.Success(w, http.StatusOK, "Locations retrieved successfully", locations)
}

func (h *ProviderHandler) UpsertCalendarEvent(w http.ResponseWriter, r *http.Request) {
	providerID, ok := parseProviderID(w, r)
	if !ok {
		return
	}

	var req dto.UpsertCalendarEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	event, err := h.providerUsecase.UpsertCalendarEvent(r.Context(), providerID, &req)
	if err != nil {
		switch err {
		case usecase.ErrProviderNotFound:
			response.NotFound(w, "Provider not found")
		case usecase.ErrInvalidEventWindow:
			response.Error(w, http.StatusBadRequest, "Event end must be after start", nil)
		default:
			response.InternalServerError(w, "Failed to store calendar event")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Calendar event stored successfully", event)
}

func (h *ProviderHandler) GetCalendarEvents(w http.ResponseWriter, r *http.Request) {
	providerID, ok := parseProviderID(w, r)
	if !ok {
		return
	}

	events, err := h.providerUsecase.GetCalendarEvents(r.Context(), providerID)
	if err != nil {
		switch err {
		case usecase.ErrProviderNotFound:
			response.NotFound(w, "Provider not found")
		default:
			response.InternalServerError(w, "Failed to get calendar events")
		}
		return
	}

	response.Success(w, http.StatusOK, "Calendar events retrieved successfully", events)
}

func (h *ProviderHandler) CreateServiceOffering(w http.ResponseWriter, r *http.Request) {
	providerID, ok := parseProviderID(w, r)
	if !ok {
		return
	}

	var req dto.CreateServiceOfferingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	offering, err := h.providerUsecase.AddServiceOffering(r.Context(), providerID, &req)
	if err != nil {
		switch err {
		case usecase.ErrProviderNotFound:
			response.NotFound(w, "Provider not found")
		case usecase.ErrOfferingNameTaken:
			response.Error(w, http.StatusConflict, "Service offering name is already in use", nil)
		case usecase.ErrInvalidPrice:
			response.Error(w, http.StatusBadRequest, "Price must not be negative", nil)
		default:
			response.InternalServerError(w, "Failed to create service offering")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Service offering created successfully", offering)
}

func (h *ProviderHandler) GetServiceOfferings(w http.ResponseWriter, r *http.Request) {
	providerID, ok := parseProviderID(w, r)
	if !ok {
		return
	}

	offerings, err := h.providerUsecase.GetServiceOfferings(r.Context(), providerID)
	if err != nil {
		switch err {
		case usecase.ErrProviderNotFound:
			response.NotFound(w, "Provider not found")
		default:
			response.InternalServerError(w, "Failed to get service offerings")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service offerings retrieved successfully", offerings)
}

func (h *ProviderHandler) UpdateServiceOffering(w http.ResponseWriter, r *http.Request) {
	offeringID, ok := parseUintVar(w, r, "offeringId")
	if !ok {
		return
	}

	var req dto.UpdateServiceOfferingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	offering, err := h.providerUsecase.UpdateServiceOffering(r.Context(), offeringID, &req)
	if err != nil {
		switch err {
		case usecase.ErrOfferingNotFound:
			response.NotFound(w, "Service offering not found")
		case usecase.ErrInvalidPrice:
			response.Error(w, http.StatusBadRequest, "Price must not be negative", nil)
		default:
			response.InternalServerError(w, "Failed to update service offering")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service offering updated successfully", offering)
}

func parseProviderID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	providerID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid provider ID", nil)
		return uuid.Nil, false
	}
	return providerID, true
}

package handler

import (
	"encoding/json"
	"net/http"

	"go-appointment-booking/internal/delivery/dto"
	"go-appointment-booking/internal/domain/entity"
	"go-appointment-booking/internal/usecase"
	"go-appointment-booking/pkg/response"
	"go-appointment-booking/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

// bookingWithToken is the creation payload: the booking plus the confirm
// magic-link token. The token is returned in the API response until an
// email delivery channel carries it instead.
type bookingWithToken struct {
	Booking      *dto.BookingResponse `json:"booking"`
	ConfirmToken string               `json:"confirm_token,omitempty"`
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, token, err := h.bookingUsecase.RequestBooking(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrProviderNotFound:
			response.NotFound(w, "Provider not found")
		case usecase.ErrDurationNotAllowed:
			response.Error(w, http.StatusBadRequest, "Duration is not allowed for this provider", nil)
		case usecase.ErrPastSlot:
			response.Error(w, http.StatusBadRequest, "Requested slot starts too soon or in the past", nil)
		case usecase.ErrBeyondHorizon:
			response.Error(w, http.StatusBadRequest, "Requested slot is beyond the booking horizon", nil)
		case usecase.ErrSlotContended:
			response.Conflict(w, "Slot is being booked by someone else, try again", nil)
		case usecase.ErrSlotUnavailable:
			response.Conflict(w, "Requested slot is no longer available", nil)
		default:
			response.InternalServerError(w, "Failed to create booking")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Booking created successfully", bookingWithToken{
		Booking:      booking,
		ConfirmToken: token,
	})
}

func (h *BookingHandler) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	var req dto.ConfirmBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.ConfirmBooking(r.Context(), req.Token)
	if err != nil {
		switch err {
		case usecase.ErrInvalidToken:
			response.Error(w, http.StatusUnauthorized, "Magic link token is invalid or expired", nil)
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		case usecase.ErrInvalidTransition:
			response.Conflict(w, "Booking can no longer be confirmed", nil)
		default:
			response.InternalServerError(w, "Failed to confirm booking")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking confirmed successfully", booking)
}

func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	// Customers present their cancel magic-link token; the provider-side
	// API cancels without one.
	token := r.URL.Query().Get("token")

	booking, err := h.bookingUsecase.CancelBooking(r.Context(), bookingID, token)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		case usecase.ErrInvalidToken:
			response.Error(w, http.StatusUnauthorized, "Magic link token is invalid or expired", nil)
		case usecase.ErrTokenBookingMismatch:
			response.Error(w, http.StatusForbidden, "Token does not match this booking", nil)
		case usecase.ErrInvalidTransition:
			response.Conflict(w, "Booking can no longer be cancelled", nil)
		default:
			response.InternalServerError(w, "Failed to cancel booking")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking cancelled successfully", booking)
}

func (h *BookingHandler) RescheduleBooking(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	var req dto.RescheduleBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, token, err := h.bookingUsecase.RescheduleBooking(r.Context(), bookingID, &req)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		case usecase.ErrProviderNotFound:
			response.NotFound(w, "Provider not found")
		case usecase.ErrInvalidTransition:
			response.Conflict(w, "Booking can no longer be rescheduled", nil)
		case usecase.ErrDurationNotAllowed:
			response.Error(w, http.StatusBadRequest, "Duration is not allowed for this provider", nil)
		case usecase.ErrPastSlot:
			response.Error(w, http.StatusBadRequest, "Requested slot starts too soon or in the past", nil)
		case usecase.ErrBeyondHorizon:
			response.Error(w, http.StatusBadRequest, "Requested slot is beyond the booking horizon", nil)
		case usecase.ErrSlotContended:
			response.Conflict(w, "Slot is being booked by someone else, try again", nil)
		case usecase.ErrSlotUnavailable:
			response.Conflict(w, "Requested slot is no longer available", nil)
		default:
			response.InternalServerError(w, "Failed to reschedule booking")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking rescheduled successfully", bookingWithToken{
		Booking:      booking,
		ConfirmToken: token,
	})
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	booking, err := h.bookingUsecase.GetBooking(r.Context(), bookingID)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		default:
			response.InternalServerError(w, "Failed to get booking")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking retrieved successfully", booking)
}

func (h *BookingHandler) GetProviderBookings(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	providerID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid provider ID", nil)
		return
	}

	query := r.URL.Query()
	filter := &entity.BookingFilter{
		From:        query.Get("from"),
		To:          query.Get("to"),
		Status:      query.Get("status"),
		ServiceType: query.Get("service_type"),
	}

	bookings, err := h.bookingUsecase.GetProviderBookings(r.Context(), providerID, filter)
	if err != nil {
		switch err {
		case usecase.ErrProviderNotFound:
			response.NotFound(w, "Provider not found")
		default:
			response.InternalServerError(w, "Failed to get bookings")
		}
		return
	}

	response.Success(w, http.StatusOK, "Bookings retrieved successfully", bookings)
}

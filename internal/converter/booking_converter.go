package converter

import (
	"go-appointment-booking/internal/delivery/dto"
	"go-appointment-booking/internal/domain/entity"

	"github.com/google/uuid"
)

// BookingToResponse converts a Booking entity to BookingResponse DTO
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	response := &dto.BookingResponse{
		ID:          booking.ID,
		ProviderID:  booking.ProviderID,
		CustomerID:  booking.CustomerID,
		BookingCode: booking.BookingCode,
		ScheduledAt: booking.ScheduledAt,
		Duration:    booking.Duration,
		Status:      string(booking.Status),
		ServiceType: booking.ServiceType,
		Notes:       booking.Notes,
		CreatedAt:   booking.CreatedAt,
		UpdatedAt:   booking.UpdatedAt,
	}

	if booking.Customer.ID != uuid.Nil {
		response.Customer = &dto.CustomerResponse{
			ID:       booking.Customer.ID,
			Email:    booking.Customer.Email,
			FullName: booking.Customer.FullName,
			Phone:    booking.Customer.Phone,
		}
	}

	return response
}

// BookingsToResponses converts a slice of Booking entities to slice of BookingResponse DTOs
func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i, booking := range bookings {
		resp := BookingToResponse(&booking)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

package converter

import (
	"go-appointment-booking/internal/delivery/dto"
	"go-appointment-booking/internal/domain/entity"
)

func ServiceOfferingToResponse(o *entity.ServiceOffering) *dto.ServiceOfferingResponse {
	if o == nil {
		return nil
	}
	return &dto.ServiceOfferingResponse{
		ID:              o.ID,
		ProviderID:      o.ProviderID,
		Name:            o.Name,
		Description:     o.Description,
		Price:           o.Price,
		DurationMinutes: o.DurationMinutes,
		IsActive:        o.IsActive,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func ServiceOfferingsToResponses(offerings []entity.ServiceOffering) []dto.ServiceOfferingResponse {
	responses := make([]dto.ServiceOfferingResponse, 0, len(offerings))
	for i := range offerings {
		responses = append(responses, *ServiceOfferingToResponse(&offerings[i]))
	}
	return responses
}

package usecase

import (
	"context"
	"errors"
	"time"

	"go-appointment-booking/internal/converter"
	"go-appointment-booking/internal/delivery/dto"
	"go-appointment-booking/internal/domain/entity"
	"go-appointment-booking/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrProviderEmailTaken = errors.New("provider email is already registered")
	ErrInvalidEventWindow = errors.New("event end must be after start")
	ErrOfferingNotFound   = errors.New("service offering not found")
	ErrOfferingNameTaken  = errors.New("service offering name is already in use")
	ErrInvalidPrice       = errors.New("price must not be negative")
)

type ProviderUsecase interface {
	CreateProvider(ctx context.Context, request *dto.CreateProviderRequest) (*dto.ProviderResponse, error)
	GetProvider(ctx context.Context, id uuid.UUID) (*dto.ProviderResponse, error)
	AddLocation(ctx context.Context, providerID uuid.UUID, request *dto.CreateLocationRequest) (*dto.LocationResponse, error)
	GetLocations(ctx context.Context, providerID uuid.UUID) (*dto.LocationListResponse, error)
	UpsertCalendarEvent(ctx context.Context, providerID uuid.UUID, request *dto.UpsertCalendarEventRequest) (*dto.CalendarEventResponse, error)
	GetCalendarEvents(ctx context.Context, providerID uuid.UUID) (*dto.CalendarEventListResponse, error)
	AddServiceOffering(ctx context.Context, providerID uuid.UUID, request *dto.CreateServiceOfferingRequest) (*dto.ServiceOfferingResponse, error)
	GetServiceOfferings(ctx context.Context, providerID uuid.UUID) (*dto.ServiceOfferingListResponse, error)
	UpdateServiceOffering(ctx context.Context, id uint, request *dto.UpdateServiceOfferingRequest) (*dto.ServiceOfferingResponse, error)
}

type providerUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	providerRepo repository.ProviderRepository
	eventRepo    repository.CalendarEventRepository
	offeringRepo repository.ServiceOfferingRepository
}

func NewProviderUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	providerRepo repository.ProviderRepository,
	eventRepo repository.CalendarEventRepository,
	offeringRepo repository.ServiceOfferingRepository,
) ProviderUsecase {
	return &providerUsecase{
		db:           db,
		log:          log,
		providerRepo: providerRepo,
		eventRepo:    eventRepo,
		offeringRepo: offeringRepo,
	}
}

func (u *providerUsecase) CreateProvider(ctx context.Context, request *dto.CreateProviderRequest) (*dto.ProviderResponse, error) {
	existing, err := u.providerRepo.FindByEmail(ctx, u.db, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrProviderEmailTaken
	}

	provider := &entity.Provider{
		Name:                   request.Name,
		Email:                  request.Email,
		Timezone:               request.Timezone,
		DefaultBookingDuration: request.DefaultBookingDuration,
		BufferTimeMinutes:      request.BufferTimeMinutes,
		AdvanceBookingDays:     request.AdvanceBookingDays,
		AllowedDurations:       entity.IntList(request.AllowedDurations),
	}
	if provider.DefaultBookingDuration == 0 {
		provider.DefaultBookingDuration = 30
	}
	if provider.AdvanceBookingDays == 0 {
		provider.AdvanceBookingDays = 30
	}

	if err := u.providerRepo.Create(ctx, u.db, provider); err != nil {
		u.log.Warnf("Failed to create provider: %+v", err)
		return nil, err
	}
	return converter.ProviderToResponse(provider), nil
}

func (u *providerUsecase) GetProvider(ctx context.Context, id uuid.UUID) (*dto.ProviderResponse, error) {
	provider, err := u.providerRepo.FindByID(ctx, u.db, id)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, ErrProviderNotFound
	}
	return converter.ProviderToResponse(provider), nil
}

func (u *providerUsecase) AddLocation(ctx context.Context, providerID uuid.UUID, request *dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	provider, err := u.providerRepo.FindByID(ctx, u.db, providerID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, ErrProviderNotFound
	}

	location := &entity.ProviderLocation{
		ProviderID: provider.ID,
		Label:      request.Label,
		Address:    request.Address,
		City:       request.City,
		Country:    request.Country,
		Timezone:   request.Timezone,
		IsDefault:  request.IsDefault,
	}
	if request.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", request.StartDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		location.StartDate = &parsed
	}
	if request.EndDate != "" {
		parsed, err := time.Parse("2006-01-02", request.EndDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		if location.StartDate != nil && parsed.Before(*location.StartDate) {
			return nil, ErrInvalidDateRange
		}
		location.EndDate = &parsed
	}

	if err := u.providerRepo.CreateLocation(ctx, u.db, location); err != nil {
		u.log.Warnf("Failed to create location for provider %s: %+v", providerID, err)
		return nil, err
	}
	response := converter.LocationToResponse(location)
	return &response, nil
}

func (u *providerUsecase) GetLocations(ctx context.Context, providerID uuid.UUID) (*dto.LocationListResponse, error) {
	provider, err := u.providerRepo.FindByID(ctx, u.db, providerID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, ErrProviderNotFound
	}

	locations, err := u.providerRepo.FindLocations(ctx, u.db, providerID)
	if err != nil {
		return nil, err
	}
	return &dto.LocationListResponse{
		Locations: converter.LocationsToResponses(locations),
		Total:     len(locations),
	}, nil
}

// UpsertCalendarEvent ingests one external busy block, keyed by its
// external id when present so repeated syncs refresh rather than duplicate.
func (u *providerUsecase) UpsertCalendarEvent(ctx context.Context, providerID uuid.UUID, request *dto.UpsertCalendarEventRequest) (*dto.CalendarEventResponse, error) {
	provider, err := u.providerRepo.FindByID(ctx, u.db, providerID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, ErrProviderNotFound
	}

	if !request.EndTime.After(request.StartTime) {
		return nil, ErrInvalidEventWindow
	}

	event := &entity.CalendarEvent{
		ProviderID: provider.ID,
		ExternalID: request.ExternalID,
		Title:      request.Title,
		StartTime:  request.StartTime.UTC(),
		EndTime:    request.EndTime.UTC(),
	}

	if event.ExternalID != "" {
		err = u.eventRepo.UpsertByExternalID(ctx, u.db, event)
	} else {
		err = u.eventRepo.Create(ctx, u.db, event)
	}
	if err != nil {
		u.log.Warnf("Failed to store calendar event for provider %s: %+v", providerID, err)
		return nil, err
	}

	response := converter.CalendarEventToResponse(event)
	return &response, nil
}

// AddServiceOffering adds a priced service to the provider's catalog.
// Bookings reference offerings by name, so names are unique per provider.
func (u *providerUsecase) AddServiceOffering(ctx context.Context, providerID uuid.UUID, request *dto.CreateServiceOfferingRequest) (*dto.ServiceOfferingResponse, error) {
	provider, err := u.providerRepo.FindByID(ctx, u.db, providerID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, ErrProviderNotFound
	}

	if request.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	existing, err := u.offeringRepo.FindActiveByName(ctx, u.db, provider.ID, request.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrOfferingNameTaken
	}

	offering := &entity.ServiceOffering{
		ProviderID:      provider.ID,
		Name:            request.Name,
		Description:     request.Description,
		Price:           request.Price,
		DurationMinutes: request.DurationMinutes,
		IsActive:        true,
	}
	if offering.DurationMinutes == 0 {
		offering.DurationMinutes = provider.DefaultBookingDuration
	}

	if err := u.offeringRepo.Create(ctx, u.db, offering); err != nil {
		u.log.Warnf("Failed to create service offering for provider %s: %+v", providerID, err)
		return nil, err
	}
	return converter.ServiceOfferingToResponse(offering), nil
}

func (u *providerUsecase) GetServiceOfferings(ctx context.Context, providerID uuid.UUID) (*dto.ServiceOfferingListResponse, error) {
	provider, err := u.providerRepo.FindByID(ctx, u.db, providerID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, ErrProviderNotFound
	}

	offerings, err := u.offeringRepo.FindByProviderID(ctx, u.db, providerID)
	if err != nil {
		return nil, err
	}
	return &dto.ServiceOfferingListResponse{
		Offerings: converter.ServiceOfferingsToResponses(offerings),
		Total:     len(offerings),
	}, nil
}

func (u *providerUsecase) UpdateServiceOffering(ctx context.Context, id uint, request *dto.UpdateServiceOfferingRequest) (*dto.ServiceOfferingResponse, error) {
	offering, err := u.offeringRepo.FindByID(ctx, u.db, id)
	if err != nil {
		return nil, err
	}
	if offering == nil {
		return nil, ErrOfferingNotFound
	}

	if request.Name != "" {
		offering.Name = request.Name
	}
	if request.Description != "" {
		offering.Description = request.Description
	}
	if request.Price != nil {
		if request.Price.IsNegative() {
			return nil, ErrInvalidPrice
		}
		offering.Price = *request.Price
	}
	if request.DurationMinutes != 0 {
		offering.DurationMinutes = request.DurationMinutes
	}
	if request.IsActive != nil {
		offering.IsActive = *request.IsActive
	}

	if err := u.offeringRepo.Update(ctx, u.db, offering); err != nil {
		u.log.Warnf("Failed to update service offering %d: %+v", id, err)
		return nil, err
	}
	return converter.ServiceOfferingToResponse(offering), nil
}

func (u *providerUsecase) GetCalendarEvents(ctx context.Context, providerID uuid.UUID) (*dto.CalendarEventListResponse, error) {
	provider, err := u.providerRepo.FindByID(ctx, u.db, providerID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, ErrProviderNotFound
	}

	events, err := u.eventRepo.FindByProviderID(ctx, u.db, providerID)
	if err != nil {
		return nil, err
	}
	return &dto.CalendarEventListResponse{
		Events: converter.CalendarEventsToResponses(events),
		Total:  len(events),
	}, nil
}

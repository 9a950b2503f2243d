package usecase

import (
	"context"
	"errors"
	"time"

	"go-appointment-booking/config"
	"go-appointment-booking/internal/converter"
	"go-appointment-booking/internal/delivery/dto"
	"go-appointment-booking/internal/domain/entity"
	"go-appointment-booking/internal/domain/repository"
	"go-appointment-booking/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrProviderNotFound   = errors.New("provider not found")
	ErrTemplateNotFound   = errors.New("no active default availability template for provider")
	ErrInvalidDate        = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidDateRange   = errors.New("date range end precedes start")
	ErrDurationNotAllowed = errors.New("requested duration is not allowed for this provider")
	ErrInvalidTimezone    = errors.New("provider timezone configuration is invalid")
)

type AvailabilityUsecase interface {
	GetAvailableSlots(ctx context.Context, providerID uuid.UUID, date string, duration int) (*dto.AvailableSlotsResponse, error)
	GetOpenSlotsRange(ctx context.Context, providerID uuid.UUID, from, to string, durations []int) (*dto.OpenSlotsResponse, error)
	IsSlotAvailable(ctx context.Context, providerID uuid.UUID, start time.Time, duration int) (*dto.SlotCheckResponse, error)
	EffectiveAvailability(ctx context.Context, templateID uint, date string) (*dto.EffectiveAvailabilityResponse, error)
}

type availabilityUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	cfg          config.BookingConfig
	providerRepo repository.ProviderRepository
	templateRepo repository.TemplateRepository
	resolver     *service.ScheduleResolver
	aggregator   *service.BusyTimeAggregator
	conflicts    *service.ConflictResolver
	calendarSync service.CalendarSync
	now          func() time.Time
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cfg config.BookingConfig,
	providerRepo repository.ProviderRepository,
	templateRepo repository.TemplateRepository,
	resolver *service.ScheduleResolver,
	aggregator *service.BusyTimeAggregator,
	conflicts *service.ConflictResolver,
	calendarSync service.CalendarSync,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:           db,
		log:          log,
		cfg:          cfg,
		providerRepo: providerRepo,
		templateRepo: templateRepo,
		resolver:     resolver,
		aggregator:   aggregator,
		conflicts:    conflicts,
		calendarSync: calendarSync,
		now:          time.Now,
	}
}

// GetAvailableSlots computes the bookable start times for one date.
//
// Pipeline: resolve template + overrides for the date, expand windows into
// candidate slots in the resolved timezone, subtract busy time (bookings
// with buffer, calendar events without), return what survives.
func (u *availabilityUsecase) GetAvailableSlots(ctx context.Context, providerID uuid.UUID, date string, duration int) (*dto.AvailableSlotsResponse, error) {
	provider, err := u.providerRepo.FindByID(ctx, u.db, providerID)
	if err != nil {
		u.log.Warnf("Failed to find provider %s: %+v", providerID, err)
		return nil, err
	}
	if provider == nil {
		return nil, ErrProviderNotFound
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	if duration == 0 {
		duration = provider.DefaultBookingDuration
	}
	if !provider.IsDurationAllowed(duration) {
		return nil, ErrDurationNotAllowed
	}

	response := &dto.AvailableSlotsResponse{
		ProviderID: provider.ID,
		Date:       date,
		Duration:   duration,
		Timezone:   provider.Timezone,
		Slots:      []dto.SlotResponse{},
	}

	// Dates beyond the provider's booking horizon have no bookable slots.
	horizon := entity.DateOnly(u.now()).AddDate(0, 0, provider.AdvanceBookingDays)
	if entity.DateOnly(day).After(horizon) {
		return response, nil
	}

	slots, applied, tz, err := u.computeDaySlots(ctx, provider, day, duration)
	if err != nil {
		return nil, err
	}

	response.Timezone = tz
	response.AppliedSchedules = converter.AppliedSchedulesToRefs(applied)
	for _, s := range slots {
		response.Slots = append(response.Slots, dto.SlotResponse{
			LocalTime: s.LocalTime,
			StartUTC:  s.StartUTC,
			Duration:  s.Duration,
		})
	}
	return response, nil
}

// GetOpenSlotsRange is the batched multi-day, multi-duration variant. The
// range is capped at the provider's advance-booking horizon.
func (u *availabilityUsecase) GetOpenSlotsRange(ctx context.Context, providerID uuid.UUID, from, to string, durations []int) (*dto.OpenSlotsResponse, error) {
	provider, err := u.providerRepo.FindByID(ctx, u.db, providerID)
	if err != nil {
		u.log.Warnf("Failed to find provider %s: %+v", providerID, err)
		return nil, err
	}
	if provider == nil {
		return nil, ErrProviderNotFound
	}

	fromDay, err := time.Parse("2006-01-02", from)
	if err != nil {
		return nil, ErrInvalidDate
	}
	toDay, err := time.Parse("2006-01-02", to)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if toDay.Before(fromDay) {
		return nil, ErrInvalidDateRange
	}

	if len(durations) == 0 {
		if len(provider.AllowedDurations) > 0 {
			durations = provider.AllowedDurations
		} else {
			durations = []int{provider.DefaultBookingDuration}
		}
	}
	for _, d := range durations {
		if !provider.IsDurationAllowed(d) {
			return nil, ErrDurationNotAllowed
		}
	}

	horizon := entity.DateOnly(u.now()).AddDate(0, 0, provider.AdvanceBookingDays)
	if entity.DateOnly(toDay).After(horizon) {
		toDay = horizon
	}

	response := &dto.OpenSlotsResponse{
		ProviderID: provider.ID,
		From:       from,
		To:         toDay.Format("2006-01-02"),
		Timezone:   provider.Timezone,
		Slots:      []dto.OpenSlotResponse{},
	}

	// One best-effort resync covers the whole range.
	rangeStart := entity.DateOnly(fromDay)
	rangeEnd := entity.DateOnly(toDay).AddDate(0, 0, 1)
	service.SyncBestEffort(ctx, u.log, u.calendarSync, provider.ID, rangeStart, rangeEnd, u.cfg.SyncTimeout)

	for day := entity.DateOnly(fromDay); !day.After(entity.DateOnly(toDay)); day = day.AddDate(0, 0, 1) {
		dateStr := day.Format("2006-01-02")
		for _, duration := range durations {
			slots, _, tz, err := u.computeDaySlotsNoSync(ctx, provider, day, duration)
			if err != nil {
				return nil, err
			}
			response.Timezone = tz
			for _, s := range slots {
				response.Slots = append(response.Slots, dto.OpenSlotResponse{
					Date:      dateStr,
					LocalTime: s.LocalTime,
					StartUTC:  s.StartUTC,
					Duration:  s.Duration,
				})
			}
		}
	}

	response.Total = len(response.Slots)
	return response, nil
}

// IsSlotAvailable re-checks one concrete slot against the current store
// state, the same check booking creation runs.
func (u *availabilityUsecase) IsSlotAvailable(ctx context.Context, providerID uuid.UUID, start time.Time, duration int) (*dto.SlotCheckResponse, error) {
	provider, err := u.providerRepo.FindByID(ctx, u.db, providerID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, ErrProviderNotFound
	}

	if duration == 0 {
		duration = provider.DefaultBookingDuration
	}
	if !provider.IsDurationAllowed(duration) {
		return nil, ErrDurationNotAllowed
	}

	if !start.After(u.now().Add(u.cfg.LeadTime)) {
		return &dto.SlotCheckResponse{Available: false}, nil
	}

	service.SyncBestEffort(ctx, u.log, u.calendarSync, provider.ID, start, start.Add(time.Duration(duration)*time.Minute), u.cfg.SyncTimeout)

	conflict, err := u.conflicts.ValidateBookingRequest(ctx, u.db, provider, start.UTC(), duration)
	if err != nil {
		return nil, err
	}
	if conflict != nil {
		return &dto.SlotCheckResponse{Available: false, Conflict: conflict}, nil
	}
	return &dto.SlotCheckResponse{Available: true}, nil
}

// EffectiveAvailability previews which windows and schedules apply on a
// date without expanding them into slots.
func (u *availabilityUsecase) EffectiveAvailability(ctx context.Context, templateID uint, date string) (*dto.EffectiveAvailabilityResponse, error) {
	template, err := u.templateRepo.FindByID(ctx, u.db, templateID)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, ErrTemplateNotFound
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	effective, err := u.resolver.EffectiveAvailability(ctx, u.db, template, day)
	if err != nil {
		return nil, err
	}

	return &dto.EffectiveAvailabilityResponse{
		TemplateID:       template.ID,
		Date:             date,
		FromTemplate:     effective.FromTemplate,
		TimeSlots:        converter.TimeSlotsToResponses(effective.TimeSlots),
		AppliedSchedules: converter.AppliedSchedulesToRefs(effective.AppliedSchedules),
	}, nil
}

// computeDaySlots runs the full pipeline for one date including the
// best-effort calendar resync.
func (u *availabilityUsecase) computeDaySlots(ctx context.Context, provider *entity.Provider, day time.Time, duration int) ([]service.SlotCandidate, []service.AppliedSchedule, string, error) {
	dayStart := entity.DateOnly(day)
	service.SyncBestEffort(ctx, u.log, u.calendarSync, provider.ID, dayStart, dayStart.AddDate(0, 0, 1), u.cfg.SyncTimeout)
	return u.computeDaySlotsNoSync(ctx, provider, day, duration)
}

func (u *availabilityUsecase) computeDaySlotsNoSync(ctx context.Context, provider *entity.Provider, day time.Time, duration int) ([]service.SlotCandidate, []service.AppliedSchedule, string, error) {
	template, err := u.templateRepo.FindDefaultByProviderID(ctx, u.db, provider.ID)
	if err != nil {
		return nil, nil, "", err
	}
	if template == nil {
		return nil, nil, "", ErrTemplateNotFound
	}

	effective, err := u.resolver.EffectiveAvailability(ctx, u.db, template, day)
	if err != nil {
		return nil, nil, "", err
	}

	locations, err := u.providerRepo.FindLocations(ctx, u.db, provider.ID)
	if err != nil {
		return nil, nil, "", err
	}

	fallbackTZ := template.Timezone
	if fallbackTZ == "" {
		fallbackTZ = provider.Timezone
	}
	loc, err := service.ResolveTimezone(fallbackTZ, locations, day)
	if err != nil {
		u.log.Warnf("Bad timezone configuration for provider %s: %+v", provider.ID, err)
		return nil, nil, "", ErrInvalidTimezone
	}

	candidates := service.GenerateSlots(effective.TimeSlots, day, duration, u.cfg.SlotStepMinutes, loc, u.now(), u.cfg.LeadTime)
	if len(candidates) == 0 {
		return nil, effective.AppliedSchedules, loc.String(), nil
	}

	// Busy lookup covers the local calendar day as a UTC window. The end
	// is the next local midnight, not start+24h: a DST fall-back day runs
	// 25 local hours.
	y, m, d := day.Date()
	windowStart := time.Date(y, m, d, 0, 0, 0, 0, loc).UTC()
	windowEnd := time.Date(y, m, d+1, 0, 0, 0, 0, loc).UTC()

	busy, err := u.aggregator.BusyIntervals(ctx, u.db, provider, windowStart, windowEnd)
	if err != nil {
		return nil, nil, "", err
	}

	return service.FilterAvailable(candidates, busy), effective.AppliedSchedules, loc.String(), nil
}

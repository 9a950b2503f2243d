package usecase

import (
	"context"
	"errors"
	"time"

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
	ErrScheduleNotFound  = errors.New("schedule not found")
	ErrInvalidTimeWindow = errors.New("time slot end must be after start")
	ErrInvalidRecurrence = errors.New("invalid recurrence configuration")
	ErrScheduleDateRange = errors.New("schedule end date precedes start date")
)

type ScheduleUsecase interface {
	CreateTemplate(ctx context.Context, request *dto.CreateTemplateRequest) (*dto.TemplateResponse, error)
	GetTemplate(ctx context.Context, id uint) (*dto.TemplateResponse, error)
	GetProviderTemplates(ctx context.Context, providerID uuid.UUID) (*dto.TemplateListResponse, error)
	UpdateTemplate(ctx context.Context, id uint, request *dto.UpdateTemplateRequest) (*dto.TemplateResponse, error)
	CreateSchedule(ctx context.Context, request *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error)
	GetSchedule(ctx context.Context, id uint) (*dto.ScheduleResponse, error)
	GetTemplateSchedules(ctx context.Context, templateID uint) (*dto.ScheduleListResponse, error)
	UpdateSchedule(ctx context.Context, id uint, request *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error)
	DeleteSchedule(ctx context.Context, id uint) error
}

type scheduleUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	providerRepo repository.ProviderRepository
	templateRepo repository.TemplateRepository
	scheduleRepo repository.ScheduleRepository
	audit        service.AuditService
}

func NewScheduleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	providerRepo repository.ProviderRepository,
	templateRepo repository.TemplateRepository,
	scheduleRepo repository.ScheduleRepository,
	audit service.AuditService,
) ScheduleUsecase {
	return &scheduleUsecase{
		db:           db,
		log:          log,
		providerRepo: providerRepo,
		templateRepo: templateRepo,
		scheduleRepo: scheduleRepo,
		audit:        audit,
	}
}

// CreateTemplate creates a weekly baseline pattern. Marking it default
// clears the default flag on the provider's other templates first so at
// most one default exists.
func (u *scheduleUsecase) CreateTemplate(ctx context.Context, request *dto.CreateTemplateRequest) (*dto.TemplateResponse, error) {
	provider, err := u.providerRepo.FindByID(ctx, u.db, request.ProviderID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, ErrProviderNotFound
	}

	slots, err := buildTimeSlots(request.TimeSlots)
	if err != nil {
		return nil, err
	}

	if request.IsDefault {
		if err := u.templateRepo.ClearDefault(ctx, u.db, provider.ID); err != nil {
			return nil, err
		}
	}

	template := &entity.AvailabilityTemplate{
		ProviderID: provider.ID,
		Name:       request.Name,
		Timezone:   request.Timezone,
		IsDefault:  request.IsDefault,
		IsActive:   true,
	}
	if err := u.templateRepo.Create(ctx, u.db, template); err != nil {
		u.log.Warnf("Failed to create template: %+v", err)
		return nil, err
	}
	if err := u.templateRepo.ReplaceTimeSlots(ctx, u.db, template.ID, slots); err != nil {
		return nil, err
	}
	template.TimeSlots = slots

	u.audit.Record(ctx, u.db, &provider.ID, entity.AuditActionTemplateCreate, entity.JSON{
		"template_id": template.ID,
		"name":        template.Name,
		"is_default":  template.IsDefault,
	})
	return converter.TemplateToResponse(template), nil
}

func (u *scheduleUsecase) GetTemplate(ctx context.Context, id uint) (*dto.TemplateResponse, error) {
	template, err := u.templateRepo.FindByID(ctx, u.db, id)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, ErrTemplateNotFound
	}
	return converter.TemplateToResponse(template), nil
}

func (u *scheduleUsecase) GetProviderTemplates(ctx context.Context, providerID uuid.UUID) (*dto.TemplateListResponse, error) {
	provider, err := u.providerRepo.FindByID(ctx, u.db, providerID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, ErrProviderNotFound
	}

	templates, err := u.templateRepo.FindByProviderID(ctx, u.db, providerID)
	if err != nil {
		return nil, err
	}
	return &dto.TemplateListResponse{
		Templates: converter.TemplatesToResponses(templates),
		Total:     len(templates),
	}, nil
}

func (u *scheduleUsecase) UpdateTemplate(ctx context.Context, id uint, request *dto.UpdateTemplateRequest) (*dto.TemplateResponse, error) {
	template, err := u.templateRepo.FindByID(ctx, u.db, id)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, ErrTemplateNotFound
	}

	if request.Name != "" {
		template.Name = request.Name
	}
	if request.Timezone != "" {
		template.Timezone = request.Timezone
	}
	if request.IsActive != nil {
		template.IsActive = *request.IsActive
	}
	if request.IsDefault != nil && *request.IsDefault && !template.IsDefault {
		if err := u.templateRepo.ClearDefault(ctx, u.db, template.ProviderID); err != nil {
			return nil, err
		}
		template.IsDefault = true
	}

	if err := u.templateRepo.Update(ctx, u.db, template); err != nil {
		u.log.Warnf("Failed to update template %d: %+v", id, err)
		return nil, err
	}

	if len(request.TimeSlots) > 0 {
		slots, err := buildTimeSlots(request.TimeSlots)
		if err != nil {
			return nil, err
		}
		if err := u.templateRepo.ReplaceTimeSlots(ctx, u.db, template.ID, slots); err != nil {
			return nil, err
		}
		template.TimeSlots = slots
	}

	u.audit.Record(ctx, u.db, &template.ProviderID, entity.AuditActionTemplateUpdate, entity.JSON{
		"template_id": template.ID,
	})
	return converter.TemplateToResponse(template), nil
}

// CreateSchedule creates an advanced override. The recurrence rule is
// validated up front so unsupported configurations are rejected at write
// time instead of silently never matching.
func (u *scheduleUsecase) CreateSchedule(ctx context.Context, request *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	template, err := u.templateRepo.FindByID(ctx, u.db, request.TemplateID)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, ErrTemplateNotFound
	}

	startDate, err := time.Parse("2006-01-02", request.StartDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	var endDate *time.Time
	if request.EndDate != "" {
		parsed, err := time.Parse("2006-01-02", request.EndDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		if parsed.Before(startDate) {
			return nil, ErrScheduleDateRange
		}
		endDate = &parsed
	}

	slots, err := buildTimeSlots(request.TimeSlots)
	if err != nil {
		return nil, err
	}

	interval := request.RecurrenceInterval
	if interval == 0 {
		interval = 1
	}

	schedule := &entity.AvailabilitySchedule{
		TemplateID:         template.ID,
		Name:               request.Name,
		StartDate:          startDate,
		EndDate:            endDate,
		IsRecurring:        request.IsRecurring,
		RecurrenceType:     entity.RecurrenceType(request.RecurrenceType),
		RecurrenceInterval: interval,
		DaysOfWeek:         entity.IntList(request.DaysOfWeek),
		WeekOfMonth:        request.WeekOfMonth,
		MonthOfYear:        request.MonthOfYear,
		Priority:           request.Priority,
		IsActive:           true,
	}

	if schedule.IsRecurring {
		if err := service.ValidateRecurrence(schedule); err != nil {
			if errors.Is(err, service.ErrUnsupportedRecurrence) {
				return nil, err
			}
			u.log.Infof("Rejected schedule recurrence: %+v", err)
			return nil, ErrInvalidRecurrence
		}
	}

	if err := u.scheduleRepo.Create(ctx, u.db, schedule); err != nil {
		u.log.Warnf("Failed to create schedule: %+v", err)
		return nil, err
	}
	if err := u.scheduleRepo.ReplaceTimeSlots(ctx, u.db, schedule.ID, slots); err != nil {
		return nil, err
	}
	schedule.TimeSlots = slots

	u.audit.Record(ctx, u.db, &template.ProviderID, entity.AuditActionScheduleCreate, entity.JSON{
		"schedule_id": schedule.ID,
		"template_id": template.ID,
		"name":        schedule.Name,
		"priority":    schedule.Priority,
	})
	return converter.ScheduleToResponse(schedule), nil
}

func (u *scheduleUsecase) GetSchedule(ctx context.Context, id uint) (*dto.ScheduleResponse, error) {
	schedule, err := u.scheduleRepo.FindByID(ctx, u.db, id)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}
	return converter.ScheduleToResponse(schedule), nil
}

func (u *scheduleUsecase) GetTemplateSchedules(ctx context.Context, templateID uint) (*dto.ScheduleListResponse, error) {
	template, err := u.templateRepo.FindByID(ctx, u.db, templateID)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, ErrTemplateNotFound
	}

	schedules, err := u.scheduleRepo.FindByTemplateID(ctx, u.db, templateID)
	if err != nil {
		return nil, err
	}
	return &dto.ScheduleListResponse{
		Schedules: converter.SchedulesToResponses(schedules),
		Total:     len(schedules),
	}, nil
}

func (u *scheduleUsecase) UpdateSchedule(ctx context.Context, id uint, request *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error) {
	schedule, err := u.scheduleRepo.FindByID(ctx, u.db, id)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	if request.Name != "" {
		schedule.Name = request.Name
	}
	if request.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", request.StartDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		schedule.StartDate = parsed
	}
	if request.EndDate != "" {
		parsed, err := time.Parse("2006-01-02", request.EndDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		schedule.EndDate = &parsed
	}
	if schedule.EndDate != nil && schedule.EndDate.Before(schedule.StartDate) {
		return nil, ErrScheduleDateRange
	}
	if request.Priority != nil {
		schedule.Priority = *request.Priority
	}
	if request.IsActive != nil {
		schedule.IsActive = *request.IsActive
	}

	if err := u.scheduleRepo.Update(ctx, u.db, schedule); err != nil {
		u.log.Warnf("Failed to update schedule %d: %+v", id, err)
		return nil, err
	}

	if len(request.TimeSlots) > 0 {
		slots, err := buildTimeSlots(request.TimeSlots)
		if err != nil {
			return nil, err
		}
		if err := u.scheduleRepo.ReplaceTimeSlots(ctx, u.db, schedule.ID, slots); err != nil {
			return nil, err
		}
		schedule.TimeSlots = slots
	}

	u.audit.Record(ctx, u.db, nil, entity.AuditActionScheduleUpdate, entity.JSON{
		"schedule_id": schedule.ID,
	})
	return converter.ScheduleToResponse(schedule), nil
}

func (u *scheduleUsecase) DeleteSchedule(ctx context.Context, id uint) error {
	affected, err := u.scheduleRepo.Delete(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to delete schedule %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrScheduleNotFound
	}

	u.audit.Record(ctx, u.db, nil, entity.AuditActionScheduleDelete, entity.JSON{
		"schedule_id": id,
	})
	return nil
}

// buildTimeSlots converts request rows into entities, enforcing that each
// window ends after it starts. Format validity is the validator's job;
// ordering is a semantic rule checked here.
func buildTimeSlots(rows []dto.TimeSlotRequest) ([]entity.TimeSlot, error) {
	slots := make([]entity.TimeSlot, 0, len(rows))
	for _, row := range rows {
		start, err := time.Parse("15:04", row.StartTime)
		if err != nil {
			return nil, ErrInvalidTimeWindow
		}
		end, err := time.Parse("15:04", row.EndTime)
		if err != nil {
			return nil, ErrInvalidTimeWindow
		}
		if !end.After(start) {
			return nil, ErrInvalidTimeWindow
		}
		enabled := true
		if row.IsEnabled != nil {
			enabled = *row.IsEnabled
		}
		slots = append(slots, entity.TimeSlot{
			DayOfWeek: row.DayOfWeek,
			StartTime: row.StartTime,
			EndTime:   row.EndTime,
			IsEnabled: enabled,
		})
	}
	return slots, nil
}

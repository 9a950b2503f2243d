package usecase

import (
	"context"
	"errors"
	"testing"

	"go-appointment-booking/internal/delivery/dto"
	"go-appointment-booking/internal/domain/entity"
	"go-appointment-booking/internal/service"

	"github.com/google/uuid"
)

type scheduleFixture struct {
	usecase    *scheduleUsecase
	providers  *providerRepoStub
	templates  *templateRepoStub
	schedules  *scheduleRepoStub
	audit      *auditStub
	providerID uuid.UUID
}

func newScheduleFixture() *scheduleFixture {
	providerID := uuid.New()
	providers := &providerRepoStub{
		providers: []entity.Provider{{
			ID:    providerID,
			Name:  "Dr. Carter",
			Email: "carter@example.com",
		}},
	}
	templates := &templateRepoStub{}
	schedules := &scheduleRepoStub{}
	audit := &auditStub{}

	return &scheduleFixture{
		usecase: &scheduleUsecase{
			db:           nil,
			log:          newTestLogger(),
			providerRepo: providers,
			templateRepo: templates,
			scheduleRepo: schedules,
			audit:        audit,
		},
		providers:  providers,
		templates:  templates,
		schedules:  schedules,
		audit:      audit,
		providerID: providerID,
	}
}

func weekdaySlots(start, end string) []dto.TimeSlotRequest {
	slots := make([]dto.TimeSlotRequest, 0, 5)
	for day := 1; day <= 5; day++ {
		slots = append(slots, dto.TimeSlotRequest{DayOfWeek: day, StartTime: start, EndTime: end})
	}
	return slots
}

func TestCreateTemplateClearsPreviousDefault(t *testing.T) {
	f := newScheduleFixture()
	ctx := context.Background()

	first, err := f.usecase.CreateTemplate(ctx, &dto.CreateTemplateRequest{
		ProviderID: f.providerID,
		Name:       "Standard Hours",
		IsDefault:  true,
		TimeSlots:  weekdaySlots("09:00", "17:00"),
	})
	if err != nil {
		t.Fatalf("CreateTemplate() error = %v", err)
	}
	if !first.IsDefault {
		t.Error("first template should be default")
	}
	if len(first.TimeSlots) != 5 {
		t.Errorf("time slots = %d, want 5", len(first.TimeSlots))
	}

	second, err := f.usecase.CreateTemplate(ctx, &dto.CreateTemplateRequest{
		ProviderID: f.providerID,
		Name:       "Winter Hours",
		IsDefault:  true,
		TimeSlots:  weekdaySlots("10:00", "16:00"),
	})
	if err != nil {
		t.Fatalf("CreateTemplate() error = %v", err)
	}
	if !second.IsDefault {
		t.Error("second template should be default")
	}

	stored, _ := f.templates.FindByID(ctx, nil, first.ID)
	if stored.IsDefault {
		t.Error("first template should have lost the default flag")
	}
}

func TestCreateTemplateRejectsInvertedWindow(t *testing.T) {
	f := newScheduleFixture()

	_, err := f.usecase.CreateTemplate(context.Background(), &dto.CreateTemplateRequest{
		ProviderID: f.providerID,
		Name:       "Broken",
		TimeSlots: []dto.TimeSlotRequest{
			{DayOfWeek: 1, StartTime: "17:00", EndTime: "09:00"},
		},
	})
	if !errors.Is(err, ErrInvalidTimeWindow) {
		t.Errorf("error = %v, want ErrInvalidTimeWindow", err)
	}
}

func TestCreateTemplateUnknownProvider(t *testing.T) {
	f := newScheduleFixture()

	_, err := f.usecase.CreateTemplate(context.Background(), &dto.CreateTemplateRequest{
		ProviderID: uuid.New(),
		Name:       "Orphan",
		TimeSlots:  weekdaySlots("09:00", "17:00"),
	})
	if !errors.Is(err, ErrProviderNotFound) {
		t.Errorf("error = %v, want ErrProviderNotFound", err)
	}
}

func TestUpdateTemplatePromoteDefault(t *testing.T) {
	f := newScheduleFixture()
	ctx := context.Background()

	first, err := f.usecase.CreateTemplate(ctx, &dto.CreateTemplateRequest{
		ProviderID: f.providerID,
		Name:       "Standard Hours",
		IsDefault:  true,
		TimeSlots:  weekdaySlots("09:00", "17:00"),
	})
	if err != nil {
		t.Fatal(err)
	}
	second, err := f.usecase.CreateTemplate(ctx, &dto.CreateTemplateRequest{
		ProviderID: f.providerID,
		Name:       "Summer Hours",
		TimeSlots:  weekdaySlots("08:00", "14:00"),
	})
	if err != nil {
		t.Fatal(err)
	}

	promote := true
	updated, err := f.usecase.UpdateTemplate(ctx, second.ID, &dto.UpdateTemplateRequest{IsDefault: &promote})
	if err != nil {
		t.Fatalf("UpdateTemplate() error = %v", err)
	}
	if !updated.IsDefault {
		t.Error("promoted template should be default")
	}

	stored, _ := f.templates.FindByID(ctx, nil, first.ID)
	if stored.IsDefault {
		t.Error("previous default should be cleared")
	}
}

func (f *scheduleFixture) createTemplate(t *testing.T) *dto.TemplateResponse {
	t.Helper()
	template, err := f.usecase.CreateTemplate(context.Background(), &dto.CreateTemplateRequest{
		ProviderID: f.providerID,
		Name:       "Standard Hours",
		IsDefault:  true,
		TimeSlots:  weekdaySlots("09:00", "17:00"),
	})
	if err != nil {
		t.Fatalf("CreateTemplate() error = %v", err)
	}
	return template
}

func TestCreateScheduleRecurring(t *testing.T) {
	f := newScheduleFixture()
	template := f.createTemplate(t)

	schedule, err := f.usecase.CreateSchedule(context.Background(), &dto.CreateScheduleRequest{
		TemplateID:     template.ID,
		Name:           "Summer Fridays",
		StartDate:      "2024-06-01",
		EndDate:        "2024-08-31",
		IsRecurring:    true,
		RecurrenceType: "WEEKLY",
		DaysOfWeek:     []int{5},
		Priority:       10,
		TimeSlots: []dto.TimeSlotRequest{
			{DayOfWeek: 5, StartTime: "09:00", EndTime: "13:00"},
		},
	})
	if err != nil {
		t.Fatalf("CreateSchedule() error = %v", err)
	}
	if schedule.RecurrenceInterval != 1 {
		t.Errorf("interval = %d, want default 1", schedule.RecurrenceInterval)
	}
	if len(f.audit.actions) == 0 || f.audit.actions[len(f.audit.actions)-1] != entity.AuditActionScheduleCreate {
		t.Errorf("audit actions = %v, want schedule create recorded", f.audit.actions)
	}
}

func TestCreateScheduleRejectsBadRecurrence(t *testing.T) {
	f := newScheduleFixture()
	template := f.createTemplate(t)
	ctx := context.Background()

	// Weekly with no days of week never matches anything.
	_, err := f.usecase.CreateSchedule(ctx, &dto.CreateScheduleRequest{
		TemplateID:     template.ID,
		Name:           "No Days",
		StartDate:      "2024-06-01",
		IsRecurring:    true,
		RecurrenceType: "WEEKLY",
		TimeSlots: []dto.TimeSlotRequest{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"},
		},
	})
	if !errors.Is(err, ErrInvalidRecurrence) {
		t.Errorf("error = %v, want ErrInvalidRecurrence", err)
	}

	_, err = f.usecase.CreateSchedule(ctx, &dto.CreateScheduleRequest{
		TemplateID:     template.ID,
		Name:           "Quarterly Review",
		StartDate:      "2024-06-01",
		IsRecurring:    true,
		RecurrenceType: "QUARTERLY",
		DaysOfWeek:     []int{1},
		TimeSlots: []dto.TimeSlotRequest{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"},
		},
	})
	if !errors.Is(err, service.ErrUnsupportedRecurrence) {
		t.Errorf("error = %v, want ErrUnsupportedRecurrence", err)
	}
}

func TestCreateScheduleRejectsInvertedDates(t *testing.T) {
	f := newScheduleFixture()
	template := f.createTemplate(t)

	_, err := f.usecase.CreateSchedule(context.Background(), &dto.CreateScheduleRequest{
		TemplateID: template.ID,
		Name:       "Backwards",
		StartDate:  "2024-06-10",
		EndDate:    "2024-06-01",
		TimeSlots: []dto.TimeSlotRequest{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"},
		},
	})
	if !errors.Is(err, ErrScheduleDateRange) {
		t.Errorf("error = %v, want ErrScheduleDateRange", err)
	}
}

func TestDeleteSchedule(t *testing.T) {
	f := newScheduleFixture()
	template := f.createTemplate(t)
	ctx := context.Background()

	schedule, err := f.usecase.CreateSchedule(ctx, &dto.CreateScheduleRequest{
		TemplateID: template.ID,
		Name:       "One Off",
		StartDate:  "2024-06-01",
		TimeSlots: []dto.TimeSlotRequest{
			{DayOfWeek: 6, StartTime: "10:00", EndTime: "12:00"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := f.usecase.DeleteSchedule(ctx, schedule.ID); err != nil {
		t.Fatalf("DeleteSchedule() error = %v", err)
	}
	if err := f.usecase.DeleteSchedule(ctx, schedule.ID); !errors.Is(err, ErrScheduleNotFound) {
		t.Errorf("second delete error = %v, want ErrScheduleNotFound", err)
	}
}

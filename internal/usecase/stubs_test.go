package usecase

import (
	"context"
	"errors"
	"io"
	"time"

	"go-appointment-booking/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type providerRepoStub struct {
	providers []entity.Provider
	locations []entity.ProviderLocation
}

func (s *providerRepoStub) Create(ctx context.Context, db *gorm.DB, provider *entity.Provider) error {
	if provider.ID == uuid.Nil {
		provider.ID = uuid.New()
	}
	s.providers = append(s.providers, *provider)
	return nil
}

func (s *providerRepoStub) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Provider, error) {
	for i := range s.providers {
		if s.providers[i].ID == id {
			return &s.providers[i], nil
		}
	}
	return nil, nil
}

func (s *providerRepoStub) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Provider, error) {
	for i := range s.providers {
		if s.providers[i].Email == email {
			return &s.providers[i], nil
		}
	}
	return nil, nil
}

func (s *providerRepoStub) Update(ctx context.Context, db *gorm.DB, provider *entity.Provider) error {
	return nil
}

func (s *providerRepoStub) CreateLocation(ctx context.Context, db *gorm.DB, location *entity.ProviderLocation) error {
	s.locations = append(s.locations, *location)
	return nil
}

func (s *providerRepoStub) FindLocations(ctx context.Context, db *gorm.DB, providerID uuid.UUID) ([]entity.ProviderLocation, error) {
	return s.locations, nil
}

type templateRepoStub struct {
	templates []entity.AvailabilityTemplate
}

func (s *templateRepoStub) Create(ctx context.Context, db *gorm.DB, template *entity.AvailabilityTemplate) error {
	if template.ID == 0 {
		template.ID = uint(len(s.templates) + 1)
	}
	s.templates = append(s.templates, *template)
	return nil
}

func (s *templateRepoStub) FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.AvailabilityTemplate, error) {
	for i := range s.templates {
		if s.templates[i].ID == id {
			return &s.templates[i], nil
		}
	}
	return nil, nil
}

func (s *templateRepoStub) FindByProviderID(ctx context.Context, db *gorm.DB, providerID uuid.UUID) ([]entity.AvailabilityTemplate, error) {
	return s.templates, nil
}

func (s *templateRepoStub) FindDefaultByProviderID(ctx context.Context, db *gorm.DB, providerID uuid.UUID) (*entity.AvailabilityTemplate, error) {
	for i := range s.templates {
		if s.templates[i].ProviderID == providerID && s.templates[i].IsDefault && s.templates[i].IsActive {
			return &s.templates[i], nil
		}
	}
	return nil, nil
}

func (s *templateRepoStub) Update(ctx context.Context, db *gorm.DB, template *entity.AvailabilityTemplate) error {
	for i := range s.templates {
		if s.templates[i].ID == template.ID {
			s.templates[i] = *template
		}
	}
	return nil
}

func (s *templateRepoStub) ClearDefault(ctx context.Context, db *gorm.DB, providerID uuid.UUID) error {
	for i := range s.templates {
		if s.templates[i].ProviderID == providerID {
			s.templates[i].IsDefault = false
		}
	}
	return nil
}

func (s *templateRepoStub) ReplaceTimeSlots(ctx context.Context, db *gorm.DB, templateID uint, slots []entity.TimeSlot) error {
	for i := range s.templates {
		if s.templates[i].ID == templateID {
			s.templates[i].TimeSlots = slots
		}
	}
	return nil
}

type scheduleRepoStub struct {
	schedules []entity.AvailabilitySchedule
}

func (s *scheduleRepoStub) Create(ctx context.Context, db *gorm.DB, schedule *entity.AvailabilitySchedule) error {
	if schedule.ID == 0 {
		schedule.ID = uint(len(s.schedules) + 1)
	}
	s.schedules = append(s.schedules, *schedule)
	return nil
}

func (s *scheduleRepoStub) FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.AvailabilitySchedule, error) {
	for i := range s.schedules {
		if s.schedules[i].ID == id {
			return &s.schedules[i], nil
		}
	}
	return nil, nil
}

func (s *scheduleRepoStub) FindActiveByTemplateID(ctx context.Context, db *gorm.DB, templateID uint) ([]entity.AvailabilitySchedule, error) {
	var out []entity.AvailabilitySchedule
	for _, sc := range s.schedules {
		if sc.TemplateID == templateID && sc.IsActive {
			out = append(out, sc)
		}
	}
	return out, nil
}

func (s *scheduleRepoStub) FindByTemplateID(ctx context.Context, db *gorm.DB, templateID uint) ([]entity.AvailabilitySchedule, error) {
	return s.schedules, nil
}

func (s *scheduleRepoStub) Update(ctx context.Context, db *gorm.DB, schedule *entity.AvailabilitySchedule) error {
	for i := range s.schedules {
		if s.schedules[i].ID == schedule.ID {
			s.schedules[i] = *schedule
		}
	}
	return nil
}

func (s *scheduleRepoStub) Delete(ctx context.Context, db *gorm.DB, id uint) (int64, error) {
	for i := range s.schedules {
		if s.schedules[i].ID == id {
			s.schedules = append(s.schedules[:i], s.schedules[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *scheduleRepoStub) ReplaceTimeSlots(ctx context.Context, db *gorm.DB, scheduleID uint, slots []entity.TimeSlot) error {
	for i := range s.schedules {
		if s.schedules[i].ID == scheduleID {
			s.schedules[i].TimeSlots = slots
		}
	}
	return nil
}

type bookingRepoStub struct {
	bookings  []entity.Booking
	createErr error
}

func (s *bookingRepoStub) Create(ctx context.Context, db *gorm.DB, booking *entity.Booking) error {
	if s.createErr != nil {
		return s.createErr
	}
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	s.bookings = append(s.bookings, *booking)
	return nil
}

func (s *bookingRepoStub) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			return &s.bookings[i], nil
		}
	}
	return nil, nil
}

func (s *bookingRepoStub) FindActiveInRange(ctx context.Context, db *gorm.DB, providerID uuid.UUID, from, to time.Time) ([]entity.Booking, error) {
	var out []entity.Booking
	for _, b := range s.bookings {
		if b.ProviderID != providerID {
			continue
		}
		if b.Status != entity.BookingStatusPending && b.Status != entity.BookingStatusConfirmed {
			continue
		}
		if !b.ScheduledAt.Before(from) && b.ScheduledAt.Before(to) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *bookingRepoStub) FindByProviderID(ctx context.Context, db *gorm.DB, providerID uuid.UUID, filter *entity.BookingFilter) ([]entity.Booking, error) {
	var out []entity.Booking
	for _, b := range s.bookings {
		if b.ProviderID == providerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *bookingRepoStub) FindByCustomerID(ctx context.Context, db *gorm.DB, customerID uuid.UUID) ([]entity.Booking, error) {
	return s.bookings, nil
}

func (s *bookingRepoStub) UpdateStatusIf(ctx context.Context, db *gorm.DB, id uuid.UUID, expected []entity.BookingStatus, next entity.BookingStatus) (int64, error) {
	for i := range s.bookings {
		if s.bookings[i].ID != id {
			continue
		}
		for _, st := range expected {
			if s.bookings[i].Status == st {
				s.bookings[i].Status = next
				return 1, nil
			}
		}
	}
	return 0, nil
}

type customerRepoStub struct {
	customers []entity.Customer
}

func (s *customerRepoStub) Create(ctx context.Context, db *gorm.DB, customer *entity.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	s.customers = append(s.customers, *customer)
	return nil
}

func (s *customerRepoStub) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Customer, error) {
	for i := range s.customers {
		if s.customers[i].ID == id {
			return &s.customers[i], nil
		}
	}
	return nil, nil
}

func (s *customerRepoStub) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Customer, error) {
	for i := range s.customers {
		if s.customers[i].Email == email {
			return &s.customers[i], nil
		}
	}
	return nil, nil
}

func (s *customerRepoStub) UpsertByEmail(ctx context.Context, db *gorm.DB, customer *entity.Customer) (*entity.Customer, error) {
	for i := range s.customers {
		if s.customers[i].Email == customer.Email {
			s.customers[i].FullName = customer.FullName
			s.customers[i].Phone = customer.Phone
			return &s.customers[i], nil
		}
	}
	customer.ID = uuid.New()
	s.customers = append(s.customers, *customer)
	return customer, nil
}

type eventRepoStub struct {
	events []entity.CalendarEvent
}

func (s *eventRepoStub) Create(ctx context.Context, db *gorm.DB, event *entity.CalendarEvent) error {
	if event.ID == 0 {
		event.ID = uint(len(s.events) + 1)
	}
	s.events = append(s.events, *event)
	return nil
}

func (s *eventRepoStub) UpsertByExternalID(ctx context.Context, db *gorm.DB, event *entity.CalendarEvent) error {
	for i := range s.events {
		if s.events[i].ProviderID == event.ProviderID && s.events[i].ExternalID == event.ExternalID {
			s.events[i] = *event
			return nil
		}
	}
	return s.Create(ctx, db, event)
}

func (s *eventRepoStub) FindOverlapping(ctx context.Context, db *gorm.DB, providerID uuid.UUID, from, to time.Time) ([]entity.CalendarEvent, error) {
	var out []entity.CalendarEvent
	for _, e := range s.events {
		if e.ProviderID == providerID && from.Before(e.EndTime) && e.StartTime.Before(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *eventRepoStub) FindByProviderID(ctx context.Context, db *gorm.DB, providerID uuid.UUID) ([]entity.CalendarEvent, error) {
	return s.events, nil
}

type offeringRepoStub struct {
	offerings []entity.ServiceOffering
}

func (s *offeringRepoStub) Create(ctx context.Context, db *gorm.DB, offering *entity.ServiceOffering) error {
	if offering.ID == 0 {
		offering.ID = uint(len(s.offerings) + 1)
	}
	s.offerings = append(s.offerings, *offering)
	return nil
}

func (s *offeringRepoStub) FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.ServiceOffering, error) {
	for i := range s.offerings {
		if s.offerings[i].ID == id {
			return &s.offerings[i], nil
		}
	}
	return nil, nil
}

func (s *offeringRepoStub) FindByProviderID(ctx context.Context, db *gorm.DB, providerID uuid.UUID) ([]entity.ServiceOffering, error) {
	var out []entity.ServiceOffering
	for _, o := range s.offerings {
		if o.ProviderID == providerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *offeringRepoStub) FindActiveByName(ctx context.Context, db *gorm.DB, providerID uuid.UUID, name string) (*entity.ServiceOffering, error) {
	for i := range s.offerings {
		if s.offerings[i].ProviderID == providerID && s.offerings[i].Name == name && s.offerings[i].IsActive {
			return &s.offerings[i], nil
		}
	}
	return nil, nil
}

func (s *offeringRepoStub) Update(ctx context.Context, db *gorm.DB, offering *entity.ServiceOffering) error {
	for i := range s.offerings {
		if s.offerings[i].ID == offering.ID {
			s.offerings[i] = *offering
		}
	}
	return nil
}

func (s *offeringRepoStub) Delete(ctx context.Context, db *gorm.DB, id uint) (int64, error) {
	for i := range s.offerings {
		if s.offerings[i].ID == id {
			s.offerings = append(s.offerings[:i], s.offerings[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// auditStub records actions for assertions.
type auditStub struct {
	actions []string
}

func (s *auditStub) Record(ctx context.Context, db *gorm.DB, providerID *uuid.UUID, action string, metadata entity.JSON) {
	s.actions = append(s.actions, action)
}

// failingNotifier simulates a broken mail transport.
type failingNotifier struct {
	attempts int
}

func (n *failingNotifier) SendCustomerMagicLink(ctx context.Context, booking *entity.Booking, customer *entity.Customer, token string) error {
	n.attempts++
	return errors.New("smtp unreachable")
}

func (n *failingNotifier) SendProviderNotification(ctx context.Context, booking *entity.Booking, provider *entity.Provider) error {
	n.attempts++
	return errors.New("smtp unreachable")
}

// failingCalendarSync simulates a degraded external calendar.
type failingCalendarSync struct {
	calls int
}

func (s *failingCalendarSync) SyncForBookingLookup(ctx context.Context, providerID uuid.UUID, from, to time.Time) (int, error) {
	s.calls++
	return 0, errors.New("calendar api timeout")
}

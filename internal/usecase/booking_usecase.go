package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"go-appointment-booking/config"
	"go-appointment-booking/internal/converter"
	"go-appointment-booking/internal/delivery/dto"
	"go-appointment-booking/internal/domain/entity"
	"go-appointment-booking/internal/domain/repository"
	"go-appointment-booking/internal/service"
	"go-appointment-booking/pkg/magiclink"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrSlotUnavailable      = errors.New("requested slot is no longer available")
	ErrSlotContended        = errors.New("slot is being booked by someone else, try again")
	ErrPastSlot             = errors.New("requested slot starts too soon or in the past")
	ErrBeyondHorizon        = errors.New("requested slot is beyond the booking horizon")
	ErrInvalidTransition    = errors.New("booking cannot transition to the requested status")
	ErrInvalidToken         = errors.New("magic link token is invalid or expired")
	ErrTokenBookingMismatch = errors.New("magic link token does not match this booking")
)

type BookingUsecase interface {
	RequestBooking(ctx context.Context, request *dto.CreateBookingRequest) (*dto.BookingResponse, string, error)
	ConfirmBooking(ctx context.Context, token string) (*dto.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID, token string) (*dto.BookingResponse, error)
	RescheduleBooking(ctx context.Context, bookingID uuid.UUID, request *dto.RescheduleBookingRequest) (*dto.BookingResponse, string, error)
	GetBooking(ctx context.Context, bookingID uuid.UUID) (*dto.BookingResponse, error)
	GetProviderBookings(ctx context.Context, providerID uuid.UUID, filter *entity.BookingFilter) (*dto.BookingListResponse, error)
}

type bookingUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	cfg          config.BookingConfig
	providerRepo repository.ProviderRepository
	bookingRepo  repository.BookingRepository
	customerRepo repository.CustomerRepository
	offeringRepo repository.ServiceOfferingRepository
	conflicts    *service.ConflictResolver
	reservations *service.SlotReservationService
	calendarSync service.CalendarSync
	notifier     service.Notifier
	audit        service.AuditService
	magicLink    *magiclink.Service
	now          func() time.Time
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cfg config.BookingConfig,
	providerRepo repository.ProviderRepository,
	bookingRepo repository.BookingRepository,
	customerRepo repository.CustomerRepository,
	offeringRepo repository.ServiceOfferingRepository,
	conflicts *service.ConflictResolver,
	reservations *service.SlotReservationService,
	calendarSync service.CalendarSync,
	notifier service.Notifier,
	audit service.AuditService,
	magicLink *magiclink.Service,
) BookingUsecase {
	return &bookingUsecase{
		db:           db,
		log:          log,
		cfg:          cfg,
		providerRepo: providerRepo,
		bookingRepo:  bookingRepo,
		customerRepo: customerRepo,
		offeringRepo: offeringRepo,
		conflicts:    conflicts,
		reservations: reservations,
		calendarSync: calendarSync,
		notifier:     notifier,
		audit:        audit,
		magicLink:    magicLink,
		now:          time.Now,
	}
}

// RequestBooking creates a PENDING booking if the slot survives a fresh
// conflict check. A short redis hold on the exact slot serializes
// concurrent requests for the same start time, so only one of two
// simultaneous customers can pass the check-then-insert window.
//
// Returns the booking plus the confirm magic-link token for delivery.
func (u *bookingUsecase) RequestBooking(ctx context.Context, request *dto.CreateBookingRequest) (*dto.BookingResponse, string, error) {
	provider, err := u.providerRepo.FindByID(ctx, u.db, request.ProviderID)
	if err != nil {
		return nil, "", err
	}
	if provider == nil {
		return nil, "", ErrProviderNotFound
	}

	duration := request.Duration
	if duration == 0 {
		// A catalog service carries its own duration; otherwise the
		// provider default applies.
		if request.ServiceType != "" && u.offeringRepo != nil {
			offering, err := u.offeringRepo.FindActiveByName(ctx, u.db, provider.ID, request.ServiceType)
			if err != nil {
				return nil, "", err
			}
			if offering != nil {
				duration = offering.DurationMinutes
			}
		}
		if duration == 0 {
			duration = provider.DefaultBookingDuration
		}
	}
	if !provider.IsDurationAllowed(duration) {
		return nil, "", ErrDurationNotAllowed
	}

	start := request.ScheduledAt.UTC()
	if err := u.checkBookingWindow(provider, start); err != nil {
		return nil, "", err
	}

	if u.reservations != nil {
		holdToken, err := u.reservations.Acquire(ctx, provider.ID, start, duration)
		if err != nil {
			if errors.Is(err, service.ErrSlotHeld) {
				return nil, "", ErrSlotContended
			}
			// Redis outage degrades to an unserialized conflict check
			// rather than blocking bookings entirely.
			u.log.Warnf("Slot hold unavailable, proceeding without: %+v", err)
		}
		if holdToken != "" {
			defer u.reservations.Release(ctx, provider.ID, start, duration, holdToken)
		}
	}

	service.SyncBestEffort(ctx, u.log, u.calendarSync, provider.ID, start, start.Add(time.Duration(duration)*time.Minute), u.cfg.SyncTimeout)

	conflict, err := u.conflicts.ValidateBookingRequest(ctx, u.db, provider, start, duration)
	if err != nil {
		return nil, "", err
	}
	if conflict != nil {
		u.log.Infof("Booking rejected for provider %s at %s: %s", provider.ID, start, conflict.Reason)
		return nil, "", ErrSlotUnavailable
	}

	customer, err := u.customerRepo.UpsertByEmail(ctx, u.db, &entity.Customer{
		Email:    request.CustomerEmail,
		FullName: request.CustomerName,
		Phone:    request.CustomerPhone,
	})
	if err != nil {
		return nil, "", err
	}

	booking := &entity.Booking{
		CustomerID:  customer.ID,
		ProviderID:  provider.ID,
		BookingCode: generateBookingCode(u.now()),
		ScheduledAt: start,
		Duration:    duration,
		Status:      entity.BookingStatusPending,
		ServiceType: request.ServiceType,
		Notes:       request.Notes,
	}
	if err := u.bookingRepo.Create(ctx, u.db, booking); err != nil {
		u.log.Warnf("Failed to create booking: %+v", err)
		return nil, "", err
	}
	booking.Customer = *customer

	token, err := u.magicLink.GenerateToken(booking.ID, customer.Email, magiclink.PurposeConfirmBooking)
	if err != nil {
		// The booking exists; the link can be re-issued later.
		u.log.Warnf("Failed to generate confirm token for booking %s: %+v", booking.ID, err)
	}

	u.audit.Record(ctx, u.db, &provider.ID, entity.AuditActionBookingCreate, entity.JSON{
		"booking_id":   booking.ID.String(),
		"booking_code": booking.BookingCode,
		"scheduled_at": booking.ScheduledAt,
		"duration":     booking.Duration,
	})
	u.notifyBestEffort(booking, customer, provider, token)

	return converter.BookingToResponse(booking), token, nil
}

// ConfirmBooking moves a pending booking to confirmed via its magic-link
// token. Confirming an already-confirmed booking is idempotent.
func (u *bookingUsecase) ConfirmBooking(ctx context.Context, token string) (*dto.BookingResponse, error) {
	claims, err := u.magicLink.ValidateToken(token, magiclink.PurposeConfirmBooking)
	if err != nil {
		return nil, ErrInvalidToken
	}

	booking, err := u.bookingRepo.FindByID(ctx, u.db, claims.BookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	if booking.Status == entity.BookingStatusConfirmed {
		return converter.BookingToResponse(booking), nil
	}
	if !booking.CanTransitionTo(entity.BookingStatusConfirmed) {
		return nil, ErrInvalidTransition
	}

	affected, err := u.bookingRepo.UpdateStatusIf(ctx, u.db, booking.ID,
		[]entity.BookingStatus{entity.BookingStatusPending}, entity.BookingStatusConfirmed)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// Raced with a cancel or a repeated confirm; re-read the truth.
		booking, err = u.bookingRepo.FindByID(ctx, u.db, booking.ID)
		if err != nil {
			return nil, err
		}
		if booking == nil || booking.Status != entity.BookingStatusConfirmed {
			return nil, ErrInvalidTransition
		}
		return converter.BookingToResponse(booking), nil
	}
	booking.Status = entity.BookingStatusConfirmed

	u.audit.Record(ctx, u.db, &booking.ProviderID, entity.AuditActionBookingConfirm, entity.JSON{
		"booking_id":   booking.ID.String(),
		"booking_code": booking.BookingCode,
	})
	return converter.BookingToResponse(booking), nil
}

// CancelBooking cancels a pending or confirmed booking. The caller either
// presents the customer's cancel token or, with an empty token, acts as
// the provider side of the API.
func (u *bookingUsecase) CancelBooking(ctx context.Context, bookingID uuid.UUID, token string) (*dto.BookingResponse, error) {
	booking, err := u.bookingRepo.FindByID(ctx, u.db, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	if token != "" {
		claims, err := u.magicLink.ValidateToken(token, magiclink.PurposeCancelBooking)
		if err != nil {
			return nil, ErrInvalidToken
		}
		if claims.BookingID != booking.ID {
			return nil, ErrTokenBookingMismatch
		}
	}

	if booking.Status == entity.BookingStatusCancelled {
		return converter.BookingToResponse(booking), nil
	}
	if !booking.CanTransitionTo(entity.BookingStatusCancelled) {
		return nil, ErrInvalidTransition
	}

	affected, err := u.bookingRepo.UpdateStatusIf(ctx, u.db, booking.ID,
		[]entity.BookingStatus{entity.BookingStatusPending, entity.BookingStatusConfirmed},
		entity.BookingStatusCancelled)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrInvalidTransition
	}
	booking.Status = entity.BookingStatusCancelled

	u.audit.Record(ctx, u.db, &booking.ProviderID, entity.AuditActionBookingCancel, entity.JSON{
		"booking_id":   booking.ID.String(),
		"booking_code": booking.BookingCode,
	})
	return converter.BookingToResponse(booking), nil
}

// RescheduleBooking terminates the original booking and creates a fresh
// pending one at the new time. The original is only marked rescheduled
// after the replacement slot passes the conflict check, so a failed
// reschedule leaves the old booking intact.
func (u *bookingUsecase) RescheduleBooking(ctx context.Context, bookingID uuid.UUID, request *dto.RescheduleBookingRequest) (*dto.BookingResponse, string, error) {
	original, err := u.bookingRepo.FindByID(ctx, u.db, bookingID)
	if err != nil {
		return nil, "", err
	}
	if original == nil {
		return nil, "", ErrBookingNotFound
	}
	if !original.CanTransitionTo(entity.BookingStatusRescheduled) {
		return nil, "", ErrInvalidTransition
	}

	provider, err := u.providerRepo.FindByID(ctx, u.db, original.ProviderID)
	if err != nil {
		return nil, "", err
	}
	if provider == nil {
		return nil, "", ErrProviderNotFound
	}

	duration := request.Duration
	if duration == 0 {
		duration = original.Duration
	}
	if !provider.IsDurationAllowed(duration) {
		return nil, "", ErrDurationNotAllowed
	}

	start := request.ScheduledAt.UTC()
	if err := u.checkBookingWindow(provider, start); err != nil {
		return nil, "", err
	}

	if u.reservations != nil {
		holdToken, err := u.reservations.Acquire(ctx, provider.ID, start, duration)
		if err != nil {
			if errors.Is(err, service.ErrSlotHeld) {
				return nil, "", ErrSlotContended
			}
			u.log.Warnf("Slot hold unavailable, proceeding without: %+v", err)
		}
		if holdToken != "" {
			defer u.reservations.Release(ctx, provider.ID, start, duration, holdToken)
		}
	}

	conflict, err := u.conflicts.ValidateBookingRequest(ctx, u.db, provider, start, duration)
	if err != nil {
		return nil, "", err
	}
	if conflict != nil {
		return nil, "", ErrSlotUnavailable
	}

	// Persist the replacement before touching the original: a failed
	// insert must leave the original booking intact.
	replacement := &entity.Booking{
		CustomerID:  original.CustomerID,
		ProviderID:  original.ProviderID,
		BookingCode: generateBookingCode(u.now()),
		ScheduledAt: start,
		Duration:    duration,
		Status:      entity.BookingStatusPending,
		ServiceType: original.ServiceType,
		Notes:       original.Notes,
	}
	if err := u.bookingRepo.Create(ctx, u.db, replacement); err != nil {
		u.log.Warnf("Failed to create replacement booking for %s: %+v", original.ID, err)
		return nil, "", err
	}

	affected, err := u.bookingRepo.UpdateStatusIf(ctx, u.db, original.ID,
		[]entity.BookingStatus{entity.BookingStatusPending}, entity.BookingStatusRescheduled)
	if err != nil || affected == 0 {
		// The original moved under us; back out the replacement.
		if _, cancelErr := u.bookingRepo.UpdateStatusIf(ctx, u.db, replacement.ID,
			[]entity.BookingStatus{entity.BookingStatusPending}, entity.BookingStatusCancelled); cancelErr != nil {
			u.log.Errorf("Failed to back out replacement booking %s: %+v", replacement.ID, cancelErr)
		}
		if err != nil {
			return nil, "", err
		}
		return nil, "", ErrInvalidTransition
	}
	replacement.Customer = original.Customer

	token, err := u.magicLink.GenerateToken(replacement.ID, original.Customer.Email, magiclink.PurposeConfirmBooking)
	if err != nil {
		u.log.Warnf("Failed to generate confirm token for booking %s: %+v", replacement.ID, err)
	}

	u.audit.Record(ctx, u.db, &provider.ID, entity.AuditActionBookingReschedule, entity.JSON{
		"original_booking_id": original.ID.String(),
		"new_booking_id":      replacement.ID.String(),
		"scheduled_at":        replacement.ScheduledAt,
	})
	u.notifyBestEffort(replacement, &original.Customer, provider, token)

	return converter.BookingToResponse(replacement), token, nil
}

func (u *bookingUsecase) GetBooking(ctx context.Context, bookingID uuid.UUID) (*dto.BookingResponse, error) {
	booking, err := u.bookingRepo.FindByID(ctx, u.db, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	return converter.BookingToResponse(booking), nil
}

func (u *bookingUsecase) GetProviderBookings(ctx context.Context, providerID uuid.UUID, filter *entity.BookingFilter) (*dto.BookingListResponse, error) {
	provider, err := u.providerRepo.FindByID(ctx, u.db, providerID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, ErrProviderNotFound
	}

	bookings, err := u.bookingRepo.FindByProviderID(ctx, u.db, providerID, filter)
	if err != nil {
		return nil, err
	}
	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    len(bookings),
	}, nil
}

// checkBookingWindow rejects starts inside the lead-time cutoff and past
// the provider's advance-booking horizon.
func (u *bookingUsecase) checkBookingWindow(provider *entity.Provider, start time.Time) error {
	now := u.now()
	if !start.After(now.Add(u.cfg.LeadTime)) {
		return ErrPastSlot
	}
	horizon := entity.DateOnly(now).AddDate(0, 0, provider.AdvanceBookingDays+1)
	if !start.Before(horizon) {
		return ErrBeyondHorizon
	}
	return nil
}

// notifyBestEffort sends customer and provider notifications on a detached
// timeout context so delivery failures never fail the booking.
func (u *bookingUsecase) notifyBestEffort(booking *entity.Booking, customer *entity.Customer, provider *entity.Provider, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), u.cfg.SyncTimeout)
	defer cancel()

	if err := u.notifier.SendCustomerMagicLink(ctx, booking, customer, token); err != nil {
		u.log.Warnf("Failed to send customer notification for booking %s: %+v", booking.ID, err)
	}
	if err := u.notifier.SendProviderNotification(ctx, booking, provider); err != nil {
		u.log.Warnf("Failed to send provider notification for booking %s: %+v", booking.ID, err)
	}
}

const bookingCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// generateBookingCode builds a human-readable reference like
// BK-20260115-7KQ2MX. Uniqueness is enforced by the bookings table.
func generateBookingCode(now time.Time) string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		// Fall back to the timestamp; the unique index still guards us.
		return fmt.Sprintf("BK-%s-%06d", now.UTC().Format("20060102"), now.UnixNano()%1000000)
	}
	for i, b := range buf {
		buf[i] = bookingCodeAlphabet[int(b)%len(bookingCodeAlphabet)]
	}
	return fmt.Sprintf("BK-%s-%s", now.UTC().Format("20060102"), string(buf))
}

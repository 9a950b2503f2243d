package service

import (
	"context"

	"go-appointment-booking/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// Notifier delivers booking emails. Both calls are fire-and-forget from the
// booking flow's point of view: delivery failure is logged, never rolled
// back into the booking.
type Notifier interface {
	// SendCustomerMagicLink emails the customer a confirmation magic link.
	SendCustomerMagicLink(ctx context.Context, booking *entity.Booking, customer *entity.Customer, token string) error
	// SendProviderNotification tells the provider about a new booking.
	SendProviderNotification(ctx context.Context, booking *entity.Booking, provider *entity.Provider) error
}

// LogNotifier is the default wiring when no mail transport is configured.
// It records what would have been sent.
type LogNotifier struct {
	Log *logrus.Logger
}

func NewLogNotifier(log *logrus.Logger) *LogNotifier {
	return &LogNotifier{Log: log}
}

func (n *LogNotifier) SendCustomerMagicLink(ctx context.Context, booking *entity.Booking, customer *entity.Customer, token string) error {
	n.Log.Infof("Magic link for booking %s would be sent to %s", booking.BookingCode, customer.Email)
	return nil
}

func (n *LogNotifier) SendProviderNotification(ctx context.Context, booking *entity.Booking, provider *entity.Provider) error {
	n.Log.Infof("Booking notification for %s would be sent to provider %s", booking.BookingCode, provider.Email)
	return nil
}

package entity

// BookingFilter is a domain-level filter for querying a provider's bookings.
// Used by repository layer to avoid coupling with delivery DTOs.
type BookingFilter struct {
	From        string // Format: YYYY-MM-DD
	To          string // Format: YYYY-MM-DD
	Status      string // pending | confirmed | cancelled | rescheduled
	ServiceType string
}

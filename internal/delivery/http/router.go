package http

import (
	"net/http"

	"go-appointment-booking/internal/delivery/http/handler"
	"go-appointment-booking/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	providerHandler     *handler.ProviderHandler
	scheduleHandler     *handler.ScheduleHandler
	availabilityHandler *handler.AvailabilityHandler
	bookingHandler      *handler.BookingHandler
	corsMiddleware      *middleware.CORSMiddleware
	loggingMiddleware   *middleware.LoggingMiddleware
}

func NewRouter(
	providerHandler *handler.ProviderHandler,
	scheduleHandler *handler.ScheduleHandler,
	availabilityHandler *handler.AvailabilityHandler,
	bookingHandler *handler.BookingHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		providerHandler:     providerHandler,
		scheduleHandler:     scheduleHandler,
		availabilityHandler: availabilityHandler,
		bookingHandler:      bookingHandler,
		corsMiddleware:      corsMiddleware,
		loggingMiddleware:   loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Providers
	api.HandleFunc("/providers", r.providerHandler.CreateProvider).Methods(http.MethodPost)
	api.HandleFunc("/providers/{id}", r.providerHandler.GetProvider).Methods(http.MethodGet)
	api.HandleFunc("/providers/{id}/locations", r.providerHandler.AddLocation).Methods(http.MethodPost)
	api.HandleFunc("/providers/{id}/locations", r.providerHandler.GetLocations).Methods(http.MethodGet)

	// Calendar events (sync collaborator write surface)
	api.HandleFunc("/providers/{id}/calendar-events", r.providerHandler.UpsertCalendarEvent).Methods(http.MethodPost)
	api.HandleFunc("/providers/{id}/calendar-events", r.providerHandler.GetCalendarEvents).Methods(http.MethodGet)
	api.HandleFunc("/providers/{id}/services", r.providerHandler.CreateServiceOffering).Methods(http.MethodPost)
	api.HandleFunc("/providers/{id}/services", r.providerHandler.GetServiceOfferings).Methods(http.MethodGet)
	api.HandleFunc("/providers/{id}/services/{offeringId}", r.providerHandler.UpdateServiceOffering).Methods(http.MethodPut)

	// Availability templates and advanced schedules
	api.HandleFunc("/templates", r.scheduleHandler.CreateTemplate).Methods(http.MethodPost)
	api.HandleFunc("/templates/{id}", r.scheduleHandler.GetTemplate).Methods(http.MethodGet)
	api.HandleFunc("/templates/{id}", r.scheduleHandler.UpdateTemplate).Methods(http.MethodPut)
	api.HandleFunc("/templates/{id}/schedules", r.scheduleHandler.GetTemplateSchedules).Methods(http.MethodGet)
	api.HandleFunc("/templates/{id}/effective", r.availabilityHandler.GetEffectiveAvailability).Methods(http.MethodGet)
	api.HandleFunc("/providers/{id}/templates", r.scheduleHandler.GetProviderTemplates).Methods(http.MethodGet)
	api.HandleFunc("/schedules", r.scheduleHandler.CreateSchedule).Methods(http.MethodPost)
	api.HandleFunc("/schedules/{id}", r.scheduleHandler.GetSchedule).Methods(http.MethodGet)
	api.HandleFunc("/schedules/{id}", r.scheduleHandler.UpdateSchedule).Methods(http.MethodPut)
	api.HandleFunc("/schedules/{id}", r.scheduleHandler.DeleteSchedule).Methods(http.MethodDelete)

	// Slot queries
	api.HandleFunc("/providers/{id}/slots", r.availabilityHandler.GetAvailableSlots).Methods(http.MethodGet)
	api.HandleFunc("/providers/{id}/open-slots", r.availabilityHandler.GetOpenSlots).Methods(http.MethodGet)
	api.HandleFunc("/providers/{id}/slots/check", r.availabilityHandler.CheckSlot).Methods(http.MethodGet)

	// Bookings
	api.HandleFunc("/bookings", r.bookingHandler.CreateBooking).Methods(http.MethodPost)
	api.HandleFunc("/bookings/confirm", r.bookingHandler.ConfirmBooking).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{id}", r.bookingHandler.GetBooking).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}/cancel", r.bookingHandler.CancelBooking).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{id}/reschedule", r.bookingHandler.RescheduleBooking).Methods(http.MethodPost)
	api.HandleFunc("/providers/{id}/bookings", r.bookingHandler.GetProviderBookings).Methods(http.MethodGet)

	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.loggingMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}

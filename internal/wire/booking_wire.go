package wire

import (
	"hotel-storefront/internal/adaptor"
	"hotel-storefront/pkg/middleware"
	"hotel-storefront/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthBearer(config.Auth.JWTSecret, log))

		// POST /api/bookings - Persist a validated booking intent
		r.Post("/api/bookings", bookingHandler.CreateBooking)

		// POST /api/bookings/{id}/checkout-session - Hosted checkout
		// handoff; must follow a completed create
		r.Post("/api/bookings/{id}/checkout-session", bookingHandler.CreateCheckoutSession)

		// GET /api/user/bookings - Booking history with temporal status
		r.Get("/api/user/bookings", bookingHandler.GetUserBookings)

		// GET /api/user/bookings/last - Durable slot, for correlation
		r.Get("/api/user/bookings/last", bookingHandler.GetLastBooking)
	})
}

package wire

import (
	"hotel-storefront/internal/adaptor"
	"hotel-storefront/pkg/middleware"
	"hotel-storefront/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireHotel(
	r chi.Router,
	hotelHandler *adaptor.HotelHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/hotels - Full catalog
	r.Get("/api/hotels", hotelHandler.GetHotels)

	// GET /api/hotels/search/retrieve?query= - Similarity search (ranking
	// is upstream-owned)
	r.Get("/api/hotels/search/retrieve", hotelHandler.SearchHotels)

	// GET /api/hotels/{id} - Single hotel
	r.Get("/api/hotels/{id}", hotelHandler.GetHotelByID)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		// Require both a valid session token AND the admin role claim
		r.Use(middleware.AuthBearer(config.Auth.JWTSecret, log))
		r.Use(middleware.Admin(log))

		// POST /api/hotels - Add a hotel to the catalog (admin)
		r.Post("/api/hotels", hotelHandler.CreateHotel)
	})
}

package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"hotel-storefront/internal/data/remote"
	"hotel-storefront/internal/dto/request"
	"hotel-storefront/internal/usecase"
	"hotel-storefront/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings (protected)
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// CreateCheckoutSession handles POST /api/bookings/{id}/checkout-session
// (protected). The browser performs the actual full-page handoff using the
// returned URL.
func (h *BookingHandler) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	session, err := h.service.CreateCheckoutSession(r.Context(), bookingID)
	if err != nil {
		h.handleServiceError(w, err, "create checkout session")
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// GetUserBookings handles GET /api/user/bookings (protected)
func (h *BookingHandler) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookings, err := h.service.GetUserBookings(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get user bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetLastBooking handles GET /api/user/bookings/last (protected). Exposes
// the durable slot for correlation/debugging; the result-page guards never
// rely on it.
func (h *BookingHandler) GetLastBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	last, err := h.service.LastBooking(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get last booking")
		return
	}

	utils.ResponseSuccess(w, "success", last)
}

// handleServiceError maps service errors for booking operations
func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	var apiErr *remote.APIError

	switch {
	case errors.As(err, &apiErr):
		// The upstream's structured message is preferred over a generic
		// network failure
		h.log.Warn(operation+" failed upstream",
			zap.Int("upstream_status", apiErr.StatusCode),
			zap.Error(err))
		if apiErr.StatusCode == http.StatusNotFound {
			utils.ResponseNotFound(w, apiErr.Error())
			return
		}
		utils.ResponseBadGateway(w, apiErr.Error())

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "missing redirect URL"):
		h.log.Error(operation+" failed - no session URL", zap.Error(err))
		utils.ResponseBadGateway(w, "Could not create payment session")

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseBadGateway(w, "Upstream service unavailable")
	}
}

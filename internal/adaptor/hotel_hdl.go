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

type HotelHandler struct {
	service usecase.HotelService
	log     *zap.Logger
}

func NewHotelHandler(service usecase.HotelService, log *zap.Logger) *HotelHandler {
	return &HotelHandler{
		service: service,
		log:     log.With(zap.String("handler", "hotel")),
	}
}

// GetHotels handles GET /api/hotels (public)
func (h *HotelHandler) GetHotels(w http.ResponseWriter, r *http.Request) {
	hotels, err := h.service.GetHotels(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list hotels")
		return
	}

	utils.ResponseSuccess(w, "success", hotels)
}

// SearchHotels handles GET /api/hotels/search/retrieve?query= (public)
func (h *HotelHandler) SearchHotels(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	hotels, err := h.service.SearchHotels(r.Context(), query)
	if err != nil {
		h.handleServiceError(w, err, "search hotels")
		return
	}

	utils.ResponseSuccess(w, "success", hotels)
}

// GetHotelByID handles GET /api/hotels/{id} (public)
func (h *HotelHandler) GetHotelByID(w http.ResponseWriter, r *http.Request) {
	hotelID := chi.URLParam(r, "id")
	if hotelID == "" {
		utils.ResponseBadRequest(w, "Hotel ID is required", nil)
		return
	}

	hotel, err := h.service.GetHotelByID(r.Context(), hotelID)
	if err != nil {
		h.handleServiceError(w, err, "get hotel by ID")
		return
	}

	utils.ResponseSuccess(w, "success", hotel)
}

// CreateHotel handles POST /api/hotels (admin only)
func (h *HotelHandler) CreateHotel(w http.ResponseWriter, r *http.Request) {
	var req request.CreateHotelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	hotel, err := h.service.CreateHotel(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create hotel")
		return
	}

	utils.ResponseCreated(w, "success", hotel)
}

// handleServiceError maps service errors for hotel operations
func (h *HotelHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	var apiErr *remote.APIError

	switch {
	case errors.As(err, &apiErr):
		// Prefer the upstream's structured message over a generic failure
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

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseBadGateway(w, "Upstream service unavailable")
	}
}

package response

import (
	"hotel-storefront/internal/data/entity"
)

type HotelResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating,omitempty"`
	Reviews     int     `json:"reviews,omitempty"`
}

func HotelToResponse(h *entity.Hotel) *HotelResponse {
	return &HotelResponse{
		ID:          h.ID,
		Name:        h.Name,
		Location:    h.Location,
		Image:       h.Image,
		Description: h.Description,
		Price:       h.Price,
		Rating:      h.Rating,
		Reviews:     h.Reviews,
	}
}

func HotelsToResponse(hotels []*entity.Hotel) []*HotelResponse {
	out := make([]*HotelResponse, len(hotels))
	for i, h := range hotels {
		out[i] = HotelToResponse(h)
	}
	return out
}

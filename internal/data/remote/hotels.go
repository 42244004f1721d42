package remote

import (
	"context"
	"fmt"

	"hotel-storefront/internal/data/entity"

	"go.uber.org/zap"
)

// ListHotels returns the full hotel catalog.
func (c *Client) ListHotels(ctx context.Context) ([]*entity.Hotel, error) {
	var raw []map[string]any
	if err := c.get(ctx, "/api/hotels", &raw); err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}

	return c.normalizeHotels(raw), nil
}

// SearchHotels runs the upstream's similarity search. Ranking is owned by
// the upstream; results come back already ordered.
func (c *Client) SearchHotels(ctx context.Context, query string) ([]*entity.Hotel, error) {
	var raw []map[string]any
	path := "/api/hotels/search/retrieve?query=" + queryEscape(query)
	if err := c.get(ctx, path, &raw); err != nil {
		return nil, fmt.Errorf("search hotels: %w", err)
	}

	return c.normalizeHotels(raw), nil
}

// GetHotel fetches one hotel by identifier.
func (c *Client) GetHotel(ctx context.Context, id string) (*entity.Hotel, error) {
	var raw map[string]any
	if err := c.get(ctx, "/api/hotels/"+queryEscape(id), &raw); err != nil {
		return nil, fmt.Errorf("get hotel %s: %w", id, err)
	}

	hotel, err := entity.NormalizeHotel(raw)
	if err != nil {
		return nil, fmt.Errorf("get hotel %s: %w", id, err)
	}

	return hotel, nil
}

type CreateHotelPayload struct {
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// CreateHotel adds a hotel to the upstream catalog (admin only; the
// caller's token carries the role).
func (c *Client) CreateHotel(ctx context.Context, payload *CreateHotelPayload) (*entity.Hotel, error) {
	var raw map[string]any
	if err := c.post(ctx, "/api/hotels", payload, &raw); err != nil {
		return nil, fmt.Errorf("create hotel: %w", err)
	}

	hotel, err := entity.NormalizeHotel(raw)
	if err != nil {
		return nil, fmt.Errorf("create hotel: %w", err)
	}

	return hotel, nil
}

func (c *Client) normalizeHotels(raw []map[string]any) []*entity.Hotel {
	hotels := make([]*entity.Hotel, 0, len(raw))
	for _, item := range raw {
		hotel, err := entity.NormalizeHotel(item)
		if err != nil {
			// Skip malformed entries instead of failing the whole listing
			c.log.Warn("Skipping malformed hotel in upstream response", zap.Error(err))
			continue
		}
		hotels = append(hotels, hotel)
	}
	return hotels
}

package remote

import (
	"context"
	"fmt"

	"hotel-storefront/internal/data/entity"

	"go.uber.org/zap"
)

// CreateBookingPayload is the wire shape for the upstream create-booking
// call: dates in RFC 3339, phone already normalized to one string.
type CreateBookingPayload struct {
	HotelID     string `json:"hotelId"`
	CheckIn     string `json:"checkIn"`
	CheckOut    string `json:"checkOut"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	RoomNumber  int    `json:"roomNumber"`
}

// CreateBooking persists the booking upstream and returns the durable
// booking identifier.
func (c *Client) CreateBooking(ctx context.Context, payload *CreateBookingPayload) (string, error) {
	var resp struct {
		BookingID string `json:"bookingId"`
		ID        string `json:"id"`
	}
	if err := c.post(ctx, "/api/bookings", payload, &resp); err != nil {
		return "", fmt.Errorf("create booking: %w", err)
	}

	bookingID := resp.BookingID
	if bookingID == "" {
		bookingID = resp.ID
	}
	if bookingID == "" {
		return "", fmt.Errorf("create booking: upstream response missing booking identifier")
	}

	return bookingID, nil
}

// ListUserBookings returns the calling user's bookings; the upstream scopes
// the listing by the forwarded bearer token.
func (c *Client) ListUserBookings(ctx context.Context) ([]*entity.Booking, error) {
	var raw []map[string]any
	if err := c.get(ctx, "/api/bookings/user", &raw); err != nil {
		return nil, fmt.Errorf("list user bookings: %w", err)
	}

	bookings := make([]*entity.Booking, 0, len(raw))
	for _, item := range raw {
		booking, err := entity.NormalizeBooking(item)
		if err != nil {
			c.log.Warn("Skipping malformed booking in upstream response", zap.Error(err))
			continue
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

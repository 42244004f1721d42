package response

import (
	"time"

	"hotel-storefront/internal/data/entity"
)

type PriceInfo struct {
	Nights         int     `json:"nights"`
	TotalPrice     float64 `json:"totalPrice"`
	FormattedPrice string  `json:"formattedPrice"`
}

// BookingResponse is returned by the persistence request stage: the
// durable identifier plus the provisional price shown in the summary panel.
type BookingResponse struct {
	BookingID string    `json:"bookingId"`
	Price     PriceInfo `json:"price"`
}

// CheckoutSessionResponse hands the hosted checkout redirect URL to the
// browser; the navigation itself is a full-page transfer the UI performs.
type CheckoutSessionResponse struct {
	SessionURL string `json:"sessionUrl"`
}

// BookingView is one row of the user's booking history.
type BookingView struct {
	ID            string                `json:"id"`
	HotelName     string                `json:"hotelName"`
	FirstName     string                `json:"firstName"`
	LastName      string                `json:"lastName"`
	RoomNumber    int                   `json:"roomNumber"`
	CheckIn       time.Time             `json:"checkIn"`
	CheckOut      time.Time             `json:"checkOut"`
	PaymentStatus entity.PaymentStatus  `json:"paymentStatus"`
	Status        entity.TemporalStatus `json:"status"`
}

func BookingToView(b *entity.Booking, now time.Time) *BookingView {
	return &BookingView{
		ID:            b.ID,
		HotelName:     b.HotelName,
		FirstName:     b.FirstName,
		LastName:      b.LastName,
		RoomNumber:    b.RoomNumber,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		PaymentStatus: b.PaymentStatus,
		Status:        b.TemporalStatus(now),
	}
}

// LastBookingResponse exposes the durable slot for correlation/debugging.
type LastBookingResponse struct {
	BookingID string    `json:"bookingId"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

package response

import (
	"time"

	"hotel-storefront/internal/data/entity"
)

type BookingDetailsResponse struct {
	HotelName  string    `json:"hotelName"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	RoomNumber int       `json:"roomNumber"`
	CheckIn    time.Time `json:"checkIn"`
	CheckOut   time.Time `json:"checkOut"`
}

// PaymentSuccessResponse is the success page's view of a claimed
// verification result.
type PaymentSuccessResponse struct {
	SessionID           string                  `json:"sessionId"`
	BookingID           string                  `json:"bookingId"`
	StripePaymentStatus string                  `json:"stripePaymentStatus"`
	BookingStatus       entity.PaymentStatus    `json:"bookingPaymentStatus"`
	Details             *BookingDetailsResponse `json:"bookingDetails"`
}

// PaymentFailedResponse keeps both raw signals for diagnostic display.
type PaymentFailedResponse struct {
	SessionID           string               `json:"sessionId,omitempty"`
	StripePaymentStatus string               `json:"stripePaymentStatus,omitempty"`
	BookingStatus       entity.PaymentStatus `json:"bookingPaymentStatus,omitempty"`
	Error               string               `json:"error,omitempty"`
}

func DetailsToResponse(d *entity.BookingDetails) *BookingDetailsResponse {
	if d == nil {
		return nil
	}
	return &BookingDetailsResponse{
		HotelName:  d.HotelName,
		FirstName:  d.FirstName,
		LastName:   d.LastName,
		RoomNumber: d.RoomNumber,
		CheckIn:    d.CheckIn,
		CheckOut:   d.CheckOut,
	}
}

package entity

import (
	"fmt"
	"strings"
	"time"

	"hotel-storefront/pkg/utils"
)

// The upstream API is not consistent about field names across response
// shapes (Mongo-style "_id" vs "id", flat "hotelName" vs a nested hotel
// object, mixed-case statuses). Everything crossing the wire is mapped to
// the canonical types here, once, so consumers never duck-type.

// NormalizeBooking maps a decoded upstream booking object to the canonical
// Booking.
func NormalizeBooking(raw map[string]any) (*Booking, error) {
	if raw == nil {
		return nil, fmt.Errorf("empty booking object")
	}

	b := &Booking{
		ID:          stringField(raw, "id", "_id", "bookingId"),
		HotelID:     stringField(raw, "hotelId", "hotel_id"),
		HotelName:   stringField(raw, "hotelName", "hotel_name"),
		FirstName:   stringField(raw, "firstName", "first_name"),
		LastName:    stringField(raw, "lastName", "last_name"),
		Email:       stringField(raw, "email"),
		PhoneNumber: stringField(raw, "phoneNumber", "phone_number", "phone"),
		RoomNumber:  intField(raw, "roomNumber", "room_number"),
	}

	// Nested hotel object wins over missing flat fields
	if hotel, ok := raw["hotel"].(map[string]any); ok {
		if b.HotelID == "" {
			b.HotelID = stringField(hotel, "id", "_id")
		}
		if b.HotelName == "" {
			b.HotelName = stringField(hotel, "name")
		}
	}

	if b.ID == "" {
		return nil, fmt.Errorf("booking object missing identifier")
	}

	b.PaymentStatus = NormalizePaymentStatus(stringField(raw, "paymentStatus", "payment_status"))

	var err error
	if b.CheckIn, err = dateField(raw, "checkIn", "check_in"); err != nil {
		return nil, fmt.Errorf("booking %s: %w", b.ID, err)
	}
	if b.CheckOut, err = dateField(raw, "checkOut", "check_out"); err != nil {
		return nil, fmt.Errorf("booking %s: %w", b.ID, err)
	}

	if createdAt, err := dateField(raw, "createdAt", "created_at"); err == nil {
		b.CreatedAt = createdAt
	}

	return b, nil
}

// NormalizePaymentStatus folds upstream status casing onto the canonical
// values; anything unrecognized passes through upper-cased so it is never
// mistaken for PAID.
func NormalizePaymentStatus(s string) PaymentStatus {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "PAID":
		return PaymentStatusPaid
	case "PENDING", "":
		return PaymentStatusPending
	case "FAILED":
		return PaymentStatusFailed
	default:
		return PaymentStatus(strings.ToUpper(strings.TrimSpace(s)))
	}
}

// NormalizeHotel maps a decoded upstream hotel object to the canonical
// Hotel.
func NormalizeHotel(raw map[string]any) (*Hotel, error) {
	if raw == nil {
		return nil, fmt.Errorf("empty hotel object")
	}

	h := &Hotel{
		ID:          stringField(raw, "id", "_id"),
		Name:        stringField(raw, "name"),
		Location:    stringField(raw, "location"),
		Image:       stringField(raw, "image", "imageUrl"),
		Description: stringField(raw, "description"),
		Price:       floatField(raw, "price"),
		Rating:      floatField(raw, "rating"),
		Reviews:     intField(raw, "reviews"),
	}

	if h.ID == "" {
		return nil, fmt.Errorf("hotel object missing identifier")
	}

	return h, nil
}

func stringField(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func floatField(m map[string]any, keys ...string) float64 {
	for _, k := range keys {
		switch v := m[k].(type) {
		case float64:
			return v
		case int:
			return float64(v)
		}
	}
	return 0
}

func intField(m map[string]any, keys ...string) int {
	return int(floatField(m, keys...))
}

func dateField(m map[string]any, keys ...string) (time.Time, error) {
	for _, k := range keys {
		if v, ok := m[k].(string); ok && v != "" {
			return utils.ParseDate(v)
		}
	}
	return time.Time{}, fmt.Errorf("missing date field %q", keys[0])
}

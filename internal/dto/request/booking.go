package request

// CreateBookingRequest is the booking intent as captured by the storefront
// form. Dates arrive as RFC 3339 or plain calendar dates; phone arrives as
// a selected country calling code plus the national number.
type CreateBookingRequest struct {
	HotelID      string `json:"hotelId" validate:"required"`
	CheckInDate  string `json:"checkInDate" validate:"required"`
	CheckOutDate string `json:"checkOutDate" validate:"required"`
	FirstName    string `json:"firstName" validate:"required,min=2"`
	LastName     string `json:"lastName" validate:"required,min=2"`
	Email        string `json:"email" validate:"required,email"`
	CountryCode  string `json:"countryCode" validate:"required"`
	PhoneNumber  string `json:"phoneNumber" validate:"required,min=5"`
	RoomNumber   int    `json:"roomNumber"`
}

package entity

import (
	"time"
)

// ProviderStatusPaid is the checkout provider's terminal success status for
// a hosted checkout session.
const ProviderStatusPaid = "paid"

// CheckoutSession is provider-owned and opaque: this service only ever
// reads the redirect URL and, later, the terminal status by reference.
type CheckoutSession struct {
	SessionURL string
}

// BookingDetails is the snapshot shown on the success page.
type BookingDetails struct {
	HotelName  string
	FirstName  string
	LastName   string
	RoomNumber int
	CheckIn    time.Time
	CheckOut   time.Time
}

// VerificationResult is the reconciled outcome of one return-from-checkout
// event. It is computed once, stored in the one-shot result store, claimed
// exactly once by a result page, and never persisted — which is what makes
// the result pages unreachable by direct navigation.
type VerificationResult struct {
	SessionRef     string
	BookingID      string
	ProviderStatus string
	BookingStatus  PaymentStatus
	Details        *BookingDetails
	Error          string
}

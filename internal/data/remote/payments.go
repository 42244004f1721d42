package remote

import (
	"context"
	"fmt"

	"hotel-storefront/internal/data/entity"
)

// SessionStatus carries the two independent payment signals the
// verification stage reconciles: the checkout provider's own status for
// the session and the persisted booking record's payment status.
type SessionStatus struct {
	ProviderStatus string
	Booking        *entity.Booking
}

// CreateCheckoutSession asks the upstream for a hosted checkout session
// for the booking.
func (c *Client) CreateCheckoutSession(ctx context.Context, bookingID string) (*entity.CheckoutSession, error) {
	payload := map[string]string{"bookingId": bookingID}

	var resp struct {
		SessionURL string `json:"sessionUrl"`
	}
	if err := c.post(ctx, "/api/payments/create-checkout-session", payload, &resp); err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	return &entity.CheckoutSession{SessionURL: resp.SessionURL}, nil
}

// GetSessionStatus looks up one checkout session by the provider's opaque
// reference.
func (c *Client) GetSessionStatus(ctx context.Context, sessionRef string) (*SessionStatus, error) {
	var resp struct {
		StripePaymentStatus string         `json:"stripePaymentStatus"`
		Booking             map[string]any `json:"booking"`
	}
	path := "/api/payments/session-status?session_id=" + queryEscape(sessionRef)
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("get session status: %w", err)
	}

	booking, err := entity.NormalizeBooking(resp.Booking)
	if err != nil {
		return nil, fmt.Errorf("get session status: %w", err)
	}

	return &SessionStatus{
		ProviderStatus: resp.StripePaymentStatus,
		Booking:        booking,
	}, nil
}

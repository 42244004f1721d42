package wire

import (
	"hotel-storefront/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePayment(r chi.Router, paymentHandler *adaptor.PaymentHandler) {
	// Browser-facing endpoints. No bearer auth: the checkout provider's
	// redirect carries no Authorization header. Access is controlled by
	// the session-reference format check and the one-shot result token.

	// GET /verify-payment?session_id= - Return URL from hosted checkout
	r.Get("/verify-payment", paymentHandler.VerifyPayment)

	// GET /payment-success - Guarded terminal page
	r.Get("/payment-success", paymentHandler.PaymentSuccess)

	// GET /payment-failed - Guarded terminal page
	r.Get("/payment-failed", paymentHandler.PaymentFailed)
}

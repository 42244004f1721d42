package adaptor

import (
	"errors"
	"net/http"
	"net/url"

	"hotel-storefront/internal/usecase"
	"hotel-storefront/pkg/utils"

	"go.uber.org/zap"
)

const (
	// resultTokenCookie carries the one-shot nonce from the verification
	// redirect to the result page. HttpOnly keeps it out of script reach;
	// the short MaxAge matches the result store's TTL.
	resultTokenCookie = "verification_token"
	resultTokenMaxAge = 300

	// warningCookie is a flash message for the home page to toast after an
	// access-control redirect.
	warningCookie = "storefront_warning"

	successPath = "/payment-success"
	failedPath  = "/payment-failed"
	homePath    = "/"
)

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// VerifyPayment handles GET /verify-payment?session_id= — the URL the
// checkout provider redirects back to. Runs the verification state machine
// and forwards the browser to a result page with the one-shot token. This
// endpoint renders nothing itself.
func (h *PaymentHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	sessionRef := r.URL.Query().Get("session_id")

	ticket, err := h.service.VerifySession(r.Context(), sessionRef)
	if err != nil {
		if errors.Is(err, usecase.ErrBlockedAccess) {
			h.redirectHome(w, r, "Invalid access to payment page. Please complete a booking first.")
			return
		}
		h.log.Error("Payment verification failed unexpectedly", zap.Error(err))
		h.redirectHome(w, r, "Error verifying payment status")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     resultTokenCookie,
		Value:    ticket.Nonce,
		Path:     "/",
		MaxAge:   resultTokenMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	target := failedPath
	if ticket.State == usecase.VerificationSucceeded {
		target = successPath
	}

	http.Redirect(w, r, target, http.StatusSeeOther)
}

// PaymentSuccess handles GET /payment-success. Renders only from the
// claimed one-shot result — never from URL parameters or stored state — so
// direct navigation has nothing to show and is sent home.
func (h *PaymentHandler) PaymentSuccess(w http.ResponseWriter, r *http.Request) {
	nonce, ok := h.claimToken(w, r)
	if !ok {
		h.redirectHome(w, r, "Invalid access to payment page. Please complete a booking first.")
		return
	}

	view, err := h.service.SuccessView(nonce)
	if err != nil {
		if errors.Is(err, usecase.ErrBlockedAccess) {
			h.redirectHome(w, r, "Invalid access to payment page. Please complete a booking first.")
			return
		}
		h.log.Error("Failed to render payment success", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "Payment completed successfully!", view)
}

// PaymentFailed handles GET /payment-failed. The guard is deliberately
// permissive — transport-error paths may carry only an error string — but
// contextless access still goes home.
func (h *PaymentHandler) PaymentFailed(w http.ResponseWriter, r *http.Request) {
	nonce, ok := h.claimToken(w, r)
	if !ok {
		h.redirectHome(w, r, "Invalid access to payment page. Please complete a booking first.")
		return
	}

	view, err := h.service.FailureView(nonce)
	if err != nil {
		if errors.Is(err, usecase.ErrBlockedAccess) {
			h.redirectHome(w, r, "Invalid access to payment page. Please complete a booking first.")
			return
		}
		h.log.Error("Failed to render payment failure", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "Payment verification failed", view)
}

// claimToken reads the one-shot cookie and immediately expires it.
func (h *PaymentHandler) claimToken(w http.ResponseWriter, r *http.Request) (string, bool) {
	cookie, err := r.Cookie(resultTokenCookie)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	http.SetCookie(w, &http.Cookie{
		Name:     resultTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return cookie.Value, true
}

// redirectHome is the shared access-control exit: a warning flash for the
// UI to toast, then a silent redirect to the home page. Never a hard
// error.
func (h *PaymentHandler) redirectHome(w http.ResponseWriter, r *http.Request, warning string) {
	h.log.Warn("Redirecting invalid payment page access",
		zap.String("path", r.URL.Path))

	// Cookie values cannot carry spaces; the UI decodes before toasting
	http.SetCookie(w, &http.Cookie{
		Name:     warningCookie,
		Value:    url.QueryEscape(warning),
		Path:     "/",
		MaxAge:   60,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, homePath, http.StatusSeeOther)
}

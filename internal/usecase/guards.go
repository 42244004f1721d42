package usecase

import (
	"errors"
	"strings"

	"hotel-storefront/internal/data/entity"
)

// ErrBlockedAccess marks an access-control rejection: a malformed session
// reference or a result page reached without a legitimate verification
// handoff. Distinct from a payment failure — the caller answers with a
// silent redirect home plus a warning, never an error page.
var ErrBlockedAccess = errors.New("blocked access to payment page")

// AccessCheck is the outcome of a guard predicate; the reason is logged,
// never shown verbatim to the user.
type AccessCheck struct {
	Valid  bool
	Reason string
}

// ValidateVerificationAccess gates the verification stage itself. The
// session reference must be present and carry the checkout provider's
// reference prefix; anything else is treated as a direct-URL probe and is
// rejected before any upstream call is made.
func ValidateVerificationAccess(sessionRef, prefix string) AccessCheck {
	if strings.TrimSpace(sessionRef) == "" {
		return AccessCheck{Valid: false, Reason: "no checkout session reference provided"}
	}

	if !strings.HasPrefix(sessionRef, prefix) {
		return AccessCheck{Valid: false, Reason: "invalid checkout session reference format"}
	}

	return AccessCheck{Valid: true, Reason: "valid payment verification access"}
}

// ValidateSuccessAccess gates the success page. Success must be provably
// earned: the claimed result, its session reference, and its booking
// identifier must all be present, and both payment signals must
// independently indicate success.
func ValidateSuccessAccess(result *entity.VerificationResult) AccessCheck {
	if result == nil {
		return AccessCheck{Valid: false, Reason: "missing payment session data"}
	}

	if result.SessionRef == "" || result.BookingID == "" {
		return AccessCheck{Valid: false, Reason: "missing required payment session data"}
	}

	if result.ProviderStatus != entity.ProviderStatusPaid {
		return AccessCheck{Valid: false, Reason: "provider payment status is not successful"}
	}

	if result.BookingStatus != entity.PaymentStatusPaid {
		return AccessCheck{Valid: false, Reason: "booking payment status is not confirmed"}
	}

	return AccessCheck{Valid: true, Reason: "valid payment success access"}
}

// ValidateFailureAccess gates the failure page. Deliberately permissive:
// transport-error paths may lack a session reference, so either the
// reference or an error string is enough. Only completely contextless
// access is rejected.
func ValidateFailureAccess(result *entity.VerificationResult) AccessCheck {
	if result == nil {
		return AccessCheck{Valid: false, Reason: "no session or error data"}
	}

	if result.SessionRef != "" || result.Error != "" {
		return AccessCheck{Valid: true, Reason: "valid payment failure access"}
	}

	return AccessCheck{Valid: false, Reason: "no session or error data"}
}

package usecase

import (
	"context"
	"fmt"

	"hotel-storefront/internal/data/entity"
	"hotel-storefront/internal/data/remote"
	"hotel-storefront/internal/data/repository"
	"hotel-storefront/internal/dto/response"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// VerificationState is a terminal verification outcome. The verification
// stage has no user-interactive UI: every path ends in one of these or in
// an ErrBlockedAccess rejection.
type VerificationState string

const (
	VerificationSucceeded VerificationState = "SUCCEEDED"
	VerificationFailed    VerificationState = "FAILED"
)

// VerificationTicket routes the browser to a result page. The nonce is the
// only handle to the stored result and works exactly once.
type VerificationTicket struct {
	State VerificationState
	Nonce string
}

type PaymentService interface {
	// VerifySession runs the verification state machine for one
	// return-from-checkout event. ErrBlockedAccess means the reference was
	// missing or malformed; no upstream call was made.
	VerifySession(ctx context.Context, sessionRef string) (*VerificationTicket, error)

	// SuccessView claims the nonce and applies the success-page guard.
	SuccessView(nonce string) (*response.PaymentSuccessResponse, error)

	// FailureView claims the nonce and applies the failure-page guard.
	FailureView(nonce string) (*response.PaymentFailedResponse, error)
}

type paymentService struct {
	upstream      *remote.Client
	repo          *repository.Repository
	sessionPrefix string
	group         singleflight.Group
	log           *zap.Logger
}

func NewPaymentService(upstream *remote.Client, repo *repository.Repository, sessionPrefix string, log *zap.Logger) PaymentService {
	return &paymentService{
		upstream:      upstream,
		repo:          repo,
		sessionPrefix: sessionPrefix,
		log:           log.With(zap.String("service", "payment")),
	}
}

// Reconcile is the dual-signal check at the heart of verification. The
// provider confirming payment and the upstream's webhook updating the
// booking record are separate systems that can be out of sync; neither
// alone is authoritative, so both must independently indicate success.
func Reconcile(providerStatus string, bookingStatus entity.PaymentStatus) bool {
	return providerStatus == entity.ProviderStatusPaid && bookingStatus == entity.PaymentStatusPaid
}

func (s *paymentService) VerifySession(ctx context.Context, sessionRef string) (*VerificationTicket, error) {
	// EXTRACTING_REFERENCE: reject malformed references before touching
	// the network.
	if check := ValidateVerificationAccess(sessionRef, s.sessionPrefix); !check.Valid {
		s.log.Warn("Blocked payment verification access",
			zap.String("session_ref", sessionRef),
			zap.String("reason", check.Reason))
		return nil, fmt.Errorf("%w: %s", ErrBlockedAccess, check.Reason)
	}

	// VERIFYING: one upstream query per distinct reference, even when the
	// browser fires the return handler more than once.
	v, err, _ := s.group.Do(sessionRef, func() (any, error) {
		return s.upstream.GetSessionStatus(ctx, sessionRef)
	})
	if err != nil {
		// Transport and API errors terminate in FAILED, not in a retry
		// loop; the raw error travels with the result for display.
		s.log.Error("Payment verification query failed",
			zap.String("session_ref", sessionRef),
			zap.Error(err))

		nonce := s.repo.Result.Put(&entity.VerificationResult{
			SessionRef: sessionRef,
			Error:      err.Error(),
		})
		return &VerificationTicket{State: VerificationFailed, Nonce: nonce}, nil
	}

	status := v.(*remote.SessionStatus)
	booking := status.Booking

	result := &entity.VerificationResult{
		SessionRef:     sessionRef,
		BookingID:      booking.ID,
		ProviderStatus: status.ProviderStatus,
		BookingStatus:  booking.PaymentStatus,
		Details: &entity.BookingDetails{
			HotelName:  booking.HotelName,
			FirstName:  booking.FirstName,
			LastName:   booking.LastName,
			RoomNumber: booking.RoomNumber,
			CheckIn:    booking.CheckIn,
			CheckOut:   booking.CheckOut,
		},
	}

	if !Reconcile(status.ProviderStatus, booking.PaymentStatus) {
		result.Error = fmt.Sprintf("payment status: provider=%s, booking=%s",
			status.ProviderStatus, booking.PaymentStatus)

		s.log.Warn("Payment verification failed",
			zap.String("session_ref", sessionRef),
			zap.String("provider_status", status.ProviderStatus),
			zap.String("booking_status", string(booking.PaymentStatus)))

		nonce := s.repo.Result.Put(result)
		return &VerificationTicket{State: VerificationFailed, Nonce: nonce}, nil
	}

	s.log.Info("Payment verified",
		zap.String("session_ref", sessionRef),
		zap.String("booking_id", booking.ID))

	nonce := s.repo.Result.Put(result)
	return &VerificationTicket{State: VerificationSucceeded, Nonce: nonce}, nil
}

func (s *paymentService) SuccessView(nonce string) (*response.PaymentSuccessResponse, error) {
	result, ok := s.repo.Result.Claim(nonce)
	if !ok {
		return nil, fmt.Errorf("%w: missing payment session data", ErrBlockedAccess)
	}

	if check := ValidateSuccessAccess(result); !check.Valid {
		s.log.Warn("Blocked payment success access", zap.String("reason", check.Reason))
		return nil, fmt.Errorf("%w: %s", ErrBlockedAccess, check.Reason)
	}

	return &response.PaymentSuccessResponse{
		SessionID:           result.SessionRef,
		BookingID:           result.BookingID,
		StripePaymentStatus: result.ProviderStatus,
		BookingStatus:       result.BookingStatus,
		Details:             response.DetailsToResponse(result.Details),
	}, nil
}

func (s *paymentService) FailureView(nonce string) (*response.PaymentFailedResponse, error) {
	result, ok := s.repo.Result.Claim(nonce)
	if !ok {
		return nil, fmt.Errorf("%w: no session or error data", ErrBlockedAccess)
	}

	if check := ValidateFailureAccess(result); !check.Valid {
		s.log.Warn("Blocked payment failure access", zap.String("reason", check.Reason))
		return nil, fmt.Errorf("%w: %s", ErrBlockedAccess, check.Reason)
	}

	return &response.PaymentFailedResponse{
		SessionID:           result.SessionRef,
		StripePaymentStatus: result.ProviderStatus,
		BookingStatus:       result.BookingStatus,
		Error:               result.Error,
	}, nil
}

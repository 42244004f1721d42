package adaptor_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"hotel-storefront/internal/adaptor"
	"hotel-storefront/internal/data/remote"
	"hotel-storefront/internal/data/repository"
	"hotel-storefront/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// paymentTestServer wires the payment handler against a stubbed upstream
// session-status endpoint and returns the router plus the upstream call
// counter.
func paymentTestServer(t *testing.T, providerStatus, bookingStatus string, calls *atomic.Int64) http.Handler {
	t.Helper()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"stripePaymentStatus": providerStatus,
			"booking": map[string]any{
				"id":            "b1",
				"hotelName":     "Grand Horizon",
				"firstName":     "Amal",
				"lastName":      "Perera",
				"roomNumber":    2,
				"paymentStatus": bookingStatus,
				"checkIn":       "2026-03-01T00:00:00Z",
				"checkOut":      "2026-03-04T00:00:00Z",
			},
		})
	}))
	t.Cleanup(upstream.Close)

	client := remote.NewClient(upstream.URL, 5*time.Second, remote.StaticTokenProvider("test-token"), zap.NewNop())
	repo := &repository.Repository{Result: repository.NewResultRepository(time.Minute)}
	service := usecase.NewPaymentService(client, repo, "cs_", zap.NewNop())
	handler := adaptor.NewPaymentHandler(service, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/verify-payment", handler.VerifyPayment)
	r.Get("/payment-success", handler.PaymentSuccess)
	r.Get("/payment-failed", handler.PaymentFailed)
	return r
}

func cookieByName(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestVerifyPayment_HappyPath(t *testing.T) {
	var calls atomic.Int64
	router := paymentTestServer(t, "paid", "PAID", &calls)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/verify-payment?session_id=cs_test_abc123", nil))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/payment-success", rec.Header().Get("Location"))
	assert.Equal(t, int64(1), calls.Load())

	token := cookieByName(t, rec, "verification_token")
	require.NotNil(t, token, "redirect must carry the one-shot token")
	assert.NotEmpty(t, token.Value)
	assert.True(t, token.HttpOnly)
	assert.Equal(t, 300, token.MaxAge)

	// The result page renders from the claimed token
	rec2 := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payment-success", nil)
	req.AddCookie(&http.Cookie{Name: "verification_token", Value: token.Value})
	router.ServeHTTP(rec2, req)

	require.Equal(t, http.StatusOK, rec2.Code)

	var body struct {
		Data struct {
			SessionID     string `json:"sessionId"`
			BookingID     string `json:"bookingId"`
			BookingStatus string `json:"bookingPaymentStatus"`
			Details       struct {
				HotelName string `json:"hotelName"`
			} `json:"bookingDetails"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec2.Body.Bytes(), &body))
	assert.Equal(t, "cs_test_abc123", body.Data.SessionID)
	assert.Equal(t, "b1", body.Data.BookingID)
	assert.Equal(t, "PAID", body.Data.BookingStatus)
	assert.Equal(t, "Grand Horizon", body.Data.Details.HotelName)

	// The token cookie is expired on claim
	expired := cookieByName(t, rec2, "verification_token")
	require.NotNil(t, expired)
	assert.Less(t, expired.MaxAge, 0)
}

func TestVerifyPayment_MalformedReferenceGoesHome(t *testing.T) {
	var calls atomic.Int64
	router := paymentTestServer(t, "paid", "PAID", &calls)

	for _, sessionID := range []string{"", "xyz_123", "%20%20"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/verify-payment?session_id="+sessionID, nil))

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))

		warning := cookieByName(t, rec, "storefront_warning")
		require.NotNil(t, warning)
		decoded, err := url.QueryUnescape(warning.Value)
		require.NoError(t, err)
		assert.Contains(t, decoded, "Invalid access")
	}

	assert.Equal(t, int64(0), calls.Load(), "malformed references must never reach the upstream")
}

func TestVerifyPayment_DisagreementRedirectsToFailed(t *testing.T) {
	var calls atomic.Int64
	router := paymentTestServer(t, "paid", "PENDING", &calls)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/verify-payment?session_id=cs_test_abc123", nil))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/payment-failed", rec.Header().Get("Location"))

	token := cookieByName(t, rec, "verification_token")
	require.NotNil(t, token)

	rec2 := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payment-failed", nil)
	req.AddCookie(&http.Cookie{Name: "verification_token", Value: token.Value})
	router.ServeHTTP(rec2, req)

	require.Equal(t, http.StatusOK, rec2.Code)

	var body struct {
		Data struct {
			Error string `json:"error"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec2.Body.Bytes(), &body))
	assert.Equal(t, "payment status: provider=paid, booking=PENDING", body.Data.Error)
}

func TestPaymentSuccess_DirectAccessGoesHome(t *testing.T) {
	var calls atomic.Int64
	router := paymentTestServer(t, "paid", "PAID", &calls)

	t.Run("no cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/payment-success", nil))

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
		assert.NotNil(t, cookieByName(t, rec, "storefront_warning"))
	})

	t.Run("forged token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/payment-success", nil)
		req.AddCookie(&http.Cookie{Name: "verification_token", Value: "forged-nonce"})
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
	})
}

func TestPaymentSuccess_TokenIsSingleUse(t *testing.T) {
	var calls atomic.Int64
	router := paymentTestServer(t, "paid", "PAID", &calls)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/verify-payment?session_id=cs_test_abc123", nil))
	token := cookieByName(t, rec, "verification_token")
	require.NotNil(t, token)

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payment-success", nil)
	req.AddCookie(&http.Cookie{Name: "verification_token", Value: token.Value})
	router.ServeHTTP(first, req)
	require.Equal(t, http.StatusOK, first.Code)

	// Replaying the same token finds nothing and goes home
	second := httptest.NewRecorder()
	replay := httptest.NewRequest(http.MethodGet, "/payment-success", nil)
	replay.AddCookie(&http.Cookie{Name: "verification_token", Value: token.Value})
	router.ServeHTTP(second, replay)

	require.Equal(t, http.StatusSeeOther, second.Code)
	assert.Equal(t, "/", second.Header().Get("Location"))
}

func TestPaymentFailed_FailedResultBlockedFromSuccessPage(t *testing.T) {
	var calls atomic.Int64
	router := paymentTestServer(t, "paid", "PENDING", &calls)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/verify-payment?session_id=cs_test_abc123", nil))
	token := cookieByName(t, rec, "verification_token")
	require.NotNil(t, token)

	// Forcing the success page with a failed result trips the guard
	rec2 := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payment-success", nil)
	req.AddCookie(&http.Cookie{Name: "verification_token", Value: token.Value})
	router.ServeHTTP(rec2, req)

	require.Equal(t, http.StatusSeeOther, rec2.Code)
	assert.Equal(t, "/", rec2.Header().Get("Location"))
}

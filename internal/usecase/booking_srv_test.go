package usecase_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotel-storefront/internal/data/remote"
	"hotel-storefront/internal/data/repository"
	"hotel-storefront/internal/dto/request"
	"hotel-storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeStateRepo records slot writes in memory.
type fakeStateRepo struct {
	userID    string
	bookingID string
	at        time.Time
	saveErr   error
}

func (f *fakeStateRepo) SaveLastBooking(ctx context.Context, userID, bookingID string, at time.Time) error {
	f.userID = userID
	f.bookingID = bookingID
	f.at = at
	return f.saveErr
}

func (f *fakeStateRepo) LastBooking(ctx context.Context, userID string) (string, time.Time, error) {
	if f.bookingID == "" {
		return "", time.Time{}, repository.ErrSlotEmpty
	}
	return f.bookingID, f.at, nil
}

func validBookingRequest(checkIn, checkOut string) *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		HotelID:      "h1",
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		FirstName:    "Amal",
		LastName:     "Perera",
		Email:        "amal@example.com",
		CountryCode:  "+94",
		PhoneNumber:  "771234567",
	}
}

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).UTC().Format("2006-01-02")
}

func bookingUpstream(t *testing.T, captured *remote.CreateBookingPayload) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/hotels/h1":
			json.NewEncoder(w).Encode(map[string]any{
				"_id":   "h1",
				"name":  "Grand Horizon",
				"price": 100.0,
			})

		case r.Method == http.MethodPost && r.URL.Path == "/api/bookings":
			require.NoError(t, json.NewDecoder(r.Body).Decode(captured))
			json.NewEncoder(w).Encode(map[string]string{"bookingId": "b1"})

		default:
			t.Errorf("unexpected upstream call: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func newBookingService(upstreamURL string, state *fakeStateRepo) usecase.BookingService {
	client := remote.NewClient(upstreamURL, 5*time.Second, remote.StaticTokenProvider("test-token"), zap.NewNop())
	repo := &repository.Repository{
		State:  state,
		Result: repository.NewResultRepository(time.Minute),
	}
	return usecase.NewBookingService(client, repo, zap.NewNop())
}

func TestCreateBooking_Success(t *testing.T) {
	var captured remote.CreateBookingPayload
	ts := bookingUpstream(t, &captured)
	defer ts.Close()

	state := &fakeStateRepo{}
	service := newBookingService(ts.URL, state)

	resp, err := service.CreateBooking(context.Background(), "user_1", validBookingRequest(futureDate(2), futureDate(5)))

	require.NoError(t, err)
	assert.Equal(t, "b1", resp.BookingID)
	assert.Equal(t, 3, resp.Price.Nights)
	assert.Equal(t, float64(300), resp.Price.TotalPrice)
	assert.Equal(t, "$300.00", resp.Price.FormattedPrice)

	// Phone is normalized to one string, dates to RFC 3339, room defaults
	// to 1
	assert.Equal(t, "+94771234567", captured.PhoneNumber)
	assert.Equal(t, 1, captured.RoomNumber)
	_, err = time.Parse(time.RFC3339, captured.CheckIn)
	assert.NoError(t, err)
	_, err = time.Parse(time.RFC3339, captured.CheckOut)
	assert.NoError(t, err)

	// The identifier was stored in the slot before returning
	assert.Equal(t, "user_1", state.userID)
	assert.Equal(t, "b1", state.bookingID)
}

func TestCreateBooking_RejectsBadStayDates(t *testing.T) {
	ts := bookingUpstream(t, &remote.CreateBookingPayload{})
	defer ts.Close()

	service := newBookingService(ts.URL, &fakeStateRepo{})

	t.Run("equal dates", func(t *testing.T) {
		_, err := service.CreateBooking(context.Background(), "user_1", validBookingRequest(futureDate(2), futureDate(2)))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "check-out date must be after check-in date")
	})

	t.Run("check-out before check-in", func(t *testing.T) {
		_, err := service.CreateBooking(context.Background(), "user_1", validBookingRequest(futureDate(5), futureDate(2)))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "check-out date must be after check-in date")
	})

	t.Run("check-in in the past", func(t *testing.T) {
		past := time.Now().AddDate(0, 0, -3).UTC().Format("2006-01-02")
		_, err := service.CreateBooking(context.Background(), "user_1", validBookingRequest(past, futureDate(2)))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "check-in date cannot be in the past")
	})
}

func TestCreateBooking_RejectsInvalidFields(t *testing.T) {
	ts := bookingUpstream(t, &remote.CreateBookingPayload{})
	defer ts.Close()

	service := newBookingService(ts.URL, &fakeStateRepo{})

	t.Run("short first name", func(t *testing.T) {
		req := validBookingRequest(futureDate(2), futureDate(5))
		req.FirstName = "A"
		_, err := service.CreateBooking(context.Background(), "user_1", req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})

	t.Run("phone with letters", func(t *testing.T) {
		req := validBookingRequest(futureDate(2), futureDate(5))
		req.PhoneNumber = "77abc4567"
		_, err := service.CreateBooking(context.Background(), "user_1", req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "only digits")
	})

	t.Run("bad email", func(t *testing.T) {
		req := validBookingRequest(futureDate(2), futureDate(5))
		req.Email = "not-an-email"
		_, err := service.CreateBooking(context.Background(), "user_1", req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})
}

func TestCreateBooking_SlotMismatchDoesNotAbort(t *testing.T) {
	var captured remote.CreateBookingPayload
	ts := bookingUpstream(t, &captured)
	defer ts.Close()

	state := &fakeStateRepo{saveErr: repository.ErrSlotMismatch}
	service := newBookingService(ts.URL, state)

	resp, err := service.CreateBooking(context.Background(), "user_1", validBookingRequest(futureDate(2), futureDate(5)))

	// The anomaly is logged, not fatal: the booking itself succeeded
	require.NoError(t, err)
	assert.Equal(t, "b1", resp.BookingID)
}

func TestCreateCheckoutSession(t *testing.T) {
	t.Run("returns redirect URL", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/payments/create-checkout-session", r.URL.Path)

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "b1", body["bookingId"])

			json.NewEncoder(w).Encode(map[string]string{"sessionUrl": "https://checkout.example.com/c/pay/cs_abc"})
		}))
		defer ts.Close()

		service := newBookingService(ts.URL, &fakeStateRepo{})

		resp, err := service.CreateCheckoutSession(context.Background(), "b1")
		require.NoError(t, err)
		assert.Equal(t, "https://checkout.example.com/c/pay/cs_abc", resp.SessionURL)
	})

	t.Run("missing redirect URL is fatal for the attempt", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{})
		}))
		defer ts.Close()

		service := newBookingService(ts.URL, &fakeStateRepo{})

		_, err := service.CreateCheckoutSession(context.Background(), "b1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing redirect URL")
	})
}

func TestCreateBooking_UpstreamErrorSurfacesMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			json.NewEncoder(w).Encode(map[string]any{"_id": "h1", "name": "Grand Horizon", "price": 100.0})
			return
		}
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"message": "hotel is fully booked for those dates"})
	}))
	defer ts.Close()

	service := newBookingService(ts.URL, &fakeStateRepo{})

	_, err := service.CreateBooking(context.Background(), "user_1", validBookingRequest(futureDate(2), futureDate(5)))

	require.Error(t, err)
	var apiErr *remote.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "hotel is fully booked for those dates", apiErr.Message)
}

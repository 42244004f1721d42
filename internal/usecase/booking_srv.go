package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"hotel-storefront/internal/data/remote"
	"hotel-storefront/internal/data/repository"
	"hotel-storefront/internal/dto/request"
	"hotel-storefront/internal/dto/response"
	"hotel-storefront/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	// CreateBooking validates the intent, persists it upstream, and stores
	// the returned identifier in the durable slot.
	CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error)

	// CreateCheckoutSession requests the hosted checkout redirect for an
	// already-persisted booking. Strictly ordered after CreateBooking: its
	// input is that stage's output.
	CreateCheckoutSession(ctx context.Context, bookingID string) (*response.CheckoutSessionResponse, error)

	GetUserBookings(ctx context.Context) ([]*response.BookingView, error)
	LastBooking(ctx context.Context, userID string) (*response.LastBookingResponse, error)
}

type bookingService struct {
	upstream *remote.Client
	repo     *repository.Repository
	log      *zap.Logger
	now      func() time.Time
}

func NewBookingService(upstream *remote.Client, repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		upstream: upstream,
		repo:     repo,
		log:      log.With(zap.String("service", "booking")),
		now:      time.Now,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if !utils.DigitsOnly(req.PhoneNumber) {
		return nil, fmt.Errorf("validation failed: PhoneNumber: Must contain only digits")
	}

	checkIn, err := utils.ParseDate(req.CheckInDate)
	if err != nil {
		return nil, fmt.Errorf("validation failed: CheckInDate: %s", err)
	}

	checkOut, err := utils.ParseDate(req.CheckOutDate)
	if err != nil {
		return nil, fmt.Errorf("validation failed: CheckOutDate: %s", err)
	}

	// Stay-date invariant: check-out strictly after check-in, check-in not
	// in the past. Equal dates fail.
	if !checkOut.After(checkIn) {
		return nil, fmt.Errorf("validation failed: check-out date must be after check-in date")
	}

	today := startOfDay(s.now())
	if checkIn.Before(today) {
		return nil, fmt.Errorf("validation failed: check-in date cannot be in the past")
	}

	// Hotel must exist; its rate drives the provisional price
	hotel, err := s.upstream.GetHotel(ctx, req.HotelID)
	if err != nil {
		s.log.Error("Failed to load hotel for booking", zap.String("hotel_id", req.HotelID), zap.Error(err))
		return nil, err
	}

	price := CalculateStayPrice(hotel.Price, checkIn, checkOut)

	roomNumber := req.RoomNumber
	if roomNumber == 0 {
		roomNumber = 1
	}

	payload := &remote.CreateBookingPayload{
		HotelID:     req.HotelID,
		CheckIn:     checkIn.UTC().Format(time.RFC3339),
		CheckOut:    checkOut.UTC().Format(time.RFC3339),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.CountryCode + req.PhoneNumber,
		RoomNumber:  roomNumber,
	}

	bookingID, err := s.upstream.CreateBooking(ctx, payload)
	if err != nil {
		s.log.Error("Failed to create booking upstream", zap.Error(err))
		return nil, err
	}

	s.log.Info("Booking created",
		zap.String("booking_id", bookingID),
		zap.String("hotel_id", req.HotelID),
		zap.Int("nights", price.Nights),
	)

	// The slot must be written, and verified, before the checkout redirect
	// leaves the app. A mismatch is an anomaly worth an error log but not
	// a reason to abandon the booking itself.
	if err := s.repo.State.SaveLastBooking(ctx, userID, bookingID, s.now()); err != nil {
		if errors.Is(err, repository.ErrSlotMismatch) {
			s.log.Error("Correctness anomaly: booking slot clobbered after write",
				zap.String("booking_id", bookingID),
				zap.String("user_id", userID))
		} else {
			s.log.Error("Failed to store booking identifier", zap.Error(err))
		}
	}

	return &response.BookingResponse{
		BookingID: bookingID,
		Price:     price,
	}, nil
}

func (s *bookingService) CreateCheckoutSession(ctx context.Context, bookingID string) (*response.CheckoutSessionResponse, error) {
	if bookingID == "" {
		return nil, fmt.Errorf("invalid booking ID")
	}

	session, err := s.upstream.CreateCheckoutSession(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to create checkout session",
			zap.String("booking_id", bookingID),
			zap.Error(err))
		return nil, err
	}

	// Fatal for this attempt: without a redirect URL there is nowhere to
	// hand the browser, so the caller must not navigate.
	if session.SessionURL == "" {
		s.log.Error("Checkout session response missing redirect URL",
			zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("could not create payment session: missing redirect URL")
	}

	return &response.CheckoutSessionResponse{SessionURL: session.SessionURL}, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context) ([]*response.BookingView, error) {
	bookings, err := s.upstream.ListUserBookings(ctx)
	if err != nil {
		s.log.Error("Failed to list user bookings", zap.Error(err))
		return nil, err
	}

	now := s.now()
	views := make([]*response.BookingView, len(bookings))
	for i, b := range bookings {
		views[i] = response.BookingToView(b, now)
	}

	// Newest stays first
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].CheckIn.After(views[j].CheckIn)
	})

	return views, nil
}

func (s *bookingService) LastBooking(ctx context.Context, userID string) (*response.LastBookingResponse, error) {
	bookingID, at, err := s.repo.State.LastBooking(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSlotEmpty) {
			return nil, fmt.Errorf("no booking found")
		}
		s.log.Error("Failed to read booking slot", zap.Error(err))
		return nil, err
	}

	return &response.LastBookingResponse{
		BookingID: bookingID,
		CreatedAt: at,
	}, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

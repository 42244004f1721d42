package usecase

import (
	"hotel-storefront/internal/data/remote"
	"hotel-storefront/internal/data/repository"
	"hotel-storefront/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Hotel   HotelService
	Booking BookingService
	Payment PaymentService
}

func NewService(upstream *remote.Client, repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Hotel:   NewHotelService(upstream, log),
		Booking: NewBookingService(upstream, repo, log),
		Payment: NewPaymentService(upstream, repo, config.Checkout.SessionPrefix, log),
	}
}

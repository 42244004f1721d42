package usecase

import (
	"context"
	"fmt"

	"hotel-storefront/internal/data/remote"
	"hotel-storefront/internal/dto/request"
	"hotel-storefront/internal/dto/response"
	"hotel-storefront/pkg/utils"

	"go.uber.org/zap"
)

type HotelService interface {
	GetHotels(ctx context.Context) ([]*response.HotelResponse, error)
	SearchHotels(ctx context.Context, query string) ([]*response.HotelResponse, error)
	GetHotelByID(ctx context.Context, id string) (*response.HotelResponse, error)

	// Admin
	CreateHotel(ctx context.Context, req *request.CreateHotelRequest) (*response.HotelResponse, error)
}

type hotelService struct {
	upstream *remote.Client
	log      *zap.Logger
}

func NewHotelService(upstream *remote.Client, log *zap.Logger) HotelService {
	return &hotelService{
		upstream: upstream,
		log:      log.With(zap.String("service", "hotel")),
	}
}

func (s *hotelService) GetHotels(ctx context.Context) ([]*response.HotelResponse, error) {
	hotels, err := s.upstream.ListHotels(ctx)
	if err != nil {
		s.log.Error("Failed to list hotels", zap.Error(err))
		return nil, err
	}

	return response.HotelsToResponse(hotels), nil
}

func (s *hotelService) SearchHotels(ctx context.Context, query string) ([]*response.HotelResponse, error) {
	if query == "" {
		return nil, fmt.Errorf("invalid search: query is required")
	}

	hotels, err := s.upstream.SearchHotels(ctx, query)
	if err != nil {
		s.log.Error("Failed to search hotels", zap.String("query", query), zap.Error(err))
		return nil, err
	}

	return response.HotelsToResponse(hotels), nil
}

func (s *hotelService) GetHotelByID(ctx context.Context, id string) (*response.HotelResponse, error) {
	hotel, err := s.upstream.GetHotel(ctx, id)
	if err != nil {
		s.log.Error("Failed to get hotel", zap.String("hotel_id", id), zap.Error(err))
		return nil, err
	}

	return response.HotelToResponse(hotel), nil
}

func (s *hotelService) CreateHotel(ctx context.Context, req *request.CreateHotelRequest) (*response.HotelResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create hotel validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	hotel, err := s.upstream.CreateHotel(ctx, &remote.CreateHotelPayload{
		Name:        req.Name,
		Location:    req.Location,
		Image:       req.Image,
		Price:       req.Price,
		Description: req.Description,
	})
	if err != nil {
		s.log.Error("Failed to create hotel", zap.Error(err))
		return nil, err
	}

	return response.HotelToResponse(hotel), nil
}

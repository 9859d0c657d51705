package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/safariswap/backend/internal/domain"
	"github.com/safariswap/backend/internal/repo"
)

// HotelService implements the admin business logic for hotels.
// It holds both the hotel and accommodation-type repos because creating a
// hotel requires verifying the owning accommodation type exists.
type HotelService struct {
	hotels repo.HotelRepo
	types  repo.AccommodationTypeRepo
}

// NewHotelService constructs a HotelService backed by the provided repos.
func NewHotelService(hotels repo.HotelRepo, types repo.AccommodationTypeRepo) *HotelService {
	return &HotelService{hotels: hotels, types: types}
}

// Create validates the hotel, verifies the owning accommodation type exists,
// then persists. Returns domain.ErrValidation for invalid input and
// domain.ErrNotFound when the accommodation type does not exist.
func (s *HotelService) Create(ctx context.Context, h domain.Hotel) (domain.Hotel, error) {
	if err := validateHotel(h); err != nil {
		return domain.Hotel{}, err
	}
	if _, err := s.types.GetByID(ctx, h.AccommodationTypeID); err != nil {
		return domain.Hotel{}, fmt.Errorf("service.HotelService.Create: %w", err)
	}
	result, err := s.hotels.Create(ctx, h)
	if err != nil {
		return domain.Hotel{}, fmt.Errorf("service.HotelService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single hotel by ID.
func (s *HotelService) GetByID(ctx context.Context, id uuid.UUID) (domain.Hotel, error) {
	result, err := s.hotels.GetByID(ctx, id)
	if err != nil {
		return domain.Hotel{}, fmt.Errorf("service.HotelService.GetByID: %w", err)
	}
	return result, nil
}

// ListPaged returns one admin page of hotels plus the total count.
func (s *HotelService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Hotel, int64, error) {
	hotels, total, err := s.hotels.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.HotelService.ListPaged: %w", err)
	}
	if hotels == nil {
		hotels = []domain.Hotel{}
	}
	return hotels, total, nil
}

// ListActiveByType returns the bookable hotels for an accommodation type,
// best rated first.
func (s *HotelService) ListActiveByType(ctx context.Context, typeID uuid.UUID) ([]domain.Hotel, error) {
	hotels, err := s.hotels.ListActiveByType(ctx, typeID)
	if err != nil {
		return nil, fmt.Errorf("service.HotelService.ListActiveByType: %w", err)
	}
	if hotels == nil {
		return []domain.Hotel{}, nil
	}
	return hotels, nil
}

// Update validates and updates an existing hotel, re-verifying the owning
// accommodation type.
func (s *HotelService) Update(ctx context.Context, h domain.Hotel) (domain.Hotel, error) {
	if err := validateHotel(h); err != nil {
		return domain.Hotel{}, err
	}
	if _, err := s.types.GetByID(ctx, h.AccommodationTypeID); err != nil {
		return domain.Hotel{}, fmt.Errorf("service.HotelService.Update: %w", err)
	}
	result, err := s.hotels.Update(ctx, h)
	if err != nil {
		return domain.Hotel{}, fmt.Errorf("service.HotelService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a hotel by ID.
func (s *HotelService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.hotels.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.HotelService.Delete: %w", err)
	}
	return nil
}

// validateHotel enforces business rules common to Create and Update.
//   - Name must be non-empty.
//   - Nightly price must not be negative.
//   - Rating, when present, must fall within [0, 5].
func validateHotel(h domain.Hotel) error {
	if strings.TrimSpace(h.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if h.AccommodationTypeID == uuid.Nil {
		return fmt.Errorf("%w: accommodation_type_id is required", domain.ErrValidation)
	}
	if h.PricePerNight < 0 {
		return fmt.Errorf("%w: price per night must not be negative", domain.ErrValidation)
	}
	if h.Rating != nil && (*h.Rating < 0 || *h.Rating > 5) {
		return fmt.Errorf("%w: rating must be between 0 and 5", domain.ErrValidation)
	}
	return nil
}

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/safariswap/backend/internal/domain"
	"github.com/safariswap/backend/internal/repo"
)

// AccommodationService implements the admin business logic for accommodation types.
type AccommodationService struct {
	repo repo.AccommodationTypeRepo
}

// NewAccommodationService constructs an AccommodationService backed by the
// provided AccommodationTypeRepo.
func NewAccommodationService(r repo.AccommodationTypeRepo) *AccommodationService {
	return &AccommodationService{repo: r}
}

// Create validates and persists a new accommodation type. An empty slug is
// derived from the name, the way the admin form auto-generates it.
func (s *AccommodationService) Create(ctx context.Context, a domain.AccommodationType) (domain.AccommodationType, error) {
	if err := validateAccommodationType(&a); err != nil {
		return domain.AccommodationType{}, err
	}
	result, err := s.repo.Create(ctx, a)
	if err != nil {
		return domain.AccommodationType{}, fmt.Errorf("service.AccommodationService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single accommodation type by ID.
func (s *AccommodationService) GetByID(ctx context.Context, id uuid.UUID) (domain.AccommodationType, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.AccommodationType{}, fmt.Errorf("service.AccommodationService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all accommodation types, inactive included.
func (s *AccommodationService) List(ctx context.Context) ([]domain.AccommodationType, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.AccommodationService.List: %w", err)
	}
	if out == nil {
		return []domain.AccommodationType{}, nil
	}
	return out, nil
}

// ListActive returns the active accommodation types the wizard offers.
func (s *AccommodationService) ListActive(ctx context.Context) ([]domain.AccommodationType, error) {
	out, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.AccommodationService.ListActive: %w", err)
	}
	if out == nil {
		return []domain.AccommodationType{}, nil
	}
	return out, nil
}

// Update validates and updates an existing accommodation type.
func (s *AccommodationService) Update(ctx context.Context, a domain.AccommodationType) (domain.AccommodationType, error) {
	if err := validateAccommodationType(&a); err != nil {
		return domain.AccommodationType{}, err
	}
	result, err := s.repo.Update(ctx, a)
	if err != nil {
		return domain.AccommodationType{}, fmt.Errorf("service.AccommodationService.Update: %w", err)
	}
	return result, nil
}

// Delete removes an accommodation type by ID. Its hotels go with it.
func (s *AccommodationService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.AccommodationService.Delete: %w", err)
	}
	return nil
}

// validateAccommodationType enforces business rules common to Create and
// Update. The slug must be URL-safe because the wizard selects by slug.
func validateAccommodationType(a *domain.AccommodationType) error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if a.Slug == "" {
		a.Slug = Slugify(a.Name)
	}
	if !validSlug(a.Slug) {
		return fmt.Errorf("%w: slug must contain only lowercase letters, digits, and hyphens", domain.ErrValidation)
	}
	if a.Slug == domain.SelectionNone {
		return fmt.Errorf("%w: %q is reserved", domain.ErrValidation, domain.SelectionNone)
	}
	if a.PricePerNight < 0 {
		return fmt.Errorf("%w: price per night must not be negative", domain.ErrValidation)
	}
	return nil
}

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/safariswap/backend/internal/domain"
	"github.com/safariswap/backend/internal/repo"
)

// DestinationService implements the admin business logic for destinations.
type DestinationService struct {
	repo repo.DestinationRepo
}

// NewDestinationService constructs a DestinationService backed by the
// provided DestinationRepo.
func NewDestinationService(r repo.DestinationRepo) *DestinationService {
	return &DestinationService{repo: r}
}

// Create validates and persists a new destination.
func (s *DestinationService) Create(ctx context.Context, d domain.Destination) (domain.Destination, error) {
	if err := validateDestination(&d); err != nil {
		return domain.Destination{}, err
	}
	result, err := s.repo.Create(ctx, d)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("service.DestinationService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single destination by ID.
func (s *DestinationService) GetByID(ctx context.Context, id uuid.UUID) (domain.Destination, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("service.DestinationService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all destinations, newest first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *DestinationService) List(ctx context.Context) ([]domain.Destination, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.DestinationService.List: %w", err)
	}
	if out == nil {
		return []domain.Destination{}, nil
	}
	return out, nil
}

// Update validates and updates an existing destination.
func (s *DestinationService) Update(ctx context.Context, d domain.Destination) (domain.Destination, error) {
	if err := validateDestination(&d); err != nil {
		return domain.Destination{}, err
	}
	result, err := s.repo.Update(ctx, d)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("service.DestinationService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a destination by ID.
func (s *DestinationService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.DestinationService.Delete: %w", err)
	}
	return nil
}

// validateDestination enforces business rules common to Create and Update.
// Activity names are trimmed and blanks dropped, matching how the admin
// screen parses its comma-separated input.
func validateDestination(d *domain.Destination) error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(d.Country) == "" {
		return fmt.Errorf("%w: country is required", domain.ErrValidation)
	}
	cleaned := make([]string, 0, len(d.Activities))
	for _, a := range d.Activities {
		if t := strings.TrimSpace(a); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	d.Activities = cleaned
	return nil
}

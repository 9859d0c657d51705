package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/safariswap/backend/internal/domain"
	"github.com/safariswap/backend/internal/repo"
)

// ActivityService implements the admin business logic for activities.
type ActivityService struct {
	repo repo.ActivityRepo
}

// NewActivityService constructs an ActivityService backed by the provided ActivityRepo.
func NewActivityService(r repo.ActivityRepo) *ActivityService {
	return &ActivityService{repo: r}
}

// Create validates and persists a new activity.
func (s *ActivityService) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	if err := validateActivity(a); err != nil {
		return domain.Activity{}, err
	}
	result, err := s.repo.Create(ctx, a)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single activity by ID.
func (s *ActivityService) GetByID(ctx context.Context, id uuid.UUID) (domain.Activity, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all activities, inactive included, for the admin screen.
func (s *ActivityService) List(ctx context.Context) ([]domain.Activity, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.List: %w", err)
	}
	if out == nil {
		return []domain.Activity{}, nil
	}
	return out, nil
}

// ListActive returns the active activities the public site offers.
func (s *ActivityService) ListActive(ctx context.Context) ([]domain.Activity, error) {
	out, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListActive: %w", err)
	}
	if out == nil {
		return []domain.Activity{}, nil
	}
	return out, nil
}

// Update validates and updates an existing activity.
func (s *ActivityService) Update(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	if err := validateActivity(a); err != nil {
		return domain.Activity{}, err
	}
	result, err := s.repo.Update(ctx, a)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}
	return result, nil
}

// Delete removes an activity by ID.
func (s *ActivityService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ActivityService.Delete: %w", err)
	}
	return nil
}

// validateActivity enforces business rules common to Create and Update.
func validateActivity(a domain.Activity) error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if a.PricePerPerson < 0 {
		return fmt.Errorf("%w: price per person must not be negative", domain.ErrValidation)
	}
	return nil
}

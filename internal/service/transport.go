package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/safariswap/backend/internal/domain"
	"github.com/safariswap/backend/internal/repo"
)

// TransportService implements the admin business logic for transport options.
type TransportService struct {
	repo repo.TransportOptionRepo
}

// NewTransportService constructs a TransportService backed by the provided
// TransportOptionRepo.
func NewTransportService(r repo.TransportOptionRepo) *TransportService {
	return &TransportService{repo: r}
}

// Create validates and persists a new transport option. An empty slug is
// derived from the name.
func (s *TransportService) Create(ctx context.Context, t domain.TransportOption) (domain.TransportOption, error) {
	if err := validateTransportOption(&t); err != nil {
		return domain.TransportOption{}, err
	}
	result, err := s.repo.Create(ctx, t)
	if err != nil {
		return domain.TransportOption{}, fmt.Errorf("service.TransportService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single transport option by ID.
func (s *TransportService) GetByID(ctx context.Context, id uuid.UUID) (domain.TransportOption, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.TransportOption{}, fmt.Errorf("service.TransportService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all transport options, inactive included.
func (s *TransportService) List(ctx context.Context) ([]domain.TransportOption, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TransportService.List: %w", err)
	}
	if out == nil {
		return []domain.TransportOption{}, nil
	}
	return out, nil
}

// ListActive returns the active transport options the wizard offers.
func (s *TransportService) ListActive(ctx context.Context) ([]domain.TransportOption, error) {
	out, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TransportService.ListActive: %w", err)
	}
	if out == nil {
		return []domain.TransportOption{}, nil
	}
	return out, nil
}

// Update validates and updates an existing transport option.
func (s *TransportService) Update(ctx context.Context, t domain.TransportOption) (domain.TransportOption, error) {
	if err := validateTransportOption(&t); err != nil {
		return domain.TransportOption{}, err
	}
	result, err := s.repo.Update(ctx, t)
	if err != nil {
		return domain.TransportOption{}, fmt.Errorf("service.TransportService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a transport option by ID.
func (s *TransportService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TransportService.Delete: %w", err)
	}
	return nil
}

// validateTransportOption enforces business rules common to Create and Update.
func validateTransportOption(t *domain.TransportOption) error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if t.Slug == "" {
		t.Slug = Slugify(t.Name)
	}
	if !validSlug(t.Slug) {
		return fmt.Errorf("%w: slug must contain only lowercase letters, digits, and hyphens", domain.ErrValidation)
	}
	if t.Slug == domain.SelectionNone {
		return fmt.Errorf("%w: %q is reserved", domain.ErrValidation, domain.SelectionNone)
	}
	if t.PricePerPerson < 0 {
		return fmt.Errorf("%w: price per person must not be negative", domain.ErrValidation)
	}
	return nil
}

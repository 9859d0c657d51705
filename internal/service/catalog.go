// Package service contains the business logic for the SafariSwap API.
// Services validate inputs, enforce business rules, and orchestrate repo
// calls. No SQL lives here — services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/safariswap/backend/internal/domain"
	"github.com/safariswap/backend/internal/repo"
)

// DefaultCatalogTimeout bounds a catalog load when the caller does not
// configure one. The reference has no explicit timeout, only error reporting
// on rejection, so this stays generous.
const DefaultCatalogTimeout = 15 * time.Second

// CatalogService is the read-only adapter between the wizard and the record
// store. It assembles the immutable catalog snapshot the wizard works from
// and serves the destination-scoped hotel lookups.
type CatalogService struct {
	destinations   repo.DestinationRepo
	activities     repo.ActivityRepo
	accommodations repo.AccommodationTypeRepo
	transports     repo.TransportOptionRepo
	hotels         repo.HotelRepo
	timeout        time.Duration
}

// NewCatalogService constructs a CatalogService backed by the provided repos.
// timeout bounds each load; pass 0 for DefaultCatalogTimeout.
func NewCatalogService(
	destinations repo.DestinationRepo,
	activities repo.ActivityRepo,
	accommodations repo.AccommodationTypeRepo,
	transports repo.TransportOptionRepo,
	hotels repo.HotelRepo,
	timeout time.Duration,
) *CatalogService {
	if timeout <= 0 {
		timeout = DefaultCatalogTimeout
	}
	return &CatalogService{
		destinations:   destinations,
		activities:     activities,
		accommodations: accommodations,
		transports:     transports,
		hotels:         hotels,
		timeout:        timeout,
	}
}

// LoadCatalogs fetches the four option catalogs in parallel and returns them
// as one snapshot. Activities, accommodation types, and transport options are
// filtered to active rows at the store; destinations carry no active flag and
// come back whole.
//
// The load is all-or-nothing: if any fetch fails the whole snapshot is
// discarded and the error wraps domain.ErrCatalogLoad, so the wizard never
// operates on an inconsistent catalog.
func (s *CatalogService) LoadCatalogs(ctx context.Context) (domain.Catalog, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var cat domain.Catalog
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		cat.Destinations, err = s.destinations.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		cat.Activities, err = s.activities.ListActive(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		cat.AccommodationTypes, err = s.accommodations.ListActive(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		cat.TransportOptions, err = s.transports.ListActive(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return domain.Catalog{}, fmt.Errorf("service.CatalogService.LoadCatalogs: %w: %w", domain.ErrCatalogLoad, err)
	}

	// Non-nil slices so consumers can range and serialize without nil checks.
	if cat.Destinations == nil {
		cat.Destinations = []domain.Destination{}
	}
	if cat.Activities == nil {
		cat.Activities = []domain.Activity{}
	}
	if cat.AccommodationTypes == nil {
		cat.AccommodationTypes = []domain.AccommodationType{}
	}
	if cat.TransportOptions == nil {
		cat.TransportOptions = []domain.TransportOption{}
	}
	return cat, nil
}

// HotelsForType returns the active hotels for an accommodation type, best
// rated first, unrated last. An empty list is a valid answer, not an error.
func (s *CatalogService) HotelsForType(ctx context.Context, accommodationTypeID uuid.UUID) ([]domain.Hotel, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	hotels, err := s.hotels.ListActiveByType(ctx, accommodationTypeID)
	if err != nil {
		return nil, fmt.Errorf("service.CatalogService.HotelsForType: %w", err)
	}
	if hotels == nil {
		hotels = []domain.Hotel{}
	}
	return hotels, nil
}

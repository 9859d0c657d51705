package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safariswap/backend/internal/domain"
	"github.com/safariswap/backend/internal/service"
)

func TestDestinationService_Create_OK(t *testing.T) {
	input := domain.Destination{Name: "Serengeti", Country: "Tanzania"}
	stored := input
	stored.ID = uuid.New()

	svc := service.NewDestinationService(&mockDestinationRepo{
		create: func(_ context.Context, _ domain.Destination) (domain.Destination, error) {
			return stored, nil
		},
	})

	got, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, stored.ID, got.ID)
}

func TestDestinationService_Create_NameRequired(t *testing.T) {
	svc := service.NewDestinationService(&mockDestinationRepo{})

	_, err := svc.Create(context.Background(), domain.Destination{Country: "Tanzania"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDestinationService_Create_CountryRequired(t *testing.T) {
	svc := service.NewDestinationService(&mockDestinationRepo{})

	_, err := svc.Create(context.Background(), domain.Destination{Name: "Serengeti"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDestinationService_Create_CleansActivityNames(t *testing.T) {
	// The admin form submits a comma-split list; stray whitespace and blank
	// entries are dropped before persisting.
	var captured domain.Destination
	svc := service.NewDestinationService(&mockDestinationRepo{
		create: func(_ context.Context, d domain.Destination) (domain.Destination, error) {
			captured = d
			return d, nil
		},
	})

	_, err := svc.Create(context.Background(), domain.Destination{
		Name:       "Serengeti",
		Country:    "Tanzania",
		Activities: []string{" Game Drives ", "", "  ", "Hot Air Balloon"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Game Drives", "Hot Air Balloon"}, captured.Activities)
}

func TestDestinationService_List_ReturnsEmptySlice(t *testing.T) {
	svc := service.NewDestinationService(&mockDestinationRepo{
		list: func(_ context.Context) ([]domain.Destination, error) {
			return nil, nil
		},
	})

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDestinationService_Delete_NotFound(t *testing.T) {
	svc := service.NewDestinationService(&mockDestinationRepo{
		delete: func(_ context.Context, _ uuid.UUID) error {
			return domain.ErrNotFound
		},
	})

	err := svc.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDestinationService_Update_RepoError(t *testing.T) {
	repoErr := errors.New("db exploded")
	svc := service.NewDestinationService(&mockDestinationRepo{
		update: func(_ context.Context, _ domain.Destination) (domain.Destination, error) {
			return domain.Destination{}, repoErr
		},
	})

	_, err := svc.Update(context.Background(), domain.Destination{
		ID: uuid.New(), Name: "Serengeti", Country: "Tanzania",
	})

	assert.ErrorIs(t, err, repoErr)
}

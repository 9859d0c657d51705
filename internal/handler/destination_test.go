package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safariswap/backend/internal/domain"
)

func destinationFixture() domain.Destination {
	return domain.Destination{
		ID:         uuid.New(),
		Name:       "Serengeti",
		Country:    "Tanzania",
		Activities: []string{"Game Drives"},
	}
}

func TestListDestinations_Public(t *testing.T) {
	h := newTestRouter(testDeps{
		destinations: &mockDestinationServicer{
			list: func(_ context.Context) ([]domain.Destination, error) {
				return []domain.Destination{destinationFixture()}, nil
			},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/destinations", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []domain.Destination
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "Serengeti", got[0].Name)
}

func TestCreateDestination_Returns201(t *testing.T) {
	stored := destinationFixture()
	h := newTestRouter(testDeps{
		destinations: &mockDestinationServicer{
			create: func(_ context.Context, d domain.Destination) (domain.Destination, error) {
				assert.Equal(t, "Serengeti", d.Name)
				return stored, nil
			},
		},
	})

	body := bytes.NewBufferString(`{"name":"Serengeti","country":"Tanzania","activities":["Game Drives"],"is_featured":false}`)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/destinations", body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got domain.Destination
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, stored.ID, got.ID)
}

func TestCreateDestination_ValidationError(t *testing.T) {
	h := newTestRouter(testDeps{
		destinations: &mockDestinationServicer{
			create: func(_ context.Context, _ domain.Destination) (domain.Destination, error) {
				return domain.Destination{}, fmt.Errorf("service.DestinationService.Create: %w: name is required", domain.ErrValidation)
			},
		},
	})

	body := bytes.NewBufferString(`{"name":"","country":"Tanzania","activities":[]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/destinations", body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var got struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "validation_error", got.Error.Code)
	assert.Equal(t, "name is required", got.Error.Message)
}

func TestCreateDestination_MissingBody(t *testing.T) {
	h := newTestRouter(testDeps{destinations: &mockDestinationServicer{}})

	req := httptest.NewRequest(http.MethodPost, "/api/admin/destinations", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGetDestination_NotFound(t *testing.T) {
	h := newTestRouter(testDeps{
		destinations: &mockDestinationServicer{
			getByID: func(_ context.Context, _ uuid.UUID) (domain.Destination, error) {
				return domain.Destination{}, domain.ErrNotFound
			},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/destinations/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetDestination_BadUUID(t *testing.T) {
	h := newTestRouter(testDeps{destinations: &mockDestinationServicer{}})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/destinations/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestDeleteDestination_Returns204(t *testing.T) {
	h := newTestRouter(testDeps{
		destinations: &mockDestinationServicer{
			delete: func(_ context.Context, _ uuid.UUID) error { return nil },
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/destinations/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestAdminSurface_GuardApplies(t *testing.T) {
	// The guard wraps admin routes but not the public reads.
	deny := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
	}
	h := newTestRouter(testDeps{
		destinations: &mockDestinationServicer{
			list: func(_ context.Context) ([]domain.Destination, error) {
				return []domain.Destination{}, nil
			},
		},
		guard: deny,
	})

	admin := httptest.NewRequest(http.MethodGet, "/api/admin/destinations", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, admin)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	public := httptest.NewRequest(http.MethodGet, "/api/destinations", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, public)
	assert.Equal(t, http.StatusOK, rec.Code)
}

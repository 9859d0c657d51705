package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safariswap/backend/internal/domain"
	"github.com/safariswap/backend/internal/handler"
)

func TestListHotels_PagedEnvelope(t *testing.T) {
	var captured domain.PaginationParams
	h := newTestRouter(testDeps{
		hotels: &mockHotelServicer{
			listPaged: func(_ context.Context, p domain.PaginationParams) ([]domain.Hotel, int64, error) {
				captured = p
				return []domain.Hotel{{ID: uuid.New(), Name: "Mara River Lodge"}}, 41, nil
			},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/hotels?page=3&limit=10", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, captured.Page)
	assert.Equal(t, 10, captured.Limit)

	var got handler.HotelListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got.Data, 1)
	assert.Equal(t, 3, got.Pagination.Page)
	assert.Equal(t, 41, got.Pagination.Total)
}

func TestListHotels_DefaultsApply(t *testing.T) {
	var captured domain.PaginationParams
	h := newTestRouter(testDeps{
		hotels: &mockHotelServicer{
			listPaged: func(_ context.Context, p domain.PaginationParams) ([]domain.Hotel, int64, error) {
				captured = p
				return []domain.Hotel{}, 0, nil
			},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/hotels?limit=oops", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, captured.Page)
	assert.Equal(t, 20, captured.Limit)
}

func TestListHotelsByType_Public(t *testing.T) {
	typeID := uuid.New()
	h := newTestRouter(testDeps{
		hotels: &mockHotelServicer{
			listActiveByType: func(_ context.Context, id uuid.UUID) ([]domain.Hotel, error) {
				assert.Equal(t, typeID, id)
				return []domain.Hotel{{ID: uuid.New(), AccommodationTypeID: id, IsActive: true}}, nil
			},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/accommodation-types/"+typeID.String()+"/hotels", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []domain.Hotel
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 1)
}

package handler

import (
	"net/http"
	"strconv"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/safariswap/backend/internal/domain"
)

// HotelRequest is the write DTO for hotels.
type HotelRequest struct {
	Name                string              `json:"name"`
	AccommodationTypeID openapi_types.UUID  `json:"accommodation_type_id"`
	DestinationID       *openapi_types.UUID `json:"destination_id,omitempty"`
	Description         string              `json:"description,omitempty"`
	ImageURL            string              `json:"image_url,omitempty"`
	Rating              *float64            `json:"rating,omitempty"`
	Amenities           []string            `json:"amenities,omitempty"`
	PricePerNight       float64             `json:"price_per_night"`
	Location            string              `json:"location,omitempty"`
	ContactEmail        string              `json:"contact_email,omitempty"`
	ContactPhone        string              `json:"contact_phone,omitempty"`
	IsActive            bool                `json:"is_active"`
}

func (req HotelRequest) toDomain() domain.Hotel {
	return domain.Hotel{
		Name:                req.Name,
		AccommodationTypeID: req.AccommodationTypeID,
		DestinationID:       req.DestinationID,
		Description:         req.Description,
		ImageURL:            req.ImageURL,
		Rating:              req.Rating,
		Amenities:           req.Amenities,
		PricePerNight:       req.PricePerNight,
		Location:            req.Location,
		ContactEmail:        req.ContactEmail,
		ContactPhone:        req.ContactPhone,
		IsActive:            req.IsActive,
	}
}

// HotelListResponse is the paged envelope for the admin hotel list.
type HotelListResponse struct {
	Data       []domain.Hotel `json:"data"`
	Pagination Pagination     `json:"pagination"`
}

// Pagination echoes the effective paging values plus the total row count.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// listHotels handles GET /api/admin/hotels.
// Supports ?page= and ?limit= (defaults: page=1, limit=20, max=100) — the
// hotel catalog is the only one large enough to page.
func (s *Server) listHotels(w http.ResponseWriter, r *http.Request) {
	params := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))
	hotels, total, err := s.hotels.ListPaged(r.Context(), params)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, HotelListResponse{
		Data: hotels,
		Pagination: Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	})
}

// createHotel handles POST /api/admin/hotels.
func (s *Server) createHotel(w http.ResponseWriter, r *http.Request) {
	var req HotelRequest
	if err := decodeJSON(r, &req); err != nil {
		respondRequestError(w, err.Error())
		return
	}
	created, err := s.hotels.Create(r.Context(), req.toDomain())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// getHotel handles GET /api/admin/hotels/{id}.
func (s *Server) getHotel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondRequestError(w, "hotel id must be a valid UUID")
		return
	}
	out, err := s.hotels.GetByID(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// updateHotel handles PUT /api/admin/hotels/{id}.
func (s *Server) updateHotel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondRequestError(w, "hotel id must be a valid UUID")
		return
	}
	var req HotelRequest
	if err := decodeJSON(r, &req); err != nil {
		respondRequestError(w, err.Error())
		return
	}
	h := req.toDomain()
	h.ID = id
	updated, err := s.hotels.Update(r.Context(), h)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// deleteHotel handles DELETE /api/admin/hotels/{id}.
func (s *Server) deleteHotel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondRequestError(w, "hotel id must be a valid UUID")
		return
	}
	if err := s.hotels.Delete(r.Context(), id); err != nil {
		s.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// queryInt parses an optional integer query parameter; unparseable values
// count as absent.
func queryInt(r *http.Request, key string) *int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

package handler

import (
	"net/http"

	"github.com/safariswap/backend/internal/domain"
)

// AccommodationTypeRequest is the write DTO for accommodation types. An
// empty slug is derived from the name by the service.
type AccommodationTypeRequest struct {
	Name          string   `json:"name"`
	Slug          string   `json:"slug,omitempty"`
	Description   string   `json:"description,omitempty"`
	PricePerNight float64  `json:"price_per_night"`
	Amenities     []string `json:"amenities,omitempty"`
	IsActive      bool     `json:"is_active"`
}

func (req AccommodationTypeRequest) toDomain() domain.AccommodationType {
	return domain.AccommodationType{
		Name:          req.Name,
		Slug:          req.Slug,
		Description:   req.Description,
		PricePerNight: req.PricePerNight,
		Amenities:     req.Amenities,
		IsActive:      req.IsActive,
	}
}

// listAccommodationTypes handles GET /api/admin/accommodation-types.
func (s *Server) listAccommodationTypes(w http.ResponseWriter, r *http.Request) {
	out, err := s.accommodations.List(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// createAccommodationType handles POST /api/admin/accommodation-types.
func (s *Server) createAccommodationType(w http.ResponseWriter, r *http.Request) {
	var req AccommodationTypeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondRequestError(w, err.Error())
		return
	}
	created, err := s.accommodations.Create(r.Context(), req.toDomain())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// getAccommodationType handles GET /api/admin/accommodation-types/{id}.
func (s *Server) getAccommodationType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondRequestError(w, "accommodation type id must be a valid UUID")
		return
	}
	out, err := s.accommodations.GetByID(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// updateAccommodationType handles PUT /api/admin/accommodation-types/{id}.
func (s *Server) updateAccommodationType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondRequestError(w, "accommodation type id must be a valid UUID")
		return
	}
	var req AccommodationTypeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondRequestError(w, err.Error())
		return
	}
	a := req.toDomain()
	a.ID = id
	updated, err := s.accommodations.Update(r.Context(), a)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// deleteAccommodationType handles DELETE /api/admin/accommodation-types/{id}.
// Hotels under the type are removed by the database cascade.
func (s *Server) deleteAccommodationType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondRequestError(w, "accommodation type id must be a valid UUID")
		return
	}
	if err := s.accommodations.Delete(r.Context(), id); err != nil {
		s.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

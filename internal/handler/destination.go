package handler

import (
	"net/http"

	"github.com/safariswap/backend/internal/domain"
)

// DestinationRequest is the write DTO for destinations: the mutable fields
// only, matching the admin form.
type DestinationRequest struct {
	Name        string   `json:"name"`
	Country     string   `json:"country"`
	ImageURL    string   `json:"image_url,omitempty"`
	Description string   `json:"description,omitempty"`
	Activities  []string `json:"activities"`
	IsFeatured  bool     `json:"is_featured"`
}

func (req DestinationRequest) toDomain() domain.Destination {
	return domain.Destination{
		Name:        req.Name,
		Country:     req.Country,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		Activities:  req.Activities,
		IsFeatured:  req.IsFeatured,
	}
}

// createDestination handles POST /api/admin/destinations.
func (s *Server) createDestination(w http.ResponseWriter, r *http.Request) {
	var req DestinationRequest
	if err := decodeJSON(r, &req); err != nil {
		respondRequestError(w, err.Error())
		return
	}
	created, err := s.destinations.Create(r.Context(), req.toDomain())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// getDestination handles GET /api/admin/destinations/{id}.
func (s *Server) getDestination(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondRequestError(w, "destination id must be a valid UUID")
		return
	}
	out, err := s.destinations.GetByID(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// updateDestination handles PUT /api/admin/destinations/{id}.
func (s *Server) updateDestination(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondRequestError(w, "destination id must be a valid UUID")
		return
	}
	var req DestinationRequest
	if err := decodeJSON(r, &req); err != nil {
		respondRequestError(w, err.Error())
		return
	}
	d := req.toDomain()
	d.ID = id
	updated, err := s.destinations.Update(r.Context(), d)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// deleteDestination handles DELETE /api/admin/destinations/{id}.
func (s *Server) deleteDestination(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondRequestError(w, "destination id must be a valid UUID")
		return
	}
	if err := s.destinations.Delete(r.Context(), id); err != nil {
		s.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

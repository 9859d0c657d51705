package handler

import (
	"net/http"

	"github.com/safariswap/backend/internal/domain"
)

// ActivityRequest is the write DTO for activities.
type ActivityRequest struct {
	Name           string  `json:"name"`
	Description    string  `json:"description,omitempty"`
	PricePerPerson float64 `json:"price_per_person"`
	Category       string  `json:"category,omitempty"`
	IsActive       bool    `json:"is_active"`
}

func (req ActivityRequest) toDomain() domain.Activity {
	return domain.Activity{
		Name:           req.Name,
		Description:    req.Description,
		PricePerPerson: req.PricePerPerson,
		Category:       req.Category,
		IsActive:       req.IsActive,
	}
}

// listActivities handles GET /api/admin/activities (inactive included).
func (s *Server) listActivities(w http.ResponseWriter, r *http.Request) {
	out, err := s.activities.List(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// createActivity handles POST /api/admin/activities.
func (s *Server) createActivity(w http.ResponseWriter, r *http.Request) {
	var req ActivityRequest
	if err := decodeJSON(r, &req); err != nil {
		respondRequestError(w, err.Error())
		return
	}
	created, err := s.activities.Create(r.Context(), req.toDomain())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// getActivity handles GET /api/admin/activities/{id}.
func (s *Server) getActivity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondRequestError(w, "activity id must be a valid UUID")
		return
	}
	out, err := s.activities.GetByID(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// updateActivity handles PUT /api/admin/activities/{id}.
func (s *Server) updateActivity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondRequestError(w, "activity id must be a valid UUID")
		return
	}
	var req ActivityRequest
	if err := decodeJSON(r, &req); err != nil {
		respondRequestError(w, err.Error())
		return
	}
	a := req.toDomain()
	a.ID = id
	updated, err := s.activities.Update(r.Context(), a)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// deleteActivity handles DELETE /api/admin/activities/{id}.
func (s *Server) deleteActivity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondRequestError(w, "activity id must be a valid UUID")
		return
	}
	if err := s.activities.Delete(r.Context(), id); err != nil {
		s.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

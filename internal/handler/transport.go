package handler

import (
	"net/http"

	"github.com/safariswap/backend/internal/domain"
)

// TransportOptionRequest is the write DTO for transport options. An empty
// slug is derived from the name by the service.
type TransportOptionRequest struct {
	Name           string  `json:"name"`
	Slug           string  `json:"slug,omitempty"`
	Description    string  `json:"description,omitempty"`
	PricePerPerson float64 `json:"price_per_person"`
	VehicleType    string  `json:"vehicle_type,omitempty"`
	IsActive       bool    `json:"is_active"`
}

func (req TransportOptionRequest) toDomain() domain.TransportOption {
	return domain.TransportOption{
		Name:           req.Name,
		Slug:           req.Slug,
		Description:    req.Description,
		PricePerPerson: req.PricePerPerson,
		VehicleType:    req.VehicleType,
		IsActive:       req.IsActive,
	}
}

// listTransportOptions handles GET /api/admin/transport-options.
func (s *Server) listTransportOptions(w http.ResponseWriter, r *http.Request) {
	out, err := s.transports.List(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// createTransportOption handles POST /api/admin/transport-options.
func (s *Server) createTransportOption(w http.ResponseWriter, r *http.Request) {
	var req TransportOptionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondRequestError(w, err.Error())
		return
	}
	created, err := s.transports.Create(r.Context(), req.toDomain())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// getTransportOption handles GET /api/admin/transport-options/{id}.
func (s *Server) getTransportOption(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondRequestError(w, "transport option id must be a valid UUID")
		return
	}
	out, err := s.transports.GetByID(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// updateTransportOption handles PUT /api/admin/transport-options/{id}.
func (s *Server) updateTransportOption(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondRequestError(w, "transport option id must be a valid UUID")
		return
	}
	var req TransportOptionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondRequestError(w, err.Error())
		return
	}
	t := req.toDomain()
	t.ID = id
	updated, err := s.transports.Update(r.Context(), t)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// deleteTransportOption handles DELETE /api/admin/transport-options/{id}.
func (s *Server) deleteTransportOption(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondRequestError(w, "transport option id must be a valid UUID")
		return
	}
	if err := s.transports.Delete(r.Context(), id); err != nil {
		s.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

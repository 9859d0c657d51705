package handler

import "net/http"

// Public catalog reads. These feed the destination cards and the wizard's
// option pickers; they never include inactive rows (destinations carry no
// active flag and come back whole).

// listDestinations handles GET /api/destinations and the admin variant.
func (s *Server) listDestinations(w http.ResponseWriter, r *http.Request) {
	out, err := s.destinations.List(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// listActiveActivities handles GET /api/activities.
func (s *Server) listActiveActivities(w http.ResponseWriter, r *http.Request) {
	out, err := s.activities.ListActive(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// listActiveAccommodationTypes handles GET /api/accommodation-types.
func (s *Server) listActiveAccommodationTypes(w http.ResponseWriter, r *http.Request) {
	out, err := s.accommodations.ListActive(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// listActiveTransportOptions handles GET /api/transport-options.
func (s *Server) listActiveTransportOptions(w http.ResponseWriter, r *http.Request) {
	out, err := s.transports.ListActive(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// listHotelsByType handles GET /api/accommodation-types/{id}/hotels.
// Active hotels only, best rated first, unrated last.
func (s *Server) listHotelsByType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondRequestError(w, "accommodation type id must be a valid UUID")
		return
	}
	out, err := s.hotels.ListActiveByType(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

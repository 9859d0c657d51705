package handler

import (
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/safariswap/backend/internal/domain"
	"github.com/safariswap/backend/internal/service"
)

// --- request DTOs -------------------------------------------------------------

// CreateWizardRequest optionally seeds the new session with a destination,
// the way a destination card's "build a trip" button does.
type CreateWizardRequest struct {
	Destination string `json:"destination,omitempty"`
}

// SelectByNameRequest selects a catalog entry by display name.
type SelectByNameRequest struct {
	Name string `json:"name"`
}

// SelectBySlugRequest selects a catalog entry by slug, or "none" to skip.
type SelectBySlugRequest struct {
	Slug string `json:"slug"`
}

// SetDatesRequest replaces the draft's date range. Dates are wire-formatted
// as YYYY-MM-DD.
type SetDatesRequest struct {
	From openapi_types.Date `json:"from"`
	To   openapi_types.Date `json:"to"`
}

// SetTravelersRequest replaces the draft's traveler count.
type SetTravelersRequest struct {
	Travelers int `json:"travelers"`
}

// SelectHotelRequest picks a hotel from the session's current hotel list.
type SelectHotelRequest struct {
	HotelID openapi_types.UUID `json:"hotel_id"`
}

// --- session plumbing ---------------------------------------------------------

// session resolves the {id} path parameter to a live wizard session,
// writing the error response itself when resolution fails.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*service.Session, bool) {
	id, err := pathID(r)
	if err != nil {
		respondRequestError(w, "session id must be a valid UUID")
		return nil, false
	}
	sess, err := s.wizard.Get(id)
	if err != nil {
		s.respondError(w, r, err)
		return nil, false
	}
	return sess, true
}

// --- handlers -----------------------------------------------------------------

// createWizardSession handles POST /api/wizard. The body is optional; an
// empty body starts an unseeded session.
func (s *Server) createWizardSession(w http.ResponseWriter, r *http.Request) {
	var req CreateWizardRequest
	if err := decodeJSON(r, &req); err != nil && !isEmptyBody(err) {
		respondRequestError(w, err.Error())
		return
	}

	sess, err := s.wizard.Create(r.Context(), req.Destination)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, sess.View())
}

// getWizardSession handles GET /api/wizard/{id}.
func (s *Server) getWizardSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sess.View())
}

// wizardSelectDestination handles POST /api/wizard/{id}/destination.
func (s *Server) wizardSelectDestination(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var req SelectByNameRequest
	if err := decodeJSON(r, &req); err != nil {
		respondRequestError(w, err.Error())
		return
	}
	sess.SelectDestination(req.Name)
	writeJSON(w, http.StatusOK, sess.View())
}

// wizardSetDates handles POST /api/wizard/{id}/dates.
func (s *Server) wizardSetDates(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var req SetDatesRequest
	if err := decodeJSON(r, &req); err != nil {
		respondRequestError(w, err.Error())
		return
	}
	if err := sess.SetDates(domain.DateRange{From: req.From.Time, To: req.To.Time}); err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.View())
}

// wizardSetTravelers handles POST /api/wizard/{id}/travelers.
func (s *Server) wizardSetTravelers(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var req SetTravelersRequest
	if err := decodeJSON(r, &req); err != nil {
		respondRequestError(w, err.Error())
		return
	}
	if err := sess.SetTravelers(req.Travelers); err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.View())
}

// wizardSelectAccommodation handles POST /api/wizard/{id}/accommodation.
// A concrete selection kicks off the asynchronous hotel refresh; the
// response view reports hotels_loading=true until it lands.
func (s *Server) wizardSelectAccommodation(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var req SelectBySlugRequest
	if err := decodeJSON(r, &req); err != nil {
		respondRequestError(w, err.Error())
		return
	}
	if err := sess.SelectAccommodation(r.Context(), req.Slug); err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.View())
}

// wizardSelectHotel handles POST /api/wizard/{id}/hotel.
func (s *Server) wizardSelectHotel(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var req SelectHotelRequest
	if err := decodeJSON(r, &req); err != nil {
		respondRequestError(w, err.Error())
		return
	}
	if err := sess.SelectHotel(req.HotelID); err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.View())
}

// wizardToggleActivity handles POST /api/wizard/{id}/activities/toggle.
// Toggling a name outside the resolved list is a silent no-op, so the
// response is always the refreshed view.
func (s *Server) wizardToggleActivity(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var req SelectByNameRequest
	if err := decodeJSON(r, &req); err != nil {
		respondRequestError(w, err.Error())
		return
	}
	sess.ToggleActivity(req.Name)
	writeJSON(w, http.StatusOK, sess.View())
}

// wizardSelectTransport handles POST /api/wizard/{id}/transport.
func (s *Server) wizardSelectTransport(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var req SelectBySlugRequest
	if err := decodeJSON(r, &req); err != nil {
		respondRequestError(w, err.Error())
		return
	}
	if err := sess.SelectTransport(req.Slug); err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.View())
}

// wizardAdvance handles POST /api/wizard/{id}/advance.
func (s *Server) wizardAdvance(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	if err := sess.Advance(); err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.View())
}

// wizardRetreat handles POST /api/wizard/{id}/retreat.
func (s *Server) wizardRetreat(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	sess.Retreat()
	writeJSON(w, http.StatusOK, sess.View())
}

// wizardEstimate handles GET /api/wizard/{id}/estimate.
func (s *Server) wizardEstimate(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sess.Estimate())
}

// wizardRequestQuote handles POST /api/wizard/{id}/quote.
func (s *Server) wizardRequestQuote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondRequestError(w, "session id must be a valid UUID")
		return
	}
	quote, err := s.wizard.RequestQuote(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

// isEmptyBody reports whether a decode failure was just an absent body.
func isEmptyBody(err error) bool {
	return err != nil && err.Error() == "request body is required"
}

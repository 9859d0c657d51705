package handler

import (
	"net/http"
	"strings"

	"github.com/safariswap/backend/internal/suggest"
)

// getSuggestions handles GET /api/admin/suggestions?name=&country=.
// It returns the generated description, activity list, and stock image URL
// for the admin destination form.
func (s *Server) getSuggestions(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	country := strings.TrimSpace(r.URL.Query().Get("country"))
	if name == "" || country == "" {
		respondRequestError(w, "name and country query parameters are required")
		return
	}
	writeJSON(w, http.StatusOK, suggest.ForDestination(name, country))
}

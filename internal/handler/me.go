package handler

import (
	"net/http"

	"github.com/safariswap/backend/internal/auth"
)

// getMe handles GET /api/auth/me. The route is mounted behind RequireUser,
// so a missing context user means broken wiring, not a client mistake.
func (s *Server) getMe(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{
			Error: ErrorDetail{Code: "unauthorized", Message: "unauthorized"},
		})
		return
	}
	writeJSON(w, http.StatusOK, user)
}

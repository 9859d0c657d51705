package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/safariswap/backend/internal/domain"
)

// ErrorResponse is the JSON error envelope every endpoint shares.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondError maps a service or domain error onto the HTTP surface:
// ErrNotFound → 404, ErrValidation and ErrInvalidInput → 422,
// ErrStepIncomplete → 409, ErrCatalogLoad → 503, anything else → 500.
// Internal errors are logged with their full wrap chain; the client only
// ever sees the generic message.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{
			Error: ErrorDetail{Code: "not_found", Message: unwrapMessage(err)},
		})
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidInput):
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error: ErrorDetail{Code: "validation_error", Message: unwrapMessage(err)},
		})
	case errors.Is(err, domain.ErrStepIncomplete):
		writeJSON(w, http.StatusConflict, ErrorResponse{
			Error: ErrorDetail{Code: "step_incomplete", Message: unwrapMessage(err)},
		})
	case errors.Is(err, domain.ErrCatalogLoad):
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{
			Error: ErrorDetail{Code: "catalog_unavailable", Message: "catalog is temporarily unavailable"},
		})
	default:
		s.log.ErrorContext(r.Context(), "internal error", "method", r.Method, "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: ErrorDetail{Code: "internal", Message: "internal server error"},
		})
	}
}

// respondRequestError rejects a request before it reaches the service layer
// (missing body, malformed JSON, bad UUID in the path).
func respondRequestError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
		Error: ErrorDetail{Code: "validation_error", Message: message},
	})
}

// unwrapMessage extracts the human-readable tail from a wrapped error.
// e.g. "service.DestinationService.Create: validation error: name is required"
// → "name is required". Layer prefixes follow the "pkg.Type.Method: " shape,
// sentinel prefixes the "<description>: " shape.
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for {
		trimmed := false
		for _, prefix := range []string{"service.", "repo.", "auth.", "handler."} {
			if strings.HasPrefix(msg, prefix) {
				if i := strings.Index(msg, ": "); i >= 0 {
					msg = msg[i+2:]
					trimmed = true
				}
			}
		}
		for _, sentinel := range []string{"validation error: ", "invalid input: ", "not found: ", "step incomplete: "} {
			if strings.HasPrefix(msg, sentinel) {
				msg = msg[len(sentinel):]
				trimmed = true
			}
		}
		if !trimmed {
			return msg
		}
	}
}

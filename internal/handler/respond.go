package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// writeJSON serializes v with the given status. Encoding failures are
// ignored: the header is already written, there is nothing useful to do.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON strictly decodes the request body into dst. Unknown fields,
// trailing garbage, and an empty body are all rejected so clients learn
// about malformed requests instead of silently losing data.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is required")
		}
		return errors.New("malformed request body")
	}
	if dec.More() {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/Ralastessh/Industry-service/internal/domain"
)

// maxRequestBody caps inbound JSON payloads at 1 MiB. Scenario descriptions
// and chat messages are short; anything larger is abuse or a mistake.
const maxRequestBody = 1 << 20

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON decodes the request body into dst, rejecting unknown fields
// and oversized payloads with domain.EINVALID.
func decodeJSON(r *http.Request, dst interface{}) error {
	const op = "handler.decode_json"

	dec := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.Invalid(op, "request body is not valid JSON")
	}
	// A second value means trailing garbage after the JSON document.
	if dec.More() {
		return domain.Invalid(op, "request body must contain a single JSON document")
	}
	return nil
}

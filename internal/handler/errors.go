package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"tripmate/internal/domain"
)

// isNotFound reports whether err wraps domain.ErrNotFound.
func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}

// errorDetail is the machine-readable part of every error response.
type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorResponse is the body of every non-2xx response: {error:{code,message}}.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeValidationError responds 400 with a validation_error body.
// Used for missing ids, unparseable ids, and unreadable request bodies.
func writeValidationError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{
		Error: errorDetail{Code: "validation_error", Message: message},
	})
}

// writeNotFound responds 404 with a not_found body.
func writeNotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, errorResponse{
		Error: errorDetail{Code: "not_found", Message: message},
	})
}

// writeServerError responds 500 with a fixed message. The underlying error
// is logged server-side and never echoed to the client.
func writeServerError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, errorResponse{
		Error: errorDetail{Code: "internal_error", Message: "internal server error"},
	})
}

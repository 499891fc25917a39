// Package server provides the HTTP REST API for the copy quality gate.
package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jonathan/copygate/internal/rules"
)

// ErrorResponse is the JSON error body returned by all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrDraftBusy indicates a fix operation is already in flight for the draft.
type ErrDraftBusy struct {
	DraftID string
}

func (e *ErrDraftBusy) Error() string {
	return "fix already in flight for draft: " + e.DraftID
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var unknownType *rules.ErrUnknownContentType
	var busy *ErrDraftBusy
	switch {
	case errors.As(err, &unknownType):
		return http.StatusBadRequest
	case errors.As(err, &busy):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

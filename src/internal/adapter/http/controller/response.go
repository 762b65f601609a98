package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/api-sage/corebank-client/src/internal/commons"
	"github.com/api-sage/corebank-client/src/internal/domain"
)

const maxRequestBodySize = 1 << 16

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// statusFor maps a workflow error onto an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrTransport):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func methodNotAllowed[T any](w http.ResponseWriter, r *http.Request, start time.Time) {
	response := commons.ErrorResponse[T]("method not allowed")
	writeJSON(w, http.StatusMethodNotAllowed, response)
	logResponse(r, http.StatusMethodNotAllowed, response, start)
}

func decodeBody[T any](w http.ResponseWriter, r *http.Request, dst any, start time.Time) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodySize)).Decode(dst); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[T]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return false
	}
	return true
}

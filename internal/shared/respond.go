package shared

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

// Envelope is the standard response body for every endpoint.
// Data is omitted when nil; on statuses >= 400 the message travels in Error.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// JSON writes a success envelope with the given payload.
func JSON(w http.ResponseWriter, status int, data any) {
	write(w, status, Envelope{Success: true, Data: data})
}

// JSONMessage writes a success envelope with payload and a client hint message.
func JSONMessage(w http.ResponseWriter, status int, data any, message string) {
	write(w, status, Envelope{Success: true, Data: data, Message: message})
}

// Fail writes an error envelope with the given status and message.
func Fail(w http.ResponseWriter, status int, message string) {
	write(w, status, Envelope{Success: false, Error: message})
}

// RespondError maps a service error onto the envelope. Errors outside the
// taxonomy are logged and surface as a generic 500.
func RespondError(logger *slog.Logger, w http.ResponseWriter, err error) {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		Fail(w, http.StatusBadRequest, ve.Error())
	case errors.Is(err, ErrNoToken), errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrTokenExpired), errors.Is(err, ErrTokenUserGone),
		errors.Is(err, ErrInvalidCredentials):
		Fail(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrEmailTaken):
		Fail(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrNotFound):
		Fail(w, http.StatusNotFound, err.Error())
	default:
		if logger != nil {
			logger.Error("internal error", slog.Any("error", err))
		}
		Fail(w, http.StatusInternalServerError, "something went wrong")
	}
}

func write(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

package app

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sgaunet/pagewindow/pkg/window"
)

// Error codes for API error responses.
const (
	ErrCodeBadRequest           = "bad_request"
	ErrCodeInvalidConfiguration = "invalid_configuration"
	ErrCodeUnknownStrategy      = "unknown_strategy"
)

// APIError is the error object in the API response envelope.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIResponse is the envelope for all API responses.
// On success: Data is set, Error is nil. On error: Data is nil, Error is set.
type APIResponse struct {
	Data  any       `json:"data"`
	Error *APIError `json:"error"`
}

func writeJSON(w http.ResponseWriter, statusCode int, body APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteJSONSuccess writes data in the success envelope.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, data any) {
	writeJSON(w, statusCode, APIResponse{Data: data})
}

// WriteJSONError writes the error envelope.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	writeJSON(w, statusCode, APIResponse{Error: &APIError{Code: code, Message: message}})
}

// errorCode maps a request error to its API error code.
func errorCode(err error) string {
	switch {
	case errors.Is(err, window.ErrUnknownStrategy):
		return ErrCodeUnknownStrategy
	case errors.Is(err, window.ErrInvalidConfiguration):
		return ErrCodeInvalidConfiguration
	default:
		return ErrCodeBadRequest
	}
}

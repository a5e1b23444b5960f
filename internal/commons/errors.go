package commons

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is the single normalized failure shape for backend calls. Every
// transport, 4xx, 5xx, and decode failure is folded into this type at the
// client boundary so callers never see library-specific error values.
type APIError struct {
	Status  int
	Message string
}

// Error renders the status and message.
func (e APIError) Error() string {
	message := strings.TrimSpace(e.Message)
	if message == "" {
		message = http.StatusText(e.Status)
	}
	if message == "" {
		message = "request failed"
	}
	return fmt.Sprintf("api: %d %s", e.Status, message)
}

// StatusOf returns the HTTP status carried by err, or 0 when err is not an
// APIError.
func StatusOf(err error) int {
	var apiErr APIError
	if !stderrors.As(err, &apiErr) {
		return 0
	}
	return apiErr.Status
}

// IsUnauthorized reports whether err is a 401 APIError.
func IsUnauthorized(err error) bool {
	return StatusOf(err) == http.StatusUnauthorized
}

// IsNotFound reports whether err is a 404 APIError.
func IsNotFound(err error) bool {
	return StatusOf(err) == http.StatusNotFound
}

// errorBody mirrors the backend's error payload variants. FastAPI-style
// backends use "detail"; some handlers use "message".
type errorBody struct {
	Detail  json.RawMessage `json:"detail"`
	Message string          `json:"message"`
}

// normalizeError folds a non-2xx response body into an APIError.
func normalizeError(status int, body []byte) APIError {
	apiErr := APIError{Status: status}
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		if message := strings.TrimSpace(parsed.Message); message != "" {
			apiErr.Message = message
			return apiErr
		}
		if len(parsed.Detail) > 0 {
			var detail string
			if err := json.Unmarshal(parsed.Detail, &detail); err == nil {
				apiErr.Message = strings.TrimSpace(detail)
				return apiErr
			}
			// Validation errors arrive as structured arrays; keep the raw
			// text rather than dropping it.
			apiErr.Message = strings.TrimSpace(string(parsed.Detail))
			return apiErr
		}
	}
	apiErr.Message = http.StatusText(status)
	return apiErr
}

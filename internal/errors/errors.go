// Package errors provides custom error types for the chatkit reply client.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrNoEndpoint      = errors.New("no endpoint configured")
	ErrInvalidResponse = errors.New("invalid response format")
)

// APIError represents a reply endpoint request failure
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("API error [%d] at %s: %s", e.StatusCode, e.Endpoint, e.Message)
	}
	return fmt.Sprintf("API error at %s: %s", e.Endpoint, e.Message)
}

// Is allows comparison with other APIErrors regardless of fields
func (e *APIError) Is(target error) bool {
	_, ok := target.(*APIError)
	return ok
}

// NewAPIError creates a new APIError
func NewAPIError(statusCode int, endpoint, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Endpoint:   endpoint,
		Message:    message,
	}
}

// DecodeError represents a response body that could not be decoded
type DecodeError struct {
	Endpoint string
	Cause    error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to decode response from %s: %v", e.Endpoint, e.Cause)
	}
	return fmt.Sprintf("failed to decode response from %s", e.Endpoint)
}

// Is allows comparison with the ErrInvalidResponse sentinel
func (e *DecodeError) Is(target error) bool {
	if target == ErrInvalidResponse {
		return true
	}
	_, ok := target.(*DecodeError)
	return ok
}

// Unwrap returns the underlying cause
func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// NewDecodeError creates a new DecodeError
func NewDecodeError(endpoint string, cause error) *DecodeError {
	return &DecodeError{Endpoint: endpoint, Cause: cause}
}

// GetHTTPStatus extracts the HTTP status code from an error chain.
// Returns 0 if no status is attached.
func GetHTTPStatus(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

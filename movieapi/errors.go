package movieapi

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid recommender API configuration")
	// ErrEmptyResult indicates the API was reachable but returned no usable data
	ErrEmptyResult = errors.New("empty response from recommender API")
)

// APIError represents an upstream API error response
type APIError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("recommender API error: HTTP %d: %s", e.StatusCode, e.Body)
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsServerError checks if the error indicates an upstream server failure
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500
}

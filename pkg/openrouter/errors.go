package openrouter

import (
	"errors"
	"fmt"
)

// ErrNoChoices is returned when a successful response carries no choices.
var ErrNoChoices = errors.New("openrouter: response has no choices")

// APIError is a non-200 answer from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("openrouter: API error %d: %s", e.StatusCode, e.Message)
}

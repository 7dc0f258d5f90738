package qwen

import (
	"errors"
	"fmt"
)

// ErrNoChoices is returned when the API answers without any choice.
var ErrNoChoices = errors.New("qwen: response has no choices")

// APIError is a non-2xx answer from the chat completions endpoint.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("qwen: API error %d: %s", e.StatusCode, e.Body)
}

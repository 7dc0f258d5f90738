package gemini

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCandidates is returned when the API answers without any candidate.
	ErrNoCandidates = errors.New("gemini: response has no candidates")

	// ErrPromptBlocked is returned when the prompt was rejected by safety filters.
	ErrPromptBlocked = errors.New("gemini: prompt blocked")
)

// APIError is a non-2xx answer from the Generative Language API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini: API error %d: %s", e.StatusCode, e.Body)
}

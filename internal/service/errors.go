package service

import (
	"errors"
	"fmt"
)

// Failure modes of the generation gateway. Handlers map these onto distinct
// HTTP statuses so clients can tell "try again later" from a hard failure.
var (
	// ErrNotConfigured is returned before any network call when the AI
	// gateway credential is missing.
	ErrNotConfigured = errors.New("llm api key is not configured")

	// ErrRateLimited passes through a 429 from the AI gateway.
	ErrRateLimited = errors.New("upstream rate limited")

	// ErrQuotaExceeded passes through a 402 from the AI gateway.
	ErrQuotaExceeded = errors.New("upstream usage limit reached")

	// ErrParseRecipes means the model's reply contained no usable JSON
	// recipe payload. Nothing is persisted in that case.
	ErrParseRecipes = errors.New("failed to parse recipe data")
)

// UpstreamError is any other non-2xx reply from the AI gateway.
type UpstreamError struct {
	Status int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("ai gateway error: %d", e.Status)
}

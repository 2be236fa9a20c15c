package llmprovider

import (
	"errors"
	"fmt"
)

// Sentinels returned by the provider manager. Itinerary generation treats all
// of them as "no model output" and falls back to the skeleton plan.
var (
	ErrAllProvidersFailed    = errors.New("all providers failed")
	ErrNoProvidersConfigured = errors.New("no providers configured")
	ErrInvalidRequest        = errors.New("invalid request")
	ErrProviderTimeout       = errors.New("provider timeout")
	ErrProviderRateLimited   = errors.New("provider rate limited")
	// ErrCircuitOpen means the provider's breaker is rejecting calls.
	ErrCircuitOpen = errors.New("provider circuit open")
)

// ProviderError tags an error with the provider that produced it, so the
// last failure reported after fallback still names its source.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("llm provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

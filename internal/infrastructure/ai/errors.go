package ai

import (
	"errors"
	"fmt"

	"github.com/dc25-uiux/uxai/internal/domain"
)

var (
	// ErrMissingAPIKey is returned before any network call when no credential is set.
	ErrMissingAPIKey = errors.New("missing API key")
	// ErrEmptyResponse is returned when the provider answered without content.
	ErrEmptyResponse = errors.New("empty response")
	// ErrOutsideWhitelist is returned when a provider suggests unknown components.
	ErrOutsideWhitelist = errors.New("components outside whitelist")
)

// ProviderError wraps every failure of a single provider call.
type ProviderError struct {
	Provider domain.Provider
	Op       string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Provider, e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func providerErr(provider domain.Provider, op string, err error) error {
	if err == nil {
		return nil
	}
	return &ProviderError{Provider: provider, Op: op, Err: err}
}

// StatusError reports a non-success HTTP status.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return "unexpected status " + e.Status
}

// Package llm provides the external text-generator collaborator: a provider
// abstraction plus the Gemini implementation used in production.
package llm

import "time"

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// Config holds generator configuration.
type Config struct {
	Provider    Provider
	Model       string
	Temperature float32
	// Timeout bounds a single generate call. A timed-out call surfaces as an
	// error to the caller, which treats it as one consumed repair attempt.
	Timeout time.Duration
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider:    ProviderGemini,
		Model:       "gemini-2.5-flash",
		Temperature: 0.1, // low temperature for consistent repairs
		Timeout:     30 * time.Second,
	}
}

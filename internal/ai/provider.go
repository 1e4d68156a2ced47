// Package ai orchestrates the call to the generative model: prompt
// building, the timeout race around the upstream call, and defensive
// interpretation of whatever text comes back.
package ai

import "context"

// Provider is the interface every model integration implements. Never call
// a concrete provider directly; inject this interface.
type Provider interface {
	// Generate sends one prompt and returns the model's raw text output.
	// Implementations classify upstream failures into the sentinel errors
	// of this package where they can recognize them.
	Generate(ctx context.Context, prompt string) (string, error)
	// Name returns the provider identifier (e.g., "gemini").
	Name() string
}

package problemgen

import "context"

// Generator produces reading problems using an LLM provider.
type Generator interface {
	// Generate produces a single problem for the given input context.
	// Returns a validated Problem or an error.
	// All configured validators are run before returning.
	Generate(ctx context.Context, input GenerateInput) (*Problem, error)
}

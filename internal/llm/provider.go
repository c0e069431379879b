package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single abstraction over the configured model endpoint.
type Provider interface {
	// Generate sends one request to the model and returns its output.
	// When the request carries a Schema, the provider uses its native
	// structured-output mechanism and validates the result; when it does
	// not, Content is the model's raw text, unparsed and untrusted —
	// downstream consumers run it through the jsonrepair cascade.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System sets the model's role and output contract.
	System string

	// Messages is the conversation so far. Diagnosis sends a single user
	// message carrying the whole turn context.
	Messages []Message

	// Schema, when set, requests schema-constrained output. Diagnosis
	// deliberately leaves this nil; problem generation sets it.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0–1.0. Zero means deterministic.
	Temperature float64
}

// Message is a single conversation message.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema describes the JSON structure expected from the model when
// structured output is requested.
type Schema struct {
	// Name identifies the schema, kebab-case (tool name for Anthropic,
	// schema name for OpenAI).
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output. Schema-validated JSON when a
	// Schema was requested, otherwise raw text bytes.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to: "end", "max_tokens", "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

package problemgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jaemin/readcoach/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// problemOutput is the raw LLM response before validation.
type problemOutput struct {
	Title      string `json:"title"`
	Passage    string `json:"passage"`
	Question   string `json:"question"`
	GradeLevel int    `json:"grade_level"`
	Difficulty int    `json:"difficulty"`
}

// Generate produces a single problem for the given input context.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*Problem, error) {
	ctx = llm.WithPurpose(ctx, "problem-gen")

	userMsg := buildUserMessage(input, g.config)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      ProblemSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw problemOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	p := &Problem{
		Title:      raw.Title,
		Passage:    raw.Passage,
		Question:   raw.Question,
		GradeLevel: raw.GradeLevel,
		Difficulty: raw.Difficulty,
		Topic:      input.Topic,
	}

	// Run validators in order.
	for _, v := range g.config.Validators {
		if verr := v.Validate(p, input); verr != nil {
			return nil, verr
		}
	}

	return p, nil
}

package problemgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jaemin/readcoach/internal/llm"
)

func validProblemJSON() json.RawMessage {
	passage := strings.TrimSpace(strings.Repeat(
		"A river carries tiny pieces of rock and soil downstream every day. ", 8))
	payload := map[string]any{
		"title":       "How Rivers Shape Valleys",
		"passage":     passage,
		"question":    "What does the passage say a river carries downstream?",
		"grade_level": 4,
		"difficulty":  3,
	}
	b, _ := json.Marshal(payload)
	return b
}

func TestGenerate_HappyPath(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validProblemJSON(),
	})
	gen := New(mock, DefaultConfig())

	p, err := gen.Generate(context.Background(), GenerateInput{
		Topic:      "rivers",
		GradeLevel: 4,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Title != "How Rivers Shape Valleys" {
		t.Errorf("unexpected title: %q", p.Title)
	}
	if p.GradeLevel != 4 {
		t.Errorf("expected grade 4, got %d", p.GradeLevel)
	}
	if p.Topic != "rivers" {
		t.Errorf("expected topic carried through, got %q", p.Topic)
	}

	// The request must carry the structured-output schema.
	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	if mock.Calls[0].Schema != ProblemSchema {
		t.Error("expected ProblemSchema on the request")
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "Topic: rivers") {
		t.Error("expected topic in the prompt")
	}
}

func TestGenerate_ValidatorRejects(t *testing.T) {
	short := map[string]any{
		"title":       "Too Short",
		"passage":     "Barely anything here.",
		"question":    "What?",
		"grade_level": 4,
		"difficulty":  3,
	}
	b, _ := json.Marshal(short)
	mock := llm.NewMockProvider(llm.MockResponse{Content: b})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{GradeLevel: 4})
	if err == nil {
		t.Fatal("expected validation error")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if verr.Validator != "structural" {
		t.Errorf("expected structural failure, got %q", verr.Validator)
	}
}

func TestGenerate_DuplicateRejected(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validProblemJSON()})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{
		GradeLevel:  4,
		PriorTitles: []string{"How Rivers Shape Valleys"},
	})
	if err == nil {
		t.Fatal("expected dedup error")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if verr.Validator != "dedup" {
		t.Errorf("expected dedup failure, got %q", verr.Validator)
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: fmt.Errorf("down")},
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{GradeLevel: 4})
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T", err)
	}
}

func TestGenerate_MalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`not json at all`),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{GradeLevel: 4})
	if err == nil {
		t.Fatal("expected parse error")
	}
}

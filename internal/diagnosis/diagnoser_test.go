package diagnosis

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/jaemin/readcoach/internal/jsonrepair"
	"github.com/jaemin/readcoach/internal/llm"
)

const goodResponse = `{"diagnosis":{"survey_gist":"medium","question_focus":"high","reading_depth":"medium","recite_articulation":"low","review_accuracy":"medium","confidence_level":"low"},"recommended_stage":"recite","stage_reason":"The student understands but cannot restate it.","next_question":"Explain the main idea in your own words.","feedback_completed":false}`

func turnContext() *TurnContext {
	return &TurnContext{
		ProblemTitle:    "The Honeybee Waggle Dance",
		Passage:         "Honeybees communicate the location of food through a waggle dance...",
		ProblemQuestion: "What information does the waggle dance convey?",
		History: []Exchange{
			{TutorQuestion: "Skim the passage. What is it about?", StudentResponse: "Bees dancing, I think?"},
		},
		StudentResponse: "The dance tells other bees where flowers are.",
	}
}

func TestDiagnoser_HappyPath(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(goodResponse)},
	)
	d := NewDiagnoser(mock, DefaultDiagnoserConfig())

	rec, err := d.Diagnose(context.Background(), turnContext())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.RecommendedStage != StageRecite {
		t.Fatalf("unexpected stage: %s", rec.RecommendedStage)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema != nil {
		t.Fatal("diagnosis must not request structured output")
	}
	if !strings.Contains(req.Messages[0].Content, "waggle dance") {
		t.Fatal("passage missing from prompt")
	}
	if !strings.Contains(req.Messages[0].Content, "Bees dancing, I think?") {
		t.Fatal("history missing from prompt")
	}
}

func TestDiagnoser_FencedResponseRecovered(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("```json\n" + goodResponse + "\n```")},
	)
	d := NewDiagnoser(mock, DefaultDiagnoserConfig())

	rec, err := d.Diagnose(context.Background(), turnContext())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.NextQuestion == "" {
		t.Fatal("empty next_question")
	}
}

func TestDiagnoser_UnstructuredResponseFails(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("I'm sorry, I can't assess that.")},
	)
	d := NewDiagnoser(mock, DefaultDiagnoserConfig())

	_, err := d.Diagnose(context.Background(), turnContext())
	if err == nil {
		t.Fatal("expected error")
	}
	var exhausted *jsonrepair.ErrExhausted
	if !errors.As(err, &exhausted) {
		t.Fatalf("expected recovery exhaustion, got %T: %v", err, err)
	}
}

func TestDiagnoser_SchemaViolationSurfaces(t *testing.T) {
	bad := strings.Replace(goodResponse, `"recommended_stage":"recite"`, `"recommended_stage":"skim"`, 1)
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(bad)},
	)
	d := NewDiagnoser(mock, DefaultDiagnoserConfig())

	_, err := d.Diagnose(context.Background(), turnContext())
	var v *SchemaViolation
	if !errors.As(err, &v) {
		t.Fatalf("expected *SchemaViolation, got %T: %v", err, err)
	}
	if v.Field != "recommended_stage" {
		t.Fatalf("expected recommended_stage violation, got %q", v.Field)
	}
}

func TestDiagnoser_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	d := NewDiagnoser(mock, DefaultDiagnoserConfig())

	_, err := d.Diagnose(context.Background(), turnContext())
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected provider error, got %T: %v", err, err)
	}
}

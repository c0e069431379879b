package diagnosis

import (
	"bytes"
	"context"
	"fmt"
	"text/template"

	"github.com/jaemin/readcoach/internal/jsonrepair"
	"github.com/jaemin/readcoach/internal/llm"
)

// DiagnoserConfig holds configuration for the LLM diagnoser.
type DiagnoserConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultDiagnoserConfig returns sensible defaults.
func DefaultDiagnoserConfig() DiagnoserConfig {
	return DiagnoserConfig{
		MaxTokens:   768,
		Temperature: 0.3,
	}
}

// Diagnoser turns a student's free-text response into a DiagnosticRecord
// via one LLM call. The provider is asked for JSON in the prompt but NOT
// via structured output: the response is treated as unreliable free text
// and run through the jsonrepair cascade before validation. Diagnoser does
// not retry; parse and schema failures surface to the caller, which renders
// an error turn.
type Diagnoser struct {
	provider llm.Provider
	cfg      DiagnoserConfig
}

// NewDiagnoser creates an LLM-backed diagnoser.
func NewDiagnoser(provider llm.Provider, cfg DiagnoserConfig) *Diagnoser {
	return &Diagnoser{provider: provider, cfg: cfg}
}

// Exchange is one completed turn of the chat, used as prompt context.
type Exchange struct {
	TutorQuestion   string
	StudentResponse string
}

// TurnContext carries everything the diagnoser needs for one turn.
type TurnContext struct {
	ProblemTitle    string
	Passage         string
	ProblemQuestion string
	History         []Exchange
	StudentResponse string
}

// Diagnose sends one turn to the model and returns the validated record.
func (d *Diagnoser) Diagnose(ctx context.Context, tc *TurnContext) (*DiagnosticRecord, error) {
	ctx = llm.WithPurpose(ctx, "sq3r-diagnosis")

	userMsg, err := buildTurnMessage(tc)
	if err != nil {
		return nil, fmt.Errorf("build diagnosis prompt: %w", err)
	}

	resp, err := d.provider.Generate(ctx, llm.Request{
		System: diagnosisSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		MaxTokens:   d.cfg.MaxTokens,
		Temperature: d.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM diagnosis failed: %w", err)
	}

	parsed, err := jsonrepair.Recover(string(resp.Content))
	if err != nil {
		return nil, fmt.Errorf("recover diagnosis response: %w", err)
	}

	record, err := ValidateRecord(parsed)
	if err != nil {
		return nil, fmt.Errorf("invalid diagnosis response: %w", err)
	}

	return record, nil
}

const diagnosisSystemPrompt = `You are a reading-comprehension tutor using the SQ3R method (Survey, Question, Read, Recite, Review). A student is working through a reading problem and has just replied in the chat. Assess their response and answer with a single JSON object, nothing else:

{
  "diagnosis": {
    "survey_gist": "low|medium|high",
    "question_focus": "low|medium|high",
    "reading_depth": "low|medium|high",
    "recite_articulation": "low|medium|high",
    "review_accuracy": "low|medium|high",
    "confidence_level": "low|medium|high"
  },
  "recommended_stage": "survey|question|read|recite|review",
  "stage_reason": "one or two sentences explaining the recommendation",
  "next_question": "the next prompt to show the student, in the student's language",
  "feedback_completed": true or false

}

Rules:
- Judge each axis only from evidence in the student's responses so far.
- recommended_stage is the stage the student most needs to practice next.
- feedback_completed is a JSON boolean: true only when the student has demonstrated solid comprehension of this problem.
- next_question must move the student toward the recommended stage.`

var turnTemplate = template.Must(template.New("turn").Parse(`Problem: {{.ProblemTitle}}

Passage:
{{.Passage}}

Question for the student:
{{.ProblemQuestion}}
{{if .History}}
Chat so far:
{{range .History}}[tutor] {{.TutorQuestion}}
[student] {{.StudentResponse}}
{{end}}{{end}}
Latest student response:
{{.StudentResponse}}`))

func buildTurnMessage(tc *TurnContext) (string, error) {
	var buf bytes.Buffer
	if err := turnTemplate.Execute(&buf, tc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

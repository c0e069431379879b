package diagnosis

import "fmt"

// ViolationKind classifies why a field failed validation.
type ViolationKind string

const (
	// ViolationMissing means the field is absent or null.
	ViolationMissing ViolationKind = "missing"

	// ViolationWrongType means the field holds a value of the wrong type.
	ViolationWrongType ViolationKind = "wrong-type"

	// ViolationBadEnum means a string field holds a value outside its
	// allowed set.
	ViolationBadEnum ViolationKind = "bad-enum"
)

// SchemaViolation reports the first field of a parsed value that fails the
// diagnostic schema. Validation is fail-fast: one violation per error, never
// an accumulated list, and never a partially filled record.
type SchemaViolation struct {
	Field  string
	Kind   ViolationKind
	Detail string
}

func (e *SchemaViolation) Error() string {
	return fmt.Sprintf("diagnostic field %q: %s", e.Field, e.Detail)
}

// ValidateRecord checks an untyped parsed value (normally the output of
// jsonrepair.Recover) against the diagnostic schema and builds the typed
// record. Checks run in a fixed order and stop at the first failure.
func ValidateRecord(v any) (*DiagnosticRecord, error) {
	root, ok := v.(map[string]any)
	if !ok || root == nil {
		return nil, &SchemaViolation{
			Field:  "(root)",
			Kind:   ViolationWrongType,
			Detail: "diagnostic response must be a JSON object",
		}
	}

	diagRaw, ok := root["diagnosis"].(map[string]any)
	if !ok || diagRaw == nil {
		return nil, &SchemaViolation{
			Field:  "diagnosis",
			Kind:   ViolationMissing,
			Detail: "missing or non-object diagnosis field",
		}
	}

	levels := make(map[string]Level, len(axisNames))
	for _, axis := range axisNames {
		s, ok := diagRaw[axis].(string)
		if !ok {
			return nil, &SchemaViolation{
				Field:  axis,
				Kind:   ViolationMissing,
				Detail: "axis must be a string level",
			}
		}
		if !ValidLevel(s) {
			return nil, &SchemaViolation{
				Field:  axis,
				Kind:   ViolationBadEnum,
				Detail: fmt.Sprintf("level %q is not one of low/medium/high", s),
			}
		}
		levels[axis] = Level(s)
	}

	stage, ok := root["recommended_stage"].(string)
	if !ok {
		return nil, &SchemaViolation{
			Field:  "recommended_stage",
			Kind:   ViolationMissing,
			Detail: "missing or non-string recommended_stage",
		}
	}
	if !ValidStage(stage) {
		return nil, &SchemaViolation{
			Field:  "recommended_stage",
			Kind:   ViolationBadEnum,
			Detail: fmt.Sprintf("stage %q is not one of survey/question/read/recite/review", stage),
		}
	}

	reason, ok := root["stage_reason"].(string)
	if !ok {
		return nil, &SchemaViolation{
			Field:  "stage_reason",
			Kind:   ViolationMissing,
			Detail: "missing or non-string stage_reason",
		}
	}

	next, ok := root["next_question"].(string)
	if !ok {
		return nil, &SchemaViolation{
			Field:  "next_question",
			Kind:   ViolationMissing,
			Detail: "missing or non-string next_question",
		}
	}

	// Strictly a JSON boolean. A quoted "true"/"false" is rejected even
	// though models sometimes emit it; see DESIGN.md before loosening.
	completed, ok := root["feedback_completed"].(bool)
	if !ok {
		return nil, &SchemaViolation{
			Field:  "feedback_completed",
			Kind:   ViolationWrongType,
			Detail: "feedback_completed must be a JSON boolean, not a string",
		}
	}

	return &DiagnosticRecord{
		Diagnosis: StageLevels{
			SurveyGist:         levels["survey_gist"],
			QuestionFocus:      levels["question_focus"],
			ReadingDepth:       levels["reading_depth"],
			ReciteArticulation: levels["recite_articulation"],
			ReviewAccuracy:     levels["review_accuracy"],
			ConfidenceLevel:    levels["confidence_level"],
		},
		RecommendedStage:  Stage(stage),
		StageReason:       reason,
		NextQuestion:      next,
		FeedbackCompleted: completed,
	}, nil
}

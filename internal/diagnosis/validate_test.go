package diagnosis

import (
	"errors"
	"testing"

	"github.com/jaemin/readcoach/internal/jsonrepair"
)

func validInput() map[string]any {
	return map[string]any{
		"diagnosis": map[string]any{
			"survey_gist":         "high",
			"question_focus":      "medium",
			"reading_depth":       "high",
			"recite_articulation": "medium",
			"review_accuracy":     "low",
			"confidence_level":    "high",
		},
		"recommended_stage":  "review",
		"stage_reason":       "needs to double-check the answer",
		"next_question":      "Re-read the last paragraph. What changed?",
		"feedback_completed": false,
	}
}

func wantViolation(t *testing.T, err error, field string, kind ViolationKind) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error")
	}
	var v *SchemaViolation
	if !errors.As(err, &v) {
		t.Fatalf("expected *SchemaViolation, got %T: %v", err, err)
	}
	if v.Field != field {
		t.Fatalf("expected field %q, got %q", field, v.Field)
	}
	if v.Kind != kind {
		t.Fatalf("expected kind %q, got %q", kind, v.Kind)
	}
}

func TestValidateRecord_Valid(t *testing.T) {
	rec, err := ValidateRecord(validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.RecommendedStage != StageReview {
		t.Fatalf("unexpected stage: %s", rec.RecommendedStage)
	}
	if rec.Diagnosis.ReviewAccuracy != LevelLow {
		t.Fatalf("unexpected review_accuracy: %s", rec.Diagnosis.ReviewAccuracy)
	}
	if rec.FeedbackCompleted {
		t.Fatal("feedback_completed should be false")
	}
}

func TestValidateRecord_NonObjectRoot(t *testing.T) {
	_, err := ValidateRecord("just a string")
	wantViolation(t, err, "(root)", ViolationWrongType)

	_, err = ValidateRecord(nil)
	wantViolation(t, err, "(root)", ViolationWrongType)
}

func TestValidateRecord_MissingDiagnosis(t *testing.T) {
	in := validInput()
	delete(in, "diagnosis")
	_, err := ValidateRecord(in)
	wantViolation(t, err, "diagnosis", ViolationMissing)
}

func TestValidateRecord_BadAxisLevel(t *testing.T) {
	in := validInput()
	in["diagnosis"].(map[string]any)["reading_depth"] = "very high"
	_, err := ValidateRecord(in)
	wantViolation(t, err, "reading_depth", ViolationBadEnum)
}

func TestValidateRecord_MissingAxis(t *testing.T) {
	in := validInput()
	delete(in["diagnosis"].(map[string]any), "confidence_level")
	_, err := ValidateRecord(in)
	wantViolation(t, err, "confidence_level", ViolationMissing)
}

func TestValidateRecord_UnknownStageRejected(t *testing.T) {
	in := validInput()
	in["recommended_stage"] = "unknown"
	_, err := ValidateRecord(in)
	wantViolation(t, err, "recommended_stage", ViolationBadEnum)
}

func TestValidateRecord_StringifiedBooleanRejected(t *testing.T) {
	in := validInput()
	in["feedback_completed"] = "true"
	_, err := ValidateRecord(in)
	wantViolation(t, err, "feedback_completed", ViolationWrongType)
}

func TestValidateRecord_NonStringReason(t *testing.T) {
	in := validInput()
	in["stage_reason"] = 42.0
	_, err := ValidateRecord(in)
	wantViolation(t, err, "stage_reason", ViolationMissing)
}

// The full pipeline: fenced, Korean-language model output through recovery
// and validation.
func TestRecoverThenValidate_FencedKoreanResponse(t *testing.T) {
	raw := "```json\n{\"diagnosis\":{\"survey_gist\":\"high\",\"question_focus\":\"medium\",\"reading_depth\":\"high\",\"recite_articulation\":\"medium\",\"review_accuracy\":\"low\",\"confidence_level\":\"high\"},\"recommended_stage\":\"review\",\"stage_reason\":\"검토 필요\",\"next_question\":\"선택지를 다시 확인해보세요\",\"feedback_completed\":false}\n```"

	parsed, err := jsonrepair.Recover(raw)
	if err != nil {
		t.Fatalf("recover: %v", err)
	}
	rec, err := ValidateRecord(parsed)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if rec.RecommendedStage != StageReview {
		t.Fatalf("expected stage review, got %s", rec.RecommendedStage)
	}
	if rec.FeedbackCompleted {
		t.Fatal("expected feedback_completed false")
	}
	if rec.NextQuestion != "선택지를 다시 확인해보세요" {
		t.Fatalf("unexpected next_question: %q", rec.NextQuestion)
	}
}

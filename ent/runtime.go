// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/jaemin/readcoach/ent/llmrequestevent"
	"github.com/jaemin/readcoach/ent/problem"
	"github.com/jaemin/readcoach/ent/schema"
	"github.com/jaemin/readcoach/ent/sessionevent"
	"github.com/jaemin/readcoach/ent/turnevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	problemFields := schema.Problem{}.Fields()
	_ = problemFields
	// problemDescTitle is the schema descriptor for title field.
	problemDescTitle := problemFields[1].Descriptor()
	// problem.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	problem.TitleValidator = problemDescTitle.Validators[0].(func(string) error)
	// problemDescPassage is the schema descriptor for passage field.
	problemDescPassage := problemFields[2].Descriptor()
	// problem.PassageValidator is a validator for the "passage" field. It is called by the builders before save.
	problem.PassageValidator = problemDescPassage.Validators[0].(func(string) error)
	// problemDescQuestion is the schema descriptor for question field.
	problemDescQuestion := problemFields[3].Descriptor()
	// problem.QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	problem.QuestionValidator = problemDescQuestion.Validators[0].(func(string) error)
	// problemDescGradeLevel is the schema descriptor for grade_level field.
	problemDescGradeLevel := problemFields[4].Descriptor()
	// problem.DefaultGradeLevel holds the default value on creation for the grade_level field.
	problem.DefaultGradeLevel = problemDescGradeLevel.Default.(int)
	// problemDescSource is the schema descriptor for source field.
	problemDescSource := problemFields[5].Descriptor()
	// problem.DefaultSource holds the default value on creation for the source field.
	problem.DefaultSource = problemDescSource.Default.(string)
	// problemDescCreatedAt is the schema descriptor for created_at field.
	problemDescCreatedAt := problemFields[6].Descriptor()
	// problem.DefaultCreatedAt holds the default value on creation for the created_at field.
	problem.DefaultCreatedAt = problemDescCreatedAt.Default.(func() time.Time)
	// problemDescID is the schema descriptor for id field.
	problemDescID := problemFields[0].Descriptor()
	// problem.IDValidator is a validator for the "id" field. It is called by the builders before save.
	problem.IDValidator = problemDescID.Validators[0].(func(string) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescProblemID is the schema descriptor for problem_id field.
	sessioneventDescProblemID := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultProblemID holds the default value on creation for the problem_id field.
	sessionevent.DefaultProblemID = sessioneventDescProblemID.Default.(string)
	// sessioneventDescTurnsTaken is the schema descriptor for turns_taken field.
	sessioneventDescTurnsTaken := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultTurnsTaken holds the default value on creation for the turns_taken field.
	sessionevent.DefaultTurnsTaken = sessioneventDescTurnsTaken.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	// sessioneventDescCompleted is the schema descriptor for completed field.
	sessioneventDescCompleted := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultCompleted holds the default value on creation for the completed field.
	sessionevent.DefaultCompleted = sessioneventDescCompleted.Default.(bool)
	turneventMixin := schema.TurnEvent{}.Mixin()
	turneventMixinFields0 := turneventMixin[0].Fields()
	_ = turneventMixinFields0
	turneventFields := schema.TurnEvent{}.Fields()
	_ = turneventFields
	// turneventDescTimestamp is the schema descriptor for timestamp field.
	turneventDescTimestamp := turneventMixinFields0[1].Descriptor()
	// turnevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	turnevent.DefaultTimestamp = turneventDescTimestamp.Default.(func() time.Time)
	// turneventDescSessionID is the schema descriptor for session_id field.
	turneventDescSessionID := turneventFields[0].Descriptor()
	// turnevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	turnevent.SessionIDValidator = turneventDescSessionID.Validators[0].(func(string) error)
	// turneventDescProblemID is the schema descriptor for problem_id field.
	turneventDescProblemID := turneventFields[1].Descriptor()
	// turnevent.ProblemIDValidator is a validator for the "problem_id" field. It is called by the builders before save.
	turnevent.ProblemIDValidator = turneventDescProblemID.Validators[0].(func(string) error)
	// turneventDescStudentText is the schema descriptor for student_text field.
	turneventDescStudentText := turneventFields[2].Descriptor()
	// turnevent.StudentTextValidator is a validator for the "student_text" field. It is called by the builders before save.
	turnevent.StudentTextValidator = turneventDescStudentText.Validators[0].(func(string) error)
	// turneventDescSurveyGist is the schema descriptor for survey_gist field.
	turneventDescSurveyGist := turneventFields[3].Descriptor()
	// turnevent.SurveyGistValidator is a validator for the "survey_gist" field. It is called by the builders before save.
	turnevent.SurveyGistValidator = turneventDescSurveyGist.Validators[0].(func(string) error)
	// turneventDescQuestionFocus is the schema descriptor for question_focus field.
	turneventDescQuestionFocus := turneventFields[4].Descriptor()
	// turnevent.QuestionFocusValidator is a validator for the "question_focus" field. It is called by the builders before save.
	turnevent.QuestionFocusValidator = turneventDescQuestionFocus.Validators[0].(func(string) error)
	// turneventDescReadingDepth is the schema descriptor for reading_depth field.
	turneventDescReadingDepth := turneventFields[5].Descriptor()
	// turnevent.ReadingDepthValidator is a validator for the "reading_depth" field. It is called by the builders before save.
	turnevent.ReadingDepthValidator = turneventDescReadingDepth.Validators[0].(func(string) error)
	// turneventDescReciteArticulation is the schema descriptor for recite_articulation field.
	turneventDescReciteArticulation := turneventFields[6].Descriptor()
	// turnevent.ReciteArticulationValidator is a validator for the "recite_articulation" field. It is called by the builders before save.
	turnevent.ReciteArticulationValidator = turneventDescReciteArticulation.Validators[0].(func(string) error)
	// turneventDescReviewAccuracy is the schema descriptor for review_accuracy field.
	turneventDescReviewAccuracy := turneventFields[7].Descriptor()
	// turnevent.ReviewAccuracyValidator is a validator for the "review_accuracy" field. It is called by the builders before save.
	turnevent.ReviewAccuracyValidator = turneventDescReviewAccuracy.Validators[0].(func(string) error)
	// turneventDescConfidenceLevel is the schema descriptor for confidence_level field.
	turneventDescConfidenceLevel := turneventFields[8].Descriptor()
	// turnevent.ConfidenceLevelValidator is a validator for the "confidence_level" field. It is called by the builders before save.
	turnevent.ConfidenceLevelValidator = turneventDescConfidenceLevel.Validators[0].(func(string) error)
	// turneventDescRecommendedStage is the schema descriptor for recommended_stage field.
	turneventDescRecommendedStage := turneventFields[9].Descriptor()
	// turnevent.RecommendedStageValidator is a validator for the "recommended_stage" field. It is called by the builders before save.
	turnevent.RecommendedStageValidator = turneventDescRecommendedStage.Validators[0].(func(string) error)
	// turneventDescStageReason is the schema descriptor for stage_reason field.
	turneventDescStageReason := turneventFields[10].Descriptor()
	// turnevent.DefaultStageReason holds the default value on creation for the stage_reason field.
	turnevent.DefaultStageReason = turneventDescStageReason.Default.(string)
	// turneventDescNextQuestion is the schema descriptor for next_question field.
	turneventDescNextQuestion := turneventFields[11].Descriptor()
	// turnevent.DefaultNextQuestion holds the default value on creation for the next_question field.
	turnevent.DefaultNextQuestion = turneventDescNextQuestion.Default.(string)
}

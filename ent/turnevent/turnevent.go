// Code generated by ent, DO NOT EDIT.

package turnevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the turnevent type in the database.
	Label = "turn_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldProblemID holds the string denoting the problem_id field in the database.
	FieldProblemID = "problem_id"
	// FieldStudentText holds the string denoting the student_text field in the database.
	FieldStudentText = "student_text"
	// FieldSurveyGist holds the string denoting the survey_gist field in the database.
	FieldSurveyGist = "survey_gist"
	// FieldQuestionFocus holds the string denoting the question_focus field in the database.
	FieldQuestionFocus = "question_focus"
	// FieldReadingDepth holds the string denoting the reading_depth field in the database.
	FieldReadingDepth = "reading_depth"
	// FieldReciteArticulation holds the string denoting the recite_articulation field in the database.
	FieldReciteArticulation = "recite_articulation"
	// FieldReviewAccuracy holds the string denoting the review_accuracy field in the database.
	FieldReviewAccuracy = "review_accuracy"
	// FieldConfidenceLevel holds the string denoting the confidence_level field in the database.
	FieldConfidenceLevel = "confidence_level"
	// FieldRecommendedStage holds the string denoting the recommended_stage field in the database.
	FieldRecommendedStage = "recommended_stage"
	// FieldStageReason holds the string denoting the stage_reason field in the database.
	FieldStageReason = "stage_reason"
	// FieldNextQuestion holds the string denoting the next_question field in the database.
	FieldNextQuestion = "next_question"
	// FieldFeedbackCompleted holds the string denoting the feedback_completed field in the database.
	FieldFeedbackCompleted = "feedback_completed"
	// Table holds the table name of the turnevent in the database.
	Table = "turn_events"
)

// Columns holds all SQL columns for turnevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldProblemID,
	FieldStudentText,
	FieldSurveyGist,
	FieldQuestionFocus,
	FieldReadingDepth,
	FieldReciteArticulation,
	FieldReviewAccuracy,
	FieldConfidenceLevel,
	FieldRecommendedStage,
	FieldStageReason,
	FieldNextQuestion,
	FieldFeedbackCompleted,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// ProblemIDValidator is a validator for the "problem_id" field. It is called by the builders before save.
	ProblemIDValidator func(string) error
	// StudentTextValidator is a validator for the "student_text" field. It is called by the builders before save.
	StudentTextValidator func(string) error
	// SurveyGistValidator is a validator for the "survey_gist" field. It is called by the builders before save.
	SurveyGistValidator func(string) error
	// QuestionFocusValidator is a validator for the "question_focus" field. It is called by the builders before save.
	QuestionFocusValidator func(string) error
	// ReadingDepthValidator is a validator for the "reading_depth" field. It is called by the builders before save.
	ReadingDepthValidator func(string) error
	// ReciteArticulationValidator is a validator for the "recite_articulation" field. It is called by the builders before save.
	ReciteArticulationValidator func(string) error
	// ReviewAccuracyValidator is a validator for the "review_accuracy" field. It is called by the builders before save.
	ReviewAccuracyValidator func(string) error
	// ConfidenceLevelValidator is a validator for the "confidence_level" field. It is called by the builders before save.
	ConfidenceLevelValidator func(string) error
	// RecommendedStageValidator is a validator for the "recommended_stage" field. It is called by the builders before save.
	RecommendedStageValidator func(string) error
	// DefaultStageReason holds the default value on creation for the "stage_reason" field.
	DefaultStageReason string
	// DefaultNextQuestion holds the default value on creation for the "next_question" field.
	DefaultNextQuestion string
)

// OrderOption defines the ordering options for the TurnEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByProblemID orders the results by the problem_id field.
func ByProblemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProblemID, opts...).ToFunc()
}

// ByStudentText orders the results by the student_text field.
func ByStudentText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentText, opts...).ToFunc()
}

// BySurveyGist orders the results by the survey_gist field.
func BySurveyGist(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSurveyGist, opts...).ToFunc()
}

// ByQuestionFocus orders the results by the question_focus field.
func ByQuestionFocus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionFocus, opts...).ToFunc()
}

// ByReadingDepth orders the results by the reading_depth field.
func ByReadingDepth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReadingDepth, opts...).ToFunc()
}

// ByReciteArticulation orders the results by the recite_articulation field.
func ByReciteArticulation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReciteArticulation, opts...).ToFunc()
}

// ByReviewAccuracy orders the results by the review_accuracy field.
func ByReviewAccuracy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewAccuracy, opts...).ToFunc()
}

// ByConfidenceLevel orders the results by the confidence_level field.
func ByConfidenceLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceLevel, opts...).ToFunc()
}

// ByRecommendedStage orders the results by the recommended_stage field.
func ByRecommendedStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecommendedStage, opts...).ToFunc()
}

// ByStageReason orders the results by the stage_reason field.
func ByStageReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageReason, opts...).ToFunc()
}

// ByNextQuestion orders the results by the next_question field.
func ByNextQuestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextQuestion, opts...).ToFunc()
}

// ByFeedbackCompleted orders the results by the feedback_completed field.
func ByFeedbackCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeedbackCompleted, opts...).ToFunc()
}

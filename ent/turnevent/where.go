// Code generated by ent, DO NOT EDIT.

package turnevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jaemin/readcoach/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldSessionID, v))
}

// ProblemID applies equality check predicate on the "problem_id" field. It's identical to ProblemIDEQ.
func ProblemID(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldProblemID, v))
}

// StudentText applies equality check predicate on the "student_text" field. It's identical to StudentTextEQ.
func StudentText(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldStudentText, v))
}

// SurveyGist applies equality check predicate on the "survey_gist" field. It's identical to SurveyGistEQ.
func SurveyGist(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldSurveyGist, v))
}

// QuestionFocus applies equality check predicate on the "question_focus" field. It's identical to QuestionFocusEQ.
func QuestionFocus(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldQuestionFocus, v))
}

// ReadingDepth applies equality check predicate on the "reading_depth" field. It's identical to ReadingDepthEQ.
func ReadingDepth(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldReadingDepth, v))
}

// ReciteArticulation applies equality check predicate on the "recite_articulation" field. It's identical to ReciteArticulationEQ.
func ReciteArticulation(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldReciteArticulation, v))
}

// ReviewAccuracy applies equality check predicate on the "review_accuracy" field. It's identical to ReviewAccuracyEQ.
func ReviewAccuracy(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldReviewAccuracy, v))
}

// ConfidenceLevel applies equality check predicate on the "confidence_level" field. It's identical to ConfidenceLevelEQ.
func ConfidenceLevel(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldConfidenceLevel, v))
}

// RecommendedStage applies equality check predicate on the "recommended_stage" field. It's identical to RecommendedStageEQ.
func RecommendedStage(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldRecommendedStage, v))
}

// StageReason applies equality check predicate on the "stage_reason" field. It's identical to StageReasonEQ.
func StageReason(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldStageReason, v))
}

// NextQuestion applies equality check predicate on the "next_question" field. It's identical to NextQuestionEQ.
func NextQuestion(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldNextQuestion, v))
}

// FeedbackCompleted applies equality check predicate on the "feedback_completed" field. It's identical to FeedbackCompletedEQ.
func FeedbackCompleted(v bool) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldFeedbackCompleted, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// ProblemIDEQ applies the EQ predicate on the "problem_id" field.
func ProblemIDEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldProblemID, v))
}

// ProblemIDNEQ applies the NEQ predicate on the "problem_id" field.
func ProblemIDNEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldProblemID, v))
}

// ProblemIDIn applies the In predicate on the "problem_id" field.
func ProblemIDIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldProblemID, vs...))
}

// ProblemIDNotIn applies the NotIn predicate on the "problem_id" field.
func ProblemIDNotIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldProblemID, vs...))
}

// ProblemIDGT applies the GT predicate on the "problem_id" field.
func ProblemIDGT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldProblemID, v))
}

// ProblemIDGTE applies the GTE predicate on the "problem_id" field.
func ProblemIDGTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldProblemID, v))
}

// ProblemIDLT applies the LT predicate on the "problem_id" field.
func ProblemIDLT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldProblemID, v))
}

// ProblemIDLTE applies the LTE predicate on the "problem_id" field.
func ProblemIDLTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldProblemID, v))
}

// ProblemIDContains applies the Contains predicate on the "problem_id" field.
func ProblemIDContains(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContains(FieldProblemID, v))
}

// ProblemIDHasPrefix applies the HasPrefix predicate on the "problem_id" field.
func ProblemIDHasPrefix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasPrefix(FieldProblemID, v))
}

// ProblemIDHasSuffix applies the HasSuffix predicate on the "problem_id" field.
func ProblemIDHasSuffix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasSuffix(FieldProblemID, v))
}

// ProblemIDEqualFold applies the EqualFold predicate on the "problem_id" field.
func ProblemIDEqualFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEqualFold(FieldProblemID, v))
}

// ProblemIDContainsFold applies the ContainsFold predicate on the "problem_id" field.
func ProblemIDContainsFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContainsFold(FieldProblemID, v))
}

// StudentTextEQ applies the EQ predicate on the "student_text" field.
func StudentTextEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldStudentText, v))
}

// StudentTextNEQ applies the NEQ predicate on the "student_text" field.
func StudentTextNEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldStudentText, v))
}

// StudentTextIn applies the In predicate on the "student_text" field.
func StudentTextIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldStudentText, vs...))
}

// StudentTextNotIn applies the NotIn predicate on the "student_text" field.
func StudentTextNotIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldStudentText, vs...))
}

// StudentTextGT applies the GT predicate on the "student_text" field.
func StudentTextGT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldStudentText, v))
}

// StudentTextGTE applies the GTE predicate on the "student_text" field.
func StudentTextGTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldStudentText, v))
}

// StudentTextLT applies the LT predicate on the "student_text" field.
func StudentTextLT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldStudentText, v))
}

// StudentTextLTE applies the LTE predicate on the "student_text" field.
func StudentTextLTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldStudentText, v))
}

// StudentTextContains applies the Contains predicate on the "student_text" field.
func StudentTextContains(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContains(FieldStudentText, v))
}

// StudentTextHasPrefix applies the HasPrefix predicate on the "student_text" field.
func StudentTextHasPrefix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasPrefix(FieldStudentText, v))
}

// StudentTextHasSuffix applies the HasSuffix predicate on the "student_text" field.
func StudentTextHasSuffix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasSuffix(FieldStudentText, v))
}

// StudentTextEqualFold applies the EqualFold predicate on the "student_text" field.
func StudentTextEqualFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEqualFold(FieldStudentText, v))
}

// StudentTextContainsFold applies the ContainsFold predicate on the "student_text" field.
func StudentTextContainsFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContainsFold(FieldStudentText, v))
}

// SurveyGistEQ applies the EQ predicate on the "survey_gist" field.
func SurveyGistEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldSurveyGist, v))
}

// SurveyGistNEQ applies the NEQ predicate on the "survey_gist" field.
func SurveyGistNEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldSurveyGist, v))
}

// SurveyGistIn applies the In predicate on the "survey_gist" field.
func SurveyGistIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldSurveyGist, vs...))
}

// SurveyGistNotIn applies the NotIn predicate on the "survey_gist" field.
func SurveyGistNotIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldSurveyGist, vs...))
}

// SurveyGistGT applies the GT predicate on the "survey_gist" field.
func SurveyGistGT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldSurveyGist, v))
}

// SurveyGistGTE applies the GTE predicate on the "survey_gist" field.
func SurveyGistGTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldSurveyGist, v))
}

// SurveyGistLT applies the LT predicate on the "survey_gist" field.
func SurveyGistLT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldSurveyGist, v))
}

// SurveyGistLTE applies the LTE predicate on the "survey_gist" field.
func SurveyGistLTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldSurveyGist, v))
}

// SurveyGistContains applies the Contains predicate on the "survey_gist" field.
func SurveyGistContains(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContains(FieldSurveyGist, v))
}

// SurveyGistHasPrefix applies the HasPrefix predicate on the "survey_gist" field.
func SurveyGistHasPrefix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasPrefix(FieldSurveyGist, v))
}

// SurveyGistHasSuffix applies the HasSuffix predicate on the "survey_gist" field.
func SurveyGistHasSuffix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasSuffix(FieldSurveyGist, v))
}

// SurveyGistEqualFold applies the EqualFold predicate on the "survey_gist" field.
func SurveyGistEqualFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEqualFold(FieldSurveyGist, v))
}

// SurveyGistContainsFold applies the ContainsFold predicate on the "survey_gist" field.
func SurveyGistContainsFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContainsFold(FieldSurveyGist, v))
}

// QuestionFocusEQ applies the EQ predicate on the "question_focus" field.
func QuestionFocusEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldQuestionFocus, v))
}

// QuestionFocusNEQ applies the NEQ predicate on the "question_focus" field.
func QuestionFocusNEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldQuestionFocus, v))
}

// QuestionFocusIn applies the In predicate on the "question_focus" field.
func QuestionFocusIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldQuestionFocus, vs...))
}

// QuestionFocusNotIn applies the NotIn predicate on the "question_focus" field.
func QuestionFocusNotIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldQuestionFocus, vs...))
}

// QuestionFocusGT applies the GT predicate on the "question_focus" field.
func QuestionFocusGT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldQuestionFocus, v))
}

// QuestionFocusGTE applies the GTE predicate on the "question_focus" field.
func QuestionFocusGTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldQuestionFocus, v))
}

// QuestionFocusLT applies the LT predicate on the "question_focus" field.
func QuestionFocusLT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldQuestionFocus, v))
}

// QuestionFocusLTE applies the LTE predicate on the "question_focus" field.
func QuestionFocusLTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldQuestionFocus, v))
}

// QuestionFocusContains applies the Contains predicate on the "question_focus" field.
func QuestionFocusContains(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContains(FieldQuestionFocus, v))
}

// QuestionFocusHasPrefix applies the HasPrefix predicate on the "question_focus" field.
func QuestionFocusHasPrefix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasPrefix(FieldQuestionFocus, v))
}

// QuestionFocusHasSuffix applies the HasSuffix predicate on the "question_focus" field.
func QuestionFocusHasSuffix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasSuffix(FieldQuestionFocus, v))
}

// QuestionFocusEqualFold applies the EqualFold predicate on the "question_focus" field.
func QuestionFocusEqualFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEqualFold(FieldQuestionFocus, v))
}

// QuestionFocusContainsFold applies the ContainsFold predicate on the "question_focus" field.
func QuestionFocusContainsFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContainsFold(FieldQuestionFocus, v))
}

// ReadingDepthEQ applies the EQ predicate on the "reading_depth" field.
func ReadingDepthEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldReadingDepth, v))
}

// ReadingDepthNEQ applies the NEQ predicate on the "reading_depth" field.
func ReadingDepthNEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldReadingDepth, v))
}

// ReadingDepthIn applies the In predicate on the "reading_depth" field.
func ReadingDepthIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldReadingDepth, vs...))
}

// ReadingDepthNotIn applies the NotIn predicate on the "reading_depth" field.
func ReadingDepthNotIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldReadingDepth, vs...))
}

// ReadingDepthGT applies the GT predicate on the "reading_depth" field.
func ReadingDepthGT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldReadingDepth, v))
}

// ReadingDepthGTE applies the GTE predicate on the "reading_depth" field.
func ReadingDepthGTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldReadingDepth, v))
}

// ReadingDepthLT applies the LT predicate on the "reading_depth" field.
func ReadingDepthLT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldReadingDepth, v))
}

// ReadingDepthLTE applies the LTE predicate on the "reading_depth" field.
func ReadingDepthLTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldReadingDepth, v))
}

// ReadingDepthContains applies the Contains predicate on the "reading_depth" field.
func ReadingDepthContains(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContains(FieldReadingDepth, v))
}

// ReadingDepthHasPrefix applies the HasPrefix predicate on the "reading_depth" field.
func ReadingDepthHasPrefix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasPrefix(FieldReadingDepth, v))
}

// ReadingDepthHasSuffix applies the HasSuffix predicate on the "reading_depth" field.
func ReadingDepthHasSuffix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasSuffix(FieldReadingDepth, v))
}

// ReadingDepthEqualFold applies the EqualFold predicate on the "reading_depth" field.
func ReadingDepthEqualFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEqualFold(FieldReadingDepth, v))
}

// ReadingDepthContainsFold applies the ContainsFold predicate on the "reading_depth" field.
func ReadingDepthContainsFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContainsFold(FieldReadingDepth, v))
}

// ReciteArticulationEQ applies the EQ predicate on the "recite_articulation" field.
func ReciteArticulationEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldReciteArticulation, v))
}

// ReciteArticulationNEQ applies the NEQ predicate on the "recite_articulation" field.
func ReciteArticulationNEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldReciteArticulation, v))
}

// ReciteArticulationIn applies the In predicate on the "recite_articulation" field.
func ReciteArticulationIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldReciteArticulation, vs...))
}

// ReciteArticulationNotIn applies the NotIn predicate on the "recite_articulation" field.
func ReciteArticulationNotIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldReciteArticulation, vs...))
}

// ReciteArticulationGT applies the GT predicate on the "recite_articulation" field.
func ReciteArticulationGT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldReciteArticulation, v))
}

// ReciteArticulationGTE applies the GTE predicate on the "recite_articulation" field.
func ReciteArticulationGTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldReciteArticulation, v))
}

// ReciteArticulationLT applies the LT predicate on the "recite_articulation" field.
func ReciteArticulationLT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldReciteArticulation, v))
}

// ReciteArticulationLTE applies the LTE predicate on the "recite_articulation" field.
func ReciteArticulationLTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldReciteArticulation, v))
}

// ReciteArticulationContains applies the Contains predicate on the "recite_articulation" field.
func ReciteArticulationContains(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContains(FieldReciteArticulation, v))
}

// ReciteArticulationHasPrefix applies the HasPrefix predicate on the "recite_articulation" field.
func ReciteArticulationHasPrefix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasPrefix(FieldReciteArticulation, v))
}

// ReciteArticulationHasSuffix applies the HasSuffix predicate on the "recite_articulation" field.
func ReciteArticulationHasSuffix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasSuffix(FieldReciteArticulation, v))
}

// ReciteArticulationEqualFold applies the EqualFold predicate on the "recite_articulation" field.
func ReciteArticulationEqualFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEqualFold(FieldReciteArticulation, v))
}

// ReciteArticulationContainsFold applies the ContainsFold predicate on the "recite_articulation" field.
func ReciteArticulationContainsFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContainsFold(FieldReciteArticulation, v))
}

// ReviewAccuracyEQ applies the EQ predicate on the "review_accuracy" field.
func ReviewAccuracyEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldReviewAccuracy, v))
}

// ReviewAccuracyNEQ applies the NEQ predicate on the "review_accuracy" field.
func ReviewAccuracyNEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldReviewAccuracy, v))
}

// ReviewAccuracyIn applies the In predicate on the "review_accuracy" field.
func ReviewAccuracyIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldReviewAccuracy, vs...))
}

// ReviewAccuracyNotIn applies the NotIn predicate on the "review_accuracy" field.
func ReviewAccuracyNotIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldReviewAccuracy, vs...))
}

// ReviewAccuracyGT applies the GT predicate on the "review_accuracy" field.
func ReviewAccuracyGT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldReviewAccuracy, v))
}

// ReviewAccuracyGTE applies the GTE predicate on the "review_accuracy" field.
func ReviewAccuracyGTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldReviewAccuracy, v))
}

// ReviewAccuracyLT applies the LT predicate on the "review_accuracy" field.
func ReviewAccuracyLT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldReviewAccuracy, v))
}

// ReviewAccuracyLTE applies the LTE predicate on the "review_accuracy" field.
func ReviewAccuracyLTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldReviewAccuracy, v))
}

// ReviewAccuracyContains applies the Contains predicate on the "review_accuracy" field.
func ReviewAccuracyContains(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContains(FieldReviewAccuracy, v))
}

// ReviewAccuracyHasPrefix applies the HasPrefix predicate on the "review_accuracy" field.
func ReviewAccuracyHasPrefix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasPrefix(FieldReviewAccuracy, v))
}

// ReviewAccuracyHasSuffix applies the HasSuffix predicate on the "review_accuracy" field.
func ReviewAccuracyHasSuffix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasSuffix(FieldReviewAccuracy, v))
}

// ReviewAccuracyEqualFold applies the EqualFold predicate on the "review_accuracy" field.
func ReviewAccuracyEqualFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEqualFold(FieldReviewAccuracy, v))
}

// ReviewAccuracyContainsFold applies the ContainsFold predicate on the "review_accuracy" field.
func ReviewAccuracyContainsFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContainsFold(FieldReviewAccuracy, v))
}

// ConfidenceLevelEQ applies the EQ predicate on the "confidence_level" field.
func ConfidenceLevelEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldConfidenceLevel, v))
}

// ConfidenceLevelNEQ applies the NEQ predicate on the "confidence_level" field.
func ConfidenceLevelNEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldConfidenceLevel, v))
}

// ConfidenceLevelIn applies the In predicate on the "confidence_level" field.
func ConfidenceLevelIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldConfidenceLevel, vs...))
}

// ConfidenceLevelNotIn applies the NotIn predicate on the "confidence_level" field.
func ConfidenceLevelNotIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldConfidenceLevel, vs...))
}

// ConfidenceLevelGT applies the GT predicate on the "confidence_level" field.
func ConfidenceLevelGT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldConfidenceLevel, v))
}

// ConfidenceLevelGTE applies the GTE predicate on the "confidence_level" field.
func ConfidenceLevelGTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldConfidenceLevel, v))
}

// ConfidenceLevelLT applies the LT predicate on the "confidence_level" field.
func ConfidenceLevelLT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldConfidenceLevel, v))
}

// ConfidenceLevelLTE applies the LTE predicate on the "confidence_level" field.
func ConfidenceLevelLTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldConfidenceLevel, v))
}

// ConfidenceLevelContains applies the Contains predicate on the "confidence_level" field.
func ConfidenceLevelContains(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContains(FieldConfidenceLevel, v))
}

// ConfidenceLevelHasPrefix applies the HasPrefix predicate on the "confidence_level" field.
func ConfidenceLevelHasPrefix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasPrefix(FieldConfidenceLevel, v))
}

// ConfidenceLevelHasSuffix applies the HasSuffix predicate on the "confidence_level" field.
func ConfidenceLevelHasSuffix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasSuffix(FieldConfidenceLevel, v))
}

// ConfidenceLevelEqualFold applies the EqualFold predicate on the "confidence_level" field.
func ConfidenceLevelEqualFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEqualFold(FieldConfidenceLevel, v))
}

// ConfidenceLevelContainsFold applies the ContainsFold predicate on the "confidence_level" field.
func ConfidenceLevelContainsFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContainsFold(FieldConfidenceLevel, v))
}

// RecommendedStageEQ applies the EQ predicate on the "recommended_stage" field.
func RecommendedStageEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldRecommendedStage, v))
}

// RecommendedStageNEQ applies the NEQ predicate on the "recommended_stage" field.
func RecommendedStageNEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldRecommendedStage, v))
}

// RecommendedStageIn applies the In predicate on the "recommended_stage" field.
func RecommendedStageIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldRecommendedStage, vs...))
}

// RecommendedStageNotIn applies the NotIn predicate on the "recommended_stage" field.
func RecommendedStageNotIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldRecommendedStage, vs...))
}

// RecommendedStageGT applies the GT predicate on the "recommended_stage" field.
func RecommendedStageGT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldRecommendedStage, v))
}

// RecommendedStageGTE applies the GTE predicate on the "recommended_stage" field.
func RecommendedStageGTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldRecommendedStage, v))
}

// RecommendedStageLT applies the LT predicate on the "recommended_stage" field.
func RecommendedStageLT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldRecommendedStage, v))
}

// RecommendedStageLTE applies the LTE predicate on the "recommended_stage" field.
func RecommendedStageLTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldRecommendedStage, v))
}

// RecommendedStageContains applies the Contains predicate on the "recommended_stage" field.
func RecommendedStageContains(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContains(FieldRecommendedStage, v))
}

// RecommendedStageHasPrefix applies the HasPrefix predicate on the "recommended_stage" field.
func RecommendedStageHasPrefix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasPrefix(FieldRecommendedStage, v))
}

// RecommendedStageHasSuffix applies the HasSuffix predicate on the "recommended_stage" field.
func RecommendedStageHasSuffix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasSuffix(FieldRecommendedStage, v))
}

// RecommendedStageEqualFold applies the EqualFold predicate on the "recommended_stage" field.
func RecommendedStageEqualFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEqualFold(FieldRecommendedStage, v))
}

// RecommendedStageContainsFold applies the ContainsFold predicate on the "recommended_stage" field.
func RecommendedStageContainsFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContainsFold(FieldRecommendedStage, v))
}

// StageReasonEQ applies the EQ predicate on the "stage_reason" field.
func StageReasonEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldStageReason, v))
}

// StageReasonNEQ applies the NEQ predicate on the "stage_reason" field.
func StageReasonNEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldStageReason, v))
}

// StageReasonIn applies the In predicate on the "stage_reason" field.
func StageReasonIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldStageReason, vs...))
}

// StageReasonNotIn applies the NotIn predicate on the "stage_reason" field.
func StageReasonNotIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldStageReason, vs...))
}

// StageReasonGT applies the GT predicate on the "stage_reason" field.
func StageReasonGT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldStageReason, v))
}

// StageReasonGTE applies the GTE predicate on the "stage_reason" field.
func StageReasonGTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldStageReason, v))
}

// StageReasonLT applies the LT predicate on the "stage_reason" field.
func StageReasonLT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldStageReason, v))
}

// StageReasonLTE applies the LTE predicate on the "stage_reason" field.
func StageReasonLTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldStageReason, v))
}

// StageReasonContains applies the Contains predicate on the "stage_reason" field.
func StageReasonContains(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContains(FieldStageReason, v))
}

// StageReasonHasPrefix applies the HasPrefix predicate on the "stage_reason" field.
func StageReasonHasPrefix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasPrefix(FieldStageReason, v))
}

// StageReasonHasSuffix applies the HasSuffix predicate on the "stage_reason" field.
func StageReasonHasSuffix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasSuffix(FieldStageReason, v))
}

// StageReasonEqualFold applies the EqualFold predicate on the "stage_reason" field.
func StageReasonEqualFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEqualFold(FieldStageReason, v))
}

// StageReasonContainsFold applies the ContainsFold predicate on the "stage_reason" field.
func StageReasonContainsFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContainsFold(FieldStageReason, v))
}

// NextQuestionEQ applies the EQ predicate on the "next_question" field.
func NextQuestionEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldNextQuestion, v))
}

// NextQuestionNEQ applies the NEQ predicate on the "next_question" field.
func NextQuestionNEQ(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldNextQuestion, v))
}

// NextQuestionIn applies the In predicate on the "next_question" field.
func NextQuestionIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldIn(FieldNextQuestion, vs...))
}

// NextQuestionNotIn applies the NotIn predicate on the "next_question" field.
func NextQuestionNotIn(vs ...string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNotIn(FieldNextQuestion, vs...))
}

// NextQuestionGT applies the GT predicate on the "next_question" field.
func NextQuestionGT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGT(FieldNextQuestion, v))
}

// NextQuestionGTE applies the GTE predicate on the "next_question" field.
func NextQuestionGTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldGTE(FieldNextQuestion, v))
}

// NextQuestionLT applies the LT predicate on the "next_question" field.
func NextQuestionLT(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLT(FieldNextQuestion, v))
}

// NextQuestionLTE applies the LTE predicate on the "next_question" field.
func NextQuestionLTE(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldLTE(FieldNextQuestion, v))
}

// NextQuestionContains applies the Contains predicate on the "next_question" field.
func NextQuestionContains(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContains(FieldNextQuestion, v))
}

// NextQuestionHasPrefix applies the HasPrefix predicate on the "next_question" field.
func NextQuestionHasPrefix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasPrefix(FieldNextQuestion, v))
}

// NextQuestionHasSuffix applies the HasSuffix predicate on the "next_question" field.
func NextQuestionHasSuffix(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldHasSuffix(FieldNextQuestion, v))
}

// NextQuestionEqualFold applies the EqualFold predicate on the "next_question" field.
func NextQuestionEqualFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEqualFold(FieldNextQuestion, v))
}

// NextQuestionContainsFold applies the ContainsFold predicate on the "next_question" field.
func NextQuestionContainsFold(v string) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldContainsFold(FieldNextQuestion, v))
}

// FeedbackCompletedEQ applies the EQ predicate on the "feedback_completed" field.
func FeedbackCompletedEQ(v bool) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldEQ(FieldFeedbackCompleted, v))
}

// FeedbackCompletedNEQ applies the NEQ predicate on the "feedback_completed" field.
func FeedbackCompletedNEQ(v bool) predicate.TurnEvent {
	return predicate.TurnEvent(sql.FieldNEQ(FieldFeedbackCompleted, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TurnEvent) predicate.TurnEvent {
	return predicate.TurnEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TurnEvent) predicate.TurnEvent {
	return predicate.TurnEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TurnEvent) predicate.TurnEvent {
	return predicate.TurnEvent(sql.NotPredicates(p))
}

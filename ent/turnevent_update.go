// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jaemin/readcoach/ent/predicate"
	"github.com/jaemin/readcoach/ent/turnevent"
)

// TurnEventUpdate is the builder for updating TurnEvent entities.
type TurnEventUpdate struct {
	config
	hooks    []Hook
	mutation *TurnEventMutation
}

// Where appends a list predicates to the TurnEventUpdate builder.
func (_u *TurnEventUpdate) Where(ps ...predicate.TurnEvent) *TurnEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TurnEventUpdate) SetSessionID(v string) *TurnEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableSessionID(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetProblemID sets the "problem_id" field.
func (_u *TurnEventUpdate) SetProblemID(v string) *TurnEventUpdate {
	_u.mutation.SetProblemID(v)
	return _u
}

// SetNillableProblemID sets the "problem_id" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableProblemID(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetProblemID(*v)
	}
	return _u
}

// SetStudentText sets the "student_text" field.
func (_u *TurnEventUpdate) SetStudentText(v string) *TurnEventUpdate {
	_u.mutation.SetStudentText(v)
	return _u
}

// SetNillableStudentText sets the "student_text" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableStudentText(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetStudentText(*v)
	}
	return _u
}

// SetSurveyGist sets the "survey_gist" field.
func (_u *TurnEventUpdate) SetSurveyGist(v string) *TurnEventUpdate {
	_u.mutation.SetSurveyGist(v)
	return _u
}

// SetNillableSurveyGist sets the "survey_gist" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableSurveyGist(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetSurveyGist(*v)
	}
	return _u
}

// SetQuestionFocus sets the "question_focus" field.
func (_u *TurnEventUpdate) SetQuestionFocus(v string) *TurnEventUpdate {
	_u.mutation.SetQuestionFocus(v)
	return _u
}

// SetNillableQuestionFocus sets the "question_focus" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableQuestionFocus(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetQuestionFocus(*v)
	}
	return _u
}

// SetReadingDepth sets the "reading_depth" field.
func (_u *TurnEventUpdate) SetReadingDepth(v string) *TurnEventUpdate {
	_u.mutation.SetReadingDepth(v)
	return _u
}

// SetNillableReadingDepth sets the "reading_depth" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableReadingDepth(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetReadingDepth(*v)
	}
	return _u
}

// SetReciteArticulation sets the "recite_articulation" field.
func (_u *TurnEventUpdate) SetReciteArticulation(v string) *TurnEventUpdate {
	_u.mutation.SetReciteArticulation(v)
	return _u
}

// SetNillableReciteArticulation sets the "recite_articulation" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableReciteArticulation(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetReciteArticulation(*v)
	}
	return _u
}

// SetReviewAccuracy sets the "review_accuracy" field.
func (_u *TurnEventUpdate) SetReviewAccuracy(v string) *TurnEventUpdate {
	_u.mutation.SetReviewAccuracy(v)
	return _u
}

// SetNillableReviewAccuracy sets the "review_accuracy" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableReviewAccuracy(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetReviewAccuracy(*v)
	}
	return _u
}

// SetConfidenceLevel sets the "confidence_level" field.
func (_u *TurnEventUpdate) SetConfidenceLevel(v string) *TurnEventUpdate {
	_u.mutation.SetConfidenceLevel(v)
	return _u
}

// SetNillableConfidenceLevel sets the "confidence_level" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableConfidenceLevel(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetConfidenceLevel(*v)
	}
	return _u
}

// SetRecommendedStage sets the "recommended_stage" field.
func (_u *TurnEventUpdate) SetRecommendedStage(v string) *TurnEventUpdate {
	_u.mutation.SetRecommendedStage(v)
	return _u
}

// SetNillableRecommendedStage sets the "recommended_stage" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableRecommendedStage(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetRecommendedStage(*v)
	}
	return _u
}

// SetStageReason sets the "stage_reason" field.
func (_u *TurnEventUpdate) SetStageReason(v string) *TurnEventUpdate {
	_u.mutation.SetStageReason(v)
	return _u
}

// SetNillableStageReason sets the "stage_reason" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableStageReason(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetStageReason(*v)
	}
	return _u
}

// SetNextQuestion sets the "next_question" field.
func (_u *TurnEventUpdate) SetNextQuestion(v string) *TurnEventUpdate {
	_u.mutation.SetNextQuestion(v)
	return _u
}

// SetNillableNextQuestion sets the "next_question" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableNextQuestion(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetNextQuestion(*v)
	}
	return _u
}

// SetFeedbackCompleted sets the "feedback_completed" field.
func (_u *TurnEventUpdate) SetFeedbackCompleted(v bool) *TurnEventUpdate {
	_u.mutation.SetFeedbackCompleted(v)
	return _u
}

// SetNillableFeedbackCompleted sets the "feedback_completed" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableFeedbackCompleted(v *bool) *TurnEventUpdate {
	if v != nil {
		_u.SetFeedbackCompleted(*v)
	}
	return _u
}

// Mutation returns the TurnEventMutation object of the builder.
func (_u *TurnEventUpdate) Mutation() *TurnEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TurnEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TurnEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TurnEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TurnEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TurnEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := turnevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProblemID(); ok {
		if err := turnevent.ProblemIDValidator(v); err != nil {
			return &ValidationError{Name: "problem_id", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.problem_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentText(); ok {
		if err := turnevent.StudentTextValidator(v); err != nil {
			return &ValidationError{Name: "student_text", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.student_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SurveyGist(); ok {
		if err := turnevent.SurveyGistValidator(v); err != nil {
			return &ValidationError{Name: "survey_gist", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.survey_gist": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionFocus(); ok {
		if err := turnevent.QuestionFocusValidator(v); err != nil {
			return &ValidationError{Name: "question_focus", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.question_focus": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReadingDepth(); ok {
		if err := turnevent.ReadingDepthValidator(v); err != nil {
			return &ValidationError{Name: "reading_depth", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.reading_depth": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReciteArticulation(); ok {
		if err := turnevent.ReciteArticulationValidator(v); err != nil {
			return &ValidationError{Name: "recite_articulation", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.recite_articulation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewAccuracy(); ok {
		if err := turnevent.ReviewAccuracyValidator(v); err != nil {
			return &ValidationError{Name: "review_accuracy", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.review_accuracy": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfidenceLevel(); ok {
		if err := turnevent.ConfidenceLevelValidator(v); err != nil {
			return &ValidationError{Name: "confidence_level", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.confidence_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RecommendedStage(); ok {
		if err := turnevent.RecommendedStageValidator(v); err != nil {
			return &ValidationError{Name: "recommended_stage", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.recommended_stage": %w`, err)}
		}
	}
	return nil
}

func (_u *TurnEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(turnevent.Table, turnevent.Columns, sqlgraph.NewFieldSpec(turnevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(turnevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProblemID(); ok {
		_spec.SetField(turnevent.FieldProblemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentText(); ok {
		_spec.SetField(turnevent.FieldStudentText, field.TypeString, value)
	}
	if value, ok := _u.mutation.SurveyGist(); ok {
		_spec.SetField(turnevent.FieldSurveyGist, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionFocus(); ok {
		_spec.SetField(turnevent.FieldQuestionFocus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReadingDepth(); ok {
		_spec.SetField(turnevent.FieldReadingDepth, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReciteArticulation(); ok {
		_spec.SetField(turnevent.FieldReciteArticulation, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReviewAccuracy(); ok {
		_spec.SetField(turnevent.FieldReviewAccuracy, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConfidenceLevel(); ok {
		_spec.SetField(turnevent.FieldConfidenceLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.RecommendedStage(); ok {
		_spec.SetField(turnevent.FieldRecommendedStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.StageReason(); ok {
		_spec.SetField(turnevent.FieldStageReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.NextQuestion(); ok {
		_spec.SetField(turnevent.FieldNextQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.FeedbackCompleted(); ok {
		_spec.SetField(turnevent.FieldFeedbackCompleted, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{turnevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TurnEventUpdateOne is the builder for updating a single TurnEvent entity.
type TurnEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TurnEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *TurnEventUpdateOne) SetSessionID(v string) *TurnEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableSessionID(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetProblemID sets the "problem_id" field.
func (_u *TurnEventUpdateOne) SetProblemID(v string) *TurnEventUpdateOne {
	_u.mutation.SetProblemID(v)
	return _u
}

// SetNillableProblemID sets the "problem_id" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableProblemID(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetProblemID(*v)
	}
	return _u
}

// SetStudentText sets the "student_text" field.
func (_u *TurnEventUpdateOne) SetStudentText(v string) *TurnEventUpdateOne {
	_u.mutation.SetStudentText(v)
	return _u
}

// SetNillableStudentText sets the "student_text" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableStudentText(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetStudentText(*v)
	}
	return _u
}

// SetSurveyGist sets the "survey_gist" field.
func (_u *TurnEventUpdateOne) SetSurveyGist(v string) *TurnEventUpdateOne {
	_u.mutation.SetSurveyGist(v)
	return _u
}

// SetNillableSurveyGist sets the "survey_gist" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableSurveyGist(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetSurveyGist(*v)
	}
	return _u
}

// SetQuestionFocus sets the "question_focus" field.
func (_u *TurnEventUpdateOne) SetQuestionFocus(v string) *TurnEventUpdateOne {
	_u.mutation.SetQuestionFocus(v)
	return _u
}

// SetNillableQuestionFocus sets the "question_focus" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableQuestionFocus(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetQuestionFocus(*v)
	}
	return _u
}

// SetReadingDepth sets the "reading_depth" field.
func (_u *TurnEventUpdateOne) SetReadingDepth(v string) *TurnEventUpdateOne {
	_u.mutation.SetReadingDepth(v)
	return _u
}

// SetNillableReadingDepth sets the "reading_depth" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableReadingDepth(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetReadingDepth(*v)
	}
	return _u
}

// SetReciteArticulation sets the "recite_articulation" field.
func (_u *TurnEventUpdateOne) SetReciteArticulation(v string) *TurnEventUpdateOne {
	_u.mutation.SetReciteArticulation(v)
	return _u
}

// SetNillableReciteArticulation sets the "recite_articulation" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableReciteArticulation(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetReciteArticulation(*v)
	}
	return _u
}

// SetReviewAccuracy sets the "review_accuracy" field.
func (_u *TurnEventUpdateOne) SetReviewAccuracy(v string) *TurnEventUpdateOne {
	_u.mutation.SetReviewAccuracy(v)
	return _u
}

// SetNillableReviewAccuracy sets the "review_accuracy" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableReviewAccuracy(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetReviewAccuracy(*v)
	}
	return _u
}

// SetConfidenceLevel sets the "confidence_level" field.
func (_u *TurnEventUpdateOne) SetConfidenceLevel(v string) *TurnEventUpdateOne {
	_u.mutation.SetConfidenceLevel(v)
	return _u
}

// SetNillableConfidenceLevel sets the "confidence_level" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableConfidenceLevel(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetConfidenceLevel(*v)
	}
	return _u
}

// SetRecommendedStage sets the "recommended_stage" field.
func (_u *TurnEventUpdateOne) SetRecommendedStage(v string) *TurnEventUpdateOne {
	_u.mutation.SetRecommendedStage(v)
	return _u
}

// SetNillableRecommendedStage sets the "recommended_stage" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableRecommendedStage(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetRecommendedStage(*v)
	}
	return _u
}

// SetStageReason sets the "stage_reason" field.
func (_u *TurnEventUpdateOne) SetStageReason(v string) *TurnEventUpdateOne {
	_u.mutation.SetStageReason(v)
	return _u
}

// SetNillableStageReason sets the "stage_reason" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableStageReason(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetStageReason(*v)
	}
	return _u
}

// SetNextQuestion sets the "next_question" field.
func (_u *TurnEventUpdateOne) SetNextQuestion(v string) *TurnEventUpdateOne {
	_u.mutation.SetNextQuestion(v)
	return _u
}

// SetNillableNextQuestion sets the "next_question" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableNextQuestion(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetNextQuestion(*v)
	}
	return _u
}

// SetFeedbackCompleted sets the "feedback_completed" field.
func (_u *TurnEventUpdateOne) SetFeedbackCompleted(v bool) *TurnEventUpdateOne {
	_u.mutation.SetFeedbackCompleted(v)
	return _u
}

// SetNillableFeedbackCompleted sets the "feedback_completed" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableFeedbackCompleted(v *bool) *TurnEventUpdateOne {
	if v != nil {
		_u.SetFeedbackCompleted(*v)
	}
	return _u
}

// Mutation returns the TurnEventMutation object of the builder.
func (_u *TurnEventUpdateOne) Mutation() *TurnEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TurnEventUpdate builder.
func (_u *TurnEventUpdateOne) Where(ps ...predicate.TurnEvent) *TurnEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TurnEventUpdateOne) Select(field string, fields ...string) *TurnEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TurnEvent entity.
func (_u *TurnEventUpdateOne) Save(ctx context.Context) (*TurnEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TurnEventUpdateOne) SaveX(ctx context.Context) *TurnEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TurnEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TurnEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TurnEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := turnevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProblemID(); ok {
		if err := turnevent.ProblemIDValidator(v); err != nil {
			return &ValidationError{Name: "problem_id", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.problem_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentText(); ok {
		if err := turnevent.StudentTextValidator(v); err != nil {
			return &ValidationError{Name: "student_text", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.student_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SurveyGist(); ok {
		if err := turnevent.SurveyGistValidator(v); err != nil {
			return &ValidationError{Name: "survey_gist", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.survey_gist": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionFocus(); ok {
		if err := turnevent.QuestionFocusValidator(v); err != nil {
			return &ValidationError{Name: "question_focus", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.question_focus": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReadingDepth(); ok {
		if err := turnevent.ReadingDepthValidator(v); err != nil {
			return &ValidationError{Name: "reading_depth", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.reading_depth": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReciteArticulation(); ok {
		if err := turnevent.ReciteArticulationValidator(v); err != nil {
			return &ValidationError{Name: "recite_articulation", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.recite_articulation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewAccuracy(); ok {
		if err := turnevent.ReviewAccuracyValidator(v); err != nil {
			return &ValidationError{Name: "review_accuracy", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.review_accuracy": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfidenceLevel(); ok {
		if err := turnevent.ConfidenceLevelValidator(v); err != nil {
			return &ValidationError{Name: "confidence_level", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.confidence_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RecommendedStage(); ok {
		if err := turnevent.RecommendedStageValidator(v); err != nil {
			return &ValidationError{Name: "recommended_stage", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.recommended_stage": %w`, err)}
		}
	}
	return nil
}

func (_u *TurnEventUpdateOne) sqlSave(ctx context.Context) (_node *TurnEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(turnevent.Table, turnevent.Columns, sqlgraph.NewFieldSpec(turnevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TurnEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, turnevent.FieldID)
		for _, f := range fields {
			if !turnevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != turnevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(turnevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProblemID(); ok {
		_spec.SetField(turnevent.FieldProblemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentText(); ok {
		_spec.SetField(turnevent.FieldStudentText, field.TypeString, value)
	}
	if value, ok := _u.mutation.SurveyGist(); ok {
		_spec.SetField(turnevent.FieldSurveyGist, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionFocus(); ok {
		_spec.SetField(turnevent.FieldQuestionFocus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReadingDepth(); ok {
		_spec.SetField(turnevent.FieldReadingDepth, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReciteArticulation(); ok {
		_spec.SetField(turnevent.FieldReciteArticulation, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReviewAccuracy(); ok {
		_spec.SetField(turnevent.FieldReviewAccuracy, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConfidenceLevel(); ok {
		_spec.SetField(turnevent.FieldConfidenceLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.RecommendedStage(); ok {
		_spec.SetField(turnevent.FieldRecommendedStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.StageReason(); ok {
		_spec.SetField(turnevent.FieldStageReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.NextQuestion(); ok {
		_spec.SetField(turnevent.FieldNextQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.FeedbackCompleted(); ok {
		_spec.SetField(turnevent.FieldFeedbackCompleted, field.TypeBool, value)
	}
	_node = &TurnEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{turnevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

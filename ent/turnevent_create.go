// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jaemin/readcoach/ent/turnevent"
)

// TurnEventCreate is the builder for creating a TurnEvent entity.
type TurnEventCreate struct {
	config
	mutation *TurnEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *TurnEventCreate) SetSequence(v int64) *TurnEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TurnEventCreate) SetTimestamp(v time.Time) *TurnEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *TurnEventCreate) SetNillableTimestamp(v *time.Time) *TurnEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *TurnEventCreate) SetSessionID(v string) *TurnEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetProblemID sets the "problem_id" field.
func (_c *TurnEventCreate) SetProblemID(v string) *TurnEventCreate {
	_c.mutation.SetProblemID(v)
	return _c
}

// SetStudentText sets the "student_text" field.
func (_c *TurnEventCreate) SetStudentText(v string) *TurnEventCreate {
	_c.mutation.SetStudentText(v)
	return _c
}

// SetSurveyGist sets the "survey_gist" field.
func (_c *TurnEventCreate) SetSurveyGist(v string) *TurnEventCreate {
	_c.mutation.SetSurveyGist(v)
	return _c
}

// SetQuestionFocus sets the "question_focus" field.
func (_c *TurnEventCreate) SetQuestionFocus(v string) *TurnEventCreate {
	_c.mutation.SetQuestionFocus(v)
	return _c
}

// SetReadingDepth sets the "reading_depth" field.
func (_c *TurnEventCreate) SetReadingDepth(v string) *TurnEventCreate {
	_c.mutation.SetReadingDepth(v)
	return _c
}

// SetReciteArticulation sets the "recite_articulation" field.
func (_c *TurnEventCreate) SetReciteArticulation(v string) *TurnEventCreate {
	_c.mutation.SetReciteArticulation(v)
	return _c
}

// SetReviewAccuracy sets the "review_accuracy" field.
func (_c *TurnEventCreate) SetReviewAccuracy(v string) *TurnEventCreate {
	_c.mutation.SetReviewAccuracy(v)
	return _c
}

// SetConfidenceLevel sets the "confidence_level" field.
func (_c *TurnEventCreate) SetConfidenceLevel(v string) *TurnEventCreate {
	_c.mutation.SetConfidenceLevel(v)
	return _c
}

// SetRecommendedStage sets the "recommended_stage" field.
func (_c *TurnEventCreate) SetRecommendedStage(v string) *TurnEventCreate {
	_c.mutation.SetRecommendedStage(v)
	return _c
}

// SetStageReason sets the "stage_reason" field.
func (_c *TurnEventCreate) SetStageReason(v string) *TurnEventCreate {
	_c.mutation.SetStageReason(v)
	return _c
}

// SetNillableStageReason sets the "stage_reason" field if the given value is not nil.
func (_c *TurnEventCreate) SetNillableStageReason(v *string) *TurnEventCreate {
	if v != nil {
		_c.SetStageReason(*v)
	}
	return _c
}

// SetNextQuestion sets the "next_question" field.
func (_c *TurnEventCreate) SetNextQuestion(v string) *TurnEventCreate {
	_c.mutation.SetNextQuestion(v)
	return _c
}

// SetNillableNextQuestion sets the "next_question" field if the given value is not nil.
func (_c *TurnEventCreate) SetNillableNextQuestion(v *string) *TurnEventCreate {
	if v != nil {
		_c.SetNextQuestion(*v)
	}
	return _c
}

// SetFeedbackCompleted sets the "feedback_completed" field.
func (_c *TurnEventCreate) SetFeedbackCompleted(v bool) *TurnEventCreate {
	_c.mutation.SetFeedbackCompleted(v)
	return _c
}

// Mutation returns the TurnEventMutation object of the builder.
func (_c *TurnEventCreate) Mutation() *TurnEventMutation {
	return _c.mutation
}

// Save creates the TurnEvent in the database.
func (_c *TurnEventCreate) Save(ctx context.Context) (*TurnEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TurnEventCreate) SaveX(ctx context.Context) *TurnEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TurnEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TurnEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TurnEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := turnevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.StageReason(); !ok {
		v := turnevent.DefaultStageReason
		_c.mutation.SetStageReason(v)
	}
	if _, ok := _c.mutation.NextQuestion(); !ok {
		v := turnevent.DefaultNextQuestion
		_c.mutation.SetNextQuestion(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TurnEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "TurnEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "TurnEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "TurnEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := turnevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProblemID(); !ok {
		return &ValidationError{Name: "problem_id", err: errors.New(`ent: missing required field "TurnEvent.problem_id"`)}
	}
	if v, ok := _c.mutation.ProblemID(); ok {
		if err := turnevent.ProblemIDValidator(v); err != nil {
			return &ValidationError{Name: "problem_id", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.problem_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StudentText(); !ok {
		return &ValidationError{Name: "student_text", err: errors.New(`ent: missing required field "TurnEvent.student_text"`)}
	}
	if v, ok := _c.mutation.StudentText(); ok {
		if err := turnevent.StudentTextValidator(v); err != nil {
			return &ValidationError{Name: "student_text", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.student_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SurveyGist(); !ok {
		return &ValidationError{Name: "survey_gist", err: errors.New(`ent: missing required field "TurnEvent.survey_gist"`)}
	}
	if v, ok := _c.mutation.SurveyGist(); ok {
		if err := turnevent.SurveyGistValidator(v); err != nil {
			return &ValidationError{Name: "survey_gist", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.survey_gist": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionFocus(); !ok {
		return &ValidationError{Name: "question_focus", err: errors.New(`ent: missing required field "TurnEvent.question_focus"`)}
	}
	if v, ok := _c.mutation.QuestionFocus(); ok {
		if err := turnevent.QuestionFocusValidator(v); err != nil {
			return &ValidationError{Name: "question_focus", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.question_focus": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReadingDepth(); !ok {
		return &ValidationError{Name: "reading_depth", err: errors.New(`ent: missing required field "TurnEvent.reading_depth"`)}
	}
	if v, ok := _c.mutation.ReadingDepth(); ok {
		if err := turnevent.ReadingDepthValidator(v); err != nil {
			return &ValidationError{Name: "reading_depth", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.reading_depth": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReciteArticulation(); !ok {
		return &ValidationError{Name: "recite_articulation", err: errors.New(`ent: missing required field "TurnEvent.recite_articulation"`)}
	}
	if v, ok := _c.mutation.ReciteArticulation(); ok {
		if err := turnevent.ReciteArticulationValidator(v); err != nil {
			return &ValidationError{Name: "recite_articulation", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.recite_articulation": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReviewAccuracy(); !ok {
		return &ValidationError{Name: "review_accuracy", err: errors.New(`ent: missing required field "TurnEvent.review_accuracy"`)}
	}
	if v, ok := _c.mutation.ReviewAccuracy(); ok {
		if err := turnevent.ReviewAccuracyValidator(v); err != nil {
			return &ValidationError{Name: "review_accuracy", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.review_accuracy": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConfidenceLevel(); !ok {
		return &ValidationError{Name: "confidence_level", err: errors.New(`ent: missing required field "TurnEvent.confidence_level"`)}
	}
	if v, ok := _c.mutation.ConfidenceLevel(); ok {
		if err := turnevent.ConfidenceLevelValidator(v); err != nil {
			return &ValidationError{Name: "confidence_level", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.confidence_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RecommendedStage(); !ok {
		return &ValidationError{Name: "recommended_stage", err: errors.New(`ent: missing required field "TurnEvent.recommended_stage"`)}
	}
	if v, ok := _c.mutation.RecommendedStage(); ok {
		if err := turnevent.RecommendedStageValidator(v); err != nil {
			return &ValidationError{Name: "recommended_stage", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.recommended_stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StageReason(); !ok {
		return &ValidationError{Name: "stage_reason", err: errors.New(`ent: missing required field "TurnEvent.stage_reason"`)}
	}
	if _, ok := _c.mutation.NextQuestion(); !ok {
		return &ValidationError{Name: "next_question", err: errors.New(`ent: missing required field "TurnEvent.next_question"`)}
	}
	if _, ok := _c.mutation.FeedbackCompleted(); !ok {
		return &ValidationError{Name: "feedback_completed", err: errors.New(`ent: missing required field "TurnEvent.feedback_completed"`)}
	}
	return nil
}

func (_c *TurnEventCreate) sqlSave(ctx context.Context) (*TurnEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TurnEventCreate) createSpec() (*TurnEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TurnEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(turnevent.Table, sqlgraph.NewFieldSpec(turnevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(turnevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(turnevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(turnevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.ProblemID(); ok {
		_spec.SetField(turnevent.FieldProblemID, field.TypeString, value)
		_node.ProblemID = value
	}
	if value, ok := _c.mutation.StudentText(); ok {
		_spec.SetField(turnevent.FieldStudentText, field.TypeString, value)
		_node.StudentText = value
	}
	if value, ok := _c.mutation.SurveyGist(); ok {
		_spec.SetField(turnevent.FieldSurveyGist, field.TypeString, value)
		_node.SurveyGist = value
	}
	if value, ok := _c.mutation.QuestionFocus(); ok {
		_spec.SetField(turnevent.FieldQuestionFocus, field.TypeString, value)
		_node.QuestionFocus = value
	}
	if value, ok := _c.mutation.ReadingDepth(); ok {
		_spec.SetField(turnevent.FieldReadingDepth, field.TypeString, value)
		_node.ReadingDepth = value
	}
	if value, ok := _c.mutation.ReciteArticulation(); ok {
		_spec.SetField(turnevent.FieldReciteArticulation, field.TypeString, value)
		_node.ReciteArticulation = value
	}
	if value, ok := _c.mutation.ReviewAccuracy(); ok {
		_spec.SetField(turnevent.FieldReviewAccuracy, field.TypeString, value)
		_node.ReviewAccuracy = value
	}
	if value, ok := _c.mutation.ConfidenceLevel(); ok {
		_spec.SetField(turnevent.FieldConfidenceLevel, field.TypeString, value)
		_node.ConfidenceLevel = value
	}
	if value, ok := _c.mutation.RecommendedStage(); ok {
		_spec.SetField(turnevent.FieldRecommendedStage, field.TypeString, value)
		_node.RecommendedStage = value
	}
	if value, ok := _c.mutation.StageReason(); ok {
		_spec.SetField(turnevent.FieldStageReason, field.TypeString, value)
		_node.StageReason = value
	}
	if value, ok := _c.mutation.NextQuestion(); ok {
		_spec.SetField(turnevent.FieldNextQuestion, field.TypeString, value)
		_node.NextQuestion = value
	}
	if value, ok := _c.mutation.FeedbackCompleted(); ok {
		_spec.SetField(turnevent.FieldFeedbackCompleted, field.TypeBool, value)
		_node.FeedbackCompleted = value
	}
	return _node, _spec
}

// TurnEventCreateBulk is the builder for creating many TurnEvent entities in bulk.
type TurnEventCreateBulk struct {
	config
	err      error
	builders []*TurnEventCreate
}

// Save creates the TurnEvent entities in the database.
func (_c *TurnEventCreateBulk) Save(ctx context.Context) ([]*TurnEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TurnEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TurnEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TurnEventCreateBulk) SaveX(ctx context.Context) []*TurnEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TurnEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TurnEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

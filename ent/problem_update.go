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
	"github.com/jaemin/readcoach/ent/problem"
)

// ProblemUpdate is the builder for updating Problem entities.
type ProblemUpdate struct {
	config
	hooks    []Hook
	mutation *ProblemMutation
}

// Where appends a list predicates to the ProblemUpdate builder.
func (_u *ProblemUpdate) Where(ps ...predicate.Problem) *ProblemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ProblemUpdate) SetTitle(v string) *ProblemUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ProblemUpdate) SetNillableTitle(v *string) *ProblemUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetPassage sets the "passage" field.
func (_u *ProblemUpdate) SetPassage(v string) *ProblemUpdate {
	_u.mutation.SetPassage(v)
	return _u
}

// SetNillablePassage sets the "passage" field if the given value is not nil.
func (_u *ProblemUpdate) SetNillablePassage(v *string) *ProblemUpdate {
	if v != nil {
		_u.SetPassage(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *ProblemUpdate) SetQuestion(v string) *ProblemUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *ProblemUpdate) SetNillableQuestion(v *string) *ProblemUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetGradeLevel sets the "grade_level" field.
func (_u *ProblemUpdate) SetGradeLevel(v int) *ProblemUpdate {
	_u.mutation.ResetGradeLevel()
	_u.mutation.SetGradeLevel(v)
	return _u
}

// SetNillableGradeLevel sets the "grade_level" field if the given value is not nil.
func (_u *ProblemUpdate) SetNillableGradeLevel(v *int) *ProblemUpdate {
	if v != nil {
		_u.SetGradeLevel(*v)
	}
	return _u
}

// AddGradeLevel adds value to the "grade_level" field.
func (_u *ProblemUpdate) AddGradeLevel(v int) *ProblemUpdate {
	_u.mutation.AddGradeLevel(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *ProblemUpdate) SetSource(v string) *ProblemUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ProblemUpdate) SetNillableSource(v *string) *ProblemUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// Mutation returns the ProblemMutation object of the builder.
func (_u *ProblemUpdate) Mutation() *ProblemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProblemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProblemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProblemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProblemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProblemUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := problem.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Problem.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Passage(); ok {
		if err := problem.PassageValidator(v); err != nil {
			return &ValidationError{Name: "passage", err: fmt.Errorf(`ent: validator failed for field "Problem.passage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Question(); ok {
		if err := problem.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "Problem.question": %w`, err)}
		}
	}
	return nil
}

func (_u *ProblemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(problem.Table, problem.Columns, sqlgraph.NewFieldSpec(problem.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(problem.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Passage(); ok {
		_spec.SetField(problem.FieldPassage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(problem.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.GradeLevel(); ok {
		_spec.SetField(problem.FieldGradeLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGradeLevel(); ok {
		_spec.AddField(problem.FieldGradeLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(problem.FieldSource, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{problem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProblemUpdateOne is the builder for updating a single Problem entity.
type ProblemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProblemMutation
}

// SetTitle sets the "title" field.
func (_u *ProblemUpdateOne) SetTitle(v string) *ProblemUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ProblemUpdateOne) SetNillableTitle(v *string) *ProblemUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetPassage sets the "passage" field.
func (_u *ProblemUpdateOne) SetPassage(v string) *ProblemUpdateOne {
	_u.mutation.SetPassage(v)
	return _u
}

// SetNillablePassage sets the "passage" field if the given value is not nil.
func (_u *ProblemUpdateOne) SetNillablePassage(v *string) *ProblemUpdateOne {
	if v != nil {
		_u.SetPassage(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *ProblemUpdateOne) SetQuestion(v string) *ProblemUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *ProblemUpdateOne) SetNillableQuestion(v *string) *ProblemUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetGradeLevel sets the "grade_level" field.
func (_u *ProblemUpdateOne) SetGradeLevel(v int) *ProblemUpdateOne {
	_u.mutation.ResetGradeLevel()
	_u.mutation.SetGradeLevel(v)
	return _u
}

// SetNillableGradeLevel sets the "grade_level" field if the given value is not nil.
func (_u *ProblemUpdateOne) SetNillableGradeLevel(v *int) *ProblemUpdateOne {
	if v != nil {
		_u.SetGradeLevel(*v)
	}
	return _u
}

// AddGradeLevel adds value to the "grade_level" field.
func (_u *ProblemUpdateOne) AddGradeLevel(v int) *ProblemUpdateOne {
	_u.mutation.AddGradeLevel(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *ProblemUpdateOne) SetSource(v string) *ProblemUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ProblemUpdateOne) SetNillableSource(v *string) *ProblemUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// Mutation returns the ProblemMutation object of the builder.
func (_u *ProblemUpdateOne) Mutation() *ProblemMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProblemUpdate builder.
func (_u *ProblemUpdateOne) Where(ps ...predicate.Problem) *ProblemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProblemUpdateOne) Select(field string, fields ...string) *ProblemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Problem entity.
func (_u *ProblemUpdateOne) Save(ctx context.Context) (*Problem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProblemUpdateOne) SaveX(ctx context.Context) *Problem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProblemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProblemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProblemUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := problem.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Problem.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Passage(); ok {
		if err := problem.PassageValidator(v); err != nil {
			return &ValidationError{Name: "passage", err: fmt.Errorf(`ent: validator failed for field "Problem.passage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Question(); ok {
		if err := problem.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "Problem.question": %w`, err)}
		}
	}
	return nil
}

func (_u *ProblemUpdateOne) sqlSave(ctx context.Context) (_node *Problem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(problem.Table, problem.Columns, sqlgraph.NewFieldSpec(problem.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Problem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, problem.FieldID)
		for _, f := range fields {
			if !problem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != problem.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(problem.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Passage(); ok {
		_spec.SetField(problem.FieldPassage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(problem.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.GradeLevel(); ok {
		_spec.SetField(problem.FieldGradeLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGradeLevel(); ok {
		_spec.AddField(problem.FieldGradeLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(problem.FieldSource, field.TypeString, value)
	}
	_node = &Problem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{problem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cylin/examdrill/ent/answerevent"
	"github.com/cylin/examdrill/ent/predicate"
)

// AnswerEventUpdate is the builder for updating AnswerEvent entities.
type AnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerEventMutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdate) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *AnswerEventUpdate) SetAttemptID(v string) *AnswerEventUpdate {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableAttemptID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetQuestionNumber sets the "question_number" field.
func (_u *AnswerEventUpdate) SetQuestionNumber(v int) *AnswerEventUpdate {
	_u.mutation.ResetQuestionNumber()
	_u.mutation.SetQuestionNumber(v)
	return _u
}

// SetNillableQuestionNumber sets the "question_number" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableQuestionNumber(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetQuestionNumber(*v)
	}
	return _u
}

// AddQuestionNumber adds value to the "question_number" field.
func (_u *AnswerEventUpdate) AddQuestionNumber(v int) *AnswerEventUpdate {
	_u.mutation.AddQuestionNumber(v)
	return _u
}

// SetGiven sets the "given" field.
func (_u *AnswerEventUpdate) SetGiven(v string) *AnswerEventUpdate {
	_u.mutation.SetGiven(v)
	return _u
}

// SetNillableGiven sets the "given" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableGiven(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetGiven(*v)
	}
	return _u
}

// SetWant sets the "want" field.
func (_u *AnswerEventUpdate) SetWant(v string) *AnswerEventUpdate {
	_u.mutation.SetWant(v)
	return _u
}

// SetNillableWant sets the "want" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableWant(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetWant(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdate) SetCorrect(v bool) *AnswerEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableCorrect(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetMarked sets the "marked" field.
func (_u *AnswerEventUpdate) SetMarked(v bool) *AnswerEventUpdate {
	_u.mutation.SetMarked(v)
	return _u
}

// SetNillableMarked sets the "marked" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableMarked(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetMarked(*v)
	}
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdate) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdate) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := answerevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionNumber(); ok {
		if err := answerevent.QuestionNumberValidator(v); err != nil {
			return &ValidationError{Name: "question_number", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_number": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(answerevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionNumber(); ok {
		_spec.SetField(answerevent.FieldQuestionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionNumber(); ok {
		_spec.AddField(answerevent.FieldQuestionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Given(); ok {
		_spec.SetField(answerevent.FieldGiven, field.TypeString, value)
	}
	if value, ok := _u.mutation.Want(); ok {
		_spec.SetField(answerevent.FieldWant, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Marked(); ok {
		_spec.SetField(answerevent.FieldMarked, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerEventUpdateOne is the builder for updating a single AnswerEvent entity.
type AnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerEventMutation
}

// SetAttemptID sets the "attempt_id" field.
func (_u *AnswerEventUpdateOne) SetAttemptID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableAttemptID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetQuestionNumber sets the "question_number" field.
func (_u *AnswerEventUpdateOne) SetQuestionNumber(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetQuestionNumber()
	_u.mutation.SetQuestionNumber(v)
	return _u
}

// SetNillableQuestionNumber sets the "question_number" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableQuestionNumber(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetQuestionNumber(*v)
	}
	return _u
}

// AddQuestionNumber adds value to the "question_number" field.
func (_u *AnswerEventUpdateOne) AddQuestionNumber(v int) *AnswerEventUpdateOne {
	_u.mutation.AddQuestionNumber(v)
	return _u
}

// SetGiven sets the "given" field.
func (_u *AnswerEventUpdateOne) SetGiven(v string) *AnswerEventUpdateOne {
	_u.mutation.SetGiven(v)
	return _u
}

// SetNillableGiven sets the "given" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableGiven(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetGiven(*v)
	}
	return _u
}

// SetWant sets the "want" field.
func (_u *AnswerEventUpdateOne) SetWant(v string) *AnswerEventUpdateOne {
	_u.mutation.SetWant(v)
	return _u
}

// SetNillableWant sets the "want" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableWant(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetWant(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdateOne) SetCorrect(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableCorrect(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetMarked sets the "marked" field.
func (_u *AnswerEventUpdateOne) SetMarked(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetMarked(v)
	return _u
}

// SetNillableMarked sets the "marked" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableMarked(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetMarked(*v)
	}
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdateOne) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdateOne) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerEventUpdateOne) Select(field string, fields ...string) *AnswerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerEvent entity.
func (_u *AnswerEventUpdateOne) Save(ctx context.Context) (*AnswerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) SaveX(ctx context.Context) *AnswerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdateOne) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := answerevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionNumber(); ok {
		if err := answerevent.QuestionNumberValidator(v); err != nil {
			return &ValidationError{Name: "question_number", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_number": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *AnswerEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerevent.FieldID)
		for _, f := range fields {
			if !answerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerevent.FieldID {
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
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(answerevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionNumber(); ok {
		_spec.SetField(answerevent.FieldQuestionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionNumber(); ok {
		_spec.AddField(answerevent.FieldQuestionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Given(); ok {
		_spec.SetField(answerevent.FieldGiven, field.TypeString, value)
	}
	if value, ok := _u.mutation.Want(); ok {
		_spec.SetField(answerevent.FieldWant, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Marked(); ok {
		_spec.SetField(answerevent.FieldMarked, field.TypeBool, value)
	}
	_node = &AnswerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cylin/examdrill/ent/answerevent"
)

// AnswerEventCreate is the builder for creating a AnswerEvent entity.
type AnswerEventCreate struct {
	config
	mutation *AnswerEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AnswerEventCreate) SetSequence(v int64) *AnswerEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AnswerEventCreate) SetTimestamp(v time.Time) *AnswerEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillableTimestamp(v *time.Time) *AnswerEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAttemptID sets the "attempt_id" field.
func (_c *AnswerEventCreate) SetAttemptID(v string) *AnswerEventCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetQuestionNumber sets the "question_number" field.
func (_c *AnswerEventCreate) SetQuestionNumber(v int) *AnswerEventCreate {
	_c.mutation.SetQuestionNumber(v)
	return _c
}

// SetGiven sets the "given" field.
func (_c *AnswerEventCreate) SetGiven(v string) *AnswerEventCreate {
	_c.mutation.SetGiven(v)
	return _c
}

// SetWant sets the "want" field.
func (_c *AnswerEventCreate) SetWant(v string) *AnswerEventCreate {
	_c.mutation.SetWant(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *AnswerEventCreate) SetCorrect(v bool) *AnswerEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillableCorrect(v *bool) *AnswerEventCreate {
	if v != nil {
		_c.SetCorrect(*v)
	}
	return _c
}

// SetMarked sets the "marked" field.
func (_c *AnswerEventCreate) SetMarked(v bool) *AnswerEventCreate {
	_c.mutation.SetMarked(v)
	return _c
}

// SetNillableMarked sets the "marked" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillableMarked(v *bool) *AnswerEventCreate {
	if v != nil {
		_c.SetMarked(*v)
	}
	return _c
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_c *AnswerEventCreate) Mutation() *AnswerEventMutation {
	return _c.mutation
}

// Save creates the AnswerEvent in the database.
func (_c *AnswerEventCreate) Save(ctx context.Context) (*AnswerEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnswerEventCreate) SaveX(ctx context.Context) *AnswerEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnswerEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := answerevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Correct(); !ok {
		v := answerevent.DefaultCorrect
		_c.mutation.SetCorrect(v)
	}
	if _, ok := _c.mutation.Marked(); !ok {
		v := answerevent.DefaultMarked
		_c.mutation.SetMarked(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnswerEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AnswerEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AnswerEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "AnswerEvent.attempt_id"`)}
	}
	if v, ok := _c.mutation.AttemptID(); ok {
		if err := answerevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.attempt_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionNumber(); !ok {
		return &ValidationError{Name: "question_number", err: errors.New(`ent: missing required field "AnswerEvent.question_number"`)}
	}
	if v, ok := _c.mutation.QuestionNumber(); ok {
		if err := answerevent.QuestionNumberValidator(v); err != nil {
			return &ValidationError{Name: "question_number", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Given(); !ok {
		return &ValidationError{Name: "given", err: errors.New(`ent: missing required field "AnswerEvent.given"`)}
	}
	if _, ok := _c.mutation.Want(); !ok {
		return &ValidationError{Name: "want", err: errors.New(`ent: missing required field "AnswerEvent.want"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "AnswerEvent.correct"`)}
	}
	if _, ok := _c.mutation.Marked(); !ok {
		return &ValidationError{Name: "marked", err: errors.New(`ent: missing required field "AnswerEvent.marked"`)}
	}
	return nil
}

func (_c *AnswerEventCreate) sqlSave(ctx context.Context) (*AnswerEvent, error) {
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

func (_c *AnswerEventCreate) createSpec() (*AnswerEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AnswerEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(answerevent.Table, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(answerevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(answerevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.AttemptID(); ok {
		_spec.SetField(answerevent.FieldAttemptID, field.TypeString, value)
		_node.AttemptID = value
	}
	if value, ok := _c.mutation.QuestionNumber(); ok {
		_spec.SetField(answerevent.FieldQuestionNumber, field.TypeInt, value)
		_node.QuestionNumber = value
	}
	if value, ok := _c.mutation.Given(); ok {
		_spec.SetField(answerevent.FieldGiven, field.TypeString, value)
		_node.Given = value
	}
	if value, ok := _c.mutation.Want(); ok {
		_spec.SetField(answerevent.FieldWant, field.TypeString, value)
		_node.Want = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Marked(); ok {
		_spec.SetField(answerevent.FieldMarked, field.TypeBool, value)
		_node.Marked = value
	}
	return _node, _spec
}

// AnswerEventCreateBulk is the builder for creating many AnswerEvent entities in bulk.
type AnswerEventCreateBulk struct {
	config
	err      error
	builders []*AnswerEventCreate
}

// Save creates the AnswerEvent entities in the database.
func (_c *AnswerEventCreateBulk) Save(ctx context.Context) ([]*AnswerEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnswerEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnswerEventMutation)
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
func (_c *AnswerEventCreateBulk) SaveX(ctx context.Context) []*AnswerEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cylin/examdrill/ent/attemptevent"
)

// AttemptEventCreate is the builder for creating a AttemptEvent entity.
type AttemptEventCreate struct {
	config
	mutation *AttemptEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AttemptEventCreate) SetSequence(v int64) *AttemptEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AttemptEventCreate) SetTimestamp(v time.Time) *AttemptEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableTimestamp(v *time.Time) *AttemptEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAttemptID sets the "attempt_id" field.
func (_c *AttemptEventCreate) SetAttemptID(v string) *AttemptEventCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetExamID sets the "exam_id" field.
func (_c *AttemptEventCreate) SetExamID(v string) *AttemptEventCreate {
	_c.mutation.SetExamID(v)
	return _c
}

// SetExamName sets the "exam_name" field.
func (_c *AttemptEventCreate) SetExamName(v string) *AttemptEventCreate {
	_c.mutation.SetExamName(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *AttemptEventCreate) SetScore(v float64) *AttemptEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *AttemptEventCreate) SetCorrect(v int) *AttemptEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableCorrect(v *int) *AttemptEventCreate {
	if v != nil {
		_c.SetCorrect(*v)
	}
	return _c
}

// SetWrong sets the "wrong" field.
func (_c *AttemptEventCreate) SetWrong(v int) *AttemptEventCreate {
	_c.mutation.SetWrong(v)
	return _c
}

// SetNillableWrong sets the "wrong" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableWrong(v *int) *AttemptEventCreate {
	if v != nil {
		_c.SetWrong(*v)
	}
	return _c
}

// SetUnanswered sets the "unanswered" field.
func (_c *AttemptEventCreate) SetUnanswered(v int) *AttemptEventCreate {
	_c.mutation.SetUnanswered(v)
	return _c
}

// SetNillableUnanswered sets the "unanswered" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableUnanswered(v *int) *AttemptEventCreate {
	if v != nil {
		_c.SetUnanswered(*v)
	}
	return _c
}

// SetQuestionCount sets the "question_count" field.
func (_c *AttemptEventCreate) SetQuestionCount(v int) *AttemptEventCreate {
	_c.mutation.SetQuestionCount(v)
	return _c
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableQuestionCount(v *int) *AttemptEventCreate {
	if v != nil {
		_c.SetQuestionCount(*v)
	}
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *AttemptEventCreate) SetDurationSecs(v int) *AttemptEventCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableDurationSecs(v *int) *AttemptEventCreate {
	if v != nil {
		_c.SetDurationSecs(*v)
	}
	return _c
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_c *AttemptEventCreate) Mutation() *AttemptEventMutation {
	return _c.mutation
}

// Save creates the AttemptEvent in the database.
func (_c *AttemptEventCreate) Save(ctx context.Context) (*AttemptEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptEventCreate) SaveX(ctx context.Context) *AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := attemptevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Correct(); !ok {
		v := attemptevent.DefaultCorrect
		_c.mutation.SetCorrect(v)
	}
	if _, ok := _c.mutation.Wrong(); !ok {
		v := attemptevent.DefaultWrong
		_c.mutation.SetWrong(v)
	}
	if _, ok := _c.mutation.Unanswered(); !ok {
		v := attemptevent.DefaultUnanswered
		_c.mutation.SetUnanswered(v)
	}
	if _, ok := _c.mutation.QuestionCount(); !ok {
		v := attemptevent.DefaultQuestionCount
		_c.mutation.SetQuestionCount(v)
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		v := attemptevent.DefaultDurationSecs
		_c.mutation.SetDurationSecs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AttemptEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AttemptEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "AttemptEvent.attempt_id"`)}
	}
	if v, ok := _c.mutation.AttemptID(); ok {
		if err := attemptevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.attempt_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExamID(); !ok {
		return &ValidationError{Name: "exam_id", err: errors.New(`ent: missing required field "AttemptEvent.exam_id"`)}
	}
	if v, ok := _c.mutation.ExamID(); ok {
		if err := attemptevent.ExamIDValidator(v); err != nil {
			return &ValidationError{Name: "exam_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.exam_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExamName(); !ok {
		return &ValidationError{Name: "exam_name", err: errors.New(`ent: missing required field "AttemptEvent.exam_name"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "AttemptEvent.score"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "AttemptEvent.correct"`)}
	}
	if _, ok := _c.mutation.Wrong(); !ok {
		return &ValidationError{Name: "wrong", err: errors.New(`ent: missing required field "AttemptEvent.wrong"`)}
	}
	if _, ok := _c.mutation.Unanswered(); !ok {
		return &ValidationError{Name: "unanswered", err: errors.New(`ent: missing required field "AttemptEvent.unanswered"`)}
	}
	if _, ok := _c.mutation.QuestionCount(); !ok {
		return &ValidationError{Name: "question_count", err: errors.New(`ent: missing required field "AttemptEvent.question_count"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "AttemptEvent.duration_secs"`)}
	}
	return nil
}

func (_c *AttemptEventCreate) sqlSave(ctx context.Context) (*AttemptEvent, error) {
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

func (_c *AttemptEventCreate) createSpec() (*AttemptEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AttemptEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attemptevent.Table, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(attemptevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(attemptevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.AttemptID(); ok {
		_spec.SetField(attemptevent.FieldAttemptID, field.TypeString, value)
		_node.AttemptID = value
	}
	if value, ok := _c.mutation.ExamID(); ok {
		_spec.SetField(attemptevent.FieldExamID, field.TypeString, value)
		_node.ExamID = value
	}
	if value, ok := _c.mutation.ExamName(); ok {
		_spec.SetField(attemptevent.FieldExamName, field.TypeString, value)
		_node.ExamName = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(attemptevent.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeInt, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Wrong(); ok {
		_spec.SetField(attemptevent.FieldWrong, field.TypeInt, value)
		_node.Wrong = value
	}
	if value, ok := _c.mutation.Unanswered(); ok {
		_spec.SetField(attemptevent.FieldUnanswered, field.TypeInt, value)
		_node.Unanswered = value
	}
	if value, ok := _c.mutation.QuestionCount(); ok {
		_spec.SetField(attemptevent.FieldQuestionCount, field.TypeInt, value)
		_node.QuestionCount = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(attemptevent.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	return _node, _spec
}

// AttemptEventCreateBulk is the builder for creating many AttemptEvent entities in bulk.
type AttemptEventCreateBulk struct {
	config
	err      error
	builders []*AttemptEventCreate
}

// Save creates the AttemptEvent entities in the database.
func (_c *AttemptEventCreateBulk) Save(ctx context.Context) ([]*AttemptEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AttemptEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptEventMutation)
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
func (_c *AttemptEventCreateBulk) SaveX(ctx context.Context) []*AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cylin/examdrill/ent/attemptevent"
	"github.com/cylin/examdrill/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *AttemptEventUpdate) SetAttemptID(v string) *AttemptEventUpdate {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableAttemptID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetExamID sets the "exam_id" field.
func (_u *AttemptEventUpdate) SetExamID(v string) *AttemptEventUpdate {
	_u.mutation.SetExamID(v)
	return _u
}

// SetNillableExamID sets the "exam_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableExamID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetExamID(*v)
	}
	return _u
}

// SetExamName sets the "exam_name" field.
func (_u *AttemptEventUpdate) SetExamName(v string) *AttemptEventUpdate {
	_u.mutation.SetExamName(v)
	return _u
}

// SetNillableExamName sets the "exam_name" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableExamName(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetExamName(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AttemptEventUpdate) SetScore(v float64) *AttemptEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableScore(v *float64) *AttemptEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AttemptEventUpdate) AddScore(v float64) *AttemptEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AttemptEventUpdate) SetCorrect(v int) *AttemptEventUpdate {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableCorrect(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *AttemptEventUpdate) AddCorrect(v int) *AttemptEventUpdate {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetWrong sets the "wrong" field.
func (_u *AttemptEventUpdate) SetWrong(v int) *AttemptEventUpdate {
	_u.mutation.ResetWrong()
	_u.mutation.SetWrong(v)
	return _u
}

// SetNillableWrong sets the "wrong" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableWrong(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetWrong(*v)
	}
	return _u
}

// AddWrong adds value to the "wrong" field.
func (_u *AttemptEventUpdate) AddWrong(v int) *AttemptEventUpdate {
	_u.mutation.AddWrong(v)
	return _u
}

// SetUnanswered sets the "unanswered" field.
func (_u *AttemptEventUpdate) SetUnanswered(v int) *AttemptEventUpdate {
	_u.mutation.ResetUnanswered()
	_u.mutation.SetUnanswered(v)
	return _u
}

// SetNillableUnanswered sets the "unanswered" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableUnanswered(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetUnanswered(*v)
	}
	return _u
}

// AddUnanswered adds value to the "unanswered" field.
func (_u *AttemptEventUpdate) AddUnanswered(v int) *AttemptEventUpdate {
	_u.mutation.AddUnanswered(v)
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *AttemptEventUpdate) SetQuestionCount(v int) *AttemptEventUpdate {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableQuestionCount(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *AttemptEventUpdate) AddQuestionCount(v int) *AttemptEventUpdate {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *AttemptEventUpdate) SetDurationSecs(v int) *AttemptEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableDurationSecs(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *AttemptEventUpdate) AddDurationSecs(v int) *AttemptEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := attemptevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExamID(); ok {
		if err := attemptevent.ExamIDValidator(v); err != nil {
			return &ValidationError{Name: "exam_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.exam_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(attemptevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExamID(); ok {
		_spec.SetField(attemptevent.FieldExamID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExamName(); ok {
		_spec.SetField(attemptevent.FieldExamName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(attemptevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(attemptevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(attemptevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Wrong(); ok {
		_spec.SetField(attemptevent.FieldWrong, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWrong(); ok {
		_spec.AddField(attemptevent.FieldWrong, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Unanswered(); ok {
		_spec.SetField(attemptevent.FieldUnanswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnanswered(); ok {
		_spec.AddField(attemptevent.FieldUnanswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(attemptevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(attemptevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(attemptevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(attemptevent.FieldDurationSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetAttemptID sets the "attempt_id" field.
func (_u *AttemptEventUpdateOne) SetAttemptID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableAttemptID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetExamID sets the "exam_id" field.
func (_u *AttemptEventUpdateOne) SetExamID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetExamID(v)
	return _u
}

// SetNillableExamID sets the "exam_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableExamID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetExamID(*v)
	}
	return _u
}

// SetExamName sets the "exam_name" field.
func (_u *AttemptEventUpdateOne) SetExamName(v string) *AttemptEventUpdateOne {
	_u.mutation.SetExamName(v)
	return _u
}

// SetNillableExamName sets the "exam_name" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableExamName(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetExamName(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AttemptEventUpdateOne) SetScore(v float64) *AttemptEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableScore(v *float64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AttemptEventUpdateOne) AddScore(v float64) *AttemptEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AttemptEventUpdateOne) SetCorrect(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableCorrect(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *AttemptEventUpdateOne) AddCorrect(v int) *AttemptEventUpdateOne {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetWrong sets the "wrong" field.
func (_u *AttemptEventUpdateOne) SetWrong(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetWrong()
	_u.mutation.SetWrong(v)
	return _u
}

// SetNillableWrong sets the "wrong" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableWrong(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetWrong(*v)
	}
	return _u
}

// AddWrong adds value to the "wrong" field.
func (_u *AttemptEventUpdateOne) AddWrong(v int) *AttemptEventUpdateOne {
	_u.mutation.AddWrong(v)
	return _u
}

// SetUnanswered sets the "unanswered" field.
func (_u *AttemptEventUpdateOne) SetUnanswered(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetUnanswered()
	_u.mutation.SetUnanswered(v)
	return _u
}

// SetNillableUnanswered sets the "unanswered" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableUnanswered(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetUnanswered(*v)
	}
	return _u
}

// AddUnanswered adds value to the "unanswered" field.
func (_u *AttemptEventUpdateOne) AddUnanswered(v int) *AttemptEventUpdateOne {
	_u.mutation.AddUnanswered(v)
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *AttemptEventUpdateOne) SetQuestionCount(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableQuestionCount(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *AttemptEventUpdateOne) AddQuestionCount(v int) *AttemptEventUpdateOne {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *AttemptEventUpdateOne) SetDurationSecs(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableDurationSecs(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *AttemptEventUpdateOne) AddDurationSecs(v int) *AttemptEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := attemptevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExamID(); ok {
		if err := attemptevent.ExamIDValidator(v); err != nil {
			return &ValidationError{Name: "exam_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.exam_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
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
		_spec.SetField(attemptevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExamID(); ok {
		_spec.SetField(attemptevent.FieldExamID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExamName(); ok {
		_spec.SetField(attemptevent.FieldExamName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(attemptevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(attemptevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(attemptevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Wrong(); ok {
		_spec.SetField(attemptevent.FieldWrong, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWrong(); ok {
		_spec.AddField(attemptevent.FieldWrong, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Unanswered(); ok {
		_spec.SetField(attemptevent.FieldUnanswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnanswered(); ok {
		_spec.AddField(attemptevent.FieldUnanswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(attemptevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(attemptevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(attemptevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(attemptevent.FieldDurationSecs, field.TypeInt, value)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

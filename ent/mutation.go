// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cylin/examdrill/ent/answerevent"
	"github.com/cylin/examdrill/ent/attemptevent"
	"github.com/cylin/examdrill/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnswerEvent  = "AnswerEvent"
	TypeAttemptEvent = "AttemptEvent"
)

// AnswerEventMutation represents an operation that mutates the AnswerEvent nodes in the graph.
type AnswerEventMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	sequence           *int64
	addsequence        *int64
	timestamp          *time.Time
	attempt_id         *string
	question_number    *int
	addquestion_number *int
	given              *string
	want               *string
	correct            *bool
	marked             *bool
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*AnswerEvent, error)
	predicates         []predicate.AnswerEvent
}

var _ ent.Mutation = (*AnswerEventMutation)(nil)

// answereventOption allows management of the mutation configuration using functional options.
type answereventOption func(*AnswerEventMutation)

// newAnswerEventMutation creates new mutation for the AnswerEvent entity.
func newAnswerEventMutation(c config, op Op, opts ...answereventOption) *AnswerEventMutation {
	m := &AnswerEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAnswerEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnswerEventID sets the ID field of the mutation.
func withAnswerEventID(id int) answereventOption {
	return func(m *AnswerEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AnswerEvent
		)
		m.oldValue = func(ctx context.Context) (*AnswerEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnswerEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnswerEvent sets the old AnswerEvent of the mutation.
func withAnswerEvent(node *AnswerEvent) answereventOption {
	return func(m *AnswerEventMutation) {
		m.oldValue = func(context.Context) (*AnswerEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnswerEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnswerEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnswerEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnswerEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnswerEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *AnswerEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *AnswerEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *AnswerEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *AnswerEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *AnswerEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AnswerEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AnswerEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AnswerEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetAttemptID sets the "attempt_id" field.
func (m *AnswerEventMutation) SetAttemptID(s string) {
	m.attempt_id = &s
}

// AttemptID returns the value of the "attempt_id" field in the mutation.
func (m *AnswerEventMutation) AttemptID() (r string, exists bool) {
	v := m.attempt_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptID returns the old "attempt_id" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldAttemptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptID: %w", err)
	}
	return oldValue.AttemptID, nil
}

// ResetAttemptID resets all changes to the "attempt_id" field.
func (m *AnswerEventMutation) ResetAttemptID() {
	m.attempt_id = nil
}

// SetQuestionNumber sets the "question_number" field.
func (m *AnswerEventMutation) SetQuestionNumber(i int) {
	m.question_number = &i
	m.addquestion_number = nil
}

// QuestionNumber returns the value of the "question_number" field in the mutation.
func (m *AnswerEventMutation) QuestionNumber() (r int, exists bool) {
	v := m.question_number
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionNumber returns the old "question_number" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldQuestionNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionNumber: %w", err)
	}
	return oldValue.QuestionNumber, nil
}

// AddQuestionNumber adds i to the "question_number" field.
func (m *AnswerEventMutation) AddQuestionNumber(i int) {
	if m.addquestion_number != nil {
		*m.addquestion_number += i
	} else {
		m.addquestion_number = &i
	}
}

// AddedQuestionNumber returns the value that was added to the "question_number" field in this mutation.
func (m *AnswerEventMutation) AddedQuestionNumber() (r int, exists bool) {
	v := m.addquestion_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionNumber resets all changes to the "question_number" field.
func (m *AnswerEventMutation) ResetQuestionNumber() {
	m.question_number = nil
	m.addquestion_number = nil
}

// SetGiven sets the "given" field.
func (m *AnswerEventMutation) SetGiven(s string) {
	m.given = &s
}

// Given returns the value of the "given" field in the mutation.
func (m *AnswerEventMutation) Given() (r string, exists bool) {
	v := m.given
	if v == nil {
		return
	}
	return *v, true
}

// OldGiven returns the old "given" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldGiven(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGiven is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGiven requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGiven: %w", err)
	}
	return oldValue.Given, nil
}

// ResetGiven resets all changes to the "given" field.
func (m *AnswerEventMutation) ResetGiven() {
	m.given = nil
}

// SetWant sets the "want" field.
func (m *AnswerEventMutation) SetWant(s string) {
	m.want = &s
}

// Want returns the value of the "want" field in the mutation.
func (m *AnswerEventMutation) Want() (r string, exists bool) {
	v := m.want
	if v == nil {
		return
	}
	return *v, true
}

// OldWant returns the old "want" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldWant(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWant: %w", err)
	}
	return oldValue.Want, nil
}

// ResetWant resets all changes to the "want" field.
func (m *AnswerEventMutation) ResetWant() {
	m.want = nil
}

// SetCorrect sets the "correct" field.
func (m *AnswerEventMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *AnswerEventMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *AnswerEventMutation) ResetCorrect() {
	m.correct = nil
}

// SetMarked sets the "marked" field.
func (m *AnswerEventMutation) SetMarked(b bool) {
	m.marked = &b
}

// Marked returns the value of the "marked" field in the mutation.
func (m *AnswerEventMutation) Marked() (r bool, exists bool) {
	v := m.marked
	if v == nil {
		return
	}
	return *v, true
}

// OldMarked returns the old "marked" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldMarked(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarked: %w", err)
	}
	return oldValue.Marked, nil
}

// ResetMarked resets all changes to the "marked" field.
func (m *AnswerEventMutation) ResetMarked() {
	m.marked = nil
}

// Where appends a list predicates to the AnswerEventMutation builder.
func (m *AnswerEventMutation) Where(ps ...predicate.AnswerEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnswerEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnswerEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnswerEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnswerEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnswerEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnswerEvent).
func (m *AnswerEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnswerEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.sequence != nil {
		fields = append(fields, answerevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, answerevent.FieldTimestamp)
	}
	if m.attempt_id != nil {
		fields = append(fields, answerevent.FieldAttemptID)
	}
	if m.question_number != nil {
		fields = append(fields, answerevent.FieldQuestionNumber)
	}
	if m.given != nil {
		fields = append(fields, answerevent.FieldGiven)
	}
	if m.want != nil {
		fields = append(fields, answerevent.FieldWant)
	}
	if m.correct != nil {
		fields = append(fields, answerevent.FieldCorrect)
	}
	if m.marked != nil {
		fields = append(fields, answerevent.FieldMarked)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnswerEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case answerevent.FieldSequence:
		return m.Sequence()
	case answerevent.FieldTimestamp:
		return m.Timestamp()
	case answerevent.FieldAttemptID:
		return m.AttemptID()
	case answerevent.FieldQuestionNumber:
		return m.QuestionNumber()
	case answerevent.FieldGiven:
		return m.Given()
	case answerevent.FieldWant:
		return m.Want()
	case answerevent.FieldCorrect:
		return m.Correct()
	case answerevent.FieldMarked:
		return m.Marked()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnswerEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case answerevent.FieldSequence:
		return m.OldSequence(ctx)
	case answerevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case answerevent.FieldAttemptID:
		return m.OldAttemptID(ctx)
	case answerevent.FieldQuestionNumber:
		return m.OldQuestionNumber(ctx)
	case answerevent.FieldGiven:
		return m.OldGiven(ctx)
	case answerevent.FieldWant:
		return m.OldWant(ctx)
	case answerevent.FieldCorrect:
		return m.OldCorrect(ctx)
	case answerevent.FieldMarked:
		return m.OldMarked(ctx)
	}
	return nil, fmt.Errorf("unknown AnswerEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case answerevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case answerevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case answerevent.FieldAttemptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptID(v)
		return nil
	case answerevent.FieldQuestionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionNumber(v)
		return nil
	case answerevent.FieldGiven:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGiven(v)
		return nil
	case answerevent.FieldWant:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWant(v)
		return nil
	case answerevent.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case answerevent.FieldMarked:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarked(v)
		return nil
	}
	return fmt.Errorf("unknown AnswerEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnswerEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, answerevent.FieldSequence)
	}
	if m.addquestion_number != nil {
		fields = append(fields, answerevent.FieldQuestionNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnswerEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case answerevent.FieldSequence:
		return m.AddedSequence()
	case answerevent.FieldQuestionNumber:
		return m.AddedQuestionNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case answerevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case answerevent.FieldQuestionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionNumber(v)
		return nil
	}
	return fmt.Errorf("unknown AnswerEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnswerEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnswerEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnswerEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AnswerEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnswerEventMutation) ResetField(name string) error {
	switch name {
	case answerevent.FieldSequence:
		m.ResetSequence()
		return nil
	case answerevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case answerevent.FieldAttemptID:
		m.ResetAttemptID()
		return nil
	case answerevent.FieldQuestionNumber:
		m.ResetQuestionNumber()
		return nil
	case answerevent.FieldGiven:
		m.ResetGiven()
		return nil
	case answerevent.FieldWant:
		m.ResetWant()
		return nil
	case answerevent.FieldCorrect:
		m.ResetCorrect()
		return nil
	case answerevent.FieldMarked:
		m.ResetMarked()
		return nil
	}
	return fmt.Errorf("unknown AnswerEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnswerEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnswerEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnswerEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnswerEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnswerEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnswerEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnswerEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AnswerEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnswerEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AnswerEvent edge %s", name)
}

// AttemptEventMutation represents an operation that mutates the AttemptEvent nodes in the graph.
type AttemptEventMutation struct {
	config
	op                Op
	typ               string
	id                *int
	sequence          *int64
	addsequence       *int64
	timestamp         *time.Time
	attempt_id        *string
	exam_id           *string
	exam_name         *string
	score             *float64
	addscore          *float64
	correct           *int
	addcorrect        *int
	wrong             *int
	addwrong          *int
	unanswered        *int
	addunanswered     *int
	question_count    *int
	addquestion_count *int
	duration_secs     *int
	addduration_secs  *int
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*AttemptEvent, error)
	predicates        []predicate.AttemptEvent
}

var _ ent.Mutation = (*AttemptEventMutation)(nil)

// attempteventOption allows management of the mutation configuration using functional options.
type attempteventOption func(*AttemptEventMutation)

// newAttemptEventMutation creates new mutation for the AttemptEvent entity.
func newAttemptEventMutation(c config, op Op, opts ...attempteventOption) *AttemptEventMutation {
	m := &AttemptEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAttemptEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAttemptEventID sets the ID field of the mutation.
func withAttemptEventID(id int) attempteventOption {
	return func(m *AttemptEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AttemptEvent
		)
		m.oldValue = func(ctx context.Context) (*AttemptEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AttemptEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAttemptEvent sets the old AttemptEvent of the mutation.
func withAttemptEvent(node *AttemptEvent) attempteventOption {
	return func(m *AttemptEventMutation) {
		m.oldValue = func(context.Context) (*AttemptEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AttemptEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AttemptEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AttemptEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AttemptEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AttemptEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *AttemptEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *AttemptEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *AttemptEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *AttemptEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *AttemptEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AttemptEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AttemptEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AttemptEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetAttemptID sets the "attempt_id" field.
func (m *AttemptEventMutation) SetAttemptID(s string) {
	m.attempt_id = &s
}

// AttemptID returns the value of the "attempt_id" field in the mutation.
func (m *AttemptEventMutation) AttemptID() (r string, exists bool) {
	v := m.attempt_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptID returns the old "attempt_id" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldAttemptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptID: %w", err)
	}
	return oldValue.AttemptID, nil
}

// ResetAttemptID resets all changes to the "attempt_id" field.
func (m *AttemptEventMutation) ResetAttemptID() {
	m.attempt_id = nil
}

// SetExamID sets the "exam_id" field.
func (m *AttemptEventMutation) SetExamID(s string) {
	m.exam_id = &s
}

// ExamID returns the value of the "exam_id" field in the mutation.
func (m *AttemptEventMutation) ExamID() (r string, exists bool) {
	v := m.exam_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExamID returns the old "exam_id" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldExamID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExamID: %w", err)
	}
	return oldValue.ExamID, nil
}

// ResetExamID resets all changes to the "exam_id" field.
func (m *AttemptEventMutation) ResetExamID() {
	m.exam_id = nil
}

// SetExamName sets the "exam_name" field.
func (m *AttemptEventMutation) SetExamName(s string) {
	m.exam_name = &s
}

// ExamName returns the value of the "exam_name" field in the mutation.
func (m *AttemptEventMutation) ExamName() (r string, exists bool) {
	v := m.exam_name
	if v == nil {
		return
	}
	return *v, true
}

// OldExamName returns the old "exam_name" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldExamName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExamName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExamName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExamName: %w", err)
	}
	return oldValue.ExamName, nil
}

// ResetExamName resets all changes to the "exam_name" field.
func (m *AttemptEventMutation) ResetExamName() {
	m.exam_name = nil
}

// SetScore sets the "score" field.
func (m *AttemptEventMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *AttemptEventMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *AttemptEventMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *AttemptEventMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *AttemptEventMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetCorrect sets the "correct" field.
func (m *AttemptEventMutation) SetCorrect(i int) {
	m.correct = &i
	m.addcorrect = nil
}

// Correct returns the value of the "correct" field in the mutation.
func (m *AttemptEventMutation) Correct() (r int, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldCorrect(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// AddCorrect adds i to the "correct" field.
func (m *AttemptEventMutation) AddCorrect(i int) {
	if m.addcorrect != nil {
		*m.addcorrect += i
	} else {
		m.addcorrect = &i
	}
}

// AddedCorrect returns the value that was added to the "correct" field in this mutation.
func (m *AttemptEventMutation) AddedCorrect() (r int, exists bool) {
	v := m.addcorrect
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrect resets all changes to the "correct" field.
func (m *AttemptEventMutation) ResetCorrect() {
	m.correct = nil
	m.addcorrect = nil
}

// SetWrong sets the "wrong" field.
func (m *AttemptEventMutation) SetWrong(i int) {
	m.wrong = &i
	m.addwrong = nil
}

// Wrong returns the value of the "wrong" field in the mutation.
func (m *AttemptEventMutation) Wrong() (r int, exists bool) {
	v := m.wrong
	if v == nil {
		return
	}
	return *v, true
}

// OldWrong returns the old "wrong" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldWrong(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWrong is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWrong requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWrong: %w", err)
	}
	return oldValue.Wrong, nil
}

// AddWrong adds i to the "wrong" field.
func (m *AttemptEventMutation) AddWrong(i int) {
	if m.addwrong != nil {
		*m.addwrong += i
	} else {
		m.addwrong = &i
	}
}

// AddedWrong returns the value that was added to the "wrong" field in this mutation.
func (m *AttemptEventMutation) AddedWrong() (r int, exists bool) {
	v := m.addwrong
	if v == nil {
		return
	}
	return *v, true
}

// ResetWrong resets all changes to the "wrong" field.
func (m *AttemptEventMutation) ResetWrong() {
	m.wrong = nil
	m.addwrong = nil
}

// SetUnanswered sets the "unanswered" field.
func (m *AttemptEventMutation) SetUnanswered(i int) {
	m.unanswered = &i
	m.addunanswered = nil
}

// Unanswered returns the value of the "unanswered" field in the mutation.
func (m *AttemptEventMutation) Unanswered() (r int, exists bool) {
	v := m.unanswered
	if v == nil {
		return
	}
	return *v, true
}

// OldUnanswered returns the old "unanswered" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldUnanswered(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnanswered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnanswered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnanswered: %w", err)
	}
	return oldValue.Unanswered, nil
}

// AddUnanswered adds i to the "unanswered" field.
func (m *AttemptEventMutation) AddUnanswered(i int) {
	if m.addunanswered != nil {
		*m.addunanswered += i
	} else {
		m.addunanswered = &i
	}
}

// AddedUnanswered returns the value that was added to the "unanswered" field in this mutation.
func (m *AttemptEventMutation) AddedUnanswered() (r int, exists bool) {
	v := m.addunanswered
	if v == nil {
		return
	}
	return *v, true
}

// ResetUnanswered resets all changes to the "unanswered" field.
func (m *AttemptEventMutation) ResetUnanswered() {
	m.unanswered = nil
	m.addunanswered = nil
}

// SetQuestionCount sets the "question_count" field.
func (m *AttemptEventMutation) SetQuestionCount(i int) {
	m.question_count = &i
	m.addquestion_count = nil
}

// QuestionCount returns the value of the "question_count" field in the mutation.
func (m *AttemptEventMutation) QuestionCount() (r int, exists bool) {
	v := m.question_count
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionCount returns the old "question_count" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldQuestionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionCount: %w", err)
	}
	return oldValue.QuestionCount, nil
}

// AddQuestionCount adds i to the "question_count" field.
func (m *AttemptEventMutation) AddQuestionCount(i int) {
	if m.addquestion_count != nil {
		*m.addquestion_count += i
	} else {
		m.addquestion_count = &i
	}
}

// AddedQuestionCount returns the value that was added to the "question_count" field in this mutation.
func (m *AttemptEventMutation) AddedQuestionCount() (r int, exists bool) {
	v := m.addquestion_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionCount resets all changes to the "question_count" field.
func (m *AttemptEventMutation) ResetQuestionCount() {
	m.question_count = nil
	m.addquestion_count = nil
}

// SetDurationSecs sets the "duration_secs" field.
func (m *AttemptEventMutation) SetDurationSecs(i int) {
	m.duration_secs = &i
	m.addduration_secs = nil
}

// DurationSecs returns the value of the "duration_secs" field in the mutation.
func (m *AttemptEventMutation) DurationSecs() (r int, exists bool) {
	v := m.duration_secs
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSecs returns the old "duration_secs" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldDurationSecs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSecs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSecs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSecs: %w", err)
	}
	return oldValue.DurationSecs, nil
}

// AddDurationSecs adds i to the "duration_secs" field.
func (m *AttemptEventMutation) AddDurationSecs(i int) {
	if m.addduration_secs != nil {
		*m.addduration_secs += i
	} else {
		m.addduration_secs = &i
	}
}

// AddedDurationSecs returns the value that was added to the "duration_secs" field in this mutation.
func (m *AttemptEventMutation) AddedDurationSecs() (r int, exists bool) {
	v := m.addduration_secs
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationSecs resets all changes to the "duration_secs" field.
func (m *AttemptEventMutation) ResetDurationSecs() {
	m.duration_secs = nil
	m.addduration_secs = nil
}

// Where appends a list predicates to the AttemptEventMutation builder.
func (m *AttemptEventMutation) Where(ps ...predicate.AttemptEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AttemptEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AttemptEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AttemptEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AttemptEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AttemptEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AttemptEvent).
func (m *AttemptEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AttemptEventMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.sequence != nil {
		fields = append(fields, attemptevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, attemptevent.FieldTimestamp)
	}
	if m.attempt_id != nil {
		fields = append(fields, attemptevent.FieldAttemptID)
	}
	if m.exam_id != nil {
		fields = append(fields, attemptevent.FieldExamID)
	}
	if m.exam_name != nil {
		fields = append(fields, attemptevent.FieldExamName)
	}
	if m.score != nil {
		fields = append(fields, attemptevent.FieldScore)
	}
	if m.correct != nil {
		fields = append(fields, attemptevent.FieldCorrect)
	}
	if m.wrong != nil {
		fields = append(fields, attemptevent.FieldWrong)
	}
	if m.unanswered != nil {
		fields = append(fields, attemptevent.FieldUnanswered)
	}
	if m.question_count != nil {
		fields = append(fields, attemptevent.FieldQuestionCount)
	}
	if m.duration_secs != nil {
		fields = append(fields, attemptevent.FieldDurationSecs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AttemptEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case attemptevent.FieldSequence:
		return m.Sequence()
	case attemptevent.FieldTimestamp:
		return m.Timestamp()
	case attemptevent.FieldAttemptID:
		return m.AttemptID()
	case attemptevent.FieldExamID:
		return m.ExamID()
	case attemptevent.FieldExamName:
		return m.ExamName()
	case attemptevent.FieldScore:
		return m.Score()
	case attemptevent.FieldCorrect:
		return m.Correct()
	case attemptevent.FieldWrong:
		return m.Wrong()
	case attemptevent.FieldUnanswered:
		return m.Unanswered()
	case attemptevent.FieldQuestionCount:
		return m.QuestionCount()
	case attemptevent.FieldDurationSecs:
		return m.DurationSecs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AttemptEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case attemptevent.FieldSequence:
		return m.OldSequence(ctx)
	case attemptevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case attemptevent.FieldAttemptID:
		return m.OldAttemptID(ctx)
	case attemptevent.FieldExamID:
		return m.OldExamID(ctx)
	case attemptevent.FieldExamName:
		return m.OldExamName(ctx)
	case attemptevent.FieldScore:
		return m.OldScore(ctx)
	case attemptevent.FieldCorrect:
		return m.OldCorrect(ctx)
	case attemptevent.FieldWrong:
		return m.OldWrong(ctx)
	case attemptevent.FieldUnanswered:
		return m.OldUnanswered(ctx)
	case attemptevent.FieldQuestionCount:
		return m.OldQuestionCount(ctx)
	case attemptevent.FieldDurationSecs:
		return m.OldDurationSecs(ctx)
	}
	return nil, fmt.Errorf("unknown AttemptEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case attemptevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case attemptevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case attemptevent.FieldAttemptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptID(v)
		return nil
	case attemptevent.FieldExamID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExamID(v)
		return nil
	case attemptevent.FieldExamName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExamName(v)
		return nil
	case attemptevent.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case attemptevent.FieldCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case attemptevent.FieldWrong:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWrong(v)
		return nil
	case attemptevent.FieldUnanswered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnanswered(v)
		return nil
	case attemptevent.FieldQuestionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionCount(v)
		return nil
	case attemptevent.FieldDurationSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSecs(v)
		return nil
	}
	return fmt.Errorf("unknown AttemptEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AttemptEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, attemptevent.FieldSequence)
	}
	if m.addscore != nil {
		fields = append(fields, attemptevent.FieldScore)
	}
	if m.addcorrect != nil {
		fields = append(fields, attemptevent.FieldCorrect)
	}
	if m.addwrong != nil {
		fields = append(fields, attemptevent.FieldWrong)
	}
	if m.addunanswered != nil {
		fields = append(fields, attemptevent.FieldUnanswered)
	}
	if m.addquestion_count != nil {
		fields = append(fields, attemptevent.FieldQuestionCount)
	}
	if m.addduration_secs != nil {
		fields = append(fields, attemptevent.FieldDurationSecs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AttemptEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case attemptevent.FieldSequence:
		return m.AddedSequence()
	case attemptevent.FieldScore:
		return m.AddedScore()
	case attemptevent.FieldCorrect:
		return m.AddedCorrect()
	case attemptevent.FieldWrong:
		return m.AddedWrong()
	case attemptevent.FieldUnanswered:
		return m.AddedUnanswered()
	case attemptevent.FieldQuestionCount:
		return m.AddedQuestionCount()
	case attemptevent.FieldDurationSecs:
		return m.AddedDurationSecs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case attemptevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case attemptevent.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case attemptevent.FieldCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrect(v)
		return nil
	case attemptevent.FieldWrong:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWrong(v)
		return nil
	case attemptevent.FieldUnanswered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUnanswered(v)
		return nil
	case attemptevent.FieldQuestionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionCount(v)
		return nil
	case attemptevent.FieldDurationSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSecs(v)
		return nil
	}
	return fmt.Errorf("unknown AttemptEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AttemptEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AttemptEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AttemptEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AttemptEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AttemptEventMutation) ResetField(name string) error {
	switch name {
	case attemptevent.FieldSequence:
		m.ResetSequence()
		return nil
	case attemptevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case attemptevent.FieldAttemptID:
		m.ResetAttemptID()
		return nil
	case attemptevent.FieldExamID:
		m.ResetExamID()
		return nil
	case attemptevent.FieldExamName:
		m.ResetExamName()
		return nil
	case attemptevent.FieldScore:
		m.ResetScore()
		return nil
	case attemptevent.FieldCorrect:
		m.ResetCorrect()
		return nil
	case attemptevent.FieldWrong:
		m.ResetWrong()
		return nil
	case attemptevent.FieldUnanswered:
		m.ResetUnanswered()
		return nil
	case attemptevent.FieldQuestionCount:
		m.ResetQuestionCount()
		return nil
	case attemptevent.FieldDurationSecs:
		m.ResetDurationSecs()
		return nil
	}
	return fmt.Errorf("unknown AttemptEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AttemptEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AttemptEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AttemptEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AttemptEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AttemptEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AttemptEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AttemptEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AttemptEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AttemptEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AttemptEvent edge %s", name)
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cylin/examdrill/ent/answerevent"
)

// AnswerEvent is the model entity for the AnswerEvent schema.
type AnswerEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID of the parent attempt
	AttemptID string `json:"attempt_id,omitempty"`
	// 1-based question number within the exam
	QuestionNumber int `json:"question_number,omitempty"`
	// Labels the user selected, joined; empty if skipped
	Given string `json:"given,omitempty"`
	// Correct answer labels, joined
	Want string `json:"want,omitempty"`
	// Correct holds the value of the "correct" field.
	Correct bool `json:"correct,omitempty"`
	// Whether the question was flagged for review
	Marked       bool `json:"marked,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnswerEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case answerevent.FieldCorrect, answerevent.FieldMarked:
			values[i] = new(sql.NullBool)
		case answerevent.FieldID, answerevent.FieldSequence, answerevent.FieldQuestionNumber:
			values[i] = new(sql.NullInt64)
		case answerevent.FieldAttemptID, answerevent.FieldGiven, answerevent.FieldWant:
			values[i] = new(sql.NullString)
		case answerevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnswerEvent fields.
func (_m *AnswerEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case answerevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case answerevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case answerevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case answerevent.FieldAttemptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_id", values[i])
			} else if value.Valid {
				_m.AttemptID = value.String
			}
		case answerevent.FieldQuestionNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_number", values[i])
			} else if value.Valid {
				_m.QuestionNumber = int(value.Int64)
			}
		case answerevent.FieldGiven:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field given", values[i])
			} else if value.Valid {
				_m.Given = value.String
			}
		case answerevent.FieldWant:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field want", values[i])
			} else if value.Valid {
				_m.Want = value.String
			}
		case answerevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.Bool
			}
		case answerevent.FieldMarked:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field marked", values[i])
			} else if value.Valid {
				_m.Marked = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnswerEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AnswerEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AnswerEvent.
// Note that you need to call AnswerEvent.Unwrap() before calling this method if this AnswerEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnswerEvent) Update() *AnswerEventUpdateOne {
	return NewAnswerEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnswerEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnswerEvent) Unwrap() *AnswerEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnswerEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnswerEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AnswerEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("attempt_id=")
	builder.WriteString(_m.AttemptID)
	builder.WriteString(", ")
	builder.WriteString("question_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionNumber))
	builder.WriteString(", ")
	builder.WriteString("given=")
	builder.WriteString(_m.Given)
	builder.WriteString(", ")
	builder.WriteString("want=")
	builder.WriteString(_m.Want)
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("marked=")
	builder.WriteString(fmt.Sprintf("%v", _m.Marked))
	builder.WriteByte(')')
	return builder.String()
}

// AnswerEvents is a parsable slice of AnswerEvent.
type AnswerEvents []*AnswerEvent

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cylin/examdrill/ent/attemptevent"
)

// AttemptEvent is the model entity for the AttemptEvent schema.
type AttemptEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID grouping the attempt's answer events
	AttemptID string `json:"attempt_id,omitempty"`
	// Catalog id of the exam
	ExamID string `json:"exam_id,omitempty"`
	// Display name of the exam at submission time
	ExamName string `json:"exam_name,omitempty"`
	// Final score; may be negative, one decimal shown
	Score float64 `json:"score,omitempty"`
	// Correct holds the value of the "correct" field.
	Correct int `json:"correct,omitempty"`
	// Answered but incorrect
	Wrong int `json:"wrong,omitempty"`
	// Unanswered holds the value of the "unanswered" field.
	Unanswered int `json:"unanswered,omitempty"`
	// QuestionCount holds the value of the "question_count" field.
	QuestionCount int `json:"question_count,omitempty"`
	// Seconds from session start to submission
	DurationSecs int `json:"duration_secs,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AttemptEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case attemptevent.FieldScore:
			values[i] = new(sql.NullFloat64)
		case attemptevent.FieldID, attemptevent.FieldSequence, attemptevent.FieldCorrect, attemptevent.FieldWrong, attemptevent.FieldUnanswered, attemptevent.FieldQuestionCount, attemptevent.FieldDurationSecs:
			values[i] = new(sql.NullInt64)
		case attemptevent.FieldAttemptID, attemptevent.FieldExamID, attemptevent.FieldExamName:
			values[i] = new(sql.NullString)
		case attemptevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AttemptEvent fields.
func (_m *AttemptEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case attemptevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case attemptevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case attemptevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case attemptevent.FieldAttemptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_id", values[i])
			} else if value.Valid {
				_m.AttemptID = value.String
			}
		case attemptevent.FieldExamID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field exam_id", values[i])
			} else if value.Valid {
				_m.ExamID = value.String
			}
		case attemptevent.FieldExamName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field exam_name", values[i])
			} else if value.Valid {
				_m.ExamName = value.String
			}
		case attemptevent.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case attemptevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = int(value.Int64)
			}
		case attemptevent.FieldWrong:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field wrong", values[i])
			} else if value.Valid {
				_m.Wrong = int(value.Int64)
			}
		case attemptevent.FieldUnanswered:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field unanswered", values[i])
			} else if value.Valid {
				_m.Unanswered = int(value.Int64)
			}
		case attemptevent.FieldQuestionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_count", values[i])
			} else if value.Valid {
				_m.QuestionCount = int(value.Int64)
			}
		case attemptevent.FieldDurationSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_secs", values[i])
			} else if value.Valid {
				_m.DurationSecs = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AttemptEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AttemptEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AttemptEvent.
// Note that you need to call AttemptEvent.Unwrap() before calling this method if this AttemptEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AttemptEvent) Update() *AttemptEventUpdateOne {
	return NewAttemptEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AttemptEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AttemptEvent) Unwrap() *AttemptEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AttemptEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AttemptEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AttemptEvent(")
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
	builder.WriteString("exam_id=")
	builder.WriteString(_m.ExamID)
	builder.WriteString(", ")
	builder.WriteString("exam_name=")
	builder.WriteString(_m.ExamName)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("wrong=")
	builder.WriteString(fmt.Sprintf("%v", _m.Wrong))
	builder.WriteString(", ")
	builder.WriteString("unanswered=")
	builder.WriteString(fmt.Sprintf("%v", _m.Unanswered))
	builder.WriteString(", ")
	builder.WriteString("question_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionCount))
	builder.WriteString(", ")
	builder.WriteString("duration_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationSecs))
	builder.WriteByte(')')
	return builder.String()
}

// AttemptEvents is a parsable slice of AttemptEvent.
type AttemptEvents []*AttemptEvent

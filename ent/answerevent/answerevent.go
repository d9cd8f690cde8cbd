// Code generated by ent, DO NOT EDIT.

package answerevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the answerevent type in the database.
	Label = "answer_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldAttemptID holds the string denoting the attempt_id field in the database.
	FieldAttemptID = "attempt_id"
	// FieldQuestionNumber holds the string denoting the question_number field in the database.
	FieldQuestionNumber = "question_number"
	// FieldGiven holds the string denoting the given field in the database.
	FieldGiven = "given"
	// FieldWant holds the string denoting the want field in the database.
	FieldWant = "want"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldMarked holds the string denoting the marked field in the database.
	FieldMarked = "marked"
	// Table holds the table name of the answerevent in the database.
	Table = "answer_events"
)

// Columns holds all SQL columns for answerevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldAttemptID,
	FieldQuestionNumber,
	FieldGiven,
	FieldWant,
	FieldCorrect,
	FieldMarked,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	AttemptIDValidator func(string) error
	// QuestionNumberValidator is a validator for the "question_number" field. It is called by the builders before save.
	QuestionNumberValidator func(int) error
	// DefaultCorrect holds the default value on creation for the "correct" field.
	DefaultCorrect bool
	// DefaultMarked holds the default value on creation for the "marked" field.
	DefaultMarked bool
)

// OrderOption defines the ordering options for the AnswerEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByAttemptID orders the results by the attempt_id field.
func ByAttemptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptID, opts...).ToFunc()
}

// ByQuestionNumber orders the results by the question_number field.
func ByQuestionNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionNumber, opts...).ToFunc()
}

// ByGiven orders the results by the given field.
func ByGiven(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGiven, opts...).ToFunc()
}

// ByWant orders the results by the want field.
func ByWant(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWant, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByMarked orders the results by the marked field.
func ByMarked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMarked, opts...).ToFunc()
}

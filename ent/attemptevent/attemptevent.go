// Code generated by ent, DO NOT EDIT.

package attemptevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the attemptevent type in the database.
	Label = "attempt_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldAttemptID holds the string denoting the attempt_id field in the database.
	FieldAttemptID = "attempt_id"
	// FieldExamID holds the string denoting the exam_id field in the database.
	FieldExamID = "exam_id"
	// FieldExamName holds the string denoting the exam_name field in the database.
	FieldExamName = "exam_name"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldWrong holds the string denoting the wrong field in the database.
	FieldWrong = "wrong"
	// FieldUnanswered holds the string denoting the unanswered field in the database.
	FieldUnanswered = "unanswered"
	// FieldQuestionCount holds the string denoting the question_count field in the database.
	FieldQuestionCount = "question_count"
	// FieldDurationSecs holds the string denoting the duration_secs field in the database.
	FieldDurationSecs = "duration_secs"
	// Table holds the table name of the attemptevent in the database.
	Table = "attempt_events"
)

// Columns holds all SQL columns for attemptevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldAttemptID,
	FieldExamID,
	FieldExamName,
	FieldScore,
	FieldCorrect,
	FieldWrong,
	FieldUnanswered,
	FieldQuestionCount,
	FieldDurationSecs,
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
	// ExamIDValidator is a validator for the "exam_id" field. It is called by the builders before save.
	ExamIDValidator func(string) error
	// DefaultCorrect holds the default value on creation for the "correct" field.
	DefaultCorrect int
	// DefaultWrong holds the default value on creation for the "wrong" field.
	DefaultWrong int
	// DefaultUnanswered holds the default value on creation for the "unanswered" field.
	DefaultUnanswered int
	// DefaultQuestionCount holds the default value on creation for the "question_count" field.
	DefaultQuestionCount int
	// DefaultDurationSecs holds the default value on creation for the "duration_secs" field.
	DefaultDurationSecs int
)

// OrderOption defines the ordering options for the AttemptEvent queries.
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

// ByExamID orders the results by the exam_id field.
func ByExamID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExamID, opts...).ToFunc()
}

// ByExamName orders the results by the exam_name field.
func ByExamName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExamName, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByWrong orders the results by the wrong field.
func ByWrong(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWrong, opts...).ToFunc()
}

// ByUnanswered orders the results by the unanswered field.
func ByUnanswered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnanswered, opts...).ToFunc()
}

// ByQuestionCount orders the results by the question_count field.
func ByQuestionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionCount, opts...).ToFunc()
}

// ByDurationSecs orders the results by the duration_secs field.
func ByDurationSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSecs, opts...).ToFunc()
}

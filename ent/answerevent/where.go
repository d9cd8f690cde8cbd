// Code generated by ent, DO NOT EDIT.

package answerevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/cylin/examdrill/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldTimestamp, v))
}

// AttemptID applies equality check predicate on the "attempt_id" field. It's identical to AttemptIDEQ.
func AttemptID(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldAttemptID, v))
}

// QuestionNumber applies equality check predicate on the "question_number" field. It's identical to QuestionNumberEQ.
func QuestionNumber(v int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldQuestionNumber, v))
}

// Given applies equality check predicate on the "given" field. It's identical to GivenEQ.
func Given(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldGiven, v))
}

// Want applies equality check predicate on the "want" field. It's identical to WantEQ.
func Want(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldWant, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldCorrect, v))
}

// Marked applies equality check predicate on the "marked" field. It's identical to MarkedEQ.
func Marked(v bool) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldMarked, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldTimestamp, v))
}

// AttemptIDEQ applies the EQ predicate on the "attempt_id" field.
func AttemptIDEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldAttemptID, v))
}

// AttemptIDNEQ applies the NEQ predicate on the "attempt_id" field.
func AttemptIDNEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldAttemptID, v))
}

// AttemptIDIn applies the In predicate on the "attempt_id" field.
func AttemptIDIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldAttemptID, vs...))
}

// AttemptIDNotIn applies the NotIn predicate on the "attempt_id" field.
func AttemptIDNotIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldAttemptID, vs...))
}

// AttemptIDGT applies the GT predicate on the "attempt_id" field.
func AttemptIDGT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldAttemptID, v))
}

// AttemptIDGTE applies the GTE predicate on the "attempt_id" field.
func AttemptIDGTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldAttemptID, v))
}

// AttemptIDLT applies the LT predicate on the "attempt_id" field.
func AttemptIDLT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldAttemptID, v))
}

// AttemptIDLTE applies the LTE predicate on the "attempt_id" field.
func AttemptIDLTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldAttemptID, v))
}

// AttemptIDContains applies the Contains predicate on the "attempt_id" field.
func AttemptIDContains(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContains(FieldAttemptID, v))
}

// AttemptIDHasPrefix applies the HasPrefix predicate on the "attempt_id" field.
func AttemptIDHasPrefix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasPrefix(FieldAttemptID, v))
}

// AttemptIDHasSuffix applies the HasSuffix predicate on the "attempt_id" field.
func AttemptIDHasSuffix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasSuffix(FieldAttemptID, v))
}

// AttemptIDEqualFold applies the EqualFold predicate on the "attempt_id" field.
func AttemptIDEqualFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEqualFold(FieldAttemptID, v))
}

// AttemptIDContainsFold applies the ContainsFold predicate on the "attempt_id" field.
func AttemptIDContainsFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContainsFold(FieldAttemptID, v))
}

// QuestionNumberEQ applies the EQ predicate on the "question_number" field.
func QuestionNumberEQ(v int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldQuestionNumber, v))
}

// QuestionNumberNEQ applies the NEQ predicate on the "question_number" field.
func QuestionNumberNEQ(v int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldQuestionNumber, v))
}

// QuestionNumberIn applies the In predicate on the "question_number" field.
func QuestionNumberIn(vs ...int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldQuestionNumber, vs...))
}

// QuestionNumberNotIn applies the NotIn predicate on the "question_number" field.
func QuestionNumberNotIn(vs ...int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldQuestionNumber, vs...))
}

// QuestionNumberGT applies the GT predicate on the "question_number" field.
func QuestionNumberGT(v int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldQuestionNumber, v))
}

// QuestionNumberGTE applies the GTE predicate on the "question_number" field.
func QuestionNumberGTE(v int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldQuestionNumber, v))
}

// QuestionNumberLT applies the LT predicate on the "question_number" field.
func QuestionNumberLT(v int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldQuestionNumber, v))
}

// QuestionNumberLTE applies the LTE predicate on the "question_number" field.
func QuestionNumberLTE(v int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldQuestionNumber, v))
}

// GivenEQ applies the EQ predicate on the "given" field.
func GivenEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldGiven, v))
}

// GivenNEQ applies the NEQ predicate on the "given" field.
func GivenNEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldGiven, v))
}

// GivenIn applies the In predicate on the "given" field.
func GivenIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldGiven, vs...))
}

// GivenNotIn applies the NotIn predicate on the "given" field.
func GivenNotIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldGiven, vs...))
}

// GivenGT applies the GT predicate on the "given" field.
func GivenGT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldGiven, v))
}

// GivenGTE applies the GTE predicate on the "given" field.
func GivenGTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldGiven, v))
}

// GivenLT applies the LT predicate on the "given" field.
func GivenLT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldGiven, v))
}

// GivenLTE applies the LTE predicate on the "given" field.
func GivenLTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldGiven, v))
}

// GivenContains applies the Contains predicate on the "given" field.
func GivenContains(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContains(FieldGiven, v))
}

// GivenHasPrefix applies the HasPrefix predicate on the "given" field.
func GivenHasPrefix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasPrefix(FieldGiven, v))
}

// GivenHasSuffix applies the HasSuffix predicate on the "given" field.
func GivenHasSuffix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasSuffix(FieldGiven, v))
}

// GivenEqualFold applies the EqualFold predicate on the "given" field.
func GivenEqualFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEqualFold(FieldGiven, v))
}

// GivenContainsFold applies the ContainsFold predicate on the "given" field.
func GivenContainsFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContainsFold(FieldGiven, v))
}

// WantEQ applies the EQ predicate on the "want" field.
func WantEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldWant, v))
}

// WantNEQ applies the NEQ predicate on the "want" field.
func WantNEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldWant, v))
}

// WantIn applies the In predicate on the "want" field.
func WantIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldWant, vs...))
}

// WantNotIn applies the NotIn predicate on the "want" field.
func WantNotIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldWant, vs...))
}

// WantGT applies the GT predicate on the "want" field.
func WantGT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldWant, v))
}

// WantGTE applies the GTE predicate on the "want" field.
func WantGTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldWant, v))
}

// WantLT applies the LT predicate on the "want" field.
func WantLT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldWant, v))
}

// WantLTE applies the LTE predicate on the "want" field.
func WantLTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldWant, v))
}

// WantContains applies the Contains predicate on the "want" field.
func WantContains(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContains(FieldWant, v))
}

// WantHasPrefix applies the HasPrefix predicate on the "want" field.
func WantHasPrefix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasPrefix(FieldWant, v))
}

// WantHasSuffix applies the HasSuffix predicate on the "want" field.
func WantHasSuffix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasSuffix(FieldWant, v))
}

// WantEqualFold applies the EqualFold predicate on the "want" field.
func WantEqualFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEqualFold(FieldWant, v))
}

// WantContainsFold applies the ContainsFold predicate on the "want" field.
func WantContainsFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContainsFold(FieldWant, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldCorrect, v))
}

// MarkedEQ applies the EQ predicate on the "marked" field.
func MarkedEQ(v bool) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldMarked, v))
}

// MarkedNEQ applies the NEQ predicate on the "marked" field.
func MarkedNEQ(v bool) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldMarked, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnswerEvent) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnswerEvent) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnswerEvent) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.NotPredicates(p))
}

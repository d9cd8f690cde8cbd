// Code generated by ent, DO NOT EDIT.

package attemptevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/cylin/examdrill/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldTimestamp, v))
}

// AttemptID applies equality check predicate on the "attempt_id" field. It's identical to AttemptIDEQ.
func AttemptID(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldAttemptID, v))
}

// ExamID applies equality check predicate on the "exam_id" field. It's identical to ExamIDEQ.
func ExamID(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldExamID, v))
}

// ExamName applies equality check predicate on the "exam_name" field. It's identical to ExamNameEQ.
func ExamName(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldExamName, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldScore, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldCorrect, v))
}

// Wrong applies equality check predicate on the "wrong" field. It's identical to WrongEQ.
func Wrong(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldWrong, v))
}

// Unanswered applies equality check predicate on the "unanswered" field. It's identical to UnansweredEQ.
func Unanswered(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldUnanswered, v))
}

// QuestionCount applies equality check predicate on the "question_count" field. It's identical to QuestionCountEQ.
func QuestionCount(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldQuestionCount, v))
}

// DurationSecs applies equality check predicate on the "duration_secs" field. It's identical to DurationSecsEQ.
func DurationSecs(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldDurationSecs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldTimestamp, v))
}

// AttemptIDEQ applies the EQ predicate on the "attempt_id" field.
func AttemptIDEQ(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldAttemptID, v))
}

// AttemptIDNEQ applies the NEQ predicate on the "attempt_id" field.
func AttemptIDNEQ(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldAttemptID, v))
}

// AttemptIDIn applies the In predicate on the "attempt_id" field.
func AttemptIDIn(vs ...string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldAttemptID, vs...))
}

// AttemptIDNotIn applies the NotIn predicate on the "attempt_id" field.
func AttemptIDNotIn(vs ...string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldAttemptID, vs...))
}

// AttemptIDGT applies the GT predicate on the "attempt_id" field.
func AttemptIDGT(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldAttemptID, v))
}

// AttemptIDGTE applies the GTE predicate on the "attempt_id" field.
func AttemptIDGTE(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldAttemptID, v))
}

// AttemptIDLT applies the LT predicate on the "attempt_id" field.
func AttemptIDLT(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldAttemptID, v))
}

// AttemptIDLTE applies the LTE predicate on the "attempt_id" field.
func AttemptIDLTE(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldAttemptID, v))
}

// AttemptIDContains applies the Contains predicate on the "attempt_id" field.
func AttemptIDContains(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldContains(FieldAttemptID, v))
}

// AttemptIDHasPrefix applies the HasPrefix predicate on the "attempt_id" field.
func AttemptIDHasPrefix(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldHasPrefix(FieldAttemptID, v))
}

// AttemptIDHasSuffix applies the HasSuffix predicate on the "attempt_id" field.
func AttemptIDHasSuffix(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldHasSuffix(FieldAttemptID, v))
}

// AttemptIDEqualFold applies the EqualFold predicate on the "attempt_id" field.
func AttemptIDEqualFold(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEqualFold(FieldAttemptID, v))
}

// AttemptIDContainsFold applies the ContainsFold predicate on the "attempt_id" field.
func AttemptIDContainsFold(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldContainsFold(FieldAttemptID, v))
}

// ExamIDEQ applies the EQ predicate on the "exam_id" field.
func ExamIDEQ(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldExamID, v))
}

// ExamIDNEQ applies the NEQ predicate on the "exam_id" field.
func ExamIDNEQ(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldExamID, v))
}

// ExamIDIn applies the In predicate on the "exam_id" field.
func ExamIDIn(vs ...string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldExamID, vs...))
}

// ExamIDNotIn applies the NotIn predicate on the "exam_id" field.
func ExamIDNotIn(vs ...string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldExamID, vs...))
}

// ExamIDGT applies the GT predicate on the "exam_id" field.
func ExamIDGT(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldExamID, v))
}

// ExamIDGTE applies the GTE predicate on the "exam_id" field.
func ExamIDGTE(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldExamID, v))
}

// ExamIDLT applies the LT predicate on the "exam_id" field.
func ExamIDLT(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldExamID, v))
}

// ExamIDLTE applies the LTE predicate on the "exam_id" field.
func ExamIDLTE(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldExamID, v))
}

// ExamIDContains applies the Contains predicate on the "exam_id" field.
func ExamIDContains(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldContains(FieldExamID, v))
}

// ExamIDHasPrefix applies the HasPrefix predicate on the "exam_id" field.
func ExamIDHasPrefix(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldHasPrefix(FieldExamID, v))
}

// ExamIDHasSuffix applies the HasSuffix predicate on the "exam_id" field.
func ExamIDHasSuffix(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldHasSuffix(FieldExamID, v))
}

// ExamIDEqualFold applies the EqualFold predicate on the "exam_id" field.
func ExamIDEqualFold(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEqualFold(FieldExamID, v))
}

// ExamIDContainsFold applies the ContainsFold predicate on the "exam_id" field.
func ExamIDContainsFold(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldContainsFold(FieldExamID, v))
}

// ExamNameEQ applies the EQ predicate on the "exam_name" field.
func ExamNameEQ(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldExamName, v))
}

// ExamNameNEQ applies the NEQ predicate on the "exam_name" field.
func ExamNameNEQ(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldExamName, v))
}

// ExamNameIn applies the In predicate on the "exam_name" field.
func ExamNameIn(vs ...string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldExamName, vs...))
}

// ExamNameNotIn applies the NotIn predicate on the "exam_name" field.
func ExamNameNotIn(vs ...string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldExamName, vs...))
}

// ExamNameGT applies the GT predicate on the "exam_name" field.
func ExamNameGT(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldExamName, v))
}

// ExamNameGTE applies the GTE predicate on the "exam_name" field.
func ExamNameGTE(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldExamName, v))
}

// ExamNameLT applies the LT predicate on the "exam_name" field.
func ExamNameLT(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldExamName, v))
}

// ExamNameLTE applies the LTE predicate on the "exam_name" field.
func ExamNameLTE(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldExamName, v))
}

// ExamNameContains applies the Contains predicate on the "exam_name" field.
func ExamNameContains(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldContains(FieldExamName, v))
}

// ExamNameHasPrefix applies the HasPrefix predicate on the "exam_name" field.
func ExamNameHasPrefix(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldHasPrefix(FieldExamName, v))
}

// ExamNameHasSuffix applies the HasSuffix predicate on the "exam_name" field.
func ExamNameHasSuffix(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldHasSuffix(FieldExamName, v))
}

// ExamNameEqualFold applies the EqualFold predicate on the "exam_name" field.
func ExamNameEqualFold(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEqualFold(FieldExamName, v))
}

// ExamNameContainsFold applies the ContainsFold predicate on the "exam_name" field.
func ExamNameContainsFold(v string) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldContainsFold(FieldExamName, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldScore, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldCorrect, v))
}

// CorrectIn applies the In predicate on the "correct" field.
func CorrectIn(vs ...int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldCorrect, vs...))
}

// CorrectNotIn applies the NotIn predicate on the "correct" field.
func CorrectNotIn(vs ...int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldCorrect, vs...))
}

// CorrectGT applies the GT predicate on the "correct" field.
func CorrectGT(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldCorrect, v))
}

// CorrectGTE applies the GTE predicate on the "correct" field.
func CorrectGTE(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldCorrect, v))
}

// CorrectLT applies the LT predicate on the "correct" field.
func CorrectLT(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldCorrect, v))
}

// CorrectLTE applies the LTE predicate on the "correct" field.
func CorrectLTE(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldCorrect, v))
}

// WrongEQ applies the EQ predicate on the "wrong" field.
func WrongEQ(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldWrong, v))
}

// WrongNEQ applies the NEQ predicate on the "wrong" field.
func WrongNEQ(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldWrong, v))
}

// WrongIn applies the In predicate on the "wrong" field.
func WrongIn(vs ...int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldWrong, vs...))
}

// WrongNotIn applies the NotIn predicate on the "wrong" field.
func WrongNotIn(vs ...int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldWrong, vs...))
}

// WrongGT applies the GT predicate on the "wrong" field.
func WrongGT(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldWrong, v))
}

// WrongGTE applies the GTE predicate on the "wrong" field.
func WrongGTE(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldWrong, v))
}

// WrongLT applies the LT predicate on the "wrong" field.
func WrongLT(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldWrong, v))
}

// WrongLTE applies the LTE predicate on the "wrong" field.
func WrongLTE(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldWrong, v))
}

// UnansweredEQ applies the EQ predicate on the "unanswered" field.
func UnansweredEQ(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldUnanswered, v))
}

// UnansweredNEQ applies the NEQ predicate on the "unanswered" field.
func UnansweredNEQ(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldUnanswered, v))
}

// UnansweredIn applies the In predicate on the "unanswered" field.
func UnansweredIn(vs ...int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldUnanswered, vs...))
}

// UnansweredNotIn applies the NotIn predicate on the "unanswered" field.
func UnansweredNotIn(vs ...int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldUnanswered, vs...))
}

// UnansweredGT applies the GT predicate on the "unanswered" field.
func UnansweredGT(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldUnanswered, v))
}

// UnansweredGTE applies the GTE predicate on the "unanswered" field.
func UnansweredGTE(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldUnanswered, v))
}

// UnansweredLT applies the LT predicate on the "unanswered" field.
func UnansweredLT(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldUnanswered, v))
}

// UnansweredLTE applies the LTE predicate on the "unanswered" field.
func UnansweredLTE(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldUnanswered, v))
}

// QuestionCountEQ applies the EQ predicate on the "question_count" field.
func QuestionCountEQ(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldQuestionCount, v))
}

// QuestionCountNEQ applies the NEQ predicate on the "question_count" field.
func QuestionCountNEQ(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldQuestionCount, v))
}

// QuestionCountIn applies the In predicate on the "question_count" field.
func QuestionCountIn(vs ...int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldQuestionCount, vs...))
}

// QuestionCountNotIn applies the NotIn predicate on the "question_count" field.
func QuestionCountNotIn(vs ...int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldQuestionCount, vs...))
}

// QuestionCountGT applies the GT predicate on the "question_count" field.
func QuestionCountGT(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldQuestionCount, v))
}

// QuestionCountGTE applies the GTE predicate on the "question_count" field.
func QuestionCountGTE(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldQuestionCount, v))
}

// QuestionCountLT applies the LT predicate on the "question_count" field.
func QuestionCountLT(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldQuestionCount, v))
}

// QuestionCountLTE applies the LTE predicate on the "question_count" field.
func QuestionCountLTE(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldQuestionCount, v))
}

// DurationSecsEQ applies the EQ predicate on the "duration_secs" field.
func DurationSecsEQ(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldEQ(FieldDurationSecs, v))
}

// DurationSecsNEQ applies the NEQ predicate on the "duration_secs" field.
func DurationSecsNEQ(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNEQ(FieldDurationSecs, v))
}

// DurationSecsIn applies the In predicate on the "duration_secs" field.
func DurationSecsIn(vs ...int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldIn(FieldDurationSecs, vs...))
}

// DurationSecsNotIn applies the NotIn predicate on the "duration_secs" field.
func DurationSecsNotIn(vs ...int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldNotIn(FieldDurationSecs, vs...))
}

// DurationSecsGT applies the GT predicate on the "duration_secs" field.
func DurationSecsGT(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGT(FieldDurationSecs, v))
}

// DurationSecsGTE applies the GTE predicate on the "duration_secs" field.
func DurationSecsGTE(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldGTE(FieldDurationSecs, v))
}

// DurationSecsLT applies the LT predicate on the "duration_secs" field.
func DurationSecsLT(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLT(FieldDurationSecs, v))
}

// DurationSecsLTE applies the LTE predicate on the "duration_secs" field.
func DurationSecsLTE(v int) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.FieldLTE(FieldDurationSecs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AttemptEvent) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AttemptEvent) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AttemptEvent) predicate.AttemptEvent {
	return predicate.AttemptEvent(sql.NotPredicates(p))
}

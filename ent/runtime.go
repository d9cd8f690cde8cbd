// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/cylin/examdrill/ent/answerevent"
	"github.com/cylin/examdrill/ent/attemptevent"
	"github.com/cylin/examdrill/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescAttemptID is the schema descriptor for attempt_id field.
	answereventDescAttemptID := answereventFields[0].Descriptor()
	// answerevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	answerevent.AttemptIDValidator = answereventDescAttemptID.Validators[0].(func(string) error)
	// answereventDescQuestionNumber is the schema descriptor for question_number field.
	answereventDescQuestionNumber := answereventFields[1].Descriptor()
	// answerevent.QuestionNumberValidator is a validator for the "question_number" field. It is called by the builders before save.
	answerevent.QuestionNumberValidator = answereventDescQuestionNumber.Validators[0].(func(int) error)
	// answereventDescCorrect is the schema descriptor for correct field.
	answereventDescCorrect := answereventFields[4].Descriptor()
	// answerevent.DefaultCorrect holds the default value on creation for the correct field.
	answerevent.DefaultCorrect = answereventDescCorrect.Default.(bool)
	// answereventDescMarked is the schema descriptor for marked field.
	answereventDescMarked := answereventFields[5].Descriptor()
	// answerevent.DefaultMarked holds the default value on creation for the marked field.
	answerevent.DefaultMarked = answereventDescMarked.Default.(bool)
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescAttemptID is the schema descriptor for attempt_id field.
	attempteventDescAttemptID := attempteventFields[0].Descriptor()
	// attemptevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	attemptevent.AttemptIDValidator = attempteventDescAttemptID.Validators[0].(func(string) error)
	// attempteventDescExamID is the schema descriptor for exam_id field.
	attempteventDescExamID := attempteventFields[1].Descriptor()
	// attemptevent.ExamIDValidator is a validator for the "exam_id" field. It is called by the builders before save.
	attemptevent.ExamIDValidator = attempteventDescExamID.Validators[0].(func(string) error)
	// attempteventDescCorrect is the schema descriptor for correct field.
	attempteventDescCorrect := attempteventFields[4].Descriptor()
	// attemptevent.DefaultCorrect holds the default value on creation for the correct field.
	attemptevent.DefaultCorrect = attempteventDescCorrect.Default.(int)
	// attempteventDescWrong is the schema descriptor for wrong field.
	attempteventDescWrong := attempteventFields[5].Descriptor()
	// attemptevent.DefaultWrong holds the default value on creation for the wrong field.
	attemptevent.DefaultWrong = attempteventDescWrong.Default.(int)
	// attempteventDescUnanswered is the schema descriptor for unanswered field.
	attempteventDescUnanswered := attempteventFields[6].Descriptor()
	// attemptevent.DefaultUnanswered holds the default value on creation for the unanswered field.
	attemptevent.DefaultUnanswered = attempteventDescUnanswered.Default.(int)
	// attempteventDescQuestionCount is the schema descriptor for question_count field.
	attempteventDescQuestionCount := attempteventFields[7].Descriptor()
	// attemptevent.DefaultQuestionCount holds the default value on creation for the question_count field.
	attemptevent.DefaultQuestionCount = attempteventDescQuestionCount.Default.(int)
	// attempteventDescDurationSecs is the schema descriptor for duration_secs field.
	attempteventDescDurationSecs := attempteventFields[8].Descriptor()
	// attemptevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	attemptevent.DefaultDurationSecs = attempteventDescDurationSecs.Default.(int)
}

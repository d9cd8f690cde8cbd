package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records one graded answer within a submitted attempt.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Comment("UUID of the parent attempt"),
		field.Int("question_number").
			Positive().
			Comment("1-based question number within the exam"),
		field.String("given").
			Comment("Labels the user selected, joined; empty if skipped"),
		field.String("want").
			Comment("Correct answer labels, joined"),
		field.Bool("correct").
			Default(false),
		field.Bool("marked").
			Default(false).
			Comment("Whether the question was flagged for review"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one submitted exam attempt with its final score.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Comment("UUID grouping the attempt's answer events"),
		field.String("exam_id").
			NotEmpty().
			Comment("Catalog id of the exam"),
		field.String("exam_name").
			Comment("Display name of the exam at submission time"),
		field.Float("score").
			Comment("Final score; may be negative, one decimal shown"),
		field.Int("correct").
			Default(0),
		field.Int("wrong").
			Default(0).
			Comment("Answered but incorrect"),
		field.Int("unanswered").
			Default(0),
		field.Int("question_count").
			Default(0),
		field.Int("duration_secs").
			Default(0).
			Comment("Seconds from session start to submission"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
		index.Fields("exam_id"),
	}
}

// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "attempt_id", Type: field.TypeString},
		{Name: "question_number", Type: field.TypeInt},
		{Name: "given", Type: field.TypeString},
		{Name: "want", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool, Default: false},
		{Name: "marked", Type: field.TypeBool, Default: false},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_attempt_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
		},
	}
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "attempt_id", Type: field.TypeString},
		{Name: "exam_id", Type: field.TypeString},
		{Name: "exam_name", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "correct", Type: field.TypeInt, Default: 0},
		{Name: "wrong", Type: field.TypeInt, Default: 0},
		{Name: "unanswered", Type: field.TypeInt, Default: 0},
		{Name: "question_count", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_attempt_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3]},
			},
			{
				Name:    "attemptevent_exam_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		AttemptEventsTable,
	}
)

func init() {
}

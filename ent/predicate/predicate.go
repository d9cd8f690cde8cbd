// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnswerEvent is the predicate function for answerevent builders.
type AnswerEvent func(*sql.Selector)

// AttemptEvent is the predicate function for attemptevent builders.
type AttemptEvent func(*sql.Selector)

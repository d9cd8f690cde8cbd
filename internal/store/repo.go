package store

import (
	"context"
	"time"
)

// AttemptEventData captures one submitted attempt.
type AttemptEventData struct {
	AttemptID     string
	ExamID        string
	ExamName      string
	Score         float64
	Correct       int
	Wrong         int
	Unanswered    int
	QuestionCount int
	DurationSecs  int
}

// AnswerEventData captures one graded answer within an attempt.
type AnswerEventData struct {
	AttemptID      string
	QuestionNumber int
	Given          string
	Want           string
	Correct        bool
	Marked         bool
}

// Attempt is the read model for listing past attempts.
type Attempt struct {
	AttemptID     string
	Timestamp     time.Time
	ExamID        string
	ExamName      string
	Score         float64
	Correct       int
	Wrong         int
	Unanswered    int
	QuestionCount int
	DurationSecs  int
}

// EventRepo provides append and query access to attempt history.
// The live session is never persisted; only completed submissions are.
type EventRepo interface {
	// AppendAttempt records a submitted attempt.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// AppendAnswer records one graded answer of an attempt.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// RecentAttempts returns the newest attempts, most recent first.
	RecentAttempts(ctx context.Context, limit int) ([]Attempt, error)

	// ExamAverage returns the mean score and attempt count for an exam.
	ExamAverage(ctx context.Context, examID string) (float64, int, error)
}

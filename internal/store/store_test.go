package store

import (
	"context"
	"fmt"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful for file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAndRecentAttempts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendAttempt(ctx, AttemptEventData{
			AttemptID:     fmt.Sprintf("attempt-%d", i+1),
			ExamID:        "11201",
			ExamName:      "一等航行員",
			Score:         float64(i) * 2.0,
			Correct:       i,
			Wrong:         1,
			Unanswered:    0,
			QuestionCount: i + 1,
			DurationSecs:  60,
		})
		if err != nil {
			t.Fatalf("append attempt %d: %v", i, err)
		}
	}

	attempts, err := repo.RecentAttempts(ctx, 10)
	if err != nil {
		t.Fatalf("recent attempts: %v", err)
	}
	if len(attempts) != 3 {
		t.Fatalf("got %d attempts, want 3", len(attempts))
	}

	// Most recent first.
	if attempts[0].AttemptID != "attempt-3" {
		t.Errorf("first attempt = %q, want attempt-3", attempts[0].AttemptID)
	}
	if attempts[2].AttemptID != "attempt-1" {
		t.Errorf("last attempt = %q, want attempt-1", attempts[2].AttemptID)
	}
	if attempts[0].ExamName != "一等航行員" {
		t.Errorf("exam name = %q", attempts[0].ExamName)
	}
	if attempts[0].Score != 4.0 {
		t.Errorf("score = %v, want 4.0", attempts[0].Score)
	}
}

func TestRecentAttemptsLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := repo.AppendAttempt(ctx, AttemptEventData{
			AttemptID: fmt.Sprintf("attempt-%d", i+1),
			ExamID:    "11201",
		})
		if err != nil {
			t.Fatalf("append attempt %d: %v", i, err)
		}
	}

	attempts, err := repo.RecentAttempts(ctx, 2)
	if err != nil {
		t.Fatalf("recent attempts: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("got %d attempts, want 2", len(attempts))
	}
	if attempts[0].AttemptID != "attempt-5" {
		t.Errorf("first attempt = %q, want attempt-5", attempts[0].AttemptID)
	}
}

func TestExamAverage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// No attempts yet.
	avg, count, err := repo.ExamAverage(ctx, "11201")
	if err != nil {
		t.Fatalf("average (empty): %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
	if avg != 0 {
		t.Errorf("average = %v, want 0", avg)
	}

	scores := []float64{10.0, 20.0, 30.0}
	for i, score := range scores {
		err := repo.AppendAttempt(ctx, AttemptEventData{
			AttemptID: fmt.Sprintf("attempt-%d", i+1),
			ExamID:    "11201",
			Score:     score,
		})
		if err != nil {
			t.Fatalf("append attempt %d: %v", i, err)
		}
	}

	// A different exam must not affect the average.
	err = repo.AppendAttempt(ctx, AttemptEventData{
		AttemptID: "other",
		ExamID:    "11202",
		Score:     100.0,
	})
	if err != nil {
		t.Fatalf("append other: %v", err)
	}

	avg, count, err = repo.ExamAverage(ctx, "11201")
	if err != nil {
		t.Fatalf("average: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
	if avg != 20.0 {
		t.Errorf("average = %v, want 20.0", avg)
	}
}

func TestAppendAnswer(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{AttemptID: "attempt-1", QuestionNumber: 1, Given: "A", Want: "A", Correct: true},
		{AttemptID: "attempt-1", QuestionNumber: 2, Given: "B", Want: "C", Correct: false, Marked: true},
	}
	for i, a := range answers {
		if err := repo.AppendAnswer(ctx, a); err != nil {
			t.Fatalf("append answer %d: %v", i, err)
		}
	}

	count, err := s.Client().AnswerEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("answer events = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"attempt_events", "answer_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("query sqlite_master for %s: %v", table, err)
			continue
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}

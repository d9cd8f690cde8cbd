package session

import (
	"errors"
	"testing"

	"github.com/cylin/examdrill/internal/exam"
)

func singleQ(answer string) exam.Question {
	return exam.Question{
		Prompt: "單選",
		Type:   exam.SingleChoice,
		Options: []exam.Option{
			{Label: "A", Text: "甲"},
			{Label: "B", Text: "乙"},
			{Label: "C", Text: "丙"},
		},
		Answer: []string{answer},
	}
}

func multiQ(answer ...string) exam.Question {
	return exam.Question{
		Prompt: "複選",
		Type:   exam.MultipleChoice,
		Options: []exam.Option{
			{Label: "A", Text: "甲"},
			{Label: "B", Text: "乙"},
			{Label: "C", Text: "丙"},
			{Label: "D", Text: "丁"},
		},
		Answer: answer,
	}
}

func testSession(questions ...exam.Question) *Session {
	info := exam.Info{ID: "t1", Name: "測試", File: "t1.json"}
	return New(info, questions)
}

func TestNewSession_Empty(t *testing.T) {
	s := testSession(singleQ("A"), singleQ("B"))

	if s.Current() != 0 {
		t.Errorf("Current = %d, want 0", s.Current())
	}
	if s.Submitted() {
		t.Error("new session must not be submitted")
	}
	for i := 0; i < s.Len(); i++ {
		if s.Answered(i) {
			t.Errorf("question %d answered before any Record", i)
		}
	}
}

func TestRecord_SetsAnswered(t *testing.T) {
	s := testSession(singleQ("A"))

	if err := s.Record(0, []string{"A"}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if !s.Answered(0) {
		t.Error("expected Answered after non-empty Record")
	}

	// Empty selection counts as unanswered again.
	if err := s.Record(0, nil); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if s.Answered(0) {
		t.Error("expected unanswered after empty Record")
	}
}

func TestRecord_SingleKeepsFirstLabel(t *testing.T) {
	s := testSession(singleQ("A"))

	if err := s.Record(0, []string{"B", "C"}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	got := s.Answer(0)
	if len(got) != 1 || got[0] != "B" {
		t.Errorf("Answer = %v, want [B]", got)
	}
}

func TestAnswerRoundTrip_ThroughNavigation(t *testing.T) {
	s := testSession(multiQ("A", "B"), singleQ("C"), multiQ("D"))

	if err := s.Record(0, []string{"B", "A"}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	s.Next()
	s.Next()
	s.GoTo(0)

	states := s.OptionStates(0)
	checked := map[string]bool{}
	for _, st := range states {
		if st.Checked {
			checked[st.Label] = true
		}
	}
	if !checked["A"] || !checked["B"] || checked["C"] || checked["D"] {
		t.Errorf("checked = %v, want exactly A and B", checked)
	}
}

func TestToggleOption_SingleClearsOthers(t *testing.T) {
	s := testSession(singleQ("A"))

	if err := s.ToggleOption("A"); err != nil {
		t.Fatalf("ToggleOption: %v", err)
	}
	if err := s.ToggleOption("B"); err != nil {
		t.Fatalf("ToggleOption: %v", err)
	}
	got := s.Answer(0)
	if len(got) != 1 || got[0] != "B" {
		t.Errorf("Answer = %v, want [B]", got)
	}

	// Pressing the selected label again clears it.
	if err := s.ToggleOption("B"); err != nil {
		t.Fatalf("ToggleOption: %v", err)
	}
	if s.Answered(0) {
		t.Error("expected cleared selection")
	}
}

func TestToggleOption_MultiTogglesMembership(t *testing.T) {
	s := testSession(multiQ("A", "B"))

	for _, l := range []string{"A", "B", "A"} {
		if err := s.ToggleOption(l); err != nil {
			t.Fatalf("ToggleOption(%s): %v", l, err)
		}
	}
	got := s.Answer(0)
	if len(got) != 1 || got[0] != "B" {
		t.Errorf("Answer = %v, want [B]", got)
	}
}

func TestNavigation_Saturates(t *testing.T) {
	s := testSession(singleQ("A"), singleQ("B"), singleQ("C"))

	s.Prev()
	if s.Current() != 0 {
		t.Errorf("Prev at start moved to %d", s.Current())
	}

	s.GoTo(2)
	s.Next()
	if s.Current() != 2 {
		t.Errorf("Next at end moved to %d", s.Current())
	}
}

func TestGoTo_OutOfRange(t *testing.T) {
	s := testSession(singleQ("A"), singleQ("B"))

	s.GoTo(5)
	if s.Current() != 0 {
		t.Errorf("GoTo(5) moved to %d", s.Current())
	}
	s.GoTo(-1)
	if s.Current() != 0 {
		t.Errorf("GoTo(-1) moved to %d", s.Current())
	}
}

func TestNavigation_NoQuestions(t *testing.T) {
	s := testSession()

	s.Next()
	s.Prev()
	s.GoTo(0)
	if s.Current() != 0 {
		t.Errorf("navigation on empty session moved to %d", s.Current())
	}
	if s.Question() != nil {
		t.Error("Question on empty session should be nil")
	}
}

func TestPercentAnswered(t *testing.T) {
	empty := testSession()
	if got := empty.PercentAnswered(); got != 0 {
		t.Errorf("empty session percent = %v, want 0", got)
	}

	s := testSession(singleQ("A"), singleQ("B"), singleQ("C"))
	if got := s.PercentAnswered(); got != 0 {
		t.Errorf("fresh percent = %v, want 0", got)
	}

	s.Record(0, []string{"A"})
	if got := s.PercentAnswered(); got != 33.3 {
		t.Errorf("percent = %v, want 33.3", got)
	}

	s.Record(1, []string{"B"})
	s.Record(2, []string{"C"})
	if got := s.PercentAnswered(); got != 100.0 {
		t.Errorf("percent = %v, want 100.0", got)
	}
}

func TestToggleMark_TwiceReturnsToUnmarked(t *testing.T) {
	s := testSession(singleQ("A"), singleQ("B"), singleQ("C"), singleQ("D"))

	s.ToggleMark(3)
	if !s.Marked(3) {
		t.Error("expected marked after first toggle")
	}
	s.ToggleMark(3)
	if s.Marked(3) {
		t.Error("expected unmarked after second toggle")
	}
}

func TestSubmit_LocksAnswers(t *testing.T) {
	s := testSession(singleQ("A"))
	s.Record(0, []string{"A"})

	s.Submit()

	if err := s.Record(0, []string{"B"}); !errors.Is(err, ErrAlreadySubmitted) {
		t.Errorf("Record after submit = %v, want ErrAlreadySubmitted", err)
	}
	if err := s.ToggleOption("B"); !errors.Is(err, ErrAlreadySubmitted) {
		t.Errorf("ToggleOption after submit = %v, want ErrAlreadySubmitted", err)
	}
	got := s.Answer(0)
	if len(got) != 1 || got[0] != "A" {
		t.Errorf("Answer mutated after submit: %v", got)
	}
}

func TestSubmit_Idempotent(t *testing.T) {
	s := testSession(singleQ("A"), singleQ("B"))
	s.Record(0, []string{"A"})

	first := s.Submit()
	second := s.Submit()

	if first != second {
		t.Error("second Submit must return the cached result")
	}
	if first.Score != PointsPerCorrect {
		t.Errorf("Score = %v, want %v", first.Score, PointsPerCorrect)
	}
}

func TestReset_RestoresFreshState(t *testing.T) {
	s := testSession(singleQ("A"), singleQ("B"), singleQ("C"))
	s.Record(0, []string{"A"})
	s.Record(1, []string{"B"})
	s.ToggleMark(1)
	s.GoTo(2)
	s.Submit()

	s.Reset()

	if s.Current() != 0 {
		t.Errorf("Current after reset = %d, want 0", s.Current())
	}
	if s.Submitted() || s.Result() != nil {
		t.Error("reset must clear submission and feedback")
	}
	if s.AnsweredCount() != 0 {
		t.Errorf("AnsweredCount after reset = %d, want 0", s.AnsweredCount())
	}
	if s.Marked(1) {
		t.Error("marks must be cleared on reset")
	}
	if err := s.Record(0, []string{"C"}); err != nil {
		t.Errorf("inputs must be editable after reset: %v", err)
	}
}

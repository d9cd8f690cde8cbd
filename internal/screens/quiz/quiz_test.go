package quiz

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/cylin/examdrill/internal/exam"
	"github.com/cylin/examdrill/internal/session"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuestions() []exam.Question {
	single := exam.Question{
		Prompt: "單選題目",
		Type:   exam.SingleChoice,
		Options: []exam.Option{
			{Label: "A", Text: "甲"},
			{Label: "B", Text: "乙"},
			{Label: "C", Text: "丙"},
		},
		Answer: []string{"A"},
	}
	multi := exam.Question{
		Prompt: "複選題目",
		Type:   exam.MultipleChoice,
		Options: []exam.Option{
			{Label: "A", Text: "甲"},
			{Label: "B", Text: "乙"},
			{Label: "C", Text: "丙"},
		},
		Answer: []string{"B", "C"},
	}
	return []exam.Question{single, multi, single}
}

func testScreen() *QuizScreen {
	info := exam.Info{ID: "t1", Name: "測試", File: "t1.json"}
	return New(session.New(info, testQuestions()), nil)
}

func TestQuizScreen_Title(t *testing.T) {
	q := testScreen()
	if q.Title() != "t1-測試" {
		t.Errorf("Title = %q", q.Title())
	}
}

func TestQuizScreen_DigitTogglesOption(t *testing.T) {
	q := testScreen()

	q.Update(keyPress('2'))
	got := q.sess.Answer(0)
	if len(got) != 1 || got[0] != "B" {
		t.Errorf("Answer = %v, want [B]", got)
	}

	// Single-choice: another digit replaces the selection.
	q.Update(keyPress('1'))
	got = q.sess.Answer(0)
	if len(got) != 1 || got[0] != "A" {
		t.Errorf("Answer = %v, want [A]", got)
	}
}

func TestQuizScreen_DigitOutOfRangeIgnored(t *testing.T) {
	q := testScreen()
	q.Update(keyPress('5'))
	if q.sess.Answered(0) {
		t.Error("digit beyond option count must be ignored")
	}
}

func TestQuizScreen_ArrowNavigation(t *testing.T) {
	q := testScreen()

	q.Update(specialKey(tea.KeyRight))
	if q.sess.Current() != 1 {
		t.Errorf("Current = %d, want 1", q.sess.Current())
	}
	q.Update(specialKey(tea.KeyLeft))
	if q.sess.Current() != 0 {
		t.Errorf("Current = %d, want 0", q.sess.Current())
	}

	// Saturates at the first question.
	q.Update(specialKey(tea.KeyLeft))
	if q.sess.Current() != 0 {
		t.Errorf("Current = %d, want 0 (no wraparound)", q.sess.Current())
	}
}

func TestQuizScreen_AnswerSurvivesNavigation(t *testing.T) {
	q := testScreen()

	q.Update(keyPress('1'))
	q.Update(specialKey(tea.KeyRight))
	q.Update(specialKey(tea.KeyLeft))

	got := q.sess.Answer(0)
	if len(got) != 1 || got[0] != "A" {
		t.Errorf("Answer = %v, want [A] after round trip", got)
	}
}

func TestQuizScreen_MarkToggle(t *testing.T) {
	q := testScreen()

	q.Update(keyPress('m'))
	if !q.sess.Marked(0) {
		t.Error("expected marked after m")
	}
	q.Update(keyPress('m'))
	if q.sess.Marked(0) {
		t.Error("expected unmarked after second m")
	}
}

func TestQuizScreen_SubmitRequiresConfirmation(t *testing.T) {
	q := testScreen()

	q.Update(specialKey(tea.KeyEnter))
	if !q.confirming {
		t.Fatal("Enter should open the confirmation dialog")
	}
	if q.sess.Submitted() {
		t.Fatal("session must not be submitted before confirmation")
	}

	// N cancels.
	q.Update(keyPress('n'))
	if q.confirming || q.sess.Submitted() {
		t.Error("N should cancel without submitting")
	}

	// Y confirms.
	q.Update(specialKey(tea.KeyEnter))
	q.Update(keyPress('y'))
	if !q.sess.Submitted() {
		t.Error("Y should submit")
	}
}

func TestQuizScreen_DoubleSubmitIsNoop(t *testing.T) {
	q := testScreen()
	q.Update(keyPress('1'))
	q.Update(specialKey(tea.KeyEnter))
	q.Update(keyPress('y'))

	first := q.sess.Result()

	// Enter with feedback already displayed must not reopen the dialog
	// or recompute the score.
	q.Update(specialKey(tea.KeyEnter))
	if q.confirming {
		t.Error("Enter after submission reopened the confirmation dialog")
	}
	if q.sess.Result() != first {
		t.Error("score recomputed on duplicate submit")
	}
}

func TestQuizScreen_AnswersLockedAfterSubmit(t *testing.T) {
	q := testScreen()
	q.Update(specialKey(tea.KeyEnter))
	q.Update(keyPress('y'))

	q.Update(keyPress('1'))
	if q.sess.Answered(0) {
		t.Error("digit keys must not mutate answers after submission")
	}

	// Navigation and re-viewing remain allowed.
	q.Update(specialKey(tea.KeyRight))
	if q.sess.Current() != 1 {
		t.Error("navigation should still work after submission")
	}
}

func TestQuizScreen_ClearFeedbackResets(t *testing.T) {
	q := testScreen()
	q.Update(keyPress('1'))
	q.Update(keyPress('m'))
	q.Update(specialKey(tea.KeyRight))
	q.Update(specialKey(tea.KeyEnter))
	q.Update(keyPress('y'))

	q.Update(keyPress('c'))

	if q.sess.Submitted() {
		t.Error("c should clear the submitted state")
	}
	if q.sess.Current() != 0 {
		t.Errorf("Current = %d, want 0 after clear", q.sess.Current())
	}
	if q.sess.AnsweredCount() != 0 || q.sess.Marked(0) {
		t.Error("answers and marks should be cleared")
	}
	q.Update(keyPress('1'))
	if !q.sess.Answered(0) {
		t.Error("inputs should be editable again after clear")
	}
}

func TestQuizScreen_ClearIgnoredBeforeSubmit(t *testing.T) {
	q := testScreen()
	q.Update(keyPress('1'))
	q.Update(keyPress('c'))
	if !q.sess.Answered(0) {
		t.Error("c before submission must not clear answers")
	}
}

func TestQuizScreen_GotoPromptSuppressesShortcuts(t *testing.T) {
	q := testScreen()

	q.Update(keyPress('g'))
	if q.gotoInput == nil {
		t.Fatal("g should open the goto prompt")
	}

	// Digits feed the prompt, not the option inputs.
	q.Update(keyPress('3'))
	if q.sess.Answered(0) {
		t.Error("digits must go to the prompt while it is open")
	}

	q.Update(specialKey(tea.KeyEnter))
	if q.gotoInput != nil {
		t.Error("Enter should close the prompt")
	}
	if q.sess.Current() != 2 {
		t.Errorf("Current = %d, want 2 after goto 3", q.sess.Current())
	}
}

func TestQuizScreen_ViewShowsFeedbackOnlyAfterSubmit(t *testing.T) {
	q := testScreen()

	before := q.View(100, 40)
	if strings.Contains(before, "總分") {
		t.Error("score shown before submission")
	}

	q.Update(specialKey(tea.KeyEnter))
	q.Update(keyPress('y'))

	after := q.View(100, 40)
	if !strings.Contains(after, "總分") {
		t.Error("expected score in view after submission")
	}
	if !strings.Contains(after, session.UnansweredText) {
		t.Error("expected skipped questions listed as unanswered")
	}
}

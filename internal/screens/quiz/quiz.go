package quiz

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/cylin/examdrill/internal/router"
	"github.com/cylin/examdrill/internal/screen"
	"github.com/cylin/examdrill/internal/session"
	"github.com/cylin/examdrill/internal/store"
	"github.com/cylin/examdrill/internal/ui/components"
	"github.com/cylin/examdrill/internal/ui/layout"

	"github.com/google/uuid"
)

// QuizScreen is the exam-taking widget: one question at a time with a
// sidebar, progress bar, mark-for-review, and scored submission.
type QuizScreen struct {
	sess *session.Session
	repo store.EventRepo

	opts        components.OptionList
	gotoInput   *components.TextInput
	confirming  bool // submit confirmation dialog
	quitConfirm bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates the quiz screen for an active session. repo may be nil,
// in which case submissions are not recorded.
func New(sess *session.Session, repo store.EventRepo) *QuizScreen {
	return &QuizScreen{sess: sess, repo: repo}
}

func (q *QuizScreen) Init() tea.Cmd {
	return nil
}

func (q *QuizScreen) Title() string {
	return q.sess.Exam.Label()
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case q.quitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave exam"},
			{Key: "N", Description: "Keep going"},
		}
	case q.confirming:
		return []layout.KeyHint{
			{Key: "Y", Description: "Submit"},
			{Key: "N", Description: "Cancel"},
		}
	case q.gotoInput != nil:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Go"},
			{Key: "Esc", Description: "Cancel"},
		}
	case q.sess.Submitted():
		return []layout.KeyHint{
			{Key: "←→", Description: "Review"},
			{Key: "C", Description: "Clear and retry"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "←→", Description: "Prev/Next"},
			{Key: "1-5", Description: "Toggle option"},
			{Key: "M", Description: "Mark"},
			{Key: "G", Description: "Go to"},
			{Key: "Enter", Description: "Submit"},
		}
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case attemptSavedMsg:
		// Best-effort recording; nothing to surface.
		return q, nil

	case tea.KeyMsg:
		return q.handleKey(msg)
	}

	if q.gotoInput != nil {
		in, cmd := q.gotoInput.Update(msg)
		q.gotoInput = &in
		return q, cmd
	}

	return q, nil
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if q.quitConfirm {
		switch key {
		case "y", "Y":
			q.quitConfirm = false
			return q, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			q.quitConfirm = false
		}
		return q, nil
	}

	if q.confirming {
		switch key {
		case "y", "Y", "enter":
			q.confirming = false
			return q, q.submit()
		case "n", "N", "esc":
			q.confirming = false
		}
		return q, nil
	}

	// The goto prompt swallows every key while open.
	if q.gotoInput != nil {
		switch key {
		case "enter":
			if n, err := q.gotoInput.NumericValue(); err == nil {
				q.sess.GoTo(n - 1)
				q.clampCursor()
			}
			q.gotoInput = nil
			return q, nil
		case "esc":
			q.gotoInput = nil
			return q, nil
		}
		in, cmd := q.gotoInput.Update(msg)
		q.gotoInput = &in
		return q, cmd
	}

	switch key {
	case "esc":
		q.quitConfirm = true
		return q, nil

	case "left", "h":
		q.sess.Prev()
		q.clampCursor()
		return q, nil

	case "right", "l":
		q.sess.Next()
		q.clampCursor()
		return q, nil

	case "up", "k":
		q.opts.CursorUp()
		return q, nil

	case "down", "j":
		if question := q.sess.Question(); question != nil {
			q.opts.CursorDown(len(question.Options))
		}
		return q, nil

	case "space":
		if question := q.sess.Question(); question != nil && q.opts.Cursor < len(question.Options) {
			_ = q.sess.ToggleOption(question.Options[q.opts.Cursor].Label)
		}
		return q, nil

	case "1", "2", "3", "4", "5":
		idx := int(key[0] - '1')
		if question := q.sess.Question(); question != nil && idx < len(question.Options) {
			_ = q.sess.ToggleOption(question.Options[idx].Label)
		}
		return q, nil

	case "m":
		q.sess.ToggleMark(q.sess.Current())
		return q, nil

	case "g":
		in := components.NewTextInput("題號", true, 3)
		q.gotoInput = &in
		return q, in.Init()

	case "c":
		if q.sess.Submitted() {
			q.sess.Reset()
			q.clampCursor()
		}
		return q, nil

	case "enter":
		// Submission is idempotent: once feedback is up, Enter does nothing.
		if !q.sess.Submitted() {
			q.confirming = true
		}
		return q, nil
	}

	return q, nil
}

// clampCursor keeps the option cursor valid after the question changes.
func (q *QuizScreen) clampCursor() {
	if question := q.sess.Question(); question != nil {
		q.opts.Clamp(len(question.Options))
	}
}

// submit grades the session and records the attempt.
func (q *QuizScreen) submit() tea.Cmd {
	result := q.sess.Submit()
	if q.repo == nil || result == nil {
		return nil
	}
	return q.saveAttempt(result)
}

// saveAttempt persists the attempt and its per-question answers.
func (q *QuizScreen) saveAttempt(result *session.Result) tea.Cmd {
	sess := q.sess
	repo := q.repo
	return func() tea.Msg {
		ctx := context.Background()
		attemptID := uuid.New().String()

		err := repo.AppendAttempt(ctx, store.AttemptEventData{
			AttemptID:     attemptID,
			ExamID:        sess.Exam.ID,
			ExamName:      sess.Exam.Name,
			Score:         result.Score,
			Correct:       result.Correct,
			Wrong:         result.Wrong,
			Unanswered:    result.Unanswered,
			QuestionCount: sess.Len(),
			DurationSecs:  int(time.Since(sess.StartedAt).Seconds()),
		})
		if err != nil {
			return attemptSavedMsg{Err: err}
		}

		missed := make(map[int]bool, len(result.Missed))
		for _, m := range result.Missed {
			missed[m.Number] = true
		}

		for i, question := range sess.Questions {
			data := store.AnswerEventData{
				AttemptID:      attemptID,
				QuestionNumber: i + 1,
				Given:          strings.Join(sess.Answer(i), ", "),
				Want:           strings.Join(question.Answer, ", "),
				Correct:        !missed[i+1],
				Marked:         sess.Marked(i),
			}
			if err := repo.AppendAnswer(ctx, data); err != nil {
				return attemptSavedMsg{Err: err}
			}
		}
		return attemptSavedMsg{}
	}
}

package session

import (
	"errors"
	"math"
	"time"

	"github.com/cylin/examdrill/internal/exam"
)

// ErrAlreadySubmitted is returned by mutating operations once the
// session has been submitted. Submission locks all answers; navigation
// and re-viewing remain allowed.
var ErrAlreadySubmitted = errors.New("answers are locked after submission")

// Session holds the in-memory state of one exam attempt: current
// position, recorded answers, review marks and the submitted flag.
// It is owned by a single screen and never shared across goroutines.
type Session struct {
	Exam      exam.Info
	Questions []exam.Question

	// StartedAt is when the attempt began, for history recording.
	StartedAt time.Time

	current   int
	answers   map[int][]string
	marks     map[int]bool
	submitted bool
	result    *Result
}

// New creates a fresh session positioned at the first question with no
// answers or marks recorded.
func New(info exam.Info, questions []exam.Question) *Session {
	return &Session{
		Exam:      info,
		Questions: questions,
		StartedAt: time.Now(),
		answers:   make(map[int][]string),
		marks:     make(map[int]bool),
	}
}

// Len returns the number of questions.
func (s *Session) Len() int { return len(s.Questions) }

// Current returns the index of the question being viewed.
func (s *Session) Current() int { return s.current }

// Question returns the question at the current index, or nil when no
// question set is loaded.
func (s *Session) Question() *exam.Question {
	if s.current < 0 || s.current >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.current]
}

// GoTo moves to question i. Out-of-range moves are no-ops, as is all
// navigation while no question set is loaded.
func (s *Session) GoTo(i int) {
	if i < 0 || i >= len(s.Questions) {
		return
	}
	s.current = i
}

// Next moves forward one question, saturating at the last one.
func (s *Session) Next() {
	if s.current < len(s.Questions)-1 {
		s.current++
	}
}

// Prev moves back one question, saturating at the first one.
func (s *Session) Prev() {
	if s.current > 0 {
		s.current--
	}
}

// Record stores the selection for question i. Multi-select questions
// keep the whole set (empty meaning "no selection"); single-select
// questions keep only the first label. Rejected once submitted.
func (s *Session) Record(i int, labels []string) error {
	if s.submitted {
		return ErrAlreadySubmitted
	}
	if i < 0 || i >= len(s.Questions) {
		return nil
	}
	if s.Questions[i].Type.Multi() {
		s.answers[i] = append([]string(nil), labels...)
		return nil
	}
	if len(labels) > 0 {
		s.answers[i] = labels[:1]
	} else {
		s.answers[i] = nil
	}
	return nil
}

// ToggleOption flips the given option label on the current question.
// Single-select questions clear any other selection first; pressing the
// selected label again clears it.
func (s *Session) ToggleOption(label string) error {
	if s.submitted {
		return ErrAlreadySubmitted
	}
	q := s.Question()
	if q == nil {
		return nil
	}

	current := s.answers[s.current]
	if !q.Type.Multi() {
		if len(current) == 1 && current[0] == label {
			return s.Record(s.current, nil)
		}
		return s.Record(s.current, []string{label})
	}

	next := make([]string, 0, len(current)+1)
	removed := false
	for _, l := range current {
		if l == label {
			removed = true
			continue
		}
		next = append(next, l)
	}
	if !removed {
		next = append(next, label)
	}
	return s.Record(s.current, next)
}

// Answer returns a copy of the stored selection for question i.
func (s *Session) Answer(i int) []string {
	return append([]string(nil), s.answers[i]...)
}

// Answered reports whether question i has a non-empty stored selection.
func (s *Session) Answered(i int) bool {
	return len(s.answers[i]) > 0
}

// AnsweredCount returns the number of questions with a non-empty answer.
func (s *Session) AnsweredCount() int {
	n := 0
	for i := range s.Questions {
		if s.Answered(i) {
			n++
		}
	}
	return n
}

// PercentAnswered returns the answered percentage rounded to one
// decimal place, 0 when no questions are loaded.
func (s *Session) PercentAnswered() float64 {
	if len(s.Questions) == 0 {
		return 0
	}
	pct := float64(s.AnsweredCount()) / float64(len(s.Questions)) * 100
	return math.Round(pct*10) / 10
}

// ToggleMark flips the review flag on question i.
func (s *Session) ToggleMark(i int) {
	if i < 0 || i >= len(s.Questions) {
		return
	}
	s.marks[i] = !s.marks[i]
}

// Marked reports whether question i is flagged for review.
func (s *Session) Marked(i int) bool { return s.marks[i] }

// Submitted reports whether the attempt has been scored.
func (s *Session) Submitted() bool { return s.submitted }

// Submit scores the attempt and locks all answers. Submitting again
// returns the cached result without recomputing.
func (s *Session) Submit() *Result {
	if s.submitted {
		return s.result
	}
	s.submitted = true
	s.result = grade(s.Questions, s.answers)
	return s.result
}

// Result returns the scoring result, or nil before submission.
func (s *Session) Result() *Result { return s.result }

// Reset clears all answers, marks and feedback, returning to the first
// question with inputs editable again.
func (s *Session) Reset() {
	s.answers = make(map[int][]string)
	s.marks = make(map[int]bool)
	s.current = 0
	s.submitted = false
	s.result = nil
	s.StartedAt = time.Now()
}

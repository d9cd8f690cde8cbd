package session

import (
	"sort"
	"strings"

	"github.com/cylin/examdrill/internal/exam"
)

// Scoring constants. Skipped questions carry no penalty; the total is
// not floored at zero.
const (
	PointsPerCorrect = 2.0
	PenaltyPerWrong  = 0.7
)

// UnansweredText is shown in place of the user's answer for skipped
// questions in the missed-question breakdown.
const UnansweredText = "未答"

// Miss describes one missed question (answered wrong or skipped).
type Miss struct {
	Number int    // 1-based question number
	Given  string // user's answer, UnansweredText when empty
	Want   string // correct answer
}

// Result is the outcome of scoring one attempt.
type Result struct {
	Score      float64
	Correct    int
	Wrong      int // answered but incorrect
	Unanswered int // skipped (also collected in Missed)
	Missed     []Miss
}

// Columns splits the missed questions into two display columns, the
// first ceil(n/2) on the left and the remainder on the right.
func (r *Result) Columns() (left, right []Miss) {
	half := (len(r.Missed) + 1) / 2
	return r.Missed[:half], r.Missed[half:]
}

// grade compares every stored answer against its question's answer key.
// Multi-select questions require exact set equality with no partial
// credit; single-select questions compare the single stored label.
func grade(questions []exam.Question, answers map[int][]string) *Result {
	res := &Result{}
	for i, q := range questions {
		user := append([]string(nil), answers[i]...)
		sort.Strings(user)

		var correct bool
		if q.Type.Multi() {
			correct = equalSets(user, q.Answer)
		} else {
			correct = len(user) > 0 && len(q.Answer) > 0 && user[0] == q.Answer[0]
		}

		switch {
		case correct:
			res.Correct++
			res.Score += PointsPerCorrect
			continue
		case len(user) > 0:
			res.Wrong++
			res.Score -= PenaltyPerWrong
		default:
			res.Unanswered++
		}

		given := UnansweredText
		if len(user) > 0 {
			given = strings.Join(user, ", ")
		}
		res.Missed = append(res.Missed, Miss{
			Number: i + 1,
			Given:  given,
			Want:   strings.Join(q.Answer, ", "),
		})
	}
	return res
}

// equalSets compares two sorted label slices for exact equality.
func equalSets(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return len(a) > 0
}

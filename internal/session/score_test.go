package session

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestGrade_AllCorrect(t *testing.T) {
	s := testSession(singleQ("A"), singleQ("B"), multiQ("A", "C"), singleQ("C"))
	s.Record(0, []string{"A"})
	s.Record(1, []string{"B"})
	s.Record(2, []string{"A", "C"})
	s.Record(3, []string{"C"})

	res := s.Submit()

	want := PointsPerCorrect * 4
	if !almostEqual(res.Score, want) {
		t.Errorf("Score = %v, want %v", res.Score, want)
	}
	if res.Correct != 4 || res.Wrong != 0 || res.Unanswered != 0 {
		t.Errorf("counts = %d/%d/%d, want 4/0/0", res.Correct, res.Wrong, res.Unanswered)
	}
	if len(res.Missed) != 0 {
		t.Errorf("Missed = %v, want empty", res.Missed)
	}
}

func TestGrade_MultiOrderIndependent(t *testing.T) {
	a := testSession(multiQ("A", "B"))
	a.Record(0, []string{"B", "A"})

	b := testSession(multiQ("A", "B"))
	b.Record(0, []string{"A", "B"})

	if ra, rb := a.Submit(), b.Submit(); ra.Score != rb.Score || ra.Correct != rb.Correct {
		t.Errorf("order-dependent scoring: %+v vs %+v", ra, rb)
	}
}

func TestGrade_MultiNoPartialCredit(t *testing.T) {
	s := testSession(multiQ("A", "B", "C"))
	s.Record(0, []string{"A", "B"})

	res := s.Submit()
	if res.Correct != 0 || res.Wrong != 1 {
		t.Errorf("subset answer graded as correct: %+v", res)
	}
	if !almostEqual(res.Score, -PenaltyPerWrong) {
		t.Errorf("Score = %v, want %v", res.Score, -PenaltyPerWrong)
	}
}

func TestGrade_WrongVersusSkipped(t *testing.T) {
	s := testSession(singleQ("A"), singleQ("B"))
	s.Record(0, []string{"C"}) // answered wrong: -0.7
	// question 1 skipped: 0

	res := s.Submit()
	if !almostEqual(res.Score, -PenaltyPerWrong) {
		t.Errorf("Score = %v, want %v", res.Score, -PenaltyPerWrong)
	}
	if res.Wrong != 1 || res.Unanswered != 1 {
		t.Errorf("wrong/unanswered = %d/%d, want 1/1", res.Wrong, res.Unanswered)
	}
}

func TestGrade_ThreeQuestionScenario(t *testing.T) {
	// Correct answers A, B, C; user answers A, B, A — the last one wrong.
	s := testSession(singleQ("A"), singleQ("B"), singleQ("C"))
	s.Record(0, []string{"A"})
	s.Record(1, []string{"B"})
	s.Record(2, []string{"A"})

	res := s.Submit()
	if !almostEqual(res.Score, 3.3) {
		t.Errorf("Score = %v, want 3.3", res.Score)
	}
}

func TestGrade_ScoreCanGoNegative(t *testing.T) {
	s := testSession(singleQ("A"), singleQ("A"), singleQ("A"))
	for i := 0; i < 3; i++ {
		s.Record(i, []string{"B"})
	}

	res := s.Submit()
	if !almostEqual(res.Score, -3*PenaltyPerWrong) {
		t.Errorf("Score = %v, want %v (no floor at zero)", res.Score, -3*PenaltyPerWrong)
	}
}

func TestGrade_MissedFormatting(t *testing.T) {
	s := testSession(singleQ("A"), multiQ("B", "D"), singleQ("C"))
	s.Record(0, []string{"B"}) // wrong
	s.Record(1, nil)           // skipped
	s.Record(2, []string{"C"}) // correct

	res := s.Submit()
	if len(res.Missed) != 2 {
		t.Fatalf("Missed = %v, want 2 entries", res.Missed)
	}

	first := res.Missed[0]
	if first.Number != 1 || first.Given != "B" || first.Want != "A" {
		t.Errorf("first miss = %+v", first)
	}

	second := res.Missed[1]
	if second.Number != 2 || second.Given != UnansweredText || second.Want != "B, D" {
		t.Errorf("second miss = %+v", second)
	}
}

func TestResultColumns_HalfSplit(t *testing.T) {
	tests := []struct {
		missed    int
		wantLeft  int
		wantRight int
	}{
		{0, 0, 0},
		{1, 1, 0},
		{2, 1, 1},
		{5, 3, 2},
		{50, 25, 25},
	}

	for _, tt := range tests {
		res := &Result{Missed: make([]Miss, tt.missed)}
		left, right := res.Columns()
		if len(left) != tt.wantLeft || len(right) != tt.wantRight {
			t.Errorf("Columns(%d) = %d/%d, want %d/%d",
				tt.missed, len(left), len(right), tt.wantLeft, tt.wantRight)
		}
	}
}

func TestResultColumns_PreservesOrder(t *testing.T) {
	s := testSession(singleQ("A"), singleQ("A"), singleQ("A"))
	res := s.Submit() // all skipped, all missed

	left, right := res.Columns()
	if left[0].Number != 1 || left[1].Number != 2 || right[0].Number != 3 {
		t.Errorf("columns out of question order: %v | %v", left, right)
	}
}

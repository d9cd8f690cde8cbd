package picker

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/cylin/examdrill/internal/exam"
	"github.com/cylin/examdrill/internal/router"
)

func testCatalog() catalogLoadedMsg {
	infos := []exam.Info{
		{ID: "11201", Name: "一等航行員", File: "11201.json"},
		{ID: "11202", Name: "二等航行員", File: "11202.json"},
	}
	return catalogLoadedMsg{
		Exams:  infos,
		Labels: []string{infos[0].Label(), infos[1].Label()},
	}
}

func TestPicker_ShowsCatalog(t *testing.T) {
	p := New(".", nil)
	p.Update(testCatalog())

	view := p.View(80, 24)
	if !strings.Contains(view, "11201-一等航行員") {
		t.Errorf("view missing exam label:\n%s", view)
	}
}

func TestPicker_CatalogFailure(t *testing.T) {
	p := New(".", nil)
	p.Update(catalogLoadedMsg{Err: &exam.CatalogLoadError{
		Path: "exams.json",
		Err:  errors.New("no such file"),
	}})

	view := p.View(80, 24)
	if !strings.Contains(view, "exams.json") {
		t.Errorf("error view must name the failed resource:\n%s", view)
	}

	// Any key returns to the (empty) picker.
	p.Update(tea.KeyPressMsg{Code: ' '})
	if p.errMsg != "" {
		t.Error("key press should dismiss the error")
	}
}

func TestPicker_QuizLoadFailureKeepsState(t *testing.T) {
	p := New(".", nil)
	p.Update(testCatalog())

	p.Update(quizLoadedMsg{Err: &exam.QuizLoadError{
		Path: "11201.json",
		Err:  errors.New("no such file"),
	}})

	view := p.View(80, 24)
	if !strings.Contains(view, "11201.json") {
		t.Errorf("error view must name the failed resource:\n%s", view)
	}

	// Dismissing the error brings the untouched catalog back.
	p.Update(tea.KeyPressMsg{Code: ' '})
	if len(p.exams) != 2 {
		t.Error("catalog state must survive a failed quiz load")
	}
}

func TestPicker_QuizLoadedPushesSession(t *testing.T) {
	p := New(".", nil)
	p.Update(testCatalog())

	_, cmd := p.Update(quizLoadedMsg{
		Info:      p.exams[0],
		Questions: []exam.Question{{Prompt: "?", Type: exam.SingleChoice, Answer: []string{"A"}}},
	})
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected PushScreenMsg")
	}
}

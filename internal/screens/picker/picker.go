package picker

import (
	"context"
	"fmt"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/cylin/examdrill/internal/exam"
	"github.com/cylin/examdrill/internal/router"
	"github.com/cylin/examdrill/internal/screen"
	"github.com/cylin/examdrill/internal/screens/quiz"
	"github.com/cylin/examdrill/internal/session"
	"github.com/cylin/examdrill/internal/store"
	"github.com/cylin/examdrill/internal/ui/components"
	"github.com/cylin/examdrill/internal/ui/layout"
	"github.com/cylin/examdrill/internal/ui/theme"
)

// catalogLoadedMsg carries the catalog fetch outcome.
type catalogLoadedMsg struct {
	Exams  []exam.Info
	Labels []string
	Err    error
}

// quizLoadedMsg carries a question-set fetch outcome.
type quizLoadedMsg struct {
	Info      exam.Info
	Questions []exam.Question
	Err       error
}

// PickerScreen lists the available exams and starts a session for the
// selected one. A failed load is terminal for that operation only: the
// picker shows the error and keeps its state untouched.
type PickerScreen struct {
	examDir string
	repo    store.EventRepo
	menu    components.Menu
	exams   []exam.Info
	loading bool
	errMsg  string
}

var _ screen.Screen = (*PickerScreen)(nil)
var _ screen.KeyHintProvider = (*PickerScreen)(nil)

// New creates the picker for the given exam directory. repo may be nil.
func New(examDir string, repo store.EventRepo) *PickerScreen {
	return &PickerScreen{
		examDir: examDir,
		repo:    repo,
		loading: true,
	}
}

func (p *PickerScreen) Init() tea.Cmd {
	return p.loadCatalog()
}

func (p *PickerScreen) Title() string {
	return "選擇測驗"
}

func (p *PickerScreen) KeyHints() []layout.KeyHint {
	if p.errMsg != "" {
		return []layout.KeyHint{
			{Key: "any key", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Load exam"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (p *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		p.loading = false
		if msg.Err != nil {
			p.errMsg = msg.Err.Error()
			return p, nil
		}
		p.exams = msg.Exams
		items := make([]components.MenuItem, len(msg.Exams))
		for i, info := range msg.Exams {
			info := info
			items[i] = components.MenuItem{
				Label:  msg.Labels[i],
				Action: func() tea.Cmd { return p.loadQuiz(info) },
			}
		}
		p.menu = components.NewMenu(items)
		return p, nil

	case quizLoadedMsg:
		p.loading = false
		if msg.Err != nil {
			p.errMsg = msg.Err.Error()
			return p, nil
		}
		sess := session.New(msg.Info, msg.Questions)
		return p, func() tea.Msg {
			return router.PushScreenMsg{Screen: quiz.New(sess, p.repo)}
		}

	case tea.KeyMsg:
		if p.errMsg != "" {
			p.errMsg = ""
			return p, nil
		}
		var cmd tea.Cmd
		p.menu, cmd = p.menu.Update(msg)
		return p, cmd
	}

	return p, nil
}

func (p *PickerScreen) View(width, height int) string {
	if p.errMsg != "" {
		body := theme.Incorrect.Render("載入失敗") + "\n\n" +
			theme.Body.Render(p.errMsg) + "\n\n" +
			theme.Hint.Render("按任意鍵返回")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
	}

	if p.loading {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("載入測驗列表…"))
	}

	if len(p.exams) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("測驗列表是空的"))
	}

	title := theme.Title.Width(width).Render("請選擇測驗") + "\n\n"
	return title + p.menu.View()
}

// loadCatalog fetches the catalog once at startup. When history is
// available, each label is annotated with the exam's average score.
func (p *PickerScreen) loadCatalog() tea.Cmd {
	examDir := p.examDir
	repo := p.repo
	return func() tea.Msg {
		infos, err := exam.LoadCatalog(filepath.Join(examDir, exam.CatalogFile))
		if err != nil {
			return catalogLoadedMsg{Err: err}
		}

		labels := make([]string, len(infos))
		for i, info := range infos {
			labels[i] = info.Label()
			if repo == nil {
				continue
			}
			avg, count, err := repo.ExamAverage(context.Background(), info.ID)
			if err == nil && count > 0 {
				labels[i] = fmt.Sprintf("%s（%d 次，平均 %.1f 分）", info.Label(), count, avg)
			}
		}
		return catalogLoadedMsg{Exams: infos, Labels: labels}
	}
}

// loadQuiz fetches and validates one question set. The session is only
// created after a successful load, so a failure leaves any prior
// state intact.
func (p *PickerScreen) loadQuiz(info exam.Info) tea.Cmd {
	examDir := p.examDir
	return func() tea.Msg {
		questions, err := exam.LoadQuestions(filepath.Join(examDir, info.File))
		if err != nil {
			return quizLoadedMsg{Err: err}
		}
		return quizLoadedMsg{Info: info, Questions: questions}
	}
}

package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/cylin/examdrill/internal/session"
	"github.com/cylin/examdrill/internal/ui/components"
	"github.com/cylin/examdrill/internal/ui/theme"
)

const sidebarWidth = 24

func (q *QuizScreen) View(width, height int) string {
	if q.quitConfirm {
		return renderDialog(width, height,
			"確定要離開測驗嗎？", "尚未交卷的作答將會遺失。")
	}
	if q.confirming {
		return renderDialog(width, height,
			"您確定要交卷並計分嗎？", "交卷後將無法修改答案。")
	}

	paneWidth := width - sidebarWidth - 2
	if paneWidth < 20 {
		paneWidth = width
	}

	pane := q.renderQuestionPane(paneWidth)
	if paneWidth == width {
		return pane
	}

	sidebar := q.renderSidebar()
	return lipgloss.JoinHorizontal(lipgloss.Top, pane, "  ", sidebar)
}

func (q *QuizScreen) renderQuestionPane(width int) string {
	question := q.sess.Question()
	if question == nil {
		return theme.Hint.Render("沒有題目")
	}

	var b strings.Builder

	heading := fmt.Sprintf("第 %d 題: %s", q.sess.Current()+1, question.Prompt)
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(width).
		Render(heading))
	b.WriteString("\n")

	for _, img := range question.PromptImages {
		b.WriteString(theme.Hint.Render("[圖] " + img))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("請選擇答案：(%s)", question.Type)))
	b.WriteString("\n\n")

	b.WriteString(q.opts.View(q.sess.OptionStates(q.sess.Current()), q.sess.Submitted()))

	if q.gotoInput != nil {
		b.WriteString("\n")
		b.WriteString(theme.Body.Render("跳至題號: " + q.gotoInput.View()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	bar := components.ProgressBar{
		Label:   "進度",
		Percent: q.sess.PercentAnswered(),
		Width:   width,
	}
	b.WriteString(bar.View())
	b.WriteString("\n")

	if q.sess.Submitted() {
		b.WriteString("\n")
		b.WriteString(q.renderFeedback(width))
	}

	return b.String()
}

// renderSidebar draws one cell per question in rows of five, with
// answered/marked/current styling derived from the session.
func (q *QuizScreen) renderSidebar() string {
	var b strings.Builder
	b.WriteString(theme.Hint.Render("題目"))
	b.WriteString("\n")

	for _, row := range session.SidebarRows(q.sess.SidebarEntries()) {
		cells := make([]string, 0, len(row))
		for _, e := range row {
			cell := fmt.Sprintf("%3d", e.Number)

			style := lipgloss.NewStyle().Foreground(theme.TextDim)
			switch {
			case e.Marked:
				style = theme.Marked
			case e.Answered:
				style = theme.Answered
			}
			if e.Current {
				style = style.Reverse(true).Bold(true)
			}
			cells = append(cells, style.Render(cell))
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Answered.Render("■ 已作答"))
	b.WriteString("  ")
	b.WriteString(theme.Marked.Render("■ 已標記"))
	return b.String()
}

// renderFeedback draws the score and the missed questions in two
// columns, the first half left and the remainder right.
func (q *QuizScreen) renderFeedback(width int) string {
	res := q.sess.Result()
	if res == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("總分：%.1f 分", res.Score)))
	b.WriteString("\n\n")

	if len(res.Missed) == 0 {
		b.WriteString(theme.Correct.Render("恭喜您，全部答對！您是個天才！"))
		return b.String()
	}

	b.WriteString(theme.Incorrect.Render(fmt.Sprintf("您有 %d 題答錯或未答：", len(res.Missed))))
	b.WriteString("\n")

	left, right := res.Columns()
	colStyle := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(width/2 - 1)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		colStyle.Render(missColumn(left)),
		" ",
		colStyle.Render(missColumn(right)),
	))
	return b.String()
}

func missColumn(misses []session.Miss) string {
	lines := make([]string, 0, len(misses))
	for _, m := range misses {
		lines = append(lines, fmt.Sprintf("❌ 第 %d 題：你的答案 %s，正確答案 %s", m.Number, m.Given, m.Want))
	}
	return strings.Join(lines, "\n")
}

func renderDialog(width, height int, title, body string) string {
	content := theme.Title.Render(title) + "\n\n" +
		theme.Body.Render(body) + "\n\n" +
		theme.Hint.Render("(Y/N)")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Card.Render(content))
}

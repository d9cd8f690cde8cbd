package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/cylin/examdrill/internal/session"
	"github.com/cylin/examdrill/internal/ui/theme"
)

// OptionList renders a question's options as checkbox or radio inputs.
// Selection state lives in the session; the component only tracks the
// cursor and draws the projected OptionStates it is given.
type OptionList struct {
	Cursor int
}

// CursorUp moves the cursor up, saturating at the first option.
func (l *OptionList) CursorUp() {
	if l.Cursor > 0 {
		l.Cursor--
	}
}

// CursorDown moves the cursor down, saturating at the last option.
func (l *OptionList) CursorDown(count int) {
	if l.Cursor < count-1 {
		l.Cursor++
	}
}

// Clamp keeps the cursor valid for a question with count options.
func (l *OptionList) Clamp(count int) {
	if l.Cursor >= count {
		l.Cursor = count - 1
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
}

// View renders the option list. When disabled (after submission) every
// input is drawn dimmed and without a cursor.
func (l OptionList) View(options []session.OptionState, disabled bool) string {
	var b strings.Builder

	for i, opt := range options {
		glyph := radioGlyph(opt.Checked)
		if opt.Multi {
			glyph = checkboxGlyph(opt.Checked)
		}

		prefix := "  "
		if i == l.Cursor && !disabled {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s %s. %s", prefix, glyph, opt.Label, opt.Text)
		for _, img := range opt.Images {
			line += "\n      [圖] " + img
		}

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case disabled:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case opt.Checked:
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		}
		if i == l.Cursor && !disabled {
			style = style.Bold(true)
		}

		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

func checkboxGlyph(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

func radioGlyph(checked bool) string {
	if checked {
		return "(●)"
	}
	return "( )"
}

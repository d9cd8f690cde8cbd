package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/cylin/examdrill/internal/ui/theme"
)

// ProgressBar displays the answered percentage as a horizontal bar.
// Percent is 0-100 with one decimal, as produced by the session.
type ProgressBar struct {
	Label   string
	Percent float64
	Width   int
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	percentStr := fmt.Sprintf("  %.1f%%", p.Percent)

	barWidth := p.Width - lipgloss.Width(result) - lipgloss.Width(percentStr)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent / 100)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	result += lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", barWidth-filled))
	result += lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(percentStr)

	return result
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a Unicode progress bar with done/total counts.
func ProgressBar(done, total, width int) string {
	if width < 5 {
		width = 5
	}
	filled := 0
	if total > 0 {
		filled = int(float64(done) / float64(total) * float64(width))
	}
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %d/%d", bar, done, total)
}

// Panel frames content with the current theme's border.
// A positive width fixes the outer width of the frame.
func Panel(content string, width int) string {
	t := Current()
	border := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
	if width > 0 {
		// Width excludes the border itself.
		border = border.Width(width - 2)
	}
	return border.Render(content)
}

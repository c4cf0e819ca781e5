package components

import (
	"strings"

	"github.com/theirongolddev/training/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar with key hints on the left
// and info on the right.
func RenderStatusBar(width int, info string) string {
	t := theme.Active

	style := lipgloss.NewStyle().Foreground(t.TextMuted)

	left := " [tab]switch  [r]eload  [q]uit"
	right := info
	if right != "" {
		right += " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}

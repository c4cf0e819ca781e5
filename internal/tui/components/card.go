// Package components provides reusable widgets for the training dashboard.
package components

import (
	"github.com/theirongolddev/training/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// LayoutRow splits totalWidth into n widths; the first ones take the remainder.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base := totalWidth / n
	remainder := totalWidth % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < remainder {
			widths[i]++
		}
	}
	return widths
}

// Metric is one card in a MetricCardRow. Done cards show their value in
// the success colour.
type Metric struct {
	Label string
	Value string
	Done  bool
}

func metricCard(m Metric, outerWidth int) string {
	t := theme.Active

	valueColor := t.TextPrimary
	if m.Done {
		valueColor = t.Green
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(max(outerWidth-2, 10)).
		Padding(0, 1)

	return card.Render(
		lipgloss.NewStyle().Foreground(valueColor).Bold(true).Render(m.Value) + "\n" +
			lipgloss.NewStyle().Foreground(t.TextMuted).Render(m.Label),
	)
}

// MetricCardRow renders cards side by side, filling exactly totalWidth.
func MetricCardRow(cards []Metric, totalWidth int) string {
	if len(cards) == 0 {
		return ""
	}
	widths := LayoutRow(totalWidth, len(cards))
	rendered := make([]string, len(cards))
	for i, c := range cards {
		rendered[i] = metricCard(c, widths[i])
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

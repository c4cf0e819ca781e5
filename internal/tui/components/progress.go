package components

import (
	"fmt"

	"github.com/theirongolddev/training/internal/model"
	"github.com/theirongolddev/training/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForProgress returns orange/yellow/green as a goal fills up.
func ColorForProgress(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 1:
		return string(t.Green)
	case pct >= 0.5:
		return string(t.Yellow)
	default:
		return string(t.Orange)
	}
}

// GoalBar renders a labeled goal progress bar:
//
//	pushup  ████████░░░░░░░░  20/50 (40%)
func GoalBar(p model.GoalProgress, labelW, barWidth int) string {
	t := theme.Active

	pct := 0.0
	if p.Target > 0 {
		pct = float64(p.Reps) / float64(p.Target)
	}
	if pct > 1 {
		pct = 1
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForProgress(pct)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	countStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForProgress(pct))).Bold(true)
	pctStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, p.ExerciseType)) +
		"  " + bar.ViewAs(pct) + "  " +
		countStyle.Render(fmt.Sprintf("%d/%d", p.Reps, p.Target)) + " " +
		pctStyle.Render(fmt.Sprintf("(%d%%)", p.Percent))
}

package cli

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/training/internal/model"

	"github.com/charmbracelet/lipgloss"
)

func labelWidth(names []string) int {
	w := 0
	for _, n := range names {
		if lipgloss.Width(n) > w {
			w = lipgloss.Width(n)
		}
	}
	return w
}

// RenderGoalProgress renders one bar per goal:
//
//	pushup  [████████░░░░░░░░░░░░] 20/50 (40%)
//
// An empty slice renders nothing.
func RenderGoalProgress(progress []model.GoalProgress, width int) string {
	if len(progress) == 0 {
		return ""
	}

	names := make([]string, len(progress))
	for i, p := range progress {
		names[i] = p.ExerciseType
	}
	lw := labelWidth(names)

	var b strings.Builder
	for _, p := range progress {
		style := behindStyle
		if p.Met() {
			style = metStyle
		}
		fmt.Fprintf(&b, "  %s [%s] %s %s\n",
			valueStyle.Render(fmt.Sprintf("%-*s", lw, p.ExerciseType)),
			style.Render(bar(p.Reps, p.Target, width)),
			repsStyle.Render(fmt.Sprintf("%s/%s", FormatNumber(int64(p.Reps)), FormatNumber(int64(p.Target)))),
			mutedStyle.Render("("+FormatPercent(p.Percent)+")"),
		)
	}
	return b.String()
}

// RenderDailyChart renders a horizontal bar per day for one exercise type.
// Bars are scaled to target when it is positive, otherwise to the largest
// day in the series. Days meeting the target are highlighted.
func RenderDailyChart(exerciseType string, days []model.DailyTotal, target, width int) string {
	if len(days) == 0 {
		return ""
	}

	scale := target
	values := make([]int, len(days))
	for i, d := range days {
		values[i] = d.Reps
		if target <= 0 && d.Reps > scale {
			scale = d.Reps
		}
	}

	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(headerStyle.Render(exerciseType))
	if target > 0 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  goal %s/day", FormatNumber(int64(target)))))
	}
	b.WriteString("  ")
	b.WriteString(dimStyle.Render(RenderSparkline(values)))
	b.WriteString("\n")

	for _, d := range days {
		style := repsStyle
		if target > 0 && d.Reps >= target {
			style = metStyle
		}
		fmt.Fprintf(&b, "  %s %s %s %s\n",
			mutedStyle.Render(d.Date.Format("01-02")),
			mutedStyle.Render(FormatDayOfWeek(int(d.Date.Weekday()))),
			style.Render(bar(d.Reps, scale, width)),
			valueStyle.Render(FormatNumber(int64(d.Reps))),
		)
	}
	return b.String()
}

package components

import (
	"strings"
	"testing"

	"github.com/theirongolddev/training/internal/model"

	"github.com/charmbracelet/lipgloss"
)

func TestLayoutRowSumsToTotal(t *testing.T) {
	widths := LayoutRow(80, 3)
	if len(widths) != 3 {
		t.Fatalf("len = %d", len(widths))
	}
	sum := 0
	for _, w := range widths {
		sum += w
	}
	if sum != 80 {
		t.Fatalf("sum = %d, want 80", sum)
	}
	if widths[0] != 27 || widths[2] != 26 {
		t.Fatalf("widths = %v, want remainder on first items", widths)
	}
	if LayoutRow(80, 0) != nil {
		t.Fatal("n=0 should return nil")
	}
}

func TestTabIdxByKey(t *testing.T) {
	if got := TabIdxByKey('h'); got != 1 {
		t.Fatalf("TabIdxByKey('h') = %d, want 1", got)
	}
	if got := TabIdxByKey('z'); got != -1 {
		t.Fatalf("TabIdxByKey('z') = %d, want -1", got)
	}
}

func TestGoalBarShowsCounts(t *testing.T) {
	out := GoalBar(model.GoalProgress{ExerciseType: "pushup", Reps: 20, Target: 50, Percent: 40}, 8, 20)
	if !strings.Contains(out, "pushup") || !strings.Contains(out, "20/50 (40%)") {
		t.Fatalf("GoalBar = %q", out)
	}
}

func TestRenderTabBarMarksShortcuts(t *testing.T) {
	out := RenderTabBar(0)
	if !strings.Contains(out, "Today") || !strings.Contains(out, "[h]istory") {
		t.Fatalf("RenderTabBar = %q", out)
	}
}

func TestMetricCardRowFillsWidth(t *testing.T) {
	out := MetricCardRow([]Metric{
		{Label: "Reps today", Value: "45"},
		{Label: "Goals met", Value: "1/1", Done: true},
	}, 60)
	if !strings.Contains(out, "Reps today") || !strings.Contains(out, "1/1") {
		t.Fatalf("MetricCardRow = %q", out)
	}
	for _, line := range strings.Split(out, "\n") {
		if w := lipgloss.Width(line); w != 60 {
			t.Fatalf("line width = %d, want 60: %q", w, line)
		}
	}
	if MetricCardRow(nil, 60) != "" {
		t.Fatal("empty row should render nothing")
	}
}

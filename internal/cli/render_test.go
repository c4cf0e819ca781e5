package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/training/internal/model"
)

func TestBar(t *testing.T) {
	tests := []struct {
		value, max, width int
		want              string
	}{
		{20, 50, 10, "████░░░░░░"},
		{0, 50, 4, "░░░░"},
		{80, 50, 4, "████"},
		{5, 0, 3, "░░░"},
		{1 << 62, 50, 4, "████"},
		{1 << 61, 1 << 62, 4, "██░░"},
		{-3, 50, 2, "░░"},
	}
	for _, tt := range tests {
		if got := bar(tt.value, tt.max, tt.width); got != tt.want {
			t.Fatalf("bar(%d, %d, %d) = %q, want %q", tt.value, tt.max, tt.width, got, tt.want)
		}
	}
}

func TestRenderGoalProgress(t *testing.T) {
	out := RenderGoalProgress([]model.GoalProgress{
		{ExerciseType: "pushup", Reps: 20, Target: 50, Percent: 40},
		{ExerciseType: "squat", Reps: 30, Target: 30, Percent: 100},
	}, 10)

	if !strings.Contains(out, "20/50 (40%)") {
		t.Fatalf("missing pushup progress in:\n%s", out)
	}
	if !strings.Contains(out, "30/30 (100%)") {
		t.Fatalf("missing squat progress in:\n%s", out)
	}
	if got := strings.Count(out, "\n"); got != 2 {
		t.Fatalf("lines = %d, want 2", got)
	}
	if RenderGoalProgress(nil, 10) != "" {
		t.Fatal("no goals should render nothing")
	}
}

func TestRenderDailyChart(t *testing.T) {
	day := time.Date(2025, 3, 8, 0, 0, 0, 0, time.Local)
	out := RenderDailyChart("pushup", []model.DailyTotal{
		{Date: day, ExerciseType: "pushup", Reps: 50},
		{Date: day.AddDate(0, 0, 1), ExerciseType: "pushup", Reps: 25},
	}, 50, 4)

	if !strings.Contains(out, "goal 50/day") {
		t.Fatalf("missing goal label in:\n%s", out)
	}
	if !strings.Contains(out, "03-08 Sat ████ 50") {
		t.Fatalf("missing full bar in:\n%s", out)
	}
	if !strings.Contains(out, "03-09 Sun ██░░ 25") {
		t.Fatalf("missing half bar in:\n%s", out)
	}
}

func TestRenderSparkline(t *testing.T) {
	if got := RenderSparkline([]int{0, 7, 14}); got != "▁▄█" {
		t.Fatalf("RenderSparkline = %q", got)
	}
	if RenderSparkline(nil) != "" {
		t.Fatal("empty series should render nothing")
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Exercise", "Reps"},
		Rows:    [][]string{{"pushup", "20"}, {"squat", "5"}},
	})
	if !strings.Contains(out, "│ pushup   │   20 │") {
		t.Fatalf("unexpected table:\n%s", out)
	}
}

package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/training/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleData(now time.Time) Data {
	return Data{
		Records: []model.Record{
			{Seq: 1, ExerciseType: "pushup", Reps: 20, Timestamp: now.Add(-time.Minute)},
			{Seq: 2, ExerciseType: "squat", Reps: 15, Timestamp: now.Add(-2 * time.Minute)},
		},
		Goals: []model.Goal{{ExerciseType: "pushup", Daily: 50}},
	}
}

func loadedApp(t *testing.T) App {
	t.Helper()
	now := time.Date(2025, 3, 9, 12, 0, 0, 0, time.Local)
	a := NewApp(func(context.Context) (Data, error) { return sampleData(now), nil }, 20)
	a.now = func() time.Time { return now }

	msg := a.Init()()
	m, _ := a.Update(msg)
	return m.(App)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestTodayShowsGoalProgress(t *testing.T) {
	a := loadedApp(t)
	view := a.View()
	assert.Contains(t, view, "20/50 (40%)")
	assert.Contains(t, view, "2 records, 1 goals")
}

func TestTabSwitching(t *testing.T) {
	a := loadedApp(t)

	m, _ := a.Update(key("tab"))
	a = m.(App)
	require.Equal(t, tabHistory, a.activeTab)
	assert.Contains(t, a.View(), "squat")

	m, _ = a.Update(key("s"))
	a = m.(App)
	require.Equal(t, tabStats, a.activeTab)
	assert.Contains(t, a.View(), "Streak")

	m, _ = a.Update(key("t"))
	assert.Equal(t, tabToday, m.(App).activeTab)
}

func TestQuit(t *testing.T) {
	a := loadedApp(t)
	_, cmd := a.Update(key("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestLoadErrorIsShown(t *testing.T) {
	a := NewApp(func(context.Context) (Data, error) { return Data{}, errors.New("database locked") }, 20)
	m, _ := a.Update(a.Init()())
	view := m.(App).View()
	assert.True(t, strings.Contains(view, "database locked"), view)
}

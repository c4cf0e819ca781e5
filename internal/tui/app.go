// Package tui provides the interactive Bubble Tea dashboard.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/training/internal/cli"
	"github.com/theirongolddev/training/internal/model"
	"github.com/theirongolddev/training/internal/pipeline"
	"github.com/theirongolddev/training/internal/tui/components"
	"github.com/theirongolddev/training/internal/tui/theme"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Data is everything the dashboard displays.
type Data struct {
	Records []model.Record
	Goals   []model.Goal
}

// Loader reads the dashboard data from storage.
type Loader func(ctx context.Context) (Data, error)

// DataLoadedMsg is sent when a load finishes.
type DataLoadedMsg struct {
	Data Data
	Err  error
}

const (
	tabToday = iota
	tabHistory
	tabStats
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	chromeHeight  = 6 // tab bar, separators, status bar
	statsDays     = 30
)

// App is the root Bubble Tea model.
type App struct {
	load   Loader
	now    func() time.Time
	data   Data
	loaded bool
	err    error

	width     int
	height    int
	activeTab int
	barWidth  int

	history table.Model
}

// NewApp creates the dashboard. barWidth sizes the goal bars.
func NewApp(load Loader, barWidth int) App {
	return App{
		load:     load,
		now:      time.Now,
		width:    defaultWidth,
		height:   defaultHeight,
		barWidth: barWidth,
		history:  newHistoryTable(nil, defaultHeight-chromeHeight),
	}
}

func newHistoryTable(records []model.Record, height int) table.Model {
	cols := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Exercise", Width: 16},
		{Title: "Date", Width: 10},
		{Title: "Time", Width: 8},
		{Title: "Reps", Width: 6},
	}
	rows := make([]table.Row, 0, len(records))
	for _, r := range records {
		local := r.Timestamp.Local()
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", r.Seq),
			r.ExerciseType,
			local.Format(model.DateLayout),
			local.Format("15:04:05"),
			fmt.Sprintf("%d", r.Reps),
		})
	}
	if height < 3 {
		height = 3
	}

	t := theme.Active
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(t.Accent).Bold(true)
	styles.Selected = styles.Selected.Foreground(t.TextPrimary).Background(t.Border)

	tbl := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	tbl.SetStyles(styles)
	if len(rows) > 0 {
		tbl.GotoBottom()
	}
	return tbl
}

func (a App) loadCmd() tea.Cmd {
	load := a.load
	return func() tea.Msg {
		data, err := load(context.Background())
		return DataLoadedMsg{Data: data, Err: err}
	}
}

// Init starts the first data load.
func (a App) Init() tea.Cmd {
	return a.loadCmd()
}

// Update handles messages.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.history.SetHeight(max(3, a.height-chromeHeight))
		return a, nil

	case DataLoadedMsg:
		a.loaded = true
		a.err = msg.Err
		if msg.Err == nil {
			a.data = msg.Data
			a.history = newHistoryTable(a.data.Records, a.height-chromeHeight)
		}
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "tab", "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		case "shift+tab", "left":
			a.activeTab = (a.activeTab + len(components.Tabs) - 1) % len(components.Tabs)
			return a, nil
		case "r":
			return a, a.loadCmd()
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
			if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
				a.activeTab = idx
				return a, nil
			}
		}
		if a.activeTab == tabHistory {
			var cmd tea.Cmd
			a.history, cmd = a.history.Update(msg)
			return a, cmd
		}
	}
	return a, nil
}

// View renders the dashboard.
func (a App) View() string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)
	sep := lipgloss.NewStyle().Foreground(t.Border).Render(strings.Repeat("─", a.width))

	var body string
	switch {
	case !a.loaded:
		body = muted.Render("  Loading...")
	case a.err != nil:
		body = lipgloss.NewStyle().Foreground(t.Red).Render("  Error: " + a.err.Error())
	default:
		switch a.activeTab {
		case tabToday:
			body = a.renderToday()
		case tabHistory:
			body = a.renderHistory()
		case tabStats:
			body = a.renderStats()
		}
	}

	info := fmt.Sprintf("%d records, %d goals", len(a.data.Records), len(a.data.Goals))
	return components.RenderTabBar(a.activeTab) + "\n" + sep + "\n" +
		body + "\n" + sep + "\n" +
		components.RenderStatusBar(a.width, info)
}

func (a App) renderToday() string {
	now := a.now()
	progress := pipeline.Progress(a.data.Records, a.data.Goals, now)

	start := model.StartOfDay(now)
	today := pipeline.FilterByTime(a.data.Records, start, start.AddDate(0, 0, 1))
	reps := 0
	for _, r := range today {
		reps += r.Reps
	}
	met := 0
	for _, p := range progress {
		if p.Met() {
			met++
		}
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Reps today", Value: cli.FormatNumber(int64(reps))},
		{Label: "Entries today", Value: fmt.Sprintf("%d", len(today))},
		{Label: "Goals met", Value: fmt.Sprintf("%d/%d", met, len(progress)), Done: len(progress) > 0 && met == len(progress)},
	}, a.width))
	b.WriteString("\n\n")

	if len(progress) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Active.TextMuted).
			Render("  No goals set. Use `training goal <exercise> --daily N`."))
		return b.String()
	}

	labelW := 0
	for _, p := range progress {
		labelW = max(labelW, len(p.ExerciseType))
	}
	for _, p := range progress {
		b.WriteString("  ")
		b.WriteString(components.GoalBar(p, labelW, a.barWidth))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (a App) renderHistory() string {
	if len(a.data.Records) == 0 {
		return lipgloss.NewStyle().Foreground(theme.Active.TextMuted).Render("  No entries yet.")
	}
	return a.history.View()
}

func (a App) renderStats() string {
	now := a.now()
	since := model.StartOfDay(now).AddDate(0, 0, -(statsDays - 1))
	until := model.StartOfDay(now).AddDate(0, 0, 1)
	stats := pipeline.Stats(a.data.Records, a.data.Goals, since, until, now)
	if len(stats) == 0 {
		return lipgloss.NewStyle().Foreground(theme.Active.TextMuted).
			Render(fmt.Sprintf("  No entries in the last %d days.", statsDays))
	}

	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{
			s.ExerciseType,
			cli.FormatNumber(int64(s.TotalReps)),
			fmt.Sprintf("%d", s.ActiveDays),
			cli.FormatAverage(s.AvgPerDay),
			fmt.Sprintf("%d", s.CurrentStreak),
		})
	}
	return strings.TrimRight(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Last %d days", statsDays),
		Headers: []string{"Exercise", "Total", "Days", "Avg/day", "Streak"},
		Rows:    rows,
	}), "\n")
}

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/theirongolddev/training/internal/cli"
	"github.com/theirongolddev/training/internal/model"
	"github.com/theirongolddev/training/internal/pipeline"
	"github.com/theirongolddev/training/internal/store"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type listOptions struct {
	exercise string
	date     string
	week     bool
	month    bool
	summary  bool
	format   string
}

func newListCmd(a *app) *cobra.Command {
	opts := &listOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List logged exercises",
		Long: "List exercise records in the order they were logged, grouped by exercise.\n" +
			"Shows every record unless narrowed by --date, --week, --month or --exercise.",
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(a, cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.exercise, "exercise", "e", "", "Only this exercise type")
	cmd.Flags().StringVarP(&opts.date, "date", "d", "", "Only this date (YYYY-MM-DD)")
	cmd.Flags().BoolVarP(&opts.week, "week", "w", false, "Only the current week")
	cmd.Flags().BoolVarP(&opts.month, "month", "m", false, "Only the current month")
	cmd.Flags().BoolVarP(&opts.summary, "summary", "s", false, "Show totals and goal progress only")
	cmd.Flags().StringVarP(&opts.format, "format", "o", "table", "Output format (table|json|yaml)")
	return cmd
}

// listScope is the resolved filter plus a human label and reference day
// for goal progress.
type listScope struct {
	filter model.Filter
	label  string
	day    time.Time
}

func resolveListScope(opts *listOptions, now time.Time) (listScope, error) {
	set := 0
	for _, b := range []bool{opts.date != "", opts.week, opts.month} {
		if b {
			set++
		}
	}
	if set > 1 {
		return listScope{}, model.Validationf("--date, --week and --month are mutually exclusive")
	}

	scope := listScope{label: "All records", day: now}
	if opts.exercise != "" {
		name, err := model.NormalizeExerciseType(opts.exercise)
		if err != nil {
			return listScope{}, err
		}
		scope.filter.ExerciseType = name
	}

	today := model.StartOfDay(now)
	switch {
	case opts.date != "":
		d, err := model.ParseDate(opts.date)
		if err != nil {
			return listScope{}, err
		}
		scope.filter.Since, scope.filter.Until = d, d.AddDate(0, 0, 1)
		scope.label = d.Format(model.DateLayout)
		scope.day = d
	case opts.week:
		start := model.StartOfWeek(now)
		scope.filter.Since, scope.filter.Until = start, today.AddDate(0, 0, 1)
		scope.label = "Week of " + start.Format(model.DateLayout)
	case opts.month:
		win := thisMonth(now)
		scope.filter.Since, scope.filter.Until = win.since, win.until
		scope.label = win.label
	}
	return scope, nil
}

func runList(a *app, cmd *cobra.Command, opts *listOptions) error {
	switch opts.format {
	case "table", "json", "yaml":
	default:
		return model.Validationf("unknown format %q (want table, json or yaml)", opts.format)
	}
	now := a.now()
	scope, err := resolveListScope(opts, now)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	return a.withStore(cmd, func(ctx context.Context, s *store.Store) error {
		records, err := s.ListRecords(ctx, scope.filter)
		if err != nil {
			return err
		}

		switch opts.format {
		case "json":
			return writeJSON(out, records)
		case "yaml":
			return writeYAML(out, records)
		}

		if len(records) == 0 {
			if scope.filter.ExerciseType != "" {
				fmt.Fprintf(out, "No entries found for '%s'.\n", scope.filter.ExerciseType)
			} else {
				fmt.Fprintln(out, "No entries found.")
			}
			return nil
		}

		if opts.summary {
			goals, err := s.ListGoals(ctx)
			if err != nil {
				return err
			}
			renderListSummary(out, records, goals, scope, opts.week)
			return nil
		}
		renderListRecords(out, records, scope)
		return nil
	})
}

func renderListRecords(out io.Writer, records []model.Record, scope listScope) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderTitle("EXERCISE LOG  "+scope.label))
	fmt.Fprintln(out)

	for _, g := range pipeline.GroupByType(records) {
		rows := make([][]string, 0, len(g.Records))
		for _, r := range g.Records {
			local := r.Timestamp.Local()
			rows = append(rows, []string{
				fmt.Sprintf("%d", r.Seq),
				local.Format(model.DateLayout),
				local.Format("15:04:05"),
				cli.FormatNumber(int64(r.Reps)),
			})
		}
		fmt.Fprint(out, cli.RenderTable(cli.Table{
			Title:    fmt.Sprintf("%s  %s", g.ExerciseType, cli.FormatReps(g.TotalReps)),
			Headers:  []string{"#", "Date", "Time", "Reps"},
			Rows:     rows,
			LeftCols: []int{1, 2},
		}))
		fmt.Fprintln(out)
	}
}

func renderListSummary(out io.Writer, records []model.Record, goals []model.Goal, scope listScope, weekly bool) {
	var progress []model.GoalProgress
	if weekly {
		progress = pipeline.WeeklyProgress(records, goals, scope.day)
	} else {
		progress = pipeline.Progress(records, goals, scope.day)
	}
	byType := make(map[string]model.GoalProgress, len(progress))
	for _, p := range progress {
		byType[p.ExerciseType] = p
	}

	rows := [][]string{}
	for _, g := range pipeline.GroupByType(records) {
		goal, pct := "-", "-"
		if p, ok := byType[g.ExerciseType]; ok {
			goal = cli.FormatNumber(int64(p.Target))
			pct = cli.FormatPercent(p.Percent)
		}
		rows = append(rows, []string{
			g.ExerciseType,
			cli.FormatNumber(int64(len(g.Records))),
			cli.FormatNumber(int64(g.TotalReps)),
			goal,
			pct,
		})
	}

	goalHeader := "Daily goal"
	if weekly {
		goalHeader = "Weekly goal"
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderTitle("SUMMARY  "+scope.label))
	fmt.Fprintln(out)
	fmt.Fprint(out, cli.RenderTable(cli.Table{
		Headers: []string{"Exercise", "Entries", "Total", goalHeader, "Progress"},
		Rows:    rows,
	}))
}

func writeJSON(w io.Writer, records []model.Record) error {
	if records == nil {
		records = []model.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func writeYAML(w io.Writer, records []model.Record) error {
	if records == nil {
		records = []model.Record{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return err
	}
	return enc.Close()
}

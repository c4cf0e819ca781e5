package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/theirongolddev/training/internal/cli"
	"github.com/theirongolddev/training/internal/model"
	"github.com/theirongolddev/training/internal/pipeline"
	"github.com/theirongolddev/training/internal/store"

	"github.com/spf13/cobra"
)

type graphOptions struct {
	exercise string
	days     int
	month    bool
	output   string
}

func newGraphCmd(a *app) *cobra.Command {
	opts := &graphOptions{}
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Show goal progress and daily reps",
		Long: "Show today's progress toward each daily goal, then one bar per day\n" +
			"for every exercise logged in the last --days days or, with --month,\n" +
			"the current month.",
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGraph(a, cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.exercise, "exercise", "e", "", "Only this exercise type")
	cmd.Flags().IntVarP(&opts.days, "days", "n", 0, "Number of days to chart (default from config)")
	cmd.Flags().BoolVarP(&opts.month, "month", "m", false, "Chart the current month")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the graph to a file instead of stdout")
	return cmd
}

func runGraph(a *app, cmd *cobra.Command, opts *graphOptions) error {
	days := a.cfg.General.GraphDays
	daysSet := cmd.Flags().Changed("days")
	if daysSet {
		days = opts.days
	}
	now := a.now()
	win, err := resolveWindow(now, days, daysSet, opts.month)
	if err != nil {
		return err
	}

	filter := model.Filter{Since: win.since, Until: win.until}
	if opts.exercise != "" {
		name, err := model.NormalizeExerciseType(opts.exercise)
		if err != nil {
			return err
		}
		filter.ExerciseType = name
	}

	return a.withStore(cmd, func(ctx context.Context, s *store.Store) error {
		records, err := s.ListRecords(ctx, filter)
		if err != nil {
			return err
		}
		goals, err := s.ListGoals(ctx)
		if err != nil {
			return err
		}
		if filter.ExerciseType != "" {
			goals = filterGoals(goals, filter.ExerciseType)
		}

		var buf bytes.Buffer
		renderGraph(&buf, records, goals, win, now, a.cfg.General.BarWidth)
		return a.writeReport(cmd, &buf, opts.output, "Graph")
	})
}

func filterGoals(goals []model.Goal, exerciseType string) []model.Goal {
	var out []model.Goal
	for _, g := range goals {
		if g.ExerciseType == exerciseType {
			out = append(out, g)
		}
	}
	return out
}

func renderGraph(w io.Writer, records []model.Record, goals []model.Goal, win window, now time.Time, barWidth int) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderTitle("GOAL PROGRESS  Today"))
	fmt.Fprintln(w)
	if progress := pipeline.Progress(records, goals, now); len(progress) > 0 {
		fmt.Fprint(w, cli.RenderGoalProgress(progress, barWidth))
	} else {
		fmt.Fprintln(w, "  No goals set. Use `training goal <exercise> --daily N`.")
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderTitle("DAILY REPS  "+win.label))
	fmt.Fprintln(w)

	totals := pipeline.AggregateDays(records, win.since, win.until)
	if len(totals) == 0 {
		fmt.Fprintf(w, "  No exercise data in %s.\n", win.desc)
		return
	}

	series := make(map[string][]model.DailyTotal)
	for _, d := range totals {
		series[d.ExerciseType] = append(series[d.ExerciseType], d)
	}
	types := make([]string, 0, len(series))
	for typ := range series {
		types = append(types, typ)
	}
	sort.Strings(types)

	targets := make(map[string]int, len(goals))
	for _, g := range goals {
		targets[g.ExerciseType] = g.Daily
	}
	for _, typ := range types {
		fmt.Fprint(w, cli.RenderDailyChart(typ, series[typ], targets[typ], barWidth))
		fmt.Fprintln(w)
	}
}

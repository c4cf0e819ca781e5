package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/theirongolddev/training/internal/cli"
	"github.com/theirongolddev/training/internal/model"
	"github.com/theirongolddev/training/internal/pipeline"
	"github.com/theirongolddev/training/internal/store"

	"github.com/spf13/cobra"
)

type statsOptions struct {
	exercise string
	days     int
	month    bool
	output   string
}

func newStatsCmd(a *app) *cobra.Command {
	opts := &statsOptions{}
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Per-exercise statistics",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStats(a, cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.exercise, "exercise", "e", "", "Only this exercise type")
	cmd.Flags().IntVarP(&opts.days, "days", "n", 30, "Number of days to include")
	cmd.Flags().BoolVarP(&opts.month, "month", "m", false, "Only the current month")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the statistics to a file instead of stdout")
	return cmd
}

func runStats(a *app, cmd *cobra.Command, opts *statsOptions) error {
	now := a.now()
	win, err := resolveWindow(now, opts.days, cmd.Flags().Changed("days"), opts.month)
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

		stats := pipeline.Stats(records, goals, filter.Since, filter.Until, now)
		if len(stats) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No entries found in %s.\n", win.desc)
			return nil
		}

		var buf bytes.Buffer
		renderStats(&buf, stats, win, now)
		return a.writeReport(cmd, &buf, opts.output, "Statistics")
	})
}

func renderStats(w io.Writer, stats []model.ExerciseStats, win window, now time.Time) {
	rows := make([][]string, 0, len(stats))
	for _, st := range stats {
		best := "-"
		if st.BestDayReps > 0 {
			best = fmt.Sprintf("%s (%s)", cli.FormatNumber(int64(st.BestDayReps)), st.BestDay.Format("01-02"))
		}
		rows = append(rows, []string{
			st.ExerciseType,
			cli.FormatNumber(int64(st.TotalReps)),
			cli.FormatNumber(int64(st.Entries)),
			fmt.Sprintf("%d", st.ActiveDays),
			cli.FormatAverage(st.AvgPerDay),
			best,
			fmt.Sprintf("%d", st.DaysGoalMet),
			fmt.Sprintf("%d", st.CurrentStreak),
			cli.FormatAgo(st.LastLogged, now),
		})
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderTitle("STATISTICS  "+win.label))
	fmt.Fprintln(w)
	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Headers: []string{"Exercise", "Total", "Entries", "Days", "Avg/day", "Best day", "Goal met", "Streak", "Last"},
		Rows:    rows,
	}))
}

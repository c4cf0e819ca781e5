package cmd

import (
	"context"
	"time"

	"github.com/theirongolddev/training/internal/cli"
	"github.com/theirongolddev/training/internal/logger"
	"github.com/theirongolddev/training/internal/model"
	"github.com/theirongolddev/training/internal/pipeline"
	"github.com/theirongolddev/training/internal/store"

	"github.com/spf13/cobra"
)

type addOptions struct {
	reps int
	date string
}

func newAddCmd(a *app) *cobra.Command {
	opts := &addOptions{}
	cmd := &cobra.Command{
		Use:     "add <exercise_type> --reps <n>",
		Short:   "Log an exercise",
		Example: "  training add pushup --reps 20\n  training add squat --reps 30 --date 2025-03-09",
		Args:    exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(a, cmd, opts, args[0])
		},
	}
	cmd.Flags().IntVarP(&opts.reps, "reps", "r", 0, "Number of repetitions")
	cmd.Flags().StringVarP(&opts.date, "date", "d", "", "Date for the entry (YYYY-MM-DD, default today)")
	return cmd
}

func runAdd(a *app, cmd *cobra.Command, opts *addOptions, rawType string) error {
	exerciseType, err := model.NormalizeExerciseType(rawType)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("reps") {
		return model.Validationf("--reps is required")
	}
	if err := model.CheckReps("--reps", opts.reps); err != nil {
		return err
	}

	now := a.now()
	ts := now
	if opts.date != "" {
		day, err := model.ParseDate(opts.date)
		if err != nil {
			return err
		}
		// Keep the current wall-clock time on the chosen date.
		local := now.Local()
		ts = time.Date(day.Year(), day.Month(), day.Day(),
			local.Hour(), local.Minute(), local.Second(), local.Nanosecond(), time.Local)
	}

	out := cmd.OutOrStdout()
	return a.withStore(cmd, func(ctx context.Context, s *store.Store) error {
		rec, err := s.AppendRecord(ctx, model.Record{ExerciseType: exerciseType, Reps: opts.reps, Timestamp: ts})
		if err != nil {
			return err
		}
		logger.Info("record appended", "id", rec.ID, "exercise", rec.ExerciseType, "reps", rec.Reps, "timestamp", rec.Timestamp)
		a.infof(out, "Added %s: %s for %s\n", rec.ExerciseType, cli.FormatReps(rec.Reps), rec.Day())

		return reportDayProgress(ctx, a, cmd, s, rec)
	})
}

// reportDayProgress prints progress toward the daily goal for the record's day.
func reportDayProgress(ctx context.Context, a *app, cmd *cobra.Command, s *store.Store, rec model.Record) error {
	goal, err := s.GetGoal(ctx, rec.ExerciseType)
	if model.IsNotFound(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if goal.Daily <= 0 {
		return nil
	}

	start := model.StartOfDay(rec.Timestamp)
	dayRecords, err := s.ListRecords(ctx, model.Filter{
		ExerciseType: rec.ExerciseType,
		Since:        start,
		Until:        start.AddDate(0, 0, 1),
	})
	if err != nil {
		return err
	}
	p := pipeline.Progress(dayRecords, []model.Goal{goal}, start)
	if len(p) == 1 {
		a.infof(cmd.OutOrStdout(), "Progress towards daily goal: %s (%d/%d reps)\n",
			cli.FormatPercent(p[0].Percent), p[0].Reps, p[0].Target)
	}
	return nil
}

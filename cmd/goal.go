package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/theirongolddev/training/internal/cli"
	"github.com/theirongolddev/training/internal/logger"
	"github.com/theirongolddev/training/internal/model"
	"github.com/theirongolddev/training/internal/pipeline"
	"github.com/theirongolddev/training/internal/store"

	"github.com/spf13/cobra"
)

type goalOptions struct {
	daily  int
	weekly int
	list   bool
}

func newGoalCmd(a *app) *cobra.Command {
	opts := &goalOptions{}
	cmd := &cobra.Command{
		Use:   "goal [exercise_type] [--daily <n>] [--weekly <n>]",
		Short: "Set or view exercise goals",
		Long: "Set a daily (and optionally weekly) rep target for an exercise.\n" +
			"Without flags, shows the goal for one exercise; without arguments, lists all goals.",
		Example: "  training goal pushup --daily 50\n  training goal pushup\n  training goal --list",
		Args:    rangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGoal(a, cmd, opts, args)
		},
	}
	cmd.Flags().IntVar(&opts.daily, "daily", 0, "Daily rep target")
	cmd.Flags().IntVar(&opts.weekly, "weekly", 0, "Weekly rep target")
	cmd.Flags().BoolVarP(&opts.list, "list", "l", false, "List all goals")
	return cmd
}

func runGoal(a *app, cmd *cobra.Command, opts *goalOptions, args []string) error {
	setDaily := cmd.Flags().Changed("daily")
	setWeekly := cmd.Flags().Changed("weekly")

	if opts.list || len(args) == 0 {
		if setDaily || setWeekly {
			return model.Validationf("an exercise type is required when setting goals")
		}
		return a.withStore(cmd, func(ctx context.Context, s *store.Store) error {
			return printGoals(ctx, cmd, s)
		})
	}

	exerciseType, err := model.NormalizeExerciseType(args[0])
	if err != nil {
		return err
	}
	if err := model.CheckReps("--daily", opts.daily); err != nil {
		return err
	}
	if err := model.CheckReps("--weekly", opts.weekly); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	return a.withStore(cmd, func(ctx context.Context, s *store.Store) error {
		if !setDaily && !setWeekly {
			g, err := s.GetGoal(ctx, exerciseType)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Daily goal for %s: %s\n", g.ExerciseType, cli.FormatReps(g.Daily))
			if g.Weekly > 0 {
				fmt.Fprintf(out, "Weekly goal for %s: %s\n", g.ExerciseType, cli.FormatReps(g.Weekly))
			}
			return printTodayBar(ctx, a, out, s, g)
		}

		// Only the targets given on the command line change.
		g := model.Goal{ExerciseType: exerciseType}
		existing, err := s.GetGoal(ctx, exerciseType)
		switch {
		case err == nil:
			g = existing
		case !model.IsNotFound(err):
			return err
		}
		if setDaily {
			g.Daily = opts.daily
		}
		if setWeekly {
			g.Weekly = opts.weekly
		}

		g, err = s.SetGoal(ctx, g)
		if err != nil {
			return err
		}
		logger.Info("goal set", "exercise", g.ExerciseType, "daily", g.Daily, "weekly", g.Weekly)

		if setDaily {
			a.infof(out, "Set daily goal for %s: %s\n", g.ExerciseType, cli.FormatReps(g.Daily))
		}
		if setWeekly {
			a.infof(out, "Set weekly goal for %s: %s\n", g.ExerciseType, cli.FormatReps(g.Weekly))
		}
		return nil
	})
}

// printTodayBar shows today's reps against the daily target.
func printTodayBar(ctx context.Context, a *app, out io.Writer, s *store.Store, g model.Goal) error {
	if g.Daily <= 0 {
		return nil
	}
	today := model.StartOfDay(a.now())
	records, err := s.ListRecords(ctx, model.Filter{
		ExerciseType: g.ExerciseType,
		Since:        today,
		Until:        today.AddDate(0, 0, 1),
	})
	if err != nil {
		return err
	}
	p := pipeline.Progress(records, []model.Goal{g}, today)
	if len(p) == 1 {
		fmt.Fprintf(out, "Today: %s\n", cli.RenderProgressBar(p[0].Reps, p[0].Target, a.cfg.General.BarWidth))
	}
	return nil
}

func printGoals(ctx context.Context, cmd *cobra.Command, s *store.Store) error {
	goals, err := s.ListGoals(ctx)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(goals) == 0 {
		fmt.Fprintln(out, "No goals set yet.")
		return nil
	}

	rows := make([][]string, 0, len(goals))
	for _, g := range goals {
		weekly := "-"
		if g.Weekly > 0 {
			weekly = cli.FormatNumber(int64(g.Weekly))
		}
		rows = append(rows, []string{
			g.ExerciseType,
			cli.FormatNumber(int64(g.Daily)),
			weekly,
			g.UpdatedAt.Local().Format(model.DateLayout),
		})
	}
	fmt.Fprint(out, cli.RenderTable(cli.Table{
		Headers: []string{"Exercise", "Daily", "Weekly", "Updated"},
		Rows:    rows,
	}))
	return nil
}

package cmd

import (
	"context"
	"fmt"

	"github.com/theirongolddev/training/internal/logger"
	"github.com/theirongolddev/training/internal/model"
	"github.com/theirongolddev/training/internal/store"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

type clearOptions struct {
	goals    bool
	exercise string
	date     string
	force    bool
}

func newClearCmd(a *app) *cobra.Command {
	opts := &clearOptions{}
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete stored records and goals",
		Long: "Delete every record and goal. --goals clears only goals;\n" +
			"--exercise and --date clear only matching records.",
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runClear(a, cmd, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.goals, "goals", false, "Clear only goals")
	cmd.Flags().StringVarP(&opts.exercise, "exercise", "e", "", "Clear only records of this exercise type")
	cmd.Flags().StringVarP(&opts.date, "date", "d", "", "Clear only records on this date (YYYY-MM-DD)")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Skip the confirmation prompt")
	return cmd
}

func runClear(a *app, cmd *cobra.Command, opts *clearOptions) error {
	if opts.goals && (opts.exercise != "" || opts.date != "") {
		return model.Validationf("--goals cannot be combined with --exercise or --date")
	}

	filter := model.Filter{}
	if opts.exercise != "" {
		name, err := model.NormalizeExerciseType(opts.exercise)
		if err != nil {
			return err
		}
		filter.ExerciseType = name
	}
	if opts.date != "" {
		d, err := model.ParseDate(opts.date)
		if err != nil {
			return err
		}
		filter.Since, filter.Until = d, d.AddDate(0, 0, 1)
	}

	var prompt string
	switch {
	case opts.goals:
		prompt = "Clear all goals?"
	case !filter.Empty():
		prompt = "Clear " + describeFilter(filter, opts.date) + "?"
	default:
		prompt = "Clear ALL records and goals? This cannot be undone."
	}

	out := cmd.OutOrStdout()
	if !opts.force && a.interactive() {
		confirmed := false
		err := huh.NewConfirm().
			Title(prompt).
			Affirmative("Yes").
			Negative("No").
			Value(&confirmed).
			Run()
		if err != nil {
			return fmt.Errorf("confirmation: %w", err)
		}
		if !confirmed {
			fmt.Fprintln(out, "Operation cancelled.")
			return nil
		}
	}

	return a.withStore(cmd, func(ctx context.Context, s *store.Store) error {
		switch {
		case opts.goals:
			n, err := s.ClearGoals(ctx)
			if err != nil {
				return err
			}
			logger.Info("goals cleared", "count", n)
			a.infof(out, "Cleared %d goal(s).\n", n)

		case !filter.Empty():
			n, err := s.ClearRecords(ctx, filter)
			if err != nil {
				return err
			}
			logger.Info("records cleared", "count", n, "exercise", filter.ExerciseType, "date", opts.date)
			if n == 0 {
				a.infof(out, "No %s found.\n", describeFilter(filter, opts.date))
				return nil
			}
			a.infof(out, "Cleared %d %s.\n", n, describeFilter(filter, opts.date))

		default:
			if err := s.ClearAll(ctx); err != nil {
				return err
			}
			logger.Info("store cleared", "path", s.Path())
			a.infof(out, "All records and goals have been cleared.\n")
		}
		return nil
	})
}

func describeFilter(f model.Filter, date string) string {
	desc := "entries"
	if f.ExerciseType != "" {
		desc = fmt.Sprintf("'%s' entries", f.ExerciseType)
	}
	if date != "" {
		desc += " for " + date
	}
	return desc
}

// Package cmd implements the training CLI commands.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/theirongolddev/training/internal/cli"
	"github.com/theirongolddev/training/internal/config"
	"github.com/theirongolddev/training/internal/logger"
	"github.com/theirongolddev/training/internal/model"
	"github.com/theirongolddev/training/internal/store"
	"github.com/theirongolddev/training/internal/tui/theme"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// app carries global flags and process dependencies shared by all commands.
type app struct {
	dbPath  string
	quiet   bool
	verbose bool

	cfg         config.Config
	now         func() time.Time
	interactive func() bool
	closeLog    func()
}

// Execute is the main entry point called from main.go.
func Execute() {
	a := newApp()
	root := buildRootCmd(a)
	if err := a.execute(context.Background(), root); err != nil {
		color.New(color.FgRed).Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
		os.Exit(model.ExitCode(err))
	}
}

func newApp() *app {
	return &app{
		now:         time.Now,
		interactive: stdinIsTerminal,
		closeLog:    func() {},
	}
}

func newRootCmd() *cobra.Command {
	return buildRootCmd(newApp())
}

// execute runs root, logs a failure and closes the log on every path.
func (a *app) execute(ctx context.Context, root *cobra.Command) error {
	defer func() { a.closeLog() }()
	err := root.ExecuteContext(ctx)
	if err != nil {
		logger.Error("command failed", "error", err, "kind", model.KindOf(err).String(), "exit_code", model.ExitCode(err))
	}
	return err
}

func buildRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "training",
		Short:         "Exercise tracker",
		Long:          "Track exercise reps, set daily goals, and watch your progress.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.dbPath, "db", "", "Database path (default from config or $TRAINING_DB)")
	root.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "Suppress informational output")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log debug output to stderr")

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return model.Validationf("%v", err)
	})

	root.AddCommand(
		newAddCmd(a),
		newGoalCmd(a),
		newListCmd(a),
		newGraphCmd(a),
		newStatsCmd(a),
		newClearCmd(a),
		newConfigCmd(a),
		newTUICmd(a),
	)
	return root
}

// setup loads config, applies the theme and starts logging.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	theme.SetActive(cfg.Appearance.Theme)
	cli.SetTheme(theme.Active)

	a.closeLog = logger.Init(cmd.ErrOrStderr(), a.verbose)
	logger.Debug("command started", "command", cmd.CommandPath(), "config", config.Path())
	return nil
}

// dataPath returns --db if given, otherwise the configured location.
func (a *app) dataPath() string {
	if a.dbPath != "" {
		return a.dbPath
	}
	return config.DataPath(a.cfg)
}

// withStore opens the store, runs fn and closes it.
func (a *app) withStore(cmd *cobra.Command, fn func(ctx context.Context, s *store.Store) error) error {
	s, err := store.Open(a.dataPath())
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return fn(ctx, s)
}

// infof prints informational output unless --quiet is set.
func (a *app) infof(w io.Writer, format string, args ...any) {
	if a.quiet {
		return
	}
	fmt.Fprintf(w, format, args...)
}

// exactArgs is cobra.ExactArgs reporting a ValidationError.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return model.Validationf("%s expects %d argument(s), got %d", cmd.CommandPath(), n, len(args))
		}
		return nil
	}
}

// noArgs is cobra.NoArgs reporting a ValidationError.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return model.Validationf("%s takes no arguments, got %q", cmd.CommandPath(), args[0])
	}
	return nil
}

// rangeArgs is cobra.RangeArgs reporting a ValidationError.
func rangeArgs(lo, hi int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < lo || len(args) > hi {
			return model.Validationf("%s expects %d to %d argument(s), got %d", cmd.CommandPath(), lo, hi, len(args))
		}
		return nil
	}
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

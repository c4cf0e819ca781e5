package cmd

import (
	"context"
	"fmt"

	"github.com/theirongolddev/training/internal/config"
	"github.com/theirongolddev/training/internal/logger"
	"github.com/theirongolddev/training/internal/model"
	"github.com/theirongolddev/training/internal/store"
	"github.com/theirongolddev/training/internal/tui/theme"

	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	var initFile bool
	var setTheme string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show current configuration",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if setTheme != "" {
				if _, ok := theme.Lookup(setTheme); !ok {
					return model.Validationf("unknown theme %q", setTheme)
				}
				a.cfg.Appearance.Theme = setTheme
				initFile = true
			}
			if initFile {
				if err := config.Save(a.cfg); err != nil {
					return model.IOError("saving config", err)
				}
				logger.Info("config saved", "path", config.Path())
				a.infof(cmd.OutOrStdout(), "Config written to %s\n", config.Path())
			}
			return runConfig(a, cmd)
		},
	}
	cmd.Flags().BoolVar(&initFile, "init", false, "Write the effective configuration to the config file")
	cmd.Flags().StringVar(&setTheme, "theme", "", "Set and save the color theme")
	return cmd
}

func runConfig(a *app, cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	cfg := a.cfg

	fmt.Fprintf(out, "  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Fprintln(out, "  Status: loaded")
	} else {
		fmt.Fprintln(out, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [General]")
	fmt.Fprintf(out, "    Data path:  %s\n", a.dataPath())
	fmt.Fprintf(out, "    Graph days: %d\n", cfg.General.GraphDays)
	fmt.Fprintf(out, "    Bar width:  %d\n", cfg.General.BarWidth)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Appearance]")
	fmt.Fprintf(out, "    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Store]")
	err := a.withStore(cmd, func(ctx context.Context, s *store.Store) error {
		records, goals, err := s.Counts(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "    Records: %d\n", records)
		fmt.Fprintf(out, "    Goals:   %d\n", goals)
		return nil
	})
	if err != nil {
		return err
	}

	if path, err := logger.FilePath(); err == nil {
		fmt.Fprintf(out, "    Log:     %s\n", path)
	}
	return nil
}

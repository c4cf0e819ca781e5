package cmd

import (
	"context"
	"fmt"

	"github.com/theirongolddev/training/internal/model"
	"github.com/theirongolddev/training/internal/store"
	"github.com/theirongolddev/training/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch interactive TUI dashboard",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(a, cmd)
		},
	}
}

func runTUI(a *app, cmd *cobra.Command) error {
	// Fail early on a bad data path instead of inside the alt screen.
	if err := a.withStore(cmd, func(context.Context, *store.Store) error { return nil }); err != nil {
		return err
	}

	// Force TrueColor so background styling produces ANSI codes.
	lipgloss.SetColorProfile(termenv.TrueColor)

	dash := tui.NewApp(a.tuiLoader(cmd), a.cfg.General.BarWidth)
	p := tea.NewProgram(dash, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// tuiLoader reopens the store on every load so `r` picks up writes
// from other processes.
func (a *app) tuiLoader(cmd *cobra.Command) tui.Loader {
	return func(ctx context.Context) (tui.Data, error) {
		var data tui.Data
		err := a.withStore(cmd, func(_ context.Context, s *store.Store) error {
			records, err := s.ListRecords(ctx, model.Filter{})
			if err != nil {
				return err
			}
			goals, err := s.ListGoals(ctx)
			if err != nil {
				return err
			}
			data = tui.Data{Records: records, Goals: goals}
			return nil
		})
		return data, err
	}
}

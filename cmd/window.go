package cmd

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/theirongolddev/training/internal/logger"
	"github.com/theirongolddev/training/internal/model"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
)

// window is a run of whole local days ending today.
type window struct {
	since, until time.Time
	label        string // title suffix, e.g. "Last 7d"
	desc         string // e.g. "the last 7 days"
}

func lastDays(now time.Time, days int) window {
	today := model.StartOfDay(now)
	return window{
		since: today.AddDate(0, 0, -(days - 1)),
		until: today.AddDate(0, 0, 1),
		label: fmt.Sprintf("Last %dd", days),
		desc:  fmt.Sprintf("the last %d days", days),
	}
}

func thisMonth(now time.Time) window {
	start := model.StartOfMonth(now)
	return window{
		since: start,
		until: model.StartOfDay(now).AddDate(0, 0, 1),
		label: "Month of " + start.Format("2006-01"),
		desc:  start.Format("January 2006"),
	}
}

// resolveWindow picks the month to date, or the last `days` days.
// daysSet reports whether --days was given explicitly.
func resolveWindow(now time.Time, days int, daysSet, month bool) (window, error) {
	if month {
		if daysSet {
			return window{}, model.Validationf("--days and --month are mutually exclusive")
		}
		return thisMonth(now), nil
	}
	if days < 1 {
		return window{}, model.Validationf("--days must be at least 1, got %d", days)
	}
	return lastDays(now, days), nil
}

// writeReport prints buf, or writes it without colour codes to output.
// what names the report in messages, e.g. "Graph".
func (a *app) writeReport(cmd *cobra.Command, buf *bytes.Buffer, output, what string) error {
	if output == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(output, []byte(ansi.Strip(buf.String())), 0o644); err != nil {
		return model.IOError("writing "+strings.ToLower(what), err)
	}
	logger.Info("report written", "kind", strings.ToLower(what), "path", output)
	a.infof(cmd.OutOrStdout(), "%s saved to %s\n", what, output)
	return nil
}

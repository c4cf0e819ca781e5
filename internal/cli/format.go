// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	return humanize.Comma(n)
}

// FormatReps formats a rep count, e.g. 1 -> "1 rep", 1200 -> "1,200 reps".
func FormatReps(n int) string {
	if n == 1 {
		return "1 rep"
	}
	return FormatNumber(int64(n)) + " reps"
}

// FormatPercent formats an integer percentage.
func FormatPercent(pct int) string {
	return fmt.Sprintf("%d%%", pct)
}

// FormatAverage formats a per-day average with one decimal.
func FormatAverage(f float64) string {
	return humanize.FormatFloat("#,###.#", f)
}

// FormatAgo returns t relative to now, such as "3 hours ago".
func FormatAgo(t, now time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday number.
func FormatDayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}

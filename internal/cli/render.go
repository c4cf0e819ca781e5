package cli

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/training/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Styles, derived from the active theme by SetTheme.
var (
	titleStyle  lipgloss.Style
	headerStyle lipgloss.Style
	valueStyle  lipgloss.Style
	mutedStyle  lipgloss.Style
	metStyle    lipgloss.Style
	repsStyle   lipgloss.Style
	behindStyle lipgloss.Style
	dimStyle    lipgloss.Style
	borderColor lipgloss.Color
)

func init() {
	SetTheme(theme.Active)
}

// SetTheme rebuilds the CLI styles from t.
func SetTheme(t theme.Theme) {
	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.TextPrimary).
		Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	valueStyle = lipgloss.NewStyle().Foreground(t.TextPrimary)
	mutedStyle = lipgloss.NewStyle().Foreground(t.TextMuted)
	metStyle = lipgloss.NewStyle().Foreground(t.Green)
	repsStyle = lipgloss.NewStyle().Foreground(t.Blue)
	behindStyle = lipgloss.NewStyle().Foreground(t.Orange)
	dimStyle = lipgloss.NewStyle().Foreground(t.TextDim)
	borderColor = t.Border
}

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil
	// LeftCols lists columns rendered left-aligned. Defaults to the first.
	LeftCols []int
}

func (t Table) rightAligned(col int) bool {
	if t.LeftCols == nil {
		return col != 0
	}
	for _, c := range t.LeftCols {
		if c == col {
			return false
		}
	}
	return true
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	// Calculate column widths
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
	} else {
		for i, h := range t.Headers {
			if len(h) > widths[i] {
				widths[i] = len(h)
			}
		}
		for _, row := range t.Rows {
			for i, cell := range row {
				if i < numCols && len(cell) > widths[i] {
					widths[i] = len(cell)
				}
			}
		}
	}

	var b strings.Builder

	// Title above table if present
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	// Top border
	b.WriteString(dimStyle.Render("╭"))
	for i, w := range widths {
		b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
		if i < numCols-1 {
			b.WriteString(dimStyle.Render("┬"))
		}
	}
	b.WriteString(dimStyle.Render("╮"))
	b.WriteString("\n")

	// Header row
	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			w := widths[i]
			padded := fmt.Sprintf(" %-*s ", w, h)
			b.WriteString(headerStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")

		// Header separator
		b.WriteString(dimStyle.Render("├"))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("┼"))
			}
		}
		b.WriteString(dimStyle.Render("┤"))
		b.WriteString("\n")
	}

	// Data rows
	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			// Separator row
			b.WriteString(dimStyle.Render("├"))
			for i, w := range widths {
				b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
				if i < numCols-1 {
					b.WriteString(dimStyle.Render("┼"))
				}
			}
			b.WriteString(dimStyle.Render("┤"))
			b.WriteString("\n")
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			w := widths[i]
			cell := ""
			if i < len(row) {
				cell = row[i]
			}

			// Right-align numeric columns
			var padded string
			if !t.rightAligned(i) {
				padded = fmt.Sprintf(" %-*s ", w, cell)
			} else {
				padded = fmt.Sprintf(" %*s ", w, cell)
			}
			b.WriteString(valueStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	// Bottom border
	b.WriteString(dimStyle.Render("╰"))
	for i, w := range widths {
		b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
		if i < numCols-1 {
			b.WriteString(dimStyle.Render("┴"))
		}
	}
	b.WriteString(dimStyle.Render("╯"))
	b.WriteString("\n")

	return b.String()
}

// RenderProgressBar renders a text progress bar followed by current/total.
func RenderProgressBar(current, total int, width int) string {
	if total <= 0 {
		return ""
	}

	return fmt.Sprintf("[%s] %s/%s",
		mutedStyle.Render(bar(current, total, width)),
		FormatNumber(int64(current)),
		FormatNumber(int64(total)),
	)
}

// bar returns a width-wide block bar filled in proportion to value/limit.
func bar(value, limit, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	switch {
	case limit <= 0 || value <= 0:
	case value >= limit:
		filled = width
	default:
		filled = int(float64(value) * float64(width) / float64(limit))
		filled = min(max(filled, 0), width)
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// RenderSparkline generates a unicode block sparkline from a series of values.
func RenderSparkline(values []int) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		max = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := v * (len(blocks) - 1) / max
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(blocks[idx])
	}

	return b.String()
}

package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// CompactFormatter renders one line per game, summary-first. The summary
// command uses it to show a directory of rounds at a glance.
type CompactFormatter struct {
	quiet     bool
	verbose   bool
	colorize  bool
	startTime time.Time
}

// NewCompactFormatter creates a new CompactFormatter.
func NewCompactFormatter(quiet, verbose bool) *CompactFormatter {
	return &CompactFormatter{
		quiet:     quiet,
		verbose:   verbose,
		colorize:  true,
		startTime: time.Now(),
	}
}

// FormatAll renders multiple game reports in compact style.
func (f *CompactFormatter) FormatAll(reports []*Report) error {
	if f.quiet {
		return nil
	}

	greenStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	maxNameLen := 0
	for _, r := range reports {
		if len(r.GameName) > maxNameLen {
			maxNameLen = len(r.GameName)
		}
	}

	fmt.Println()
	for _, r := range reports {
		padding := strings.Repeat(" ", maxNameLen-len(r.GameName))
		winner := Winner(r)
		if winner == "" {
			winner = "no scorecards"
		}
		line := fmt.Sprintf("  %s%s  %s  %s",
			r.GameName, padding, r.Result.Metadata.ScoringName, winner)
		if f.colorize {
			fmt.Printf("  %s %s%s  %s %s\n",
				greenStyle.Render("⛳"),
				r.GameName, padding,
				dimStyle.Render(r.Result.Metadata.ScoringName),
				winner)
		} else {
			fmt.Println(line)
		}

		if f.verbose {
			for _, e := range r.Result.Entries {
				fmt.Printf("      %2d  %s  %s\n", e.Position, e.PlayerName,
					FormatScore(r.Result.Metadata.ScoringMethod, e.Score))
			}
		}
	}

	f.printSummaryLine(len(reports), greenStyle)
	return nil
}

// Format renders a single report in compact style.
func (f *CompactFormatter) Format(report *Report) error {
	return f.FormatAll([]*Report{report})
}

func (f *CompactFormatter) printSummaryLine(gameCount int, greenStyle lipgloss.Style) {
	duration := time.Since(f.startTime)
	fmt.Println()

	summaryText := fmt.Sprintf("%d %s (%s)",
		gameCount, pluralizeCount("game", gameCount), formatDuration(duration))

	switch {
	case f.colorize && gameCount > 0 && f.isTTY():
		printCelebration(summaryText)
	case f.colorize:
		fmt.Printf("%s\n", greenStyle.Render(summaryText))
	default:
		fmt.Println(summaryText)
	}
}

// isTTY returns true if stdout is a terminal.
func (f *CompactFormatter) isTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// pluralizeCount returns singular or plural form based on count.
func pluralizeCount(s string, count int) string {
	if count == 1 {
		return s
	}
	return s + "s"
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

package output

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// ConsoleFormatter formats leaderboards for console display.
type ConsoleFormatter struct {
	quiet     bool
	verbose   bool
	colorize  bool
	startTime time.Time
}

// NewConsoleFormatter creates a new ConsoleFormatter.
func NewConsoleFormatter(quiet, verbose bool) *ConsoleFormatter {
	return &ConsoleFormatter{
		quiet:     quiet,
		verbose:   verbose,
		colorize:  true,
		startTime: time.Now(),
	}
}

// Format renders the leaderboard report to stdout.
func (f *ConsoleFormatter) Format(report *Report) error {
	if f.quiet {
		// One line, winner only.
		if w := Winner(report); w != "" {
			fmt.Printf("%s: %s\n", report.GameName, w)
		}
		return nil
	}

	f.printHeader(report)
	f.printEntries(report)
	f.printFooter(report)

	return nil
}

func (f *ConsoleFormatter) printHeader(report *Report) {
	title := report.GameName
	if report.CourseName != "" {
		title += " at " + report.CourseName
	}
	if f.colorize {
		bold := lipgloss.NewStyle().Bold(true)
		fmt.Println(bold.Render(title))
	} else {
		fmt.Println(title)
	}

	dim := f.style(lipgloss.NewStyle().Foreground(lipgloss.Color("8")))
	md := report.Result.Metadata
	fmt.Printf("%s\n\n", dim.Render(md.ScoringName+" · "+md.ScoringDetails))
}

func (f *ConsoleFormatter) printEntries(report *Report) {
	if len(report.Result.Entries) == 0 {
		fmt.Println("No scorecards recorded.")
		return
	}

	nameWidth := 0
	for _, e := range report.Result.Entries {
		if len(e.PlayerName) > nameWidth {
			nameWidth = len(e.PlayerName)
		}
	}

	green := f.style(lipgloss.NewStyle().Foreground(lipgloss.Color("10")))
	dim := f.style(lipgloss.NewStyle().Foreground(lipgloss.Color("8")))

	for _, e := range report.Result.Entries {
		line := fmt.Sprintf("  %2d  %-*s  %6s",
			e.Position, nameWidth, e.PlayerName,
			FormatScore(report.Result.Metadata.ScoringMethod, e.Score))
		if e.Position == 1 {
			fmt.Println(green.Render(line))
		} else {
			fmt.Println(line)
		}
		if f.verbose {
			if detail := detailLine(e.Details); detail != "" {
				fmt.Printf("      %s\n", dim.Render(detail))
			}
		}
	}
}

func (f *ConsoleFormatter) printFooter(report *Report) {
	if len(report.Result.Entries) == 0 {
		return
	}
	dim := f.style(lipgloss.NewStyle().Foreground(lipgloss.Color("8")))
	duration := time.Since(f.startTime).Round(time.Millisecond)
	fmt.Printf("\n%s\n", dim.Render(fmt.Sprintf("%d players (%v)", len(report.Result.Entries), duration)))
}

// FormatPMP renders the stroke allocation table to stdout.
func (f *ConsoleFormatter) FormatPMP(report *PMPReport) error {
	if f.quiet {
		return nil
	}

	title := report.GameName
	if report.CourseName != "" {
		title += " at " + report.CourseName
	}
	if f.colorize {
		fmt.Println(lipgloss.NewStyle().Bold(true).Render(title))
	} else {
		fmt.Println(title)
	}
	fmt.Println()

	dim := f.style(lipgloss.NewStyle().Foreground(lipgloss.Color("8")))

	for _, p := range report.Participants {
		entries := report.Table[p.UserID]
		fmt.Printf("%s  %s\n", p.FullName,
			dim.Render(fmt.Sprintf("(course %d, playing %d, match %d)",
				p.CourseHandicap, p.PlayingHandicap, p.MatchHandicap)))

		total := 0
		for _, e := range entries {
			total += e.StrokesReceived
			if e.StrokesReceived == 0 && !f.verbose {
				continue
			}
			fmt.Printf("  hole %2d  par %d  +%d strokes = %d\n",
				e.HoleNumber, e.HolePar, e.StrokesReceived, e.PlayerMatchPar)
		}
		fmt.Printf("  %s\n\n", dim.Render(fmt.Sprintf("%d strokes received", total)))
	}

	return nil
}

// style returns the given style, or a plain style when colors are off.
func (f *ConsoleFormatter) style(s lipgloss.Style) lipgloss.Style {
	if !f.colorize {
		return lipgloss.NewStyle()
	}
	return s
}

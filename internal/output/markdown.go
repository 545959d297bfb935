package output

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// MarkdownFormatter formats output as Markdown.
type MarkdownFormatter struct {
	quiet      bool
	verbose    bool
	outputFile string
}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter(quiet, verbose bool, outputFile string) *MarkdownFormatter {
	return &MarkdownFormatter{
		quiet:      quiet,
		verbose:    verbose,
		outputFile: outputFile,
	}
}

// Format renders the leaderboard report as Markdown.
func (f *MarkdownFormatter) Format(report *Report) error {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("# %s\n\n", report.GameName))
	builder.WriteString(fmt.Sprintf("**Generated:** %s\n\n", time.Now().Format("2006-01-02 15:04:05")))
	if report.CourseName != "" {
		builder.WriteString(fmt.Sprintf("**Course:** %s\n\n", report.CourseName))
	}
	md := report.Result.Metadata
	builder.WriteString(fmt.Sprintf("**Format:** %s. %s\n\n", md.ScoringName, md.ScoringDetails))
	builder.WriteString(strings.Repeat("-", 50) + "\n\n")

	builder.WriteString("## Standings\n\n")
	if len(report.Result.Entries) == 0 {
		builder.WriteString("*No scorecards recorded.*\n")
	} else {
		builder.WriteString("| Pos | Player | Score |\n")
		builder.WriteString("|-----|--------|-------|\n")
		for _, e := range report.Result.Entries {
			builder.WriteString(fmt.Sprintf("| %d | %s | %s |\n",
				e.Position, e.PlayerName, FormatScore(md.ScoringMethod, e.Score)))
		}
		builder.WriteString("\n")
	}

	if f.verbose && len(report.Result.Entries) > 0 {
		builder.WriteString("## Details\n\n")
		for _, e := range report.Result.Entries {
			if detail := detailLine(e.Details); detail != "" {
				builder.WriteString(fmt.Sprintf("- **%s**: %s\n", e.PlayerName, detail))
			}
		}
		builder.WriteString("\n")
	}

	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, []byte(builder.String()), 0o644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
		return nil
	}

	fmt.Print(builder.String())
	return nil
}

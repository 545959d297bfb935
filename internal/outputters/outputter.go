// Package outputters dispatches reports to the configured formatter.
package outputters

import (
	"fmt"
	"time"

	"github.com/dotcommander/golfx/internal/config"
	"github.com/dotcommander/golfx/internal/output"
)

// Outputter handles output formatting.
type Outputter struct {
	config *config.Config
}

// NewOutputter creates a new Outputter.
func NewOutputter(config *config.Config) *Outputter {
	return &Outputter{
		config: config,
	}
}

// Format renders the leaderboard report using the configured format.
func (o *Outputter) Format(report *output.Report, format string) error {
	if report.StartTime.IsZero() {
		report.StartTime = time.Now()
	}

	switch format {
	case "console":
		formatter := output.NewConsoleFormatter(o.config.Quiet, o.config.Verbose)
		return formatter.Format(report)
	case "json":
		formatter := output.NewJSONFormatter(o.config.Quiet, true, o.config.Output)
		return formatter.Format(report)
	case "markdown":
		formatter := output.NewMarkdownFormatter(o.config.Quiet, o.config.Verbose, o.config.Output)
		return formatter.Format(report)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// FormatPMP renders the allocation report using the configured format.
// Markdown has no PMP rendering; it falls back to console.
func (o *Outputter) FormatPMP(report *output.PMPReport, format string) error {
	switch format {
	case "json":
		formatter := output.NewJSONFormatter(o.config.Quiet, true, o.config.Output)
		return formatter.FormatPMP(report)
	default:
		formatter := output.NewConsoleFormatter(o.config.Quiet, o.config.Verbose)
		return formatter.FormatPMP(report)
	}
}

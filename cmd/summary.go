package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/golfx/internal/config"
	"github.com/dotcommander/golfx/internal/discovery"
	"github.com/dotcommander/golfx/internal/output"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [dir]",
	Short: "Summarize every game file under a directory",
	Long: `Discovers game files (*.game.yaml, *.game.yml, *.game.json, and
games/ trees) under a directory and prints each game's winner, one line
per game.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := ""
		if len(args) == 1 {
			dir = args[0]
		}
		if err := runSummary(dir); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(dir string) error {
	cfg, err := config.LoadConfig(rootPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}
	if dir == "" {
		dir = cfg.Root
	}

	fd := discovery.NewFileDiscovery(dir)
	files, err := fd.DiscoverFiles()
	if err != nil {
		return fmt.Errorf("error discovering game files: %w", err)
	}
	if len(files) == 0 {
		fmt.Printf("No game files found under %s\n", dir)
		return nil
	}

	var reports []*output.Report
	for _, f := range files {
		report, err := buildReport(cfg, f.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Skipping %s: %v\n", f.RelPath, err)
			continue
		}
		reports = append(reports, report)
	}

	formatter := output.NewCompactFormatter(cfg.Quiet, cfg.Verbose)
	return formatter.FormatAll(reports)
}

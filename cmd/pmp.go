package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/golfx/internal/allocation"
	"github.com/dotcommander/golfx/internal/config"
	"github.com/dotcommander/golfx/internal/discovery"
	"github.com/dotcommander/golfx/internal/gamefile"
	"github.com/dotcommander/golfx/internal/output"
	"github.com/dotcommander/golfx/internal/outputters"
)

var pmpCmd = &cobra.Command{
	Use:   "pmp <game-file>",
	Short: "Show the stroke allocation table for a game file",
	Long: `Shows each player's Player-Match-Par table: the handicap strokes they
receive on every hole under the game's handicap policy, and the resulting
personal par they are scored against.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runPMP(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(pmpCmd)
}

func runPMP(path string) error {
	cfg, err := config.LoadConfig(rootPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	absPath, err := discovery.ValidateFilePath(path)
	if err != nil {
		return err
	}
	game, err := gamefile.Load(absPath)
	if err != nil {
		return err
	}

	table := game.PMP(allocation.Options{FairRandom: cfg.FairRandom})
	report := &output.PMPReport{
		GameName:     game.Name,
		CourseName:   game.CourseName,
		Participants: game.Participants,
		Holes:        game.Holes,
		Table:        table,
	}

	outputter := outputters.NewOutputter(cfg)
	if err := outputter.FormatPMP(report, cfg.Format); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}

	return nil
}

// Package cmd wires the golfx CLI: leaderboard calculation, stroke
// allocation tables, scoring method reference, and multi-game summaries.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dotcommander/golfx/internal/allocation"
	"github.com/dotcommander/golfx/internal/config"
	"github.com/dotcommander/golfx/internal/discovery"
	"github.com/dotcommander/golfx/internal/gamefile"
	"github.com/dotcommander/golfx/internal/output"
	"github.com/dotcommander/golfx/internal/outputters"
	"github.com/dotcommander/golfx/internal/scoring"
	"github.com/dotcommander/golfx/internal/types"
)

var (
	rootPath     string
	quiet        bool
	verbose      bool
	outputFormat string
	outputFile   string
	method       string
	handicapMode string
	fairRandom   bool
)

// exitFunc is swapped out in tests.
var exitFunc = os.Exit

var rootCmd = &cobra.Command{
	Use:   "golfx [game-file]",
	Short: "Golf X - handicap-aware scoring for golf games",
	Long: `Golf X computes leaderboards for golf games recorded in game files.

It derives course, playing, and match handicaps from each player's handicap
index, allocates handicap strokes per hole by stroke index, and scores the
round under stroke play, stableford, match play, or skins.

With a game file argument it behaves like the leaderboard command; use the
specialized commands for allocation tables and method reference.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			_ = cmd.Help()
			return
		}
		if err := runLeaderboard(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&rootPath, "root", "r", "", "Directory searched for game files (default current directory)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "console", "Output format for reports (console|json|markdown)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Output file for reports (requires --format)")
	rootCmd.PersistentFlags().StringVarP(&method, "method", "m", "", "Override the game's scoring method (stroke_play|stableford|match_play|skins)")
	rootCmd.PersistentFlags().StringVar(&handicapMode, "handicap", config.HandicapModePMP, "Handicap application (pmp|legacy|none)")
	rootCmd.PersistentFlags().BoolVar(&fairRandom, "fair-random", false, "Cap random allocation at one stroke per hole per pass")

	bindFlags()
}

// bindFlags registers the persistent flags with viper. Tests call it again
// after resetting viper.
func bindFlags() {
	viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("method", rootCmd.PersistentFlags().Lookup("method"))
	viper.BindPFlag("handicap", rootCmd.PersistentFlags().Lookup("handicap"))
	viper.BindPFlag("fairRandom", rootCmd.PersistentFlags().Lookup("fair-random"))
}

func initConfig() {
	configPaths := []string{".golfxrc.json", ".golfxrc.yaml", ".golfxrc.yml"}
	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			viper.SetConfigFile(path)
			if err := viper.ReadInConfig(); err != nil {
				fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
				exitFunc(1)
			}
			break
		}
	}
}

// buildReport loads a game file and computes its leaderboard under the
// current configuration.
func buildReport(cfg *config.Config, path string) (*output.Report, error) {
	absPath, err := discovery.ValidateFilePath(path)
	if err != nil {
		return nil, err
	}

	game, err := gamefile.Load(absPath)
	if err != nil {
		return nil, err
	}

	scoringMethod := game.ScoringMethod
	if cfg.Method != "" {
		scoringMethod = types.ScoringMethod(cfg.Method)
	}

	usePMP := cfg.Handicap == config.HandicapModePMP
	includeHandicap := cfg.Handicap == config.HandicapModeLegacy
	opts := allocation.Options{FairRandom: cfg.FairRandom}

	cards := game.Scorecards(usePMP, opts)
	result := scoring.CalculateLeaderboard(cards, scoringMethod, includeHandicap)

	return &output.Report{
		GameID:     game.ID,
		GameName:   game.Name,
		CourseName: game.CourseName,
		Source:     path,
		StartTime:  time.Now(),
		Result:     result,
	}, nil
}

func runLeaderboard(path string) error {
	cfg, err := config.LoadConfig(rootPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	report, err := buildReport(cfg, path)
	if err != nil {
		return err
	}

	outputter := outputters.NewOutputter(cfg)
	if err := outputter.Format(report, cfg.Format); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}

	return nil
}

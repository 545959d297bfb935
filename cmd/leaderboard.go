package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard <game-file>",
	Short: "Compute the leaderboard for a game file",
	Long: `Computes the leaderboard for a single game file.

The game file's scoring method is used unless --method overrides it. By
default each player's score is measured against their personal pars from
the game's handicap policy; --handicap legacy subtracts handicap strokes
from raw scores instead, and --handicap none scores gross.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runLeaderboard(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(leaderboardCmd)
}

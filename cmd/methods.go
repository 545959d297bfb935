package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dotcommander/golfx/internal/scoring"
	"github.com/dotcommander/golfx/internal/types"
)

var methodsCmd = &cobra.Command{
	Use:   "methods [method]",
	Short: "List the supported scoring methods",
	Long: `Lists every scoring method with its ranking direction and rules.

With a method argument, shows only that method. Unknown methods fall back
to stroke play, matching the scoring engine.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 1 {
			printMethod(scoring.Metadata(types.ScoringMethod(args[0])))
			return
		}
		for _, m := range scoring.Methods() {
			printMethod(scoring.Metadata(m))
		}
	},
}

func init() {
	rootCmd.AddCommand(methodsCmd)
}

func printMethod(md types.LeaderboardMetadata) {
	bold := lipgloss.NewStyle().Bold(true)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	direction := "lowest score wins"
	if md.SortDirection == types.SortDescending {
		direction = "highest score wins"
	}

	fmt.Printf("%s %s\n", bold.Render(md.ScoringName), dim.Render("("+string(md.ScoringMethod)+", "+direction+")"))
	fmt.Printf("  %s\n\n", md.ScoringDetails)
}

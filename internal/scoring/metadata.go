package scoring

import (
	"github.com/dotcommander/golfx/internal/types"
)

// methodMetadata holds the static descriptive text for every scoring method,
// for consumers that display rules next to standings.
var methodMetadata = map[types.ScoringMethod]types.LeaderboardMetadata{
	types.MethodStrokePlay: {
		ScoringMethod:   types.MethodStrokePlay,
		ScoringName:     "Stroke Play",
		SortDirection:   types.SortAscending,
		SortDescription: "Lowest score relative to par wins",
		ScoringDetails: "Every stroke counts. Each player's total strokes are " +
			"compared against their par (personal par when handicap strokes " +
			"are in play) and the lowest score relative to par wins. Ties are " +
			"broken on back-nine strokes.",
	},
	types.MethodStableford: {
		ScoringMethod:   types.MethodStableford,
		ScoringName:     "Stableford",
		SortDirection:   types.SortDescending,
		SortDescription: "Most points wins",
		ScoringDetails: "Points are earned per hole based on score against par: " +
			"5 for double eagle or better, 4 for eagle, 3 for birdie, 2 for par, " +
			"1 for bogey, 0 for double bogey or worse. A blow-up hole costs " +
			"nothing extra, so aggressive play is rewarded. Most points wins; " +
			"ties are broken on holes scoring points, then back-nine points.",
	},
	types.MethodMatchPlay: {
		ScoringMethod:   types.MethodMatchPlay,
		ScoringName:     "Match Play",
		SortDirection:   types.SortDescending,
		SortDescription: "Most points from head-to-head holes wins",
		ScoringDetails: "Every hole is a head-to-head contest against every " +
			"other player: win the hole for 2 points, halve it for 1. Total " +
			"strokes don't matter, only winning holes. Most points wins; ties " +
			"are broken on holes won outright, then fewest total strokes.",
	},
	types.MethodSkins: {
		ScoringMethod:   types.MethodSkins,
		ScoringName:     "Skins",
		SortDirection:   types.SortDescending,
		SortDescription: "Most skins wins",
		ScoringDetails: "Each hole is worth one skin, claimed only by winning " +
			"the hole outright. When a hole is tied its skin carries over, so " +
			"the next hole is worth more. Most skins wins; ties are broken on " +
			"holes won outright, then fewest total strokes.",
	},
}

// Metadata returns the descriptive metadata for a scoring method. Unknown
// methods get stroke-play metadata, mirroring the engine's scoring fallback.
func Metadata(method types.ScoringMethod) types.LeaderboardMetadata {
	if md, ok := methodMetadata[method]; ok {
		return md
	}
	return methodMetadata[types.MethodStrokePlay]
}

// Methods lists the supported scoring methods in display order.
func Methods() []types.ScoringMethod {
	return []types.ScoringMethod{
		types.MethodStrokePlay,
		types.MethodStableford,
		types.MethodMatchPlay,
		types.MethodSkins,
	}
}

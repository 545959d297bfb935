// Package scoring implements the leaderboard engine: it converts a set of
// per-player scorecards into a ranked result under one of four scoring
// methods (stroke play, stableford, match play, skins).
//
// The engine is pure: no I/O, no shared state, inputs treated as immutable
// snapshots. Recomputing with identical inputs yields identical output.
// Empty input produces an empty result with correct metadata, never an
// error. The engine sits under an interactive UI where a wrong-looking
// number beats a crash, the same fail-soft policy as the handicap math.
package scoring

import (
	"sort"

	"github.com/dotcommander/golfx/internal/handicap"
	"github.com/dotcommander/golfx/internal/types"
)

// CalculateLeaderboard ranks the given scorecards under the scoring method.
//
// includeHandicap enables the legacy per-hole handicap-stroke subtraction for
// methods that support it. This is an alternate path to PMP-based
// personal-par handicapping: a caller that already baked personal pars into
// the scorecards' hole pars must pass includeHandicap=false, or strokes would
// be discounted twice.
//
// All scorecards must cover the same hole set, ordered by hole number; the
// engine does not validate this (caller error by contract).
func CalculateLeaderboard(scorecards []types.Scorecard, method types.ScoringMethod, includeHandicap bool) types.LeaderboardResult {
	result := types.LeaderboardResult{
		Metadata: Metadata(method),
		Entries:  []types.LeaderboardEntry{},
	}
	if len(scorecards) == 0 {
		return result
	}

	switch method {
	case types.MethodStableford:
		result.Entries = stablefordEntries(scorecards, includeHandicap)
	case types.MethodMatchPlay:
		result.Entries = matchPlayEntries(scorecards, includeHandicap)
	case types.MethodSkins:
		result.Entries = skinsEntries(scorecards, includeHandicap)
	default:
		// Stroke play, and the fallback for anything unrecognized.
		result.Entries = strokePlayEntries(scorecards, includeHandicap)
	}

	assignPositions(result.Entries)
	return result
}

// assignPositions walks entries already sorted in ranking order and assigns
// standard 1,2,2,4 positions: a score equal to the previous entry's inherits
// its position, and the next distinct score resumes at its 1-based index.
func assignPositions(entries []types.LeaderboardEntry) {
	for i := range entries {
		if i > 0 && entries[i].Score == entries[i-1].Score {
			entries[i].Position = entries[i-1].Position
			continue
		}
		entries[i].Position = i + 1
	}
}

// legacyHoleStrokes is the legacy handicap-stroke subtraction for one hole:
// the strokes the card's playing handicap receives at the hole's stroke
// index, or 0 when no playing handicap is recorded.
func legacyHoleStrokes(sc types.Scorecard, hole types.HoleScore) int {
	if sc.PlayingHandicap == nil {
		return 0
	}
	return handicap.HoleStrokes(*sc.PlayingHandicap, hole.StrokeIndex)
}

// backNineHoles returns the final nine holes of a card, or the whole card
// when it is shorter than nine holes.
func backNineHoles(holes []types.HoleScore) []types.HoleScore {
	if len(holes) <= 9 {
		return holes
	}
	return holes[len(holes)-9:]
}

// playedStrokes sums the raw strokes of every played hole on a card.
func playedStrokes(sc types.Scorecard) int {
	total := 0
	for _, h := range sc.Holes {
		if h.Strokes > 0 {
			total += h.Strokes
		}
	}
	return total
}

// minHoleCount is the number of holes every card in the set covers.
func minHoleCount(scorecards []types.Scorecard) int {
	n := len(scorecards[0].Holes)
	for _, sc := range scorecards[1:] {
		if len(sc.Holes) < n {
			n = len(sc.Holes)
		}
	}
	return n
}

// sortEntries orders entries by score in the given direction, using less for
// method-specific tie-breaks between equal scores.
func sortEntries(entries []types.LeaderboardEntry, direction types.SortDirection, less func(a, b types.LeaderboardEntry) bool) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Score != b.Score {
			if direction == types.SortAscending {
				return a.Score < b.Score
			}
			return a.Score > b.Score
		}
		if less == nil {
			return false
		}
		return less(a, b)
	})
}

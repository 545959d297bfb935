package scoring

import (
	"github.com/dotcommander/golfx/internal/types"
)

// stablefordPoints maps strokes-relative-to-par to stableford points.
// Double eagle or better earns 5, double bogey or worse earns 0.
func stablefordPoints(diff int) int {
	switch {
	case diff <= -3:
		return 5
	case diff == -2:
		return 4
	case diff == -1:
		return 3
	case diff == 0:
		return 2
	case diff == 1:
		return 1
	default:
		return 0
	}
}

// stablefordEntries ranks players by stableford points, descending.
//
// When includeHandicap is set and a card carries a playing handicap, the
// legacy per-hole stroke subtraction is applied to strokes before the
// points lookup. That path and PMP-adjusted pars are alternates; applying
// both would hand out handicap strokes twice, so callers using PMP pars
// pass includeHandicap=false.
//
// Ties break on most holes scoring points, then back-nine points.
func stablefordEntries(scorecards []types.Scorecard, includeHandicap bool) []types.LeaderboardEntry {
	entries := make([]types.LeaderboardEntry, 0, len(scorecards))
	holesWith := make(map[string]int, len(scorecards))
	backPoints := make(map[string]int, len(scorecards))

	for _, sc := range scorecards {
		points := 0
		scoringHoles := 0
		gross := 0
		played := 0
		holePoints := make(map[int]int, len(sc.Holes))

		for _, h := range sc.Holes {
			if h.Strokes == 0 {
				continue
			}
			effective := h.Strokes
			if includeHandicap {
				effective -= legacyHoleStrokes(sc, h)
			}
			p := stablefordPoints(effective - h.Par)
			points += p
			holePoints[h.HoleNumber] = p
			if p > 0 {
				scoringHoles++
			}
			gross += h.Strokes
			played++
		}

		back := 0
		for _, h := range backNineHoles(sc.Holes) {
			back += holePoints[h.HoleNumber]
		}

		holesWith[sc.UserID] = scoringHoles
		backPoints[sc.UserID] = back

		entries = append(entries, types.LeaderboardEntry{
			PlayerID:   sc.UserID,
			PlayerName: sc.PlayerName,
			Score:      points,
			Details: types.StablefordDetails{
				Points:         points,
				HolesWithScore: scoringHoles,
				BackNinePoints: back,
				HolesPlayed:    played,
				GrossScore:     gross,
			},
		})
	}

	sortEntries(entries, types.SortDescending, func(a, b types.LeaderboardEntry) bool {
		if holesWith[a.PlayerID] != holesWith[b.PlayerID] {
			return holesWith[a.PlayerID] > holesWith[b.PlayerID]
		}
		return backPoints[a.PlayerID] > backPoints[b.PlayerID]
	})
	return entries
}

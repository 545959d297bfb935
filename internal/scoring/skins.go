package scoring

import (
	"github.com/dotcommander/golfx/internal/types"
)

// skinsOutcome is the internal result of a skins run: per-player winnings
// plus whatever carryover was left unclaimed when the round ended.
type skinsOutcome struct {
	skinsWon   map[string]int
	holesWon   map[string][]int
	skinValues map[string]map[int]int
	leftover   int
}

// runSkins processes holes strictly in sequence, because the skin value of a
// hole depends on the carryover accumulated by earlier ties.
//
// Each hole is worth 1 skin plus carryover. Every player's strokes (minus
// legacy handicap strokes when includeHandicap, never subtracted from par)
// are compared relative to the card's par for the hole, which is the
// player's personal par when the caller merged a PMP table in. The skin is
// claimed only when exactly one player holds the best value; any tie pushes
// the hole's value forward by incrementing carryover by exactly 1, a fixed
// increment regardless of the value at stake.
//
// Unlike match play, holes nobody has finished are NOT skipped: a strokes==0
// sentinel is processed as-is. Callers submit only fully-played holes for a
// final leaderboard; the asymmetry with match play's skip is intentional and
// pinned by tests.
func runSkins(scorecards []types.Scorecard, includeHandicap bool) skinsOutcome {
	out := skinsOutcome{
		skinsWon:   make(map[string]int, len(scorecards)),
		holesWon:   make(map[string][]int, len(scorecards)),
		skinValues: make(map[string]map[int]int, len(scorecards)),
	}

	holeCount := minHoleCount(scorecards)
	carry := 0

	for hi := 0; hi < holeCount; hi++ {
		skinValue := 1 + carry

		best := 0
		winnerIdx := -1
		winners := 0
		for i, sc := range scorecards {
			hole := sc.Holes[hi]
			strokes := hole.Strokes
			if includeHandicap {
				strokes -= legacyHoleStrokes(sc, hole)
			}
			value := strokes - hole.Par
			if i == 0 || value < best {
				best = value
				winnerIdx = i
				winners = 1
			} else if value == best {
				winners++
			}
		}

		if winners == 1 {
			sc := scorecards[winnerIdx]
			out.skinsWon[sc.UserID] += skinValue
			out.holesWon[sc.UserID] = append(out.holesWon[sc.UserID], sc.Holes[hi].HoleNumber)
			if out.skinValues[sc.UserID] == nil {
				out.skinValues[sc.UserID] = make(map[int]int)
			}
			out.skinValues[sc.UserID][sc.Holes[hi].HoleNumber] = skinValue
			carry = 0
		} else {
			carry++
		}
	}

	out.leftover = carry
	return out
}

// skinsEntries ranks players by skins won, descending. Ties break on most
// holes won outright, then fewest total strokes.
func skinsEntries(scorecards []types.Scorecard, includeHandicap bool) []types.LeaderboardEntry {
	out := runSkins(scorecards, includeHandicap)

	entries := make([]types.LeaderboardEntry, 0, len(scorecards))
	won := make(map[string]int, len(scorecards))
	strokes := make(map[string]int, len(scorecards))

	for _, sc := range scorecards {
		total := playedStrokes(sc)
		won[sc.UserID] = len(out.holesWon[sc.UserID])
		strokes[sc.UserID] = total

		holes := out.holesWon[sc.UserID]
		if holes == nil {
			holes = []int{}
		}
		values := out.skinValues[sc.UserID]
		if values == nil {
			values = map[int]int{}
		}

		entries = append(entries, types.LeaderboardEntry{
			PlayerID:   sc.UserID,
			PlayerName: sc.PlayerName,
			Score:      out.skinsWon[sc.UserID],
			Details: types.SkinsDetails{
				SkinsWon:     out.skinsWon[sc.UserID],
				HolesWon:     holes,
				SkinValues:   values,
				TotalStrokes: total,
			},
		})
	}

	sortEntries(entries, types.SortDescending, func(a, b types.LeaderboardEntry) bool {
		if won[a.PlayerID] != won[b.PlayerID] {
			return won[a.PlayerID] > won[b.PlayerID]
		}
		return strokes[a.PlayerID] < strokes[b.PlayerID]
	})
	return entries
}

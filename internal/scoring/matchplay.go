package scoring

import (
	"fmt"

	"github.com/dotcommander/golfx/internal/types"
)

// Points awarded per pairwise hole comparison.
const (
	PointsForWin = 2
	PointsForTie = 1
)

// matchPlayEntries ranks players by round-robin match-play points,
// descending.
//
// Every hole (up to the shortest card) is compared pairwise between every
// two players who both recorded strokes on it: the lower adjusted stroke
// count earns PointsForWin, equal counts earn PointsForTie each. A hole
// nobody has played yet is skipped outright, which keeps live-round
// leaderboards meaningful mid-round. Skins deliberately does not share this
// skip; see skins.go.
//
// Stroke adjustment is one of two mutually exclusive paths: includeHandicap
// subtracts legacy per-hole handicap strokes from raw strokes; otherwise, if
// the cards carry differing pars on a hole (personal pars already baked in),
// strokes are compared relative to par. Raw strokes are compared when
// neither applies. Applying both paths at once would double-discount.
//
// The holesWon/holesTied tallies are computed independently of the pairwise
// points, from the single best adjusted score among players who played the
// hole: a three-way tie for best counts as one tied hole for each of the
// three, not as a round of pairwise ties.
func matchPlayEntries(scorecards []types.Scorecard, includeHandicap bool) []types.LeaderboardEntry {
	n := len(scorecards)
	holeCount := minHoleCount(scorecards)

	points := make([]int, n)
	holesWon := make([]int, n)
	holesTied := make([]int, n)
	holesPlayed := make([]int, n)
	holeResults := make([][]string, n)
	for i := range holeResults {
		holeResults[i] = make([]string, 0, holeCount)
	}
	bothPlayed := 0 // holes every player has scored; drives the 2-player status

	for hi := 0; hi < holeCount; hi++ {
		played := make([]bool, n)
		anyPlayed := false
		allPlayed := true
		for i, sc := range scorecards {
			if sc.Holes[hi].Strokes > 0 {
				played[i] = true
				anyPlayed = true
			} else {
				allPlayed = false
			}
		}
		if !anyPlayed {
			// Hole not yet played by anyone: skip entirely.
			for i := range holeResults {
				holeResults[i] = append(holeResults[i], "-")
			}
			continue
		}
		if allPlayed {
			bothPlayed++
		}

		adj := adjustedHoleScores(scorecards, hi, includeHandicap)

		// Pairwise round robin over players who have played the hole.
		for i := 0; i < n; i++ {
			if !played[i] {
				continue
			}
			for j := i + 1; j < n; j++ {
				if !played[j] {
					continue
				}
				switch {
				case adj[i] < adj[j]:
					points[i] += PointsForWin
				case adj[j] < adj[i]:
					points[j] += PointsForWin
				default:
					points[i] += PointsForTie
					points[j] += PointsForTie
				}
			}
		}

		// Independent outright-win/tie tally from the best score on the hole.
		best := 0
		haveBest := false
		for i := range scorecards {
			if played[i] && (!haveBest || adj[i] < best) {
				best = adj[i]
				haveBest = true
			}
		}
		winners := 0
		for i := range scorecards {
			if played[i] && adj[i] == best {
				winners++
			}
		}
		for i := range scorecards {
			switch {
			case !played[i]:
				holeResults[i] = append(holeResults[i], "-")
			case adj[i] == best && winners == 1:
				holeResults[i] = append(holeResults[i], "W")
				holesWon[i]++
				holesPlayed[i]++
			case adj[i] == best:
				holeResults[i] = append(holeResults[i], "T")
				holesTied[i]++
				holesPlayed[i]++
			default:
				holeResults[i] = append(holeResults[i], "L")
				holesPlayed[i]++
			}
		}
	}

	statuses := make([]string, n)
	if n == 2 {
		statuses[0], statuses[1] = matchStatus(points[0], points[1], holeCount, bothPlayed)
	}

	entries := make([]types.LeaderboardEntry, 0, n)
	won := make(map[string]int, n)
	strokes := make(map[string]int, n)
	for i, sc := range scorecards {
		total := playedStrokes(sc)
		won[sc.UserID] = holesWon[i]
		strokes[sc.UserID] = total
		entries = append(entries, types.LeaderboardEntry{
			PlayerID:   sc.UserID,
			PlayerName: sc.PlayerName,
			Score:      points[i],
			Details: types.MatchPlayDetails{
				Points:       points[i],
				HolesWon:     holesWon[i],
				HolesTied:    holesTied[i],
				HolesPlayed:  holesPlayed[i],
				HoleResults:  holeResults[i],
				MatchStatus:  statuses[i],
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

// adjustedHoleScores computes each player's comparison value for one hole.
// Values are only comparable within the hole.
func adjustedHoleScores(scorecards []types.Scorecard, hi int, includeHandicap bool) []int {
	adj := make([]int, len(scorecards))
	if includeHandicap {
		for i, sc := range scorecards {
			adj[i] = sc.Holes[hi].Strokes - legacyHoleStrokes(sc, sc.Holes[hi])
		}
		return adj
	}

	// Personal pars baked in show up as differing par values for the same
	// hole; compare relative to par in that case.
	parsDiffer := false
	for i := 1; i < len(scorecards); i++ {
		if scorecards[i].Holes[hi].Par != scorecards[0].Holes[hi].Par {
			parsDiffer = true
			break
		}
	}
	for i, sc := range scorecards {
		if parsDiffer {
			adj[i] = sc.Holes[hi].Strokes - sc.Holes[hi].Par
		} else {
			adj[i] = sc.Holes[hi].Strokes
		}
	}
	return adj
}

// matchStatus derives the traditional two-player match status strings from
// the point totals. holeCount is the round length (18-hole math; longer
// rounds are unsupported) and completed is the number of holes both players
// have scored.
func matchStatus(pointsA, pointsB, holeCount, completed int) (string, string) {
	diff := pointsA - pointsB
	if diff < 0 {
		diff = -diff
	}
	holesUp := diff / PointsForWin
	remaining := holeCount - completed

	if holesUp == 0 {
		return "All Square", "All Square"
	}

	var leader, trailer string
	switch {
	case remaining == 0:
		leader = fmt.Sprintf("Won %d up", holesUp)
		trailer = fmt.Sprintf("Lost %d down", holesUp)
	case holesUp > remaining:
		// Decided before the final hole: the classic "4&2" form.
		leader = fmt.Sprintf("Won %d&%d", holesUp, remaining)
		trailer = fmt.Sprintf("Lost %d&%d", holesUp, remaining)
	default:
		leader = fmt.Sprintf("%d up", holesUp)
		trailer = fmt.Sprintf("%d down", holesUp)
	}

	if pointsA >= pointsB {
		return leader, trailer
	}
	return trailer, leader
}

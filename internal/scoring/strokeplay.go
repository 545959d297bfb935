package scoring

import (
	"github.com/dotcommander/golfx/internal/types"
)

// strokePlayEntries ranks players by strokes relative to par, ascending.
//
// The par summed here is whatever the card carries: untouched course par, or
// personal (PMP) par if the caller merged an allocation table in. Ranking on
// strokes-minus-par makes the comparison fair either way. Holes with the
// strokes==0 "not played" sentinel are excluded from both sums.
//
// Ties break on back-nine raw strokes, ascending. There is deliberately no
// tertiary key; cards identical on both stay tied.
func strokePlayEntries(scorecards []types.Scorecard, includeHandicap bool) []types.LeaderboardEntry {
	entries := make([]types.LeaderboardEntry, 0, len(scorecards))
	backNine := make(map[string]int, len(scorecards))

	for _, sc := range scorecards {
		gross := 0
		totalPar := 0
		totalPutts := 0
		played := 0
		for _, h := range sc.Holes {
			if h.Strokes == 0 {
				continue
			}
			gross += h.Strokes
			totalPar += h.Par
			totalPutts += h.Putts
			played++
		}

		back := 0
		for _, h := range backNineHoles(sc.Holes) {
			if h.Strokes > 0 {
				back += h.Strokes
			}
		}
		backNine[sc.UserID] = back

		details := types.StrokePlayDetails{
			GrossScore:  gross,
			ScoreVsPar:  gross - totalPar,
			TotalPar:    totalPar,
			HolesPlayed: played,
			BackNine:    back,
			TotalPutts:  totalPutts,
		}
		// Net score is display-only: it uses the course handicap, separate
		// from the PMP-based score difference that drives the ranking.
		if includeHandicap && sc.CourseHandicap != nil {
			net := gross - *sc.CourseHandicap
			details.NetScore = &net
		}

		entries = append(entries, types.LeaderboardEntry{
			PlayerID:   sc.UserID,
			PlayerName: sc.PlayerName,
			Score:      details.ScoreVsPar,
			Details:    details,
		})
	}

	sortEntries(entries, types.SortAscending, func(a, b types.LeaderboardEntry) bool {
		return backNine[a.PlayerID] < backNine[b.PlayerID]
	})
	return entries
}

// Package output renders leaderboard and PMP reports for console, JSON, and
// Markdown consumers.
package output

import (
	"fmt"
	"time"

	"github.com/dotcommander/golfx/internal/types"
)

// Report bundles everything the formatters need to render one game.
type Report struct {
	GameID     string
	GameName   string
	CourseName string
	Source     string
	StartTime  time.Time
	Result     types.LeaderboardResult
}

// PMPReport carries a game's stroke allocation for rendering.
type PMPReport struct {
	GameName     string
	CourseName   string
	Participants []types.Participant
	Holes        []types.Hole
	Table        map[string][]types.PlayerMatchPar
}

// FormatScore renders a leaderboard score for display. Stroke play scores
// are relative to par ("E", "+5", "-2"); point-based methods show the raw
// number.
func FormatScore(method types.ScoringMethod, score int) string {
	if method != types.MethodStrokePlay {
		return fmt.Sprintf("%d", score)
	}
	switch {
	case score == 0:
		return "E"
	case score > 0:
		return fmt.Sprintf("+%d", score)
	default:
		return fmt.Sprintf("%d", score)
	}
}

// Winner describes the leading entry, or "" for an empty leaderboard.
func Winner(report *Report) string {
	if len(report.Result.Entries) == 0 {
		return ""
	}
	leader := report.Result.Entries[0]
	return fmt.Sprintf("%s (%s)", leader.PlayerName, FormatScore(report.Result.Metadata.ScoringMethod, leader.Score))
}

// detailLine summarizes an entry's per-method details for one display line.
func detailLine(details types.MethodDetails) string {
	switch d := details.(type) {
	case types.StrokePlayDetails:
		line := fmt.Sprintf("gross %d over %d holes, back nine %d", d.GrossScore, d.HolesPlayed, d.BackNine)
		if d.NetScore != nil {
			line += fmt.Sprintf(", net %d", *d.NetScore)
		}
		return line
	case types.StablefordDetails:
		return fmt.Sprintf("%d points on %d scoring holes, back nine %d", d.Points, d.HolesWithScore, d.BackNinePoints)
	case types.MatchPlayDetails:
		line := fmt.Sprintf("won %d, tied %d of %d holes", d.HolesWon, d.HolesTied, d.HolesPlayed)
		if d.MatchStatus != "" {
			line += ", " + d.MatchStatus
		}
		return line
	case types.SkinsDetails:
		if len(d.HolesWon) == 0 {
			return "no skins"
		}
		return fmt.Sprintf("%d skins from holes %v", d.SkinsWon, d.HolesWon)
	default:
		return ""
	}
}

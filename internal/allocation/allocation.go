// Package allocation implements the Player-Match-Par engine: it turns a
// roster of participants and a hole list into a per-player table of handicap
// strokes received and personal pars, dispatching on the game's handicap
// policy.
//
// Like the rest of the engine, allocation is pure and fail-soft. Lookups for
// a missing player or hole return 0, and an unrecognized policy silently
// falls back to match-play allocation so callers built against older policy
// sets keep working.
package allocation

import (
	"math/rand"

	"github.com/dotcommander/golfx/internal/handicap"
	"github.com/dotcommander/golfx/internal/types"
)

// StrokePlayAllowancePercent is the tournament allowance applied inside the
// stroke-play branch. PlayingHandicap call sites always pass 100; this is the
// one place the 95% reduction happens, and the two must not be combined.
const StrokePlayAllowancePercent = 95

// Options tunes the allocation run. The zero value is the default behavior.
type Options struct {
	// FairRandom switches the random policy from the literal
	// pick-a-hole-and-increment behavior (which may stack several strokes on
	// one hole) to a deal-one-stroke-per-hole-per-pass distribution.
	FairRandom bool

	// Rand supplies the randomness for the random policy. Nil uses the
	// package-global source.
	Rand *rand.Rand
}

// Allocate produces the PMP table for every participant under the given
// handicap policy, with default Options.
// The returned map has one entry per participant; each value covers every
// hole passed in, ordered like the input hole list.
func Allocate(participants []types.Participant, holes []types.Hole, policy types.HandicapType) map[string][]types.PlayerMatchPar {
	return AllocateWithOptions(participants, holes, policy, Options{})
}

// AllocateWithOptions is Allocate with explicit Options.
func AllocateWithOptions(participants []types.Participant, holes []types.Hole, policy types.HandicapType, opts Options) map[string][]types.PlayerMatchPar {
	table := make(map[string][]types.PlayerMatchPar, len(participants))
	for _, p := range participants {
		table[p.UserID] = allocatePlayer(p, holes, policy, opts)
	}
	return table
}

// allocatePlayer builds one player's hole-ordered PMP entries.
func allocatePlayer(p types.Participant, holes []types.Hole, policy types.HandicapType, opts Options) []types.PlayerMatchPar {
	var strokes []int

	switch policy {
	case types.HandicapNone:
		strokes = make([]int, len(holes))
	case types.HandicapStrokePlay:
		// Full playing handicap, reduced by the tournament allowance here
		// and nowhere else.
		effective := handicap.PlayingHandicap(p.PlayingHandicap, StrokePlayAllowancePercent)
		strokes = indexedStrokes(effective, holes)
	case types.HandicapRandom:
		strokes = randomStrokes(totalHandicap(p), len(holes), opts)
	case types.HandicapMatchPlay, types.HandicapGhost:
		// Ghost participants are synthetic rows competing against a recorded
		// round; they allocate exactly like live match-play players.
		strokes = indexedStrokes(p.MatchHandicap, holes)
	default:
		// Unknown policies fall back to match play. Deliberate, not an error.
		strokes = indexedStrokes(p.MatchHandicap, holes)
	}

	entries := make([]types.PlayerMatchPar, 0, len(holes))
	for i, h := range holes {
		entries = append(entries, types.PlayerMatchPar{
			UserID:          p.UserID,
			HoleNumber:      h.Number,
			HolePar:         h.Par,
			StrokesReceived: strokes[i],
			PlayerMatchPar:  h.Par + strokes[i],
		})
	}
	return entries
}

// indexedStrokes allocates by stroke index using the standard 18-hole cycle.
func indexedStrokes(h int, holes []types.Hole) []int {
	strokes := make([]int, len(holes))
	for i, hole := range holes {
		strokes[i] = handicap.HoleStrokes(h, hole.StrokeIndex)
	}
	return strokes
}

// totalHandicap is the stroke budget for the random policy.
func totalHandicap(p types.Participant) int {
	if p.PlayingHandicap > 0 {
		return p.PlayingHandicap
	}
	return 0
}

// randomStrokes scatters the handicap across holes at random.
//
// The default behavior repeatedly picks a uniformly random hole and
// increments its count, so a single hole can stack more than two strokes.
// FairRandom instead deals at most one stroke per hole per pass until the
// budget is spent. Both variants allocate exactly `total` strokes.
func randomStrokes(total, holeCount int, opts Options) []int {
	strokes := make([]int, holeCount)
	if total <= 0 || holeCount == 0 {
		return strokes
	}

	intn := rand.Intn
	if opts.Rand != nil {
		intn = opts.Rand.Intn
	}

	if !opts.FairRandom {
		for i := 0; i < total; i++ {
			strokes[intn(holeCount)]++
		}
		return strokes
	}

	// Fair variant: shuffle-and-deal one stroke per hole per pass.
	remaining := total
	for remaining > 0 {
		order := make([]int, holeCount)
		for i := range order {
			order[i] = i
		}
		for i := holeCount - 1; i > 0; i-- {
			j := intn(i + 1)
			order[i], order[j] = order[j], order[i]
		}
		for _, idx := range order {
			if remaining == 0 {
				break
			}
			strokes[idx]++
			remaining--
		}
	}
	return strokes
}

// StrokesForHole returns the strokes a player receives on a hole, or 0 when
// the player or hole is absent from the table.
func StrokesForHole(userID string, holeNumber int, table map[string][]types.PlayerMatchPar) int {
	for _, entry := range table[userID] {
		if entry.HoleNumber == holeNumber {
			return entry.StrokesReceived
		}
	}
	return 0
}

// MatchParForHole returns a player's personal par on a hole, or 0 when the
// player or hole is absent from the table.
func MatchParForHole(userID string, holeNumber int, table map[string][]types.PlayerMatchPar) int {
	for _, entry := range table[userID] {
		if entry.HoleNumber == holeNumber {
			return entry.PlayerMatchPar
		}
	}
	return 0
}

// Package handicap implements the primitive handicap formulas: course and
// playing handicap conversion, field-relative match handicaps, per-hole
// stroke allocation, and personal pars.
//
// All functions are pure and fail soft: NaN or otherwise unusable numeric
// input resolves to a sentinel 0 instead of propagating, so an interactive
// caller shows a recoverable wrong number rather than crashing. Callers that
// want explicit absence should check their inputs before calling.
package handicap

import (
	"math"

	"github.com/dotcommander/golfx/internal/types"
)

// HolesPerRound is the allocation cycle length: a full round of handicap
// strokes spreads one stroke to every hole before any hole gets a second.
const HolesPerRound = 18

// round matches JavaScript Math.round semantics: halves round toward
// positive infinity, so round(-0.5) == 0 while math.Round would give -1.
func round(x float64) int {
	return int(math.Floor(x + 0.5))
}

// CourseHandicap converts an official handicap index into a course handicap
// for a specific tee: round(index * slope/113 + (rating - par)).
// Negative results are valid (plus-handicap players); no clamping is applied.
func CourseHandicap(handicapIndex float64, slopeRating int, courseRating float64, par int) int {
	if math.IsNaN(handicapIndex) || math.IsNaN(courseRating) {
		return 0
	}
	return round(handicapIndex*float64(slopeRating)/113.0 + (courseRating - float64(par)))
}

// PlayingHandicap applies a format allowance percentage to a course handicap.
// Singles stroke play and match play both use 100 here; the 95% tournament
// allowance is applied later, in the stroke-play branch of the allocation
// engine, and must never be passed to this call site as well.
func PlayingHandicap(courseHandicap int, allowancePercent float64) int {
	if math.IsNaN(allowancePercent) {
		return 0
	}
	return round(float64(courseHandicap) * allowancePercent / 100.0)
}

// PlayingHandicapForFormat resolves a format name to its allowance and
// applies it. Every format supported by the app plays at 100% allowance at
// this call site, so the lookup always resolves to the course handicap
// unchanged; the function exists so callers name the format they mean.
func PlayingHandicapForFormat(courseHandicap int, format types.ScoringMethod) int {
	_ = format
	return PlayingHandicap(courseHandicap, 100)
}

// MatchHandicapRelative floors a handicap against the lowest handicap in the
// field. The best player plays to scratch; everyone else receives the
// difference. NaN input resolves to 0.
func MatchHandicapRelative(handicap, lowest float64) int {
	if math.IsNaN(handicap) || math.IsNaN(lowest) {
		return 0
	}
	return round(handicap - lowest)
}

// MatchHandicapFromField computes the match handicap for handicaps[index]
// relative to the minimum of the field. Returns 0 for an empty field, an
// out-of-range index, or NaN anywhere in the field.
func MatchHandicapFromField(handicaps []float64, index int) int {
	if len(handicaps) == 0 || index < 0 || index >= len(handicaps) {
		return 0
	}
	lowest := handicaps[0]
	for _, h := range handicaps {
		if math.IsNaN(h) {
			return 0
		}
		if h < lowest {
			lowest = h
		}
	}
	return MatchHandicapRelative(handicaps[index], lowest)
}

// HoleStrokes allocates handicap strokes to a single hole. Every hole gets
// floor(handicap/18) strokes, and the handicap%18 hardest holes (stroke index
// 1..remainder) each get one more. A handicap of 0 or less receives nothing.
//
// Example: handicap 20 gives every hole 1 stroke plus an extra stroke on the
// holes with stroke index 1 and 2.
func HoleStrokes(handicap, holeStrokeIndex int) int {
	if handicap <= 0 {
		return 0
	}
	strokes := handicap / HolesPerRound
	if holeStrokeIndex <= handicap%HolesPerRound {
		strokes++
	}
	return strokes
}

// PersonalParInfo is one hole of a player's personal-par card.
type PersonalParInfo struct {
	HoleNumber  int `json:"holeNumber"`
	Par         int `json:"par"`
	StrokeIndex int `json:"strokeIndex"`
	Strokes     int `json:"strokes"`
	PersonalPar int `json:"personalPar"`
}

// PersonalPars maps HoleStrokes across a hole list, producing the player's
// personal par for every hole.
func PersonalPars(holes []types.Hole, handicap int) []PersonalParInfo {
	infos := make([]PersonalParInfo, 0, len(holes))
	for _, h := range holes {
		strokes := HoleStrokes(handicap, h.StrokeIndex)
		infos = append(infos, PersonalParInfo{
			HoleNumber:  h.Number,
			Par:         h.Par,
			StrokeIndex: h.StrokeIndex,
			Strokes:     strokes,
			PersonalPar: h.Par + strokes,
		})
	}
	return infos
}

// TotalPersonalPar reduces PersonalPars to the aggregate personal par.
func TotalPersonalPar(holes []types.Hole, handicap int) int {
	total := 0
	for _, info := range PersonalPars(holes, handicap) {
		total += info.PersonalPar
	}
	return total
}

package scoring

import (
	"testing"

	"github.com/dotcommander/golfx/internal/types"
)

// TestStrokePlayAgainstPersonalPar reproduces the PMP fairness example: an
// 18-hole card whose pars are already personal pars totalling 95 scores
// 100 strokes and ranks at +5, independent of the nominal course par of 72.
func TestStrokePlayAgainstPersonalPar(t *testing.T) {
	pars := repeat(5, 18)    // personal pars: 4s with a stroke, 5s raised, total 90
	pars[0], pars[1] = 8, 7  // two hard holes with stacked strokes: total 95
	strokes := repeat(6, 18) // 108...
	strokes[0], strokes[1] = 1, 1

	// Recompute exact totals instead of trusting the comment arithmetic.
	parTotal, strokeTotal := 0, 0
	for i := range pars {
		parTotal += pars[i]
		strokeTotal += strokes[i]
	}
	sc := card("p1", "Priya", pars, strokes)

	result := CalculateLeaderboard([]types.Scorecard{sc}, types.MethodStrokePlay, false)
	if len(result.Entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(result.Entries))
	}
	want := strokeTotal - parTotal
	if result.Entries[0].Score != want {
		t.Errorf("score = %d, want %d (strokes %d - personal par %d)", result.Entries[0].Score, want, strokeTotal, parTotal)
	}
}

func TestStrokePlayConcretePMPNumbers(t *testing.T) {
	// 18 holes, personal par 95, 100 strokes: +5.
	pars := []int{6, 5, 6, 5, 5, 5, 6, 5, 5, 5, 5, 6, 5, 5, 5, 6, 5, 5} // sums to 95
	strokes := []int{6, 6, 6, 6, 5, 5, 6, 6, 5, 6, 5, 6, 5, 6, 5, 6, 5, 5}
	total := 0
	for _, s := range strokes {
		total += s
	}
	if total != 100 {
		t.Fatalf("test fixture: strokes sum to %d, want 100", total)
	}
	parTotal := 0
	for _, p := range pars {
		parTotal += p
	}
	if parTotal != 95 {
		t.Fatalf("test fixture: pars sum to %d, want 95", parTotal)
	}

	result := CalculateLeaderboard([]types.Scorecard{card("p1", "Priya", pars, strokes)}, types.MethodStrokePlay, false)
	if result.Entries[0].Score != 5 {
		t.Errorf("score = %d, want +5", result.Entries[0].Score)
	}
}

func TestStrokePlayRankingAndBackNineTieBreak(t *testing.T) {
	pars := repeat(4, 18)

	// Both at +4 overall, but Ben's back nine is lighter: Amy's blowup on
	// hole 10 puts her back nine at 40 against Ben's 36.
	amyStrokes := repeat(4, 18)
	amyStrokes[9] = 8
	benStrokes := append(repeat(5, 4), repeat(4, 14)...)

	amy := card("amy", "Amy", pars, amyStrokes)
	ben := card("ben", "Ben", pars, benStrokes)

	result := CalculateLeaderboard([]types.Scorecard{amy, ben}, types.MethodStrokePlay, false)

	if result.Entries[0].PlayerID != "ben" {
		t.Errorf("winner = %s, want ben (lighter back nine)", result.Entries[0].PlayerID)
	}
	// Equal scores still share a position; the back nine only orders them.
	if result.Entries[0].Position != 1 || result.Entries[1].Position != 1 {
		t.Errorf("positions = %d, %d, want 1, 1", result.Entries[0].Position, result.Entries[1].Position)
	}
}

func TestStrokePlayExcludesUnplayedHoles(t *testing.T) {
	// Four holes, last two unplayed: only the first two count toward both
	// the stroke total and the par total.
	sc := card("p1", "Priya", []int{4, 4, 4, 4}, []int{5, 4, 0, 0})

	result := CalculateLeaderboard([]types.Scorecard{sc}, types.MethodStrokePlay, false)
	details := result.Entries[0].Details.(types.StrokePlayDetails)

	if details.GrossScore != 9 {
		t.Errorf("gross = %d, want 9", details.GrossScore)
	}
	if details.TotalPar != 8 {
		t.Errorf("total par = %d, want 8", details.TotalPar)
	}
	if details.HolesPlayed != 2 {
		t.Errorf("holes played = %d, want 2", details.HolesPlayed)
	}
	if result.Entries[0].Score != 1 {
		t.Errorf("score = %d, want +1", result.Entries[0].Score)
	}
}

func TestStrokePlayNetScore(t *testing.T) {
	sc := withCourseHandicap(card("p1", "Priya", repeat(4, 9), repeat(5, 9)), 7)

	// Net score appears only when handicap display is requested.
	result := CalculateLeaderboard([]types.Scorecard{sc}, types.MethodStrokePlay, true)
	details := result.Entries[0].Details.(types.StrokePlayDetails)
	if details.NetScore == nil || *details.NetScore != 38 {
		t.Errorf("net score = %v, want 38 (45 gross - 7)", details.NetScore)
	}
	// The ranking score stays the PMP-based difference either way.
	if result.Entries[0].Score != 9 {
		t.Errorf("score = %d, want +9", result.Entries[0].Score)
	}

	plain := CalculateLeaderboard([]types.Scorecard{sc}, types.MethodStrokePlay, false)
	if plain.Entries[0].Details.(types.StrokePlayDetails).NetScore != nil {
		t.Error("net score set without includeHandicap")
	}
}

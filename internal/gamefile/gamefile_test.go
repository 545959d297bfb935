package gamefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dotcommander/golfx/internal/allocation"
	"github.com/dotcommander/golfx/internal/types"
)

const fixtureYAML = `
game:
  id: game-1
  name: Saturday Skins
  handicap_type: match_play
  scoring_method: skins
course:
  name: Pebble Creek
  tee:
    name: White
    course_rating: 71.2
    slope_rating: 125
    par: 72
  holes:
    - number: 1
      par: 4
      stroke_index: 1
    - number: 2
      par: 4
      stroke_index: 2
    - number: 3
      par: 4
      stroke_index: 3
players:
  - id: amy
    name: Amy
    handicap_index: 10.4
  - id: ben
    name: Ben
    handicap_index: 20.0
scores:
  - player: amy
    holes:
      - number: 1
        strokes: 5
        putts: 2
      - number: 2
        strokes: 4
        putts: 1
  - player: Ben
    holes:
      - number: 1
        strokes: 6
`

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadDerivesParticipants(t *testing.T) {
	g, err := Load(writeFixture(t, "saturday.game.yaml", fixtureYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if g.ID != "game-1" || g.Name != "Saturday Skins" {
		t.Errorf("game identity = %q/%q", g.ID, g.Name)
	}
	if g.ScoringMethod != types.MethodSkins || g.HandicapType != types.HandicapMatchPlay {
		t.Errorf("formats = %s/%s", g.ScoringMethod, g.HandicapType)
	}
	if len(g.Participants) != 2 {
		t.Fatalf("got %d participants, want 2", len(g.Participants))
	}

	// 10.4*125/113 - 0.8 = 10.70 -> 11; 20.0*125/113 - 0.8 = 21.32 -> 21.
	amy, ben := g.Participants[0], g.Participants[1]
	if amy.CourseHandicap != 11 || amy.PlayingHandicap != 11 {
		t.Errorf("amy handicaps = %d/%d, want 11/11", amy.CourseHandicap, amy.PlayingHandicap)
	}
	if ben.CourseHandicap != 21 {
		t.Errorf("ben course handicap = %d, want 21", ben.CourseHandicap)
	}

	// Match handicaps floor against the field's best player.
	if amy.MatchHandicap != 0 || ben.MatchHandicap != 10 {
		t.Errorf("match handicaps = %d/%d, want 0/10", amy.MatchHandicap, ben.MatchHandicap)
	}
}

func TestLoadDefaults(t *testing.T) {
	minimal := `
game:
  name: Casual Nine
course:
  name: Pebble Creek
  tee:
    course_rating: 71.2
    slope_rating: 125
    par: 72
  holes:
    - number: 1
      par: 4
      stroke_index: 1
players:
  - name: Amy
    handicap_index: 10.4
`
	g, err := Load(writeFixture(t, "casual.game.yaml", minimal))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if g.ID == "" {
		t.Error("missing game id should be synthesized")
	}
	if g.ScoringMethod != types.MethodStrokePlay {
		t.Errorf("default method = %s, want stroke_play", g.ScoringMethod)
	}
	if g.HandicapType != types.HandicapMatchPlay {
		t.Errorf("default handicap type = %s, want match_play", g.HandicapType)
	}
	if g.Participants[0].UserID == "" {
		t.Error("player without id should get a synthesized one")
	}
}

func TestLoadJSONGameFile(t *testing.T) {
	jsonDoc := `{
  "game": {"name": "JSON Round", "scoring_method": "stableford"},
  "course": {
    "name": "Pebble Creek",
    "tee": {"course_rating": 71.2, "slope_rating": 125, "par": 72},
    "holes": [{"number": 1, "par": 4, "stroke_index": 1}]
  },
  "players": [{"id": "amy", "name": "Amy", "handicap_index": 10.4}]
}`
	g, err := Load(writeFixture(t, "round.game.json", jsonDoc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if g.ScoringMethod != types.MethodStableford {
		t.Errorf("method = %s, want stableford", g.ScoringMethod)
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	invalid := `
game:
  name: Broken
  handicap_type: coin_flip
course:
  name: Pebble Creek
  tee:
    course_rating: 71.2
    slope_rating: 125
    par: 72
  holes:
    - number: 1
      par: 4
      stroke_index: 1
players:
  - name: Amy
    handicap_index: 10.4
`
	if _, err := Load(writeFixture(t, "broken.game.yaml", invalid)); err == nil {
		t.Error("unknown handicap_type should fail validation")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.game.yaml")); err == nil {
		t.Error("missing file should error")
	}
}

func TestScorecardsRawPars(t *testing.T) {
	g, err := Load(writeFixture(t, "saturday.game.yaml", fixtureYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	cards := g.Scorecards(false, allocation.Options{})
	if len(cards) != 2 {
		t.Fatalf("got %d cards, want 2", len(cards))
	}

	amy := cards[0]
	if amy.TotalStrokes != 9 || amy.TotalPutts != 3 {
		t.Errorf("amy totals = %d strokes %d putts, want 9 and 3", amy.TotalStrokes, amy.TotalPutts)
	}
	for _, h := range amy.Holes {
		if h.Par != 4 {
			t.Errorf("hole %d par = %d, want raw course par 4", h.HoleNumber, h.Par)
		}
	}
	// Hole 3 was never recorded: sentinel zero.
	if amy.Holes[2].Strokes != 0 {
		t.Errorf("unrecorded hole strokes = %d, want 0", amy.Holes[2].Strokes)
	}
	if amy.CourseHandicap == nil || *amy.CourseHandicap != 11 {
		t.Errorf("amy course handicap on card = %v, want 11", amy.CourseHandicap)
	}
}

func TestScorecardsPersonalPars(t *testing.T) {
	g, err := Load(writeFixture(t, "saturday.game.yaml", fixtureYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	cards := g.Scorecards(true, allocation.Options{})

	// Amy plays to scratch under match-play allocation; Ben's match
	// handicap of 10 puts one stroke on each of these three hard holes.
	amy, ben := cards[0], cards[1]
	for i := range amy.Holes {
		if amy.Holes[i].Par != 4 {
			t.Errorf("amy hole %d personal par = %d, want 4", i+1, amy.Holes[i].Par)
		}
		if ben.Holes[i].Par != 5 {
			t.Errorf("ben hole %d personal par = %d, want 5", i+1, ben.Holes[i].Par)
		}
	}
}

func TestScoresResolveByName(t *testing.T) {
	g, err := Load(writeFixture(t, "saturday.game.yaml", fixtureYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Ben's score block references him by name, not id.
	cards := g.Scorecards(false, allocation.Options{})
	if cards[1].TotalStrokes != 6 {
		t.Errorf("ben total = %d, want 6 (score resolved by name)", cards[1].TotalStrokes)
	}
}

func TestGhostPlayersGetSyntheticIDs(t *testing.T) {
	withGhost := `
game:
  name: Ghost Round
  handicap_type: ghost
course:
  name: Pebble Creek
  tee:
    course_rating: 71.2
    slope_rating: 125
    par: 72
  holes:
    - number: 1
      par: 4
      stroke_index: 1
players:
  - id: amy
    name: Amy
    handicap_index: 10.4
  - id: old-round
    name: Amy (June)
    handicap_index: 12.0
    ghost: true
`
	g, err := Load(writeFixture(t, "ghost.game.yaml", withGhost))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if g.Participants[1].UserID == "old-round" {
		t.Error("ghost player should not keep the file id")
	}
	if g.Participants[0].UserID == g.Participants[1].UserID {
		t.Error("ghost id collides with a live player")
	}
}

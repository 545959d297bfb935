// Package gamefile loads games from *.game.yaml / *.game.yml / *.game.json
// files and derives the roster numbers the engine needs: course handicaps
// from the tee, playing handicaps at full allowance, and field-relative
// match handicaps.
package gamefile

import (
	"fmt"
	"os"
	"sort"

	"github.com/google/uuid"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/dotcommander/golfx/internal/allocation"
	"github.com/dotcommander/golfx/internal/handicap"
	"github.com/dotcommander/golfx/internal/schema"
	"github.com/dotcommander/golfx/internal/types"
)

// Document is the raw decoded shape of a game file. JSON game files decode
// through the same path; YAML is a superset.
type Document struct {
	Game    GameMeta      `yaml:"game"`
	Course  Course        `yaml:"course"`
	Players []Player      `yaml:"players"`
	Scores  []PlayerScore `yaml:"scores"`
}

// GameMeta identifies the game and its configured formats.
type GameMeta struct {
	ID            string `yaml:"id"`
	Name          string `yaml:"name"`
	HandicapType  string `yaml:"handicap_type"`
	ScoringMethod string `yaml:"scoring_method"`
}

// Course describes the course and the tee the field plays from.
type Course struct {
	Name  string    `yaml:"name"`
	Tee   Tee       `yaml:"tee"`
	Holes []HoleDef `yaml:"holes"`
}

// Tee carries the rating numbers course handicaps derive from.
type Tee struct {
	Name         string  `yaml:"name"`
	CourseRating float64 `yaml:"course_rating"`
	SlopeRating  int     `yaml:"slope_rating"`
	Par          int     `yaml:"par"`
}

// HoleDef is one hole as written in the file.
type HoleDef struct {
	Number      int `yaml:"number"`
	Par         int `yaml:"par"`
	StrokeIndex int `yaml:"stroke_index"`
}

// Player is one roster entry as written in the file.
type Player struct {
	ID            string  `yaml:"id"`
	Name          string  `yaml:"name"`
	HandicapIndex float64 `yaml:"handicap_index"`
	Ghost         bool    `yaml:"ghost"`
}

// PlayerScore holds one player's recorded holes. Player references the
// roster entry by id or, failing that, by name.
type PlayerScore struct {
	Player string           `yaml:"player"`
	Holes  []HoleScoreEntry `yaml:"holes"`
}

// HoleScoreEntry is one recorded hole. Strokes 0 means not yet played.
type HoleScoreEntry struct {
	Number  int `yaml:"number"`
	Strokes int `yaml:"strokes"`
	Putts   int `yaml:"putts"`
}

// Game is a loaded game with the roster fully derived.
type Game struct {
	ID            string
	Name          string
	HandicapType  types.HandicapType
	ScoringMethod types.ScoringMethod
	CourseName    string
	Tee           Tee
	Holes         []types.Hole
	Participants  []types.Participant

	scores map[string]map[int]HoleScoreEntry
}

// Load reads, validates, and derives a game from a file.
func Load(path string) (*Game, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading game file: %w", err)
	}

	var data map[string]any
	if err := yamlv3.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("error parsing game file %s: %w", path, err)
	}

	validator := schema.NewValidator()
	if err := validator.LoadSchemas(); err == nil {
		errs, vErr := validator.ValidateGame(data)
		if vErr != nil {
			return nil, fmt.Errorf("error validating game file %s: %w", path, vErr)
		}
		if len(errs) > 0 {
			return nil, fmt.Errorf("invalid game file %s: %s", path, errs[0].Message)
		}
	}

	var doc Document
	if err := yamlv3.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("error decoding game file %s: %w", path, err)
	}

	return build(&doc)
}

// build derives the Game from a decoded document.
func build(doc *Document) (*Game, error) {
	if len(doc.Players) == 0 {
		return nil, fmt.Errorf("game file has no players")
	}
	if len(doc.Course.Holes) == 0 {
		return nil, fmt.Errorf("game file has no holes")
	}

	g := &Game{
		ID:            doc.Game.ID,
		Name:          doc.Game.Name,
		HandicapType:  types.HandicapType(doc.Game.HandicapType),
		ScoringMethod: types.ScoringMethod(doc.Game.ScoringMethod),
		CourseName:    doc.Course.Name,
		Tee:           doc.Course.Tee,
	}
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	if g.HandicapType == "" {
		g.HandicapType = types.HandicapMatchPlay
	}
	if g.ScoringMethod == "" {
		g.ScoringMethod = types.MethodStrokePlay
	}

	g.Holes = make([]types.Hole, 0, len(doc.Course.Holes))
	for _, h := range doc.Course.Holes {
		g.Holes = append(g.Holes, types.Hole{
			Number:      h.Number,
			Par:         h.Par,
			StrokeIndex: h.StrokeIndex,
		})
	}
	sort.Slice(g.Holes, func(i, j int) bool { return g.Holes[i].Number < g.Holes[j].Number })

	g.Participants = deriveParticipants(doc.Players, doc.Course.Tee)
	g.scores = indexScores(doc, g.Participants)

	return g, nil
}

// deriveParticipants computes every handicap number from the handicap index
// and the tee. Playing handicaps use full allowance here; the stroke-play
// tournament allowance is applied by the allocation engine.
func deriveParticipants(players []Player, tee Tee) []types.Participant {
	playing := make([]float64, len(players))
	participants := make([]types.Participant, len(players))

	for i, p := range players {
		id := p.ID
		if id == "" || p.Ghost {
			id = uuid.New().String()
		}
		ch := handicap.CourseHandicap(p.HandicapIndex, tee.SlopeRating, tee.CourseRating, tee.Par)
		ph := handicap.PlayingHandicap(ch, 100)
		playing[i] = float64(ph)
		participants[i] = types.Participant{
			UserID:          id,
			FullName:        p.Name,
			HandicapIndex:   p.HandicapIndex,
			CourseHandicap:  ch,
			PlayingHandicap: ph,
		}
	}

	// Match handicaps are relative to the field, so they need a second pass.
	for i := range participants {
		participants[i].MatchHandicap = handicap.MatchHandicapFromField(playing, i)
	}

	return participants
}

// indexScores resolves score blocks to participant IDs. References match the
// original file's player id first, then the player name.
func indexScores(doc *Document, participants []types.Participant) map[string]map[int]HoleScoreEntry {
	byFileID := make(map[string]string, len(participants))
	byName := make(map[string]string, len(participants))
	for i, p := range doc.Players {
		if p.ID != "" {
			byFileID[p.ID] = participants[i].UserID
		}
		byName[p.Name] = participants[i].UserID
	}

	scores := make(map[string]map[int]HoleScoreEntry)
	for _, ps := range doc.Scores {
		id, ok := byFileID[ps.Player]
		if !ok {
			id, ok = byName[ps.Player]
		}
		if !ok {
			// Scores for an unknown player are dropped, not fatal.
			continue
		}
		holes := make(map[int]HoleScoreEntry, len(ps.Holes))
		for _, h := range ps.Holes {
			holes[h.Number] = h
		}
		scores[id] = holes
	}
	return scores
}

// PMP produces the game's Player-Match-Par table under its handicap policy.
func (g *Game) PMP(opts allocation.Options) map[string][]types.PlayerMatchPar {
	return allocation.AllocateWithOptions(g.Participants, g.Holes, g.HandicapType, opts)
}

// Scorecards assembles one scorecard per participant. With usePMP the hole
// pars are the player's personal pars from the allocation engine; otherwise
// they are the raw course pars, for callers that apply handicaps the legacy
// way. Unrecorded holes carry the strokes==0 sentinel.
func (g *Game) Scorecards(usePMP bool, opts allocation.Options) []types.Scorecard {
	var table map[string][]types.PlayerMatchPar
	if usePMP && g.HandicapType != types.HandicapNone {
		table = g.PMP(opts)
	}

	cards := make([]types.Scorecard, 0, len(g.Participants))
	for _, p := range g.Participants {
		holes := make([]types.HoleScore, len(g.Holes))
		totalStrokes, totalPutts := 0, 0
		for i, h := range g.Holes {
			par := h.Par
			if table != nil {
				if pmp := allocation.MatchParForHole(p.UserID, h.Number, table); pmp > 0 {
					par = pmp
				}
			}
			entry := g.scores[p.UserID][h.Number]
			holes[i] = types.HoleScore{
				HoleNumber:  h.Number,
				Par:         par,
				Strokes:     entry.Strokes,
				Putts:       entry.Putts,
				StrokeIndex: h.StrokeIndex,
			}
			totalStrokes += entry.Strokes
			totalPutts += entry.Putts
		}

		ch := p.CourseHandicap
		ph := p.PlayingHandicap
		cards = append(cards, types.Scorecard{
			GameID:          g.ID,
			UserID:          p.UserID,
			PlayerName:      p.FullName,
			Holes:           holes,
			TotalStrokes:    totalStrokes,
			TotalPutts:      totalPutts,
			CourseHandicap:  &ch,
			PlayingHandicap: &ph,
		})
	}
	return cards
}

// Participant returns the participant with the given ID, if present.
func (g *Game) Participant(id string) (types.Participant, bool) {
	for _, p := range g.Participants {
		if p.UserID == id {
			return p, true
		}
	}
	return types.Participant{}, false
}

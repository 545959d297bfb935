// Package types provides the shared domain types used across the golfx
// codebase. This package is at the bottom of the dependency graph and should
// not import any other internal packages to avoid circular dependencies.
package types

// ScoringMethod identifies one of the supported leaderboard calculations.
type ScoringMethod string

const (
	MethodStrokePlay ScoringMethod = "stroke_play" // Strokes vs par, lowest wins
	MethodStableford ScoringMethod = "stableford"  // Points per hole, highest wins
	MethodMatchPlay  ScoringMethod = "match_play"  // Pairwise hole-by-hole points
	MethodSkins      ScoringMethod = "skins"       // Winner takes the hole, ties carry over
)

// HandicapType selects the stroke-allocation policy for a game.
type HandicapType string

const (
	HandicapNone       HandicapType = "none"        // Everyone plays off scratch
	HandicapMatchPlay  HandicapType = "match_play"  // Field-relative match handicaps
	HandicapStrokePlay HandicapType = "stroke_play" // Full playing handicaps
	HandicapRandom     HandicapType = "random"      // Strokes scattered on random holes
	HandicapGhost      HandicapType = "ghost"       // Compete against a recorded round
)

// SortDirection describes how leaderboard scores are ordered.
type SortDirection string

const (
	SortAscending  SortDirection = "asc"  // Lower score is better
	SortDescending SortDirection = "desc" // Higher score is better
)

// Hole is immutable per-course reference data for a single hole.
// StrokeIndex is the difficulty rank: 1 is the hardest hole and receives the
// first handicap stroke. By convention the indices of an 18-hole course are a
// permutation of 1..18, but nothing here depends on uniqueness.
type Hole struct {
	Number      int `json:"holeNumber" yaml:"number"`
	Par         int `json:"par" yaml:"par"`
	StrokeIndex int `json:"strokeIndex" yaml:"stroke_index"`
}

// Participant is one player's handicap state within a single game.
// HandicapIndex is the authoritative input; the three derived values are
// recomputed by the caller whenever the index or tee selection changes. The
// engines never mutate a Participant.
type Participant struct {
	UserID          string  `json:"userId"`
	FullName        string  `json:"fullName"`
	HandicapIndex   float64 `json:"handicapIndex"`
	CourseHandicap  int     `json:"courseHandicap"`
	PlayingHandicap int     `json:"playingHandicap"`
	MatchHandicap   int     `json:"matchHandicap"`
}

// PlayerMatchPar is one (player, hole) entry of a PMP table: the hole's
// course par, the handicap strokes the player receives there, and the
// resulting personal par.
type PlayerMatchPar struct {
	UserID          string `json:"userId"`
	HoleNumber      int    `json:"holeNumber"`
	HolePar         int    `json:"holePar"`
	StrokesReceived int    `json:"strokesReceived"`
	PlayerMatchPar  int    `json:"playerMatchPar"`
}

// HoleScore is one player's result on one hole. Strokes of 0 is the sentinel
// for "not yet played": stroke play and stableford exclude such holes from
// aggregation, while match play and skins keep the placeholder because they
// need to know the hole exists even before everyone has scored it.
// Par may be the course par or a PMP-adjusted personal par, depending on how
// the caller assembled the scorecard.
type HoleScore struct {
	HoleNumber  int `json:"holeNumber"`
	Par         int `json:"par"`
	Strokes     int `json:"strokes"`
	Putts       int `json:"putts"`
	StrokeIndex int `json:"strokeIndex"`
}

// Scorecard is one player's full card for a game. Holes are ordered by hole
// number ascending, and every scorecard compared in one leaderboard
// calculation must cover the same hole set; a mismatch is a caller error.
// CourseHandicap and PlayingHandicap are optional: nil means the legacy
// handicap-subtraction paths are skipped.
type Scorecard struct {
	GameID          string      `json:"gameId"`
	UserID          string      `json:"userId"`
	PlayerName      string      `json:"playerName"`
	Holes           []HoleScore `json:"holes"`
	TotalStrokes    int         `json:"totalStrokes"`
	TotalPutts      int         `json:"totalPutts"`
	CourseHandicap  *int        `json:"courseHandicap,omitempty"`
	PlayingHandicap *int        `json:"playingHandicap,omitempty"`
}

// LeaderboardEntry is one ranked row of a leaderboard. Position is 1-based
// and shared by tied entries (1,2,2,4 ranking). Score is the primary ranking
// statistic; its meaning depends on the scoring method (strokes vs par for
// stroke play, points for everything else).
type LeaderboardEntry struct {
	Position   int           `json:"position"`
	PlayerID   string        `json:"playerId"`
	PlayerName string        `json:"playerName"`
	Score      int           `json:"score"`
	Details    MethodDetails `json:"details"`
}

// LeaderboardMetadata describes the scoring method a result was computed
// under, for consumers that display rules alongside standings.
type LeaderboardMetadata struct {
	ScoringMethod   ScoringMethod `json:"scoringMethod"`
	ScoringName     string        `json:"scoringName"`
	SortDirection   SortDirection `json:"sortDirection"`
	SortDescription string        `json:"sortDescription"`
	ScoringDetails  string        `json:"scoringDetails"`
}

// LeaderboardResult is the complete output of one leaderboard calculation.
// Entries are sorted by score in the metadata's sort direction with
// method-specific tie-breaks applied before positions are assigned.
type LeaderboardResult struct {
	Metadata LeaderboardMetadata `json:"metadata"`
	Entries  []LeaderboardEntry  `json:"entries"`
}

// MethodDetails is the per-entry detail payload. Each scoring method has its
// own variant, selected by the Method discriminant. This replaces the
// open-shape detail map of a dynamically typed implementation with a tagged
// union.
type MethodDetails interface {
	Method() ScoringMethod
}

// StrokePlayDetails carries the stroke-play breakdown. ScoreVsPar is the
// ranking value (strokes minus the card's par, which may already be a
// personal par). NetScore is gross minus course handicap and is display-only.
type StrokePlayDetails struct {
	GrossScore  int  `json:"grossScore"`
	NetScore    *int `json:"netScore,omitempty"`
	ScoreVsPar  int  `json:"scoreVsPar"`
	TotalPar    int  `json:"totalPar"`
	HolesPlayed int  `json:"holesPlayed"`
	BackNine    int  `json:"backNineStrokes"`
	TotalPutts  int  `json:"totalPutts"`
}

func (StrokePlayDetails) Method() ScoringMethod { return MethodStrokePlay }

// StablefordDetails carries the stableford breakdown.
type StablefordDetails struct {
	Points         int `json:"points"`
	HolesWithScore int `json:"holesWithScore"` // Holes that earned at least one point
	BackNinePoints int `json:"backNinePoints"`
	HolesPlayed    int `json:"holesPlayed"`
	GrossScore     int `json:"grossScore"`
}

func (StablefordDetails) Method() ScoringMethod { return MethodStableford }

// MatchPlayDetails carries the round-robin breakdown. HolesWon and HolesTied
// count outright-best and shared-best holes and are computed independently of
// the pairwise point totals. HoleResults has one marker per processed hole:
// "W", "T", "L", or "-" for a hole skipped because nobody has played it.
// MatchStatus is only set for two-player matches.
type MatchPlayDetails struct {
	Points       int      `json:"points"`
	HolesWon     int      `json:"holesWon"`
	HolesTied    int      `json:"holesTied"`
	HolesPlayed  int      `json:"holesPlayed"`
	HoleResults  []string `json:"holeResults"`
	MatchStatus  string   `json:"matchStatus,omitempty"`
	TotalStrokes int      `json:"totalStrokes"`
}

func (MatchPlayDetails) Method() ScoringMethod { return MethodMatchPlay }

// SkinsDetails carries the skins breakdown. SkinValues maps a won hole number
// to the skin value claimed there (base 1 plus any carryover).
type SkinsDetails struct {
	SkinsWon     int         `json:"skinsWon"`
	HolesWon     []int       `json:"holesWon"`
	SkinValues   map[int]int `json:"skinValues"`
	TotalStrokes int         `json:"totalStrokes"`
}

func (SkinsDetails) Method() ScoringMethod { return MethodSkins }

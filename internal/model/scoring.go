package model

// ScoringKind selects which scoring system a tournament uses
type ScoringKind string

const (
	// ScoringStandard is the match-point scoring model
	ScoringStandard ScoringKind = "standard"
)

// ScoringSystem is the tagged choice of scoring model. Only the variant
// matching Kind is populated.
type ScoringSystem struct {
	Kind     ScoringKind      `json:"kind"`
	Standard *StandardScoring `json:"standard,omitempty"`
}

// NewScoringSystem creates a standard scoring system with default weights
func NewScoringSystem() *ScoringSystem {
	return &ScoringSystem{
		Kind:     ScoringStandard,
		Standard: DefaultStandardScoring(),
	}
}

// ApplySetting updates one scoring setting. The setting's variant must match
// the configured scoring kind.
func (s *ScoringSystem) ApplySetting(setting ScoringSetting) error {
	if setting.ScoringKind() != s.Kind {
		return ErrIncompatibleScoringSystem
	}
	s.Standard.applySetting(setting)
	return nil
}

// StandardScoring holds the point weights and inclusion toggles for the
// standard match-point model.
//
// Defaults follow common organized-play conventions: 3/1/0 points for match
// and game win/draw/loss, byes worth a match win, and every sub-score
// included.
type StandardScoring struct {
	MatchWinPoints  float64 `json:"match_win_points"`
	MatchDrawPoints float64 `json:"match_draw_points"`
	MatchLossPoints float64 `json:"match_loss_points"`
	GameWinPoints   float64 `json:"game_win_points"`
	GameDrawPoints  float64 `json:"game_draw_points"`
	GameLossPoints  float64 `json:"game_loss_points"`
	ByePoints       float64 `json:"bye_points"`

	IncludeByes        bool `json:"include_byes"`
	IncludeMatchPoints bool `json:"include_match_points"`
	IncludeGamePoints  bool `json:"include_game_points"`
	IncludeMwp         bool `json:"include_mwp"`
	IncludeGwp         bool `json:"include_gwp"`
	IncludeOppMwp      bool `json:"include_opp_mwp"`
	IncludeOppGwp      bool `json:"include_opp_gwp"`
}

// DefaultStandardScoring returns the documented default weights
func DefaultStandardScoring() *StandardScoring {
	return &StandardScoring{
		MatchWinPoints:     3,
		MatchDrawPoints:    1,
		MatchLossPoints:    0,
		GameWinPoints:      3,
		GameDrawPoints:     1,
		GameLossPoints:     0,
		ByePoints:          3,
		IncludeByes:        true,
		IncludeMatchPoints: true,
		IncludeGamePoints:  true,
		IncludeMwp:         true,
		IncludeGwp:         true,
		IncludeOppMwp:      true,
		IncludeOppGwp:      true,
	}
}

func (s *StandardScoring) applySetting(setting ScoringSetting) {
	switch v := setting.(type) {
	case MatchWinPointsSetting:
		s.MatchWinPoints = float64(v)
	case MatchDrawPointsSetting:
		s.MatchDrawPoints = float64(v)
	case MatchLossPointsSetting:
		s.MatchLossPoints = float64(v)
	case GameWinPointsSetting:
		s.GameWinPoints = float64(v)
	case GameDrawPointsSetting:
		s.GameDrawPoints = float64(v)
	case GameLossPointsSetting:
		s.GameLossPoints = float64(v)
	case ByePointsSetting:
		s.ByePoints = float64(v)
	case IncludeByesSetting:
		s.IncludeByes = bool(v)
	case IncludeMatchPointsSetting:
		s.IncludeMatchPoints = bool(v)
	case IncludeGamePointsSetting:
		s.IncludeGamePoints = bool(v)
	case IncludeMwpSetting:
		s.IncludeMwp = bool(v)
	case IncludeGwpSetting:
		s.IncludeGwp = bool(v)
	case IncludeOppMwpSetting:
		s.IncludeOppMwp = bool(v)
	case IncludeOppGwpSetting:
		s.IncludeOppGwp = bool(v)
	}
}

// Score is a player's accumulated standing under the standard scoring model.
// Percentages are 0 for players whose only rounds were byes (or who have not
// played); this floor avoids dividing by zero.
type Score struct {
	MatchPoints float64 `json:"match_points"`
	GamePoints  float64 `json:"game_points"`
	Mwp         float64 `json:"mwp"`
	Gwp         float64 `json:"gwp"`
	OppMwp      float64 `json:"opp_mwp"`
	OppGwp      float64 `json:"opp_gwp"`
}

// StandingsEntry pairs a player with their score
type StandingsEntry struct {
	Player PlayerID `json:"player"`
	Score  Score    `json:"score"`
}

// Standings is the ranked list of players, best first. The order is total:
// score sub-components in a fixed sequence, then player id.
type Standings struct {
	Entries []StandingsEntry `json:"entries"`
}

package model

import "time"

// TournamentStatus represents the lifecycle of a tournament
type TournamentStatus string

const (
	// TournamentStatusPlanned means play has not begun
	TournamentStatusPlanned TournamentStatus = "planned"
	// TournamentStatusStarted means play is underway
	TournamentStatusStarted TournamentStatus = "started"
	// TournamentStatusFrozen means play is paused; only thawing is allowed
	TournamentStatusFrozen TournamentStatus = "frozen"
	// TournamentStatusEnded means the tournament concluded normally
	TournamentStatusEnded TournamentStatus = "ended"
	// TournamentStatusCancelled means the tournament was abandoned
	TournamentStatusCancelled TournamentStatus = "cancelled"
)

// TournamentPreset selects the pairing style a tournament is created with
type TournamentPreset string

const (
	// PresetSwiss runs discrete synchronized rounds
	PresetSwiss TournamentPreset = "swiss"
	// PresetFluid pairs players continuously as they queue
	PresetFluid TournamentPreset = "fluid"
)

// DefaultRoundLength is the base round clock for new tournaments
const DefaultRoundLength = 50 * time.Minute

// Tournament is the aggregate holding every piece of state for one event.
// All mutation goes through the tournament service's operation applier, which
// guards each operation against the current status before touching anything.
type Tournament struct {
	ID     TournamentID     `json:"id"`
	Name   string           `json:"name"`
	Format string           `json:"format"`
	Status TournamentStatus `json:"status"`

	// GameSize is the number of players seated per round
	GameSize int `json:"game_size"`

	MinDeckCount int `json:"min_deck_count"`
	MaxDeckCount int `json:"max_deck_count"`

	RegOpen         bool `json:"reg_open"`
	RequireCheckIn  bool `json:"require_check_in"`
	RequireDeckReg  bool `json:"require_deck_reg"`
	UseTableNumbers bool `json:"use_table_numbers"`

	Players *PlayerRegistry `json:"players"`
	Rounds  *RoundRegistry  `json:"rounds"`
	Pairing *PairingSystem  `json:"pairing"`
	Scoring *ScoringSystem  `json:"scoring"`
}

// NewTournament creates a planned tournament from a preset, with registration
// open and default deck bounds.
func NewTournament(name, format string, preset TournamentPreset) *Tournament {
	kind := PairingSwiss
	if preset == PresetFluid {
		kind = PairingFluid
	}
	gameSize := 2
	return &Tournament{
		ID:              NewTournamentID(),
		Name:            name,
		Format:          format,
		Status:          TournamentStatusPlanned,
		GameSize:        gameSize,
		MinDeckCount:    1,
		MaxDeckCount:    2,
		RegOpen:         true,
		UseTableNumbers: true,
		Players:         NewPlayerRegistry(),
		Rounds:          NewRoundRegistry(1, DefaultRoundLength),
		Pairing:         NewPairingSystem(kind, gameSize),
		Scoring:         NewScoringSystem(),
	}
}

// IsPlanned reports whether play has not yet begun
func (t *Tournament) IsPlanned() bool {
	return t.Status == TournamentStatusPlanned
}

// IsFrozen reports whether the tournament is paused
func (t *Tournament) IsFrozen() bool {
	return t.Status == TournamentStatusFrozen
}

// IsActive reports whether the tournament accepts operations at all
func (t *Tournament) IsActive() bool {
	return t.Status == TournamentStatusPlanned ||
		t.Status == TournamentStatusStarted ||
		t.Status == TournamentStatusFrozen
}

// IsDead reports whether the tournament has reached a terminal status
func (t *Tournament) IsDead() bool {
	return t.Status == TournamentStatusEnded || t.Status == TournamentStatusCancelled
}

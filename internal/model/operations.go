package model

import "time"

// Operation captures every way a tournament can mutate. Operations are
// applied atomically: either every side effect commits or none do.
type Operation interface {
	isOperation()
}

// Status operations

type StartOp struct{}
type FreezeOp struct{}
type ThawOp struct{}
type EndOp struct{}
type CancelOp struct{}

// UpdateRegOp opens or closes registration
type UpdateRegOp struct {
	Open bool `json:"open"`
}

// Player operations

type RegisterPlayerOp struct {
	Name string `json:"name"`
}

type CheckInOp struct {
	Player PlayerIdentifier `json:"player"`
}

type DropPlayerOp struct {
	Player PlayerIdentifier `json:"player"`
}

// AdminDropPlayerOp drops a player on an organizer's authority rather than
// their own
type AdminDropPlayerOp struct {
	Player PlayerIdentifier `json:"player"`
}

type AddDeckOp struct {
	Player PlayerIdentifier `json:"player"`
	Name   string           `json:"name"`
	Deck   Deck             `json:"deck"`
}

type RemoveDeckOp struct {
	Player PlayerIdentifier `json:"player"`
	Name   string           `json:"name"`
}

type SetGamerTagOp struct {
	Player PlayerIdentifier `json:"player"`
	Tag    string           `json:"tag"`
}

type ReadyPlayerOp struct {
	Player PlayerIdentifier `json:"player"`
}

type UnReadyPlayerOp struct {
	Player PlayerIdentifier `json:"player"`
}

// Round operations

type RecordResultOp struct {
	Round  RoundIdentifier `json:"round"`
	Result RoundResult     `json:"result"`
}

type ConfirmResultOp struct {
	Player PlayerIdentifier `json:"player"`
}

type GiveByeOp struct {
	Player PlayerIdentifier `json:"player"`
}

// CreateRoundOp manually seats the given players in a fresh round
type CreateRoundOp struct {
	Players []PlayerIdentifier `json:"players"`
}

// PairRoundOp asks the pairing system to produce the next set of rounds
type PairRoundOp struct{}

type RemoveRoundOp struct {
	Round RoundIdentifier `json:"round"`
}

type TimeExtensionOp struct {
	Round     RoundIdentifier `json:"round"`
	Extension time.Duration   `json:"extension"`
}

// Settings and administration

type UpdateSettingOp struct {
	Setting Setting `json:"setting"`
}

// CutOp drops everyone below the top N of the standings
type CutOp struct {
	Size int `json:"size"`
}

// PruneDecksOp trims each player's decks down to the configured maximum
type PruneDecksOp struct{}

// PrunePlayersOp drops players missing required decks or check-ins
type PrunePlayersOp struct{}

func (StartOp) isOperation()           {}
func (FreezeOp) isOperation()          {}
func (ThawOp) isOperation()            {}
func (EndOp) isOperation()             {}
func (CancelOp) isOperation()          {}
func (UpdateRegOp) isOperation()       {}
func (RegisterPlayerOp) isOperation()  {}
func (CheckInOp) isOperation()         {}
func (DropPlayerOp) isOperation()      {}
func (AdminDropPlayerOp) isOperation() {}
func (AddDeckOp) isOperation()         {}
func (RemoveDeckOp) isOperation()      {}
func (SetGamerTagOp) isOperation()     {}
func (ReadyPlayerOp) isOperation()     {}
func (UnReadyPlayerOp) isOperation()   {}
func (RecordResultOp) isOperation()    {}
func (ConfirmResultOp) isOperation()   {}
func (GiveByeOp) isOperation()         {}
func (CreateRoundOp) isOperation()     {}
func (PairRoundOp) isOperation()       {}
func (RemoveRoundOp) isOperation()     {}
func (TimeExtensionOp) isOperation()   {}
func (UpdateSettingOp) isOperation()   {}
func (CutOp) isOperation()             {}
func (PruneDecksOp) isOperation()      {}
func (PrunePlayersOp) isOperation()    {}

// Effect summarizes what an applied operation did, for callers that need the
// ids it produced
type Effect struct {
	// Player is set by RegisterPlayer
	Player PlayerID `json:"player,omitempty"`
	// Round is set by GiveBye and CreateRound
	Round RoundID `json:"round,omitempty"`
	// Rounds is set by PairRound and ReadyPlayer-triggered pairings
	Rounds []RoundID `json:"rounds,omitempty"`
	// RoundStatus is set by ConfirmResult
	RoundStatus RoundStatus `json:"round_status,omitempty"`
}

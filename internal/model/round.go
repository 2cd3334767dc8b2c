package model

import "time"

// RoundStatus represents the lifecycle of a round
type RoundStatus string

const (
	// RoundStatusOpen means nothing has been recorded yet
	RoundStatusOpen RoundStatus = "open"
	// RoundStatusUncertified means a result is recorded but not all players
	// have confirmed it
	RoundStatusUncertified RoundStatus = "uncertified"
	// RoundStatusCertified means the result is confirmed by every player
	RoundStatusCertified RoundStatus = "certified"
	// RoundStatusDead means the round was removed from the tournament. Dead
	// rounds are kept to avoid reusing match numbers.
	RoundStatusDead RoundStatus = "dead"
)

// RoundResult encodes part of a round's outcome: either "Player won Wins
// games" or a drawn game
type RoundResult struct {
	Draw   bool     `json:"draw,omitempty"`
	Player PlayerID `json:"player,omitempty"`
	Wins   int      `json:"wins,omitempty"`
}

// WinsResult records that a player won the given number of games
func WinsResult(player PlayerID, wins int) RoundResult {
	return RoundResult{Player: player, Wins: wins}
}

// DrawResult records a drawn game
func DrawResult() RoundResult {
	return RoundResult{Draw: true}
}

// Round is a single match between GameSize players, or a bye for exactly one
// player. Rounds are owned by the RoundRegistry.
//
// The round clock starts as soon as the round is created. Results are
// recorded per player and must then be confirmed by every participant before
// the round is certified and counts toward standings.
type Round struct {
	ID          RoundID `json:"id"`
	Number      uint64  `json:"number"`
	TableNumber uint64  `json:"table_number"`

	// Players is ordered by seating; order is preserved for determinism
	Players       []PlayerID        `json:"players"`
	Confirmations map[PlayerID]bool `json:"confirmations"`

	// GameWins counts games won per player; GameDraws counts drawn games
	GameWins  map[PlayerID]int `json:"game_wins"`
	GameDraws int              `json:"game_draws"`

	Status RoundStatus `json:"status"`

	// Winner is set at certification, or immediately for byes. Empty means
	// no winner (a drawn or unfinished round).
	Winner PlayerID `json:"winner,omitempty"`
	IsBye  bool     `json:"is_bye,omitempty"`

	StartedAt time.Time     `json:"started_at"`
	Length    time.Duration `json:"length"`
	Extension time.Duration `json:"extension"`
}

// NewRound creates an open round with no players
func NewRound(number, tableNumber uint64, length time.Duration, now time.Time) *Round {
	return &Round{
		ID:            NewRoundID(),
		Number:        number,
		TableNumber:   tableNumber,
		Confirmations: make(map[PlayerID]bool),
		GameWins:      make(map[PlayerID]int),
		Status:        RoundStatusOpen,
		StartedAt:     now,
		Length:        length,
	}
}

// AddPlayer seats a player in the round
func (r *Round) AddPlayer(id PlayerID) {
	r.Players = append(r.Players, id)
}

// HasPlayer reports whether the player is seated in this round
func (r *Round) HasPlayer(id PlayerID) bool {
	for _, p := range r.Players {
		if p == id {
			return true
		}
	}
	return false
}

// RecordResult records part of the round's outcome. Recording clears any
// confirmations already given, since the result they certified has changed.
func (r *Round) RecordResult(result RoundResult) error {
	if result.Draw {
		r.GameDraws++
	} else {
		if !r.HasPlayer(result.Player) {
			return ErrPlayerNotInRound
		}
		r.GameWins[result.Player] = result.Wins
	}
	r.Status = RoundStatusUncertified
	r.Confirmations = make(map[PlayerID]bool)
	return nil
}

// Confirm records the player's certification of the recorded result. Once
// every seated player has confirmed, the round is certified and the winner is
// declared.
func (r *Round) Confirm(id PlayerID) (RoundStatus, error) {
	if !r.HasPlayer(id) {
		return r.Status, ErrPlayerNotInRound
	}
	r.Confirmations[id] = true
	if len(r.Confirmations) == len(r.Players) {
		r.certify()
	}
	return r.Status, nil
}

// certify closes the round and declares a winner: the player with strictly
// the most game wins, or nobody on a tie
func (r *Round) certify() {
	r.Status = RoundStatusCertified
	best, tied := PlayerID(""), false
	for _, p := range r.Players {
		switch wins := r.GameWins[p]; {
		case best == "" || wins > r.GameWins[best]:
			best, tied = p, false
		case wins == r.GameWins[best]:
			tied = true
		}
	}
	if best != "" && !tied && r.GameWins[best] > 0 {
		r.Winner = best
	}
}

// RecordBye certifies the round as a bye. Only valid for a round holding
// exactly one player.
func (r *Round) RecordBye() error {
	if len(r.Players) != 1 {
		return ErrInvalidBye
	}
	r.IsBye = true
	r.Winner = r.Players[0]
	r.Status = RoundStatusCertified
	return nil
}

// Kill removes the round from play without deleting it
func (r *Round) Kill() {
	r.Status = RoundStatusDead
}

// IsCertified reports whether the round's result is final
func (r *Round) IsCertified() bool {
	return r.Status == RoundStatusCertified
}

// IsActive reports whether the round still needs results or confirmations
func (r *Round) IsActive() bool {
	return r.Status == RoundStatusOpen || r.Status == RoundStatusUncertified
}

// TimeLeft returns the remaining round time, factoring in extensions
func (r *Round) TimeLeft(now time.Time) time.Duration {
	deadline := r.StartedAt.Add(r.Length + r.Extension)
	if !now.Before(deadline) {
		return 0
	}
	return deadline.Sub(now)
}

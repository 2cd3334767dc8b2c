package model

import (
	"sort"
	"time"
)

// RoundRegistry owns all round records for one tournament, the match-number
// index, and the history of who has played whom (used by the pairing systems
// to avoid repeat pairings).
type RoundRegistry struct {
	Rounds      map[RoundID]*Round           `json:"rounds"`
	NumberIndex map[uint64]RoundID           `json:"number_index"`
	Opponents   map[PlayerID]map[PlayerID]bool `json:"opponents"`

	// StartingTable is the lowest table number handed out
	StartingTable uint64 `json:"starting_table"`
	// NextNumber is the match number the next round will receive
	NextNumber uint64 `json:"next_number"`
	// Length is the base round clock applied to new rounds
	Length time.Duration `json:"length"`
}

// NewRoundRegistry creates an empty round registry
func NewRoundRegistry(startingTable uint64, length time.Duration) *RoundRegistry {
	return &RoundRegistry{
		Rounds:        make(map[RoundID]*Round),
		NumberIndex:   make(map[uint64]RoundID),
		Opponents:     make(map[PlayerID]map[PlayerID]bool),
		StartingTable: startingTable,
		NextNumber:    1,
		Length:        length,
	}
}

// Create adds a new open round with the next match number and the lowest
// free table number
func (r *RoundRegistry) Create(now time.Time) *Round {
	round := NewRound(r.NextNumber, r.nextTableNumber(), r.Length, now)
	r.NextNumber++
	r.Rounds[round.ID] = round
	r.NumberIndex[round.Number] = round.ID
	return round
}

// nextTableNumber finds the lowest table number, at or above the starting
// table, not occupied by an active round
func (r *RoundRegistry) nextTableNumber() uint64 {
	inUse := make(map[uint64]bool)
	for _, round := range r.Rounds {
		if round.IsActive() {
			inUse[round.TableNumber] = true
		}
	}
	table := r.StartingTable
	for inUse[table] {
		table++
	}
	return table
}

// AddPlayer seats a player in the identified round and records everyone at
// the table as mutual opponents
func (r *RoundRegistry) AddPlayer(ident RoundIdentifier, player PlayerID) error {
	round, err := r.Get(ident)
	if err != nil {
		return err
	}
	if r.Opponents[player] == nil {
		r.Opponents[player] = make(map[PlayerID]bool)
	}
	for _, seated := range round.Players {
		if r.Opponents[seated] == nil {
			r.Opponents[seated] = make(map[PlayerID]bool)
		}
		r.Opponents[seated][player] = true
		r.Opponents[player][seated] = true
	}
	round.AddPlayer(player)
	return nil
}

// Resolve turns a round identifier into a round id
func (r *RoundRegistry) Resolve(ident RoundIdentifier) (RoundID, error) {
	if ident.ID != "" {
		if _, ok := r.Rounds[ident.ID]; !ok {
			return "", ErrRoundLookup
		}
		return ident.ID, nil
	}
	id, ok := r.NumberIndex[ident.Number]
	if !ok {
		return "", ErrRoundLookup
	}
	return id, nil
}

// Get returns the round the identifier resolves to
func (r *RoundRegistry) Get(ident RoundIdentifier) (*Round, error) {
	id, err := r.Resolve(ident)
	if err != nil {
		return nil, err
	}
	return r.Rounds[id], nil
}

// Kill marks the identified round dead and unwinds its opponent history so
// the pairing systems may pair its players again
func (r *RoundRegistry) Kill(ident RoundIdentifier) error {
	round, err := r.Get(ident)
	if err != nil {
		return err
	}
	round.Kill()
	for _, a := range round.Players {
		for _, b := range round.Players {
			if a != b {
				delete(r.Opponents[a], b)
			}
		}
	}
	return nil
}

// ActiveCount returns the number of rounds still awaiting certification
func (r *RoundRegistry) ActiveCount() int {
	count := 0
	for _, round := range r.Rounds {
		if round.IsActive() {
			count++
		}
	}
	return count
}

// PlayerActiveRound returns the player's oldest active round
func (r *RoundRegistry) PlayerActiveRound(id PlayerID) (*Round, error) {
	var active []*Round
	for _, round := range r.Rounds {
		if round.IsActive() && round.HasPlayer(id) {
			active = append(active, round)
		}
	}
	if len(active) == 0 {
		return nil, ErrNoActiveRound
	}
	sort.Slice(active, func(i, j int) bool { return active[i].Number < active[j].Number })
	return active[0], nil
}

// PlayerInActiveRound reports whether the player is seated in any active round
func (r *RoundRegistry) PlayerInActiveRound(id PlayerID) bool {
	_, err := r.PlayerActiveRound(id)
	return err == nil
}

// HavePlayed reports whether two players have faced each other in a live
// (non-dead) round
func (r *RoundRegistry) HavePlayed(a, b PlayerID) bool {
	return r.Opponents[a][b]
}

// ByeCount returns the number of certified byes the player has received
func (r *RoundRegistry) ByeCount(id PlayerID) int {
	count := 0
	for _, round := range r.Rounds {
		if round.IsBye && round.IsCertified() && round.HasPlayer(id) {
			count++
		}
	}
	return count
}

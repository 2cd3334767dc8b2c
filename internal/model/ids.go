package model

import "github.com/google/uuid"

// TournamentID uniquely identifies a tournament
type TournamentID string

// PlayerID uniquely identifies a player within a tournament
type PlayerID string

// RoundID uniquely identifies a round within a tournament
type RoundID string

// NewTournamentID generates a fresh random tournament id
func NewTournamentID() TournamentID {
	return TournamentID(uuid.NewString())
}

// NewPlayerID generates a fresh random player id
func NewPlayerID() PlayerID {
	return PlayerID(uuid.NewString())
}

// NewRoundID generates a fresh random round id
func NewRoundID() RoundID {
	return RoundID(uuid.NewString())
}

// PlayerIdentifier is a lookup key for a player: either a direct id or a
// display name. The owning registry resolves it to a PlayerID before use.
type PlayerIdentifier struct {
	ID   PlayerID `json:"id,omitempty"`
	Name string   `json:"name,omitempty"`
}

// PlayerByID builds an identifier from a direct id
func PlayerByID(id PlayerID) PlayerIdentifier {
	return PlayerIdentifier{ID: id}
}

// PlayerByName builds an identifier from a display name
func PlayerByName(name string) PlayerIdentifier {
	return PlayerIdentifier{Name: name}
}

// RoundIdentifier is a lookup key for a round: either a direct id or a match
// number. Match numbers start at 1, so a zero Number means "unset".
type RoundIdentifier struct {
	ID     RoundID `json:"id,omitempty"`
	Number uint64  `json:"number,omitempty"`
}

// RoundByID builds an identifier from a direct id
func RoundByID(id RoundID) RoundIdentifier {
	return RoundIdentifier{ID: id}
}

// RoundByNumber builds an identifier from a match number
func RoundByNumber(num uint64) RoundIdentifier {
	return RoundIdentifier{Number: num}
}

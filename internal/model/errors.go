package model

import "errors"

// Common errors used across the application
var (
	// Operation errors
	ErrIncorrectStatus           = errors.New("operation is illegal in the current tournament status")
	ErrPlayerLookup              = errors.New("player not found")
	ErrRoundLookup               = errors.New("round not found")
	ErrDeckLookup                = errors.New("deck not found")
	ErrRegClosed                 = errors.New("registration is closed")
	ErrPlayerNotInRound          = errors.New("player is not in the round")
	ErrNoActiveRound             = errors.New("player has no active round")
	ErrInvalidBye                = errors.New("round cannot be recorded as a bye")
	ErrActiveMatches             = errors.New("there are unresolved active rounds")
	ErrPlayerNotCheckedIn        = errors.New("player is not checked in")
	ErrIncompatiblePairingSystem = errors.New("setting does not apply to the configured pairing system")
	ErrIncompatibleScoringSystem = errors.New("setting does not apply to the configured scoring system")
	ErrInvalidDeckCount          = errors.New("min deck count cannot exceed max deck count")

	// Storage errors
	ErrTournamentNotFound = errors.New("tournament not found")
)

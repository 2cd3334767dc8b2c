// Package statuscode defines the canonical small-integer encoding of
// operation outcomes for callers that cannot consume structured errors. The
// mapping lives here and only here so it cannot drift between surfaces.
package statuscode

import (
	"errors"

	"github.com/arbiter-gg/arbiter/internal/model"
)

// Status codes for applied operations. The error codes follow the fixed
// taxonomy order and must never be renumbered.
const (
	OK                        = 0
	IncorrectStatus           = 1
	PlayerLookup              = 2
	RoundLookup               = 3
	DeckLookup                = 4
	RegClosed                 = 5
	PlayerNotInRound          = 6
	NoActiveRound             = 7
	InvalidBye                = 8
	ActiveMatches             = 9
	PlayerNotCheckedIn        = 10
	IncompatiblePairingSystem = 11
	IncompatibleScoringSystem = 12
	InvalidDeckCount          = 13
	Unknown                   = -1
)

// FromError converts an operation error into its status code. A nil error is
// OK; anything outside the taxonomy is Unknown.
func FromError(err error) int {
	switch {
	case err == nil:
		return OK
	case errors.Is(err, model.ErrIncorrectStatus):
		return IncorrectStatus
	case errors.Is(err, model.ErrPlayerLookup):
		return PlayerLookup
	case errors.Is(err, model.ErrRoundLookup):
		return RoundLookup
	case errors.Is(err, model.ErrDeckLookup):
		return DeckLookup
	case errors.Is(err, model.ErrRegClosed):
		return RegClosed
	case errors.Is(err, model.ErrPlayerNotInRound):
		return PlayerNotInRound
	case errors.Is(err, model.ErrNoActiveRound):
		return NoActiveRound
	case errors.Is(err, model.ErrInvalidBye):
		return InvalidBye
	case errors.Is(err, model.ErrActiveMatches):
		return ActiveMatches
	case errors.Is(err, model.ErrPlayerNotCheckedIn):
		return PlayerNotCheckedIn
	case errors.Is(err, model.ErrIncompatiblePairingSystem):
		return IncompatiblePairingSystem
	case errors.Is(err, model.ErrIncompatibleScoringSystem):
		return IncompatibleScoringSystem
	case errors.Is(err, model.ErrInvalidDeckCount):
		return InvalidDeckCount
	}
	return Unknown
}

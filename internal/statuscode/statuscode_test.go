package statuscode

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arbiter-gg/arbiter/internal/model"
)

func TestFromErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, OK},
		{model.ErrIncorrectStatus, 1},
		{model.ErrPlayerLookup, 2},
		{model.ErrRoundLookup, 3},
		{model.ErrDeckLookup, 4},
		{model.ErrRegClosed, 5},
		{model.ErrPlayerNotInRound, 6},
		{model.ErrNoActiveRound, 7},
		{model.ErrInvalidBye, 8},
		{model.ErrActiveMatches, 9},
		{model.ErrPlayerNotCheckedIn, 10},
		{model.ErrIncompatiblePairingSystem, 11},
		{model.ErrIncompatibleScoringSystem, 12},
		{model.ErrInvalidDeckCount, 13},
		{errors.New("something else"), Unknown},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, FromError(tc.err), "%v", tc.err)
	}
}

func TestFromErrorUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("applying operation: %w", model.ErrInvalidBye)
	assert.Equal(t, InvalidBye, FromError(wrapped))
}

package redis

import (
	"fmt"

	"github.com/arbiter-gg/arbiter/internal/model"
)

// Key prefix for all tournament data
const keyPrefix = "arbiter"

// tournamentKey returns the Redis key for a tournament snapshot
func tournamentKey(id model.TournamentID) string {
	return fmt.Sprintf("%s:tournament:%s", keyPrefix, id)
}

// tournamentIndexKey returns the Redis key for the SET of known tournament ids
func tournamentIndexKey() string {
	return fmt.Sprintf("%s:idx:tournaments", keyPrefix)
}

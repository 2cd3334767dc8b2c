package storage

import (
	"context"

	"github.com/arbiter-gg/arbiter/internal/model"
)

// Storage defines the interface for tournament persistence. Implementations
// store snapshots: a retrieved tournament is always an independent copy, so
// callers may mutate it freely and nothing is visible until it is saved back.
type Storage interface {
	SaveTournament(ctx context.Context, t *model.Tournament) error
	GetTournament(ctx context.Context, id model.TournamentID) (*model.Tournament, error)
	DeleteTournament(ctx context.Context, id model.TournamentID) error
	ListTournaments(ctx context.Context) ([]model.TournamentID, error)
}

package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/arbiter-gg/arbiter/internal/model"
	"github.com/arbiter-gg/arbiter/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Tournaments are held in serialized form so that every Get hands back an
// independent copy; mutating a retrieved tournament cannot leak into the
// store without an explicit Save.
type Storage struct {
	mu sync.RWMutex

	tournaments map[model.TournamentID][]byte
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		tournaments: make(map[model.TournamentID][]byte),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveTournament(ctx context.Context, t *model.Tournament) error {
	data, err := json.Marshal(t)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tournaments[t.ID] = data
	return nil
}

func (s *Storage) GetTournament(ctx context.Context, id model.TournamentID) (*model.Tournament, error) {
	s.mu.RLock()
	data, ok := s.tournaments[id]
	s.mu.RUnlock()
	if !ok {
		return nil, model.ErrTournamentNotFound
	}
	var t model.Tournament
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Storage) DeleteTournament(ctx context.Context, id model.TournamentID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tournaments, id)
	return nil
}

func (s *Storage) ListTournaments(ctx context.Context) ([]model.TournamentID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]model.TournamentID, 0, len(s.tournaments))
	for id := range s.tournaments {
		ids = append(ids, id)
	}
	return ids, nil
}

// Package pairing produces the player groupings for a tournament's next
// round(s). Two algorithms are supported: Swiss, which pairs a synchronized
// round from the full eligible pool ordered by standings, and Fluid, which
// pairs continuously from a looking-for-game queue.
package pairing

import (
	"log/slog"
	"sort"

	"github.com/arbiter-gg/arbiter/internal/model"
)

// Service runs the pairing algorithms. It is stateless; all tournament state
// lives on the aggregate.
type Service struct {
	logger *slog.Logger
}

// New creates a new pairing service
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// Pair produces the next set of pairings for the tournament. Standings drive
// the Swiss ordering; Fluid pairs in queue (arrival) order. Players left over
// from a Fluid run stay in the queue; Swiss instead assigns byes so that every
// eligible player lands in exactly one group or the bye list.
func (s *Service) Pair(t *model.Tournament, standings model.Standings) (model.Pairings, error) {
	switch t.Pairing.Kind {
	case model.PairingSwiss:
		return s.pairSwiss(t, standings), nil
	case model.PairingFluid:
		return s.pairFluid(t), nil
	}
	return model.Pairings{}, model.ErrIncompatiblePairingSystem
}

// SwissPool returns the players eligible for the next Swiss round, unordered
func (s *Service) SwissPool(t *model.Tournament) []model.PlayerID {
	var pool []model.PlayerID
	for id, player := range t.Players.Players {
		if !player.CanPlay() {
			continue
		}
		if t.Pairing.DoCheckIns && !t.Pairing.Ready[id] {
			continue
		}
		pool = append(pool, id)
	}
	return pool
}

// SwissReady reports whether a Swiss round can be paired right now: no rounds
// still in progress, enough eligible players for at least one full group, and
// everyone checked in when check-ins are on.
func (s *Service) SwissReady(t *model.Tournament) bool {
	if t.Rounds.ActiveCount() > 0 {
		return false
	}
	if t.Pairing.DoCheckIns {
		for id, player := range t.Players.Players {
			if player.CanPlay() && !t.Pairing.Ready[id] {
				return false
			}
		}
	}
	return len(s.SwissPool(t)) >= t.Pairing.MatchSize
}

func (s *Service) pairSwiss(t *model.Tournament, standings model.Standings) model.Pairings {
	pool := s.SwissPool(t)
	order := s.swissOrder(t, standings, pool)

	matchSize := t.Pairing.MatchSize
	byes := pickByes(order, len(order)%matchSize, t.Rounds.ByeCount)
	order = without(order, byes)

	groups, leftover := greedyGroups(order, matchSize, t.Rounds.HavePlayed, false)
	if len(leftover) > 0 {
		// No repeat-free grouping exists; regroup tolerating repeats
		s.logger.Debug("swiss pairing tolerating repeat opponents",
			"leftover", len(leftover))
		groups, _ = greedyGroups(order, matchSize, t.Rounds.HavePlayed, true)
	}

	return model.Pairings{Groups: groups, Byes: byes}
}

func (s *Service) pairFluid(t *model.Tournament) model.Pairings {
	var pool []model.PlayerID
	for _, id := range t.Pairing.Queue {
		player, ok := t.Players.Players[id]
		if !ok || !player.CanPlay() || t.Rounds.PlayerInActiveRound(id) {
			continue
		}
		pool = append(pool, id)
	}
	groups, _ := greedyGroups(pool, t.Pairing.MatchSize, t.Rounds.HavePlayed, false)
	return model.Pairings{Groups: groups}
}

// swissOrder sorts the pool best first: standings order for distinct scores,
// then fewest prior byes, then id for determinism
func (s *Service) swissOrder(t *model.Tournament, standings model.Standings, pool []model.PlayerID) []model.PlayerID {
	rank := make(map[model.PlayerID]int, len(standings.Entries))
	score := make(map[model.PlayerID]model.Score, len(standings.Entries))
	for i, entry := range standings.Entries {
		rank[entry.Player] = i
		score[entry.Player] = entry.Score
	}

	order := make([]model.PlayerID, len(pool))
	copy(order, pool)
	sort.Slice(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if score[a] != score[b] {
			return rank[a] < rank[b]
		}
		aByes, bByes := t.Rounds.ByeCount(a), t.Rounds.ByeCount(b)
		if aByes != bByes {
			return aByes < bByes
		}
		return a < b
	})
	return order
}

// pickByes selects n bye recipients from the bottom of the order, preferring
// players who have not yet received one
func pickByes(order []model.PlayerID, n int, byeCount func(model.PlayerID) int) []model.PlayerID {
	if n == 0 {
		return nil
	}
	var byes []model.PlayerID
	taken := make(map[model.PlayerID]bool)
	for i := len(order) - 1; i >= 0 && len(byes) < n; i-- {
		if byeCount(order[i]) == 0 {
			byes = append(byes, order[i])
			taken[order[i]] = true
		}
	}
	for i := len(order) - 1; i >= 0 && len(byes) < n; i-- {
		if !taken[order[i]] {
			byes = append(byes, order[i])
		}
	}
	return byes
}

func without(order []model.PlayerID, removed []model.PlayerID) []model.PlayerID {
	drop := make(map[model.PlayerID]bool, len(removed))
	for _, id := range removed {
		drop[id] = true
	}
	var out []model.PlayerID
	for _, id := range order {
		if !drop[id] {
			out = append(out, id)
		}
	}
	return out
}

// greedyGroups walks the ordered pool, seeding each group with the best
// remaining player and filling it with the next players who have not faced
// anyone already in the group. Players whose group cannot be completed are
// returned as leftovers; callers retry with allowRepeats or requeue them.
func greedyGroups(order []model.PlayerID, size int, havePlayed func(a, b model.PlayerID) bool, allowRepeats bool) ([][]model.PlayerID, []model.PlayerID) {
	remaining := make([]model.PlayerID, len(order))
	copy(remaining, order)

	var groups [][]model.PlayerID
	var leftover []model.PlayerID

	for len(remaining) >= size {
		group := []model.PlayerID{remaining[0]}
		used := map[int]bool{0: true}
		for i := 1; i < len(remaining) && len(group) < size; i++ {
			if allowRepeats || compatible(remaining[i], group, havePlayed) {
				group = append(group, remaining[i])
				used[i] = true
			}
		}
		if len(group) == size {
			groups = append(groups, group)
			remaining = removeIndexes(remaining, used)
		} else {
			// Seed cannot be grouped at this tolerance
			leftover = append(leftover, remaining[0])
			remaining = remaining[1:]
		}
	}
	leftover = append(leftover, remaining...)
	return groups, leftover
}

func compatible(candidate model.PlayerID, group []model.PlayerID, havePlayed func(a, b model.PlayerID) bool) bool {
	for _, member := range group {
		if havePlayed(candidate, member) {
			return false
		}
	}
	return true
}

func removeIndexes(players []model.PlayerID, used map[int]bool) []model.PlayerID {
	var out []model.PlayerID
	for i, id := range players {
		if !used[i] {
			out = append(out, id)
		}
	}
	return out
}

// Interface for dependency injection
type ServiceInterface interface {
	Pair(t *model.Tournament, standings model.Standings) (model.Pairings, error)
	SwissPool(t *model.Tournament) []model.PlayerID
	SwissReady(t *model.Tournament) bool
}

var _ ServiceInterface = (*Service)(nil)

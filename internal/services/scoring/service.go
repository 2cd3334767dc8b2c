// Package scoring turns certified round results into per-player scores and a
// deterministic ranked standings table.
package scoring

import (
	"log/slog"
	"sort"

	"github.com/arbiter-gg/arbiter/internal/model"
)

// Service computes scores and standings. Standings are derived on demand from
// the round registry, never maintained incrementally.
type Service struct {
	logger *slog.Logger
}

// New creates a new scoring service
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// counter accumulates one player's results before percentages are derived
type counter struct {
	matchPoints float64
	gamePoints  float64
	rounds      int
	byes        int
	games       int
	opponents   map[model.PlayerID]bool
}

// Score computes every registered player's score under the tournament's
// scoring configuration. Dropped players keep their accumulated score.
func (s *Service) Score(t *model.Tournament) map[model.PlayerID]model.Score {
	cfg := t.Scoring.Standard
	counters := s.count(t, cfg)

	// Percentages first, so opponents' means can draw on them
	mwp := make(map[model.PlayerID]float64, len(counters))
	gwp := make(map[model.PlayerID]float64, len(counters))
	for id, c := range counters {
		mwp[id] = matchWinPercentage(c, cfg)
		gwp[id] = gameWinPercentage(c, cfg)
	}

	scores := make(map[model.PlayerID]model.Score, len(counters))
	for id, c := range counters {
		score := model.Score{
			MatchPoints: c.matchPoints,
			GamePoints:  c.gamePoints,
			Mwp:         mwp[id],
			Gwp:         gwp[id],
		}
		if len(c.opponents) > 0 {
			var oppMwp, oppGwp float64
			for opp := range c.opponents {
				oppMwp += mwp[opp]
				oppGwp += gwp[opp]
			}
			score.OppMwp = oppMwp / float64(len(c.opponents))
			score.OppGwp = oppGwp / float64(len(c.opponents))
		}
		scores[id] = score
	}
	return scores
}

func (s *Service) count(t *model.Tournament, cfg *model.StandardScoring) map[model.PlayerID]*counter {
	counters := make(map[model.PlayerID]*counter, t.Players.Len())
	for id := range t.Players.Players {
		counters[id] = &counter{opponents: make(map[model.PlayerID]bool)}
	}

	for _, round := range t.Rounds.Rounds {
		if !round.IsCertified() {
			continue
		}
		totalGames := round.GameDraws
		for _, wins := range round.GameWins {
			totalGames += wins
		}
		for _, id := range round.Players {
			c, ok := counters[id]
			if !ok {
				continue
			}
			if round.IsBye {
				c.rounds++
				c.byes++
				if cfg.IncludeByes {
					c.matchPoints += cfg.ByePoints
				}
				continue
			}
			c.rounds++
			switch {
			case round.Winner == id:
				c.matchPoints += cfg.MatchWinPoints
			case round.Winner == "":
				c.matchPoints += cfg.MatchDrawPoints
			default:
				c.matchPoints += cfg.MatchLossPoints
			}

			wins := round.GameWins[id]
			draws := round.GameDraws
			losses := totalGames - wins - draws
			c.games += totalGames
			c.gamePoints += float64(wins)*cfg.GameWinPoints +
				float64(draws)*cfg.GameDrawPoints +
				float64(losses)*cfg.GameLossPoints

			for _, opp := range round.Players {
				if opp != id {
					c.opponents[opp] = true
				}
			}
		}
	}
	return counters
}

// matchWinPercentage is match points over the maximum attainable from played
// rounds. Players whose only rounds were byes (or who played nothing) score 0
// rather than dividing by zero.
func matchWinPercentage(c *counter, cfg *model.StandardScoring) float64 {
	if c.rounds == c.byes || cfg.MatchWinPoints == 0 {
		return 0
	}
	return c.matchPoints / (cfg.MatchWinPoints * float64(c.rounds))
}

// gameWinPercentage is game points over the maximum attainable from played
// games, floored at 0 the same way
func gameWinPercentage(c *counter, cfg *model.StandardScoring) float64 {
	if c.games == 0 || cfg.GameWinPoints == 0 {
		return 0
	}
	return c.gamePoints / (cfg.GameWinPoints * float64(c.games))
}

// Standings ranks every player, best first. The order is total: included
// sub-scores compared in a fixed sequence (match points, game points, MWP,
// GWP, opponents' MWP, opponents' GWP), then player id, so two runs over the
// same state produce identical output.
func (s *Service) Standings(t *model.Tournament) model.Standings {
	scores := s.Score(t)
	cfg := t.Scoring.Standard

	entries := make([]model.StandingsEntry, 0, len(scores))
	for id, score := range scores {
		entries = append(entries, model.StandingsEntry{Player: id, Score: score})
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		for _, key := range comparisonKeys(cfg) {
			av, bv := key(a.Score), key(b.Score)
			if av != bv {
				return av > bv
			}
		}
		return a.Player < b.Player
	})
	return model.Standings{Entries: entries}
}

func comparisonKeys(cfg *model.StandardScoring) []func(model.Score) float64 {
	var keys []func(model.Score) float64
	if cfg.IncludeMatchPoints {
		keys = append(keys, func(s model.Score) float64 { return s.MatchPoints })
	}
	if cfg.IncludeGamePoints {
		keys = append(keys, func(s model.Score) float64 { return s.GamePoints })
	}
	if cfg.IncludeMwp {
		keys = append(keys, func(s model.Score) float64 { return s.Mwp })
	}
	if cfg.IncludeGwp {
		keys = append(keys, func(s model.Score) float64 { return s.Gwp })
	}
	if cfg.IncludeOppMwp {
		keys = append(keys, func(s model.Score) float64 { return s.OppMwp })
	}
	if cfg.IncludeOppGwp {
		keys = append(keys, func(s model.Score) float64 { return s.OppGwp })
	}
	return keys
}

// Interface for dependency injection
type ServiceInterface interface {
	Score(t *model.Tournament) map[model.PlayerID]model.Score
	Standings(t *model.Tournament) model.Standings
}

var _ ServiceInterface = (*Service)(nil)

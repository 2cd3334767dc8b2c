package response

import (
	"sort"
	"time"

	"github.com/arbiter-gg/arbiter/internal/model"
	"github.com/arbiter-gg/arbiter/internal/settings"
)

// Pairing represents a tournament's pairing configuration
type Pairing struct {
	Kind       string   `json:"kind"`
	MatchSize  int      `json:"match_size"`
	DoCheckIns bool     `json:"do_check_ins,omitempty"`
	Queue      []string `json:"queue,omitempty"`
}

// PairingFromModel converts model.PairingSystem
func PairingFromModel(p *model.PairingSystem) Pairing {
	var queue []string
	for _, id := range p.Queue {
		queue = append(queue, string(id))
	}
	return Pairing{
		Kind:       string(p.Kind),
		MatchSize:  p.MatchSize,
		DoCheckIns: p.DoCheckIns,
		Queue:      queue,
	}
}

// Tournament represents a tournament in API responses
type Tournament struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Format          string  `json:"format"`
	Status          string  `json:"status"`
	GameSize        int     `json:"game_size"`
	MinDeckCount    int     `json:"min_deck_count"`
	MaxDeckCount    int     `json:"max_deck_count"`
	RegOpen         bool    `json:"reg_open"`
	RequireCheckIn  bool    `json:"require_check_in"`
	RequireDeckReg  bool    `json:"require_deck_reg"`
	UseTableNumbers bool    `json:"use_table_numbers"`
	Pairing         Pairing `json:"pairing"`
	PlayerCount     int     `json:"player_count"`
	ActiveRounds    int     `json:"active_rounds"`
}

// TournamentFromModel converts model.Tournament
func TournamentFromModel(t *model.Tournament) Tournament {
	return Tournament{
		ID:              string(t.ID),
		Name:            t.Name,
		Format:          t.Format,
		Status:          string(t.Status),
		GameSize:        t.GameSize,
		MinDeckCount:    t.MinDeckCount,
		MaxDeckCount:    t.MaxDeckCount,
		RegOpen:         t.RegOpen,
		RequireCheckIn:  t.RequireCheckIn,
		RequireDeckReg:  t.RequireDeckReg,
		UseTableNumbers: t.UseTableNumbers,
		Pairing:         PairingFromModel(t.Pairing),
		PlayerCount:     t.Players.Len(),
		ActiveRounds:    t.Rounds.ActiveCount(),
	}
}

// TournamentList holds the ids of stored tournaments
type TournamentList struct {
	Tournaments []string `json:"tournaments"`
}

// TournamentListFromIDs converts a list of tournament ids
func TournamentListFromIDs(ids []model.TournamentID) TournamentList {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return TournamentList{Tournaments: out}
}

// Player represents a player in API responses
type Player struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	GamerTag string   `json:"gamer_tag,omitempty"`
	Status   string   `json:"status"`
	Decks    []string `json:"decks"`
}

// PlayerFromModel converts model.Player. Decks are listed in registration
// order.
func PlayerFromModel(p *model.Player) Player {
	decks := make([]string, len(p.DeckOrder))
	copy(decks, p.DeckOrder)
	return Player{
		ID:       string(p.ID),
		Name:     p.Name,
		GamerTag: p.GamerTag,
		Status:   string(p.Status),
		Decks:    decks,
	}
}

// Round represents a round in API responses
type Round struct {
	ID          string         `json:"id"`
	Number      uint64         `json:"number"`
	TableNumber uint64         `json:"table_number"`
	Players     []string       `json:"players"`
	Status      string         `json:"status"`
	GameWins    map[string]int `json:"game_wins"`
	GameDraws   int            `json:"game_draws"`
	Winner      *string        `json:"winner"`
	IsBye       bool           `json:"is_bye,omitempty"`
	StartedAt   time.Time      `json:"started_at"`
	TimeLeft    int            `json:"time_left_seconds"`
}

// RoundFromModel converts model.Round. TimeLeft is computed against the
// given instant.
func RoundFromModel(r *model.Round, now time.Time) Round {
	players := make([]string, len(r.Players))
	for i, p := range r.Players {
		players[i] = string(p)
	}
	wins := make(map[string]int, len(r.GameWins))
	for pid, w := range r.GameWins {
		wins[string(pid)] = w
	}
	var winner *string
	if r.Winner != "" {
		w := string(r.Winner)
		winner = &w
	}
	return Round{
		ID:          string(r.ID),
		Number:      r.Number,
		TableNumber: r.TableNumber,
		Players:     players,
		Status:      string(r.Status),
		GameWins:    wins,
		GameDraws:   r.GameDraws,
		Winner:      winner,
		IsBye:       r.IsBye,
		StartedAt:   r.StartedAt,
		TimeLeft:    int(r.TimeLeft(now).Seconds()),
	}
}

// Score represents a player's accumulated score
type Score struct {
	MatchPoints float64 `json:"match_points"`
	GamePoints  float64 `json:"game_points"`
	Mwp         float64 `json:"mwp"`
	Gwp         float64 `json:"gwp"`
	OppMwp      float64 `json:"opp_mwp"`
	OppGwp      float64 `json:"opp_gwp"`
}

// StandingsEntry represents one ranked standings row. Rank starts at 1.
type StandingsEntry struct {
	Rank   int    `json:"rank"`
	Player string `json:"player"`
	Score  Score  `json:"score"`
}

// Standings represents the ranked standings, best first
type Standings struct {
	Entries []StandingsEntry `json:"entries"`
}

// StandingsFromModel converts model.Standings
func StandingsFromModel(s model.Standings) Standings {
	entries := make([]StandingsEntry, len(s.Entries))
	for i, e := range s.Entries {
		entries[i] = StandingsEntry{
			Rank:   i + 1,
			Player: string(e.Player),
			Score: Score{
				MatchPoints: e.Score.MatchPoints,
				GamePoints:  e.Score.GamePoints,
				Mwp:         e.Score.Mwp,
				Gwp:         e.Score.Gwp,
				OppMwp:      e.Score.OppMwp,
				OppGwp:      e.Score.OppGwp,
			},
		}
	}
	return Standings{Entries: entries}
}

// Effect reports what an applied operation touched
type Effect struct {
	Player      string   `json:"player,omitempty"`
	Round       string   `json:"round,omitempty"`
	Rounds      []string `json:"rounds,omitempty"`
	RoundStatus string   `json:"round_status,omitempty"`
}

// EffectFromModel converts model.Effect
func EffectFromModel(e *model.Effect) Effect {
	var rounds []string
	for _, id := range e.Rounds {
		rounds = append(rounds, string(id))
	}
	return Effect{
		Player:      string(e.Player),
		Round:       string(e.Round),
		Rounds:      rounds,
		RoundStatus: string(e.RoundStatus),
	}
}

// SettingsResult reports how a settings batch was partitioned
type SettingsResult struct {
	Accepted map[string]string `json:"accepted"`
	Rejected map[string]string `json:"rejected"`
	Errored  map[string]string `json:"errored"`
}

// SettingsResultFromModel converts settings.Result
func SettingsResultFromModel(r settings.Result) SettingsResult {
	return SettingsResult{
		Accepted: r.Accepted,
		Rejected: r.Rejected,
		Errored:  r.Errored,
	}
}

// PlayerList represents a tournament's players sorted by name
type PlayerList struct {
	Players []Player `json:"players"`
}

// PlayerListFromModel converts a player registry
func PlayerListFromModel(r *model.PlayerRegistry) PlayerList {
	players := make([]Player, 0, len(r.Players))
	for _, p := range r.Players {
		players = append(players, PlayerFromModel(p))
	}
	sort.Slice(players, func(i, j int) bool { return players[i].Name < players[j].Name })
	return PlayerList{Players: players}
}

// RoundList represents a tournament's rounds sorted by match number
type RoundList struct {
	Rounds []Round `json:"rounds"`
}

// RoundListFromModel converts a round registry
func RoundListFromModel(r *model.RoundRegistry, now time.Time) RoundList {
	rounds := make([]Round, 0, len(r.Rounds))
	for _, round := range r.Rounds {
		rounds = append(rounds, RoundFromModel(round, now))
	}
	sort.Slice(rounds, func(i, j int) bool { return rounds[i].Number < rounds[j].Number })
	return RoundList{Rounds: rounds}
}

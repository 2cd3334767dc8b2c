package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Tournament:
		o.printTournament(v)
	case TournamentList:
		o.printTournamentList(v)
	case Player:
		o.printPlayer(v)
	case PlayerList:
		o.printPlayerList(v)
	case Round:
		o.printRound(v)
	case RoundList:
		o.printRoundList(v)
	case Standings:
		o.printStandings(v)
	case Effect:
		o.printEffect(v)
	case SettingsResult:
		o.printSettingsResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Pairing response type (matches API)
type Pairing struct {
	Kind       string   `json:"kind"`
	MatchSize  int      `json:"match_size"`
	DoCheckIns bool     `json:"do_check_ins,omitempty"`
	Queue      []string `json:"queue,omitempty"`
}

// Tournament response type
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

// TournamentList response type
type TournamentList struct {
	Tournaments []string `json:"tournaments"`
}

// Player response type
type Player struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	GamerTag string   `json:"gamer_tag,omitempty"`
	Status   string   `json:"status"`
	Decks    []string `json:"decks"`
}

// PlayerList response type
type PlayerList struct {
	Players []Player `json:"players"`
}

// Round response type
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

// RoundList response type
type RoundList struct {
	Rounds []Round `json:"rounds"`
}

// Score response type
type Score struct {
	MatchPoints float64 `json:"match_points"`
	GamePoints  float64 `json:"game_points"`
	Mwp         float64 `json:"mwp"`
	Gwp         float64 `json:"gwp"`
	OppMwp      float64 `json:"opp_mwp"`
	OppGwp      float64 `json:"opp_gwp"`
}

// StandingsEntry response type
type StandingsEntry struct {
	Rank   int    `json:"rank"`
	Player string `json:"player"`
	Score  Score  `json:"score"`
}

// Standings response type
type Standings struct {
	Entries []StandingsEntry `json:"entries"`
}

// Effect response type
type Effect struct {
	Player      string   `json:"player,omitempty"`
	Round       string   `json:"round,omitempty"`
	Rounds      []string `json:"rounds,omitempty"`
	RoundStatus string   `json:"round_status,omitempty"`
}

// SettingsResult response type
type SettingsResult struct {
	Accepted map[string]string `json:"accepted"`
	Rejected map[string]string `json:"rejected"`
	Errored  map[string]string `json:"errored"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printTournament(t Tournament) {
	fmt.Printf("Tournament: %s (%s)\n", t.Name, t.ID)
	fmt.Printf("Format: %s\n", t.Format)
	fmt.Printf("Status: %s\n", t.Status)
	fmt.Printf("Pairing: %s (match size %d)\n", t.Pairing.Kind, t.Pairing.MatchSize)
	fmt.Printf("Players: %d\n", t.PlayerCount)
	fmt.Printf("Active Rounds: %d\n", t.ActiveRounds)
	regStr := "closed"
	if t.RegOpen {
		regStr = "open"
	}
	fmt.Printf("Registration: %s\n", regStr)
	fmt.Printf("Decks: %d-%d per player\n", t.MinDeckCount, t.MaxDeckCount)
	if len(t.Pairing.Queue) > 0 {
		fmt.Printf("Queue: %s\n", strings.Join(t.Pairing.Queue, ", "))
	}
}

func (o *Output) printTournamentList(l TournamentList) {
	fmt.Printf("Tournaments (%d):\n", len(l.Tournaments))
	for _, id := range l.Tournaments {
		fmt.Printf("  - %s\n", id)
	}
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s (%s)\n", p.Name, p.ID)
	if p.GamerTag != "" {
		fmt.Printf("Gamer Tag: %s\n", p.GamerTag)
	}
	fmt.Printf("Status: %s\n", p.Status)
	if len(p.Decks) > 0 {
		fmt.Printf("Decks: %s\n", strings.Join(p.Decks, ", "))
	}
}

func (o *Output) printPlayerList(l PlayerList) {
	fmt.Printf("Players (%d):\n", len(l.Players))
	for _, p := range l.Players {
		tagStr := ""
		if p.GamerTag != "" {
			tagStr = fmt.Sprintf(" [%s]", p.GamerTag)
		}
		fmt.Printf("  - %s%s - %s\n", p.Name, tagStr, p.Status)
	}
}

func (o *Output) printRound(r Round) {
	fmt.Printf("Round %d (%s)\n", r.Number, r.ID)
	fmt.Printf("Table: %d\n", r.TableNumber)
	fmt.Printf("Status: %s\n", r.Status)
	fmt.Printf("Players: %s\n", strings.Join(r.Players, ", "))
	if r.IsBye {
		fmt.Println("Bye round")
	}
	for pid, wins := range r.GameWins {
		fmt.Printf("  %s: %d game wins\n", pid, wins)
	}
	if r.GameDraws > 0 {
		fmt.Printf("  Drawn games: %d\n", r.GameDraws)
	}
	if r.Winner != nil {
		fmt.Printf("Winner: %s\n", *r.Winner)
	}
	if r.Status == "open" || r.Status == "uncertified" {
		fmt.Printf("Time Left: %dm%02ds\n", r.TimeLeft/60, r.TimeLeft%60)
	}
}

func (o *Output) printRoundList(l RoundList) {
	fmt.Printf("Rounds (%d):\n", len(l.Rounds))
	for _, r := range l.Rounds {
		winner := ""
		if r.Winner != nil {
			winner = fmt.Sprintf(" winner=%s", *r.Winner)
		}
		fmt.Printf("  %d. table %d [%s]%s - %s\n", r.Number, r.TableNumber, r.Status, winner, strings.Join(r.Players, ", "))
	}
}

func (o *Output) printStandings(s Standings) {
	fmt.Printf("Standings (%d):\n", len(s.Entries))
	for _, e := range s.Entries {
		fmt.Printf("  %d. %s - %.0f match pts, %.0f game pts, mwp %.3f, gwp %.3f\n",
			e.Rank, e.Player, e.Score.MatchPoints, e.Score.GamePoints, e.Score.Mwp, e.Score.Gwp)
	}
}

func (o *Output) printEffect(e Effect) {
	if e.Player != "" {
		fmt.Printf("Player: %s\n", e.Player)
	}
	if e.Round != "" {
		fmt.Printf("Round: %s\n", e.Round)
	}
	if len(e.Rounds) > 0 {
		fmt.Printf("Rounds: %s\n", strings.Join(e.Rounds, ", "))
	}
	if e.RoundStatus != "" {
		fmt.Printf("Round Status: %s\n", e.RoundStatus)
	}
}

func (o *Output) printSettingsResult(r SettingsResult) {
	printGroup := func(label string, m map[string]string) {
		if len(m) == 0 {
			return
		}
		fmt.Printf("%s:\n", label)
		for k, v := range m {
			fmt.Printf("  %s = %s\n", k, v)
		}
	}
	printGroup("Accepted", r.Accepted)
	printGroup("Rejected", r.Rejected)
	printGroup("Errored", r.Errored)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}

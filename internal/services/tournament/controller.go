// Package tournament implements the operation state machine over the
// tournament aggregate. Every mutation enters through Apply, which checks the
// operation's guards against the loaded aggregate before touching anything
// and persists only on success, so a failed operation is never observable.
package tournament

import (
	"context"
	"errors"
	"log/slog"

	"github.com/arbiter-gg/arbiter/internal/dependencies/clock"
	"github.com/arbiter-gg/arbiter/internal/model"
	"github.com/arbiter-gg/arbiter/internal/services/pairing"
	"github.com/arbiter-gg/arbiter/internal/services/scoring"
	"github.com/arbiter-gg/arbiter/internal/settings"
	"github.com/arbiter-gg/arbiter/internal/storage"
)

// Construction errors, disjoint from the operation error taxonomy
var (
	ErrBadName   = errors.New("tournament name must not be empty")
	ErrBadFormat = errors.New("tournament format must not be empty")
)

// Controller manages the tournament state machine
type Controller struct {
	storage        storage.Storage
	pairingService pairing.ServiceInterface
	scoringService scoring.ServiceInterface
	clock          clock.Clock
	logger         *slog.Logger
}

// NewController creates a new tournament controller
func NewController(
	storage storage.Storage,
	pairingService pairing.ServiceInterface,
	scoringService scoring.ServiceInterface,
	clock clock.Clock,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:        storage,
		pairingService: pairingService,
		scoringService: scoringService,
		clock:          clock,
		logger:         logger,
	}
}

// CreateFromPreset creates and persists a new tournament
func (c *Controller) CreateFromPreset(ctx context.Context, preset model.TournamentPreset, name, format string) (*model.Tournament, error) {
	if name == "" {
		return nil, ErrBadName
	}
	if format == "" {
		return nil, ErrBadFormat
	}

	t := model.NewTournament(name, format, preset)
	if err := c.storage.SaveTournament(ctx, t); err != nil {
		c.logger.Error("failed to save tournament",
			slog.String("tournament_id", string(t.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("tournament created",
		slog.String("tournament_id", string(t.ID)),
		slog.String("name", name),
		slog.String("preset", string(preset)),
	)
	return t, nil
}

// GetTournament retrieves a tournament by id
func (c *Controller) GetTournament(ctx context.Context, id model.TournamentID) (*model.Tournament, error) {
	return c.storage.GetTournament(ctx, id)
}

// ListTournaments returns the ids of every stored tournament
func (c *Controller) ListTournaments(ctx context.Context) ([]model.TournamentID, error) {
	return c.storage.ListTournaments(ctx)
}

// Apply runs one operation against the tournament. The aggregate is loaded
// fresh, mutated in memory, and saved back only if every guard passed; on any
// error the stored state is untouched.
func (c *Controller) Apply(ctx context.Context, id model.TournamentID, op model.Operation) (*model.Effect, error) {
	t, err := c.storage.GetTournament(ctx, id)
	if err != nil {
		return nil, err
	}

	effect, err := c.applyOp(t, op)
	if err != nil {
		return nil, err
	}

	if err := c.storage.SaveTournament(ctx, t); err != nil {
		c.logger.Error("failed to save tournament",
			slog.String("tournament_id", string(id)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	return effect, nil
}

// applyOp dispatches one operation. Status guards come first: dead
// tournaments accept nothing, frozen tournaments accept only thaw, end, and
// cancel.
func (c *Controller) applyOp(t *model.Tournament, op model.Operation) (*model.Effect, error) {
	if t.IsDead() {
		return nil, model.ErrIncorrectStatus
	}
	if t.IsFrozen() {
		switch op.(type) {
		case model.ThawOp, model.EndOp, model.CancelOp:
		default:
			return nil, model.ErrIncorrectStatus
		}
	}

	switch o := op.(type) {
	case model.StartOp:
		return c.start(t)
	case model.FreezeOp:
		return c.freeze(t)
	case model.ThawOp:
		return c.thaw(t)
	case model.EndOp:
		return c.end(t)
	case model.CancelOp:
		return c.cancel(t)
	case model.UpdateRegOp:
		t.RegOpen = o.Open
		return &model.Effect{}, nil
	case model.RegisterPlayerOp:
		return c.registerPlayer(t, o)
	case model.CheckInOp:
		return c.checkIn(t, o)
	case model.DropPlayerOp:
		return c.dropPlayer(t, o.Player)
	case model.AdminDropPlayerOp:
		return c.dropPlayer(t, o.Player)
	case model.AddDeckOp:
		return c.addDeck(t, o)
	case model.RemoveDeckOp:
		return c.removeDeck(t, o)
	case model.SetGamerTagOp:
		return c.setGamerTag(t, o)
	case model.ReadyPlayerOp:
		return c.readyPlayer(t, o)
	case model.UnReadyPlayerOp:
		return c.unReadyPlayer(t, o)
	case model.UpdateSettingOp:
		return c.updateSetting(t, o.Setting)
	case model.RecordResultOp:
		return c.recordResult(t, o)
	case model.ConfirmResultOp:
		return c.confirmResult(t, o)
	case model.GiveByeOp:
		return c.giveBye(t, o)
	case model.CreateRoundOp:
		return c.createRound(t, o)
	case model.PairRoundOp:
		return c.pairRound(t)
	case model.RemoveRoundOp:
		return c.removeRound(t, o)
	case model.TimeExtensionOp:
		return c.timeExtension(t, o)
	case model.CutOp:
		return c.cut(t, o)
	case model.PruneDecksOp:
		return c.pruneDecks(t)
	case model.PrunePlayersOp:
		return c.prunePlayers(t)
	}
	return nil, model.ErrIncorrectStatus
}

// Status transitions

func (c *Controller) start(t *model.Tournament) (*model.Effect, error) {
	if !t.IsPlanned() {
		return nil, model.ErrIncorrectStatus
	}
	t.Status = model.TournamentStatusStarted
	c.logger.Info("tournament started", slog.String("tournament_id", string(t.ID)))
	return &model.Effect{}, nil
}

func (c *Controller) freeze(t *model.Tournament) (*model.Effect, error) {
	if t.Status != model.TournamentStatusStarted {
		return nil, model.ErrIncorrectStatus
	}
	t.Status = model.TournamentStatusFrozen
	return &model.Effect{}, nil
}

func (c *Controller) thaw(t *model.Tournament) (*model.Effect, error) {
	if !t.IsFrozen() {
		return nil, model.ErrIncorrectStatus
	}
	t.Status = model.TournamentStatusStarted
	return &model.Effect{}, nil
}

func (c *Controller) end(t *model.Tournament) (*model.Effect, error) {
	if t.Status != model.TournamentStatusStarted && !t.IsFrozen() {
		return nil, model.ErrIncorrectStatus
	}
	if t.Rounds.ActiveCount() > 0 {
		return nil, model.ErrActiveMatches
	}
	t.Status = model.TournamentStatusEnded
	c.logger.Info("tournament ended", slog.String("tournament_id", string(t.ID)))
	return &model.Effect{}, nil
}

func (c *Controller) cancel(t *model.Tournament) (*model.Effect, error) {
	// Cancelling is allowed from any live status; Ended is terminal and is
	// rejected by the dead-tournament guard before we get here
	t.Status = model.TournamentStatusCancelled
	c.logger.Info("tournament cancelled", slog.String("tournament_id", string(t.ID)))
	return &model.Effect{}, nil
}

// Player operations

func (c *Controller) registerPlayer(t *model.Tournament, op model.RegisterPlayerOp) (*model.Effect, error) {
	if !t.RegOpen {
		return nil, model.ErrRegClosed
	}
	id, err := t.Players.Add(op.Name)
	if err != nil {
		return nil, err
	}
	return &model.Effect{Player: id}, nil
}

func (c *Controller) checkIn(t *model.Tournament, op model.CheckInOp) (*model.Effect, error) {
	id, err := t.Players.Resolve(op.Player)
	if err != nil {
		return nil, err
	}
	t.Players.CheckIn(id)
	return &model.Effect{Player: id}, nil
}

func (c *Controller) dropPlayer(t *model.Tournament, ident model.PlayerIdentifier) (*model.Effect, error) {
	id, err := t.Players.Resolve(ident)
	if err != nil {
		return nil, err
	}
	if err := t.Players.Drop(model.PlayerByID(id)); err != nil {
		return nil, err
	}
	t.Pairing.UnreadyPlayer(id)
	return &model.Effect{Player: id}, nil
}

func (c *Controller) addDeck(t *model.Tournament, op model.AddDeckOp) (*model.Effect, error) {
	player, err := t.Players.Get(op.Player)
	if err != nil {
		return nil, err
	}
	if _, exists := player.Decks[op.Name]; !exists && len(player.Decks) >= t.MaxDeckCount {
		return nil, model.ErrInvalidDeckCount
	}
	player.AddDeck(op.Name, op.Deck)
	return &model.Effect{Player: player.ID}, nil
}

func (c *Controller) removeDeck(t *model.Tournament, op model.RemoveDeckOp) (*model.Effect, error) {
	player, err := t.Players.Get(op.Player)
	if err != nil {
		return nil, err
	}
	if err := player.RemoveDeck(op.Name); err != nil {
		return nil, err
	}
	return &model.Effect{Player: player.ID}, nil
}

func (c *Controller) setGamerTag(t *model.Tournament, op model.SetGamerTagOp) (*model.Effect, error) {
	player, err := t.Players.Get(op.Player)
	if err != nil {
		return nil, err
	}
	player.GamerTag = op.Tag
	return &model.Effect{Player: player.ID}, nil
}

func (c *Controller) readyPlayer(t *model.Tournament, op model.ReadyPlayerOp) (*model.Effect, error) {
	id, err := t.Players.Resolve(op.Player)
	if err != nil {
		return nil, err
	}
	t.Pairing.ReadyPlayer(id)

	// Fluid tournaments pair continuously: a fresh ready player may complete
	// the next group straight away
	if t.Pairing.Kind == model.PairingFluid && t.Status == model.TournamentStatusStarted {
		rounds, err := c.pairFluidRounds(t)
		if err != nil {
			return nil, err
		}
		return &model.Effect{Player: id, Rounds: rounds}, nil
	}
	return &model.Effect{Player: id}, nil
}

func (c *Controller) unReadyPlayer(t *model.Tournament, op model.UnReadyPlayerOp) (*model.Effect, error) {
	id, err := t.Players.Resolve(op.Player)
	if err != nil {
		return nil, err
	}
	t.Pairing.UnreadyPlayer(id)
	return &model.Effect{Player: id}, nil
}

// Settings

func (c *Controller) updateSetting(t *model.Tournament, setting model.Setting) (*model.Effect, error) {
	switch s := setting.(type) {
	case model.PairingSetting:
		if err := t.Pairing.ApplySetting(s); err != nil {
			return nil, err
		}
		// Match size settings also define how many players each round seats
		switch size := s.(type) {
		case model.SwissMatchSizeSetting:
			t.GameSize = int(size)
		case model.FluidMatchSizeSetting:
			t.GameSize = int(size)
		}
	case model.ScoringSetting:
		if err := t.Scoring.ApplySetting(s); err != nil {
			return nil, err
		}
	case model.FormatSetting:
		t.Format = string(s)
	case model.StartingTableNumberSetting:
		t.Rounds.StartingTable = uint64(s)
	case model.UseTableNumbersSetting:
		t.UseTableNumbers = bool(s)
	case model.MinDeckCountSetting:
		if int(s) > t.MaxDeckCount {
			return nil, model.ErrInvalidDeckCount
		}
		t.MinDeckCount = int(s)
	case model.MaxDeckCountSetting:
		if int(s) < t.MinDeckCount {
			return nil, model.ErrInvalidDeckCount
		}
		t.MaxDeckCount = int(s)
	case model.RequireCheckInSetting:
		t.RequireCheckIn = bool(s)
	case model.RequireDeckRegSetting:
		t.RequireDeckReg = bool(s)
	}
	return &model.Effect{}, nil
}

// Round operations

func (c *Controller) recordResult(t *model.Tournament, op model.RecordResultOp) (*model.Effect, error) {
	if t.Status != model.TournamentStatusStarted {
		return nil, model.ErrIncorrectStatus
	}
	round, err := t.Rounds.Get(op.Round)
	if err != nil {
		return nil, err
	}
	if !round.IsActive() {
		return nil, model.ErrNoActiveRound
	}
	if err := round.RecordResult(op.Result); err != nil {
		return nil, err
	}
	return &model.Effect{Round: round.ID}, nil
}

func (c *Controller) confirmResult(t *model.Tournament, op model.ConfirmResultOp) (*model.Effect, error) {
	if t.Status != model.TournamentStatusStarted {
		return nil, model.ErrIncorrectStatus
	}
	id, err := t.Players.Resolve(op.Player)
	if err != nil {
		return nil, err
	}
	round, err := t.Rounds.PlayerActiveRound(id)
	if err != nil {
		return nil, err
	}
	status, err := round.Confirm(id)
	if err != nil {
		return nil, err
	}
	return &model.Effect{Round: round.ID, RoundStatus: status}, nil
}

func (c *Controller) giveBye(t *model.Tournament, op model.GiveByeOp) (*model.Effect, error) {
	if t.Status != model.TournamentStatusStarted {
		return nil, model.ErrIncorrectStatus
	}
	id, err := t.Players.Resolve(op.Player)
	if err != nil {
		return nil, err
	}
	if t.Rounds.PlayerInActiveRound(id) {
		return nil, model.ErrInvalidBye
	}
	round, err := c.newByeRound(t, id)
	if err != nil {
		return nil, err
	}
	return &model.Effect{Player: id, Round: round.ID}, nil
}

func (c *Controller) createRound(t *model.Tournament, op model.CreateRoundOp) (*model.Effect, error) {
	if t.Status != model.TournamentStatusStarted {
		return nil, model.ErrIncorrectStatus
	}
	ids := make([]model.PlayerID, 0, len(op.Players))
	seen := make(map[model.PlayerID]bool, len(op.Players))
	for _, ident := range op.Players {
		id, err := t.Players.Resolve(ident)
		if err != nil {
			return nil, err
		}
		if seen[id] {
			return nil, model.ErrPlayerLookup
		}
		seen[id] = true
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, model.ErrPlayerLookup
	}
	round, err := c.newRound(t, ids)
	if err != nil {
		return nil, err
	}
	return &model.Effect{Round: round.ID}, nil
}

func (c *Controller) pairRound(t *model.Tournament) (*model.Effect, error) {
	if t.Status != model.TournamentStatusStarted {
		return nil, model.ErrIncorrectStatus
	}

	if t.Pairing.Kind == model.PairingFluid {
		rounds, err := c.pairFluidRounds(t)
		if err != nil {
			return nil, err
		}
		return &model.Effect{Rounds: rounds}, nil
	}

	// Swiss rounds are synchronized: everything outstanding must resolve first
	if t.Rounds.ActiveCount() > 0 {
		return nil, model.ErrActiveMatches
	}
	if t.Pairing.DoCheckIns {
		for id, player := range t.Players.Players {
			if player.CanPlay() && !t.Pairing.Ready[id] {
				return nil, model.ErrPlayerNotCheckedIn
			}
		}
	}
	if len(c.pairingService.SwissPool(t)) < t.Pairing.MatchSize {
		return nil, model.ErrNoActiveRound
	}

	standings := c.scoringService.Standings(t)
	pairings, err := c.pairingService.Pair(t, standings)
	if err != nil {
		return nil, err
	}

	var rounds []model.RoundID
	for _, group := range pairings.Groups {
		round, err := c.newRound(t, group)
		if err != nil {
			return nil, err
		}
		rounds = append(rounds, round.ID)
	}
	for _, bye := range pairings.Byes {
		round, err := c.newByeRound(t, bye)
		if err != nil {
			return nil, err
		}
		rounds = append(rounds, round.ID)
	}

	// Check-ins are per round; the next one starts from scratch
	t.Pairing.Ready = make(map[model.PlayerID]bool)

	c.logger.Info("round paired",
		slog.String("tournament_id", string(t.ID)),
		slog.Int("groups", len(pairings.Groups)),
		slog.Int("byes", len(pairings.Byes)),
	)
	return &model.Effect{Rounds: rounds}, nil
}

// pairFluidRounds drains whatever full groups the queue currently holds
func (c *Controller) pairFluidRounds(t *model.Tournament) ([]model.RoundID, error) {
	pairings, err := c.pairingService.Pair(t, model.Standings{})
	if err != nil {
		return nil, err
	}
	var rounds []model.RoundID
	var seated []model.PlayerID
	for _, group := range pairings.Groups {
		round, err := c.newRound(t, group)
		if err != nil {
			return nil, err
		}
		rounds = append(rounds, round.ID)
		seated = append(seated, group...)
	}
	t.Pairing.Dequeue(seated)
	return rounds, nil
}

func (c *Controller) removeRound(t *model.Tournament, op model.RemoveRoundOp) (*model.Effect, error) {
	round, err := t.Rounds.Get(op.Round)
	if err != nil {
		return nil, err
	}
	if err := t.Rounds.Kill(op.Round); err != nil {
		return nil, err
	}
	return &model.Effect{Round: round.ID}, nil
}

func (c *Controller) timeExtension(t *model.Tournament, op model.TimeExtensionOp) (*model.Effect, error) {
	round, err := t.Rounds.Get(op.Round)
	if err != nil {
		return nil, err
	}
	if !round.IsActive() {
		return nil, model.ErrNoActiveRound
	}
	round.Extension += op.Extension
	return &model.Effect{Round: round.ID}, nil
}

// Administration

func (c *Controller) cut(t *model.Tournament, op model.CutOp) (*model.Effect, error) {
	if t.Status != model.TournamentStatusStarted {
		return nil, model.ErrIncorrectStatus
	}
	if t.Rounds.ActiveCount() > 0 {
		return nil, model.ErrActiveMatches
	}
	standings := c.scoringService.Standings(t)
	for i, entry := range standings.Entries {
		if i < op.Size {
			continue
		}
		player, ok := t.Players.Players[entry.Player]
		if !ok || !player.CanPlay() {
			continue
		}
		player.Status = model.PlayerStatusDropped
		t.Pairing.UnreadyPlayer(entry.Player)
	}
	return &model.Effect{}, nil
}

func (c *Controller) pruneDecks(t *model.Tournament) (*model.Effect, error) {
	for _, player := range t.Players.Players {
		for len(player.DeckOrder) > t.MaxDeckCount {
			// Most recently registered decks go first
			last := player.DeckOrder[len(player.DeckOrder)-1]
			if err := player.RemoveDeck(last); err != nil {
				return nil, err
			}
		}
	}
	return &model.Effect{}, nil
}

func (c *Controller) prunePlayers(t *model.Tournament) (*model.Effect, error) {
	for id, player := range t.Players.Players {
		if !player.CanPlay() {
			continue
		}
		if t.RequireDeckReg && len(player.Decks) < t.MinDeckCount {
			player.Status = model.PlayerStatusDropped
			t.Pairing.UnreadyPlayer(id)
			continue
		}
		if t.RequireCheckIn && !t.Players.IsCheckedIn(id) {
			player.Status = model.PlayerStatusDropped
			t.Pairing.UnreadyPlayer(id)
		}
	}
	return &model.Effect{}, nil
}

// Round construction helpers

func (c *Controller) newRound(t *model.Tournament, players []model.PlayerID) (*model.Round, error) {
	round := t.Rounds.Create(c.clock.Now())
	for _, id := range players {
		if err := t.Rounds.AddPlayer(model.RoundByID(round.ID), id); err != nil {
			return nil, err
		}
	}
	return round, nil
}

func (c *Controller) newByeRound(t *model.Tournament, player model.PlayerID) (*model.Round, error) {
	round := t.Rounds.Create(c.clock.Now())
	if err := t.Rounds.AddPlayer(model.RoundByID(round.ID), player); err != nil {
		return nil, err
	}
	if err := round.RecordBye(); err != nil {
		return nil, err
	}
	return round, nil
}

// ApplySettings applies a raw settings batch, partitioning it into accepted,
// rejected, and errored keys. Accepted settings are applied and persisted;
// the others leave the tournament untouched.
func (c *Controller) ApplySettings(ctx context.Context, id model.TournamentID, batch settings.Settings) (settings.Result, error) {
	t, err := c.storage.GetTournament(ctx, id)
	if err != nil {
		return settings.Result{}, err
	}
	if t.IsDead() || t.IsFrozen() {
		return settings.Result{}, model.ErrIncorrectStatus
	}

	result := settings.ApplyAll(batch, func(key, value string) error {
		s, err := settings.Parse(key, value)
		if err != nil {
			return err
		}
		_, err = c.updateSetting(t, s)
		return err
	})

	if len(result.Accepted) > 0 {
		if err := c.storage.SaveTournament(ctx, t); err != nil {
			return settings.Result{}, err
		}
	}
	return result, nil
}

// Queries

// GetPlayer resolves a player identifier within a tournament
func (c *Controller) GetPlayer(ctx context.Context, id model.TournamentID, ident model.PlayerIdentifier) (*model.Player, error) {
	t, err := c.storage.GetTournament(ctx, id)
	if err != nil {
		return nil, err
	}
	return t.Players.Get(ident)
}

// GetRound resolves a round identifier within a tournament
func (c *Controller) GetRound(ctx context.Context, id model.TournamentID, ident model.RoundIdentifier) (*model.Round, error) {
	t, err := c.storage.GetTournament(ctx, id)
	if err != nil {
		return nil, err
	}
	return t.Rounds.Get(ident)
}

// PlayerActiveRound returns the player's oldest round still in progress
func (c *Controller) PlayerActiveRound(ctx context.Context, id model.TournamentID, ident model.PlayerIdentifier) (*model.Round, error) {
	t, err := c.storage.GetTournament(ctx, id)
	if err != nil {
		return nil, err
	}
	playerID, err := t.Players.Resolve(ident)
	if err != nil {
		return nil, err
	}
	return t.Rounds.PlayerActiveRound(playerID)
}

// Standings computes the current ranked standings
func (c *Controller) Standings(ctx context.Context, id model.TournamentID) (model.Standings, error) {
	t, err := c.storage.GetTournament(ctx, id)
	if err != nil {
		return model.Standings{}, err
	}
	return c.scoringService.Standings(t), nil
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateFromPreset(ctx context.Context, preset model.TournamentPreset, name, format string) (*model.Tournament, error)
	GetTournament(ctx context.Context, id model.TournamentID) (*model.Tournament, error)
	ListTournaments(ctx context.Context) ([]model.TournamentID, error)
	Apply(ctx context.Context, id model.TournamentID, op model.Operation) (*model.Effect, error)
	ApplySettings(ctx context.Context, id model.TournamentID, batch settings.Settings) (settings.Result, error)
	GetPlayer(ctx context.Context, id model.TournamentID, ident model.PlayerIdentifier) (*model.Player, error)
	GetRound(ctx context.Context, id model.TournamentID, ident model.RoundIdentifier) (*model.Round, error)
	PlayerActiveRound(ctx context.Context, id model.TournamentID, ident model.PlayerIdentifier) (*model.Round, error)
	Standings(ctx context.Context, id model.TournamentID) (model.Standings, error)
}

var _ ControllerInterface = (*Controller)(nil)

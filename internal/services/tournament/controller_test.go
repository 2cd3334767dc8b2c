package tournament

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/arbiter-gg/arbiter/internal/dependencies/mocks"
	"github.com/arbiter-gg/arbiter/internal/model"
	"github.com/arbiter-gg/arbiter/internal/services/pairing"
	"github.com/arbiter-gg/arbiter/internal/services/scoring"
	"github.com/arbiter-gg/arbiter/internal/settings"
	"github.com/arbiter-gg/arbiter/internal/storage/memory"
	"github.com/arbiter-gg/arbiter/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	clock      *mocks.MockClock
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2026, 8, 1, 18, 0, 0, 0, time.UTC))
	logger := testutil.NopLogger()
	s.controller = NewController(s.storage, pairing.New(logger), scoring.New(logger), s.clock, logger)
	s.ctx = context.Background()
}

func (s *ControllerSuite) create(preset model.TournamentPreset) model.TournamentID {
	t, err := s.controller.CreateFromPreset(s.ctx, preset, "Friday Night", "Modern")
	s.Require().NoError(err)
	return t.ID
}

func (s *ControllerSuite) apply(id model.TournamentID, op model.Operation) *model.Effect {
	effect, err := s.controller.Apply(s.ctx, id, op)
	s.Require().NoError(err)
	return effect
}

func (s *ControllerSuite) register(id model.TournamentID, names ...string) []model.PlayerID {
	ids := make([]model.PlayerID, 0, len(names))
	for _, name := range names {
		effect := s.apply(id, model.RegisterPlayerOp{Name: name})
		ids = append(ids, effect.Player)
	}
	return ids
}

func (s *ControllerSuite) get(id model.TournamentID) *model.Tournament {
	t, err := s.controller.GetTournament(s.ctx, id)
	s.Require().NoError(err)
	return t
}

func (s *ControllerSuite) snapshot(id model.TournamentID) []byte {
	data, err := json.Marshal(s.get(id))
	s.Require().NoError(err)
	return data
}

// playOut records a win for the first player of the round and confirms it
func (s *ControllerSuite) playOut(id model.TournamentID, round model.RoundID, winner model.PlayerID, wins int) {
	s.apply(id, model.RecordResultOp{
		Round:  model.RoundByID(round),
		Result: model.WinsResult(winner, wins),
	})
	t := s.get(id)
	r, err := t.Rounds.Get(model.RoundByID(round))
	s.Require().NoError(err)
	for _, p := range r.Players {
		s.apply(id, model.ConfirmResultOp{Player: model.PlayerByID(p)})
	}
}

// Construction

func (s *ControllerSuite) TestCreateFromPresetDefaults() {
	id := s.create(model.PresetSwiss)

	t := s.get(id)
	s.Equal(model.TournamentStatusPlanned, t.Status)
	s.True(t.RegOpen)
	s.Equal(model.PairingSwiss, t.Pairing.Kind)
	s.Equal(2, t.Pairing.MatchSize)
	s.Equal(model.ScoringStandard, t.Scoring.Kind)
	s.Equal(3.0, t.Scoring.Standard.MatchWinPoints)
}

func (s *ControllerSuite) TestCreateRejectsEmptyNameAndFormat() {
	_, err := s.controller.CreateFromPreset(s.ctx, model.PresetSwiss, "", "Modern")
	s.ErrorIs(err, ErrBadName)

	_, err = s.controller.CreateFromPreset(s.ctx, model.PresetSwiss, "Friday Night", "")
	s.ErrorIs(err, ErrBadFormat)
}

// Status machine

func (s *ControllerSuite) TestStatusTransitions() {
	id := s.create(model.PresetSwiss)

	s.apply(id, model.StartOp{})
	s.Equal(model.TournamentStatusStarted, s.get(id).Status)

	s.apply(id, model.FreezeOp{})
	s.Equal(model.TournamentStatusFrozen, s.get(id).Status)

	s.apply(id, model.ThawOp{})
	s.Equal(model.TournamentStatusStarted, s.get(id).Status)

	s.apply(id, model.EndOp{})
	s.Equal(model.TournamentStatusEnded, s.get(id).Status)
}

func (s *ControllerSuite) TestStartRequiresPlanned() {
	id := s.create(model.PresetSwiss)
	s.apply(id, model.StartOp{})

	_, err := s.controller.Apply(s.ctx, id, model.StartOp{})
	s.ErrorIs(err, model.ErrIncorrectStatus)
}

func (s *ControllerSuite) TestFreezeRequiresStarted() {
	id := s.create(model.PresetSwiss)

	_, err := s.controller.Apply(s.ctx, id, model.FreezeOp{})
	s.ErrorIs(err, model.ErrIncorrectStatus)
}

func (s *ControllerSuite) TestEndFromFrozen() {
	id := s.create(model.PresetSwiss)
	s.apply(id, model.StartOp{})
	s.apply(id, model.FreezeOp{})

	s.apply(id, model.EndOp{})
	s.Equal(model.TournamentStatusEnded, s.get(id).Status)
}

func (s *ControllerSuite) TestEndBlockedByActiveRounds() {
	id := s.create(model.PresetSwiss)
	players := s.register(id, "alice", "bob")
	s.apply(id, model.StartOp{})
	s.apply(id, model.CreateRoundOp{Players: []model.PlayerIdentifier{
		model.PlayerByID(players[0]), model.PlayerByID(players[1]),
	}})

	_, err := s.controller.Apply(s.ctx, id, model.EndOp{})
	s.ErrorIs(err, model.ErrActiveMatches)
}

func (s *ControllerSuite) TestCancelFromAnyLiveStatus() {
	id := s.create(model.PresetSwiss)
	s.apply(id, model.CancelOp{})
	s.Equal(model.TournamentStatusCancelled, s.get(id).Status)

	frozen := s.create(model.PresetSwiss)
	s.apply(frozen, model.StartOp{})
	s.apply(frozen, model.FreezeOp{})
	s.apply(frozen, model.CancelOp{})
	s.Equal(model.TournamentStatusCancelled, s.get(frozen).Status)
}

func (s *ControllerSuite) TestDeadTournamentRejectsEverything() {
	id := s.create(model.PresetSwiss)
	s.apply(id, model.StartOp{})
	s.apply(id, model.EndOp{})

	ops := []model.Operation{
		model.StartOp{}, model.FreezeOp{}, model.ThawOp{}, model.EndOp{},
		model.CancelOp{}, model.UpdateRegOp{Open: true},
		model.RegisterPlayerOp{Name: "late"}, model.PairRoundOp{},
		model.UpdateSettingOp{Setting: model.FormatSetting("Legacy")},
	}
	for _, op := range ops {
		_, err := s.controller.Apply(s.ctx, id, op)
		s.ErrorIs(err, model.ErrIncorrectStatus, "%T should be rejected", op)
	}
}

func (s *ControllerSuite) TestFrozenTournamentAcceptsOnlyThawEndCancel() {
	id := s.create(model.PresetSwiss)
	s.register(id, "alice")
	s.apply(id, model.StartOp{})
	s.apply(id, model.FreezeOp{})

	_, err := s.controller.Apply(s.ctx, id, model.RegisterPlayerOp{Name: "bob"})
	s.ErrorIs(err, model.ErrIncorrectStatus)
	_, err = s.controller.Apply(s.ctx, id, model.GiveByeOp{Player: model.PlayerByName("alice")})
	s.ErrorIs(err, model.ErrIncorrectStatus)

	s.apply(id, model.ThawOp{})
	s.Equal(model.TournamentStatusStarted, s.get(id).Status)
}

// Atomicity

func (s *ControllerSuite) TestFailedOperationLeavesStateUntouched() {
	id := s.create(model.PresetSwiss)
	players := s.register(id, "alice", "bob", "carol")
	s.apply(id, model.StartOp{})
	s.apply(id, model.CreateRoundOp{Players: []model.PlayerIdentifier{
		model.PlayerByID(players[0]), model.PlayerByID(players[1]),
	}})

	before := s.snapshot(id)

	failing := []model.Operation{
		model.StartOp{},
		model.RegisterPlayerOp{Name: "alice"},
		model.GiveByeOp{Player: model.PlayerByID(players[0])},
		model.EndOp{},
		model.UpdateSettingOp{Setting: model.FluidMatchSizeSetting(4)},
		model.RecordResultOp{
			Round:  model.RoundByNumber(1),
			Result: model.WinsResult(players[2], 2),
		},
		model.ConfirmResultOp{Player: model.PlayerByName("nobody")},
	}
	for _, op := range failing {
		_, err := s.controller.Apply(s.ctx, id, op)
		s.Require().Error(err, "%T should fail", op)
		s.Equal(string(before), string(s.snapshot(id)), "%T mutated state", op)
	}
}

// Registration and players

func (s *ControllerSuite) TestRegisterPlayerRequiresOpenRegistration() {
	id := s.create(model.PresetSwiss)
	s.apply(id, model.UpdateRegOp{Open: false})

	_, err := s.controller.Apply(s.ctx, id, model.RegisterPlayerOp{Name: "alice"})
	s.ErrorIs(err, model.ErrRegClosed)
}

func (s *ControllerSuite) TestRegisterDuplicateNameFails() {
	id := s.create(model.PresetSwiss)
	s.register(id, "alice")

	_, err := s.controller.Apply(s.ctx, id, model.RegisterPlayerOp{Name: "alice"})
	s.ErrorIs(err, model.ErrPlayerLookup)
}

func (s *ControllerSuite) TestCheckInAndPrunePlayers() {
	id := s.create(model.PresetSwiss)
	players := s.register(id, "alice", "bob")
	s.apply(id, model.UpdateSettingOp{Setting: model.RequireCheckInSetting(true)})
	s.apply(id, model.CheckInOp{Player: model.PlayerByID(players[0])})

	s.apply(id, model.PrunePlayersOp{})

	t := s.get(id)
	s.Equal(model.PlayerStatusRegistered, t.Players.Players[players[0]].Status)
	s.Equal(model.PlayerStatusDropped, t.Players.Players[players[1]].Status)
}

func (s *ControllerSuite) TestDropPlayerKeepsRecord() {
	id := s.create(model.PresetSwiss)
	players := s.register(id, "alice")

	s.apply(id, model.DropPlayerOp{Player: model.PlayerByName("alice")})

	t := s.get(id)
	s.Equal(model.PlayerStatusDropped, t.Players.Players[players[0]].Status)
	s.Equal(1, t.Players.Len())
}

func (s *ControllerSuite) TestGamerTag() {
	id := s.create(model.PresetSwiss)
	players := s.register(id, "alice")

	s.apply(id, model.SetGamerTagOp{Player: model.PlayerByID(players[0]), Tag: "al1ce"})

	player, err := s.controller.GetPlayer(s.ctx, id, model.PlayerByID(players[0]))
	s.Require().NoError(err)
	s.Equal("al1ce", player.GamerTag)
}

// Decks

func (s *ControllerSuite) TestAddDeckEnforcesMax() {
	id := s.create(model.PresetSwiss)
	players := s.register(id, "alice")
	ident := model.PlayerByID(players[0])
	deck := model.Deck{Cards: map[string]int{"Island": 20}}

	s.apply(id, model.AddDeckOp{Player: ident, Name: "main", Deck: deck})
	s.apply(id, model.AddDeckOp{Player: ident, Name: "backup", Deck: deck})

	_, err := s.controller.Apply(s.ctx, id, model.AddDeckOp{Player: ident, Name: "third", Deck: deck})
	s.ErrorIs(err, model.ErrInvalidDeckCount)

	// Replacing an existing deck is always allowed
	s.apply(id, model.AddDeckOp{Player: ident, Name: "main", Deck: deck})
}

func (s *ControllerSuite) TestRemoveDeckLookupFails() {
	id := s.create(model.PresetSwiss)
	s.register(id, "alice")

	_, err := s.controller.Apply(s.ctx, id, model.RemoveDeckOp{
		Player: model.PlayerByName("alice"), Name: "missing",
	})
	s.ErrorIs(err, model.ErrDeckLookup)
}

func (s *ControllerSuite) TestPruneDecksTrimsNewestFirst() {
	id := s.create(model.PresetSwiss)
	players := s.register(id, "alice")
	ident := model.PlayerByID(players[0])
	deck := model.Deck{Cards: map[string]int{"Island": 20}}
	s.apply(id, model.AddDeckOp{Player: ident, Name: "first", Deck: deck})
	s.apply(id, model.AddDeckOp{Player: ident, Name: "second", Deck: deck})
	s.apply(id, model.UpdateSettingOp{Setting: model.MaxDeckCountSetting(1)})

	s.apply(id, model.PruneDecksOp{})

	player, err := s.controller.GetPlayer(s.ctx, id, ident)
	s.Require().NoError(err)
	s.Len(player.Decks, 1)
	s.Contains(player.Decks, "first")
}

// Settings

func (s *ControllerSuite) TestPairingSettingVariantMustMatch() {
	id := s.create(model.PresetSwiss)
	before := s.snapshot(id)

	_, err := s.controller.Apply(s.ctx, id, model.UpdateSettingOp{
		Setting: model.FluidMatchSizeSetting(4),
	})
	s.ErrorIs(err, model.ErrIncompatiblePairingSystem)
	s.Equal(string(before), string(s.snapshot(id)))
}

func (s *ControllerSuite) TestScoringSettingApplies() {
	id := s.create(model.PresetSwiss)

	s.apply(id, model.UpdateSettingOp{Setting: model.MatchWinPointsSetting(5)})

	s.Equal(5.0, s.get(id).Scoring.Standard.MatchWinPoints)
}

func (s *ControllerSuite) TestMatchSizeSettingUpdatesGameSize() {
	id := s.create(model.PresetSwiss)

	s.apply(id, model.UpdateSettingOp{Setting: model.SwissMatchSizeSetting(4)})

	t := s.get(id)
	s.Equal(4, t.Pairing.MatchSize)
	s.Equal(4, t.GameSize)
}

func (s *ControllerSuite) TestDeckBoundsMustStayOrdered() {
	id := s.create(model.PresetSwiss)

	_, err := s.controller.Apply(s.ctx, id, model.UpdateSettingOp{
		Setting: model.MinDeckCountSetting(3),
	})
	s.ErrorIs(err, model.ErrInvalidDeckCount)

	s.apply(id, model.UpdateSettingOp{Setting: model.MaxDeckCountSetting(5)})
	s.apply(id, model.UpdateSettingOp{Setting: model.MinDeckCountSetting(3)})
	t := s.get(id)
	s.Equal(3, t.MinDeckCount)
	s.Equal(5, t.MaxDeckCount)
}

func (s *ControllerSuite) TestApplySettingsPartitionsBatch() {
	id := s.create(model.PresetSwiss)

	result, err := s.controller.ApplySettings(s.ctx, id, settings.Settings{
		"minDeckCount": "3",   // rejected: above the max of 2
		"maxDeckCount": "bad", // errored: unparseable
		"format":       "Legacy",
	})
	s.Require().NoError(err)

	s.Contains(result.Rejected, "minDeckCount")
	s.Contains(result.Errored, "maxDeckCount")
	s.Contains(result.Accepted, "format")
	s.Len(result.Accepted, 1)
	s.Len(result.Rejected, 1)
	s.Len(result.Errored, 1)

	t := s.get(id)
	s.Equal("Legacy", t.Format)
	s.Equal(1, t.MinDeckCount)
	s.Equal(2, t.MaxDeckCount)
}

// Rounds and results

func (s *ControllerSuite) TestSwissPairRoundScenario() {
	id := s.create(model.PresetSwiss)
	players := s.register(id, "alice", "bob", "carol", "dave")
	for _, p := range players {
		s.apply(id, model.CheckInOp{Player: model.PlayerByID(p)})
	}
	s.apply(id, model.StartOp{})

	effect := s.apply(id, model.PairRoundOp{})

	s.Len(effect.Rounds, 2)
	t := s.get(id)
	s.Equal(2, t.Rounds.ActiveCount())
	for _, p := range players {
		s.True(t.Rounds.PlayerInActiveRound(p))
	}
}

func (s *ControllerSuite) TestPairRoundRequiresStarted() {
	id := s.create(model.PresetSwiss)
	s.register(id, "alice", "bob")

	_, err := s.controller.Apply(s.ctx, id, model.PairRoundOp{})
	s.ErrorIs(err, model.ErrIncorrectStatus)
}

func (s *ControllerSuite) TestPairRoundBlockedByActiveRounds() {
	id := s.create(model.PresetSwiss)
	players := s.register(id, "alice", "bob", "carol", "dave")
	s.apply(id, model.StartOp{})
	s.apply(id, model.PairRoundOp{})
	_ = players

	_, err := s.controller.Apply(s.ctx, id, model.PairRoundOp{})
	s.ErrorIs(err, model.ErrActiveMatches)
}

func (s *ControllerSuite) TestPairRoundRequiresCheckInsWhenConfigured() {
	id := s.create(model.PresetSwiss)
	players := s.register(id, "alice", "bob")
	s.apply(id, model.UpdateSettingOp{Setting: model.SwissDoCheckInsSetting(true)})
	s.apply(id, model.StartOp{})
	s.apply(id, model.ReadyPlayerOp{Player: model.PlayerByID(players[0])})

	_, err := s.controller.Apply(s.ctx, id, model.PairRoundOp{})
	s.ErrorIs(err, model.ErrPlayerNotCheckedIn)

	s.apply(id, model.ReadyPlayerOp{Player: model.PlayerByID(players[1])})
	effect := s.apply(id, model.PairRoundOp{})
	s.Len(effect.Rounds, 1)
}

func (s *ControllerSuite) TestRecordAndConfirmUpdatesStandings() {
	id := s.create(model.PresetSwiss)
	players := s.register(id, "alice", "bob")
	s.apply(id, model.StartOp{})
	effect := s.apply(id, model.PairRoundOp{})
	s.Require().Len(effect.Rounds, 1)

	s.playOut(id, effect.Rounds[0], players[0], 2)

	standings, err := s.controller.Standings(s.ctx, id)
	s.Require().NoError(err)
	s.Require().Len(standings.Entries, 2)
	s.Equal(players[0], standings.Entries[0].Player)
	s.Equal(3.0, standings.Entries[0].Score.MatchPoints)
	s.Equal(6.0, standings.Entries[0].Score.GamePoints)
	s.Equal(0.0, standings.Entries[1].Score.MatchPoints)
}

func (s *ControllerSuite) TestConfirmResultTransitionsRound() {
	id := s.create(model.PresetSwiss)
	players := s.register(id, "alice", "bob")
	s.apply(id, model.StartOp{})
	effect := s.apply(id, model.PairRoundOp{})

	s.apply(id, model.RecordResultOp{
		Round:  model.RoundByID(effect.Rounds[0]),
		Result: model.WinsResult(players[0], 2),
	})

	first := s.apply(id, model.ConfirmResultOp{Player: model.PlayerByID(players[0])})
	s.Equal(model.RoundStatusUncertified, first.RoundStatus)

	second := s.apply(id, model.ConfirmResultOp{Player: model.PlayerByID(players[1])})
	s.Equal(model.RoundStatusCertified, second.RoundStatus)
}

func (s *ControllerSuite) TestRecordResultForOutsiderFails() {
	id := s.create(model.PresetSwiss)
	players := s.register(id, "alice", "bob", "carol")
	s.apply(id, model.StartOp{})
	s.apply(id, model.CreateRoundOp{Players: []model.PlayerIdentifier{
		model.PlayerByID(players[0]), model.PlayerByID(players[1]),
	}})

	_, err := s.controller.Apply(s.ctx, id, model.RecordResultOp{
		Round:  model.RoundByNumber(1),
		Result: model.WinsResult(players[2], 2),
	})
	s.ErrorIs(err, model.ErrPlayerNotInRound)
}

func (s *ControllerSuite) TestGiveByeWhileSeatedFails() {
	id := s.create(model.PresetSwiss)
	players := s.register(id, "alice", "bob")
	s.apply(id, model.StartOp{})
	s.apply(id, model.PairRoundOp{})

	_, err := s.controller.Apply(s.ctx, id, model.GiveByeOp{Player: model.PlayerByID(players[0])})
	s.ErrorIs(err, model.ErrInvalidBye)
}

func (s *ControllerSuite) TestGiveByeScores() {
	id := s.create(model.PresetSwiss)
	players := s.register(id, "alice", "bob")
	s.apply(id, model.StartOp{})

	effect := s.apply(id, model.GiveByeOp{Player: model.PlayerByID(players[0])})
	s.NotEmpty(effect.Round)

	standings, err := s.controller.Standings(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(3.0, standings.Entries[0].Score.MatchPoints)
}

func (s *ControllerSuite) TestRemoveRoundUnwindsOpponents() {
	id := s.create(model.PresetSwiss)
	players := s.register(id, "alice", "bob")
	s.apply(id, model.StartOp{})
	effect := s.apply(id, model.PairRoundOp{})

	s.apply(id, model.RemoveRoundOp{Round: model.RoundByID(effect.Rounds[0])})

	t := s.get(id)
	s.Equal(0, t.Rounds.ActiveCount())
	s.False(t.Rounds.HavePlayed(players[0], players[1]))
}

func (s *ControllerSuite) TestTimeExtension() {
	id := s.create(model.PresetSwiss)
	s.register(id, "alice", "bob")
	s.apply(id, model.StartOp{})
	effect := s.apply(id, model.PairRoundOp{})

	s.apply(id, model.TimeExtensionOp{
		Round:     model.RoundByID(effect.Rounds[0]),
		Extension: 10 * time.Minute,
	})

	round, err := s.controller.GetRound(s.ctx, id, model.RoundByID(effect.Rounds[0]))
	s.Require().NoError(err)
	s.Equal(10*time.Minute, round.Extension)
	s.Equal(model.DefaultRoundLength+10*time.Minute, round.TimeLeft(s.clock.Now()))
}

func (s *ControllerSuite) TestTableNumbersAssignedFromStartingTable() {
	id := s.create(model.PresetSwiss)
	s.register(id, "alice", "bob", "carol", "dave")
	s.apply(id, model.UpdateSettingOp{Setting: model.StartingTableNumberSetting(10)})
	s.apply(id, model.StartOp{})
	effect := s.apply(id, model.PairRoundOp{})

	t := s.get(id)
	tables := make(map[uint64]bool)
	for _, rid := range effect.Rounds {
		round, err := t.Rounds.Get(model.RoundByID(rid))
		s.Require().NoError(err)
		s.GreaterOrEqual(round.TableNumber, uint64(10))
		tables[round.TableNumber] = true
	}
	s.Len(tables, len(effect.Rounds))
}

// Cut

func (s *ControllerSuite) TestCutDropsBottomOfStandings() {
	id := s.create(model.PresetSwiss)
	players := s.register(id, "alice", "bob", "carol", "dave")
	s.apply(id, model.StartOp{})
	effect := s.apply(id, model.PairRoundOp{})
	for _, rid := range effect.Rounds {
		t := s.get(id)
		round, err := t.Rounds.Get(model.RoundByID(rid))
		s.Require().NoError(err)
		s.playOut(id, rid, round.Players[0], 2)
	}

	s.apply(id, model.CutOp{Size: 2})

	t := s.get(id)
	s.Equal(2, t.Players.ActiveCount())
	_ = players
}

func (s *ControllerSuite) TestCutBlockedByActiveRounds() {
	id := s.create(model.PresetSwiss)
	s.register(id, "alice", "bob")
	s.apply(id, model.StartOp{})
	s.apply(id, model.PairRoundOp{})

	_, err := s.controller.Apply(s.ctx, id, model.CutOp{Size: 1})
	s.ErrorIs(err, model.ErrActiveMatches)
}

// Fluid

func (s *ControllerSuite) TestFluidReadyPairsAutomatically() {
	id := s.create(model.PresetFluid)
	players := s.register(id, "alice", "bob", "carol")
	s.apply(id, model.StartOp{})

	first := s.apply(id, model.ReadyPlayerOp{Player: model.PlayerByID(players[0])})
	s.Empty(first.Rounds)

	second := s.apply(id, model.ReadyPlayerOp{Player: model.PlayerByID(players[1])})
	s.Len(second.Rounds, 1)

	t := s.get(id)
	s.Empty(t.Pairing.Queue)
	s.True(t.Rounds.PlayerInActiveRound(players[0]))
	s.True(t.Rounds.PlayerInActiveRound(players[1]))
}

func (s *ControllerSuite) TestFluidLeftoverStaysQueued() {
	id := s.create(model.PresetFluid)
	players := s.register(id, "alice", "bob", "carol")
	s.apply(id, model.StartOp{})
	s.apply(id, model.ReadyPlayerOp{Player: model.PlayerByID(players[0])})
	s.apply(id, model.ReadyPlayerOp{Player: model.PlayerByID(players[1])})
	s.apply(id, model.ReadyPlayerOp{Player: model.PlayerByID(players[2])})

	t := s.get(id)
	s.Equal([]model.PlayerID{players[2]}, t.Pairing.Queue)
}

func (s *ControllerSuite) TestFluidUnreadyLeavesQueue() {
	id := s.create(model.PresetFluid)
	players := s.register(id, "alice")
	s.apply(id, model.ReadyPlayerOp{Player: model.PlayerByID(players[0])})
	s.Require().Equal([]model.PlayerID{players[0]}, s.get(id).Pairing.Queue)

	s.apply(id, model.UnReadyPlayerOp{Player: model.PlayerByID(players[0])})
	s.Empty(s.get(id).Pairing.Queue)
}

// Queries

func (s *ControllerSuite) TestPlayerActiveRoundLookup() {
	id := s.create(model.PresetSwiss)
	players := s.register(id, "alice", "bob")
	s.apply(id, model.StartOp{})

	_, err := s.controller.PlayerActiveRound(s.ctx, id, model.PlayerByID(players[0]))
	s.ErrorIs(err, model.ErrNoActiveRound)

	effect := s.apply(id, model.PairRoundOp{})
	round, err := s.controller.PlayerActiveRound(s.ctx, id, model.PlayerByID(players[0]))
	s.Require().NoError(err)
	s.Equal(effect.Rounds[0], round.ID)
}

func (s *ControllerSuite) TestLookupUnknownTournament() {
	_, err := s.controller.Apply(s.ctx, "missing", model.StartOp{})
	s.ErrorIs(err, model.ErrTournamentNotFound)
}

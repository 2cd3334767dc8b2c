package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/arbiter-gg/arbiter/internal/api/request"
	"github.com/arbiter-gg/arbiter/internal/api/response"
	"github.com/arbiter-gg/arbiter/internal/dependencies/clock"
	"github.com/arbiter-gg/arbiter/internal/model"
	"github.com/arbiter-gg/arbiter/internal/services/tournament"
)

// PlayerHandler handles player-level endpoints
type PlayerHandler struct {
	controller tournament.ControllerInterface
	clock      clock.Clock
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(controller tournament.ControllerInterface, clock clock.Clock) *PlayerHandler {
	return &PlayerHandler{controller: controller, clock: clock}
}

// Register handles POST /api/v1/tournaments/{id}/players
func (h *PlayerHandler) Register(w http.ResponseWriter, r *http.Request) {
	id := model.TournamentID(mux.Vars(r)["id"])

	var req request.RegisterPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}

	effect, err := h.controller.Apply(r.Context(), id, model.RegisterPlayerOp{Name: req.Name})
	if err != nil {
		WriteError(w, err)
		return
	}

	player, err := h.controller.GetPlayer(r.Context(), id, model.PlayerByID(effect.Player))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(player))
}

// List handles GET /api/v1/tournaments/{id}/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	id := model.TournamentID(mux.Vars(r)["id"])

	t, err := h.controller.GetTournament(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerListFromModel(t.Players))
}

// Get handles GET /api/v1/tournaments/{id}/players/{player}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := model.TournamentID(vars["id"])

	player, err := h.controller.GetPlayer(r.Context(), id, playerIdent(vars["player"]))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// playerOp applies an operation targeting one player and responds with its
// effect
func (h *PlayerHandler) playerOp(w http.ResponseWriter, r *http.Request, op model.Operation) {
	id := model.TournamentID(mux.Vars(r)["id"])

	effect, err := h.controller.Apply(r.Context(), id, op)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.EffectFromModel(effect))
}

// Drop handles DELETE /api/v1/tournaments/{id}/players/{player}
func (h *PlayerHandler) Drop(w http.ResponseWriter, r *http.Request) {
	h.playerOp(w, r, model.AdminDropPlayerOp{Player: playerIdent(mux.Vars(r)["player"])})
}

// CheckIn handles POST /api/v1/tournaments/{id}/players/{player}/check-in
func (h *PlayerHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	h.playerOp(w, r, model.CheckInOp{Player: playerIdent(mux.Vars(r)["player"])})
}

// Ready handles POST /api/v1/tournaments/{id}/players/{player}/ready.
// In fluid tournaments this may seat the player immediately; any created
// rounds are reported in the effect.
func (h *PlayerHandler) Ready(w http.ResponseWriter, r *http.Request) {
	h.playerOp(w, r, model.ReadyPlayerOp{Player: playerIdent(mux.Vars(r)["player"])})
}

// Unready handles POST /api/v1/tournaments/{id}/players/{player}/unready
func (h *PlayerHandler) Unready(w http.ResponseWriter, r *http.Request) {
	h.playerOp(w, r, model.UnReadyPlayerOp{Player: playerIdent(mux.Vars(r)["player"])})
}

// Confirm handles POST /api/v1/tournaments/{id}/players/{player}/confirm
func (h *PlayerHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.playerOp(w, r, model.ConfirmResultOp{Player: playerIdent(mux.Vars(r)["player"])})
}

// Bye handles POST /api/v1/tournaments/{id}/players/{player}/bye
func (h *PlayerHandler) Bye(w http.ResponseWriter, r *http.Request) {
	h.playerOp(w, r, model.GiveByeOp{Player: playerIdent(mux.Vars(r)["player"])})
}

// SetGamerTag handles PUT /api/v1/tournaments/{id}/players/{player}/gamer-tag
func (h *PlayerHandler) SetGamerTag(w http.ResponseWriter, r *http.Request) {
	var req request.SetGamerTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	h.playerOp(w, r, model.SetGamerTagOp{
		Player: playerIdent(mux.Vars(r)["player"]),
		Tag:    req.Tag,
	})
}

// AddDeck handles POST /api/v1/tournaments/{id}/players/{player}/decks
func (h *PlayerHandler) AddDeck(w http.ResponseWriter, r *http.Request) {
	var req request.AddDeckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}

	h.playerOp(w, r, model.AddDeckOp{
		Player: playerIdent(mux.Vars(r)["player"]),
		Name:   req.Name,
		Deck:   model.Deck{Cards: req.Cards},
	})
}

// RemoveDeck handles DELETE /api/v1/tournaments/{id}/players/{player}/decks/{deck}
func (h *PlayerHandler) RemoveDeck(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	h.playerOp(w, r, model.RemoveDeckOp{
		Player: playerIdent(vars["player"]),
		Name:   vars["deck"],
	})
}

// ActiveRound handles GET /api/v1/tournaments/{id}/players/{player}/active-round
func (h *PlayerHandler) ActiveRound(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := model.TournamentID(vars["id"])

	round, err := h.controller.PlayerActiveRound(r.Context(), id, playerIdent(vars["player"]))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoundFromModel(round, h.clock.Now()))
}

package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/arbiter-gg/arbiter/internal/api/request"
	"github.com/arbiter-gg/arbiter/internal/api/response"
	"github.com/arbiter-gg/arbiter/internal/dependencies/clock"
	"github.com/arbiter-gg/arbiter/internal/model"
	"github.com/arbiter-gg/arbiter/internal/services/tournament"
)

// RoundHandler handles round-level endpoints
type RoundHandler struct {
	controller tournament.ControllerInterface
	clock      clock.Clock
}

// NewRoundHandler creates a new round handler
func NewRoundHandler(controller tournament.ControllerInterface, clock clock.Clock) *RoundHandler {
	return &RoundHandler{controller: controller, clock: clock}
}

// List handles GET /api/v1/tournaments/{id}/rounds
func (h *RoundHandler) List(w http.ResponseWriter, r *http.Request) {
	id := model.TournamentID(mux.Vars(r)["id"])

	t, err := h.controller.GetTournament(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoundListFromModel(t.Rounds, h.clock.Now()))
}

// Pair handles POST /api/v1/tournaments/{id}/rounds/pair
func (h *RoundHandler) Pair(w http.ResponseWriter, r *http.Request) {
	id := model.TournamentID(mux.Vars(r)["id"])

	effect, err := h.controller.Apply(r.Context(), id, model.PairRoundOp{})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.EffectFromModel(effect))
}

// Create handles POST /api/v1/tournaments/{id}/rounds
func (h *RoundHandler) Create(w http.ResponseWriter, r *http.Request) {
	id := model.TournamentID(mux.Vars(r)["id"])

	var req request.CreateRoundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if len(req.Players) == 0 {
		WriteError(w, NewInvalidRequestError("players is required"))
		return
	}

	players := make([]model.PlayerIdentifier, len(req.Players))
	for i, p := range req.Players {
		players[i] = playerIdent(p)
	}

	effect, err := h.controller.Apply(r.Context(), id, model.CreateRoundOp{Players: players})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.EffectFromModel(effect))
}

// Get handles GET /api/v1/tournaments/{id}/rounds/{round}
func (h *RoundHandler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := model.TournamentID(vars["id"])

	ident, err := roundIdent(vars["round"])
	if err != nil {
		WriteError(w, err)
		return
	}

	round, err := h.controller.GetRound(r.Context(), id, ident)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoundFromModel(round, h.clock.Now()))
}

// Remove handles DELETE /api/v1/tournaments/{id}/rounds/{round}
func (h *RoundHandler) Remove(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := model.TournamentID(vars["id"])

	ident, err := roundIdent(vars["round"])
	if err != nil {
		WriteError(w, err)
		return
	}

	if _, err := h.controller.Apply(r.Context(), id, model.RemoveRoundOp{Round: ident}); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// RecordResult handles POST /api/v1/tournaments/{id}/rounds/{round}/result
func (h *RoundHandler) RecordResult(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := model.TournamentID(vars["id"])

	ident, err := roundIdent(vars["round"])
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.RecordResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	var result model.RoundResult
	switch {
	case req.Draw:
		result = model.DrawResult()
	case req.Player != "":
		// Results are recorded against player ids; resolve names first
		t, err := h.controller.GetTournament(r.Context(), id)
		if err != nil {
			WriteError(w, err)
			return
		}
		pid, err := t.Players.Resolve(playerIdent(req.Player))
		if err != nil {
			WriteError(w, err)
			return
		}
		result = model.WinsResult(pid, req.Wins)
	default:
		WriteError(w, NewInvalidRequestError("result must name a player or be a draw"))
		return
	}

	effect, err := h.controller.Apply(r.Context(), id, model.RecordResultOp{Round: ident, Result: result})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.EffectFromModel(effect))
}

// Extension handles POST /api/v1/tournaments/{id}/rounds/{round}/extension
func (h *RoundHandler) Extension(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := model.TournamentID(vars["id"])

	ident, err := roundIdent(vars["round"])
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.TimeExtensionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.ExtensionSeconds <= 0 {
		WriteError(w, NewInvalidRequestError("extension_seconds must be positive"))
		return
	}

	op := model.TimeExtensionOp{
		Round:     ident,
		Extension: time.Duration(req.ExtensionSeconds) * time.Second,
	}
	effect, err := h.controller.Apply(r.Context(), id, op)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.EffectFromModel(effect))
}

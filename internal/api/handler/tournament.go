package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/arbiter-gg/arbiter/internal/api/request"
	"github.com/arbiter-gg/arbiter/internal/api/response"
	"github.com/arbiter-gg/arbiter/internal/model"
	"github.com/arbiter-gg/arbiter/internal/services/tournament"
	"github.com/arbiter-gg/arbiter/internal/settings"
)

// TournamentHandler handles tournament-level endpoints
type TournamentHandler struct {
	controller tournament.ControllerInterface
}

// NewTournamentHandler creates a new tournament handler
func NewTournamentHandler(controller tournament.ControllerInterface) *TournamentHandler {
	return &TournamentHandler{controller: controller}
}

// Create handles POST /api/v1/tournaments
func (h *TournamentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTournamentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	preset := model.TournamentPreset(req.Preset)
	if preset == "" {
		preset = model.PresetSwiss
	}
	if preset != model.PresetSwiss && preset != model.PresetFluid {
		WriteError(w, NewInvalidRequestError("preset must be swiss or fluid"))
		return
	}

	t, err := h.controller.CreateFromPreset(r.Context(), preset, req.Name, req.Format)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.TournamentFromModel(t))
}

// List handles GET /api/v1/tournaments
func (h *TournamentHandler) List(w http.ResponseWriter, r *http.Request) {
	ids, err := h.controller.ListTournaments(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TournamentListFromIDs(ids))
}

// Get handles GET /api/v1/tournaments/{id}
func (h *TournamentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.TournamentID(mux.Vars(r)["id"])

	t, err := h.controller.GetTournament(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TournamentFromModel(t))
}

// transition applies a status operation and responds with the updated
// tournament
func (h *TournamentHandler) transition(w http.ResponseWriter, r *http.Request, op model.Operation) {
	id := model.TournamentID(mux.Vars(r)["id"])

	if _, err := h.controller.Apply(r.Context(), id, op); err != nil {
		WriteError(w, err)
		return
	}

	t, err := h.controller.GetTournament(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TournamentFromModel(t))
}

// Start handles POST /api/v1/tournaments/{id}/start
func (h *TournamentHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, model.StartOp{})
}

// Freeze handles POST /api/v1/tournaments/{id}/freeze
func (h *TournamentHandler) Freeze(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, model.FreezeOp{})
}

// Thaw handles POST /api/v1/tournaments/{id}/thaw
func (h *TournamentHandler) Thaw(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, model.ThawOp{})
}

// End handles POST /api/v1/tournaments/{id}/end
func (h *TournamentHandler) End(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, model.EndOp{})
}

// Cancel handles POST /api/v1/tournaments/{id}/cancel
func (h *TournamentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, model.CancelOp{})
}

// UpdateRegistration handles PATCH /api/v1/tournaments/{id}/registration
func (h *TournamentHandler) UpdateRegistration(w http.ResponseWriter, r *http.Request) {
	id := model.TournamentID(mux.Vars(r)["id"])

	var req request.UpdateRegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if _, err := h.controller.Apply(r.Context(), id, model.UpdateRegOp{Open: req.Open}); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// UpdateSettings handles PATCH /api/v1/tournaments/{id}/settings.
// The body is a flat map of setting keys to raw string values; the response
// reports each key as accepted, rejected, or errored.
func (h *TournamentHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	id := model.TournamentID(mux.Vars(r)["id"])

	var batch settings.Settings
	if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	result, err := h.controller.ApplySettings(r.Context(), id, batch)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SettingsResultFromModel(result))
}

// Standings handles GET /api/v1/tournaments/{id}/standings
func (h *TournamentHandler) Standings(w http.ResponseWriter, r *http.Request) {
	id := model.TournamentID(mux.Vars(r)["id"])

	standings, err := h.controller.Standings(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.StandingsFromModel(standings))
}

// Cut handles POST /api/v1/tournaments/{id}/cut
func (h *TournamentHandler) Cut(w http.ResponseWriter, r *http.Request) {
	id := model.TournamentID(mux.Vars(r)["id"])

	var req request.CutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Size < 1 {
		WriteError(w, NewInvalidRequestError("size must be at least 1"))
		return
	}

	if _, err := h.controller.Apply(r.Context(), id, model.CutOp{Size: req.Size}); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// PruneDecks handles POST /api/v1/tournaments/{id}/prune/decks
func (h *TournamentHandler) PruneDecks(w http.ResponseWriter, r *http.Request) {
	id := model.TournamentID(mux.Vars(r)["id"])

	if _, err := h.controller.Apply(r.Context(), id, model.PruneDecksOp{}); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// PrunePlayers handles POST /api/v1/tournaments/{id}/prune/players
func (h *TournamentHandler) PrunePlayers(w http.ResponseWriter, r *http.Request) {
	id := model.TournamentID(mux.Vars(r)["id"])

	if _, err := h.controller.Apply(r.Context(), id, model.PrunePlayersOp{}); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

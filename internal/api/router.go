package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/arbiter-gg/arbiter/internal/api/handler"
	"github.com/arbiter-gg/arbiter/internal/api/middleware"
	"github.com/arbiter-gg/arbiter/internal/dependencies/clock"
	"github.com/arbiter-gg/arbiter/internal/services/tournament"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger               *slog.Logger
	TournamentController tournament.ControllerInterface
	Clock                clock.Clock
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	tournamentHandler := handler.NewTournamentHandler(cfg.TournamentController)
	playerHandler := handler.NewPlayerHandler(cfg.TournamentController, cfg.Clock)
	roundHandler := handler.NewRoundHandler(cfg.TournamentController, cfg.Clock)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Tournament routes
	api.HandleFunc("/tournaments", tournamentHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/tournaments", tournamentHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/tournaments/{id}", tournamentHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/tournaments/{id}/start", tournamentHandler.Start).Methods(http.MethodPost)
	api.HandleFunc("/tournaments/{id}/freeze", tournamentHandler.Freeze).Methods(http.MethodPost)
	api.HandleFunc("/tournaments/{id}/thaw", tournamentHandler.Thaw).Methods(http.MethodPost)
	api.HandleFunc("/tournaments/{id}/end", tournamentHandler.End).Methods(http.MethodPost)
	api.HandleFunc("/tournaments/{id}/cancel", tournamentHandler.Cancel).Methods(http.MethodPost)
	api.HandleFunc("/tournaments/{id}/registration", tournamentHandler.UpdateRegistration).Methods(http.MethodPatch)
	api.HandleFunc("/tournaments/{id}/settings", tournamentHandler.UpdateSettings).Methods(http.MethodPatch)
	api.HandleFunc("/tournaments/{id}/standings", tournamentHandler.Standings).Methods(http.MethodGet)
	api.HandleFunc("/tournaments/{id}/cut", tournamentHandler.Cut).Methods(http.MethodPost)
	api.HandleFunc("/tournaments/{id}/prune/decks", tournamentHandler.PruneDecks).Methods(http.MethodPost)
	api.HandleFunc("/tournaments/{id}/prune/players", tournamentHandler.PrunePlayers).Methods(http.MethodPost)

	// Player routes
	api.HandleFunc("/tournaments/{id}/players", playerHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/tournaments/{id}/players", playerHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/tournaments/{id}/players/{player}", playerHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/tournaments/{id}/players/{player}", playerHandler.Drop).Methods(http.MethodDelete)
	api.HandleFunc("/tournaments/{id}/players/{player}/check-in", playerHandler.CheckIn).Methods(http.MethodPost)
	api.HandleFunc("/tournaments/{id}/players/{player}/ready", playerHandler.Ready).Methods(http.MethodPost)
	api.HandleFunc("/tournaments/{id}/players/{player}/unready", playerHandler.Unready).Methods(http.MethodPost)
	api.HandleFunc("/tournaments/{id}/players/{player}/confirm", playerHandler.Confirm).Methods(http.MethodPost)
	api.HandleFunc("/tournaments/{id}/players/{player}/bye", playerHandler.Bye).Methods(http.MethodPost)
	api.HandleFunc("/tournaments/{id}/players/{player}/gamer-tag", playerHandler.SetGamerTag).Methods(http.MethodPut)
	api.HandleFunc("/tournaments/{id}/players/{player}/decks", playerHandler.AddDeck).Methods(http.MethodPost)
	api.HandleFunc("/tournaments/{id}/players/{player}/decks/{deck}", playerHandler.RemoveDeck).Methods(http.MethodDelete)
	api.HandleFunc("/tournaments/{id}/players/{player}/active-round", playerHandler.ActiveRound).Methods(http.MethodGet)

	// Round routes
	api.HandleFunc("/tournaments/{id}/rounds", roundHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/tournaments/{id}/rounds", roundHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/tournaments/{id}/rounds/pair", roundHandler.Pair).Methods(http.MethodPost)
	api.HandleFunc("/tournaments/{id}/rounds/{round}", roundHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/tournaments/{id}/rounds/{round}", roundHandler.Remove).Methods(http.MethodDelete)
	api.HandleFunc("/tournaments/{id}/rounds/{round}/result", roundHandler.RecordResult).Methods(http.MethodPost)
	api.HandleFunc("/tournaments/{id}/rounds/{round}/extension", roundHandler.Extension).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbiter-gg/arbiter/internal/api"
	"github.com/arbiter-gg/arbiter/internal/api/apierr"
	"github.com/arbiter-gg/arbiter/internal/api/response"
	"github.com/arbiter-gg/arbiter/internal/factory"
	"github.com/arbiter-gg/arbiter/internal/storage/memory"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	storage *memory.Storage
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// API tests are integration tests - use production factory with a real clock
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:               logger,
		TournamentController: app.TournamentController,
		Clock:                app.Clock,
	})

	return &testServer{
		handler: router,
		storage: app.Storage.(*memory.Storage),
	}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

// createTournament creates a tournament and returns its id
func (ts *testServer) createTournament(t *testing.T, preset, name string) string {
	t.Helper()

	body := map[string]string{"preset": preset, "name": name, "format": "standard"}
	rr := ts.request(http.MethodPost, "/api/v1/tournaments", body)
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp response.Tournament
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.ID
}

func (ts *testServer) registerPlayer(t *testing.T, id, name string) {
	t.Helper()

	rr := ts.request(http.MethodPost, fmt.Sprintf("/api/v1/tournaments/%s/players", id), map[string]string{"name": name})
	require.Equal(t, http.StatusCreated, rr.Code)
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestCreateTournament(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]string{"preset": "swiss", "name": "Friday Night", "format": "standard"}
	rr := ts.request(http.MethodPost, "/api/v1/tournaments", body)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp response.Tournament
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Friday Night", resp.Name)
	assert.Equal(t, "planned", resp.Status)
	assert.Equal(t, "swiss", resp.Pairing.Kind)
	assert.True(t, resp.RegOpen)
	assert.NotEmpty(t, resp.ID)
}

func TestCreateTournamentRequiresName(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]string{"preset": "swiss", "format": "standard"}
	rr := ts.request(http.MethodPost, "/api/v1/tournaments", body)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetUnknownTournament(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/tournaments/nope", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	var resp apierr.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "TOURNAMENT_NOT_FOUND", resp.Error.Code)
}

func TestStatusTransitions(t *testing.T) {
	ts := newTestServer(t)
	id := ts.createTournament(t, "swiss", "Weekly")

	for _, step := range []struct {
		verb   string
		status string
	}{
		{"start", "started"},
		{"freeze", "frozen"},
		{"thaw", "started"},
		{"end", "ended"},
	} {
		rr := ts.request(http.MethodPost, fmt.Sprintf("/api/v1/tournaments/%s/%s", id, step.verb), nil)
		require.Equal(t, http.StatusOK, rr.Code, step.verb)

		var resp response.Tournament
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, step.status, resp.Status)
	}

	// Ended tournaments reject further transitions
	rr := ts.request(http.MethodPost, fmt.Sprintf("/api/v1/tournaments/%s/start", id), nil)
	assert.Equal(t, http.StatusConflict, rr.Code)

	var errResp apierr.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
	assert.Equal(t, "INCORRECT_STATUS", errResp.Error.Code)
	assert.Equal(t, 1, errResp.Error.StatusCode)
}

func TestRegisterAndGetPlayerByName(t *testing.T) {
	ts := newTestServer(t)
	id := ts.createTournament(t, "swiss", "Weekly")

	ts.registerPlayer(t, id, "alice")

	rr := ts.request(http.MethodGet, fmt.Sprintf("/api/v1/tournaments/%s/players/alice", id), nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Name)
	assert.Equal(t, "registered", resp.Status)
}

func TestRegistrationClosed(t *testing.T) {
	ts := newTestServer(t)
	id := ts.createTournament(t, "swiss", "Weekly")

	rr := ts.request(http.MethodPatch, fmt.Sprintf("/api/v1/tournaments/%s/registration", id), map[string]bool{"open": false})
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodPost, fmt.Sprintf("/api/v1/tournaments/%s/players", id), map[string]string{"name": "alice"})
	assert.Equal(t, http.StatusConflict, rr.Code)

	var resp apierr.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "REGISTRATION_CLOSED", resp.Error.Code)
}

func TestUpdateSettingsPartition(t *testing.T) {
	ts := newTestServer(t)
	id := ts.createTournament(t, "swiss", "Weekly")

	batch := map[string]string{
		"format":         "legacy",
		"maxDeckCount":   "banana",
		"fluidMatchSize": "4",
	}
	rr := ts.request(http.MethodPatch, fmt.Sprintf("/api/v1/tournaments/%s/settings", id), batch)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.SettingsResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp.Accepted, "format")
	assert.Contains(t, resp.Errored, "maxDeckCount")
	// Fluid settings do not apply to a swiss tournament
	assert.Contains(t, resp.Rejected, "fluidMatchSize")

	getRR := ts.request(http.MethodGet, fmt.Sprintf("/api/v1/tournaments/%s", id), nil)
	var tResp response.Tournament
	require.NoError(t, json.Unmarshal(getRR.Body.Bytes(), &tResp))
	assert.Equal(t, "legacy", tResp.Format)
}

func TestSwissRoundLifecycle(t *testing.T) {
	ts := newTestServer(t)
	id := ts.createTournament(t, "swiss", "Weekly")

	for _, name := range []string{"alice", "bob"} {
		ts.registerPlayer(t, id, name)
	}
	rr := ts.request(http.MethodPost, fmt.Sprintf("/api/v1/tournaments/%s/start", id), nil)
	require.Equal(t, http.StatusOK, rr.Code)

	// Pair a round
	rr = ts.request(http.MethodPost, fmt.Sprintf("/api/v1/tournaments/%s/rounds/pair", id), nil)
	require.Equal(t, http.StatusCreated, rr.Code)

	var effect response.Effect
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &effect))
	require.Len(t, effect.Rounds, 1)

	// Round is reachable by match number
	rr = ts.request(http.MethodGet, fmt.Sprintf("/api/v1/tournaments/%s/rounds/1", id), nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var round response.Round
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &round))
	assert.Equal(t, effect.Rounds[0], round.ID)
	assert.Len(t, round.Players, 2)
	assert.Equal(t, "open", round.Status)
	assert.Positive(t, round.TimeLeft)

	// Record alice winning 2-0
	body := map[string]any{"player": "alice", "wins": 2}
	rr = ts.request(http.MethodPost, fmt.Sprintf("/api/v1/tournaments/%s/rounds/1/result", id), body)
	require.Equal(t, http.StatusOK, rr.Code)

	// Both players confirm
	for _, name := range []string{"alice", "bob"} {
		rr = ts.request(http.MethodPost, fmt.Sprintf("/api/v1/tournaments/%s/players/%s/confirm", id, name), nil)
		require.Equal(t, http.StatusOK, rr.Code)
	}

	// Standings have alice on top with a match win
	rr = ts.request(http.MethodGet, fmt.Sprintf("/api/v1/tournaments/%s/standings", id), nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var standings response.Standings
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &standings))
	require.Len(t, standings.Entries, 2)
	assert.Equal(t, 1, standings.Entries[0].Rank)
	assert.Equal(t, 3.0, standings.Entries[0].Score.MatchPoints)
}

func TestPairBlockedByActiveRound(t *testing.T) {
	ts := newTestServer(t)
	id := ts.createTournament(t, "swiss", "Weekly")

	for _, name := range []string{"alice", "bob"} {
		ts.registerPlayer(t, id, name)
	}
	ts.request(http.MethodPost, fmt.Sprintf("/api/v1/tournaments/%s/start", id), nil)
	ts.request(http.MethodPost, fmt.Sprintf("/api/v1/tournaments/%s/rounds/pair", id), nil)

	rr := ts.request(http.MethodPost, fmt.Sprintf("/api/v1/tournaments/%s/rounds/pair", id), nil)
	assert.Equal(t, http.StatusConflict, rr.Code)

	var resp apierr.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ACTIVE_MATCHES", resp.Error.Code)
}

func TestFluidReadySeatsPlayers(t *testing.T) {
	ts := newTestServer(t)
	id := ts.createTournament(t, "fluid", "Casual")

	for _, name := range []string{"alice", "bob"} {
		ts.registerPlayer(t, id, name)
	}
	ts.request(http.MethodPost, fmt.Sprintf("/api/v1/tournaments/%s/start", id), nil)

	rr := ts.request(http.MethodPost, fmt.Sprintf("/api/v1/tournaments/%s/players/alice/ready", id), nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var effect response.Effect
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &effect))
	assert.Empty(t, effect.Rounds)

	rr = ts.request(http.MethodPost, fmt.Sprintf("/api/v1/tournaments/%s/players/bob/ready", id), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &effect))
	assert.Len(t, effect.Rounds, 1)
}

func TestDeckLimits(t *testing.T) {
	ts := newTestServer(t)
	id := ts.createTournament(t, "swiss", "Weekly")
	ts.registerPlayer(t, id, "alice")

	deckPath := fmt.Sprintf("/api/v1/tournaments/%s/players/alice/decks", id)
	for _, name := range []string{"main", "backup"} {
		rr := ts.request(http.MethodPost, deckPath, map[string]any{"name": name, "cards": map[string]int{"island": 20}})
		require.Equal(t, http.StatusOK, rr.Code)
	}

	// Default maximum is two decks
	rr := ts.request(http.MethodPost, deckPath, map[string]any{"name": "third", "cards": map[string]int{}})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp apierr.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_DECK_COUNT", resp.Error.Code)

	// Removing one frees a slot
	rr = ts.request(http.MethodDelete, deckPath+"/backup", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, deckPath, map[string]any{"name": "third", "cards": map[string]int{}})
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestGiveByeAndStandings(t *testing.T) {
	ts := newTestServer(t)
	id := ts.createTournament(t, "swiss", "Weekly")
	ts.registerPlayer(t, id, "alice")
	ts.request(http.MethodPost, fmt.Sprintf("/api/v1/tournaments/%s/start", id), nil)

	rr := ts.request(http.MethodPost, fmt.Sprintf("/api/v1/tournaments/%s/players/alice/bye", id), nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodGet, fmt.Sprintf("/api/v1/tournaments/%s/standings", id), nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var standings response.Standings
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &standings))
	require.Len(t, standings.Entries, 1)
	assert.Equal(t, 3.0, standings.Entries[0].Score.MatchPoints)
}

func TestDropPlayer(t *testing.T) {
	ts := newTestServer(t)
	id := ts.createTournament(t, "swiss", "Weekly")
	ts.registerPlayer(t, id, "alice")

	rr := ts.request(http.MethodDelete, fmt.Sprintf("/api/v1/tournaments/%s/players/alice", id), nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodGet, fmt.Sprintf("/api/v1/tournaments/%s/players/alice", id), nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "dropped", resp.Status)
}

func TestListTournaments(t *testing.T) {
	ts := newTestServer(t)
	a := ts.createTournament(t, "swiss", "First")
	b := ts.createTournament(t, "fluid", "Second")

	rr := ts.request(http.MethodGet, "/api/v1/tournaments", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.TournamentList
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.ElementsMatch(t, []string{a, b}, resp.Tournaments)
}

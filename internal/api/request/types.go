package request

// CreateTournamentRequest is the request body for creating a tournament
type CreateTournamentRequest struct {
	Preset string `json:"preset"`
	Name   string `json:"name"`
	Format string `json:"format"`
}

// UpdateRegistrationRequest is the request body for opening or closing
// registration
type UpdateRegistrationRequest struct {
	Open bool `json:"open"`
}

// RegisterPlayerRequest is the request body for registering a player
type RegisterPlayerRequest struct {
	Name string `json:"name"`
}

// SetGamerTagRequest is the request body for setting a player's gamer tag
type SetGamerTagRequest struct {
	Tag string `json:"tag"`
}

// AddDeckRequest is the request body for registering a deck
type AddDeckRequest struct {
	Name  string         `json:"name"`
	Cards map[string]int `json:"cards"`
}

// RecordResultRequest is the request body for recording part of a round's
// outcome: either a drawn game or a player's game-win count
type RecordResultRequest struct {
	Draw   bool   `json:"draw,omitempty"`
	Player string `json:"player,omitempty"`
	Wins   int    `json:"wins,omitempty"`
}

// CreateRoundRequest is the request body for manually creating a round.
// Players may be ids or display names.
type CreateRoundRequest struct {
	Players []string `json:"players"`
}

// TimeExtensionRequest is the request body for extending a round clock
type TimeExtensionRequest struct {
	ExtensionSeconds int `json:"extension_seconds"`
}

// CutRequest is the request body for cutting standings to the top N
type CutRequest struct {
	Size int `json:"size"`
}

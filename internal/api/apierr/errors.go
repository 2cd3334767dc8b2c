package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/arbiter-gg/arbiter/internal/model"
	"github.com/arbiter-gg/arbiter/internal/services/tournament"
	"github.com/arbiter-gg/arbiter/internal/statuscode"
)

// APIError represents an API error response. StatusCode carries the canonical
// small-integer code so non-HTTP callers can switch on it without parsing the
// string code.
type APIError struct {
	Code       string `json:"code"`
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest            = "INVALID_REQUEST"
	CodeIncorrectStatus           = "INCORRECT_STATUS"
	CodePlayerNotFound            = "PLAYER_NOT_FOUND"
	CodeRoundNotFound             = "ROUND_NOT_FOUND"
	CodeDeckNotFound              = "DECK_NOT_FOUND"
	CodeRegistrationClosed        = "REGISTRATION_CLOSED"
	CodePlayerNotInRound          = "PLAYER_NOT_IN_ROUND"
	CodeNoActiveRound             = "NO_ACTIVE_ROUND"
	CodeInvalidBye                = "INVALID_BYE"
	CodeActiveMatches             = "ACTIVE_MATCHES"
	CodePlayerNotCheckedIn        = "PLAYER_NOT_CHECKED_IN"
	CodeIncompatiblePairingSystem = "INCOMPATIBLE_PAIRING_SYSTEM"
	CodeIncompatibleScoringSystem = "INCOMPATIBLE_SCORING_SYSTEM"
	CodeInvalidDeckCount          = "INVALID_DECK_COUNT"
	CodeTournamentNotFound        = "TOURNAMENT_NOT_FOUND"
	CodeInternalError             = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	code := statuscode.FromError(err)

	switch {
	case errors.Is(err, model.ErrTournamentNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeTournamentNotFound, code, "Tournament not found"}}
	case errors.Is(err, model.ErrPlayerLookup):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, code, "Player not found"}}
	case errors.Is(err, model.ErrRoundLookup):
		return &httpError{http.StatusNotFound, APIError{CodeRoundNotFound, code, "Round not found"}}
	case errors.Is(err, model.ErrDeckLookup):
		return &httpError{http.StatusNotFound, APIError{CodeDeckNotFound, code, "Deck not found"}}
	case errors.Is(err, model.ErrNoActiveRound):
		return &httpError{http.StatusNotFound, APIError{CodeNoActiveRound, code, "No active round"}}

	case errors.Is(err, model.ErrIncorrectStatus):
		return &httpError{http.StatusConflict, APIError{CodeIncorrectStatus, code, "Operation not allowed in the tournament's current status"}}
	case errors.Is(err, model.ErrRegClosed):
		return &httpError{http.StatusConflict, APIError{CodeRegistrationClosed, code, "Registration is closed"}}
	case errors.Is(err, model.ErrActiveMatches):
		return &httpError{http.StatusConflict, APIError{CodeActiveMatches, code, "Active rounds must be resolved first"}}
	case errors.Is(err, model.ErrInvalidBye):
		return &httpError{http.StatusConflict, APIError{CodeInvalidBye, code, "Player is not eligible for a bye"}}
	case errors.Is(err, model.ErrPlayerNotCheckedIn):
		return &httpError{http.StatusConflict, APIError{CodePlayerNotCheckedIn, code, "Not every player has checked in"}}

	case errors.Is(err, model.ErrPlayerNotInRound):
		return &httpError{http.StatusBadRequest, APIError{CodePlayerNotInRound, code, "Player is not in this round"}}
	case errors.Is(err, model.ErrIncompatiblePairingSystem):
		return &httpError{http.StatusBadRequest, APIError{CodeIncompatiblePairingSystem, code, "Setting does not match the configured pairing system"}}
	case errors.Is(err, model.ErrIncompatibleScoringSystem):
		return &httpError{http.StatusBadRequest, APIError{CodeIncompatibleScoringSystem, code, "Setting does not match the configured scoring system"}}
	case errors.Is(err, model.ErrInvalidDeckCount):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidDeckCount, code, "Deck count bounds violated"}}

	case errors.Is(err, tournament.ErrBadName):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, statuscode.Unknown, "Tournament name must not be empty"}}
	case errors.Is(err, tournament.ErrBadFormat):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, statuscode.Unknown, "Tournament format must not be empty"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, statuscode.Unknown, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, statuscode.Unknown, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, statuscode.Unknown, "Internal server error"}}
}

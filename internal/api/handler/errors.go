package handler

import (
	"net/http"

	"github.com/arbiter-gg/arbiter/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest            = apierr.CodeInvalidRequest
	CodeIncorrectStatus           = apierr.CodeIncorrectStatus
	CodePlayerNotFound            = apierr.CodePlayerNotFound
	CodeRoundNotFound             = apierr.CodeRoundNotFound
	CodeDeckNotFound              = apierr.CodeDeckNotFound
	CodeRegistrationClosed        = apierr.CodeRegistrationClosed
	CodePlayerNotInRound          = apierr.CodePlayerNotInRound
	CodeNoActiveRound             = apierr.CodeNoActiveRound
	CodeInvalidBye                = apierr.CodeInvalidBye
	CodeActiveMatches             = apierr.CodeActiveMatches
	CodePlayerNotCheckedIn        = apierr.CodePlayerNotCheckedIn
	CodeIncompatiblePairingSystem = apierr.CodeIncompatiblePairingSystem
	CodeIncompatibleScoringSystem = apierr.CodeIncompatibleScoringSystem
	CodeInvalidDeckCount          = apierr.CodeInvalidDeckCount
	CodeTournamentNotFound        = apierr.CodeTournamentNotFound
	CodeInternalError             = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}

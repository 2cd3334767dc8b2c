package handler

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/arbiter-gg/arbiter/internal/model"
)

// playerIdent turns a path segment into a player identifier. A well-formed
// uuid is treated as a direct id, anything else as a display name.
func playerIdent(s string) model.PlayerIdentifier {
	if uuid.Validate(s) == nil {
		return model.PlayerByID(model.PlayerID(s))
	}
	return model.PlayerByName(s)
}

// roundIdent turns a path segment into a round identifier. A plain integer
// is a match number, a well-formed uuid a direct id.
func roundIdent(s string) (model.RoundIdentifier, error) {
	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		return model.RoundByNumber(n), nil
	}
	if uuid.Validate(s) == nil {
		return model.RoundByID(model.RoundID(s)), nil
	}
	return model.RoundIdentifier{}, NewInvalidRequestError("round must be a match number or round id")
}

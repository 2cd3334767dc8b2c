package settings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arbiter-gg/arbiter/internal/model"
)

// Setting name constants, as they appear in raw settings batches
const (
	KeyFormat              = "format"
	KeyStartingTableNumber = "startingTableNumber"
	KeyUseTableNumbers     = "useTableNumbers"
	KeyMinDeckCount        = "minDeckCount"
	KeyMaxDeckCount        = "maxDeckCount"
	KeyRequireCheckIn      = "requireCheckIn"
	KeyRequireDeckReg      = "requireDeckReg"

	KeySwissMatchSize  = "swissMatchSize"
	KeySwissDoCheckIns = "swissDoCheckIns"
	KeyFluidMatchSize  = "fluidMatchSize"

	KeyMatchWinPoints     = "matchWinPoints"
	KeyMatchDrawPoints    = "matchDrawPoints"
	KeyMatchLossPoints    = "matchLossPoints"
	KeyGameWinPoints      = "gameWinPoints"
	KeyGameDrawPoints     = "gameDrawPoints"
	KeyGameLossPoints     = "gameLossPoints"
	KeyByePoints          = "byePoints"
	KeyIncludeByes        = "includeByes"
	KeyIncludeMatchPoints = "includeMatchPoints"
	KeyIncludeGamePoints  = "includeGamePoints"
	KeyIncludeMwp         = "includeMwp"
	KeyIncludeGwp         = "includeGwp"
	KeyIncludeOppMwp      = "includeOppMwp"
	KeyIncludeOppGwp      = "includeOppGwp"
)

// Parse turns a raw named value into its typed setting. Unknown keys and
// unparseable values return ErrMalformed.
func Parse(key, value string) (model.Setting, error) {
	switch key {
	case KeyFormat:
		return model.FormatSetting(value), nil
	case KeyStartingTableNumber:
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrMalformed, key, value)
		}
		return model.StartingTableNumberSetting(n), nil
	case KeyUseTableNumbers:
		return parseBoolSetting(key, value, func(b bool) model.Setting { return model.UseTableNumbersSetting(b) })
	case KeyMinDeckCount:
		return parseIntSetting(key, value, func(n int) model.Setting { return model.MinDeckCountSetting(n) })
	case KeyMaxDeckCount:
		return parseIntSetting(key, value, func(n int) model.Setting { return model.MaxDeckCountSetting(n) })
	case KeyRequireCheckIn:
		return parseBoolSetting(key, value, func(b bool) model.Setting { return model.RequireCheckInSetting(b) })
	case KeyRequireDeckReg:
		return parseBoolSetting(key, value, func(b bool) model.Setting { return model.RequireDeckRegSetting(b) })

	case KeySwissMatchSize:
		return parseIntSetting(key, value, func(n int) model.Setting { return model.SwissMatchSizeSetting(n) })
	case KeySwissDoCheckIns:
		return parseBoolSetting(key, value, func(b bool) model.Setting { return model.SwissDoCheckInsSetting(b) })
	case KeyFluidMatchSize:
		return parseIntSetting(key, value, func(n int) model.Setting { return model.FluidMatchSizeSetting(n) })

	case KeyMatchWinPoints:
		return parseFloatSetting(key, value, func(f float64) model.Setting { return model.MatchWinPointsSetting(f) })
	case KeyMatchDrawPoints:
		return parseFloatSetting(key, value, func(f float64) model.Setting { return model.MatchDrawPointsSetting(f) })
	case KeyMatchLossPoints:
		return parseFloatSetting(key, value, func(f float64) model.Setting { return model.MatchLossPointsSetting(f) })
	case KeyGameWinPoints:
		return parseFloatSetting(key, value, func(f float64) model.Setting { return model.GameWinPointsSetting(f) })
	case KeyGameDrawPoints:
		return parseFloatSetting(key, value, func(f float64) model.Setting { return model.GameDrawPointsSetting(f) })
	case KeyGameLossPoints:
		return parseFloatSetting(key, value, func(f float64) model.Setting { return model.GameLossPointsSetting(f) })
	case KeyByePoints:
		return parseFloatSetting(key, value, func(f float64) model.Setting { return model.ByePointsSetting(f) })
	case KeyIncludeByes:
		return parseBoolSetting(key, value, func(b bool) model.Setting { return model.IncludeByesSetting(b) })
	case KeyIncludeMatchPoints:
		return parseBoolSetting(key, value, func(b bool) model.Setting { return model.IncludeMatchPointsSetting(b) })
	case KeyIncludeGamePoints:
		return parseBoolSetting(key, value, func(b bool) model.Setting { return model.IncludeGamePointsSetting(b) })
	case KeyIncludeMwp:
		return parseBoolSetting(key, value, func(b bool) model.Setting { return model.IncludeMwpSetting(b) })
	case KeyIncludeGwp:
		return parseBoolSetting(key, value, func(b bool) model.Setting { return model.IncludeGwpSetting(b) })
	case KeyIncludeOppMwp:
		return parseBoolSetting(key, value, func(b bool) model.Setting { return model.IncludeOppMwpSetting(b) })
	case KeyIncludeOppGwp:
		return parseBoolSetting(key, value, func(b bool) model.Setting { return model.IncludeOppGwpSetting(b) })
	}
	return nil, fmt.Errorf("%w: unknown setting %q", ErrMalformed, key)
}

func parseIntSetting(key, value string, wrap func(int) model.Setting) (model.Setting, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q", ErrMalformed, key, value)
	}
	return wrap(n), nil
}

func parseFloatSetting(key, value string, wrap func(float64) model.Setting) (model.Setting, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q", ErrMalformed, key, value)
	}
	return wrap(f), nil
}

// parseBoolSetting accepts 1/t/true and 0/f/false, case-insensitively
func parseBoolSetting(key, value string, wrap func(bool) model.Setting) (model.Setting, error) {
	switch strings.ToLower(value) {
	case "1", "t", "true":
		return wrap(true), nil
	case "0", "f", "false":
		return wrap(false), nil
	}
	return nil, fmt.Errorf("%w: %s=%q", ErrMalformed, key, value)
}

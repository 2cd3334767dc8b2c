package settings

import (
	"errors"
	"testing"

	"github.com/arbiter-gg/arbiter/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNotPermitted = errors.New("not permitted")

// parseOnlyApplier accepts anything that parses
func parseOnlyApplier(key, value string) error {
	_, err := Parse(key, value)
	return err
}

func TestApplyAllPartitionsAreExhaustive(t *testing.T) {
	batch := Settings{
		"minDeckCount":   "3",
		"maxDeckCount":   "bad",
		"format":         "Pioneer",
		"requireCheckIn": "maybe",
	}

	result := ApplyAll(batch, parseOnlyApplier)

	total := 0
	for _, part := range []Settings{result.Accepted, result.Rejected, result.Errored} {
		total += len(part)
		for key := range part {
			_, inBatch := batch[key]
			assert.True(t, inBatch, "partitioned key %q not in batch", key)
		}
	}
	assert.Equal(t, len(batch), total)

	for key := range result.Accepted {
		_, rejected := result.Rejected[key]
		_, errored := result.Errored[key]
		assert.False(t, rejected || errored, "key %q in multiple partitions", key)
	}
}

func TestApplyAllClassifiesMalformedAsErrored(t *testing.T) {
	result := ApplyAll(Settings{
		"minDeckCount": "3",
		"maxDeckCount": "bad",
	}, parseOnlyApplier)

	assert.Contains(t, result.Accepted, "minDeckCount")
	assert.Contains(t, result.Errored, "maxDeckCount")
	assert.Empty(t, result.Rejected)
}

func TestApplyAllClassifiesNotPermittedAsRejected(t *testing.T) {
	result := ApplyAll(Settings{
		"fluidMatchSize": "4",
	}, func(key, value string) error {
		if _, err := Parse(key, value); err != nil {
			return err
		}
		return errNotPermitted
	})

	assert.Contains(t, result.Rejected, "fluidMatchSize")
	assert.Empty(t, result.Accepted)
	assert.Empty(t, result.Errored)
}

func TestCollectLeavesSourceUntouched(t *testing.T) {
	src := Settings{"a": "1", "b": "2", "c": "3"}

	out := Collect(src, "a", "c", "missing")

	assert.Equal(t, Settings{"a": "1", "c": "3"}, out)
	assert.Len(t, src, 3)
}

func TestDivideRemovesReturnedKeys(t *testing.T) {
	src := Settings{"a": "1", "b": "2", "c": "3"}

	out := Divide(src, "a", "c", "missing")

	assert.Equal(t, Settings{"a": "1", "c": "3"}, out)
	assert.Equal(t, Settings{"b": "2"}, src)
}

func TestParseTypedSettings(t *testing.T) {
	tests := []struct {
		key   string
		value string
		want  model.Setting
	}{
		{"format", "Modern", model.FormatSetting("Modern")},
		{"startingTableNumber", "10", model.StartingTableNumberSetting(10)},
		{"useTableNumbers", "true", model.UseTableNumbersSetting(true)},
		{"minDeckCount", "1", model.MinDeckCountSetting(1)},
		{"maxDeckCount", "4", model.MaxDeckCountSetting(4)},
		{"requireCheckIn", "1", model.RequireCheckInSetting(true)},
		{"requireDeckReg", "f", model.RequireDeckRegSetting(false)},
		{"swissMatchSize", "4", model.SwissMatchSizeSetting(4)},
		{"swissDoCheckIns", "T", model.SwissDoCheckInsSetting(true)},
		{"fluidMatchSize", "2", model.FluidMatchSizeSetting(2)},
		{"matchWinPoints", "3", model.MatchWinPointsSetting(3)},
		{"byePoints", "1.5", model.ByePointsSetting(1.5)},
		{"includeOppGwp", "0", model.IncludeOppGwpSetting(false)},
	}

	for _, tc := range tests {
		got, err := Parse(tc.key, tc.value)
		require.NoError(t, err, tc.key)
		assert.Equal(t, tc.want, got, tc.key)
	}
}

func TestParseRejectsUnknownAndMalformed(t *testing.T) {
	_, err := Parse("noSuchSetting", "1")
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = Parse("minDeckCount", "three")
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = Parse("requireCheckIn", "yes")
	assert.ErrorIs(t, err, ErrMalformed)
}

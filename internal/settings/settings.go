// Package settings provides a generic key/value settings batch and the
// partitioning logic for applying one: every key in a batch ends up in
// exactly one of the accepted, rejected, or errored sets.
package settings

import "errors"

// ErrMalformed marks a setting value that could not be parsed at all.
// Appliers wrap or return it to land a key in the errored partition; any
// other error lands the key in the rejected partition.
var ErrMalformed = errors.New("malformed setting value")

// Settings maps setting names to raw string values
type Settings map[string]string

// Result partitions an applied batch. The three sets are pairwise disjoint
// and together cover every key of the batch.
type Result struct {
	Accepted Settings `json:"accepted"`
	Rejected Settings `json:"rejected"`
	Errored  Settings `json:"errored"`
}

// Applier attempts to apply a single named setting to some target. A nil
// return means accepted; ErrMalformed means the value was unparseable; any
// other error means the setting is valid but not permitted right now.
type Applier func(key, value string) error

// ApplyAll applies each setting in the batch independently and reports where
// each key landed. Keys are independent so application order does not matter.
func ApplyAll(batch Settings, apply Applier) Result {
	result := Result{
		Accepted: make(Settings),
		Rejected: make(Settings),
		Errored:  make(Settings),
	}
	for key, value := range batch {
		switch err := apply(key, value); {
		case err == nil:
			result.Accepted[key] = value
		case errors.Is(err, ErrMalformed):
			result.Errored[key] = value
		default:
			result.Rejected[key] = value
		}
	}
	return result
}

// Collect copies the named keys out of src, leaving src untouched. Keys not
// present in src are simply absent from the result.
func Collect(src Settings, keys ...string) Settings {
	out := make(Settings)
	for _, key := range keys {
		if value, ok := src[key]; ok {
			out[key] = value
		}
	}
	return out
}

// Divide removes the named keys from src and returns them. Keys not present
// in src are simply absent from the result.
func Divide(src Settings, keys ...string) Settings {
	out := make(Settings)
	for _, key := range keys {
		if value, ok := src[key]; ok {
			out[key] = value
			delete(src, key)
		}
	}
	return out
}

// Package codec is the boundary between raw stored strings and typed
// records. Malformed data is logged and replaced with a fallback value,
// never surfaced as an error: one corrupted record must not take the
// application down with it.
package codec

import (
	"encoding/json"

	"github.com/rs/zerolog/log"
)

// Decode parses raw into a T. ok is false when the payload does not parse;
// the failure is logged with the originating key for diagnostics.
func Decode[T any](raw, key string) (T, bool) {
	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("discarding corrupted stored record")
		var zero T
		return zero, false
	}
	return value, true
}

// SliceOr decodes a stored collection. An absent key or a corrupted payload
// both yield an empty (non-nil) slice.
func SliceOr[T any](raw string, present bool, key string) []T {
	if !present {
		return []T{}
	}
	values, ok := Decode[[]T](raw, key)
	if !ok || values == nil {
		return []T{}
	}
	return values
}

// Encode is the write-side counterpart of Decode.
func Encode(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

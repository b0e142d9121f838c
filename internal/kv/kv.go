package kv

import "context"

// Store is the shared string-keyed substrate every component persists
// through. Get reports presence separately from errors: a missing key is
// ("", false, nil), not an error. Implementations provide durability only;
// read-modify-write sequences are serialized by the caller.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

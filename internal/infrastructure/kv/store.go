// Package kv implements the key-value backing store contract shared by all
// persistence in the system: fixed keys holding JSON-serialized records,
// read-modify-written as a whole on every mutation. Three adapters satisfy
// the Store port (in-memory, Redis, MongoDB), and the repositories in this
// package layer the catalog, account, session, and theme contracts on top.
package kv

import (
	"context"
	"errors"
)

// Backing store keys. These names are a compatibility contract with the
// original data layout and must not change.
const (
	KeyBooks       = "books"
	KeyUser        = "user"
	KeyRole        = "role"
	KeyTheme       = "theme"
	KeyCustomUsers = "custom_users"
)

// ErrKeyNotFound reports an absent key. Adapters must return it (possibly
// wrapped) so callers can distinguish absence from backend failure.
var ErrKeyNotFound = errors.New("kv: key not found")

// Store is the minimal synchronous key-value port. Delete on an absent key
// is a no-op, not an error.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

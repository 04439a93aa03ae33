// Package store provides the persistent key-value store backing the
// point-size cache.
//
// The store maps opaque string keys to integer point sizes. Three backends
// are provided:
//   - sqlite: single-file embedded database, the default for CLI runs
//   - memory: in-process map, used for tests and --no-cache runs
//   - redis: shared backend for batch workers spread across machines
//
// All backends share upsert semantics: Put inserts a missing key and
// replaces an existing one, and never fails on a duplicate key. Get reports
// a missing key as absent, not as an error.
package store

import "context"

// Store is the interface for point-size persistence backends.
type Store interface {
	// EnsureTable creates the backing table/namespace if it does not
	// exist. Idempotent, and safe to call concurrently.
	EnsureTable(ctx context.Context) error

	// Get retrieves the value for key.
	// Returns found=false (and no error) when the key is unknown.
	Get(ctx context.Context, key string) (value int, found bool, err error)

	// Put stores value under key, replacing any existing value.
	Put(ctx context.Context, key string, value int) error

	// Close releases the backing resources.
	Close() error
}

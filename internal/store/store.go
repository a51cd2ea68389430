// Package store implements the keyed store: the only persistence mechanism
// of LetsTalk. A Store maps string keys to opaque byte values (JSON documents
// in practice) and offers get, set and remove.
//
// Backends:
//   - MemoryStore: process-local map, used by tests and the "memory" driver.
//   - SQLiteStore: embedded database (modernc.org/sqlite), the default.
//   - PostgresStore: shared database through pgx.
//   - S3Store: one object per key in an S3-compatible bucket.
//
// SQL-backed stores and MemoryStore also implement Batcher, which groups
// several writes so that they either all land or none do.
package store

import "context"

// Store is the keyed store contract.
//
// Get returns (nil, nil) when the key is absent. Remove is idempotent.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// Batcher runs fn against a Store whose writes are committed together.
// If fn returns an error no write made through the batch store survives.
type Batcher interface {
	Batch(ctx context.Context, fn func(ctx context.Context, s Store) error) error
}

// RunBatch calls s.Batch when s supports batching and fn(ctx, s) otherwise.
func RunBatch(ctx context.Context, s Store, fn func(ctx context.Context, s Store) error) error {
	if b, ok := s.(Batcher); ok {
		return b.Batch(ctx, fn)
	}
	return fn(ctx, s)
}

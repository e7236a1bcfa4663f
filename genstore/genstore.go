// Package genstore keeps one generation counter per ledger key.
//
// Sealer stamps every ledger record with the generation it observed and
// Forget bumps it, so a record written by a Seal racing a Forget is rejected
// on the next Open instead of resurrecting the forgotten secret length.
package genstore

import (
	"context"
	"time"
)

// GenStore abstracts where generations live.
// Use LocalGenStore for a single process, RedisGenStore when several
// processes share one ledger provider.
type GenStore interface {
	// Snapshot returns the current generation; missing => 0.
	Snapshot(ctx context.Context, ledgerKey string) (uint64, error)
	// Bump atomically increments and returns the new generation.
	Bump(ctx context.Context, ledgerKey string) (uint64, error)
	// Cleanup prunes old counters if applicable (no-op for Redis).
	Cleanup(retention time.Duration)
	// Close releases resources (no-op ok).
	Close(context.Context) error
}

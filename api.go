package ghostcipher

import (
	"context"
	"time"

	c "github.com/unkn0wn-root/ghostcipher/codec"
	gen "github.com/unkn0wn-root/ghostcipher/genstore"
	pr "github.com/unkn0wn-root/ghostcipher/provider"
)

type SetCostFunc func(key string, raw []byte) int64

// Sealer hides typed values in carrier text and remembers how long each hidden
// suffix is, so Open needs nothing but the combined text.
// V is the caller's value type. Serialization is handled by a pluggable Codec[V].
type Sealer[V any] interface {
	// Seal appends the encoded value to carrier and records its length.
	Seal(ctx context.Context, carrier string, v V) (string, error)
	// Open looks up the length recorded for combined and reveals the value.
	// ok=false means no usable ledger record exists.
	Open(ctx context.Context, combined string) (v V, ok bool, err error)
	// OpenN reveals a value whose encoded length (in bytes) is known to the caller.
	OpenN(ctx context.Context, combined string, n int) (V, error)
	// Forget drops the ledger record for combined.
	Forget(ctx context.Context, combined string) error

	Close(context.Context) error
}

// Options tune a Sealer. Namespace, Provider and Codec are required.
type Options[V any] struct {
	// Required
	Namespace string // isolates ledgers sharing one provider, e.g. "chat", "docs"
	Provider  pr.Provider
	Codec     c.Codec[V]

	Logger          Logger        // nil => NopLogger
	Hooks           Hooks         // nil => NopHooks
	TTL             time.Duration // ledger record lifetime; 0 => 24h
	MaxSecretBytes  int           // encoded value size cap; 0 => unlimited
	ComputeSetCost  SetCostFunc   // default 1
	GenStore        gen.GenStore  // nil => LocalGenStore (in-process)
	CleanupInterval time.Duration // local genstore sweep; 0 => 1h
	GenRetention    time.Duration // local genstore retention; 0 => 30d
}

func New[V any](opts Options[V]) (Sealer[V], error) {
	return newSealer[V](opts)
}

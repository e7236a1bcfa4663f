package ghostcipher

import (
	"context"
	"fmt"
	"math"
	"time"

	c "github.com/unkn0wn-root/ghostcipher/codec"
	gen "github.com/unkn0wn-root/ghostcipher/genstore"
	"github.com/unkn0wn-root/ghostcipher/internal/util"
	"github.com/unkn0wn-root/ghostcipher/internal/wire"
	pr "github.com/unkn0wn-root/ghostcipher/provider"
)

type sealer[V any] struct {
	ns       string
	provider pr.Provider
	codec    c.Codec[V]
	log      Logger
	hooks    Hooks
	gen      gen.GenStore

	ttl            time.Duration
	maxSecret      int
	computeSetCost SetCostFunc
}

var _ Sealer[string] = (*sealer[string])(nil)

func newSealer[V any](opts Options[V]) (*sealer[V], error) {
	if opts.Provider == nil {
		return nil, fmt.Errorf("ghostcipher: provider is required")
	}
	if opts.Codec == nil {
		return nil, fmt.Errorf("ghostcipher: codec is required")
	}
	if opts.Namespace == "" {
		return nil, fmt.Errorf("ghostcipher: namespace is required")
	}
	if opts.MaxSecretBytes < 0 {
		return nil, fmt.Errorf("ghostcipher: negative MaxSecretBytes %d", opts.MaxSecretBytes)
	}

	s := &sealer[V]{
		ns:        opts.Namespace,
		provider:  opts.Provider,
		codec:     opts.Codec,
		maxSecret: opts.MaxSecretBytes,
	}

	// defaults
	s.log = coalesce[Logger](opts.Logger, NopLogger{})
	s.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	s.ttl = coalesce[time.Duration](opts.TTL, defaultTTL)

	if opts.ComputeSetCost != nil {
		s.computeSetCost = opts.ComputeSetCost
	} else {
		s.computeSetCost = func(string, []byte) int64 { return 1 }
	}

	if opts.GenStore != nil {
		s.gen = opts.GenStore
	} else {
		s.gen = gen.NewLocalGenStore(
			coalesce[time.Duration](opts.CleanupInterval, defaultSweep),
			coalesce[time.Duration](opts.GenRetention, defaultGenRetention),
		)
	}

	return s, nil
}

func (s *sealer[V]) Seal(ctx context.Context, carrier string, v V) (string, error) {
	payload, err := s.codec.Encode(v)
	if err != nil {
		return "", err
	}
	if (s.maxSecret > 0 && len(payload) > s.maxSecret) || uint64(len(payload)) > math.MaxUint32 {
		return "", fmt.Errorf("%w: %d bytes", ErrSecretTooLarge, len(payload))
	}

	combined := carrier + EncodeBytes(payload)
	if len(payload) == 0 {
		// nothing hidden; a record would claim the bare carrier as sealed
		return combined, nil
	}
	k := s.ledgerKey(combined)

	obs, err := s.gen.Snapshot(ctx, k)
	if err != nil {
		// without a generation the record could outlive a Forget; skip it
		s.hooks.GenSnapshotError(k, err)
		s.log.Warn("gen snapshot error; seal not recorded", Fields{"key": k, "err": err})
		return combined, nil
	}

	rec := wire.EncodeRecord(wire.Record{Gen: obs, Units: uint32(len(payload))})
	ok, err := s.provider.Set(ctx, k, rec, s.computeSetCost(k, rec), s.ttl)
	if err != nil {
		return "", fmt.Errorf("ghostcipher: ledger set: %w", err)
	}
	if !ok {
		s.hooks.ProviderSetRejected(k)
		s.log.Debug("seal record rejected by provider (pressure)", Fields{"key": k})
	}
	return combined, nil
}

func (s *sealer[V]) Open(ctx context.Context, combined string) (V, bool, error) {
	var zero V
	k := s.ledgerKey(combined)

	raw, ok, err := s.provider.Get(ctx, k)
	if err != nil || !ok {
		return zero, false, err
	}
	rec, err := wire.DecodeRecord(raw)
	if err != nil {
		s.selfHeal(ctx, k, "corrupt")
		return zero, false, nil
	}

	cur, err := s.gen.Snapshot(ctx, k)
	if err != nil {
		s.hooks.GenSnapshotError(k, err)
		s.log.Warn("gen snapshot error", Fields{"key": k, "err": err})
		return zero, false, nil
	}
	if rec.Gen != cur {
		s.selfHeal(ctx, k, "gen_mismatch")
		return zero, false, nil
	}

	payload, err := RevealBytes(combined, int(rec.Units))
	if err != nil {
		s.hooks.OpenFailed(k, "reveal", err)
		return zero, false, err
	}
	v, err := s.codec.Decode(payload)
	if err != nil {
		s.hooks.OpenFailed(k, "value_decode", err)
		return zero, false, err
	}
	return v, true, nil
}

func (s *sealer[V]) OpenN(_ context.Context, combined string, n int) (V, error) {
	var zero V
	payload, err := RevealBytes(combined, n)
	if err != nil {
		return zero, err
	}
	return s.codec.Decode(payload)
}

func (s *sealer[V]) Forget(ctx context.Context, combined string) error {
	k := s.ledgerKey(combined)

	newGen, bumpErr := s.gen.Bump(ctx, k)
	if bumpErr != nil {
		s.hooks.GenBumpError(k, bumpErr)
	}
	delErr := s.provider.Del(ctx, k)
	if bumpErr != nil || delErr != nil {
		s.log.Error("forget failed", Fields{"key": k, "bumpErr": bumpErr, "delErr": delErr})
		return &ForgetError{Key: k, BumpErr: bumpErr, DelErr: delErr}
	}

	s.log.Debug("forgot seal (bumped gen + deleted record)", Fields{"key": k, "newGen": newGen})
	return nil
}

func (s *sealer[V]) Close(ctx context.Context) error {
	// gen store first (best effort)
	_ = s.gen.Close(ctx)
	return s.provider.Close(ctx)
}

func (s *sealer[V]) selfHeal(ctx context.Context, k, reason string) {
	_ = s.provider.Del(ctx, k)
	s.hooks.SelfHeal(k, reason)
	s.log.Debug("dropped ledger record", Fields{"key": k, "reason": reason})
}

func (s *sealer[V]) ledgerKey(combined string) string {
	return util.LedgerKey("seal:"+s.ns, combined)
}

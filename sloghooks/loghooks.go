// Package sloghooks reports Sealer events through log/slog.
package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/ghostcipher"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	SelfHealEvery uint64
	// Optional key redactor. Defaults to a SHA-256 prefix. Ledger keys are
	// already fingerprints, but a second hash keeps them out of log search.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	selfHealCtr atomic.Uint64
}

var _ ghostcipher.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := sha256.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) SelfHeal(ledgerKey, reason string) {
	if h.l == nil || !sample(h.opts.SelfHealEvery, &h.selfHealCtr) {
		return
	}
	h.l.Debug("ghostcipher.self_heal",
		"key", h.redact(ledgerKey),
		"reason", reason)
}

func (h *Hooks) ProviderSetRejected(ledgerKey string) {
	if h.l == nil {
		return
	}
	h.l.Warn("ghostcipher.provider_set_rejected",
		"key", h.redact(ledgerKey))
}

func (h *Hooks) OpenFailed(ledgerKey, reason string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("ghostcipher.open_failed",
		"key", h.redact(ledgerKey),
		"reason", reason,
		"err", err)
}

func (h *Hooks) GenSnapshotError(ledgerKey string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("ghostcipher.gen_snapshot_error",
		"key", h.redact(ledgerKey),
		"err", err)
}

func (h *Hooks) GenBumpError(ledgerKey string, err error) {
	if h.l == nil {
		return
	}
	h.l.Error("ghostcipher.gen_bump_error",
		"key", h.redact(ledgerKey),
		"err", err)
}

// Package asynchook moves Hooks calls off the Sealer call path.
//
// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{SelfHealEvery: 10})
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	s, _ := ghostcipher.New[string](ghostcipher.Options[string]{
//	    Namespace: "chat",
//	    Provider:  provider,
//	    Codec:     codec.String{},
//	    Hooks:     hooks,
//	})
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/ghostcipher"
)

// Hooks forwards events to inner on a bounded worker pool.
// Events are dropped when the queue is full.
type Hooks struct {
	inner ghostcipher.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ ghostcipher.Hooks = (*Hooks)(nil)

func New(inner ghostcipher.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains queued events and stops the workers.
// Hooks must not be called after Close.
func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) SelfHeal(k, r string)             { h.try(func() { h.inner.SelfHeal(k, r) }) }
func (h *Hooks) ProviderSetRejected(k string)     { h.try(func() { h.inner.ProviderSetRejected(k) }) }
func (h *Hooks) GenBumpError(k string, err error) { h.try(func() { h.inner.GenBumpError(k, err) }) }
func (h *Hooks) GenSnapshotError(k string, err error) {
	h.try(func() { h.inner.GenSnapshotError(k, err) })
}
func (h *Hooks) OpenFailed(k, r string, err error) {
	h.try(func() { h.inner.OpenFailed(k, r, err) })
}

package asynchook

import (
	"sync"
	"testing"

	"github.com/unkn0wn-root/ghostcipher"
)

type countHooks struct {
	ghostcipher.NopHooks
	mu sync.Mutex
	n  map[string]int
}

func (c *countHooks) inc(name string) {
	c.mu.Lock()
	c.n[name]++
	c.mu.Unlock()
}

func (c *countHooks) SelfHeal(string, string)          { c.inc("self_heal") }
func (c *countHooks) ProviderSetRejected(string)       { c.inc("set_rejected") }
func (c *countHooks) OpenFailed(string, string, error) { c.inc("open_failed") }

func TestForwardsAndDrainsOnClose(t *testing.T) {
	inner := &countHooks{n: map[string]int{}}
	h := New(inner, 2, 100)

	for i := 0; i < 10; i++ {
		h.SelfHeal("k", "corrupt")
	}
	h.ProviderSetRejected("k")
	h.OpenFailed("k", "reveal", nil)
	h.GenBumpError("k", nil)
	h.GenSnapshotError("k", nil)
	h.Close()
	h.Close() // idempotent

	if inner.n["self_heal"] != 10 || inner.n["set_rejected"] != 1 || inner.n["open_failed"] != 1 {
		t.Fatalf("unexpected counts: %v", inner.n)
	}
}

func TestDropsWhenFull(t *testing.T) {
	block := make(chan struct{})
	inner := &blockingHooks{block: block}
	h := New(inner, 1, 1)

	// worker blocks on the first event; queue holds one more; the rest drop
	for i := 0; i < 10; i++ {
		h.ProviderSetRejected("k")
	}
	close(block)
	h.Close()

	if inner.calls > 2 {
		t.Fatalf("expected drops, got %d delivered", inner.calls)
	}
}

type blockingHooks struct {
	ghostcipher.NopHooks
	block chan struct{}
	calls int // only touched by the single worker
}

func (b *blockingHooks) ProviderSetRejected(string) {
	<-b.block
	b.calls++
}

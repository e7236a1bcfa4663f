package genstore

import (
	"context"
	"sync"
	"time"
)

type counter struct {
	gen     uint64
	touched time.Time
}

// LocalGenStore keeps generations in-process.
// With a positive interval and retention a background loop drops counters
// that have not been bumped for longer than retention.
type LocalGenStore struct {
	mu       sync.RWMutex
	counters map[string]counter

	ticker *time.Ticker
	stopCh chan struct{}
	wg     sync.WaitGroup
	once   sync.Once
}

var _ GenStore = (*LocalGenStore)(nil)

func NewLocalGenStore(cleanupInterval, retention time.Duration) *LocalGenStore {
	s := &LocalGenStore{counters: make(map[string]counter)}
	if cleanupInterval <= 0 || retention <= 0 {
		return s
	}

	s.ticker = time.NewTicker(cleanupInterval)
	s.stopCh = make(chan struct{})
	s.wg.Add(1)
	go s.sweep(retention)
	return s
}

func (s *LocalGenStore) sweep(retention time.Duration) {
	defer s.wg.Done()
	for {
		select {
		case <-s.ticker.C:
			s.Cleanup(retention)
		case <-s.stopCh:
			return
		}
	}
}

func (s *LocalGenStore) Snapshot(_ context.Context, k string) (uint64, error) {
	s.mu.RLock()
	c := s.counters[k]
	s.mu.RUnlock()
	return c.gen, nil
}

func (s *LocalGenStore) Bump(_ context.Context, k string) (uint64, error) {
	now := time.Now()
	s.mu.Lock()
	c := s.counters[k]
	c.gen++
	c.touched = now
	s.counters[k] = c
	s.mu.Unlock()
	return c.gen, nil
}

func (s *LocalGenStore) Cleanup(retention time.Duration) {
	if retention <= 0 {
		return
	}
	cutoff := time.Now().Add(-retention)

	s.mu.Lock()
	for k, c := range s.counters {
		if c.touched.Before(cutoff) {
			delete(s.counters, k)
		}
	}
	s.mu.Unlock()
}

// Close stops the cleanup loop. Safe to call more than once.
func (s *LocalGenStore) Close(_ context.Context) error {
	s.once.Do(func() {
		if s.stopCh == nil {
			return
		}
		s.ticker.Stop()
		close(s.stopCh)
		s.wg.Wait()
	})
	return nil
}

package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps counters in process memory. Counters are not shared
// between instances; use RedisStore when running more than one.
type MemoryStore struct {
	window time.Duration
	now    func() time.Time

	mu      sync.Mutex
	clients map[string]*counter

	stop chan struct{}
	once sync.Once
}

type counter struct {
	hits    int
	resetAt time.Time
}

// NewMemoryStore creates a MemoryStore and starts its sweep loop.
// Call Close to stop the loop.
func NewMemoryStore(window time.Duration) *MemoryStore {
	s := &MemoryStore{
		window:  window,
		now:     time.Now,
		clients: make(map[string]*counter),
		stop:    make(chan struct{}),
	}
	go s.cleanupLoop()
	return s
}

var _ Store = (*MemoryStore)(nil)

func (s *MemoryStore) Hit(_ context.Context, key string) (int, time.Time, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.clients[key]
	if !ok || !now.Before(c.resetAt) {
		c = &counter{resetAt: now.Add(s.window)}
		s.clients[key] = c
	}
	c.hits++
	return c.hits, c.resetAt, nil
}

// Close stops the sweep loop.
func (s *MemoryStore) Close() {
	s.once.Do(func() { close(s.stop) })
}

// cleanupLoop periodically drops expired counters.
func (s *MemoryStore) cleanupLoop() {
	interval := s.window
	if interval > 5*time.Minute {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *MemoryStore) sweep() {
	now := s.now()
	s.mu.Lock()
	for key, c := range s.clients {
		if !now.Before(c.resetAt) {
			delete(s.clients, key)
		}
	}
	s.mu.Unlock()
}

func (s *MemoryStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

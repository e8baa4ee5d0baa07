package banstore

import (
	"context"
	"sync"
	"time"
)

type memoryStore struct {
	tokens      map[string]time.Time
	mutex       sync.RWMutex
	ttl         time.Duration
	cleanupFreq time.Duration
	stop        chan struct{}
	stopOnce    sync.Once
}

// NewMemory builds an in-memory revocation store with a background sweeper.
func NewMemory(cfg Config) Store {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	cleanup := 5 * time.Minute
	if cfg.Memory != nil && cfg.Memory.GCInterval > 0 {
		cleanup = cfg.Memory.GCInterval
	}
	s := &memoryStore{
		tokens:      make(map[string]time.Time),
		ttl:         ttl,
		cleanupFreq: cleanup,
		stop:        make(chan struct{}),
	}
	go s.gcLoop()
	return s
}

func (s *memoryStore) gcLoop() {
	ticker := time.NewTicker(s.cleanupFreq)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stop:
			return
		}
	}
}

func (s *memoryStore) sweep() {
	now := time.Now()
	s.mutex.Lock()
	for token, expiresAt := range s.tokens {
		if now.After(expiresAt) {
			delete(s.tokens, token)
		}
	}
	s.mutex.Unlock()
}

func (s *memoryStore) Add(_ context.Context, token string) error {
	expiresAt := time.Now().Add(s.ttl)
	s.mutex.Lock()
	s.tokens[token] = expiresAt
	s.mutex.Unlock()
	return nil
}

func (s *memoryStore) Contains(_ context.Context, token string) (bool, error) {
	s.mutex.RLock()
	expiresAt, ok := s.tokens[token]
	s.mutex.RUnlock()
	if !ok {
		return false, nil
	}
	// Lazily treat an expired entry as absent; the sweeper removes it later.
	if time.Now().After(expiresAt) {
		return false, nil
	}
	return true, nil
}

func (s *memoryStore) Close(context.Context) error {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
	return nil
}

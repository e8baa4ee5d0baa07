package twofa

import (
	"context"
	"sync"
	"time"

	"github.com/GuillemIscla/live-bootcamp-project/internal/domain/auth/model"
)

type memoryEntry struct {
	challenge Challenge
	expiresAt time.Time
}

type memoryStore struct {
	entries     map[string]memoryEntry
	mutex       sync.RWMutex
	ttl         time.Duration
	cleanupFreq time.Duration
	stop        chan struct{}
	stopOnce    sync.Once
}

// NewMemory builds an in-memory challenge store.
func NewMemory(cfg Config) Store {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = ChallengeTTL
	}
	cleanup := time.Minute
	if cfg.Memory != nil && cfg.Memory.GCInterval > 0 {
		cleanup = cfg.Memory.GCInterval
	}
	s := &memoryStore{
		entries:     make(map[string]memoryEntry),
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
	for key, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, key)
		}
	}
	s.mutex.Unlock()
}

func (s *memoryStore) Add(_ context.Context, email model.Email, challenge Challenge) error {
	entry := memoryEntry{
		challenge: challenge,
		expiresAt: time.Now().Add(s.ttl),
	}
	s.mutex.Lock()
	s.entries[email.Raw()] = entry
	s.mutex.Unlock()
	return nil
}

func (s *memoryStore) Get(_ context.Context, email model.Email) (Challenge, error) {
	s.mutex.RLock()
	entry, ok := s.entries[email.Raw()]
	s.mutex.RUnlock()
	if !ok {
		return Challenge{}, ErrCodeNotFound
	}
	if time.Now().After(entry.expiresAt) {
		return Challenge{}, ErrCodeNotFound
	}
	return entry.challenge, nil
}

func (s *memoryStore) Remove(_ context.Context, email model.Email) error {
	s.mutex.Lock()
	delete(s.entries, email.Raw())
	s.mutex.Unlock()
	return nil
}

func (s *memoryStore) Close(context.Context) error {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
	return nil
}

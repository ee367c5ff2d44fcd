package verification

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	code      string
	expiresAt time.Time
}

// MemoryStore is an in-process Store for single-instance deployments.
// Expired entries are swept lazily on Put.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[int64]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		entries: make(map[int64]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *MemoryStore) Put(_ context.Context, userID int64, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, id)
		}
	}

	s.entries[userID] = memoryEntry{code: code, expiresAt: now.Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Validate(_ context.Context, userID int64, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[userID]
	if !ok {
		return false, nil
	}
	if s.now().After(e.expiresAt) {
		delete(s.entries, userID)
		return false, nil
	}
	if e.code != code {
		return false, nil
	}

	delete(s.entries, userID)
	return true, nil
}

func (s *MemoryStore) Remove(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, userID)
	return nil
}

package draft

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/adityaraj161616/Nirmalaya/internal/data/entity"

	"github.com/google/uuid"
)

// MemoryStore is an in-process draft store for tests and redis-less
// development runs. Drafts do not survive a restart.
type MemoryStore struct {
	mu     sync.RWMutex
	drafts map[uuid.UUID][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		drafts: make(map[uuid.UUID][]byte),
	}
}

func (s *MemoryStore) Load(_ context.Context, id uuid.UUID) (*entity.BookingDraft, error) {
	s.mu.RLock()
	raw, ok := s.drafts[id]
	s.mu.RUnlock()

	if !ok {
		return nil, nil
	}

	var d entity.BookingDraft
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *MemoryStore) Save(_ context.Context, id uuid.UUID, d *entity.BookingDraft) error {
	// round-trip through JSON so callers never share memory with the
	// stored copy, same as the redis store
	raw, err := json.Marshal(d)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.drafts[id] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	delete(s.drafts, id)
	s.mu.Unlock()
	return nil
}

// In file: internal/session/memory.go
package session

import (
	"context"
	"sync"
)

// MemoryStore keeps credentials in process memory. It is used when no Redis
// address is configured; everything is lost on restart.
type MemoryStore struct {
	mu    sync.RWMutex
	creds map[string]string
}

var _ CredentialStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{creds: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, id string) (string, error) {
	id, err := validID(id)
	if err != nil {
		return "", err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds[id], nil
}

func (s *MemoryStore) Set(ctx context.Context, id, key string) error {
	id, err := validID(id)
	if err != nil {
		return err
	}
	key, ok := normalizeKey(key)
	if !ok {
		return s.Clear(ctx, id)
	}
	s.mu.Lock()
	s.creds[id] = key
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, id string) error {
	id, err := validID(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.creds, id)
	s.mu.Unlock()
	return nil
}

package storage

import (
	"context"
	"sync"
	"time"
)

// MemoryStore est une implémentation en mémoire de Store, utilisée par les
// tests et en dev quand REDIS_HOST n'est pas configuré. Rien ne survit au
// redémarrage du process.
type MemoryStore struct {
	mu       sync.RWMutex
	values   map[string]string
	counters map[string]int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values:   make(map[string]string),
		counters: make(map[string]int64),
	}
}

func (s *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return val, nil
}

func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// Incr — pas de fenêtre d'expiration en mémoire, suffisant pour le dev.
func (s *MemoryStore) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[key]++
	return s.counters[key], nil
}

package kvstore

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

// MemoryStore keeps entries for the lifetime of the process only.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]Entry
	logger  *slog.Logger
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]Entry),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.entries[key]
	return Entry{Value: cloneBytes(e.Value), Version: e.Version}, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.entries[key].Version + 1
	s.entries[key] = Entry{Value: cloneBytes(value), Version: next}
	return next, nil
}

func (s *MemoryStore) CompareAndSet(_ context.Context, key string, expected int64, value []byte) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current := s.entries[key].Version
	if current != expected {
		return 0, conflictErr(s.logger, key, expected)
	}
	s.entries[key] = Entry{Value: cloneBytes(value), Version: current + 1}
	return current + 1, nil
}

func (s *MemoryStore) Close() error { return nil }

package barem

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Store persists assessment criteria keyed by job title. Put replaces any
// existing entry with the same title (last write wins, no history). Get
// returns nil with no error when the title has no criteria yet.
type Store interface {
	Get(ctx context.Context, jobTitle string) (*Criteria, error)
	Put(ctx context.Context, c *Criteria) error
	Delete(ctx context.Context, jobTitle string) error
	List(ctx context.Context) ([]*Criteria, error)
}

// MemoryStore is the in-process Store used for tests and standalone serving.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]*Criteria
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]*Criteria)}
}

// Get returns the stored criteria for a job title, or nil when absent.
func (s *MemoryStore) Get(_ context.Context, jobTitle string) (*Criteria, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.entries[jobTitle]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

// Put stores criteria, replacing any previous entry for the same job title.
func (s *MemoryStore) Put(_ context.Context, c *Criteria) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *c
	cp.UpdatedAt = time.Now().UTC()
	s.entries[c.JobTitle] = &cp
	return nil
}

// Delete removes the criteria for a job title; deleting a missing title is a
// no-op.
func (s *MemoryStore) Delete(_ context.Context, jobTitle string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, jobTitle)
	return nil
}

// List returns all stored criteria ordered by job title.
func (s *MemoryStore) List(_ context.Context) ([]*Criteria, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Criteria, 0, len(s.entries))
	for _, c := range s.entries {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].JobTitle < out[j].JobTitle })
	return out, nil
}

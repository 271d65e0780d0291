package store

import (
	"context"
	"sort"
	"sync"

	"github.com/shaderforge/shadegraph/pkg/core/shader"
	"github.com/shaderforge/shadegraph/pkg/graph"
)

// MemoryStore is an in-memory store for development and testing.
// Graphs are kept serialized, so callers never share node pointers with the
// store.
type MemoryStore struct {
	mu     sync.RWMutex
	graphs map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{graphs: make(map[string][]byte)}
}

// Save serializes and stores the graph under the given name.
func (s *MemoryStore) Save(ctx context.Context, name string, g *shader.Graph) error {
	data, err := graph.MarshalGraph(g)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.graphs[name] = data
	return nil
}

// Load returns the graph stored under the given name.
func (s *MemoryStore) Load(ctx context.Context, name string) (*shader.Graph, error) {
	s.mu.RLock()
	data, ok := s.graphs[name]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return graph.UnmarshalGraph(data)
}

// List returns all stored names in lexical order.
func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.graphs))
	for name := range s.graphs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes the graph stored under the given name.
func (s *MemoryStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.graphs[name]; !ok {
		return ErrNotFound
	}
	delete(s.graphs, name)
	return nil
}

// Close does nothing.
func (s *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)

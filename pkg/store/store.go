// Package store provides named persistence for shader graphs.
//
// A Store maps user-chosen names to serialized graph documents. Backends:
//   - memory: In-memory storage for development/testing
//   - file: JSON files in a data directory for CLI usage
//   - redis: Redis-backed storage with optional TTL
//   - mongo: MongoDB-backed storage for shared deployments
//
// All backends serialize through the pkg/graph wire format, so a graph
// saved by one backend loads from any other.
package store

import (
	"context"
	"errors"

	"github.com/shaderforge/shadegraph/pkg/core/shader"
)

// ErrNotFound is returned when a named graph does not exist.
var ErrNotFound = errors.New("graph not found")

// Store persists shader graphs under user-chosen names.
//
// Save overwrites silently; Load and Delete return ErrNotFound for missing
// names. List returns names in lexical order.
type Store interface {
	Save(ctx context.Context, name string, g *shader.Graph) error
	Load(ctx context.Context, name string) (*shader.Graph, error)
	List(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, name string) error
	Close() error
}

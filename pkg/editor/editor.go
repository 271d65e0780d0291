// Package editor provides the in-process editing session for shader graphs.
//
// A Session owns one graph and mediates every mutation behind a single
// lock, giving an editing surface (TUI, embedding application) a
// single-writer view with change tracking: edits raise a new-data flag,
// and handing out the serialized graph clears it. This is the
// synchronization contract a host uses to pull fresh state only when
// something actually changed.
package editor

import (
	"context"
	"sync"

	"github.com/shaderforge/shadegraph/pkg/core/shader"
	"github.com/shaderforge/shadegraph/pkg/graph"
	"github.com/shaderforge/shadegraph/pkg/observability"
)

// Session is a single-graph editing session. All methods are safe for
// concurrent use; mutations are serialized behind one lock.
type Session struct {
	mu      sync.Mutex
	graph   *shader.Graph
	running bool
	newData bool
}

// NewSession creates a session holding an empty graph.
func NewSession() *Session {
	return &Session{graph: shader.NewGraph()}
}

// Open marks the session as running.
func (s *Session) Open() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = true
}

// Close marks the session as stopped. The graph is retained; a closed
// session can be reopened.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
}

// Running reports whether the session is open.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// LoadGraph replaces the session's graph with the given serialized
// document. An external load does not raise the new-data flag: the caller
// already holds this state.
func (s *Session) LoadGraph(ctx context.Context, data []byte) error {
	g, err := graph.UnmarshalGraph(data)
	if err != nil {
		observability.Editor().OnGraphLoaded(ctx, 0, 0, err)
		return err
	}

	s.mu.Lock()
	s.graph = g
	s.newData = false
	s.mu.Unlock()

	observability.Editor().OnGraphLoaded(ctx, g.NodeCount(), g.ConnectionCount(), nil)
	return nil
}

// Edit applies fn to the session's graph under the session lock and raises
// the new-data flag. fn must not retain the graph pointer past its return.
func (s *Session) Edit(ctx context.Context, fn func(*shader.Graph)) {
	s.mu.Lock()
	fn(s.graph)
	s.newData = true
	nodes := s.graph.NodeCount()
	s.mu.Unlock()

	observability.Editor().OnEdit(ctx, nodes)
}

// MarkEdited raises the new-data flag without going through [Session.Edit].
// Hosts that mutate node payloads through retained pointers use this to
// notify the session.
func (s *Session) MarkEdited() {
	s.mu.Lock()
	s.newData = true
	s.mu.Unlock()
}

// HasNewData reports whether the graph changed since the last
// SerializedGraph call.
func (s *Session) HasNewData() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.newData
}

// SerializedGraph returns the current graph as a serialized document and
// clears the new-data flag.
func (s *Session) SerializedGraph(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	data, err := graph.MarshalGraph(s.graph)
	if err == nil {
		s.newData = false
	}
	s.mu.Unlock()

	observability.Editor().OnSerialize(ctx, len(data), err)
	return data, err
}

// ValidationMessage returns the current graph's validation summary.
func (s *Session) ValidationMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.graph.ValidationMessage()
}

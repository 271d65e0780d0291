package shader

import (
	"errors"
	"slices"
)

var (
	// ErrNilNode is returned by [Graph.AddNode] for a nil node.
	ErrNilNode = errors.New("node must not be nil")

	// ErrDuplicateNode is returned by [Graph.AddNode] when a node with the
	// same id is already present.
	ErrDuplicateNode = errors.New("duplicate node id")

	// ErrUnknownNode is returned by [Graph.Connect] when an endpoint node
	// does not exist in the graph.
	ErrUnknownNode = errors.New("unknown node")

	// ErrUnknownSlot is returned by [Graph.Connect] when an endpoint slot
	// key does not exist on the endpoint node with the required direction.
	ErrUnknownSlot = errors.New("unknown slot")

	// ErrInputOccupied is returned by [Graph.Connect] when the target input
	// slot is already fed by another connection.
	ErrInputOccupied = errors.New("input slot already connected")
)

// Connection is a directed link from an output slot to an input slot,
// addressed by node id and internal slot key.
type Connection struct {
	FromNode NodeID
	FromSlot string
	ToNode   NodeID
	ToSlot   string
}

// Graph is an editable container of shading nodes and their connections.
// Node order is insertion order and is significant for equality. The zero
// value is not usable; use [NewGraph].
//
// Graph provides no internal synchronization; the editing surface is
// responsible for single-writer access.
type Graph struct {
	nodes       []*Node
	byID        map[NodeID]*Node
	connections []Connection
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{byID: make(map[NodeID]*Node)}
}

// AddNode adds a node to the graph. The graph takes ownership of the node.
func (g *Graph) AddNode(n *Node) error {
	if n == nil {
		return ErrNilNode
	}
	if _, exists := g.byID[n.ID()]; exists {
		return ErrDuplicateNode
	}
	g.nodes = append(g.nodes, n)
	g.byID[n.ID()] = n
	return nil
}

// RemoveNode removes the node with the given id along with every
// connection touching it. It reports whether a node was removed.
func (g *Graph) RemoveNode(id NodeID) bool {
	if _, ok := g.byID[id]; !ok {
		return false
	}
	delete(g.byID, id)
	g.nodes = slices.DeleteFunc(g.nodes, func(n *Node) bool { return n.ID() == id })
	g.connections = slices.DeleteFunc(g.connections, func(c Connection) bool {
		return c.FromNode == id || c.ToNode == id
	})
	return true
}

// Node returns the node with the given id and true, or nil and false. The
// returned pointer refers to the graph's own node.
func (g *Graph) Node(id NodeID) (*Node, bool) {
	n, ok := g.byID[id]
	return n, ok
}

// Nodes returns the graph's nodes in insertion order. The slice is a copy;
// the node pointers are the graph's own.
func (g *Graph) Nodes() []*Node {
	return slices.Clone(g.nodes)
}

// Connections returns a copy of all connections in insertion order.
func (g *Graph) Connections() []Connection {
	return slices.Clone(g.connections)
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// ConnectionCount returns the number of connections.
func (g *Graph) ConnectionCount() int { return len(g.connections) }

// Connect links an output slot to an input slot, both addressed by node id
// and slot key. Returns ErrUnknownNode or ErrUnknownSlot for missing
// endpoints and ErrInputOccupied when the input already has a feed. An
// input slot accepts at most one connection; outputs may fan out freely.
func (g *Graph) Connect(from NodeID, fromSlot string, to NodeID, toSlot string) error {
	src, ok := g.byID[from]
	if !ok {
		return ErrUnknownNode
	}
	dst, ok := g.byID[to]
	if !ok {
		return ErrUnknownNode
	}
	if _, ok := src.SlotIndexByKey(DirectionOutput, fromSlot); !ok {
		return ErrUnknownSlot
	}
	if _, ok := dst.SlotIndexByKey(DirectionInput, toSlot); !ok {
		return ErrUnknownSlot
	}
	for _, c := range g.connections {
		if c.ToNode == to && c.ToSlot == toSlot {
			return ErrInputOccupied
		}
	}
	g.connections = append(g.connections, Connection{
		FromNode: from, FromSlot: fromSlot,
		ToNode: to, ToSlot: toSlot,
	})
	return nil
}

// RestoreConnection appends a connection without endpoint checks.
// Persistence layers use it to rehydrate a saved document verbatim;
// [Graph.Validate] reports any problems the document carried.
func (g *Graph) RestoreConnection(c Connection) {
	g.connections = append(g.connections, c)
}

// Disconnect removes the connection feeding the given input slot, if any,
// and reports whether one was removed.
func (g *Graph) Disconnect(to NodeID, toSlot string) bool {
	before := len(g.connections)
	g.connections = slices.DeleteFunc(g.connections, func(c Connection) bool {
		return c.ToNode == to && c.ToSlot == toSlot
	})
	return len(g.connections) != before
}

// Equal reports whether both graphs hold equal nodes and equal connections
// in the same order. This is the change-detection primitive used by
// synchronization layers; it runs in time linear in total slot count.
func (g *Graph) Equal(other *Graph) bool {
	if g == nil || other == nil {
		return g == other
	}
	if len(g.nodes) != len(other.nodes) || len(g.connections) != len(other.connections) {
		return false
	}
	for i := range g.nodes {
		if !g.nodes[i].Equal(other.nodes[i]) {
			return false
		}
	}
	for i := range g.connections {
		if g.connections[i] != other.connections[i] {
			return false
		}
	}
	return true
}

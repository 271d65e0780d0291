package graph

import (
	"fmt"
	"slices"

	"github.com/shaderforge/shadegraph/pkg/core/shader"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Value kinds carried on the wire. These mirror the slot type of the stored
// variant; bounds and precision hints never leave the catalog.
const (
	ValueFloat       = "float"
	ValueBool        = "bool"
	ValueColor       = "color"
	ValueVector      = "vector"
	ValueEnum        = "enum"
	ValueCurveRGB    = "curve_rgb"
	ValueCurveVector = "curve_vector"
)

// =============================================================================
// Document - Graph Serialization
// =============================================================================

// Document is the canonical serialization format for shader node graphs.
// Used for files, store backends, and cross-tool compatibility.
//
// The format is human-readable and designed for round-trip fidelity:
// load → edit → save → re-load produces an equal graph.
type Document struct {
	Nodes       []Node       `json:"nodes" bson:"nodes"`
	Connections []Connection `json:"connections" bson:"connections"`
}

// Node is one serialized shading node. Slot values are addressed by
// internal key, never by position, so documents survive slot reordering
// between catalog revisions.
type Node struct {
	ID       string           `json:"id" bson:"id"`
	Type     string           `json:"type" bson:"type"`
	Position [2]int           `json:"position" bson:"position"`
	Values   map[string]Value `json:"values,omitempty" bson:"values,omitempty"`
}

// Value is one serialized slot payload. Type selects the variant; the
// other fields carry the payload for that variant and are zero otherwise.
type Value struct {
	Type   string      `json:"type" bson:"type"`
	Bool   bool        `json:"bool,omitempty" bson:"bool,omitempty"`
	Number float64     `json:"number,omitempty" bson:"number,omitempty"`
	Vector []float64   `json:"vector,omitempty" bson:"vector,omitempty"`
	Enum   string      `json:"enum,omitempty" bson:"enum,omitempty"`
	Points []RampPoint `json:"points,omitempty" bson:"points,omitempty"`
}

// RampPoint is one serialized color-ramp keyframe.
type RampPoint struct {
	Pos   float64    `json:"pos" bson:"pos"`
	Color [3]float64 `json:"color" bson:"color"`
	Alpha float64    `json:"alpha" bson:"alpha"`
}

// Connection is a serialized directed link between two slots, addressed by
// node id and internal slot key.
type Connection struct {
	From     string `json:"from" bson:"from"`
	FromSlot string `json:"from_slot" bson:"from_slot"`
	To       string `json:"to" bson:"to"`
	ToSlot   string `json:"to_slot" bson:"to_slot"`
}

// =============================================================================
// Graph ↔ Document Conversion
// =============================================================================

// FromGraph converts a graph to its serialization format.
// Nodes are sorted by id for deterministic output. Only stored slot values
// cross the wire; slot layout and bounds are catalog data.
func FromGraph(g *shader.Graph) Document {
	nodes := g.Nodes()
	slices.SortFunc(nodes, func(a, b *shader.Node) int {
		sa, sb := a.ID().String(), b.ID().String()
		if sa < sb {
			return -1
		}
		if sa > sb {
			return 1
		}
		return 0
	})

	out := Document{
		Nodes:       make([]Node, len(nodes)),
		Connections: make([]Connection, 0, g.ConnectionCount()),
	}

	for i, n := range nodes {
		out.Nodes[i] = nodeFromShader(n)
	}

	for _, c := range g.Connections() {
		out.Connections = append(out.Connections, Connection{
			From:     c.FromNode.String(),
			FromSlot: c.FromSlot,
			To:       c.ToNode.String(),
			ToSlot:   c.ToSlot,
		})
	}

	return out
}

// ToGraph converts a Document to a graph. Returns an error for malformed
// node ids or duplicate nodes; structural defects the document carried
// (dangling connections, double-fed inputs) are restored verbatim so that
// validation can report them.
//
// Nodes of unknown archetypes load with empty slot lists; value keys the
// archetype does not know and values of the wrong variant are dropped.
func ToGraph(doc Document) (*shader.Graph, error) {
	g := shader.NewGraph()

	for _, nj := range doc.Nodes {
		id, err := shader.ParseNodeID(nj.ID)
		if err != nil {
			return nil, fmt.Errorf("node id %q: %w", nj.ID, err)
		}
		n := shader.NewWithID(shader.NodeType(nj.Type), shader.Int2{X: nj.Position[0], Y: nj.Position[1]}, id)
		for key, vj := range nj.Values {
			applyValue(n, key, vj)
		}
		if err := g.AddNode(n); err != nil {
			return nil, fmt.Errorf("add node %s: %w", nj.ID, err)
		}
	}

	for _, cj := range doc.Connections {
		from, err := shader.ParseNodeID(cj.From)
		if err != nil {
			return nil, fmt.Errorf("connection from %q: %w", cj.From, err)
		}
		to, err := shader.ParseNodeID(cj.To)
		if err != nil {
			return nil, fmt.Errorf("connection to %q: %w", cj.To, err)
		}
		g.RestoreConnection(shader.Connection{
			FromNode: from, FromSlot: cj.FromSlot,
			ToNode: to, ToSlot: cj.ToSlot,
		})
	}

	return g, nil
}

// =============================================================================
// Internal Helpers
// =============================================================================

// nodeFromShader converts a shading node to a serialization Node.
// This is the single point of conversion for all node exports.
func nodeFromShader(n *shader.Node) Node {
	node := Node{
		ID:       n.ID().String(),
		Type:     string(n.Type()),
		Position: [2]int{n.Position.X, n.Position.Y},
	}

	for i := 0; i < n.NumSlots(); i++ {
		s, _ := n.Slot(i)
		if !s.HasValue() {
			continue
		}
		if node.Values == nil {
			node.Values = make(map[string]Value)
		}
		node.Values[s.Key] = valueFromSlot(s.Value)
	}

	return node
}

func valueFromSlot(v shader.SlotValue) Value {
	switch w := v.(type) {
	case shader.FloatValue:
		return Value{Type: ValueFloat, Number: float64(w.Value)}
	case shader.BoolValue:
		return Value{Type: ValueBool, Bool: w.Value}
	case shader.ColorValue:
		return Value{Type: ValueColor, Vector: float3ToWire(w.Value)}
	case shader.VectorValue:
		return Value{Type: ValueVector, Vector: float3ToWire(w.Value)}
	case shader.EnumValue:
		return Value{Type: ValueEnum, Enum: w.Selected}
	case shader.RGBCurveValue:
		return Value{Type: ValueCurveRGB, Points: rampToWire(w.Curve)}
	case shader.VectorCurveValue:
		return Value{
			Type:   ValueCurveVector,
			Vector: float3ToWire(w.Value),
			Points: rampToWire(w.Curve),
		}
	default:
		return Value{}
	}
}

// applyValue writes a wire value into the node's parameter slot with the
// given key, preserving the catalog's bounds and precision hints by
// swapping the payload on the slot's existing variant. Unknown keys and
// variant mismatches are dropped silently; the document may predate or
// postdate the running catalog.
func applyValue(n *shader.Node, key string, vj Value) {
	current, ok := n.ValueByKey(key)
	if !ok {
		return
	}

	var next shader.SlotValue
	switch w := current.(type) {
	case shader.FloatValue:
		if vj.Type != ValueFloat {
			return
		}
		next = w.WithValue(float32(vj.Number))
	case shader.BoolValue:
		if vj.Type != ValueBool {
			return
		}
		next = shader.BoolValue{Value: vj.Bool}
	case shader.ColorValue:
		if vj.Type != ValueColor {
			return
		}
		next = shader.ColorValue{Value: float3FromWire(vj.Vector)}
	case shader.VectorValue:
		if vj.Type != ValueVector {
			return
		}
		next = w.WithValue(float3FromWire(vj.Vector))
	case shader.EnumValue:
		if vj.Type != ValueEnum {
			return
		}
		w.Selected = vj.Enum
		next = w
	case shader.RGBCurveValue:
		if vj.Type != ValueCurveRGB {
			return
		}
		w.Curve = rampFromWire(vj.Points)
		next = w
	case shader.VectorCurveValue:
		if vj.Type != ValueCurveVector {
			return
		}
		w.Curve = rampFromWire(vj.Points)
		w.Value = float3FromWire(vj.Vector)
		next = w
	default:
		return
	}

	_ = n.SetValueByKey(key, next)
}

func float3ToWire(v shader.Float3) []float64 {
	return []float64{float64(v.X), float64(v.Y), float64(v.Z)}
}

func float3FromWire(v []float64) shader.Float3 {
	var out shader.Float3
	if len(v) > 0 {
		out.X = float32(v[0])
	}
	if len(v) > 1 {
		out.Y = float32(v[1])
	}
	if len(v) > 2 {
		out.Z = float32(v[2])
	}
	return out
}

func rampToWire(r shader.ColorRamp) []RampPoint {
	points := make([]RampPoint, r.Size())
	for i := range points {
		p := r.Get(i)
		points[i] = RampPoint{
			Pos:   float64(p.Pos),
			Color: [3]float64{float64(p.Color.X), float64(p.Color.Y), float64(p.Color.Z)},
			Alpha: float64(p.Alpha),
		}
	}
	return points
}

func rampFromWire(points []RampPoint) shader.ColorRamp {
	out := make([]shader.ColorRampPoint, len(points))
	for i, p := range points {
		out[i] = shader.ColorRampPoint{
			Pos:   float32(p.Pos),
			Color: shader.Float3{X: float32(p.Color[0]), Y: float32(p.Color[1]), Z: float32(p.Color[2])},
			Alpha: float32(p.Alpha),
		}
	}
	return shader.NewColorRampFromPoints(out)
}

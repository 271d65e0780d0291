package graph

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shaderforge/shadegraph/pkg/core/shader"
)

// buildMaterial assembles a small but representative material: a glossy
// BSDF with a non-default enum, float, and color feeding the output, plus
// an RGB curves node with an edited ramp.
func buildMaterial(t *testing.T, seed uint64) *shader.Graph {
	t.Helper()
	prev := shader.SetIDGenerator(shader.NewSeededIDGenerator(seed))
	defer shader.SetIDGenerator(prev)

	g := shader.NewGraph()
	glossy := shader.New(shader.NodeGlossyBSDF, shader.Int2{X: 0, Y: 0})
	curves := shader.New(shader.NodeRGBCurves, shader.Int2{X: -200, Y: 0})
	out := shader.New(shader.NodeMaterialOutput, shader.Int2{X: 300, Y: 0})
	for _, n := range []*shader.Node{glossy, curves, out} {
		if err := g.AddNode(n); err != nil {
			t.Fatal(err)
		}
	}

	if err := glossy.SetValueByKey("distribution", shader.EnumValue{
		Set: shader.GlossyDistributions, Selected: "beckmann",
	}); err != nil {
		t.Fatal(err)
	}
	if err := glossy.SetValueByKey("roughness", shader.FloatValue{
		Value: 0.25, Min: 0.0, Max: 1.0,
	}); err != nil {
		t.Fatal(err)
	}

	curve := shader.NewRGBCurveValue()
	curve.Curve.Set(0, shader.ColorRampPoint{
		Pos: 0.1, Color: shader.Float3{X: 0.2, Y: 0.0, Z: 0.0}, Alpha: 0.5,
	})
	if err := curves.SetValueByKey("curves", curve); err != nil {
		t.Fatal(err)
	}

	if err := g.Connect(curves.ID(), "color", glossy.ID(), "color"); err != nil {
		t.Fatal(err)
	}
	if err := g.Connect(glossy.ID(), "BSDF", out.ID(), "surface"); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestRoundTrip(t *testing.T) {
	g := buildMaterial(t, 1)

	data, err := MarshalGraph(g)
	if err != nil {
		t.Fatalf("MarshalGraph() error = %v", err)
	}
	got, err := UnmarshalGraph(data)
	if err != nil {
		t.Fatalf("UnmarshalGraph() error = %v", err)
	}

	// The graph stores nodes in insertion order and the document sorts by
	// id, so compare node-by-node rather than with Graph.Equal.
	if got.NodeCount() != g.NodeCount() {
		t.Fatalf("NodeCount() = %d, want %d", got.NodeCount(), g.NodeCount())
	}
	for _, want := range g.Nodes() {
		n, ok := got.Node(want.ID())
		if !ok {
			t.Fatalf("node %s missing after round trip", want.ID())
		}
		if !n.Equal(want) {
			t.Errorf("node %s changed across round trip", want.ID())
		}
	}
	if got.ConnectionCount() != g.ConnectionCount() {
		t.Errorf("ConnectionCount() = %d, want %d", got.ConnectionCount(), g.ConnectionCount())
	}
	if issues := got.Validate(); len(issues) != 0 {
		t.Errorf("round-tripped graph has findings: %v", issues)
	}
}

func TestRoundTrip_DeterministicOutput(t *testing.T) {
	g := buildMaterial(t, 2)

	a, err := MarshalGraph(g)
	if err != nil {
		t.Fatal(err)
	}
	b, err := MarshalGraph(g)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("repeated MarshalGraph output differs")
	}
}

func TestToGraph_PreservesCatalogBounds(t *testing.T) {
	g := buildMaterial(t, 3)
	glossy := g.Nodes()[0]

	// A value outside the advisory range must survive the wire verbatim.
	if err := glossy.SetValueByKey("roughness", shader.FloatValue{
		Value: 7.5, Min: 0.0, Max: 1.0,
	}); err != nil {
		t.Fatal(err)
	}

	data, err := MarshalGraph(g)
	if err != nil {
		t.Fatal(err)
	}
	got, err := UnmarshalGraph(data)
	if err != nil {
		t.Fatal(err)
	}

	n, _ := got.Node(glossy.ID())
	v, ok := n.ValueByKey("roughness")
	if !ok {
		t.Fatal("roughness value missing")
	}
	fv, ok := v.(shader.FloatValue)
	if !ok {
		t.Fatalf("roughness value = %T, want FloatValue", v)
	}
	if fv.Value != 7.5 {
		t.Errorf("Value = %v, want 7.5 stored verbatim", fv.Value)
	}
	if fv.Min != 0.0 || fv.Max != 1.0 {
		t.Errorf("bounds = [%v, %v], want catalog bounds [0, 1]", fv.Min, fv.Max)
	}
}

func TestToGraph_UnknownArchetype(t *testing.T) {
	doc := Document{Nodes: []Node{{
		ID:   "0b7e49b3-dfac-4de7-8a84-2a1f6f2b2b1a",
		Type: "wavelength",
	}}}

	g, err := ToGraph(doc)
	if err != nil {
		t.Fatalf("ToGraph() error = %v", err)
	}
	n := g.Nodes()[0]
	if n.NumSlots() != 0 {
		t.Errorf("NumSlots() = %d, want 0 for unknown archetype", n.NumSlots())
	}
	if n.Type() != shader.NodeType("wavelength") {
		t.Errorf("Type() = %q, want archetype preserved", n.Type())
	}
}

func TestToGraph_DropsUnknownAndMismatchedValues(t *testing.T) {
	doc := Document{Nodes: []Node{{
		ID:   "0b7e49b3-dfac-4de7-8a84-2a1f6f2b2b1a",
		Type: string(shader.NodeDiffuseBSDF),
		Values: map[string]Value{
			"bogus":     {Type: ValueFloat, Number: 1},
			"roughness": {Type: ValueBool, Bool: true},
		},
	}}}

	g, err := ToGraph(doc)
	if err != nil {
		t.Fatalf("ToGraph() error = %v", err)
	}
	n := g.Nodes()[0]
	if _, ok := n.ValueByKey("bogus"); ok {
		t.Error("unknown value key was not dropped")
	}
	v, _ := n.ValueByKey("roughness")
	fv, ok := v.(shader.FloatValue)
	if !ok || fv.Value != 0.0 {
		t.Errorf("roughness = %#v, want catalog default after mismatched variant", v)
	}
}

func TestToGraph_MalformedNodeID(t *testing.T) {
	doc := Document{Nodes: []Node{{ID: "nope", Type: "holdout"}}}

	if _, err := ToGraph(doc); err == nil {
		t.Error("ToGraph accepted a malformed node id")
	}
}

func TestToGraph_RestoresDefectsVerbatim(t *testing.T) {
	doc := Document{
		Nodes: []Node{{
			ID:   "0b7e49b3-dfac-4de7-8a84-2a1f6f2b2b1a",
			Type: string(shader.NodeMaterialOutput),
		}},
		Connections: []Connection{{
			From:     "11111111-2222-3333-4444-555555555555",
			FromSlot: "BSDF",
			To:       "0b7e49b3-dfac-4de7-8a84-2a1f6f2b2b1a",
			ToSlot:   "surface",
		}},
	}

	g, err := ToGraph(doc)
	if err != nil {
		t.Fatalf("ToGraph() error = %v", err)
	}
	if g.ConnectionCount() != 1 {
		t.Fatalf("ConnectionCount() = %d, want the defect restored", g.ConnectionCount())
	}
	found := false
	for _, issue := range g.Validate() {
		if issue.Code == shader.IssueDanglingConnection {
			found = true
		}
	}
	if !found {
		t.Error("restored dangling connection not reported by validation")
	}
}

func TestReadWriteGraphFile(t *testing.T) {
	g := buildMaterial(t, 4)
	path := t.TempDir() + "/material.json"

	if err := WriteGraphFile(g, path); err != nil {
		t.Fatalf("WriteGraphFile() error = %v", err)
	}
	got, err := ReadGraphFile(path)
	if err != nil {
		t.Fatalf("ReadGraphFile() error = %v", err)
	}
	if got.NodeCount() != g.NodeCount() || got.ConnectionCount() != g.ConnectionCount() {
		t.Errorf("file round trip = %d nodes, %d connections, want %d, %d",
			got.NodeCount(), got.ConnectionCount(), g.NodeCount(), g.ConnectionCount())
	}
}

func TestReadGraph_MalformedJSON(t *testing.T) {
	if _, err := ReadGraph(strings.NewReader("{not json")); err == nil {
		t.Error("ReadGraph accepted malformed JSON")
	}
}

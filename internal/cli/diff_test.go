package cli

import (
	"testing"

	"github.com/shaderforge/shadegraph/pkg/core/shader"
)

func material(t *testing.T, seed uint64) *shader.Graph {
	t.Helper()
	prev := shader.SetIDGenerator(shader.NewSeededIDGenerator(seed))
	defer shader.SetIDGenerator(prev)

	g := shader.NewGraph()
	bsdf := shader.New(shader.NodeDiffuseBSDF, shader.Int2{X: 0, Y: 0})
	out := shader.New(shader.NodeMaterialOutput, shader.Int2{X: 300, Y: 0})
	if err := g.AddNode(bsdf); err != nil {
		t.Fatal(err)
	}
	if err := g.AddNode(out); err != nil {
		t.Fatal(err)
	}
	if err := g.Connect(bsdf.ID(), "BSDF", out.ID(), "surface"); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestDiffGraphs_Identical(t *testing.T) {
	a := material(t, 1)
	b := material(t, 1)

	if d := diffGraphs(a, b); !d.Empty() {
		t.Errorf("diff of identical graphs = %+v, want empty", d)
	}
}

func TestDiffGraphs_ChangedValue(t *testing.T) {
	a := material(t, 1)
	b := material(t, 1)
	bsdf := b.Nodes()[0]
	if err := bsdf.SetValueByKey("roughness", shader.FloatValue{Value: 0.8, Min: 0, Max: 1}); err != nil {
		t.Fatal(err)
	}

	d := diffGraphs(a, b)
	if len(d.NodesChanged) != 1 || d.NodesChanged[0] != bsdf.ID() {
		t.Errorf("NodesChanged = %v, want [%s]", d.NodesChanged, bsdf.ID())
	}
	if len(d.NodesAdded) != 0 || len(d.NodesRemoved) != 0 {
		t.Errorf("unexpected add/remove: %+v", d)
	}
}

func TestDiffGraphs_AddedAndRemoved(t *testing.T) {
	a := material(t, 1)
	b := material(t, 1)

	extra := shader.New(shader.NodeEmission, shader.Int2{X: 0, Y: 100})
	if err := b.AddNode(extra); err != nil {
		t.Fatal(err)
	}
	removed := a.Nodes()[0].ID()
	b.RemoveNode(removed)

	d := diffGraphs(a, b)
	if len(d.NodesAdded) != 1 || d.NodesAdded[0] != extra.ID() {
		t.Errorf("NodesAdded = %v, want [%s]", d.NodesAdded, extra.ID())
	}
	if len(d.NodesRemoved) != 1 || d.NodesRemoved[0] != removed {
		t.Errorf("NodesRemoved = %v, want [%s]", d.NodesRemoved, removed)
	}
	// Removing the BSDF also drops its connection.
	if len(d.ConnectionsRemoved) != 1 {
		t.Errorf("ConnectionsRemoved = %v, want 1 entry", d.ConnectionsRemoved)
	}
}

func TestDiffGraphs_Connections(t *testing.T) {
	a := material(t, 1)
	b := material(t, 1)

	out := b.Nodes()[1]
	bsdf := b.Nodes()[0]
	b.Disconnect(out.ID(), "surface")
	if err := b.Connect(bsdf.ID(), "BSDF", out.ID(), "volume"); err != nil {
		t.Fatal(err)
	}

	d := diffGraphs(a, b)
	if len(d.ConnectionsAdded) != 1 || d.ConnectionsAdded[0].ToSlot != "volume" {
		t.Errorf("ConnectionsAdded = %v", d.ConnectionsAdded)
	}
	if len(d.ConnectionsRemoved) != 1 || d.ConnectionsRemoved[0].ToSlot != "surface" {
		t.Errorf("ConnectionsRemoved = %v", d.ConnectionsRemoved)
	}
}

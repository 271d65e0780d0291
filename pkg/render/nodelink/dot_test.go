package nodelink

import (
	"strings"
	"testing"

	"github.com/shaderforge/shadegraph/pkg/core/shader"
)

func buildGraph(t *testing.T) *shader.Graph {
	t.Helper()
	g := shader.NewGraph()
	bsdf := shader.New(shader.NodeGlossyBSDF, shader.Int2{X: 0, Y: 0})
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

func TestToDOT(t *testing.T) {
	g := buildGraph(t)
	dot := ToDOT(g, Options{})

	if !strings.HasPrefix(dot, "digraph G {") {
		t.Errorf("missing digraph header:\n%s", dot)
	}
	if !strings.Contains(dot, "rankdir=LR") {
		t.Error("missing left-to-right layout")
	}
	for _, n := range g.Nodes() {
		if !strings.Contains(dot, n.ID().String()) {
			t.Errorf("node %s missing from DOT", n.ID())
		}
		if !strings.Contains(dot, string(n.Type())) {
			t.Errorf("archetype %s missing from label", n.Type())
		}
	}
	if !strings.Contains(dot, "peripheries=2") {
		t.Error("material output not marked")
	}
	if !strings.Contains(dot, "BSDF") || !strings.Contains(dot, "surface") {
		t.Error("edge slot keys missing")
	}
}

func TestToDOT_Detailed(t *testing.T) {
	g := buildGraph(t)
	bsdf := g.Nodes()[0]
	if err := bsdf.SetValueByKey("roughness", shader.FloatValue{
		Value: 0.25, Min: 0.0, Max: 1.0,
	}); err != nil {
		t.Fatal(err)
	}

	plain := ToDOT(g, Options{})
	detailed := ToDOT(g, Options{Detailed: true})

	if strings.Contains(plain, "roughness: 0.25") {
		t.Error("plain labels leak parameter values")
	}
	if !strings.Contains(detailed, "roughness: 0.25") {
		t.Errorf("detailed labels missing parameter values:\n%s", detailed)
	}
	if !strings.Contains(detailed, "distribution: ggx") {
		t.Error("detailed labels missing enum selection")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" height="20pt" viewBox="0.00 0.00 100.50 200.25">body</svg>`)
	out := string(normalizeViewBox(in))

	if !strings.Contains(out, `viewBox="0 0 100.50 200.25"`) {
		t.Errorf("viewBox not normalized: %s", out)
	}
	if !strings.Contains(out, `width="101"`) && !strings.Contains(out, `width="100"`) {
		t.Errorf("width not rewritten: %s", out)
	}
	if !strings.HasSuffix(out, "body</svg>") {
		t.Errorf("svg body lost: %s", out)
	}
}

func TestNormalizeViewBox_NoViewBox(t *testing.T) {
	in := []byte(`<svg>body</svg>`)
	if got := string(normalizeViewBox(in)); got != `<svg>body</svg>` {
		t.Errorf("svg without viewBox changed: %s", got)
	}
}

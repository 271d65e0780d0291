package shader

import (
	"strings"
	"testing"
)

func issueCodes(issues []ValidationIssue) []IssueCode {
	codes := make([]IssueCode, len(issues))
	for i, issue := range issues {
		codes[i] = issue.Code
	}
	return codes
}

func hasCode(issues []ValidationIssue, code IssueCode) bool {
	for _, issue := range issues {
		if issue.Code == code {
			return true
		}
	}
	return false
}

func TestValidate_WellFormedGraph(t *testing.T) {
	g := buildTestGraph(t, 1)

	if issues := g.Validate(); len(issues) != 0 {
		t.Errorf("Validate() = %v, want no issues", issueCodes(issues))
	}
	if msg := g.ValidationMessage(); !strings.Contains(msg, "validation passed") {
		t.Errorf("ValidationMessage() = %q, want pass message", msg)
	}
}

func TestValidate_NoOutputNode(t *testing.T) {
	g := NewGraph()
	g.AddNode(New(NodeDiffuseBSDF, Int2{0, 0}))

	if !hasCode(g.Validate(), IssueNoOutputNode) {
		t.Error("missing material output not reported")
	}
}

func TestValidate_MultipleOutputNodes(t *testing.T) {
	g := buildTestGraph(t, 1)
	g.AddNode(New(NodeMaterialOutput, Int2{500, 0}))

	if !hasCode(g.Validate(), IssueMultipleOutputs) {
		t.Error("duplicate material output not reported")
	}
}

func TestValidate_TypeMismatch(t *testing.T) {
	g := NewGraph()
	bump := New(NodeBump, Int2{0, 0})
	out := New(NodeMaterialOutput, Int2{10, 0})
	g.AddNode(bump)
	g.AddNode(out)
	// Vector output into a closure input.
	if err := g.Connect(bump.ID(), "normal", out.ID(), "surface"); err != nil {
		t.Fatal(err)
	}

	if !hasCode(g.Validate(), IssueTypeMismatch) {
		t.Error("closure/vector mismatch not reported")
	}
}

func TestValidate_VectorIntoVectorAllowed(t *testing.T) {
	g := NewGraph()
	bump := New(NodeBump, Int2{0, 0})
	bsdf := New(NodeDiffuseBSDF, Int2{5, 0})
	out := New(NodeMaterialOutput, Int2{10, 0})
	g.AddNode(bump)
	g.AddNode(bsdf)
	g.AddNode(out)
	if err := g.Connect(bump.ID(), "normal", bsdf.ID(), "normal"); err != nil {
		t.Fatal(err)
	}
	if err := g.Connect(bsdf.ID(), "BSDF", out.ID(), "surface"); err != nil {
		t.Fatal(err)
	}

	if hasCode(g.Validate(), IssueTypeMismatch) {
		t.Error("vector-to-vector connection reported as mismatch")
	}
}

func TestValidate_DanglingConnection(t *testing.T) {
	g := buildTestGraph(t, 1)
	bsdf := g.Nodes()[0]

	// Redefining the node to a different archetype orphans its slots while
	// the connection remains.
	bsdf.CopyContentFrom(New(NodeHoldout, Int2{0, 0}))

	if !hasCode(g.Validate(), IssueDanglingConnection) {
		t.Error("connection to a vanished slot not reported")
	}
}

func TestValidate_InputMultipleFeeds(t *testing.T) {
	g := buildTestGraph(t, 1)
	out := g.Nodes()[1]
	glossy := New(NodeGlossyBSDF, Int2{0, 50})
	g.AddNode(glossy)

	// A saved document may carry a second feed into an occupied input;
	// restoring it verbatim must surface as a finding, not a load failure.
	g.RestoreConnection(Connection{
		FromNode: glossy.ID(), FromSlot: "BSDF",
		ToNode: out.ID(), ToSlot: "surface",
	})

	if !hasCode(g.Validate(), IssueInputMultipleFeeds) {
		t.Error("double-fed input not reported")
	}
}

func TestValidate_Cycle(t *testing.T) {
	g := NewGraph()
	a := New(NodeMixShader, Int2{0, 0})
	b := New(NodeMixShader, Int2{5, 0})
	out := New(NodeMaterialOutput, Int2{10, 0})
	g.AddNode(a)
	g.AddNode(b)
	g.AddNode(out)
	if err := g.Connect(a.ID(), "closure", b.ID(), "closure1"); err != nil {
		t.Fatal(err)
	}
	if err := g.Connect(b.ID(), "closure", a.ID(), "closure1"); err != nil {
		t.Fatal(err)
	}
	if err := g.Connect(b.ID(), "closure", out.ID(), "surface"); err != nil {
		t.Fatal(err)
	}

	if !hasCode(g.Validate(), IssueCycle) {
		t.Error("connection cycle not reported")
	}
}

func TestValidationMessage_ListsIssues(t *testing.T) {
	g := NewGraph()
	g.AddNode(New(NodeDiffuseBSDF, Int2{0, 0}))

	msg := g.ValidationMessage()
	if !strings.Contains(msg, string(IssueNoOutputNode)) {
		t.Errorf("ValidationMessage() = %q, want %s finding", msg, IssueNoOutputNode)
	}
}

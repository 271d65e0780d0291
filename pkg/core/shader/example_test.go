package shader_test

import (
	"fmt"

	"github.com/shaderforge/shadegraph/pkg/core/shader"
)

// ExampleGraph shows assembling and validating a minimal material.
func ExampleGraph() {
	prev := shader.SetIDGenerator(shader.NewSeededIDGenerator(1))
	defer shader.SetIDGenerator(prev)

	g := shader.NewGraph()
	bsdf := shader.New(shader.NodeDiffuseBSDF, shader.Int2{X: 0, Y: 0})
	out := shader.New(shader.NodeMaterialOutput, shader.Int2{X: 300, Y: 0})

	if err := g.AddNode(bsdf); err != nil {
		fmt.Println(err)
	}
	if err := g.AddNode(out); err != nil {
		fmt.Println(err)
	}
	if err := g.Connect(bsdf.ID(), "BSDF", out.ID(), "surface"); err != nil {
		fmt.Println(err)
	}

	fmt.Println(g.ValidationMessage())
	// Output: validation passed: 2 nodes, 1 connections
}

// ExampleNode_SlotIndex shows addressing slots by direction and display name.
func ExampleNode_SlotIndex() {
	n := shader.New(shader.NodeDiffuseBSDF, shader.Int2{X: 0, Y: 0})

	if i, ok := n.SlotIndex(shader.DirectionInput, "Roughness"); ok {
		s, _ := n.Slot(i)
		fmt.Printf("%d %s %s\n", i, s.Key, s.Type)
	}
	// Output: 2 roughness float
}

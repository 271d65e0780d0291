package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shaderforge/shadegraph/pkg/core/shader"
	"github.com/shaderforge/shadegraph/pkg/graph"
)

// diffCommand creates the graph comparison command.
func (c *CLI) diffCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <file-a> <file-b>",
		Short: "Compare two graph documents",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDiff(args[0], args[1])
		},
	}
}

func (c *CLI) runDiff(pathA, pathB string) error {
	a, err := graph.ReadGraphFile(pathA)
	if err != nil {
		return err
	}
	b, err := graph.ReadGraphFile(pathB)
	if err != nil {
		return err
	}

	d := diffGraphs(a, b)
	if d.Empty() {
		printSuccess("graphs are identical")
		printStats(a.NodeCount(), a.ConnectionCount())
		return nil
	}

	for _, id := range d.NodesAdded {
		n, _ := b.Node(id)
		printDetail("+ node %s (%s)", id, n.Type())
	}
	for _, id := range d.NodesRemoved {
		n, _ := a.Node(id)
		printDetail("- node %s (%s)", id, n.Type())
	}
	for _, id := range d.NodesChanged {
		n, _ := b.Node(id)
		printDetail("~ node %s (%s)", id, n.Type())
	}
	for _, conn := range d.ConnectionsAdded {
		printDetail("+ %s.%s %s %s.%s", conn.FromNode, conn.FromSlot, iconArrow, conn.ToNode, conn.ToSlot)
	}
	for _, conn := range d.ConnectionsRemoved {
		printDetail("- %s.%s %s %s.%s", conn.FromNode, conn.FromSlot, iconArrow, conn.ToNode, conn.ToSlot)
	}

	return fmt.Errorf("graphs differ: %d node and %d connection change(s)",
		len(d.NodesAdded)+len(d.NodesRemoved)+len(d.NodesChanged),
		len(d.ConnectionsAdded)+len(d.ConnectionsRemoved))
}

// =============================================================================
// Diff Computation
// =============================================================================

// graphDiff summarizes the differences between two graphs, keyed by node
// identity.
type graphDiff struct {
	NodesAdded         []shader.NodeID
	NodesRemoved       []shader.NodeID
	NodesChanged       []shader.NodeID
	ConnectionsAdded   []shader.Connection
	ConnectionsRemoved []shader.Connection
}

// Empty reports whether the diff holds no changes.
func (d graphDiff) Empty() bool {
	return len(d.NodesAdded) == 0 && len(d.NodesRemoved) == 0 && len(d.NodesChanged) == 0 &&
		len(d.ConnectionsAdded) == 0 && len(d.ConnectionsRemoved) == 0
}

// diffGraphs compares two graphs by node identity: nodes present only in b
// are added, only in a removed, and present in both but unequal changed.
// Connections are compared as sets.
func diffGraphs(a, b *shader.Graph) graphDiff {
	var d graphDiff

	for _, n := range b.Nodes() {
		prev, ok := a.Node(n.ID())
		switch {
		case !ok:
			d.NodesAdded = append(d.NodesAdded, n.ID())
		case !prev.Equal(n):
			d.NodesChanged = append(d.NodesChanged, n.ID())
		}
	}
	for _, n := range a.Nodes() {
		if _, ok := b.Node(n.ID()); !ok {
			d.NodesRemoved = append(d.NodesRemoved, n.ID())
		}
	}

	inA := make(map[shader.Connection]bool)
	for _, conn := range a.Connections() {
		inA[conn] = true
	}
	inB := make(map[shader.Connection]bool)
	for _, conn := range b.Connections() {
		inB[conn] = true
		if !inA[conn] {
			d.ConnectionsAdded = append(d.ConnectionsAdded, conn)
		}
	}
	for _, conn := range a.Connections() {
		if !inB[conn] {
			d.ConnectionsRemoved = append(d.ConnectionsRemoved, conn)
		}
	}

	return d
}

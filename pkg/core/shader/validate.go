package shader

import (
	"fmt"
	"strings"
)

// IssueCode classifies a validation finding.
type IssueCode string

const (
	IssueDanglingConnection IssueCode = "DANGLING_CONNECTION"
	IssueInputMultipleFeeds IssueCode = "INPUT_MULTIPLE_FEEDS"
	IssueTypeMismatch       IssueCode = "TYPE_MISMATCH"
	IssueNoOutputNode       IssueCode = "NO_OUTPUT_NODE"
	IssueMultipleOutputs    IssueCode = "MULTIPLE_OUTPUT_NODES"
	IssueCycle              IssueCode = "CYCLE"
)

// ValidationIssue is one finding from [Graph.Validate]. Node identifies the
// offending node where one exists; structural findings leave it zero.
type ValidationIssue struct {
	Code    IssueCode
	Message string
	Node    NodeID
}

func (i ValidationIssue) String() string {
	if i.Node != (NodeID{}) {
		return fmt.Sprintf("%s: %s (node %s)", i.Code, i.Message, i.Node)
	}
	return fmt.Sprintf("%s: %s", i.Code, i.Message)
}

// Validate checks the graph for structural problems and returns all
// findings. An empty result means the graph is well-formed. Validation
// never mutates the graph and never fails; it reports.
func (g *Graph) Validate() []ValidationIssue {
	var issues []ValidationIssue

	issues = append(issues, g.validateConnections()...)
	issues = append(issues, g.validateOutputNode()...)
	issues = append(issues, g.detectCycles()...)

	return issues
}

// ValidationMessage renders the findings as the human-readable text shown
// by debug surfaces: one line per issue, or a pass message.
func (g *Graph) ValidationMessage() string {
	issues := g.Validate()
	if len(issues) == 0 {
		return fmt.Sprintf("validation passed: %d nodes, %d connections", len(g.nodes), len(g.connections))
	}
	lines := make([]string, len(issues))
	for i, issue := range issues {
		lines[i] = issue.String()
	}
	return strings.Join(lines, "\n")
}

func (g *Graph) validateConnections() []ValidationIssue {
	var issues []ValidationIssue
	feeds := make(map[Connection]int) // keyed by (ToNode, ToSlot) via zeroed From fields

	for _, c := range g.connections {
		src, okSrc := g.byID[c.FromNode]
		dst, okDst := g.byID[c.ToNode]
		if !okSrc || !okDst {
			issues = append(issues, ValidationIssue{
				Code:    IssueDanglingConnection,
				Message: fmt.Sprintf("connection %s.%s -> %s.%s references a missing node", c.FromNode, c.FromSlot, c.ToNode, c.ToSlot),
			})
			continue
		}

		srcIdx, okSrcSlot := src.SlotIndexByKey(DirectionOutput, c.FromSlot)
		dstIdx, okDstSlot := dst.SlotIndexByKey(DirectionInput, c.ToSlot)
		if !okSrcSlot || !okDstSlot {
			issues = append(issues, ValidationIssue{
				Code:    IssueDanglingConnection,
				Message: fmt.Sprintf("connection %s.%s -> %s.%s references a missing slot", c.FromNode, c.FromSlot, c.ToNode, c.ToSlot),
			})
			continue
		}

		srcSlot, _ := src.Slot(srcIdx)
		dstSlot, _ := dst.Slot(dstIdx)
		if (srcSlot.Type == SlotClosure) != (dstSlot.Type == SlotClosure) {
			issues = append(issues, ValidationIssue{
				Code:    IssueTypeMismatch,
				Message: fmt.Sprintf("cannot connect %s output %q to %s input %q", srcSlot.Type, c.FromSlot, dstSlot.Type, c.ToSlot),
				Node:    c.ToNode,
			})
		}

		key := Connection{ToNode: c.ToNode, ToSlot: c.ToSlot}
		feeds[key]++
		if feeds[key] == 2 {
			issues = append(issues, ValidationIssue{
				Code:    IssueInputMultipleFeeds,
				Message: fmt.Sprintf("input slot %q has more than one feed", c.ToSlot),
				Node:    c.ToNode,
			})
		}
	}
	return issues
}

func (g *Graph) validateOutputNode() []ValidationIssue {
	var outputs []NodeID
	for _, n := range g.nodes {
		if n.Type() == NodeMaterialOutput {
			outputs = append(outputs, n.ID())
		}
	}
	switch {
	case len(outputs) == 0:
		return []ValidationIssue{{
			Code:    IssueNoOutputNode,
			Message: "graph has no material output node",
		}}
	case len(outputs) > 1:
		issues := make([]ValidationIssue, 0, len(outputs)-1)
		for _, id := range outputs[1:] {
			issues = append(issues, ValidationIssue{
				Code:    IssueMultipleOutputs,
				Message: "graph has more than one material output node",
				Node:    id,
			})
		}
		return issues
	}
	return nil
}

// detectCycles runs depth-first search with white/gray/black coloring over
// the connection adjacency.
func (g *Graph) detectCycles() []ValidationIssue {
	const (
		white = iota
		gray
		black
	)

	adjacency := make(map[NodeID][]NodeID)
	for _, c := range g.connections {
		adjacency[c.FromNode] = append(adjacency[c.FromNode], c.ToNode)
	}

	color := make(map[NodeID]int, len(g.nodes))
	var cycleAt NodeID
	var hasCycle bool

	var dfs func(id NodeID)
	dfs = func(id NodeID) {
		color[id] = gray
		for _, next := range adjacency[id] {
			switch color[next] {
			case white:
				dfs(next)
			case gray:
				hasCycle = true
				cycleAt = next
				return
			}
		}
		color[id] = black
	}

	for _, n := range g.nodes {
		if color[n.ID()] == white {
			dfs(n.ID())
			if hasCycle {
				return []ValidationIssue{{
					Code:    IssueCycle,
					Message: "graph contains a connection cycle",
					Node:    cycleAt,
				}}
			}
		}
	}
	return nil
}

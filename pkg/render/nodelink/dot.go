package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/shaderforge/shadegraph/pkg/core/shader"
	"github.com/shaderforge/shadegraph/pkg/observability"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes stored parameter values in node labels.
	// When false, only the archetype and a short id are shown.
	Detailed bool
}

// ToDOT converts a shader graph to Graphviz DOT format for node-link
// visualization. The resulting DOT string can be rendered using [RenderSVG].
//
// Material output nodes are rendered with a doubled outline to mark the
// root of the closure flow; edges carry the slot keys they connect.
func ToDOT(g *shader.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.7;\n")
	buf.WriteString("  nodesep=0.4;\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		label := fmtLabel(n, opts.Detailed)
		attrs := fmtAttrs(n, label)
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID(), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, c := range g.Connections() {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q, fontsize=10];\n",
			c.FromNode, c.ToNode, c.FromSlot+" → "+c.ToSlot)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n *shader.Node, detailed bool) string {
	label := fmt.Sprintf("%s\n%s", n.Type(), shortID(n.ID()))
	if !detailed {
		return label
	}

	var parts []string
	for i := 0; i < n.NumSlots(); i++ {
		s, _ := n.Slot(i)
		if !s.HasValue() {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", s.Key, fmtValue(s.Value)))
	}
	if len(parts) == 0 {
		return label
	}
	return label + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(n *shader.Node, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if n.Type() == shader.NodeMaterialOutput {
		attrs = append(attrs, "peripheries=2", "fillcolor=lightyellow")
	}
	return attrs
}

func fmtValue(v shader.SlotValue) string {
	switch w := v.(type) {
	case shader.FloatValue:
		return trimFloat(w.Value)
	case shader.BoolValue:
		return strconv.FormatBool(w.Value)
	case shader.ColorValue:
		return fmtFloat3(w.Value)
	case shader.VectorValue:
		return fmtFloat3(w.Value)
	case shader.EnumValue:
		return w.Selected
	case shader.RGBCurveValue:
		return fmt.Sprintf("curve[%d]", w.Curve.Size())
	case shader.VectorCurveValue:
		return fmt.Sprintf("curve[%d] %s", w.Curve.Size(), fmtFloat3(w.Value))
	default:
		return "?"
	}
}

func fmtFloat3(v shader.Float3) string {
	return fmt.Sprintf("(%s, %s, %s)", trimFloat(v.X), trimFloat(v.Y), trimFloat(v.Z))
}

func trimFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', 4, 32)
}

func shortID(id shader.NodeID) string {
	s := id.String()
	if len(s) > 8 {
		return s[:8]
	}
	return s
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or embedding.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	start := time.Now()
	observability.Render().OnRenderStart(ctx, "svg", strings.Count(dot, "\n"))

	svg, err := renderSVG(ctx, dot)
	observability.Render().OnRenderComplete(ctx, "svg", time.Since(start), err)
	return svg, err
}

func renderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

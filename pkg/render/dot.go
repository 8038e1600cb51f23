package render

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/satopan/dtreeviz/pkg/tree"
)

// Options configures decision-tree diagram rendering.
type Options struct {
	// Rankdir sets the layout direction: "TB" (default), "LR", "BT",
	// or "RL".
	Rankdir string

	// Detailed includes node metadata in labels.
	// When false, only the node label (or ID) is shown.
	Detailed bool
}

// ToDOT converts a tree to Graphviz DOT format.
// The resulting DOT string can be rendered with [SVG] or processed with
// external Graphviz tools.
//
// Nodes that carry an image path are emitted with a Graphviz image
// attribute and no label box, so the layout engine places the chart file
// as an image placeholder in its output. [svg.Inline] later replaces
// those placeholders with the chart content.
func ToDOT(t *tree.Tree, opts Options) string {
	rankdir := opts.Rankdir
	if rankdir == "" {
		rankdir = "TB"
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, n := range t.Nodes() {
		attrs := fmtAttrs(*n, opts.Detailed)
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range t.Edges() {
		if e.Label != "" {
			fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", e.From, e.To, e.Label)
		} else {
			fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtAttrs(n tree.Node, detailed bool) []string {
	if n.HasImage() {
		return []string{
			fmt.Sprintf("image=%q", n.Image),
			`label=""`,
			"shape=none",
		}
	}
	return []string{fmt.Sprintf("label=%q", fmtLabel(n, detailed))}
}

func fmtLabel(n tree.Node, detailed bool) string {
	label := n.Label
	if label == "" {
		label = n.ID
	}
	if !detailed || len(n.Meta) == 0 {
		return label
	}

	parts := []string{label}
	for _, k := range slices.Sorted(maps.Keys(n.Meta)) {
		parts = append(parts, fmt.Sprintf("%s: %v", k, n.Meta[k]))
	}
	return strings.Join(parts, "\n")
}

// SVG renders a DOT graph to SVG using Graphviz.
// The output is returned unmodified, header line and image placeholders
// included, so it can feed [svg.Inline] or [svg.ReadShape] directly.
func SVG(dot string) (string, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return "", fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return "", fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	return buf.String(), nil
}

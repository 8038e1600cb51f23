// Package render turns decision trees into Graphviz diagrams.
//
// # Overview
//
// This package produces the document that the rest of the pipeline works
// on: a tree becomes DOT source, and Graphviz lays it out as SVG. Nodes
// with an image path are emitted as image placeholders, which is what
// [github.com/satopan/dtreeviz/pkg/svg.Inline] later replaces with the
// actual chart content.
//
// # Usage
//
// Convert a tree to DOT format, then render to SVG:
//
//	dot := render.ToDOT(t, render.Options{Rankdir: "LR"})
//	svg, err := render.SVG(dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Rankdir: layout direction, "TB" (default), "LR", "BT", or "RL"
//   - Detailed: when true, node labels include all metadata
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process layout,
// so no external Graphviz installation is required.
package render

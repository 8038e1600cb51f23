// Package pkg provides the core libraries for dtreeviz decision tree visualization.
//
// # Overview
//
// dtreeviz turns trained decision trees into annotated SVG diagrams: each
// node can carry a per-node chart (feature histograms, leaf distributions)
// that is embedded directly into the final document. The pkg directory is
// organized into five main areas:
//
//  1. [tree] - Domain model (nodes, edges, structural validation)
//  2. [io] - Serialization (JSON import/export of tree descriptions)
//  3. [render] - Layout and rendering (DOT generation, Graphviz SVG)
//  4. [svg] - Post-processing (chart embedding, header probing, placeholders)
//  5. [errors] - Structured errors with stable machine-readable codes
//
// # Architecture
//
// The typical data flow through dtreeviz:
//
//	Tree description (JSON)
//	         ↓
//	    [io] package (import + structural checks)
//	         ↓
//	    [tree] package (validation: single root, no cycles)
//	         ↓
//	    [render] package (DOT generation, Graphviz layout)
//	         ↓
//	    [svg] package (embed referenced charts)
//	         ↓
//	    Self-contained SVG output
//
// # Quick Start
//
// Load a tree, render it, and embed its node charts:
//
//	import (
//	    "github.com/satopan/dtreeviz/pkg/io"
//	    "github.com/satopan/dtreeviz/pkg/render"
//	    "github.com/satopan/dtreeviz/pkg/svg"
//	)
//
//	// 1. Load and validate
//	t, _ := io.ImportJSON("tree.json")
//	_ = t.Validate()
//
//	// 2. Generate DOT and lay it out
//	dot := render.ToDOT(t, render.Options{Rankdir: "TB"})
//	out, _ := render.SVG(dot)
//
//	// 3. Embed the referenced charts
//	final, _ := svg.Inline(out)
//
// # Main Packages
//
// ## Domain Model
//
// [tree] - Rooted tree structure with string-keyed nodes, labeled edges, and
// free-form per-node metadata. Insert-time checks reject duplicate nodes,
// dangling edge endpoints, and second parents; [tree.Tree.Validate] covers
// the whole-structure properties (exactly one root, no cycles).
//
// ## Serialization
//
// [io] - JSON import and export of tree descriptions. The format is a flat
// node list plus an edge list, so it round-trips cleanly and diffs well.
//
// ## Rendering
//
// [render] - DOT source generation and Graphviz layout. Layout runs in-process
// through a WebAssembly build of Graphviz, so no system installation is
// needed. Nodes with an image path are drawn as that image.
//
// ## Post-processing
//
// [svg] - SVG document utilities:
//
//   - [svg.Inline]: replace image placeholders with the referenced vector files
//   - [svg.Placeholders]: report the references without modifying anything
//   - [svg.ReadShape]: probe a file's header for its declared dimensions
//   - [svg.WriteBlankPNG]: write a stand-in raster file for layout sizing
//
// ## Infrastructure
//
// [errors] - Structured errors carrying a stable [errors.Code] so callers can
// branch on failure class without string matching.
//
// [observability] - Optional hooks for metrics and tracing around the load,
// layout, and embed stages. No-op by default.
//
// [buildinfo] - Version, commit, and build date stamped at link time.
//
// # Common Workflows
//
// Inspect a rendered document's chart references:
//
//	refs, _ := svg.Placeholders(doc)
//	for _, ref := range refs {
//	    fmt.Printf("%s -> %s\n", ref.Href, ref.Path)
//	}
//
// Create stand-in raster files before layout:
//
//	for _, n := range t.Nodes() {
//	    if n.HasImage() {
//	        _ = svg.WriteBlankPNG(n.Image)
//	    }
//	}
//
// Check a chart's declared size without parsing the whole file:
//
//	shape, err := svg.ReadShape("node0.svg")
//	if err == nil {
//	    fmt.Printf("%g x %g pt\n", shape.Width, shape.Height)
//	}
//
// Branch on failure class:
//
//	if _, err := svg.Inline(doc); errors.Is(err, errors.ErrCodeFileAccess) {
//	    // a referenced chart file was missing or malformed
//	}
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/svg/...       # Specific package
//	go test -run Example        # Examples only
//
// [tree]: https://pkg.go.dev/github.com/satopan/dtreeviz/pkg/tree
// [io]: https://pkg.go.dev/github.com/satopan/dtreeviz/pkg/io
// [render]: https://pkg.go.dev/github.com/satopan/dtreeviz/pkg/render
// [svg]: https://pkg.go.dev/github.com/satopan/dtreeviz/pkg/svg
// [errors]: https://pkg.go.dev/github.com/satopan/dtreeviz/pkg/errors
// [observability]: https://pkg.go.dev/github.com/satopan/dtreeviz/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/satopan/dtreeviz/pkg/buildinfo
package pkg

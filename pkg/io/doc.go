// Package io provides JSON import and export for decision trees.
//
// # Overview
//
// This package enables serialization of trees to and from a simple JSON
// format. The format is designed for:
//
//   - Exchange with the training side that fits the tree model
//   - Integration with external tools that produce or consume tree data
//   - Round-trip preservation: import, render, export, and re-import identically
//
// # JSON Format
//
// The format has two required top-level arrays and an optional meta object:
//
//	{
//	  "nodes": [
//	    {"id": "0", "label": "petal_width < 0.8"},
//	    {"id": "1", "label": "setosa", "image": "node1.png"},
//	    {"id": "2", "label": "versicolor", "image": "node2.png"}
//	  ],
//	  "edges": [
//	    {"from": "0", "to": "1", "label": "<"},
//	    {"from": "0", "to": "2", "label": ">="}
//	  ],
//	  "meta": {"dataset": "iris"}
//	}
//
// # Node Fields
//
// Required:
//   - id: Unique string identifier (also used as the display label when no
//     label is given)
//
// Optional:
//   - label: Display label, typically the split condition or predicted class
//   - image: Path to the node's chart placeholder (a .png reference that
//     inlining later resolves to the .svg next to it)
//   - meta: Freeform object for per-node data such as sample counts
//
// # Import
//
// Use [ImportJSON] to read a tree from a file path, or [ReadJSON] to read
// from any io.Reader:
//
//	t, err := io.ImportJSON("tree.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Both functions rebuild the tree node by node, so structural violations
// (duplicate IDs, unknown edge endpoints, a second parent) surface as errors
// naming the node or edge that caused them. Rootlessness and cycles are
// checked separately with [tree.Tree.Validate], since a partially built
// document may legitimately hold them mid-stream.
//
// # Export
//
// Use [ExportJSON] to write a tree to a file, or [WriteJSON] to write to any
// io.Writer:
//
//	err := io.ExportJSON(t, "tree.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The export includes all node and edge data in insertion order, including
// metadata. This enables full round-trip fidelity: import a tree, render it,
// export the result, and re-import identically.
//
// # Concurrency
//
// All functions in this package are safe to call concurrently with other
// readers of the same tree, but not with concurrent modifications. The
// [ReadJSON] and [ImportJSON] functions create independent tree instances
// that can be used and modified freely after import.
//
// [tree.Tree.Validate]: github.com/satopan/dtreeviz/pkg/tree.Tree.Validate
package io

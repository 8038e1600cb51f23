// Package tree provides a rooted decision-tree container that feeds the
// rendering pipeline.
//
// # Overview
//
// Dtreeviz turns fitted decision trees into annotated diagrams where each
// node can display a per-node chart instead of a plain label. This package
// provides the core data structure: nodes identified by unique IDs, edges
// from parent to child carrying branch labels, and optional image paths on
// nodes pointing at chart files that later stages embed.
//
// # Basic Usage
//
// Create a new tree with [New], add nodes with [Tree.AddNode], and edges
// with [Tree.AddEdge]. Nodes must have unique IDs, edges can only connect
// existing nodes, and every node accepts at most one parent:
//
//	t := tree.New(nil)
//	t.AddNode(tree.Node{ID: "0", Label: "petal_width < 0.8"})
//	t.AddNode(tree.Node{ID: "1", Label: "setosa", Image: "node1.png"})
//	t.AddEdge(tree.Edge{From: "0", To: "1", Label: "<"})
//
// Query the structure with [Tree.Children], [Tree.Parent], [Tree.Root],
// and [Tree.Leaves]. Use [Tree.Validate] to verify integrity (exactly one
// root, no cycles) before rendering.
//
// # Ordering
//
// Nodes and edges keep their insertion order, and all accessors return
// them that way. Derived artifacts such as DOT output are therefore
// deterministic for the same build sequence.
//
// # Metadata
//
// Both nodes and the tree itself support arbitrary metadata via [Metadata]
// maps, used to carry model details (impurity, sample counts) that
// rendering may surface. Metadata maps are never nil after creation.
//
// # Concurrency
//
// Tree instances are not safe for concurrent use. Callers must synchronize
// access if multiple goroutines read or modify the same tree.
package tree

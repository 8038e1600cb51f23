package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/satopan/dtreeviz/pkg/tree"
)

type document struct {
	Nodes []node        `json:"nodes"`
	Edges []edge        `json:"edges"`
	Meta  tree.Metadata `json:"meta,omitempty"`
}

type node struct {
	ID    string        `json:"id"`
	Label string        `json:"label,omitempty"`
	Image string        `json:"image,omitempty"`
	Meta  tree.Metadata `json:"meta,omitempty"`
}

type edge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label,omitempty"`
}

// WriteJSON encodes a tree as JSON and writes it to w.
// The output includes all nodes (with labels, image paths and metadata),
// all edges, and the tree-level metadata. This format can be re-imported
// with [ReadJSON] for round-trip processing.
func WriteJSON(t *tree.Tree, w io.Writer) error {
	out := document{
		Nodes: make([]node, len(t.Nodes())),
		Edges: make([]edge, len(t.Edges())),
	}
	if len(t.Meta()) > 0 {
		out.Meta = t.Meta()
	}

	for i, n := range t.Nodes() {
		nd := node{ID: n.ID, Label: n.Label, Image: n.Image}
		if len(n.Meta) > 0 {
			nd.Meta = n.Meta
		}
		out.Nodes[i] = nd
	}
	for i, e := range t.Edges() {
		out.Edges[i] = edge{From: e.From, To: e.To, Label: e.Label}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a tree to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(t *tree.Tree, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(t, f)
}

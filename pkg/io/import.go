package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/satopan/dtreeviz/pkg/tree"
)

// ReadJSON decodes a JSON tree from r.
//
// The input must be a JSON object with "nodes" and "edges" arrays:
//
//	{
//	  "nodes": [{"id": "0", "label": "x < 1"}, {"id": "1", "image": "node1.png"}],
//	  "edges": [{"from": "0", "to": "1", "label": "<"}]
//	}
//
// Each node must have an "id" field. Optional fields:
//   - label: display text for the node
//   - image: path to a per-node chart file
//   - meta: object with arbitrary key-value pairs
//
// Each edge must have "from" and "to" fields that reference node IDs and
// may carry a "label". A top-level "meta" object becomes the tree-level
// metadata.
//
// ReadJSON returns an error if:
//   - The JSON is malformed or invalid
//   - A node has a missing or duplicate ID
//   - An edge references an unknown node ID or gives a node a second parent
//
// Errors are wrapped with context describing which node or edge caused
// the problem. Use errors.Is to check for specific tree errors.
//
// The returned tree is independent of r and can be modified safely after
// ReadJSON returns. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*tree.Tree, error) {
	var data document
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	t := tree.New(data.Meta)
	for _, n := range data.Nodes {
		nd := tree.Node{ID: n.ID, Label: n.Label, Image: n.Image, Meta: n.Meta}
		if err := t.AddNode(nd); err != nil {
			return nil, fmt.Errorf("node %s: %w", n.ID, err)
		}
	}
	for _, e := range data.Edges {
		if err := t.AddEdge(tree.Edge{From: e.From, To: e.To, Label: e.Label}); err != nil {
			return nil, fmt.Errorf("edge %s->%s: %w", e.From, e.To, err)
		}
	}

	return t, nil
}

// ImportJSON reads a JSON file at path and returns the decoded tree.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. If the file cannot be opened, or if decoding fails, ImportJSON
// returns an error describing the failure. The error wraps the underlying
// cause with the file path for context.
//
// ImportJSON returns the same validation errors as [ReadJSON] for
// malformed documents or tree constraint violations.
func ImportJSON(path string) (*tree.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

package io

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/satopan/dtreeviz/pkg/tree"
)

func TestRoundTrip(t *testing.T) {
	src := tree.New(tree.Metadata{"dataset": "iris"})
	if err := src.AddNode(tree.Node{ID: "0", Label: "petal_width < 0.8", Meta: tree.Metadata{"samples": 150.0}}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if err := src.AddNode(tree.Node{ID: "1", Label: "setosa", Image: "node1.png"}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if err := src.AddEdge(tree.Edge{From: "0", To: "1", Label: "<"}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(src, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	if got.NodeCount() != 2 || got.EdgeCount() != 1 {
		t.Errorf("round trip = %d nodes %d edges, want 2 and 1", got.NodeCount(), got.EdgeCount())
	}
	n, ok := got.Node("1")
	if !ok {
		t.Fatal("node 1 missing after round trip")
	}
	if n.Image != "node1.png" {
		t.Errorf("image = %q, want node1.png", n.Image)
	}
	if got.Edges()[0].Label != "<" {
		t.Errorf("edge label = %q, want <", got.Edges()[0].Label)
	}
	if got.Meta()["dataset"] != "iris" {
		t.Errorf("tree meta = %v, want dataset iris", got.Meta())
	}
	n0, _ := got.Node("0")
	if n0.Meta["samples"] != 150.0 {
		t.Errorf("node meta samples = %v, want 150", n0.Meta["samples"])
	}
}

func TestReadJSON_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:  "Malformed",
			input: `{"nodes": [`,
		},
		{
			name:    "MissingID",
			input:   `{"nodes": [{"label": "no id"}], "edges": []}`,
			wantErr: tree.ErrInvalidNodeID,
		},
		{
			name:    "DuplicateID",
			input:   `{"nodes": [{"id": "a"}, {"id": "a"}], "edges": []}`,
			wantErr: tree.ErrDuplicateNodeID,
		},
		{
			name:    "UnknownEdgeTarget",
			input:   `{"nodes": [{"id": "a"}], "edges": [{"from": "a", "to": "b"}]}`,
			wantErr: tree.ErrUnknownTargetNode,
		},
		{
			name: "SecondParent",
			input: `{"nodes": [{"id": "a"}, {"id": "b"}, {"id": "c"}],
				"edges": [{"from": "a", "to": "c"}, {"from": "b", "to": "c"}]}`,
			wantErr: tree.ErrMultipleParents,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("ReadJSON succeeded, want error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestImportExport(t *testing.T) {
	src := tree.New(nil)
	if err := src.AddNode(tree.Node{ID: "root"}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}

	path := filepath.Join(t.TempDir(), "tree.json")
	if err := ExportJSON(src, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if got.NodeCount() != 1 {
		t.Errorf("imported %d nodes, want 1", got.NodeCount())
	}
}

func TestImportJSON_MissingFile(t *testing.T) {
	_, err := ImportJSON(filepath.Join(t.TempDir(), "gone.json"))
	if err == nil {
		t.Fatal("ImportJSON succeeded for a missing file")
	}
}

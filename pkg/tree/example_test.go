package tree_test

import (
	"fmt"

	"github.com/satopan/dtreeviz/pkg/tree"
)

func ExampleTree_basic() {
	// Build a two-level split: root with one decision child and two leaves
	t := tree.New(nil)
	_ = t.AddNode(tree.Node{ID: "0", Label: "petal_width < 0.8"})
	_ = t.AddNode(tree.Node{ID: "1", Label: "setosa"})
	_ = t.AddNode(tree.Node{ID: "2", Label: "virginica"})
	_ = t.AddEdge(tree.Edge{From: "0", To: "1", Label: "<"})
	_ = t.AddEdge(tree.Edge{From: "0", To: "2", Label: ">="})

	fmt.Println("Nodes:", t.NodeCount())
	fmt.Println("Edges:", t.EdgeCount())
	fmt.Println("Leaves:", len(t.Leaves()))
	// Output:
	// Nodes: 3
	// Edges: 2
	// Leaves: 2
}

func ExampleTree_Root() {
	t := tree.New(nil)
	_ = t.AddNode(tree.Node{ID: "split"})
	_ = t.AddNode(tree.Node{ID: "leaf"})
	_ = t.AddEdge(tree.Edge{From: "split", To: "leaf"})

	root, _ := t.Root()
	fmt.Println("Root:", root.ID)
	fmt.Println("Children:", t.Children("split"))
	// Output:
	// Root: split
	// Children: [leaf]
}

func ExampleTree_metadata() {
	// Attach model details to nodes for later rendering
	t := tree.New(tree.Metadata{"dataset": "iris"})
	_ = t.AddNode(tree.Node{
		ID:    "0",
		Label: "petal_width < 0.8",
		Meta: tree.Metadata{
			"samples":  150,
			"impurity": 0.667,
		},
	})

	node, _ := t.Node("0")
	fmt.Println("Samples:", node.Meta["samples"])
	fmt.Println("Dataset:", t.Meta()["dataset"])
	// Output:
	// Samples: 150
	// Dataset: iris
}

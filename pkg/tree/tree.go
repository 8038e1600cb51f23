package tree

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Tree.AddNode] when the node ID is
	// empty. All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Tree.AddNode] when a node with the
	// same ID already exists. Node IDs must be unique.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [Tree.AddEdge] when the From node
	// does not exist.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Tree.AddEdge] when the To node
	// does not exist.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrMultipleParents is returned by [Tree.AddEdge] when the To node
	// already has an incoming edge. Every node has at most one parent.
	ErrMultipleParents = errors.New("node already has a parent")

	// ErrNoRoot is returned by [Tree.Validate] when no node is free of
	// incoming edges. An empty tree has no root either.
	ErrNoRoot = errors.New("tree has no root")

	// ErrMultipleRoots is returned by [Tree.Validate] when more than one
	// node has no incoming edge, which means the structure is a forest.
	ErrMultipleRoots = errors.New("tree has multiple roots")

	// ErrTreeHasCycle is returned by [Tree.Validate] when a directed cycle
	// is detected. Cycles are found with depth-first search using
	// white/gray/black coloring.
	ErrTreeHasCycle = errors.New("tree contains a cycle")
)

// Metadata stores arbitrary key-value pairs attached to nodes or the tree.
// It typically carries model details (impurity, sample counts, class
// distributions) that rendering may surface. Metadata maps are never nil -
// they are initialized to empty maps when needed.
type Metadata map[string]any

// Node represents a decision node or leaf in the tree.
//
// The zero value is not usable - ID must be set before adding to a Tree.
type Node struct {
	ID    string   // Unique identifier
	Label string   // Display text (split condition or prediction)
	Image string   // Path to a per-node chart file, empty for plain nodes
	Meta  Metadata // Arbitrary key-value metadata (never nil after AddNode)
}

// HasImage reports whether the node carries a chart to display in place of
// a plain label box.
func (n Node) HasImage() bool { return n.Image != "" }

// Edge represents a directed connection from a parent node to one of its
// children. Label typically states the branch condition ("<", ">=", a
// category value).
type Edge struct {
	From  string // Parent node ID
	To    string // Child node ID
	Label string // Branch text, may be empty
}

// Tree is a rooted tree of decision nodes. Nodes keep their insertion
// order, which makes derived artifacts such as DOT output deterministic.
//
// The zero value is not usable - use New to create a valid Tree instance.
// Tree is not safe for concurrent use without external synchronization.
type Tree struct {
	nodes    map[string]*Node
	order    []string // node IDs in insertion order
	edges    []Edge
	children map[string][]string // nodeID -> child IDs
	parent   map[string]string   // nodeID -> parent ID
	meta     Metadata
}

// New creates an empty Tree with optional tree-level metadata.
// The metadata parameter can be nil, in which case an empty map is created.
func New(meta Metadata) *Tree {
	if meta == nil {
		meta = Metadata{}
	}
	return &Tree{
		nodes:    make(map[string]*Node),
		children: make(map[string][]string),
		parent:   make(map[string]string),
		meta:     meta,
	}
}

// Meta returns the tree-level metadata map.
// The returned map is never nil and can be safely modified.
func (t *Tree) Meta() Metadata { return t.meta }

// AddNode adds a node to the tree. Returns ErrInvalidNodeID if the node ID
// is empty, or ErrDuplicateNodeID if a node with the same ID already
// exists. The node's Meta field is initialized to an empty map if nil.
func (t *Tree) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := t.nodes[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	if n.Meta == nil {
		n.Meta = Metadata{}
	}
	node := &n
	t.nodes[node.ID] = node
	t.order = append(t.order, node.ID)
	return nil
}

// AddEdge adds a directed edge between two existing nodes.
// Returns ErrUnknownSourceNode or ErrUnknownTargetNode if an endpoint does
// not exist, and ErrMultipleParents if the To node already has a parent.
//
// AddEdge does not check for cycles or a unique root - use Validate after
// building the tree.
func (t *Tree) AddEdge(e Edge) error {
	if _, ok := t.nodes[e.From]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := t.nodes[e.To]; !ok {
		return ErrUnknownTargetNode
	}
	if _, ok := t.parent[e.To]; ok {
		return ErrMultipleParents
	}
	t.edges = append(t.edges, e)
	t.children[e.From] = append(t.children[e.From], e.To)
	t.parent[e.To] = e.From
	return nil
}

// Nodes returns all nodes in insertion order.
// The returned slice contains pointers to the actual node structs, so
// modifications affect the tree (except ID changes, which would corrupt
// the indices).
func (t *Tree) Nodes() []*Node {
	nodes := make([]*Node, 0, len(t.order))
	for _, id := range t.order {
		nodes = append(nodes, t.nodes[id])
	}
	return nodes
}

// Edges returns a copy of all edges in insertion order.
// Modifications to the returned slice do not affect the tree.
func (t *Tree) Edges() []Edge { return slices.Clone(t.edges) }

// NodeCount returns the number of nodes in the tree.
func (t *Tree) NodeCount() int { return len(t.nodes) }

// EdgeCount returns the number of edges in the tree.
func (t *Tree) EdgeCount() int { return len(t.edges) }

// Node returns the node with the given ID and true, or nil and false if
// not found. The returned pointer refers to the actual node in the tree.
func (t *Tree) Node(id string) (*Node, bool) {
	n, ok := t.nodes[id]
	return n, ok
}

// Children returns the IDs of the node's children in edge insertion order.
// Returns nil if the node has no children or doesn't exist. The returned
// slice should not be modified - use it as a read-only view.
func (t *Tree) Children(id string) []string { return t.children[id] }

// Parent returns the ID of the node's parent and true, or "" and false for
// the root or an unknown node.
func (t *Tree) Parent(id string) (string, bool) {
	p, ok := t.parent[id]
	return p, ok
}

// Root returns the first node in insertion order that has no parent.
// For a validated tree this is the unique root. Returns nil and false for
// an empty tree.
func (t *Tree) Root() (*Node, bool) {
	for _, id := range t.order {
		if _, ok := t.parent[id]; !ok {
			return t.nodes[id], true
		}
	}
	return nil, false
}

// Leaves returns all nodes without children in insertion order.
// In decision trees these are the prediction nodes, which is where
// per-node charts usually live.
func (t *Tree) Leaves() []*Node {
	var leaves []*Node
	for _, id := range t.order {
		if len(t.children[id]) == 0 {
			leaves = append(leaves, t.nodes[id])
		}
	}
	return leaves
}

// Depth returns the number of edges between the node and the root.
// Returns 0 for the root itself and for unknown nodes.
func (t *Tree) Depth(id string) int {
	depth := 0
	for {
		p, ok := t.parent[id]
		if !ok {
			return depth
		}
		id = p
		depth++
	}
}

// Validate checks tree integrity and returns nil if valid.
// It verifies that exactly one root exists and that no directed cycle is
// present. Returns ErrNoRoot for an empty tree or when every node has a
// parent, ErrMultipleRoots when the structure is a forest, or
// ErrTreeHasCycle when a cycle is detected.
//
// Cycle detection runs in O(N+E) time using depth-first search.
func (t *Tree) Validate() error {
	roots := 0
	for _, id := range t.order {
		if _, ok := t.parent[id]; !ok {
			roots++
		}
	}
	if roots == 0 {
		return ErrNoRoot
	}
	if roots > 1 {
		return ErrMultipleRoots
	}
	return t.detectCycles()
}

func (t *Tree) detectCycles() error {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, len(t.nodes))
	var hasCycle bool

	var dfs func(id string)
	dfs = func(id string) {
		color[id] = gray
		for _, child := range t.children[id] {
			switch color[child] {
			case white:
				dfs(child)
			case gray:
				hasCycle = true
				return
			}
		}
		color[id] = black
	}

	for _, id := range t.order {
		if color[id] == white {
			dfs(id)
			if hasCycle {
				return ErrTreeHasCycle
			}
		}
	}
	return nil
}

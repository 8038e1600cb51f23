package cli

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/satopan/dtreeviz/pkg/svg"
	"github.com/satopan/dtreeviz/pkg/tree"
)

// inspectCommand creates the inspect command for browsing a tree's nodes.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		nodeID string
		plain  bool
	)

	cmd := &cobra.Command{
		Use:   "inspect [tree.json]",
		Short: "Browse a tree's nodes interactively",
		Long: `Browse a tree's nodes interactively.

The inspect command opens a scrollable node browser. Selecting a node
shows its label, position in the tree, metadata, and the dimensions of
its chart when the referenced file exists.

Use --node to print a single node's details without the browser, or
--plain to list all nodes as tab-separated text; both work without a
terminal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0], nodeID, plain)
		},
	}

	cmd.Flags().StringVar(&nodeID, "node", "", "print details for a single node and exit")
	cmd.Flags().BoolVar(&plain, "plain", false, "list nodes as plain text instead of the browser")

	return cmd
}

// runInspect loads the tree and dispatches to the requested view.
func (c *CLI) runInspect(ctx context.Context, input, nodeID string, plain bool) error {
	logger := loggerFromContext(ctx)

	t, err := loadTree(ctx, input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded tree with %d nodes from %s", t.NodeCount(), input)

	if nodeID != "" {
		n, ok := t.Node(nodeID)
		if !ok {
			return fmt.Errorf("node %s not found in %s", nodeID, input)
		}
		printNodeDetail(t, n)
		return nil
	}

	if plain {
		for _, n := range t.Nodes() {
			fmt.Printf("%s\t%s\t%d\t%d\t%s\n",
				n.ID, nodeLabel(n), t.Depth(n.ID), len(t.Children(n.ID)), nodeChart(n))
		}
		return nil
	}

	p := tea.NewProgram(NewNodeListModel(t))
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("node browser: %w", err)
	}

	fm, ok := finalModel.(NodeListModel)
	if !ok || fm.Selected == nil {
		return nil
	}

	printNewline()
	printNodeDetail(t, fm.Selected)
	return nil
}

// printNodeDetail prints one node's place in the tree, its metadata, and
// the measured size of its chart when the file can be read.
func printNodeDetail(t *tree.Tree, n *tree.Node) {
	fmt.Println(StyleTitle.Render("Node " + n.ID))

	if n.Label != "" {
		printKeyValue("label", n.Label)
	}
	printKeyValue("depth", fmt.Sprintf("%d", t.Depth(n.ID)))
	if parent, ok := t.Parent(n.ID); ok {
		printKeyValue("parent", parent)
	}
	if children := t.Children(n.ID); len(children) > 0 {
		printKeyValue("children", strings.Join(children, ", "))
	}

	for _, k := range slices.Sorted(maps.Keys(n.Meta)) {
		printKeyValue(k, fmt.Sprintf("%v", n.Meta[k]))
	}

	if n.HasImage() {
		printKeyValue("chart", n.Image)
		if shape, err := svg.ReadShape(svg.VectorPath(n.Image)); err == nil {
			printKeyValue("size", fmt.Sprintf("%g × %g pt", shape.Width, shape.Height))
		} else {
			printDetail("chart not readable: %v", err)
		}
	}
}

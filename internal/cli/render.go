package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/satopan/dtreeviz/pkg/io"
	"github.com/satopan/dtreeviz/pkg/observability"
	"github.com/satopan/dtreeviz/pkg/render"
	"github.com/satopan/dtreeviz/pkg/svg"
	"github.com/satopan/dtreeviz/pkg/tree"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output file path, derived from the input name when empty
	rankdir  string // layout direction: TB, LR, BT, or RL
	detailed bool   // include node metadata in labels
	dotOnly  bool   // emit DOT source instead of rendering
	embed    bool   // inline referenced charts into the rendered output
}

// validRankdirs is the set of layout directions Graphviz understands.
var validRankdirs = map[string]bool{"TB": true, "LR": true, "BT": true, "RL": true}

// validateRankdir checks that the direction is one Graphviz accepts.
func validateRankdir(s string) error {
	if !validRankdirs[s] {
		return fmt.Errorf("invalid rankdir: %s (must be 'TB', 'LR', 'BT', or 'RL')", s)
	}
	return nil
}

// renderCommand creates the render command for turning trees into diagrams.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [tree.json|graph.dot]",
		Short: "Render a decision tree to SVG",
		Long: `Render a decision tree to SVG.

The render command loads a tree from JSON, lays it out with Graphviz, and
writes the diagram next to the input file (or to --output). An input with
a .dot extension is treated as ready-made DOT source and laid out as-is.
Nodes that carry an image path are drawn as that image; pair them with
'blank' to create the files before rendering and 'inline' to embed the
charts after, or pass --embed to inline them in one step.

Use --dot-only to print the generated DOT source instead of rendering,
for debugging or for feeding an external Graphviz installation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("rankdir") && c.cfg.Rankdir != "" {
				opts.rankdir = c.cfg.Rankdir
			}
			if !cmd.Flags().Changed("detailed") {
				opts.detailed = c.cfg.Detailed
			}
			if err := validateRankdir(opts.rankdir); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with .svg)")
	cmd.Flags().StringVar(&opts.rankdir, "rankdir", "TB", "layout direction: TB (default), LR, BT, RL")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include node metadata in labels")
	cmd.Flags().BoolVar(&opts.dotOnly, "dot-only", false, "print DOT source instead of rendering")
	cmd.Flags().BoolVar(&opts.embed, "embed", false, "inline referenced charts into the output")

	return cmd
}

// runRender loads and validates the tree, generates DOT, and renders it.
// Inputs with a .dot extension skip tree import and go straight to layout.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	var (
		dot       string
		nodeCount int
		edgeCount int
	)
	if strings.EqualFold(filepath.Ext(input), ".dot") {
		data, err := os.ReadFile(input)
		if err != nil {
			return fmt.Errorf("read %s: %w", input, err)
		}
		dot = string(data)
	} else {
		t, err := loadTree(ctx, input)
		if err != nil {
			return err
		}
		logger.Debugf("Loaded tree: %d nodes, %d edges", t.NodeCount(), t.EdgeCount())
		nodeCount, edgeCount = t.NodeCount(), t.EdgeCount()

		dot = render.ToDOT(t, render.Options{Rankdir: opts.rankdir, Detailed: opts.detailed})
	}

	if opts.dotOnly {
		return writeDOT(dot, opts.output)
	}

	spinner := newSpinnerWithContext(ctx, "Rendering layout...")
	spinner.Start()

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, len(dot))
	layoutStart := time.Now()
	out, err := render.SVG(dot)
	hooks.OnLayoutComplete(ctx, len(dot), time.Since(layoutStart), err)
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return fmt.Errorf("render %s: %w", input, err)
	}
	spinner.Stop()
	if err := ctx.Err(); err != nil {
		return err
	}

	refs, err := svg.Placeholders(out)
	if err != nil {
		return fmt.Errorf("scan rendered output: %w", err)
	}

	charts := 0
	if opts.embed && len(refs) > 0 {
		prog := newProgress(logger)
		hooks.OnEmbedStart(ctx, len(refs))
		embedStart := time.Now()
		out, err = svg.Inline(out, svg.WithLogger(logger))
		hooks.OnEmbedComplete(ctx, len(refs), time.Since(embedStart), err)
		if err != nil {
			return err
		}
		prog.done(fmt.Sprintf("Embedded %d charts", len(refs)))
		charts = len(refs)
	}

	outputPath := opts.output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(input, filepath.Ext(input)) + ".svg"
	}
	if err := os.WriteFile(outputPath, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	printSuccess("Rendered %s", input)
	printFile(outputPath)
	printStats(nodeCount, edgeCount, charts)

	if !opts.embed && len(refs) > 0 {
		printNewline()
		printNextStep("Embed the referenced charts", fmt.Sprintf("%s inline %s", appName, outputPath))
	}
	return nil
}

// loadTree imports a tree description and validates its structure,
// reporting the outcome to any registered pipeline hooks.
func loadTree(ctx context.Context, input string) (*tree.Tree, error) {
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, input)
	start := time.Now()

	t, err := io.ImportJSON(input)
	if err == nil {
		if verr := t.Validate(); verr != nil {
			err = fmt.Errorf("validate %s: %w", input, verr)
		}
	}

	nodes := 0
	if t != nil {
		nodes = t.NodeCount()
	}
	hooks.OnLoadComplete(ctx, input, nodes, time.Since(start), err)
	return t, err
}

// writeDOT prints DOT source to stdout, or to path when one is given.
func writeDOT(dot, path string) error {
	if path == "" {
		fmt.Print(dot)
		return nil
	}
	if err := os.WriteFile(path, []byte(dot), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	printSuccess("Wrote DOT source")
	printFile(path)
	return nil
}

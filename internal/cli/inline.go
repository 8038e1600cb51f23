package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/satopan/dtreeviz/pkg/observability"
	"github.com/satopan/dtreeviz/pkg/svg"
)

// inlineCommand creates the inline command for embedding referenced charts.
func (c *CLI) inlineCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "inline [file.svg]",
		Short: "Embed referenced chart files into an SVG document",
		Long: `Embed referenced chart files into an SVG document.

Graph layout tools emit per-node charts as image references: an <image>
element inside a <g> group pointing at a raster file. The inline command
replaces each such placeholder with the content of the matching vector
file (the reference with ".png" replaced by ".svg"), producing a single
self-contained document.

Relative references are resolved against the working directory. The
command fails without writing anything if the input is malformed or any
referenced file cannot be read.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInline(cmd.Context(), args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

// runInline reads the input document, substitutes its placeholders, and
// writes the result to the output file or stdout.
func (c *CLI) runInline(ctx context.Context, input, output string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}

	refs, err := svg.Placeholders(string(data))
	if err != nil {
		return err
	}
	logger.Debugf("Found %d placeholders in %s", len(refs), input)

	hooks := observability.Pipeline()
	hooks.OnEmbedStart(ctx, len(refs))
	start := time.Now()
	result, err := svg.Inline(string(data), svg.WithLogger(logger))
	hooks.OnEmbedComplete(ctx, len(refs), time.Since(start), err)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Embedded %d charts", len(refs)))

	if output == "" {
		fmt.Println(result)
		return nil
	}

	if err := os.WriteFile(output, []byte(result), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	printSuccess("Embedded %d charts", len(refs))
	printFile(output)
	return nil
}

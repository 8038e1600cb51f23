package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/satopan/dtreeviz/pkg/svg"
)

// shapeCommand creates the shape command for reading SVG dimensions.
func (c *CLI) shapeCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "shape [file.svg...]",
		Short: "Read width and height from an SVG header line",
		Long: `Read width and height from an SVG header line.

The shape command scans each file for its <svg ...> header line and prints
the width and height stated there, with any "pt" unit suffix stripped.
The files are never parsed as XML, so truncated or oversized documents are
read just as fast.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runShapes(cmd.Context(), args, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print dimensions as JSON")

	return cmd
}

// runShapes reads the header dimensions of every file and prints them.
// The first unreadable file aborts the run.
func (c *CLI) runShapes(ctx context.Context, inputs []string, asJSON bool) error {
	logger := loggerFromContext(ctx)

	shapes := make(map[string]svg.Shape, len(inputs))
	for _, input := range inputs {
		shape, err := svg.ReadShape(input)
		if err != nil {
			return err
		}
		logger.Debugf("Read shape of %s: %gx%g", input, shape.Width, shape.Height)
		shapes[input] = shape
	}

	if asJSON {
		out := make(map[string]map[string]float64, len(shapes))
		for input, shape := range shapes {
			out[input] = map[string]float64{
				"width":  shape.Width,
				"height": shape.Height,
			}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for _, input := range inputs {
		shape := shapes[input]
		if len(inputs) > 1 {
			printInfo("%s", input)
		}
		printKeyValue("width", fmt.Sprintf("%g", shape.Width))
		printKeyValue("height", fmt.Sprintf("%g", shape.Height))
	}
	return nil
}

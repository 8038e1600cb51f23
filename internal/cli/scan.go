package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/satopan/dtreeviz/pkg/svg"
)

// scanCommand creates the scan command for listing placeholders.
func (c *CLI) scanCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "scan [file.svg]",
		Short: "List the image placeholders a document references",
		Long: `List the image placeholders a document references.

The scan command reports each placeholder that inline would substitute:
the raw reference, the vector file it resolves to and that file's header
dimensions when it is readable, and the presentation attributes that
would be copied onto the spliced chart. The document itself is never
modified.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runScan(cmd.Context(), args[0], asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print placeholders as JSON")

	return cmd
}

// runScan reads the input document and prints its placeholder listing.
func (c *CLI) runScan(ctx context.Context, input string, asJSON bool) error {
	logger := loggerFromContext(ctx)

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}

	refs, err := svg.Placeholders(string(data))
	if err != nil {
		return err
	}
	logger.Debugf("Scanned %s: %d placeholders", input, len(refs))

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(refs)
	}

	if len(refs) == 0 {
		printInfo("No placeholders found")
		return nil
	}

	for _, ref := range refs {
		printInfo("%s", ref.Href)
		if shape, err := svg.ReadShape(ref.Path); err == nil {
			printDetail("reads %s (%g × %g pt)", ref.Path, shape.Width, shape.Height)
		} else if _, statErr := os.Stat(ref.Path); statErr != nil {
			printDetail("reads %s (missing)", ref.Path)
		} else {
			printDetail("reads %s (no readable header)", ref.Path)
		}
		if len(ref.Attrs) > 0 {
			printDetail("%d attributes to copy", len(ref.Attrs))
		}
	}
	printNewline()
	printSuccess("%d placeholders", len(refs))
	printNextStep("Embed them", fmt.Sprintf("%s inline %s", appName, input))
	return nil
}

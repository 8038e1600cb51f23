package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/satopan/dtreeviz/pkg/svg"
)

// blankCommand creates the blank command for writing placeholder PNGs.
func (c *CLI) blankCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "blank [file.png...]",
		Short: "Write placeholder PNG files for pending charts",
		Long: `Write placeholder PNG files for pending charts.

Layout tools need the referenced image files to exist when they compute
node sizes, even though inline later swaps in the vector charts. The
blank command writes a tiny white PNG at each given path so a document
can be laid out before its charts are generated.

Existing files are left untouched unless --force is given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBlank(cmd.Context(), args, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite existing files")

	return cmd
}

// runBlank writes a placeholder PNG at every path, skipping files that
// already exist unless force is set.
func (c *CLI) runBlank(ctx context.Context, paths []string, force bool) error {
	logger := loggerFromContext(ctx)

	written := 0
	for _, path := range paths {
		if !force {
			if _, err := os.Stat(path); err == nil {
				printWarning("%s exists, skipping (use --force to overwrite)", path)
				continue
			}
		}
		if err := svg.WriteBlankPNG(path); err != nil {
			return fmt.Errorf("blank %s: %w", path, err)
		}
		logger.Debugf("Wrote placeholder %s", path)
		printFile(path)
		written++
	}

	printSuccess("Wrote %d placeholder files", written)
	return nil
}

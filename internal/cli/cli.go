// Package cli implements the dtreeviz command-line interface.
//
// This package provides commands for rendering decision trees as Graphviz
// diagrams, embedding referenced chart files into rendered documents, and
// inspecting tree structures interactively. The CLI is built using cobra
// and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Lay out a tree as SVG, optionally embedding node charts
//   - inline: Replace image placeholders in an SVG with referenced content
//   - scan: List the image placeholders a document references
//   - shape: Read width and height from an SVG header line
//   - blank: Write placeholder PNG files for pending charts
//   - inspect: Browse a tree file interactively
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Configuration
//
// Defaults can be set in an optional TOML file at
// $XDG_CONFIG_HOME/dtreeviz/config.toml, or at a path given with
// --config. Command-line flags take precedence over file settings.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/satopan/dtreeviz/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "dtreeviz"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	cfg    Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    defaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		verbose    bool
		configFile string
	)

	root := &cobra.Command{
		Use:          appName,
		Short:        "Dtreeviz renders decision trees as annotated diagrams",
		Long:         `Dtreeviz is a CLI tool for turning decision trees into Graphviz diagrams whose nodes carry per-node charts, and for embedding those charts directly into the rendered document.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := configFile
			if path == "" {
				path = configPath()
			} else if _, err := os.Stat(path); err != nil {
				// An explicitly requested config file must exist.
				return fmt.Errorf("config file %s: %w", path, err)
			}

			cfg, err := loadConfig(path)
			if err != nil {
				return err
			}
			c.cfg = cfg

			if verbose || c.cfg.Verbose {
				c.SetLogLevel(log.DebugLevel)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: $XDG_CONFIG_HOME/dtreeviz/config.toml)")

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.inlineCommand())
	root.AddCommand(c.scanCommand())
	root.AddCommand(c.shapeCommand())
	root.AddCommand(c.blankCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Paths
// =============================================================================

// configDir returns the configuration directory using the XDG standard
// (~/.config/dtreeviz/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// configPath returns the path of the optional TOML configuration file, or
// "" if no base directory can be determined.
func configPath() string {
	dir, err := configDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "config.toml")
}

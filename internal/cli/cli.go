// Package cli implements the trieviz command-line interface.
//
// This package provides commands for generating the trie series images,
// previewing them in a browser and inspecting a post's trie. The CLI is
// built using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - heroes: Write one hero SVG per post and hero palette
//   - background: Write the composite background tile per tile palette
//   - all: heroes followed by background
//   - cards: Write PNG social cards
//   - dot: Print a post's trie as Graphviz DOT (or SVG)
//   - serve: Preview every image from a local HTTP server
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which adds
// one line per laid-out trie.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/trieviz/pkg/buildinfo"
	"github.com/matzehuels/trieviz/pkg/pipeline"
	"github.com/matzehuels/trieviz/pkg/series"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "trieviz"

	// defaultAddr is where the preview server listens.
	defaultAddr = "127.0.0.1:8080"
)

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
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "trieviz draws the trie series hero images and background tiles",
		Long:         `trieviz builds a prefix tree from each post's word list, lays it out and writes the hero images, social cards and tiling background for the trie article series.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.heroesCommand())
	root.AddCommand(c.backgroundCommand())
	root.AddCommand(c.allCommand())
	root.AddCommand(c.cardsCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner over the embedded series.
func (c *CLI) newRunner() (*pipeline.Runner, error) {
	cfg, err := series.Default()
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cfg, c.Logger), nil
}

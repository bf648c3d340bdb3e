// Package cli implements the chromatic command-line interface.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chromatic/pkg/buildinfo"
	"github.com/matzehuels/chromatic/pkg/config"
	"github.com/matzehuels/chromatic/pkg/graph"
	"github.com/matzehuels/chromatic/pkg/history"
	"github.com/matzehuels/chromatic/pkg/palette"
	"github.com/matzehuels/chromatic/pkg/search"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "chromatic"

	// stdinPath selects standard input or output in place of a file path.
	stdinPath = "-"
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

	// Config is the effective configuration, loaded before every command.
	Config config.Config

	// History collects every run made by this process.
	History *history.Store

	configPath string
	logFile    io.Closer
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:  newLogger(w, level),
		Config:  config.Default(),
		History: history.New(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// Close releases the log file, if one was opened.
func (c *CLI) Close() error {
	if c.logFile == nil {
		return nil
	}
	err := c.logFile.Close()
	c.logFile = nil
	return err
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Chromatic colors graphs with randomized search",
		Long: `Chromatic is a CLI tool for heuristic graph coloring. It assigns one of k
colors to every vertex so that no edge joins two vertices of the same color,
using random-restart and best-of-sampling search, greedy local repair and
automatic escalation of k.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/chromatic/config.toml)")

	// Register all subcommands
	root.AddCommand(c.colorCommand())
	root.AddCommand(c.escalateCommand())
	root.AddCommand(c.repairCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.recolorCommand())
	root.AddCommand(c.compareCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.versionCommand())
	root.AddCommand(c.completionCommand())
	registerValueCompletions(root)

	return root
}

// =============================================================================
// Engine Factory
// =============================================================================

// newEngine creates a search engine seeded with seed and using the configured
// master palette. Seed 0 derives one from the clock. Extra options apply last.
func (c *CLI) newEngine(seed uint64, opts ...search.Option) (*search.Engine, error) {
	p, err := c.Config.MasterPalette()
	if err != nil {
		return nil, err
	}
	return search.New(append([]search.Option{search.WithSeed(seed), search.WithPalette(p)}, opts...)...), nil
}

// paletteFor returns the k colors the engine would use.
func (c *CLI) paletteFor(k int) (palette.Palette, error) {
	base, err := c.Config.MasterPalette()
	if err != nil {
		return nil, err
	}
	return base.Truncate(k)
}

// =============================================================================
// Graph I/O
// =============================================================================

// readGraph loads a graph from path, or from the command's stdin when path is "-".
func readGraph(cmd *cobra.Command, path string) (*graph.Graph, error) {
	if path == stdinPath {
		g, err := graph.ReadJSON(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return g, nil
	}
	g, err := graph.ImportJSON(path)
	if err != nil {
		return nil, fmt.Errorf("load graph %s: %w", path, err)
	}
	return g, nil
}

// writeGraph writes g to path, or to the command's stdout when path is empty or "-".
func writeGraph(cmd *cobra.Command, g *graph.Graph, path string) error {
	if path == "" || path == stdinPath {
		return graph.WriteJSON(g, cmd.OutOrStdout())
	}
	if err := graph.ExportJSON(g, path); err != nil {
		return err
	}
	printFile(path)
	return nil
}

// writeJSON writes v as indented JSON to path, or to stdout when path is empty or "-".
func writeJSON(cmd *cobra.Command, v any, path string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	data = append(data, '\n')
	if path == "" || path == stdinPath {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	printFile(path)
	return nil
}

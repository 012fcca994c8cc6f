// Package cli implements the fixturegen command-line interface.
//
// The same commands back three binaries: the combined fixturegen tool and
// the standalone generate-colors and generate-graph programs. Status lines
// go to the CLI's output writer; the structured logger writes to stderr and
// travels through the command context.
//
// # Commands
//
//   - colors: write colors-<N>.json with N unique random colors
//   - graph: write a testData-*.json node/link fixture
//   - preview: render a graph fixture to SVG or DOT through Graphviz
//   - inspect: validate a fixture and print summary statistics
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"context"
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/fixturegen/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "fixturegen"

	// defaultDir is the default output directory.
	defaultDir = "."
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

	// Out receives user-facing status lines.
	Out io.Writer
}

// New creates a CLI printing status lines to out and logging to logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		Out:    out,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the fixturegen root command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Fixturegen writes random JSON fixtures for graph viewers",
		Long: `Fixturegen writes random JSON test fixtures: color palettes indexed by
cluster number, and node/link graphs with optional clusters and pie values.`,
	}

	root.AddCommand(c.colorsCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.completionCommand())
	root.AddCommand(c.versionCommand())

	return c.asRoot(root)
}

// ColorsCommand returns the standalone generate-colors root command.
func (c *CLI) ColorsCommand() *cobra.Command {
	cmd := c.colorsCommand()
	cmd.Use = "generate-colors [count]"
	return c.asRoot(cmd)
}

// GraphCommand returns the standalone generate-graph root command.
func (c *CLI) GraphCommand() *cobra.Command {
	cmd := c.graphCommand()
	cmd.Use = "generate-graph [nodeCount [numLimit [clusterCount [pieChartCount]]]]"
	return c.asRoot(cmd)
}

// asRoot applies the settings shared by every root command.
func (c *CLI) asRoot(root *cobra.Command) *cobra.Command {
	root.Version = buildinfo.Version
	root.SilenceUsage = true
	root.SilenceErrors = true
	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Out)
	return root
}

// Execute runs root with a --verbose flag wired to the CLI logger.
// The logger is attached to the command context before any command runs.
func (c *CLI) Execute(ctx context.Context, root *cobra.Command) error {
	var verbose bool
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	originalPreRun := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level := LogInfo
		if verbose {
			level = LogDebug
		}
		c.SetLogLevel(level)
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))

		if originalPreRun != nil {
			return originalPreRun(cmd, args)
		}
		return nil
	}

	return root.ExecuteContext(ctx)
}

// =============================================================================
// Shared Flags
// =============================================================================

// outputOpts holds the flags shared by the generating commands.
type outputOpts struct {
	dir  string // directory the fixture is written to
	seed uint64 // random seed (0 picks one)
}

func (o *outputOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.dir, "dir", "d", defaultDir, "output directory")
	cmd.Flags().Uint64Var(&o.seed, "seed", 0, "random seed for reproducible output (0 = random)")
}

// newRand returns a seeded generator. A zero seed is replaced by a random one,
// which is logged so the run can be reproduced.
func newRand(ctx context.Context, seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	loggerFromContext(ctx).Debugf("Using seed %d", seed)
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// usageAbort prints the command usage and returns err unchanged.
func usageAbort(cmd *cobra.Command, err error) error {
	cmd.PrintErrln(cmd.UsageString())
	return err
}

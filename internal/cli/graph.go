package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fixturegen/pkg/errors"
	"github.com/matzehuels/fixturegen/pkg/fixture"
	"github.com/matzehuels/fixturegen/pkg/graph"
	fio "github.com/matzehuels/fixturegen/pkg/io"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	outputOpts
	simple bool   // num = id, no clusters or pies, timestamped file name
	preset string // TOML file providing base parameters
}

// graphCommand creates the command that writes a node/link fixture.
func (c *CLI) graphCommand() *cobra.Command {
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "graph [nodeCount [numLimit [clusterCount [pieChartCount]]]]",
		Short: "Generate a random node/link graph fixture",
		Long: fmt.Sprintf(`Generate a random graph fixture for force-directed viewers.

Positional arguments cascade: each is read only when the ones before it are
given. Defaults are nodeCount=%d numLimit=%d clusterCount=%d pieChartCount=%d,
or the values of --preset when set.

The fixture is written to testData-<nodeCount>-<numLimit>-<clusterCount>-<pieChartCount>.json.
With --simple only nodeCount is accepted, every node's num equals its id and the
file is named testData-<nodeCount>-<unix seconds>.json.`,
			fixture.DefaultNodeCount, fixture.DefaultNumLimit, fixture.DefaultClusterCount, fixture.DefaultPieChartCount),
		Args: func(cmd *cobra.Command, args []string) error {
			if limit := maxGraphArgs(opts.simple); len(args) > limit {
				return usageAbort(cmd, errors.New(errors.ErrCodeInvalidArgument,
					"expected at most %d arguments, got %d", limit, len(args)))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := baseGraphOptions(cmd.Context(), opts)
			if err != nil {
				return err
			}
			fo, err := fixture.ParseArgs(args, base)
			if err != nil {
				return err
			}
			return c.runGraph(cmd.Context(), fo, opts.outputOpts, time.Now())
		},
	}

	opts.register(cmd)
	cmd.Flags().BoolVar(&opts.simple, "simple", false, "simple form: num = id, node count only, timestamped file name")
	cmd.Flags().StringVar(&opts.preset, "preset", "", "TOML file with base parameters")

	return cmd
}

func maxGraphArgs(simple bool) int {
	return fixture.Options{Simple: simple}.MaxArgs()
}

// baseGraphOptions returns the options positional arguments are laid over.
func baseGraphOptions(ctx context.Context, opts graphOpts) (fixture.Options, error) {
	base := fixture.DefaultOptions()
	if opts.preset != "" {
		p, err := fixture.LoadPreset(opts.preset)
		if err != nil {
			return base, err
		}
		loggerFromContext(ctx).Debugf("Loaded preset %s", opts.preset)
		base = p
	}
	if opts.simple {
		base.Simple = true
	}
	return base, nil
}

// runGraph generates a fixture for fo and writes it to opts.dir.
func (c *CLI) runGraph(ctx context.Context, fo fixture.Options, opts outputOpts, now time.Time) error {
	logger := loggerFromContext(ctx)

	c.printInfo("generating graph")
	c.printKeyValue("nodeCount", fo.NodeCount)
	if !fo.Simple {
		c.printKeyValue("numLimit", fo.NumLimit)
		c.printKeyValue("clusterCount", fo.ClusterCount)
		c.printKeyValue("pieChartCount", fo.PieChartCount)
	}

	prog := newProgress(logger)
	doc, err := fixture.Generate(newRand(ctx, opts.seed), fo)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated %d nodes, %d links", len(doc.Nodes), len(doc.Links)))

	path, err := fio.Export(ctx, opts.dir, fixture.Filename(fo, now), func(w io.Writer) error {
		return graph.Write(doc, w)
	})
	if err != nil {
		return err
	}
	logger.Debugf("Wrote %s (%s)", path, fo)

	c.printSuccess("graph written")
	c.printFile(path)
	return nil
}

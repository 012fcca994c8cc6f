package cli

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fixturegen/pkg/fixture"
	fio "github.com/matzehuels/fixturegen/pkg/io"
)

// inspectCommand creates the command that validates a fixture file.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Validate a fixture and print summary statistics",
		Long: `Read back a colors or testData fixture, check it and print a summary.

Graph fixtures named testData-<n>-<numLimit>-<clusterCount>-<pieChartCount>.json
are also checked against the parameters encoded in the name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) runInspect(ctx context.Context, path string) error {
	logger := loggerFromContext(ctx)

	fx, err := fio.Import(path)
	if err != nil {
		return err
	}
	logger.Debugf("Detected %s fixture", fx.Kind)

	c.printTitle("%s", filepath.Base(path))
	c.printKeyValue("kind", fx.Kind)

	switch fx.Kind {
	case fio.KindPalette:
		c.printKeyValue("colors", fx.Palette.Len())
		c.printSwatches(fx.Palette)
	case fio.KindGraph:
		s := fx.Graph.Stats()
		c.printKeyValue("nodes", s.Nodes)
		c.printKeyValue("links", s.Links)
		c.printKeyValue("max num", s.MaxNum)
		c.printKeyValue("clustered", s.Clustered)
		c.printKeyValue("clusters", s.Clusters)
		c.printKeyValue("pie nodes", s.PieNodes)
		c.printKeyValue("dup. pairs", s.DuplicatePairs)

		if opts, ok := fixture.ParseFilename(filepath.Base(path)); ok {
			if err := fixture.Check(fx.Graph, opts); err != nil {
				return err
			}
			logger.Debugf("Matches parameters: %s", opts)
		}
	}

	c.printSuccess("valid %s fixture", fx.Kind)
	return nil
}

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fixturegen/pkg/errors"
	fio "github.com/matzehuels/fixturegen/pkg/io"
	"github.com/matzehuels/fixturegen/pkg/palette"
)

// colorsCommand creates the command that writes a palette fixture.
func (c *CLI) colorsCommand() *cobra.Command {
	var opts outputOpts

	cmd := &cobra.Command{
		Use:   "colors [count]",
		Short: "Generate a palette of unique random hex colors",
		Long: fmt.Sprintf(`Generate colors-<count>.json holding count distinct colors of the form #XXXXXX.

The count defaults to %d, the palette size graph viewers load.`, palette.DefaultCount),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return usageAbort(cmd, errors.New(errors.ErrCodeInvalidArgument,
					"expected at most 1 argument, got %d", len(args)))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			n := palette.DefaultCount
			if len(args) == 1 {
				v, err := errors.ParseCount("count", args[0])
				if err != nil {
					return err
				}
				n = v
			}
			return c.runColors(cmd.Context(), n, opts)
		},
	}

	opts.register(cmd)
	return cmd
}

// runColors generates n colors and writes them to colors-<n>.json in opts.dir.
func (c *CLI) runColors(ctx context.Context, n int, opts outputOpts) error {
	if err := palette.ValidateCount(n); err != nil {
		return err
	}
	logger := loggerFromContext(ctx)

	c.printInfo("generating %d colors", n)
	prog := newProgress(logger)

	p, err := palette.Generate(newRand(ctx, opts.seed), n)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated %d colors", p.Len()))

	path, err := fio.Export(ctx, opts.dir, palette.Filename(n), func(w io.Writer) error {
		return palette.Write(p, w)
	})
	if err != nil {
		return err
	}
	logger.Debugf("Wrote %s", path)

	c.printSuccess("colors written")
	c.printFile(path)
	return nil
}

package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fixturegen/pkg/errors"
	"github.com/matzehuels/fixturegen/pkg/graph"
	fio "github.com/matzehuels/fixturegen/pkg/io"
	"github.com/matzehuels/fixturegen/pkg/palette"
	"github.com/matzehuels/fixturegen/pkg/render/nodelink"
)

const (
	formatSVG = "svg"
	formatDOT = "dot"

	// stdoutPath selects the CLI output writer instead of a file.
	stdoutPath = "-"
)

// previewOpts holds the command-line flags for the preview command.
type previewOpts struct {
	output   string // output file, "-" for stdout (default: input with format extension)
	format   string // "svg" or "dot"
	palette  string // colors fixture used for cluster colors
	detailed bool   // include num, cluster and pie values in labels
	seed     uint64 // seed for the generated palette when none is given
}

// previewCommand creates the command that renders a graph fixture.
func (c *CLI) previewCommand() *cobra.Command {
	opts := previewOpts{format: formatSVG}

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Render a graph fixture as a node-link diagram",
		Long: fmt.Sprintf(`Render a graph fixture to SVG (or DOT source) through Graphviz.

Nodes are colored by cluster %% palette size; nodes without a cluster are black.
Without --palette a %d-color palette is generated.`, palette.DefaultCount),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != formatSVG && opts.format != formatDOT {
				return errors.New(errors.ErrCodeInvalidArgument, "invalid format: %s (must be 'svg' or 'dot')", opts.format)
			}
			return c.runPreview(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, - for stdout (default: input with format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg, dot")
	cmd.Flags().StringVarP(&opts.palette, "palette", "p", "", "colors fixture used for cluster colors")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show num, cluster and pie values in labels")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "seed for the generated palette (0 = random)")

	return cmd
}

// runPreview loads the fixture at input, renders it and writes the result.
func (c *CLI) runPreview(ctx context.Context, input string, opts previewOpts) error {
	logger := loggerFromContext(ctx)

	doc, err := fio.ImportGraph(input)
	if err != nil {
		return err
	}
	logger.Infof("Loaded graph: %d nodes, %d links", len(doc.Nodes), len(doc.Links))

	pal, err := previewPalette(ctx, doc, opts)
	if err != nil {
		return err
	}

	data, err := renderPreview(ctx, doc, pal, opts)
	if err != nil {
		return err
	}
	logger.Debugf("Generated %s: %d bytes", opts.format, len(data))

	output := opts.output
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + "." + opts.format
	}
	if output == stdoutPath {
		_, err := c.Out.Write(data)
		return err
	}

	path, err := fio.Export(ctx, filepath.Dir(output), filepath.Base(output), func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
	if err != nil {
		return err
	}

	c.printSuccess("preview written")
	c.printFile(path)
	return nil
}

// previewPalette returns the palette from opts, a generated one when the
// graph has clusters, or nil when every node will be drawn black.
func previewPalette(ctx context.Context, doc *graph.Document, opts previewOpts) (*palette.Palette, error) {
	if opts.palette != "" {
		return fio.ImportPalette(opts.palette)
	}
	if doc.Stats().Clustered == 0 {
		return nil, nil
	}
	loggerFromContext(ctx).Debugf("Generating %d-color palette", palette.DefaultCount)
	return palette.Generate(newRand(ctx, opts.seed), palette.DefaultCount)
}

func renderPreview(ctx context.Context, doc *graph.Document, pal *palette.Palette, opts previewOpts) ([]byte, error) {
	logger := loggerFromContext(ctx)

	dot := nodelink.ToDOT(doc, nodelink.Options{Palette: pal, Detailed: opts.detailed})
	if opts.format == formatDOT {
		return []byte(dot), nil
	}

	logger.Info("Rendering node-link SVG")
	prog := newProgress(logger)
	svg, err := nodelink.RenderSVG(ctx, dot)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", formatSVG)
	}
	prog.done("Rendered SVG")
	return svg, nil
}

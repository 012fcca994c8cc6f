package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/fixturegen/pkg/graph"
	"github.com/matzehuels/fixturegen/pkg/palette"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Palette colors clustered nodes. Nil draws every node black.
	Palette *palette.Palette

	// Detailed includes num, cluster and pie values in node labels.
	// When false, only the node id is shown.
	Detailed bool
}

const unclusteredColor = "#000000"

// ToDOT converts a graph document to undirected Graphviz DOT source.
func ToDOT(d *graph.Document, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fontsize=10, fontcolor=white, margin=\"0.05\"];\n")
	buf.WriteString("  edge [color=\"#999999\"];\n")
	buf.WriteString("\n")

	for i := range d.Nodes {
		n := &d.Nodes[i]
		attrs := fmtAttrs(n, fmtLabel(n, opts.Detailed), nodeColor(n, opts.Palette))
		fmt.Fprintf(&buf, "  %d [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, l := range d.Links {
		fmt.Fprintf(&buf, "  %d -- %d;\n", l.Source, l.Target)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeColor(n *graph.Node, p *palette.Palette) string {
	if !n.HasCluster() || p == nil || p.Len() == 0 {
		return unclusteredColor
	}
	return p.At(*n.Cluster).String()
}

func fmtLabel(n *graph.Node, detailed bool) string {
	id := strconv.Itoa(n.ID)
	if !detailed {
		return id
	}

	parts := []string{fmt.Sprintf("num: %d", n.Num)}
	if n.HasCluster() {
		parts = append(parts, fmt.Sprintf("cluster: %d", *n.Cluster))
	}
	if n.HasPie() {
		v := n.Pie.Values()
		parts = append(parts, fmt.Sprintf("pie: %d/%d/%d/%d", v[0], v[1], v[2], v[3]))
	}
	return id + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(n *graph.Node, label, color string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label), fmt.Sprintf("fillcolor=%q", color)}
	if n.HasPie() {
		attrs = append(attrs, "shape=doublecircle")
	}
	return attrs
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the SVG scales from a zero
// origin with explicit pixel dimensions.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// Package nodelink renders graph fixtures as node-link diagrams.
//
// # Overview
//
// Fixtures are meant for force-directed viewers; this package gives a quick
// preview of one without a browser. Nodes are colored by cluster using a
// palette, the same way the viewers do (cluster % len(palette)); nodes
// without a cluster are drawn black.
//
// # Usage
//
// Convert a document to DOT, then render to SVG:
//
//	dot := nodelink.ToDOT(doc, nodelink.Options{Palette: p})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Palette: cluster colors (nil draws every node black)
//   - Detailed: node labels include num, cluster and pie values
//
// Pie-chart nodes are drawn as double circles so the leading pie nodes stand
// out.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no external Graphviz installation is needed.
package nodelink

// Package pkg provides the libraries behind the fixturegen tools.
//
// # Overview
//
// Fixturegen writes random JSON fixtures for force-directed graph viewers:
//
//  1. [palette] - unique random hex color lists (colors-<N>.json)
//  2. [fixture] - graph generation parameters and the node/link generator
//  3. [graph] - fixture document types, validation and JSON codec
//  4. [io] - exclusive atomic file export and fixture import
//  5. [render/nodelink] - Graphviz previews colored by cluster
//
// # Data Flow
//
//	positional args / preset.toml
//	         ↓
//	    [fixture] Options → Generate
//	         ↓
//	    [graph] Document → Write
//	         ↓
//	    [io] Export (no-replace publish)
//
// # Quick Start
//
//	rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
//	opts := fixture.Options{NodeCount: 50, NumLimit: 50}
//	doc, err := fixture.Generate(rng, opts)
//	if err != nil {
//	    return err
//	}
//	path, err := io.Export(ctx, ".", fixture.Filename(opts, time.Now()), func(w stdio.Writer) error {
//	    return graph.Write(doc, w)
//	})
//
// [palette]: github.com/matzehuels/fixturegen/pkg/palette
// [fixture]: github.com/matzehuels/fixturegen/pkg/fixture
// [graph]: github.com/matzehuels/fixturegen/pkg/graph
// [io]: github.com/matzehuels/fixturegen/pkg/io
// [render/nodelink]: github.com/matzehuels/fixturegen/pkg/render/nodelink
package pkg

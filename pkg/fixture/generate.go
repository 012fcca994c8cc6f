package fixture

import (
	"math/rand/v2"

	"github.com/matzehuels/fixturegen/pkg/errors"
	"github.com/matzehuels/fixturegen/pkg/graph"
)

// Generate builds a random graph document for opts.
func Generate(rng *rand.Rand, opts Options) (*graph.Document, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &graph.Document{
		Nodes: nodes(rng, opts),
		Links: links(rng, opts.NodeCount),
	}, nil
}

func nodes(rng *rand.Rand, opts Options) []graph.Node {
	out := make([]graph.Node, opts.NodeCount)
	pieLeft := opts.PieChartCount
	for i := range out {
		id := i + 1
		n := graph.Node{ID: id}
		if opts.Simple {
			n.Num = id
			out[i] = n
			continue
		}

		n.Num = between(rng, 0, opts.NumLimit)
		if opts.ClusterCount > 0 {
			c := rng.IntN(opts.ClusterCount)
			n.Cluster = &c
		}
		if pieLeft > 0 {
			n.Pie = &graph.Pie{
				Label1: between(rng, 0, opts.NumLimit),
				Label2: between(rng, 0, opts.NumLimit),
				Label3: between(rng, 0, opts.NumLimit),
				Label4: between(rng, 0, opts.NumLimit),
			}
			pieLeft--
		}
		out[i] = n
	}
	return out
}

// links connects node x to a node in the opposite half of [1, n].
func links(rng *rand.Rand, n int) []graph.Link {
	out := make([]graph.Link, 0, n-1)
	for x := 1; x < n; x++ {
		var target int
		if 2*x > n {
			target = between(rng, 1, x-1)
		} else {
			target = between(rng, x+1, n)
		}
		out = append(out, graph.Link{ID: n + x, Source: x, Target: target})
	}
	return out
}

// between returns a uniform integer in [lo, hi].
func between(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}

// Check verifies that doc honors the value ranges of opts on top of the
// structural rules enforced by [graph.Document.Validate].
func Check(doc *graph.Document, opts Options) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	if len(doc.Nodes) != opts.NodeCount {
		return errors.New(errors.ErrCodeInvalidFixture, "got %d nodes, want %d", len(doc.Nodes), opts.NodeCount)
	}

	pies := min(opts.PieChartCount, opts.NodeCount)
	for i, n := range doc.Nodes {
		if opts.Simple {
			if n.Num != n.ID || n.HasCluster() || n.HasPie() {
				return errors.New(errors.ErrCodeInvalidFixture, "node %d does not match the simple form", n.ID)
			}
			continue
		}
		if n.Num < 0 || n.Num > opts.NumLimit {
			return errors.New(errors.ErrCodeInvalidFixture, "node %d num %d outside [0, %d]", n.ID, n.Num, opts.NumLimit)
		}
		switch {
		case opts.ClusterCount > 0 && !n.HasCluster():
			return errors.New(errors.ErrCodeInvalidFixture, "node %d has no cluster", n.ID)
		case opts.ClusterCount == 0 && n.HasCluster():
			return errors.New(errors.ErrCodeInvalidFixture, "node %d has a cluster but clustering is off", n.ID)
		case n.HasCluster() && (*n.Cluster < 0 || *n.Cluster >= opts.ClusterCount):
			return errors.New(errors.ErrCodeInvalidFixture, "node %d cluster %d outside [0, %d]", n.ID, *n.Cluster, opts.ClusterCount-1)
		}
		if n.HasPie() != (i < pies) {
			return errors.New(errors.ErrCodeInvalidFixture, "node %d pie presence is wrong (first %d nodes carry pie values)", n.ID, pies)
		}
		if n.HasPie() {
			for _, v := range n.Pie.Values() {
				if v < 0 || v > opts.NumLimit {
					return errors.New(errors.ErrCodeInvalidFixture, "node %d pie value %d outside [0, %d]", n.ID, v, opts.NumLimit)
				}
			}
		}
	}
	return nil
}

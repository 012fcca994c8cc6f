package graph

import (
	"github.com/matzehuels/fixturegen/pkg/errors"
)

// =============================================================================
// Document - Node/Link Fixture
// =============================================================================

// Document is the serialization format for graph fixtures.
//
// Nodes carry ids 1..N in order; links carry ids N+1..2N-1 in order, so node
// and link ids never overlap. Both slices are written exactly as built.
type Document struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

// =============================================================================
// Node
// =============================================================================

// Node is a graph vertex with a numeric attribute and optional grouping.
type Node struct {
	ID      int  `json:"id"`
	Num     int  `json:"num"`
	Cluster *int `json:"cluster,omitempty"` // Set only in cluster mode
	Pie     *Pie `json:"pie,omitempty"`     // Set only for the leading pie-chart nodes
}

// HasCluster reports whether the node was assigned a cluster.
func (n *Node) HasCluster() bool { return n.Cluster != nil }

// HasPie reports whether the node carries pie-chart values.
func (n *Node) HasPie() bool { return n.Pie != nil }

// Pie holds the four labeled values of a pie-chart node.
type Pie struct {
	Label1 int `json:"label1"`
	Label2 int `json:"label2"`
	Label3 int `json:"label3"`
	Label4 int `json:"label4"`
}

// Values returns the labels in order.
func (p Pie) Values() [4]int {
	return [4]int{p.Label1, p.Label2, p.Label3, p.Label4}
}

// =============================================================================
// Link
// =============================================================================

// Link connects two distinct nodes.
type Link struct {
	ID     int `json:"id"`
	Source int `json:"source"`
	Target int `json:"target"`
}

// =============================================================================
// Structural Checks
// =============================================================================

// Validate checks the id layout and link endpoints of d:
//   - nodes are numbered 1..N in order
//   - links are numbered N+1..2N-1 in order
//   - every link joins two distinct existing nodes
func (d *Document) Validate() error {
	n := len(d.Nodes)
	for i, node := range d.Nodes {
		if node.ID != i+1 {
			return errors.New(errors.ErrCodeInvalidFixture, "node %d has id %d, want %d", i, node.ID, i+1)
		}
	}
	if n > 0 && len(d.Links) != n-1 {
		return errors.New(errors.ErrCodeInvalidFixture, "%d nodes need %d links, got %d", n, n-1, len(d.Links))
	}
	for i, l := range d.Links {
		if want := n + i + 1; l.ID != want {
			return errors.New(errors.ErrCodeInvalidFixture, "link %d has id %d, want %d", i, l.ID, want)
		}
		if l.Source < 1 || l.Source > n || l.Target < 1 || l.Target > n {
			return errors.New(errors.ErrCodeInvalidFixture, "link %d joins %d and %d outside [1, %d]", l.ID, l.Source, l.Target, n)
		}
		if l.Source == l.Target {
			return errors.New(errors.ErrCodeInvalidFixture, "link %d is a self-loop on node %d", l.ID, l.Source)
		}
	}
	return nil
}

// Stats summarizes a document.
type Stats struct {
	Nodes          int
	Links          int
	Clustered      int // nodes with a cluster
	Clusters       int // distinct cluster values
	PieNodes       int // nodes with pie values
	MaxNum         int // largest num or pie value
	DuplicatePairs int // links repeating an earlier unordered pair
}

// Stats computes summary counts for d.
func (d *Document) Stats() Stats {
	s := Stats{Nodes: len(d.Nodes), Links: len(d.Links)}
	clusters := make(map[int]struct{})
	for _, n := range d.Nodes {
		s.MaxNum = max(s.MaxNum, n.Num)
		if n.Cluster != nil {
			s.Clustered++
			clusters[*n.Cluster] = struct{}{}
		}
		if n.Pie != nil {
			s.PieNodes++
			for _, v := range n.Pie.Values() {
				s.MaxNum = max(s.MaxNum, v)
			}
		}
	}
	s.Clusters = len(clusters)

	pairs := make(map[[2]int]struct{}, len(d.Links))
	for _, l := range d.Links {
		key := [2]int{min(l.Source, l.Target), max(l.Source, l.Target)}
		if _, dup := pairs[key]; dup {
			s.DuplicatePairs++
		}
		pairs[key] = struct{}{}
	}
	return s
}

package fixture

import (
	"math/rand/v2"
	"testing"

	"github.com/matzehuels/fixturegen/pkg/errors"
	"github.com/matzehuels/fixturegen/pkg/graph"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

func TestGenerateStructure(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"Defaults", DefaultOptions()},
		{"Smallest", Options{NodeCount: 2, NumLimit: 0}},
		{"Odd", Options{NodeCount: 7, NumLimit: 3}},
		{"Clusters", Options{NodeCount: 100, NumLimit: 20, ClusterCount: 5}},
		{"Pies", Options{NodeCount: 30, NumLimit: 9, PieChartCount: 10}},
		{"PiesAndClusters", Options{NodeCount: 30, NumLimit: 9, ClusterCount: 3, PieChartCount: 4}},
		{"MorePiesThanNodes", Options{NodeCount: 5, NumLimit: 9, PieChartCount: 50}},
		{"Simple", Options{NodeCount: 25, Simple: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := range uint64(5) {
				doc, err := Generate(newRand(seed), tt.opts)
				if err != nil {
					t.Fatalf("Generate error: %v", err)
				}
				k := tt.opts.NodeCount
				if len(doc.Nodes) != k || len(doc.Links) != k-1 {
					t.Fatalf("got %d nodes / %d links, want %d / %d", len(doc.Nodes), len(doc.Links), k, k-1)
				}
				if err := Check(doc, tt.opts); err != nil {
					t.Fatalf("Check error: %v", err)
				}
			}
		})
	}
}

func TestGenerateLinkHalves(t *testing.T) {
	const k = 40
	doc, err := Generate(newRand(9), Options{NodeCount: k, NumLimit: 1})
	if err != nil {
		t.Fatal(err)
	}
	for i, l := range doc.Links {
		x := i + 1
		if l.ID != k+x || l.Source != x {
			t.Fatalf("link %d = %+v, want id %d source %d", i, l, k+x, x)
		}
		if 2*x > k {
			if l.Target < 1 || l.Target > x-1 {
				t.Errorf("link %d target %d outside [1, %d]", l.ID, l.Target, x-1)
			}
		} else if l.Target < x+1 || l.Target > k {
			t.Errorf("link %d target %d outside [%d, %d]", l.ID, l.Target, x+1, k)
		}
	}
}

func TestGenerateExample(t *testing.T) {
	// generate-graph 4 10 0 0
	opts, err := ParseArgs([]string{"4", "10", "0", "0"}, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	doc, err := Generate(newRand(1), opts)
	if err != nil {
		t.Fatal(err)
	}
	for i, n := range doc.Nodes {
		if n.ID != i+1 || n.Num < 0 || n.Num > 10 || n.HasCluster() || n.HasPie() {
			t.Errorf("node %+v does not match the example", n)
		}
	}
	for i, l := range doc.Links {
		if l.ID != 5+i || l.Source == l.Target || l.Target < 1 || l.Target > 4 {
			t.Errorf("link %+v does not match the example", l)
		}
	}
}

func TestGenerateSimpleNum(t *testing.T) {
	doc, err := Generate(newRand(2), Options{NodeCount: 6, Simple: true})
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range doc.Nodes {
		if n.Num != n.ID {
			t.Errorf("node %d num = %d, want id", n.ID, n.Num)
		}
	}
}

func TestGenerateInvalid(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"NoNodes", Options{NodeCount: 0}},
		{"OneNode", Options{NodeCount: 1}},
		{"TooMany", Options{NodeCount: MaxNodeCount + 1}},
		{"NegativeLimit", Options{NodeCount: 3, NumLimit: -1}},
		{"NegativeClusters", Options{NodeCount: 3, ClusterCount: -2}},
		{"NegativePies", Options{NodeCount: 3, PieChartCount: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(newRand(0), tt.opts)
			if !errors.Is(err, errors.ErrCodeInvalidArgument) {
				t.Errorf("Generate error = %v, want %s", err, errors.ErrCodeInvalidArgument)
			}
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	opts := Options{NodeCount: 20, NumLimit: 8, ClusterCount: 3, PieChartCount: 2}
	a, _ := Generate(newRand(11), opts)
	b, _ := Generate(newRand(11), opts)
	da, _ := graph.Marshal(a)
	db, _ := graph.Marshal(b)
	if string(da) != string(db) {
		t.Error("same seed should produce the same document")
	}
}

func TestCheckRejects(t *testing.T) {
	opts := Options{NodeCount: 4, NumLimit: 5, ClusterCount: 2, PieChartCount: 1}
	tests := []struct {
		name   string
		mutate func(d *graph.Document)
	}{
		{"NumTooLarge", func(d *graph.Document) { d.Nodes[0].Num = 6 }},
		{"ClusterMissing", func(d *graph.Document) { d.Nodes[1].Cluster = nil }},
		{"ClusterTooLarge", func(d *graph.Document) { c := 2; d.Nodes[2].Cluster = &c }},
		{"PieMissing", func(d *graph.Document) { d.Nodes[0].Pie = nil }},
		{"ExtraPie", func(d *graph.Document) { d.Nodes[3].Pie = &graph.Pie{} }},
		{"PieValueTooLarge", func(d *graph.Document) { d.Nodes[0].Pie.Label3 = 9 }},
		{"SelfLoop", func(d *graph.Document) { d.Links[0].Target = 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Generate(newRand(4), opts)
			if err != nil {
				t.Fatal(err)
			}
			tt.mutate(doc)
			if err := Check(doc, opts); !errors.Is(err, errors.ErrCodeInvalidFixture) {
				t.Errorf("Check error = %v, want %s", err, errors.ErrCodeInvalidFixture)
			}
		})
	}
}

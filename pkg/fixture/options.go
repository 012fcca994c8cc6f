package fixture

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/matzehuels/fixturegen/pkg/errors"
)

// Parameter defaults.
const (
	DefaultNodeCount     = 50
	DefaultNumLimit      = 50
	DefaultClusterCount  = 0
	DefaultPieChartCount = 0
)

const (
	// MinNodeCount is the smallest graph that has a link.
	MinNodeCount = 2

	// MaxNodeCount caps fixture size so link ids (up to 2N-1) stay well
	// inside the JSON safe-integer range of the viewers.
	MaxNodeCount = 1 << 24
)

// Options configures graph fixture generation.
type Options struct {
	NodeCount     int  `toml:"node_count"`
	NumLimit      int  `toml:"num_limit"`
	ClusterCount  int  `toml:"cluster_count"`
	PieChartCount int  `toml:"pie_chart_count"`
	Simple        bool `toml:"simple"`
}

// DefaultOptions returns the extended form with every parameter at its default.
func DefaultOptions() Options {
	return Options{
		NodeCount:     DefaultNodeCount,
		NumLimit:      DefaultNumLimit,
		ClusterCount:  DefaultClusterCount,
		PieChartCount: DefaultPieChartCount,
	}
}

// Validate checks every parameter range.
func (o Options) Validate() error {
	if err := errors.ValidateRange("nodeCount", o.NodeCount, MinNodeCount, MaxNodeCount); err != nil {
		return err
	}
	if o.Simple {
		return nil
	}
	if err := errors.ValidateNonNegative("numLimit", o.NumLimit); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative("clusterCount", o.ClusterCount); err != nil {
		return err
	}
	return errors.ValidateNonNegative("pieChartCount", o.PieChartCount)
}

// Positional parameter names in the order they are accepted.
var positional = []string{"nodeCount", "numLimit", "clusterCount", "pieChartCount"}

// MaxArgs returns how many positional arguments the form accepts.
func (o Options) MaxArgs() int {
	if o.Simple {
		return 1
	}
	return len(positional)
}

// ParseArgs overlays positional arguments onto base.
// The k-th argument is only read when the k-1 before it were supplied, so
// absent trailing positions keep the values from base.
func ParseArgs(args []string, base Options) (Options, error) {
	if len(args) > base.MaxArgs() {
		return base, errors.New(errors.ErrCodeInvalidArgument,
			"expected at most %d arguments, got %d", base.MaxArgs(), len(args))
	}

	opts := base
	fields := []*int{&opts.NodeCount, &opts.NumLimit, &opts.ClusterCount, &opts.PieChartCount}
	for i, arg := range args {
		v, err := errors.ParseCount(positional[i], arg)
		if err != nil {
			return base, err
		}
		*fields[i] = v
	}
	return opts, opts.Validate()
}

// Filename returns the fixture file name.
// The extended form encodes all four parameters; the simple form encodes the
// node count and now in Unix seconds.
func Filename(o Options, now time.Time) string {
	if o.Simple {
		return fmt.Sprintf("testData-%d-%d.json", o.NodeCount, now.Unix())
	}
	return fmt.Sprintf("testData-%d-%d-%d-%d.json", o.NodeCount, o.NumLimit, o.ClusterCount, o.PieChartCount)
}

var extendedName = regexp.MustCompile(`^testData-(\d+)-(\d+)-(\d+)-(\d+)\.json$`)

// ParseFilename recovers the options encoded in an extended-form file name.
func ParseFilename(name string) (Options, bool) {
	m := extendedName.FindStringSubmatch(name)
	if m == nil {
		return Options{}, false
	}
	var vals [4]int
	for i := range vals {
		v, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Options{}, false
		}
		vals[i] = v
	}
	return Options{NodeCount: vals[0], NumLimit: vals[1], ClusterCount: vals[2], PieChartCount: vals[3]}, true
}

// String describes the effective parameters.
func (o Options) String() string {
	if o.Simple {
		return fmt.Sprintf("%d nodes (simple)", o.NodeCount)
	}
	return fmt.Sprintf("%d nodes, num <= %d, %d clusters, %d pie charts",
		o.NodeCount, o.NumLimit, o.ClusterCount, o.PieChartCount)
}

package fixture

import (
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/fixturegen/pkg/errors"
)

// LoadPreset reads fixture parameters from a TOML file. Keys missing from the
// file keep their defaults:
//
//	node_count      = 2000
//	num_limit       = 100
//	cluster_count   = 12
//	pie_chart_count = 40
func LoadPreset(path string) (Options, error) {
	opts := DefaultOptions()
	md, err := toml.DecodeFile(path, &opts)
	if err != nil {
		return Options{}, errors.Wrap(errors.ErrCodeInvalidArgument, err, "read preset %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Options{}, errors.New(errors.ErrCodeInvalidArgument, "unknown preset keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return opts, nil
}

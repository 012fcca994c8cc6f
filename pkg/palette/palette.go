package palette

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/matzehuels/fixturegen/pkg/errors"
)

const (
	// Alphabet lists the symbols a color is built from.
	Alphabet = "0123456789ABCDEF"

	// Digits is the number of symbols per color.
	Digits = 6

	// Capacity is the number of distinct colors (16^6).
	Capacity = 1 << (4 * Digits)

	// DefaultCount is the palette size loaded by the graph viewers.
	DefaultCount = 40

	// maxAttempts bounds the resampling of a single slot before falling back
	// to enumeration of the unused space.
	maxAttempts = 32
)

// Color is a 24-bit RGB value rendered as "#RRGGBB".
type Color uint32

// String returns the color as '#' followed by six uppercase hex digits.
func (c Color) String() string {
	return fmt.Sprintf("#%06X", uint32(c))
}

// RGB splits the color into its channels.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Parse decodes a "#XXXXXX" string where X is drawn from [Alphabet].
func Parse(s string) (Color, error) {
	if len(s) != Digits+1 || s[0] != '#' {
		return 0, errors.New(errors.ErrCodeInvalidFixture, "color %q must be '#' followed by %d hex digits", s, Digits)
	}
	var v uint32
	for i := 1; i < len(s); i++ {
		d := strings.IndexByte(Alphabet, s[i])
		if d < 0 {
			return 0, errors.New(errors.ErrCodeInvalidFixture, "color %q contains %q outside %s", s, s[i], Alphabet)
		}
		v = v<<4 | uint32(d)
	}
	return Color(v), nil
}

// Palette is the document written to a colors fixture.
type Palette struct {
	Colors []Color `json:"colors"`
}

// Len returns the number of colors.
func (p *Palette) Len() int { return len(p.Colors) }

// At returns the color assigned to a cluster, wrapping around the palette
// the same way the viewers do. It panics on an empty palette.
func (p *Palette) At(cluster int) Color {
	n := len(p.Colors)
	return p.Colors[((cluster%n)+n)%n]
}

// Strings returns the colors in their "#XXXXXX" form.
func (p *Palette) Strings() []string {
	out := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		out[i] = c.String()
	}
	return out
}

// Validate reports the first duplicate color, if any.
func (p *Palette) Validate() error {
	seen := make(map[Color]int, len(p.Colors))
	for i, c := range p.Colors {
		if j, ok := seen[c]; ok {
			return errors.New(errors.ErrCodeInvalidFixture, "color %s repeated at positions %d and %d", c, j, i)
		}
		seen[c] = i
	}
	return nil
}

// Filename returns the fixture name for a palette of n colors.
func Filename(n int) string {
	return fmt.Sprintf("colors-%d.json", n)
}

// ValidateCount checks that n colors can be generated.
func ValidateCount(n int) error {
	return errors.ValidateRange("color count", n, 1, Capacity)
}

// Generate returns a palette of n unique random colors.
// It fails with INVALID_ARGUMENT when n is outside [1, Capacity].
func Generate(rng *rand.Rand, n int) (*Palette, error) {
	if err := ValidateCount(n); err != nil {
		return nil, err
	}

	seen := make(map[Color]struct{}, n)
	colors := make([]Color, 0, n)
	for len(colors) < n {
		c, ok := sample(rng, seen, Digits)
		if !ok {
			colors = fillExhaustive(rng, seen, colors, n, Digits)
			break
		}
		seen[c] = struct{}{}
		colors = append(colors, c)
	}
	return &Palette{Colors: colors}, nil
}

// sample draws up to maxAttempts values of the given number of symbols and
// returns the first one not yet in seen.
func sample(rng *rand.Rand, seen map[Color]struct{}, digits int) (Color, bool) {
	for range maxAttempts {
		var c Color
		for range digits {
			c = c<<4 | Color(rng.IntN(len(Alphabet)))
		}
		if _, dup := seen[c]; !dup {
			return c, true
		}
	}
	return 0, false
}

// fillExhaustive enumerates every unused color and completes colors with a
// uniform selection from them (partial Fisher-Yates).
func fillExhaustive(rng *rand.Rand, seen map[Color]struct{}, colors []Color, n, digits int) []Color {
	space := Color(1) << (4 * digits)
	free := make([]Color, 0, int(space)-len(seen))
	for v := range space {
		if _, used := seen[v]; !used {
			free = append(free, v)
		}
	}
	need := n - len(colors)
	for i := range need {
		j := i + rng.IntN(len(free)-i)
		free[i], free[j] = free[j], free[i]
		seen[free[i]] = struct{}{}
		colors = append(colors, free[i])
	}
	return colors
}

// Write encodes p as single-line JSON.
func Write(p *Palette, w io.Writer) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// Read decodes a palette and checks that its colors are distinct.
func Read(r io.Reader) (*Palette, error) {
	var p Palette
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFixture, err, "decode palette")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Package palette defines the ordered color lists used to color graphs.
//
// A palette of size k is always derived deterministically: the first ten
// entries come from [Master] in a fixed order, and any further entries are
// generated procedurally by rotating the hue by the golden angle. The same k
// therefore always yields the same colors, which keeps search results
// comparable across runs and lets a caller override the list explicitly with
// [FromColors].
//
//	p, _ := palette.New(3)
//	p[0] // "#FF6B6B"
//	p.Index("#45B7D1") // 2
package palette

import (
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	cerrors "github.com/matzehuels/chromatic/pkg/errors"
)

// Color is a palette entry written as a #RRGGBB hex string.
// The zero value [None] means "uncolored".
type Color string

// None is the absent color.
const None Color = ""

// IsNone reports whether c is the absent color.
func (c Color) IsNone() bool { return c == None }

// Normalize returns the canonical spelling of a hex color: upper case, with
// the #RGB shorthand expanded to #RRGGBB. Anything that is not a hex color,
// including [None], is returned unchanged.
func Normalize(c Color) Color {
	if c.IsNone() || cerrors.ValidateHexColor(string(c)) != nil {
		return c
	}
	parsed, err := colorful.Hex(string(c))
	if err != nil {
		return c
	}
	return Color(strings.ToUpper(parsed.Hex()))
}

// Equal reports whether c and o name the same color.
func (c Color) Equal(o Color) bool { return Normalize(c) == Normalize(o) }

// MaxSize bounds the number of colors a palette may hold.
const MaxSize = 256

// Master is the fixed, ordered list of base hues.
var Master = Palette{
	"#FF6B6B", // red
	"#4ECDC4", // cyan
	"#45B7D1", // blue
	"#FFA07A", // orange
	"#98D8C8", // sea green
	"#F7DC6F", // yellow
	"#BB8FCE", // purple
	"#85C1E2", // light blue
	"#F8B88B", // peach
	"#ABEBC6", // mint
}

// goldenAngle spreads generated hues evenly around the color wheel.
const goldenAngle = 137.50776405003785

// Palette is an ordered list of distinct colors.
type Palette []Color

// New returns the deterministic palette of size k.
func New(k int) (Palette, error) {
	return Master.Truncate(k)
}

// MustNew is like [New] but panics on an invalid k. Intended for tests and
// package-level variables.
func MustNew(k int) Palette {
	p, err := New(k)
	if err != nil {
		panic(err)
	}
	return p
}

// FromColors builds an explicit palette. Colors must be valid hex strings and
// must not repeat once normalized, so "#f00" and "#FF0000" clash. Entries are
// stored in their [Normalize] form.
func FromColors(colors ...string) (Palette, error) {
	if len(colors) == 0 {
		return nil, cerrors.New(cerrors.ErrCodeInvalidColor, "palette must contain at least one color")
	}
	if len(colors) > MaxSize {
		return nil, cerrors.New(cerrors.ErrCodeInvalidColor, "palette too large (max %d colors)", MaxSize)
	}
	seen := make(map[Color]bool, len(colors))
	p := make(Palette, 0, len(colors))
	for _, c := range colors {
		if err := cerrors.ValidateHexColor(c); err != nil {
			return nil, err
		}
		key := Normalize(Color(c))
		if seen[key] {
			return nil, cerrors.New(cerrors.ErrCodeInvalidColor, "duplicate palette color %q", c)
		}
		seen[key] = true
		p = append(p, key)
	}
	return p, nil
}

// Truncate returns the first k colors of p. When k exceeds len(p), the
// remaining entries are generated procedurally, skipping any hue that would
// collide with an existing entry.
func (p Palette) Truncate(k int) (Palette, error) {
	if k < 1 {
		return nil, cerrors.New(cerrors.ErrCodeInvalidK, "k must be >= 1, got %d", k)
	}
	if k > MaxSize {
		return nil, cerrors.New(cerrors.ErrCodeInvalidK, "k must be <= %d, got %d", MaxSize, k)
	}
	if k <= len(p) {
		out := make(Palette, k)
		copy(out, p[:k])
		return out, nil
	}

	out := make(Palette, len(p), k)
	copy(out, p)
	for i := len(p); len(out) < k; i++ {
		c := generated(i)
		if !out.Contains(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

// Len returns the number of colors.
func (p Palette) Len() int { return len(p) }

// Index returns the position of c in p, or -1 when absent. Colors are
// compared in their [Normalize] form.
func (p Palette) Index(c Color) int {
	c = Normalize(c)
	for i, pc := range p {
		if Normalize(pc) == c {
			return i
		}
	}
	return -1
}

// Contains reports whether c is one of the palette colors.
func (p Palette) Contains(c Color) bool { return p.Index(c) >= 0 }

// Strings returns the colors as plain strings.
func (p Palette) Strings() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = string(c)
	}
	return out
}

// generated returns the procedural color for position i.
// Saturation and value alternate so neighboring indices stay distinguishable.
func generated(i int) Color {
	hue := math.Mod(float64(i)*goldenAngle, 360)
	sat := 0.45 + 0.15*float64(i%3)
	val := 0.95 - 0.10*float64(i%2)
	return Color(strings.ToUpper(colorful.Hsv(hue, sat, val).Hex()))
}

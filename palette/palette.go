// Package palette maps 24-bit colors onto the xterm 256-color palette.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"github.com/dialup-inc/img2sh/pixel"
	"github.com/dialup-inc/img2sh/term"
)

var (
	// ErrOutOfPalette is returned when a match falls outside [0, 255].
	ErrOutOfPalette = errors.New("palette index out of range")

	// ErrUnknownMatcher is returned by New for an unregistered name.
	ErrUnknownMatcher = errors.New("unknown palette matcher")
)

// A Quantizer picks the terminal palette index used to display a color.
type Quantizer interface {
	Quantize(c pixel.RGB) (int, error)
}

// Func adapts an ordinary function to the Quantizer interface.
type Func func(c pixel.RGB) (int, error)

func (f Func) Quantize(c pixel.RGB) (int, error) {
	return f(c)
}

func checkIndex(c pixel.RGB, i int) (int, error) {
	if i < 0 || i > 255 {
		return 0, fmt.Errorf("%v matched %d: %w", c, i, ErrOutOfPalette)
	}
	return i, nil
}

// Nearest picks the entry with the smallest squared RGB distance, the way
// image.Paletted does. The zero value uses term.ANSIPalette.
type Nearest struct {
	Palette color.Palette
}

func (n Nearest) Quantize(c pixel.RGB) (int, error) {
	p := n.Palette
	if p == nil {
		p = term.ANSIPalette
	}
	if len(p) == 0 {
		return 0, fmt.Errorf("empty palette: %w", ErrOutOfPalette)
	}
	return checkIndex(c, p.Index(color.RGBA{c.R, c.G, c.B, 0xff}))
}

type lab struct {
	l, a, b float64
}

// Lab picks the entry nearest in CIE L*a*b*, which tracks perceived
// difference better than raw RGB at the cost of a color space conversion
// per pixel.
type Lab struct {
	entries []lab
}

func NewLab(p color.Palette) *Lab {
	entries := make([]lab, len(p))
	for i, c := range p {
		cc, _ := colorful.MakeColor(c)
		l, a, b := cc.Lab()
		entries[i] = lab{l, a, b}
	}
	return &Lab{entries: entries}
}

func (q *Lab) Quantize(c pixel.RGB) (int, error) {
	if len(q.entries) == 0 {
		return 0, fmt.Errorf("empty palette: %w", ErrOutOfPalette)
	}

	l, a, b := toColorful(c).Lab()

	best, bestDist := 0, -1.0
	for i, e := range q.entries {
		dl, da, db := l-e.l, a-e.a, b-e.b
		d := dl*dl + da*da + db*db
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return checkIndex(c, best)
}

// Cube rounds onto the 6x6x6 color cube or the grey ramp, whichever is
// closer, using termenv's 256-color conversion. It never returns one of the
// 16 system colors, whose actual values vary between terminal themes.
type Cube struct{}

func (Cube) Quantize(c pixel.RGB) (int, error) {
	hex := toColorful(c).Hex()
	switch v := termenv.ANSI256.Convert(termenv.RGBColor(hex)).(type) {
	case termenv.ANSI256Color:
		return checkIndex(c, int(v))
	case termenv.ANSIColor:
		return checkIndex(c, int(v))
	default:
		return 0, fmt.Errorf("%v: termenv returned %T: %w", c, v, ErrOutOfPalette)
	}
}

func toColorful(c pixel.RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

var matchers = map[string]func() Quantizer{
	"rgb":  func() Quantizer { return Nearest{Palette: term.ANSIPalette} },
	"lab":  func() Quantizer { return NewLab(term.ANSIPalette) },
	"cube": func() Quantizer { return Cube{} },
}

// DefaultMatcher is the name of the matcher used when none is requested.
const DefaultMatcher = "rgb"

// New returns the quantizer registered under name.
func New(name string) (Quantizer, error) {
	mk, ok := matchers[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (want one of %v)", ErrUnknownMatcher, name, Matchers())
	}
	return mk(), nil
}

// Matchers lists the registered matcher names in sorted order.
func Matchers() []string {
	names := make([]string, 0, len(matchers))
	for name := range matchers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

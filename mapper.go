package img2sh

import (
	"strings"

	"github.com/dialup-inc/img2sh/palette"
	"github.com/dialup-inc/img2sh/pixel"
	"github.com/dialup-inc/img2sh/term"
)

// A PixelMapper turns one pixel into one output token.
type PixelMapper interface {
	MapPixel(c pixel.RGB) (string, error)
}

// LuminanceMapper picks a ramp glyph from the mean of the three channels.
type LuminanceMapper struct {
	Ramp Ramp
}

// Index returns the ramp position for c. The mean is scaled by 1/256 and
// truncated, not rounded, so every pixel leans one notch toward the start
// of the ramp at level boundaries.
func (m LuminanceMapper) Index(c pixel.RGB) int {
	sum := int(c.R) + int(c.G) + int(c.B)
	i := int(float64(sum) / 768.0 * float64(len(m.Ramp)))
	if i >= len(m.Ramp) {
		i = len(m.Ramp) - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// MapPixel returns the glyph at Index(c).
func (m LuminanceMapper) MapPixel(c pixel.RGB) (string, error) {
	if len(m.Ramp) == 0 {
		return "", ErrEmptyRamp
	}
	return string(m.Ramp.Glyph(m.Index(c))), nil
}

// ColorMapper paints a space with the palette color the quantizer picks.
type ColorMapper struct {
	Quantizer palette.Quantizer
}

// MapPixel returns a 256-color background escape followed by a space.
func (m ColorMapper) MapPixel(c pixel.RGB) (string, error) {
	n, err := m.Quantizer.Quantize(c)
	if err != nil {
		return "", &QuantizationError{Pixel: c, Err: err}
	}

	var b strings.Builder
	a := term.ANSI{&b}
	a.Background256(n)
	b.WriteByte(' ')

	return b.String(), nil
}

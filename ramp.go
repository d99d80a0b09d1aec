package img2sh

import "errors"

// ErrEmptyRamp is returned when a greyscale ramp has no characters.
var ErrEmptyRamp = errors.New("greyscale ramp is empty")

// A Ramp lists glyphs ordered by the luminance they stand for, darkest
// first. Whether a dense glyph reads as dark or light depends on the
// terminal's background, so picking the order is up to the caller.
type Ramp []rune

// NewRamp splits chars into glyphs, failing with ErrEmptyRamp if there are none.
func NewRamp(chars string) (Ramp, error) {
	r := Ramp(chars)
	if len(r) == 0 {
		return nil, ErrEmptyRamp
	}
	return r, nil
}

// Glyph returns the i'th glyph with i clamped into range.
func (r Ramp) Glyph(i int) rune {
	if i < 0 {
		i = 0
	}
	if i >= len(r) {
		i = len(r) - 1
	}
	return r[i]
}

// Reverse returns a copy of r in the opposite order.
func (r Ramp) Reverse() Ramp {
	out := make(Ramp, len(r))
	for i, c := range r {
		out[len(r)-1-i] = c
	}
	return out
}

func (r Ramp) String() string {
	return string(r)
}

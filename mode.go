package img2sh

import "github.com/dialup-inc/img2sh/palette"

// A RenderMode selects how pixels become text. It is either Color or
// Greyscale.
type RenderMode interface {
	mapper() (PixelMapper, error)
}

// Color renders each pixel as a background-colored space.
type Color struct {
	Quantizer palette.Quantizer
}

func (m Color) mapper() (PixelMapper, error) {
	if m.Quantizer == nil {
		return nil, ErrNoQuantizer
	}
	return ColorMapper{Quantizer: m.Quantizer}, nil
}

// Greyscale renders each pixel as a glyph from Ramp.
type Greyscale struct {
	Ramp Ramp
}

func (m Greyscale) mapper() (PixelMapper, error) {
	if len(m.Ramp) == 0 {
		return nil, ErrEmptyRamp
	}
	return LuminanceMapper{Ramp: m.Ramp}, nil
}

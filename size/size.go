// Package size resolves the character grid an image is rendered into.
package size

import (
	"fmt"
	"math"
	"strconv"
)

// DefaultMaxSide is used in place of a non-positive MaxSide.
const DefaultMaxSide = 40

// MaxCells caps the number of characters in one rendered image. The
// resampler allocates four bytes per cell, and text output is several
// bytes more, so larger targets risk exhausting memory.
const MaxCells = 1 << 24

// A Constraint bounds the rendered size. It is either MaxSide or Scale.
type Constraint interface {
	fmt.Stringer
	isConstraint()
}

// MaxSide scales the image so its shorter side is exactly n characters.
type MaxSide int

func (MaxSide) isConstraint() {}

// Normalize returns n, or DefaultMaxSide when n is not positive.
func (n MaxSide) Normalize() MaxSide {
	if n <= 0 {
		return DefaultMaxSide
	}
	return n
}

func (n MaxSide) String() string {
	return strconv.Itoa(int(n))
}

// Scale multiplies both sides by a fraction in (0, 1].
type Scale float64

func (Scale) isConstraint() {}

// Normalize returns p, or 1 when p falls outside (0, 1].
func (p Scale) Normalize() Scale {
	if math.IsNaN(float64(p)) || p <= 0 || p > 1 {
		return 1
	}
	return p
}

func (p Scale) String() string {
	return strconv.FormatFloat(float64(p)*100, 'g', -1, 64) + "%"
}

// Dimensions is a width and height in characters.
type Dimensions struct {
	Width  int
	Height int
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Resolve computes the output size for a srcW x srcH image. Sizes round
// down. A nil constraint means MaxSide(DefaultMaxSide).
//
// A result with a zero side, or one with more than MaxCells cells, is
// reported as a *DimensionError rather than rendered.
func Resolve(srcW, srcH int, c Constraint) (Dimensions, error) {
	if c == nil {
		c = MaxSide(DefaultMaxSide)
	}

	var d Dimensions
	if srcW > 0 && srcH > 0 {
		switch c := c.(type) {
		case MaxSide:
			// Integer math keeps the short side at exactly n; the
			// float form n/short*side can land a hair below n.
			n := int(c.Normalize())
			if n > math.MaxInt/max(srcW, srcH) {
				return Dimensions{}, &DimensionError{
					Source:     Dimensions{srcW, srcH},
					Constraint: c,
					Err:        ErrTooLarge,
				}
			}
			short := min(srcW, srcH)
			d = Dimensions{srcW * n / short, srcH * n / short}

		case Scale:
			p := float64(c.Normalize())
			d = Dimensions{int(float64(srcW) * p), int(float64(srcH) * p)}

		default:
			return Dimensions{}, fmt.Errorf("unsupported size constraint %T", c)
		}
	}

	var err error
	switch {
	case d.Width <= 0 || d.Height <= 0:
		err = ErrEmpty
	case d.Width > MaxCells/d.Height:
		err = ErrTooLarge
	default:
		return d, nil
	}
	return d, &DimensionError{
		Source:     Dimensions{srcW, srcH},
		Constraint: c,
		Target:     d,
		Err:        err,
	}
}

package pixel

import (
	"fmt"
	"image"
	"image/color"
)

// RGB is a single 8-bit-per-channel color sample.
type RGB struct {
	R, G, B uint8
}

// FromColor drops alpha and reduces c to 8 bits per channel. Go colors are
// alpha-premultiplied, so fully transparent pixels come out black.
func FromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// Grid is a row-major array of RGB samples.
type Grid struct {
	Width  int
	Height int
	Pix    []RGB
}

// NewGrid allocates a black grid. Negative sizes give an empty grid.
func NewGrid(width, height int) *Grid {
	if width < 0 || height < 0 {
		width, height = 0, 0
	}
	return &Grid{
		Width:  width,
		Height: height,
		Pix:    make([]RGB, width*height),
	}
}

func (g *Grid) At(x, y int) RGB {
	return g.Pix[y*g.Width+x]
}

func (g *Grid) Set(x, y int, c RGB) {
	g.Pix[y*g.Width+x] = c
}

// Row returns the samples of row y, left to right. The slice aliases the grid.
func (g *Grid) Row(y int) []RGB {
	return g.Pix[y*g.Width : (y+1)*g.Width]
}

// FromImage copies img into a new Grid anchored at (0, 0).
func FromImage(img image.Image) *Grid {
	bounds := img.Bounds()
	grid := NewGrid(bounds.Dx(), bounds.Dy())

	if rgba, ok := img.(*image.RGBA); ok {
		// Fast path for resampler output: skip the color.Color interface.
		for y := 0; y < grid.Height; y++ {
			off := rgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			row := grid.Row(y)
			for x := range row {
				i := off + x*4
				row[x] = RGB{rgba.Pix[i], rgba.Pix[i+1], rgba.Pix[i+2]}
			}
		}
		return grid
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			grid.Set(x-bounds.Min.X, y-bounds.Min.Y, FromColor(img.At(x, y)))
		}
	}

	return grid
}

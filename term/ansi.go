package term

import (
	"fmt"
	"image/color"
	"io"
)

// ANSI writes terminal control sequences to the underlying writer.
//
// Write errors are ignored; callers that care check the writer itself.
type ANSI struct {
	io.Writer
}

// Background256 sets the background to xterm palette entry n.
func (a ANSI) Background256(n int) {
	fmt.Fprintf(a.Writer, "\x1b[48;5;%dm", n)
}

// Reset clears all attributes, colors included.
func (a ANSI) Reset() {
	io.WriteString(a.Writer, "\x1b[0m")
}

// ANSIPalette is the xterm 256-color palette: 16 system colors, the 6x6x6
// color cube, then 24 greys.
var ANSIPalette = makeXtermPalette()

var systemColors = [16]color.RGBA{
	{0x00, 0x00, 0x00, 0xff},
	{0x80, 0x00, 0x00, 0xff},
	{0x00, 0x80, 0x00, 0xff},
	{0x80, 0x80, 0x00, 0xff},
	{0x00, 0x00, 0x80, 0xff},
	{0x80, 0x00, 0x80, 0xff},
	{0x00, 0x80, 0x80, 0xff},
	{0xc0, 0xc0, 0xc0, 0xff},
	{0x80, 0x80, 0x80, 0xff},
	{0xff, 0x00, 0x00, 0xff},
	{0x00, 0xff, 0x00, 0xff},
	{0xff, 0xff, 0x00, 0xff},
	{0x00, 0x00, 0xff, 0xff},
	{0xff, 0x00, 0xff, 0xff},
	{0x00, 0xff, 0xff, 0xff},
	{0xff, 0xff, 0xff, 0xff},
}

var cubeLevels = [6]uint8{0x00, 0x5f, 0x87, 0xaf, 0xd7, 0xff}

func makeXtermPalette() color.Palette {
	p := make(color.Palette, 0, 256)
	for _, c := range systemColors {
		p = append(p, c)
	}

	// index = 16 + 36*r + 6*g + b
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p = append(p, color.RGBA{cubeLevels[r], cubeLevels[g], cubeLevels[b], 0xff})
			}
		}
	}

	// level = 8 + 10*(index-232)
	for i := 0; i < 24; i++ {
		v := uint8(8 + 10*i)
		p = append(p, color.RGBA{v, v, v, 0xff})
	}

	return p
}

package pixel

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromColor(t *testing.T) {
	assert.Equal(t, RGB{255, 0, 0}, FromColor(color.RGBA{255, 0, 0, 255}))
	assert.Equal(t, RGB{10, 20, 30}, FromColor(color.NRGBA{10, 20, 30, 255}))
	assert.Equal(t, RGB{0, 0, 0}, FromColor(color.NRGBA{200, 200, 200, 0}))
	assert.Equal(t, RGB{128, 128, 128}, FromColor(color.Gray{128}))
}

func TestFromImageRowMajor(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			img.Set(x, y, color.NRGBA{uint8(x), uint8(y), 7, 255})
		}
	}

	grid := FromImage(img)
	require.Equal(t, 3, grid.Width)
	require.Equal(t, 2, grid.Height)
	require.Len(t, grid.Pix, 6)

	assert.Equal(t, RGB{2, 0, 7}, grid.Pix[2])
	assert.Equal(t, RGB{0, 1, 7}, grid.Pix[3])
	assert.Equal(t, []RGB{{0, 1, 7}, {1, 1, 7}, {2, 1, 7}}, grid.Row(1))
}

func TestFromImageRGBAFastPathMatchesGeneric(t *testing.T) {
	// Offset bounds exercise the PixOffset arithmetic.
	rect := image.Rect(5, 3, 9, 6)
	rgba := image.NewRGBA(rect)
	nrgba := image.NewNRGBA(rect)
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			c := color.RGBA{uint8(x * 20), uint8(y * 30), uint8(x + y), 255}
			rgba.Set(x, y, c)
			nrgba.Set(x, y, c)
		}
	}

	assert.Equal(t, FromImage(nrgba), FromImage(rgba))
	assert.Equal(t, RGB{100, 90, 8}, FromImage(rgba).At(0, 0))
}

func TestFromImageEmpty(t *testing.T) {
	grid := FromImage(image.NewRGBA(image.Rect(0, 0, 0, 0)))
	assert.Equal(t, 0, grid.Width)
	assert.Equal(t, 0, grid.Height)
	assert.Empty(t, grid.Pix)
}

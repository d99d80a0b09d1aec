// Package img2sh renders images as text for the terminal, either as colored
// blocks or as greyscale ASCII art.
package img2sh

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/dialup-inc/img2sh/pixel"
)

// Transformer renders pixel grids. The zero value renders on the calling
// goroutine.
type Transformer struct {
	// Workers is the number of rows mapped at once. Values below 2 map
	// rows one after another.
	Workers int
}

// Render maps every pixel of grid through mode's mapper, left to right and
// top to bottom. Any mapping error fails the whole render.
func (t Transformer) Render(ctx context.Context, grid *pixel.Grid, mode RenderMode) (*Text, error) {
	if grid == nil {
		return nil, ErrNoGrid
	}
	if mode == nil {
		return nil, ErrUnknownMode
	}
	m, err := mode.mapper()
	if err != nil {
		return nil, err
	}

	lines := make([]string, grid.Height)

	renderRow := func(y int) error {
		var b strings.Builder
		for x, c := range grid.Row(y) {
			tok, err := m.MapPixel(c)
			if err != nil {
				return fmt.Errorf("pixel (%d,%d): %w", x, y, err)
			}
			b.WriteString(tok)
		}
		lines[y] = b.String()
		return nil
	}

	if t.Workers < 2 {
		for y := range lines {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := renderRow(y); err != nil {
				return nil, err
			}
		}
	} else {
		// Each row lands in its own slot, so rows can finish in any order.
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(t.Workers)
		for y := range lines {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				return renderRow(y)
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	return &Text{Width: grid.Width, Lines: lines}, nil
}

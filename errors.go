package img2sh

import (
	"errors"
	"fmt"

	"github.com/dialup-inc/img2sh/pixel"
)

var (
	// ErrUnknownMode is returned by Render for a nil RenderMode.
	ErrUnknownMode = errors.New("unknown render mode")

	// ErrNoQuantizer is returned by Render for a Color mode without a quantizer.
	ErrNoQuantizer = errors.New("color mode needs a quantizer")

	// ErrNoGrid is returned by Render for a nil grid.
	ErrNoGrid = errors.New("no pixel grid to render")
)

// QuantizationError wraps a palette lookup failure for one pixel.
type QuantizationError struct {
	Pixel pixel.RGB
	Err   error
}

func (e *QuantizationError) Error() string {
	return fmt.Sprintf("quantization error: %v: %v", e.Pixel, e.Err)
}

func (e *QuantizationError) Unwrap() error {
	return e.Err
}

package size

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is the cause of a DimensionError whose target has a zero side.
	ErrEmpty = errors.New("empty output")

	// ErrTooLarge is the cause of a DimensionError whose target exceeds
	// MaxCells or cannot be computed without overflow.
	ErrTooLarge = fmt.Errorf("output over %d cells", MaxCells)
)

// ArgumentError reports a length argument that could not be parsed.
type ArgumentError struct {
	Value string
	Err   error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("bad length %q: %v (want an integer like 40 or a percentage like 50%%)", e.Value, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// DimensionError reports a constraint that gives an image no usable size.
// Target is zero when it overflowed before it could be computed.
type DimensionError struct {
	Source     Dimensions
	Constraint Constraint
	Target     Dimensions
	Err        error
}

func (e *DimensionError) Error() string {
	if e.Target == (Dimensions{}) {
		return fmt.Sprintf("dimension error: %v at %v: %v", e.Source, e.Constraint, e.Err)
	}
	return fmt.Sprintf("dimension error: %v at %v gives %v: %v", e.Source, e.Constraint, e.Target, e.Err)
}

func (e *DimensionError) Unwrap() error {
	return e.Err
}

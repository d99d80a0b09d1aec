package size

import (
	"errors"
	"strconv"
	"strings"
)

var errNotLength = errors.New("not an integer or percentage")

// Parse reads a length argument: a bare integer is a MaxSide, a number
// followed by "%" is a Scale ("50%" is Scale(0.5)). Range problems are left
// to Normalize; only unparseable input is an error.
func Parse(s string) (Constraint, error) {
	v := strings.TrimSpace(s)

	if n, err := strconv.Atoi(v); err == nil {
		return MaxSide(n), nil
	}

	if pct, ok := strings.CutSuffix(v, "%"); ok {
		p, err := strconv.ParseFloat(strings.TrimSpace(pct), 64)
		if err != nil {
			return nil, &ArgumentError{Value: s, Err: err}
		}
		return Scale(p / 100), nil
	}

	return nil, &ArgumentError{Value: s, Err: errNotLength}
}

package size

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		constraint Constraint
		want       Dimensions
	}{
		{"landscape max side", 100, 50, MaxSide(40), Dimensions{80, 40}},
		{"portrait max side", 30, 90, MaxSide(10), Dimensions{10, 30}},
		{"max side rounds long side down", 7, 3, MaxSide(2), Dimensions{4, 2}},
		{"max side upscales", 10, 20, MaxSide(40), Dimensions{40, 80}},
		{"half scale", 200, 100, Scale(0.5), Dimensions{100, 50}},
		{"scale rounds down", 99, 33, Scale(0.5), Dimensions{49, 16}},
		{"nil constraint", 100, 50, nil, Dimensions{80, 40}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.w, tt.h, tt.constraint)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveScaleClamps(t *testing.T) {
	want, err := Resolve(123, 45, Scale(1))
	require.NoError(t, err)
	require.Equal(t, Dimensions{123, 45}, want)

	for _, p := range []float64{1.5, 100, 0, -0.25, math.NaN(), math.Inf(1)} {
		got, err := Resolve(123, 45, Scale(p))
		require.NoError(t, err, "p=%v", p)
		assert.Equal(t, want, got, "p=%v", p)
	}
}

func TestResolveMaxSideDefaults(t *testing.T) {
	want, err := Resolve(640, 480, MaxSide(40))
	require.NoError(t, err)

	for _, n := range []int{0, -1, -40} {
		got, err := Resolve(640, 480, MaxSide(n))
		require.NoError(t, err, "n=%d", n)
		assert.Equal(t, want, got, "n=%d", n)
	}
}

func TestResolveMaxSideProperties(t *testing.T) {
	for w := 1; w <= 60; w += 7 {
		for h := 1; h <= 60; h += 5 {
			for n := 1; n <= min(w, h); n++ {
				got, err := Resolve(w, h, MaxSide(n))
				require.NoError(t, err)

				assert.Equal(t, n, min(got.Width, got.Height), "%dx%d n=%d", w, h, n)

				// Aspect ratio holds to within one unit of rounding.
				exactW := float64(got.Height) * float64(w) / float64(h)
				exactH := float64(got.Width) * float64(h) / float64(w)
				assert.True(t,
					math.Abs(exactW-float64(got.Width)) <= 1 || math.Abs(exactH-float64(got.Height)) <= 1,
					"%dx%d n=%d -> %v", w, h, n, got)
			}
		}
	}
}

func TestResolveDegenerate(t *testing.T) {
	_, err := Resolve(1000, 5, Scale(0.1))
	var dimErr *DimensionError
	require.True(t, errors.As(err, &dimErr))
	assert.Equal(t, Dimensions{100, 0}, dimErr.Target)
	assert.Equal(t, Dimensions{1000, 5}, dimErr.Source)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Resolve(0, 10, MaxSide(40))
	assert.True(t, errors.As(err, &dimErr))
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestResolveTooLarge(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		constraint Constraint
		target     Dimensions
	}{
		{"max int", 100, 50, MaxSide(math.MaxInt), Dimensions{}},
		{"wraps on long side", 100, 50, MaxSide(math.MaxInt / 50), Dimensions{}},
		{"over cell limit", 10, 10, MaxSide(4097), Dimensions{4097, 4097}},
		{"full scale of a huge source", 1 << 13, 1 << 12, Scale(1), Dimensions{1 << 13, 1 << 12}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.w, tt.h, tt.constraint)

			var dimErr *DimensionError
			require.True(t, errors.As(err, &dimErr), "%v", err)
			assert.ErrorIs(t, err, ErrTooLarge)
			assert.Equal(t, tt.target, dimErr.Target)
			assert.Equal(t, Dimensions{tt.w, tt.h}, dimErr.Source)
		})
	}

	got, err := Resolve(10, 10, MaxSide(4096))
	require.NoError(t, err)
	assert.Equal(t, MaxCells, got.Width*got.Height)
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Constraint
	}{
		{"40", MaxSide(40)},
		{" 12 ", MaxSide(12)},
		{"0", MaxSide(0)},
		{"-3", MaxSide(-3)},
		{"25%", Scale(0.25)},
		{"50%", Scale(0.5)},
		{"100%", Scale(1)},
		{"150%", Scale(1.5)},
		{"12.5%", Scale(0.125)},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"abc", "", "%", "ten%", "40px", "4.5"} {
		_, err := Parse(in)

		var argErr *ArgumentError
		require.True(t, errors.As(err, &argErr), "%q: %v", in, err)
		assert.Equal(t, in, argErr.Value)
		assert.Contains(t, err.Error(), "bad length")
	}
}

func TestConstraintString(t *testing.T) {
	assert.Equal(t, "40", MaxSide(40).String())
	assert.Equal(t, "25%", Scale(0.25).String())
	assert.Equal(t, "80x40", Dimensions{80, 40}.String())
}

package regionmask

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestIsClose(t *testing.T) {
	assert.True(t, IsClose(1, 1+1e-9, DefaultRtol, DefaultAtol))
	assert.False(t, IsClose(1, 1.001, DefaultRtol, DefaultAtol))
	assert.True(t, IsClose(math.Inf(1), math.Inf(1), DefaultRtol, DefaultAtol))
	assert.False(t, IsClose(math.Inf(1), 1e300, DefaultRtol, DefaultAtol))
	assert.False(t, IsClose(math.NaN(), math.NaN(), DefaultRtol, DefaultAtol))
	// rtol scales with the second argument
	assert.True(t, IsClose(-89.9995, -90, DefaultRtol, 0))
}

func TestEquallySpaced(t *testing.T) {
	cases := []struct {
		name string
		args []any
		want bool
	}{
		{"uniform", []any{[]float64{0, 1, 2, 3}}, true},
		{"uneven", []any{[]float64{0, 1, 3}}, false},
		{"single", []any{[]float64{5}}, false},
		{"empty", []any{[]float64{}}, false},
		{"scalar", []any{5.0}, false},
		{"2D slice", []any{[][]float64{{0, 1}, {2, 3}}}, false},
		{"2D matrix", []any{mat.NewDense(2, 2, []float64{0, 1, 2, 3})}, false},
		{"vector", []any{mat.NewVecDense(3, []float64{1, 3, 5})}, true},
		{"ints", []any{[]int{10, 20, 30}}, true},
		{"float noise", []any{[]float64{0.1, 0.2, 0.30000000000000004, 0.4}}, true},
		{"several, different lengths", []any{[]float64{0, 1, 2}, []float64{5, 10, 15, 20, 25}}, true},
		{"several, one uneven", []any{[]float64{0, 1, 2}, []float64{0, 1, 3}}, false},
		{"several, one short", []any{[]float64{0, 1, 2}, []float64{0}}, false},
		{"unsupported type", []any{"abc"}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, EquallySpaced(c.args...))
		})
	}
}

func TestEquallySpacedOnSplitLon(t *testing.T) {
	assert.True(t, EquallySpacedOnSplitLon([]float64{0, 10, 20, -170, -160}))
	assert.True(t, EquallySpacedOnSplitLon([]float64{175, 185, -165, -155}))
	assert.False(t, EquallySpacedOnSplitLon([]float64{0, 10, 20, 30}), "no split")
	assert.False(t, EquallySpacedOnSplitLon([]float64{0, 10, 20, -170, -160, 0}), "two splits")
	assert.False(t, EquallySpacedOnSplitLon([]float64{0, 10, 20, -170}), "split at last step")
	assert.False(t, EquallySpacedOnSplitLon([]float64{0}))
	assert.False(t, EquallySpacedOnSplitLon([][]float64{{0, 10}, {-170, -160}}))
}

func TestFindSplitPoint(t *testing.T) {
	idx, err := FindSplitPoint([]float64{0, 10, 20, -170, -160})
	require.NoError(t, err)
	assert.Equal(t, 3, idx)

	idx, err = FindSplitPoint([]float64{180, 270, 0, 90})
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	_, err = FindSplitPoint([]float64{0, 10, 20, 30})
	assert.ErrorIs(t, err, ErrSplitPoint)

	_, err = FindSplitPoint([]float64{0, 10, -170, 0, 5})
	assert.ErrorIs(t, err, ErrSplitPoint)

	_, err = FindSplitPoint([]float64{0})
	assert.ErrorIs(t, err, ErrTooFewCoords)

	_, err = FindSplitPoint([][]float64{{0, 1}})
	assert.ErrorIs(t, err, ErrNotOneDim)

	_, err = FindSplitPoint("lon")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestSampleCoords(t *testing.T) {
	got, err := SampleCoords([]float64{0, 1})
	require.NoError(t, err)
	require.Len(t, got, 20)
	assert.InDelta(t, -0.45, got[0], 1e-12)
	assert.InDelta(t, 1.45, got[19], 1e-12)
	assert.True(t, EquallySpaced(got))

	_, err = SampleCoords([]float64{1})
	assert.ErrorIs(t, err, ErrTooFewCoords)
}

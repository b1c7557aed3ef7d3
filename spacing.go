package regionmask

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// IsClose reports |a-b| <= atol + rtol*|b|; the tolerance is asymmetric in b.
// NaNs are never close.
func IsClose(a, b, rtol, atol float64) bool {
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// AllClose reports whether a is close to every element of bs.
func AllClose(a float64, bs []float64, rtol, atol float64) bool {
	for _, b := range bs {
		if !IsClose(a, b, rtol, atol) {
			return false
		}
	}
	return true
}

// asCoords flattens a coordinate-like value. ndim is 0 for scalars,
// 1 for vectors and 2 for matrices; only ndim==1 returns values.
func asCoords(v any) (c []float64, ndim int, ok bool) {
	switch t := v.(type) {
	case []float64:
		return t, 1, true
	case []float32:
		c = make([]float64, len(t))
		for i, x := range t {
			c[i] = float64(x)
		}
		return c, 1, true
	case []int:
		c = make([]float64, len(t))
		for i, x := range t {
			c[i] = float64(x)
		}
		return c, 1, true
	case []int64:
		c = make([]float64, len(t))
		for i, x := range t {
			c[i] = float64(x)
		}
		return c, 1, true
	case float64, float32, int, int64:
		return nil, 0, true
	case [][]float64:
		return nil, 2, true
	case mat.Vector:
		c = make([]float64, t.Len())
		for i := range c {
			c[i] = t.AtVec(i)
		}
		return c, 1, true
	case mat.Matrix:
		return nil, 2, true
	}
	return
}

func diff(c []float64) []float64 {
	if len(c) < 2 {
		return nil
	}
	d := make([]float64, len(c)-1)
	floats.SubTo(d, c[1:], c[:len(c)-1])
	return d
}

// EquallySpaced reports whether every argument is a 1D coordinate with at
// least two values and a constant step. Each argument is checked on its own.
func EquallySpaced(args ...any) bool {
	cs := make([][]float64, 0, len(args))
	for _, a := range args {
		c, ndim, ok := asCoords(a)
		if !ok || ndim > 1 {
			return false
		}
		cs = append(cs, c)
	}
	for _, c := range cs {
		if len(c) < 2 {
			return false
		}
	}
	for _, c := range cs {
		d := diff(c)
		if !AllClose(d[0], d, DefaultRtol, DefaultAtol) {
			return false
		}
	}
	return true
}

// 与首个步长不一致的步长位置
func splitSteps(c []float64) (idx []int) {
	d := diff(c)
	for i, v := range d {
		if !IsClose(d[0], v, DefaultRtol, DefaultAtol) {
			idx = append(idx, i)
		}
	}
	return
}

// EquallySpacedOnSplitLon reports whether lon is equally spaced except for
// exactly one break, as for a grid ordered 0..350, -180..-10. A break at the
// last step does not count.
func EquallySpacedOnSplitLon(lon any) bool {
	c, ndim, ok := asCoords(lon)
	if !ok || ndim != 1 || len(c) < 2 {
		return false
	}
	idx := splitSteps(c)
	return len(idx) == 1 && idx[0] != len(c)-2
}

// FindSplitPoint returns the index into lon where the uniform spacing
// resumes after the single break.
func FindSplitPoint(lon any) (int, error) {
	c, ndim, ok := asCoords(lon)
	if !ok {
		return 0, fmt.Errorf("%w: %T", ErrUnsupportedType, lon)
	}
	if ndim != 1 {
		return 0, fmt.Errorf("%w, found %d", ErrNotOneDim, ndim)
	}
	if len(c) < 2 {
		return 0, ErrTooFewCoords
	}
	idx := splitSteps(c)
	if len(idx) != 1 {
		return 0, fmt.Errorf("%w: %d", ErrSplitPoint, len(idx))
	}
	return idx[0] + 1, nil
}

// SampleCoords sub-samples every cell of coord with SampleCoordsPerCell
// points, used to estimate fractional overlap.
func SampleCoords(coord []float64) ([]float64, error) {
	if len(coord) < 2 {
		return nil, ErrTooFewCoords
	}
	const n = SampleCoordsPerCell
	d := coord[1] - coord[0]
	left := coord[0] - d/2 + d/(n*2)
	right := coord[len(coord)-1] + d/2 - d/(n*2)
	return floats.Span(make([]float64, len(coord)*n), left, right), nil
}

package regionmask

import (
	"math"
	"testing"

	"github.com/wgdzlh/regionmask/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observeLogs(t *testing.T) *observer.ObservedLogs {
	core, logs := observer.New(zapcore.DebugLevel)
	log.SetLogger(zap.New(core))
	t.Cleanup(func() { log.SetLogger(nil) })
	return logs
}

func testMask3D() *Mask3D {
	return &Mask3D{
		Dims:  []string{"region", "lat", "lon"},
		Shape: []int{2, 2, 2},
		Coords: map[string][]float64{
			"region": {2, 3},
			"lat":    {-5, 5},
			"lon":    {10, 20},
		},
		Values: []bool{
			true, false,
			true, false,

			false, true,
			true, false,
		},
	}
}

func TestFlatten3DMask(t *testing.T) {
	logs := observeLogs(t)

	m2, err := Flatten3DMask(testMask3D())
	require.NoError(t, err)
	assert.Equal(t, [2]string{"lat", "lon"}, m2.Dims)
	assert.Equal(t, []float64{-5, 5}, m2.Coords["lat"])
	assert.Equal(t, []float64{10, 20}, m2.Coords["lon"])

	assert.Equal(t, 2.0, m2.Data.At(0, 0))
	assert.Equal(t, 3.0, m2.Data.At(0, 1))
	assert.Equal(t, 5.0, m2.Data.At(1, 0), "overlapping numbers are summed")
	assert.True(t, math.IsNaN(m2.Data.At(1, 1)))
	assert.True(t, m2.IsMissing(1, 1))
	assert.False(t, m2.IsMissing(0, 0))
	assert.Equal(t, 1, m2.Overlaps)

	warns := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warns, 1)
	assert.Contains(t, warns[0].Message, "overlapping regions")
}

func TestFlatten3DMaskNoOverlap(t *testing.T) {
	logs := observeLogs(t)

	m := testMask3D()
	m.Values[6] = false // drop region 3 at (1,0)
	m2, err := Flatten3DMask(m)
	require.NoError(t, err)
	assert.Equal(t, 2.0, m2.Data.At(1, 0))
	assert.Zero(t, m2.Overlaps)
	assert.Zero(t, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestFlatten3DMaskRegionLast(t *testing.T) {
	observeLogs(t)

	m := &Mask3D{
		Dims:   []string{"y", "x", "region"},
		Shape:  []int{1, 3, 2},
		Coords: map[string][]float64{"region": {0, 7}},
		Values: []bool{
			true, false, // x=0
			false, true, // x=1
			false, false, // x=2
		},
	}
	m2, err := Flatten3DMask(m)
	require.NoError(t, err)
	assert.Equal(t, [2]string{"y", "x"}, m2.Dims)
	r, c := m2.Data.Dims()
	assert.Equal(t, 1, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 0.0, m2.Data.At(0, 0), "region 0 is not missing")
	assert.Equal(t, 7.0, m2.Data.At(0, 1))
	assert.True(t, m2.IsMissing(0, 2))
}

func TestFlatten3DMaskErrors(t *testing.T) {
	_, err := Flatten3DMask(nil)
	assert.ErrorIs(t, err, ErrNotMask)

	m := testMask3D()
	m.Dims = []string{"region", "lat"}
	_, err = Flatten3DMask(m)
	assert.ErrorIs(t, err, ErrMaskDims)
	assert.Contains(t, err.Error(), "found 2")

	m = testMask3D()
	m.Dims[0] = "layer"
	_, err = Flatten3DMask(m)
	assert.ErrorIs(t, err, ErrMaskRegion)

	m = testMask3D()
	delete(m.Coords, "region")
	_, err = Flatten3DMask(m)
	assert.ErrorIs(t, err, ErrMaskRegion)

	m = testMask3D()
	m.Coords["region"] = []float64{1}
	_, err = Flatten3DMask(m)
	assert.ErrorIs(t, err, ErrMaskShape)

	m = testMask3D()
	m.Values = m.Values[:7]
	_, err = Flatten3DMask(m)
	assert.ErrorIs(t, err, ErrMaskShape)

	// 负数维度之积可能恰好等于元素个数
	m = &Mask3D{
		Dims:   []string{"region", "lat", "lon"},
		Shape:  []int{2, -1, -1},
		Coords: map[string][]float64{"region": {1, 2}},
		Values: []bool{true, false},
	}
	_, err = Flatten3DMask(m)
	assert.ErrorIs(t, err, ErrMaskShape)
	assert.Contains(t, err.Error(), "negative dimension")
}

package regionmask

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnpackBits(t *testing.T) {
	got, err := UnpackBits([]int{5}, 4)
	require.NoError(t, err)
	assert.Equal(t, [][]bool{{true, false, true, false}}, got)

	got, err = UnpackBits([]uint8{0, 1, 255}, 3)
	require.NoError(t, err)
	assert.Equal(t, [][]bool{
		{false, false, false},
		{true, false, false},
		{true, true, true},
	}, got)

	got, err = UnpackBits([]int64{1 << 40}, 41)
	require.NoError(t, err)
	assert.True(t, got[0][40])
	assert.False(t, got[0][39])
}

func TestUnpackBitsRowsAreIndependent(t *testing.T) {
	got, err := UnpackBits([]int32{1, 2}, 2)
	require.NoError(t, err)
	got[0] = append(got[0], true)
	assert.Equal(t, []bool{false, true}, got[1])
}

func TestUnpackBitsErrors(t *testing.T) {
	_, err := UnpackBits([]float64{5}, 4)
	assert.ErrorIs(t, err, ErrFloatBits)

	_, err = UnpackBits([]float32{5}, 4)
	assert.ErrorIs(t, err, ErrFloatBits)

	_, err = UnpackBits([]string{"5"}, 4)
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = UnpackBits([]int{5}, 0)
	assert.ErrorIs(t, err, ErrNumBits)
}

func TestUnpackBitsShaped(t *testing.T) {
	b, err := UnpackBitsShaped([]uint16{1, 2, 3, 4, 5, 6}, []int{2, 3}, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 3}, b.Shape)
	// [1][2] holds 6 = 0b110
	assert.False(t, b.At(1, 2, 0))
	assert.True(t, b.At(1, 2, 1))
	assert.True(t, b.At(1, 2, 2))
	// [0][0] holds 1
	assert.True(t, b.At(0, 0, 0))

	_, err = UnpackBitsShaped([]uint16{1, 2, 3}, []int{2, 2}, 3)
	assert.ErrorIs(t, err, ErrMaskShape)

	_, err = UnpackBitsShaped([]uint16{1, 2, 3}, []int{-1, -3}, 2)
	assert.ErrorIs(t, err, ErrMaskShape)
}

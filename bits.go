package regionmask

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// BitArray is a boolean array with a trailing bit axis.
type BitArray struct {
	Shape []int // 原数组形状 + NumBits
	Bits  []bool
}

// At returns the bit at the given index; the last index selects the bit.
func (b *BitArray) At(idx ...int) bool {
	off := 0
	for i, v := range idx {
		off = off*b.Shape[i] + v
	}
	return b.Bits[off]
}

func unpackInts[T constraints.Integer](numbers []T, numBits int) []bool {
	out := make([]bool, len(numbers)*numBits)
	for i, n := range numbers {
		row := out[i*numBits : (i+1)*numBits]
		for k := range row {
			// bits beyond the width of T are never set
			if k < 64 {
				row[k] = uint64(n)&(uint64(1)<<uint(k)) != 0
			}
		}
	}
	return out
}

// unpackAny 按元素类型分派；浮点类型不支持位运算
func unpackAny(numbers any, numBits int) (bits []bool, n int, err error) {
	if numBits <= 0 {
		err = fmt.Errorf("%w: %d", ErrNumBits, numBits)
		return
	}
	switch t := numbers.(type) {
	case []float32, []float64:
		err = fmt.Errorf("%w, found %T", ErrFloatBits, numbers)
	case []int:
		bits, n = unpackInts(t, numBits), len(t)
	case []int8:
		bits, n = unpackInts(t, numBits), len(t)
	case []int16:
		bits, n = unpackInts(t, numBits), len(t)
	case []int32:
		bits, n = unpackInts(t, numBits), len(t)
	case []int64:
		bits, n = unpackInts(t, numBits), len(t)
	case []uint:
		bits, n = unpackInts(t, numBits), len(t)
	case []uint8:
		bits, n = unpackInts(t, numBits), len(t)
	case []uint16:
		bits, n = unpackInts(t, numBits), len(t)
	case []uint32:
		bits, n = unpackInts(t, numBits), len(t)
	case []uint64:
		bits, n = unpackInts(t, numBits), len(t)
	default:
		err = fmt.Errorf("%w: %T", ErrUnsupportedType, numbers)
	}
	return
}

// UnpackBits unpacks every integer of numbers into numBits booleans, least
// significant bit first. Negative values yield their two's-complement bits.
func UnpackBits(numbers any, numBits int) ([][]bool, error) {
	bits, n, err := unpackAny(numbers, numBits)
	if err != nil {
		return nil, err
	}
	out := make([][]bool, n)
	for i := range out {
		out[i] = bits[i*numBits : (i+1)*numBits : (i+1)*numBits]
	}
	return out, nil
}

// UnpackBitsShaped is UnpackBits for a flat row-major array of the given
// shape; the result gets one more axis of length numBits.
func UnpackBitsShaped(numbers any, shape []int, numBits int) (*BitArray, error) {
	bits, n, err := unpackAny(numbers, numBits)
	if err != nil {
		return nil, err
	}
	size := 1
	for _, s := range shape {
		if s < 0 {
			return nil, fmt.Errorf("%w: negative dimension in shape %v", ErrMaskShape, shape)
		}
		size *= s
	}
	if size != n {
		return nil, fmt.Errorf("%w: shape %v, %d values", ErrMaskShape, shape, n)
	}
	return &BitArray{
		Shape: append(append([]int(nil), shape...), numBits),
		Bits:  bits,
	}, nil
}

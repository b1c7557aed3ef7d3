package regionmask

import (
	"fmt"
	"math"

	"github.com/wgdzlh/regionmask/log"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// Mask3D 三维布尔掩膜，每个区域一层，Values按Dims行优先存储
type Mask3D struct {
	Dims   []string
	Shape  []int
	Coords map[string][]float64 // "region"坐标为各层的区域编号
	Values []bool
}

// Mask2D 展平后的二维区域编号掩膜，不属于任何区域的格点为NaN
type Mask2D struct {
	Dims     [2]string
	Coords   map[string][]float64
	Data     *mat.Dense
	Overlaps int // 属于多个区域的格点数
}

func (m *Mask2D) IsMissing(i, j int) bool {
	return math.IsNaN(m.Data.At(i, j))
}

func (m *Mask3D) validate() (regionAxis int, err error) {
	if m == nil {
		err = ErrNotMask
		return
	}
	if len(m.Dims) != 3 {
		err = fmt.Errorf("%w, found %d", ErrMaskDims, len(m.Dims))
		return
	}
	if len(m.Shape) != 3 {
		err = fmt.Errorf("%w: %d dims, shape %v", ErrMaskShape, len(m.Dims), m.Shape)
		return
	}
	for _, s := range m.Shape {
		if s < 0 {
			err = fmt.Errorf("%w: negative dimension in shape %v", ErrMaskShape, m.Shape)
			return
		}
	}
	regionAxis = -1
	for i, d := range m.Dims {
		if d == RegionDim {
			regionAxis = i
		}
	}
	region, ok := m.Coords[RegionDim]
	if regionAxis < 0 || !ok {
		err = ErrMaskRegion
		return
	}
	if len(region) != m.Shape[regionAxis] {
		err = fmt.Errorf("%w: %d region numbers for %d layers", ErrMaskShape, len(region), m.Shape[regionAxis])
		return
	}
	if n := m.Shape[0] * m.Shape[1] * m.Shape[2]; n != len(m.Values) {
		err = fmt.Errorf("%w: shape %v, %d values", ErrMaskShape, m.Shape, len(m.Values))
	}
	return
}

// Flatten3DMask collapses a 3D region mask into a 2D mask holding the region
// number of every grid cell. Cells in no region become NaN. Overlapping
// regions are summed and logged as a warning.
func Flatten3DMask(m *Mask3D) (out *Mask2D, err error) {
	ra, err := m.validate()
	if err != nil {
		return
	}
	var (
		strides = [3]int{m.Shape[1] * m.Shape[2], m.Shape[2], 1}
		other   = make([]int, 0, 2)
	)
	for i := range m.Dims {
		if i != ra {
			other = append(other, i)
		}
	}
	ny, nx := m.Shape[other[0]], m.Shape[other[1]]
	out = &Mask2D{
		Dims:   [2]string{m.Dims[other[0]], m.Dims[other[1]]},
		Coords: map[string][]float64{},
	}
	for _, d := range out.Dims {
		if c, ok := m.Coords[d]; ok {
			out.Coords[d] = c
		}
	}
	if ny == 0 || nx == 0 {
		// mat.Dense无法表示空矩阵
		out.Data = &mat.Dense{}
		return
	}
	var (
		region = m.Coords[RegionDim]
		data   = make([]float64, ny*nx)
	)
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			var (
				sum  float64
				hits int
				base = y*strides[other[0]] + x*strides[other[1]]
			)
			for r, num := range region {
				if m.Values[base+r*strides[ra]] {
					sum += num
					hits++
				}
			}
			switch {
			case hits == 0:
				sum = math.NaN()
			case hits > 1:
				out.Overlaps++
			}
			data[y*nx+x] = sum
		}
	}
	out.Data = mat.NewDense(ny, nx, data)
	if out.Overlaps > 0 {
		log.Warn(msgOverlappingRegions, zap.Int("cells", out.Overlaps))
	}
	return
}

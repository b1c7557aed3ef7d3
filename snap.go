package regionmask

import (
	"fmt"

	"github.com/wgdzlh/regionmask/log"

	"github.com/twpayne/go-geom"
	"go.uber.org/zap"
)

type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// 顶点吸附的实现方式
type SnapMode int

const (
	SnapModeAuto SnapMode = iota // 默认，等同SnapModeFlat
	SnapModeFlat
	SnapModeTransform
)

type coordEditor interface {
	snap(g geom.T, to, atol float64, axis Axis) (geom.T, error)
}

// flatEditor 直接修改克隆后几何的扁平坐标数组
type flatEditor struct{}

func (flatEditor) snap(g geom.T, to, atol float64, axis Axis) (geom.T, error) {
	var c geom.T
	switch t := g.(type) {
	case *geom.Polygon:
		c = t.Clone()
	case *geom.MultiPolygon:
		c = t.Clone()
	default:
		return nil, fmt.Errorf("%w, found %T", ErrWrongGeoType, g)
	}
	fc, stride := c.FlatCoords(), c.Stride()
	for i := int(axis); i < len(fc); i += stride {
		if IsClose(fc[i], to, DefaultRtol, atol) {
			fc[i] = to
		}
	}
	return c, nil
}

// transformEditor 通过逐点回调重建几何
type transformEditor struct{}

func (transformEditor) snap(g geom.T, to, atol float64, axis Axis) (geom.T, error) {
	fn := func(src geom.Coord) geom.Coord {
		dst := make(geom.Coord, len(src))
		copy(dst, src)
		if IsClose(dst[axis], to, DefaultRtol, atol) {
			dst[axis] = to
		}
		return dst
	}
	switch t := g.(type) {
	case *geom.Polygon:
		return geom.NewPolygon(t.Layout()).SetSRID(t.SRID()).SetCoords(transformRings(t.Coords(), fn))
	case *geom.MultiPolygon:
		polys := t.Coords()
		for i := range polys {
			polys[i] = transformRings(polys[i], fn)
		}
		return geom.NewMultiPolygon(t.Layout()).SetSRID(t.SRID()).SetCoords(polys)
	}
	return nil, fmt.Errorf("%w, found %T", ErrWrongGeoType, g)
}

func transformRings(rings [][]geom.Coord, fn func(geom.Coord) geom.Coord) [][]geom.Coord {
	out := make([][]geom.Coord, len(rings))
	for i, ring := range rings {
		out[i] = make([]geom.Coord, len(ring))
		for j, c := range ring {
			out[i][j] = fn(c)
		}
	}
	return out
}

type Snapper struct {
	Atol   float64
	editor coordEditor
	logTag string
}

type SnapperOption func(*Snapper)

func WithAtol(atol float64) SnapperOption {
	return func(s *Snapper) {
		s.Atol = atol
	}
}

// 初始化顶点吸附器，SnapModeAuto使用扁平坐标实现（go-geom克隆后自带独立的扁平坐标数组）
func NewSnapper(mode SnapMode, opts ...SnapperOption) *Snapper {
	s := &Snapper{
		Atol:   SnapAtol,
		logTag: "Snapper:",
	}
	switch mode {
	case SnapModeFlat:
		s.editor = flatEditor{}
	case SnapModeTransform:
		s.editor = transformEditor{}
	default:
		s.editor = flatEditor{}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SnapGeom sets every coordinate on axis that is close to `to` exactly to `to`.
// g is left untouched.
func (s *Snapper) SnapGeom(g geom.T, to float64, axis Axis) (geom.T, error) {
	if axis != AxisX && axis != AxisY {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAxis, axis)
	}
	return s.editor.snap(g, to, s.Atol, axis)
}

// Snap returns a copy of rows where the geometries of the rows in idx are
// snapped to `to` along axis. rows itself is not modified.
func (s *Snapper) Snap(rows []Region, idx []int, to float64, axis Axis) (out []Region, err error) {
	out = make([]Region, len(rows))
	copy(out, rows)
	for _, i := range idx {
		if i < 0 || i >= len(rows) {
			out = nil
			err = fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
			return
		}
		if out[i].Geometry, err = s.SnapGeom(rows[i].Geometry, to, axis); err != nil {
			log.Error(s.logTag+"snap region failed", zap.Int("number", rows[i].Number), zap.Error(err))
			out = nil
			return
		}
	}
	log.Debug(s.logTag+"snapped regions", zap.Int("count", len(idx)), zap.Float64("to", to), zap.Stringer("axis", axis))
	return
}

// SnapTo90S 将接近南极的顶点吸附到-90
func (s *Snapper) SnapTo90S(rows []Region, idx []int) ([]Region, error) {
	return s.Snap(rows, idx, SouthPoleLat, AxisY)
}

// SnapTo180E 将接近180°经线的顶点吸附到180
func (s *Snapper) SnapTo180E(rows []Region, idx []int) ([]Region, error) {
	return s.Snap(rows, idx, AntimeridianLon, AxisX)
}

package regionmask

import (
	"fmt"
	"math"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"
)

// 遇到非面要素时的处理方式
type FlattenPolicy string

const (
	PolicyRaise FlattenPolicy = "raise"
	PolicySkip  FlattenPolicy = "skip"
)

// FlattenPolygons splits multipolygons into their parts. Other geometry
// types fail or are dropped depending on policy.
func FlattenPolygons(geoms []geom.T, policy FlattenPolicy) (polys []*geom.Polygon, err error) {
	if policy != PolicyRaise && policy != PolicySkip {
		err = fmt.Errorf("%w, found %q", ErrFlattenPolicy, string(policy))
		return
	}
	polys = make([]*geom.Polygon, 0, len(geoms))
	for _, g := range geoms {
		switch t := g.(type) {
		case *geom.MultiPolygon:
			for i, n := 0, t.NumPolygons(); i < n; i++ {
				polys = append(polys, t.Polygon(i))
			}
		case *geom.Polygon:
			polys = append(polys, t)
		default:
			if policy == PolicyRaise {
				polys = nil
				err = fmt.Errorf("%w, found %T", ErrWrongGeoType, g)
				return
			}
		}
	}
	return
}

// TotalBounds returns [xmin, ymin, xmax, ymax] over all geoms; empty
// geometries are ignored.
func TotalBounds(geoms []geom.T) (bounds [4]float64, err error) {
	bounds = [4]float64{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	found := false
	for _, g := range geoms {
		if g == nil || len(g.FlatCoords()) == 0 {
			continue
		}
		b := g.Bounds()
		bounds[0] = math.Min(bounds[0], b.Min(0))
		bounds[1] = math.Min(bounds[1], b.Min(1))
		bounds[2] = math.Max(bounds[2], b.Max(0))
		bounds[3] = math.Max(bounds[3], b.Max(1))
		found = true
	}
	if !found {
		err = ErrEmptyGeoms
	}
	return
}

// ParseWktPolygons 解析WKT为面要素
func ParseWktPolygons(wkts ...string) (geoms []geom.T, err error) {
	geoms = make([]geom.T, len(wkts))
	for i, s := range wkts {
		if geoms[i], err = wkt.Unmarshal(s); err != nil {
			geoms = nil
			err = fmt.Errorf("%w: %v", ErrInvalidWKT, err)
			return
		}
		switch t := geoms[i].(type) {
		case *geom.Polygon, *geom.MultiPolygon:
		default:
			geoms = nil
			err = fmt.Errorf("%w, found %T", ErrWrongGeoType, t)
			return
		}
	}
	return
}

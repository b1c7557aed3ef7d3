package regionmask

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// LonLatGrid 示例经纬度格网，LON/LAT的行对应纬度、列对应经度
type LonLatGrid struct {
	Lon, Lat []float64
	LonBnds  []float64
	LatBnds  []float64
	LON, LAT *mat.Dense
}

// 按步长生成[start, stop)区间内的值
func arange(start, stop, step float64) []float64 {
	if step == 0 {
		return nil
	}
	n := int(math.Ceil((stop - start) / step))
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

func midpoints(bnds []float64) []float64 {
	out := make([]float64, len(bnds)-1)
	for i := range out {
		out[i] = (bnds[i] + bnds[i+1]) / 2
	}
	return out
}

// CreateLonLatGridFromBounds builds a regular grid whose cell bounds run from
// start (included) to stop (excluded) in step; cell centres sit halfway
// between the bounds.
func CreateLonLatGridFromBounds(lonStart, lonStop, lonStep, latStart, latStop, latStep float64) (*LonLatGrid, error) {
	g := &LonLatGrid{
		LonBnds: arange(lonStart, lonStop, lonStep),
		LatBnds: arange(latStart, latStop, latStep),
	}
	if len(g.LonBnds) < 2 || len(g.LatBnds) < 2 {
		return nil, fmt.Errorf("%w: %d lon, %d lat", ErrEmptyGrid, len(g.LonBnds), len(g.LatBnds))
	}
	g.Lon = midpoints(g.LonBnds)
	g.Lat = midpoints(g.LatBnds)
	ny, nx := len(g.Lat), len(g.Lon)
	g.LON = mat.NewDense(ny, nx, nil)
	g.LAT = mat.NewDense(ny, nx, nil)
	for i, lat := range g.Lat {
		g.LON.SetRow(i, g.Lon)
		for j := range g.Lon {
			g.LAT.Set(i, j, lat)
		}
	}
	return g, nil
}

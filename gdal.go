package regionmask

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/wgdzlh/regionmask/log"

	"github.com/lukeroth/gdal"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkb"
	"go.uber.org/zap"
)

type GdalToolbox struct {
	refMap map[int]gdal.SpatialReference
	rLock  sync.Mutex
	logTag string
}

// 初始化GDAL工具箱
func NewGdalToolbox() *GdalToolbox {
	return &GdalToolbox{
		refMap: map[int]gdal.SpatialReference{},
		logTag: "GdalToolbox:",
	}
}

// 获取srid对应的坐标系，缓存复用（故无需回收）
func (g *GdalToolbox) getSridRef(srid int) (gdal.SpatialReference, error) {
	g.rLock.Lock()
	defer g.rLock.Unlock()
	if ref, ok := g.refMap[srid]; ok {
		return ref, nil
	}
	ref, err := newLonLatRef(srid)
	if err != nil {
		log.Error(g.logTag+"create ref failed", zap.Int("srid", srid), zap.Error(err))
		return ref, err
	}
	g.refMap[srid] = ref
	return ref, nil
}

// 坐标轴固定为(经度,纬度)次序，吸附时x即经度、y即纬度
func newLonLatRef(srid int) (ref gdal.SpatialReference, err error) {
	ref = gdal.CreateSpatialReference("")
	if err = ref.FromEPSG(srid); err != nil {
		ref.Destroy()
		return
	}
	ref.SetAxisMappingStrategy(gdal.OAMS_TraditionalGisOrder)
	return
}

// 由AUTHORITY编码解析srid，缺失编码的CGCS2000坐标系按4490处理
func sridFromAuthority(code string, found bool, wkt string) (int, error) {
	if !found {
		if !strings.Contains(wkt, "CGCS_2000") {
			return 0, ErrVoidSrid
		}
		return CGCS2000_SRID, nil
	}
	srid, err := strconv.Atoi(strings.TrimSpace(code))
	if err != nil || srid <= 0 {
		return 0, fmt.Errorf("%w: authority code %q", ErrVoidSrid, code)
	}
	return srid, nil
}

func (g *GdalToolbox) sridOf(sp gdal.SpatialReference) (int, error) {
	wkt, _ := sp.ToWKT()
	code, found := sp.AttrValue("AUTHORITY", 1)
	srid, err := sridFromAuthority(code, found, wkt)
	if err != nil {
		log.Error(g.logTag+"no srid in spatial ref", zap.String("code", code), zap.Error(err))
		return 0, err
	}
	log.Debug(g.logTag+"got srid from spatial ref", zap.Int("srid", srid))
	return srid, nil
}

// 打开shp并对首个图层执行fn
func withShpLayer(shp string, fn func(layer gdal.Layer) error) error {
	ds, ok := gdal.OGRDriverByName(SHP_DRIVER_NAME).Open(shp, 0)
	if !ok {
		return fmt.Errorf("%w: %s", ErrGdalDriverOpen, shp)
	}
	defer ds.Destroy()
	return fn(ds.LayerByIndex(0))
}

// GetSridOfShapefile returns the EPSG code of the first layer of shp.
func (g *GdalToolbox) GetSridOfShapefile(shp string) (srid int, err error) {
	err = withShpLayer(shp, func(layer gdal.Layer) (e error) {
		srid, e = g.sridOf(layer.SpatialReference())
		return
	})
	return
}

// 解析失败时记录日志并统一返回sentinel错误
func (g *GdalToolbox) parseGeo(kind string, sentinel error, create func() (gdal.Geometry, error)) (gdal.Geometry, error) {
	geo, err := create()
	if err != nil {
		log.Error(g.logTag+"parse "+kind+" failed", zap.Error(err))
		return geo, fmt.Errorf("%w: %v", sentinel, err)
	}
	return geo, nil
}

func (g *GdalToolbox) parseWKB(raw GdalGeo, ref gdal.SpatialReference) (gdal.Geometry, error) {
	return g.parseGeo("wkb", ErrInvalidWKB, func() (gdal.Geometry, error) {
		return gdal.CreateFromWKB(raw, ref, len(raw))
	})
}

func (g *GdalToolbox) parseWKT(wkt string, ref gdal.SpatialReference) (gdal.Geometry, error) {
	return g.parseGeo("wkt", ErrInvalidWKT, func() (gdal.Geometry, error) {
		return gdal.CreateFromWKT(wkt, ref)
	})
}

func checkAreaType(geo gdal.Geometry) error {
	switch geo.Type() {
	case gdal.GT_Polygon, gdal.GT_MultiPolygon:
		return nil
	}
	return fmt.Errorf("%w, found type %d", ErrWrongGeoType, geo.Type())
}

// 逐顶点吸附，子几何（环、子面）为原几何的引用，直接修改
func snapGdalGeo(geo gdal.Geometry, to, atol float64, axis Axis) {
	if n := geo.GeometryCount(); n > 0 {
		for i := 0; i < n; i++ {
			snapGdalGeo(geo.Geometry(i), to, atol, axis)
		}
		return
	}
	is3D := geo.CoordinateDimension() == 3
	for i, np := 0, geo.PointCount(); i < np; i++ {
		x, y, z := geo.Point(i)
		switch axis {
		case AxisX:
			if !IsClose(x, to, DefaultRtol, atol) {
				continue
			}
			x = to
		case AxisY:
			if !IsClose(y, to, DefaultRtol, atol) {
				continue
			}
			y = to
		}
		if is3D {
			geo.SetPoint(i, x, y, z)
		} else {
			geo.SetPoint2D(i, x, y)
		}
	}
}

func (g *GdalToolbox) snapGeo(geo gdal.Geometry, to, atol float64, axis Axis) (err error) {
	if axis != AxisX && axis != AxisY {
		return fmt.Errorf("%w: %s", ErrInvalidAxis, axis)
	}
	if err = checkAreaType(geo); err != nil {
		return
	}
	snapGdalGeo(geo, to, atol, axis)
	return
}

// 将WKT面要素中接近to的顶点吸附到to
func (g *GdalToolbox) SnapWkt(wkt string, srid int, to, atol float64, axis Axis) (out string, err error) {
	ref, err := g.getSridRef(srid)
	if err != nil {
		return
	}
	geo, err := g.parseWKT(wkt, ref)
	if err != nil {
		return
	}
	defer geo.Destroy()
	if err = g.snapGeo(geo, to, atol, axis); err != nil {
		return
	}
	out, err = geo.ToWKT()
	return
}

// 将WKB面要素中接近to的顶点吸附到to
func (g *GdalToolbox) SnapWkb(raw GdalGeo, srid int, to, atol float64, axis Axis) (out GdalGeo, err error) {
	ref, err := g.getSridRef(srid)
	if err != nil {
		return
	}
	geo, err := g.parseWKB(raw, ref)
	if err != nil {
		return
	}
	defer geo.Destroy()
	if err = g.snapGeo(geo, to, atol, axis); err != nil {
		return
	}
	out, err = geo.ToWKB()
	return
}

func gdalToGeom(geo gdal.Geometry) (ret geom.T, err error) {
	raw, err := geo.ToWKB()
	if err != nil {
		return
	}
	if ret, err = wkb.Unmarshal(raw); err != nil {
		err = fmt.Errorf("%w: %v", ErrInvalidWKB, err)
	}
	return
}

// WKB经GDAL校验后转为go-geom面要素
func (g *GdalToolbox) WkbToGeom(raw GdalGeo, srid int) (ret geom.T, err error) {
	ref, err := g.getSridRef(srid)
	if err != nil {
		return
	}
	geo, err := g.parseWKB(raw, ref)
	if err != nil {
		return
	}
	defer geo.Destroy()
	if err = checkAreaType(geo); err != nil {
		return
	}
	ret, err = gdalToGeom(geo)
	return
}

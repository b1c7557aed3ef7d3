package regionmask

import "github.com/twpayne/go-geom"

type GdalGeo = []byte

// Region 区域表中的一行
type Region struct {
	Number   int
	Name     string
	Abbrev   string
	Geometry geom.T // Polygon或MultiPolygon，经纬度坐标
}

// RegionFields shp中区域属性对应的字段名，Name/Abbrev为空时按编号生成
type RegionFields struct {
	Number string
	Name   string
	Abbrev string
	UTF8   bool // 属性表编码，否则按GBK处理
}

func DefaultRegionFields() RegionFields {
	return RegionFields{
		Number: SHP_FIELD_NUMBER,
		Name:   SHP_FIELD_NAME,
		Abbrev: SHP_FIELD_ABBREV,
		UTF8:   true,
	}
}

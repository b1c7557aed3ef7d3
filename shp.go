package regionmask

import (
	"fmt"

	"github.com/wgdzlh/regionmask/log"
	"github.com/wgdzlh/regionmask/utils"

	"github.com/lukeroth/gdal"
	"go.uber.org/zap"
)

// 字段名可能为GBK编码
func fieldIndex(def gdal.FeatureDefinition, name string) int {
	if name == "" {
		return -1
	}
	idx := def.FieldIndex(name)
	if idx < 0 {
		if gbk, e := utils.Utf8StrToGbk(name); e == nil {
			idx = def.FieldIndex(gbk)
		}
	}
	return idx
}

func (g *GdalToolbox) readTextField(feature *gdal.Feature, idx int, utf8 bool) (s string) {
	if idx < 0 {
		return
	}
	s = feature.FieldAsString(idx)
	if !utf8 {
		var e error
		if s, e = utils.GbkStrToUtf8(s); e != nil {
			log.Error(g.logTag+"err in trans-encoding field", zap.Int64("fid", feature.FID()), zap.Error(e))
		}
	}
	return utils.PurifyForUtf8(s)
}

// 从shp文件中读取区域表（srid=4326），名称、缩写缺失的按编号生成
func (g *GdalToolbox) LoadRegionsFromShp(shp string, fields RegionFields) (rows []Region, err error) {
	log.Info(g.logTag+"start load regions", zap.String("shp", shp))
	var srid int
	err = withShpLayer(shp, func(layer gdal.Layer) error {
		var e error
		rows, srid, e = g.readRegionLayer(layer, fields)
		return e
	})
	if err != nil {
		return
	}
	log.Info(g.logTag+"got regions from shp", zap.String("shp", shp), zap.Int("cnt", len(rows)), zap.Int("srid", srid))
	return
}

func fillRegionNames(rows []Region, numbers []int, names, abbrevs bool) error {
	if names {
		m, err := SanitizeNamesAbbrevs(numbers, nil, DefaultRegionName)
		if err != nil {
			return err
		}
		for i := range rows {
			rows[i].Name = m[rows[i].Number]
		}
	}
	if abbrevs {
		m, err := SanitizeNamesAbbrevs(numbers, nil, DefaultRegionAbbrev)
		if err != nil {
			return err
		}
		for i := range rows {
			rows[i].Abbrev = m[rows[i].Number]
		}
	}
	return nil
}

func (g *GdalToolbox) readRegionLayer(layer gdal.Layer, fields RegionFields) (rows []Region, srid int, err error) {
	def := layer.Definition()
	numIdx := fieldIndex(def, fields.Number)
	if numIdx < 0 {
		err = fmt.Errorf(ErrColumnMissingTemplate, fields.Number)
		return
	}
	var (
		nameIdx   = fieldIndex(def, fields.Name)
		abbrevIdx = fieldIndex(def, fields.Abbrev)
		tRef      gdal.SpatialReference
	)
	if srid, err = g.sridOf(layer.SpatialReference()); err != nil {
		return
	}
	if srid != UNIVERSAL_SRID {
		if tRef, err = g.getSridRef(UNIVERSAL_SRID); err != nil {
			return
		}
	}
	var (
		feature *gdal.Feature
		e       error
		numbers []int
	)
	for {
		if feature = layer.NextFeature(); feature == nil {
			break
		}
		r := Region{
			Number: feature.FieldAsInteger(numIdx),
			Name:   g.readTextField(feature, nameIdx, fields.UTF8),
			Abbrev: g.readTextField(feature, abbrevIdx, fields.UTF8),
		}
		geo := feature.Geometry()
		if srid != UNIVERSAL_SRID {
			if e = geo.TransformTo(tRef); e != nil {
				log.Error(g.logTag+"geo transform failed", zap.Int64("fid", feature.FID()), zap.Error(e))
				feature.Destroy()
				continue
			}
		}
		if e = checkAreaType(geo); e == nil {
			r.Geometry, e = gdalToGeom(geo)
		}
		fid := feature.FID()
		feature.Destroy()
		if e != nil {
			log.Error(g.logTag+"err in geom convert", zap.Int64("fid", fid), zap.Error(e))
			continue
		}
		rows = append(rows, r)
		numbers = append(numbers, r.Number)
	}
	if err = fillRegionNames(rows, numbers, nameIdx < 0, abbrevIdx < 0); err != nil {
		return
	}
	return
}

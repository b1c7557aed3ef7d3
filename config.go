package regionmask

const (
	SHP_DRIVER_NAME = "ESRI Shapefile"
	UNIVERSAL_SRID  = 4326
	CGCS2000_SRID   = 4490

	// IsClose/AllClose 的默认容差
	DefaultRtol = 1e-5
	DefaultAtol = 1e-8

	// 经度取整位数，用于推断经度范围
	LonRoundDecimals = 6

	// 吸附顶点的默认绝对容差
	SnapAtol = 1e-6

	SouthPoleLat    = -90.0
	AntimeridianLon = 180.0

	// 每个格网单元的亚采样点数
	SampleCoordsPerCell = 10

	RegionDim = "region"

	DefaultRegionName   = "Region"
	DefaultRegionAbbrev = "r"

	SHP_FIELD_NUMBER = "number"
	SHP_FIELD_NAME   = "name"
	SHP_FIELD_ABBREV = "abbrev"

	ErrColumnMissingTemplate = `shp文件中缺失【%s】字段`

	msgOverlappingRegions = "Found overlapping regions which cannot correctly be reduced to a 2D mask"
)

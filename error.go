package regionmask

import "errors"

var (
	ErrEmptyCoords     = errors.New("lon has no valid values")
	ErrInferWrap       = errors.New("lon has data that is larger than 180 and smaller than 0")
	ErrDuplicateLon    = errors.New("there are equal longitude coordinates (when wrapped)")
	ErrInvalidWrap     = errors.New("invalid wrap_lon")
	ErrSplitPoint      = errors.New("more or less than one split point found")
	ErrNotOneDim       = errors.New("coords must be 1-dimensional")
	ErrTooFewCoords    = errors.New("need at least two coords")
	ErrFloatBits       = errors.New("data type needs to be int-like")
	ErrUnsupportedType = errors.New("unsupported data type")
	ErrNumBits         = errors.New("num_bits must be positive")
	ErrNotMask         = errors.New("expected a 3D mask")
	ErrMaskDims        = errors.New("mask_3D must have 3 dimensions")
	ErrMaskRegion      = errors.New("mask_3D must contain the dimension 'region'")
	ErrMaskShape       = errors.New("mask shape does not match its values")
	ErrFlattenPolicy   = errors.New("'error' must be one of 'raise' and 'skip'")
	ErrWrongGeoType    = errors.New("expected 'Polygon' or 'MultiPolygon'")
	ErrIndexOutOfRange = errors.New("region index out of range")
	ErrLengthMismatch  = errors.New("`numbers` and `values` do not have the same length")
	ErrEmptyGrid       = errors.New("grid bounds need at least two values")
	ErrEmptyGeoms      = errors.New("no geometries given")
	ErrGdalDriverOpen  = errors.New("gdal driver open err")
	ErrVoidSrid        = errors.New("gdal shp with void srid")
	ErrInvalidWKT      = errors.New("invalid WKT")
	ErrInvalidWKB      = errors.New("invalid WKB")
	ErrInvalidAxis     = errors.New("axis must be x or y")
)

package regionmask

import (
	"fmt"
	"math"
)

// 经度范围约定
type WrapLon int

const (
	WrapNone  WrapLon = 0
	WrapInfer WrapLon = 1
	Wrap180   WrapLon = 180
	Wrap360   WrapLon = 360
)

func (w WrapLon) String() string {
	switch w {
	case WrapNone:
		return "none"
	case WrapInfer:
		return "infer"
	case Wrap180:
		return "180"
	case Wrap360:
		return "360"
	}
	return fmt.Sprintf("WrapLon(%d)", int(w))
}

func mod360(v float64) float64 {
	v = math.Mod(v, 360)
	if v < 0 {
		v += 360
	}
	// -1e-20 + 360 rounds up to 360
	if v >= 360 {
		v = 0
	}
	return v
}

// WrapAngle360 wraps lon to [0, 360).
func WrapAngle360(lon []float64) []float64 {
	out := make([]float64, len(lon))
	for i, v := range lon {
		out[i] = mod360(v)
	}
	return out
}

// WrapAngle180 wraps lon to [-180, 180). Values already in range are
// copied unchanged.
func WrapAngle180(lon []float64) []float64 {
	out := make([]float64, len(lon))
	for i, v := range lon {
		if v < -180 || v >= 180 {
			v = mod360(v+180) - 180
		}
		out[i] = v
	}
	return out
}

// WrapAngle wraps lon to the other base: data in [-180, 180) goes to
// [0, 360) and vice versa when wrap is WrapInfer.
// Unless isUnstructured, the wrapped values must stay unique.
func WrapAngle(lon []float64, wrap WrapLon, isUnstructured bool) (out []float64, err error) {
	if wrap == WrapInfer {
		mn, mx, ok := nanMinMax(lon)
		if !ok {
			err = ErrEmptyCoords
			return
		}
		var is180 bool
		if is180, err = Is180(mn, mx); err != nil {
			err = fmt.Errorf("%w. Cannot infer the transformation", err)
			return
		}
		if is180 {
			wrap = Wrap360
		} else {
			wrap = Wrap180
		}
	}
	switch wrap {
	case Wrap180:
		out = WrapAngle180(lon)
	case Wrap360:
		out = WrapAngle360(lon)
	case WrapNone:
		out = append([]float64(nil), lon...)
	default:
		err = fmt.Errorf("%w: %s", ErrInvalidWrap, wrap)
		return
	}
	if !isUnstructured {
		if v, dup := firstDuplicate(out); dup {
			out = nil
			err = fmt.Errorf("%w: %v", ErrDuplicateLon, v)
		}
	}
	return
}

// WrapAngleScalar 对单个经度值做WrapAngle
func WrapAngleScalar(lon float64, wrap WrapLon) (float64, error) {
	out, err := WrapAngle([]float64{lon}, wrap, false)
	if err != nil {
		return 0, err
	}
	return out[0], nil
}

// Is180 reports whether the longitude range lies in the [-180, 180]
// convention. Min and max are rounded to 6 decimals first.
func Is180(lonMin, lonMax float64) (bool, error) {
	lonMin = roundDecimal(lonMin, LonRoundDecimals)
	lonMax = roundDecimal(lonMax, LonRoundDecimals)
	if lonMin < 0 && lonMax > 180 {
		return false, ErrInferWrap
	}
	return lonMax <= 180, nil
}

func roundDecimal(val float64, dec int) float64 {
	factor := math.Pow10(dec)
	return math.RoundToEven(val*factor) / factor
}

// NaN被忽略；全为NaN或为空时ok为false
func nanMinMax(vs []float64) (mn, mx float64, ok bool) {
	mn, mx = math.Inf(1), math.Inf(-1)
	for _, v := range vs {
		if math.IsNaN(v) {
			continue
		}
		ok = true
		mn = math.Min(mn, v)
		mx = math.Max(mx, v)
	}
	return
}

// 多个NaN视为重复
func firstDuplicate(vs []float64) (float64, bool) {
	seen := make(map[float64]struct{}, len(vs))
	nan := false
	for _, v := range vs {
		if math.IsNaN(v) {
			if nan {
				return v, true
			}
			nan = true
			continue
		}
		if _, ok := seen[v]; ok {
			return v, true
		}
		seen[v] = struct{}{}
	}
	return 0, false
}

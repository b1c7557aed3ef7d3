package regionmask

import (
	"fmt"
	"strconv"
)

// MaybeToDict zips keys and values; extra keys or values are dropped.
func MaybeToDict[K comparable, V any](keys []K, values []V) map[K]V {
	n := min(len(keys), len(values))
	m := make(map[K]V, n)
	for i := 0; i < n; i++ {
		m[keys[i]] = values[i]
	}
	return m
}

// CreateDictOfNumberedString 生成{编号: 前缀+编号}
func CreateDictOfNumberedString(numbers []int, s string) map[int]string {
	m := make(map[int]string, len(numbers))
	for _, n := range numbers {
		m[n] = s + strconv.Itoa(n)
	}
	return m
}

// SanitizeNamesAbbrevs turns the names or abbreviations given for numbers
// into a map. values may be nil (numbered def), a string prefix, a []string
// or a map[int]string with one entry per number.
func SanitizeNamesAbbrevs(numbers []int, values any, def string) (map[int]string, error) {
	switch t := values.(type) {
	case nil:
		return CreateDictOfNumberedString(numbers, def), nil
	case string:
		return CreateDictOfNumberedString(numbers, t), nil
	case []string:
		if len(numbers) != len(t) {
			return nil, fmt.Errorf("%w: %d numbers, %d values", ErrLengthMismatch, len(numbers), len(t))
		}
		return MaybeToDict(numbers, t), nil
	case map[int]string:
		if len(numbers) != len(t) {
			return nil, fmt.Errorf("%w: %d numbers, %d values", ErrLengthMismatch, len(numbers), len(t))
		}
		return t, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, values)
}

package dataset

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

// cellInt converts a cell to int64. String cells are trimmed first and accept
// "12", "12.0" and 0x/0o prefixes; float cells are truncated.
func cellInt(v any) (int64, bool) {
	v, ok := numericCell(v)
	if !ok {
		return 0, false
	}
	n, err := cast.ToInt64E(v)
	return n, err == nil
}

// cellFloat converts a cell to float64. NaN is not a number here.
func cellFloat(v any) (float64, bool) {
	v, ok := numericCell(v)
	if !ok {
		return 0, false
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// numericCell trims string cells and rejects cells cast would coerce from non-numbers.
func numericCell(v any) (any, bool) {
	switch x := v.(type) {
	case nil, bool:
		return nil, false
	case string:
		return strings.TrimSpace(x), true
	}
	return v, true
}

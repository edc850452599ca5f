package rating

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidAmount is returned when an observed amount cannot be read as a
// finite number.
var ErrInvalidAmount = errors.New("amount is not a finite number")

// ParseAmount coerces a loosely typed observed amount into float64.
// YAML/JSON decoders hand over numbers as float64, int or string depending
// on how the document was written; the search itself works only with floats.
// NaN, infinities and non-numeric values are rejected with ErrInvalidAmount.
func ParseAmount(v any) (float64, error) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case uint:
		f = float64(x)
	case uint32:
		f = float64(x)
	case uint64:
		f = float64(x)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, x)
		}
		f = parsed
	case nil:
		return 0, fmt.Errorf("%w: missing value", ErrInvalidAmount)
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrInvalidAmount, v)
	}

	if !isFinite(f) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidAmount, f)
	}
	return f, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

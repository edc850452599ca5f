package rating

import (
	"fmt"
	"math"
)

// Rounding selects the precision used when roll sums are compared against
// an observed amount. Percent stats are displayed with one decimal, flat
// stats as whole numbers; the mode belongs to the stat kind, not the search.
type Rounding int

const (
	// RoundTenth -- суммы сравниваются с точностью до 0.1 (percent stats).
	RoundTenth Rounding = iota
	// RoundWhole -- суммы сравниваются как целые числа (flat stats).
	RoundWhole
)

// String returns the config name of the rounding mode.
func (r Rounding) String() string {
	switch r {
	case RoundTenth:
		return "tenth"
	case RoundWhole:
		return "whole"
	default:
		return "unknown"
	}
}

// ParseRounding parses a rounding mode name as written in config files.
func ParseRounding(s string) (Rounding, error) {
	switch s {
	case "tenth":
		return RoundTenth, nil
	case "whole":
		return RoundWhole, nil
	default:
		return 0, fmt.Errorf("unknown rounding mode %q", s)
	}
}

// valid reports whether r is one of the defined modes.
func (r Rounding) valid() bool {
	return r == RoundTenth || r == RoundWhole
}

// key reduces v to the integer comparison key of this mode: the value scaled
// to its display precision, half rounded away from zero. Sums are compared
// only through keys, so float noise below the precision step cannot break
// an equality the player would see on screen.
func (r Rounding) key(v float64) int64 {
	if r == RoundTenth {
		return int64(math.Round(v * 10))
	}
	return int64(math.Round(v))
}

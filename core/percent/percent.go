// Package percent implements a simple and straightforward type for percentage
// values, as used for similarity scores and progress output.
package percent

import (
	"math"
	"strconv"
	"strings"
)

// Percent is a simple and straightforward type for percentage values.
// Values are confined to 0…100.
type Percent uint8

// FromInt converts an integer percentage, clamping it to 0…100.
func FromInt(n int) Percent {
	switch {
	case n <= 0:
		return Percent(0)
	case n >= 100:
		return Percent(100)
	}
	return Percent(n)
}

// FromFloat converts a percentage value, rounding and clamping it to
// 0…100. NaN maps to 0.
func FromFloat(f float64) Percent {
	switch {
	case f <= 0 || math.IsNaN(f) || math.IsInf(f, -1):
		return Percent(0)
	case f >= 100 || math.IsInf(f, 1):
		return Percent(100)
	}
	return Percent(math.Round(f))
}

// FromFraction converts a fraction of the unit interval, i.e. 0.5 maps
// to 50%.
func FromFraction(f float64) Percent {
	return FromFloat(f * 100)
}

// FromString parses percentage strings like "50" or "50%", clamping the
// value to 0…100.
func FromString(s string) (Percent, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "%")
	n, err := strconv.Atoi(s)
	return FromInt(n), err
}

func (p Percent) String() string {
	return strconv.Itoa(int(p)) + "%"
}

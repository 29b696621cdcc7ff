package tokens

import (
	"strconv"
	"strings"
)

// Measure converts a dimension into a concrete length against the available
// space. Percentages are fractions of available, pixel values are returned as
// is. Anything else, including negative values, reports false.
func Measure(value string, available float64) (float64, bool) {
	v := strings.TrimSpace(value)
	switch {
	case strings.HasSuffix(v, PercentSuffix):
		pct, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(v, PercentSuffix)), 64)
		if err != nil || pct < 0 {
			return 0, false
		}
		return available * pct / 100, true
	case strings.HasSuffix(v, PixelSuffix):
		px, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(v, PixelSuffix)), 64)
		if err != nil || px < 0 {
			return 0, false
		}
		return px, true
	}
	return 0, false
}

// Percent returns the numeric percentage of a "NN%" value
func Percent(value string) (float64, bool) {
	v := strings.TrimSpace(value)
	if !strings.HasSuffix(v, PercentSuffix) {
		return 0, false
	}
	pct, err := strconv.ParseFloat(strings.TrimSuffix(v, PercentSuffix), 64)
	if err != nil {
		return 0, false
	}
	return pct, true
}

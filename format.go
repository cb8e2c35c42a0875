package tably

import (
	"math"
	"strconv"
	"strings"
)

// FormatValues converts numeric values into display strings. NaN renders as
// the missing placeholder. When protectIntegers is set, integral values are
// formatted without decimals. When zapSmall is set, values that would round
// to zero at the given precision are formatted as exact zero instead of
// producing a "-0.00"-style artifact. A positive width right-justifies every
// string to at least that many cells.
func FormatValues(values []float64, digits int, protectIntegers bool, missing string, width int, zapSmall bool) []string {
	if digits < 0 {
		digits = 0
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = formatValue(v, digits, protectIntegers, missing, zapSmall)
	}
	if width > 0 {
		for i, s := range out {
			if pad := width - len(s); pad > 0 {
				out[i] = strings.Repeat(" ", pad) + s
			}
		}
	}
	return out
}

func formatValue(v float64, digits int, protectIntegers bool, missing string, zapSmall bool) string {
	if math.IsNaN(v) {
		return missing
	}
	if zapSmall && math.Abs(v) < 0.5*math.Pow(10, -float64(digits)) {
		v = 0
	}
	if protectIntegers && v == math.Trunc(v) && !math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', digits, 64)
}

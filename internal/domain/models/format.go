package models

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatFixed2 renders value with exactly two decimal places, e.g. 1234.5 -> "1234.50".
func FormatFixed2(value float64) string {
	if !isFinite(value) {
		return strconv.FormatFloat(value, 'f', 2, 64)
	}
	return decimal.NewFromFloat(value).StringFixed(2)
}

// FormatArea renders an area in its shortest decimal form, e.g. 2 -> "2", 2.5 -> "2.5".
// Magnitudes of 1e21 and above, or below 1e-6, switch to exponent form
// ("1e+200", "1.5e-7").
func FormatArea(value float64) string {
	if !isFinite(value) {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}
	if abs := math.Abs(value); abs >= 1e21 || (abs != 0 && abs < 1e-6) {
		return exponentForm(value)
	}
	return decimal.NewFromFloat(value).String()
}

// exponentForm drops the zero padding strconv puts on the exponent ("e-07" -> "e-7").
func exponentForm(value float64) string {
	str := strconv.FormatFloat(value, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(str, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}

// Sums of finite inputs can still overflow to ±Inf, which decimal rejects.
func isFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}

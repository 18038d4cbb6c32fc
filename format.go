package deskcalc

import (
	"math"
	"strconv"
	"strings"
)

// FormatResult formats a number the way the calculator displays it: the
// shortest decimal that round-trips, always with a fractional part, as in
// "12.0" or "0.07". Magnitudes below 1e-3 or at least 1e7 use scientific
// notation with an upper-case E, as in "1.0E10" and "1.5E-4". Special values
// are "NaN", "Infinity", and "-Infinity".
func FormatResult(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case x == 0:
		if math.Signbit(x) {
			return "-0.0"
		}
		return "0.0"
	}
	if a := math.Abs(x); a >= 1e-3 && a < 1e7 {
		s := strconv.FormatFloat(x, 'f', -1, 64)
		if !strings.ContainsRune(s, '.') {
			s += ".0"
		}
		return s
	}
	s := strconv.FormatFloat(x, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	if !strings.ContainsRune(mant, '.') {
		mant += ".0"
	}
	sign := ""
	switch exp[0] {
	case '-':
		sign = "-"
		exp = exp[1:]
	case '+':
		exp = exp[1:]
	}
	exp = strings.TrimLeft(exp, "0")
	return mant + "E" + sign + exp
}

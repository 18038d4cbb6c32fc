package deskcalc

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// unaryFunc is a function of the number on the display, applied by a keypad
// button rather than written into the expression. prec is the precision in
// bits requested for the calculation, or 0 for plain float64 math.
type unaryFunc func(x float64, prec uint) float64

// funcs are the keypad's functions of one number.
var funcs = map[rune]unaryFunc{
	'√': sqrt,
	'%': percent,
}

// sqrt is the square root. Negative arguments produce NaN.
func sqrt(x float64, prec uint) float64 {
	if prec == 0 || x <= 0 || math.IsInf(x, 1) || math.IsNaN(x) {
		return math.Sqrt(x)
	}
	r := new(big.Float).SetPrec(prec).SetFloat64(x)
	r.Sqrt(r)
	f, _ := r.Float64()
	return f
}

// percent converts a number to a fraction of 100.
func percent(x float64, prec uint) float64 {
	return x / 100
}

// pow computes a^b. With a nonzero precision, positive finite bases with
// finite nonzero exponents are computed with bigfloat and rounded to float64.
// Everything else follows math.Pow.
func pow(a, b float64, prec uint) float64 {
	if prec == 0 || !(a > 0) || b == 0 || math.IsInf(a, 0) || math.IsInf(b, 0) || math.IsNaN(b) {
		return math.Pow(a, b)
	}
	w := new(big.Float).SetPrec(prec).SetFloat64(a)
	x := new(big.Float).SetPrec(prec).SetFloat64(b)
	// Pow may return a different Float than its destination.
	f, _ := bigfloat.Pow(new(big.Float).SetPrec(prec), w, x).Float64()
	return f
}

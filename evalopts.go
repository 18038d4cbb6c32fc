package deskcalc

// EvalOption is an option for Evaluate.
type EvalOption interface {
	evalOption(evalctx) evalctx
}

type (
	modopt  bool
	precopt uint
)

// evalctx holds the settings for one evaluation.
type evalctx struct {
	// modulus selects a % b as the remainder rather than a / 100.
	modulus bool
	// prec is the precision in bits for ^ and √, or 0 for float64 math.
	prec uint
}

// Modulus sets whether % is the floating-point remainder. Without it, % ignores
// its right operand and divides its left operand by 100.
func Modulus(on bool) EvalOption {
	return modopt(on)
}

func (o modopt) evalOption(c evalctx) evalctx {
	c.modulus = bool(o)
	return c
}

// Prec sets the precision in bits used to compute exponentiation before the
// result is rounded to a float64. With 0, the default, math.Pow is used
// directly.
func Prec(prec uint) EvalOption {
	return precopt(prec)
}

func (o precopt) evalOption(c evalctx) evalctx {
	c.prec = uint(o)
	return c
}

func newEvalctx(opts []EvalOption) evalctx {
	var c evalctx
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		c = opt.evalOption(c)
	}
	return c
}

package deskcalc

// ErrorText is what the display shows after any failure.
const ErrorText = "Error"

// Accumulator is the input state of a calculator: the expression on the
// display and the flags that decide how the next key changes it. The zero
// value is an empty calculator ready for input.
//
// Accumulator is a value type. Apply returns the next state and leaves the
// receiver unchanged, so old states remain valid, e.g. for undo or tests.
type Accumulator struct {
	buf buffer
	// operatorPressed is set while the buffer ends in an operator that the
	// next operator key would replace.
	operatorPressed bool
	// isModulus makes % the remainder operator when the expression is
	// evaluated. It is set by pressing % directly after another operator,
	// which % then replaces.
	isModulus bool
	// err is the reason the display shows ErrorText. It persists until Clear.
	err  error
	prec uint
}

// WithPrec returns a copy of a with the precision used for ^ and √ set to
// prec bits. Zero uses float64 math.
func (a Accumulator) WithPrec(prec uint) Accumulator {
	a.prec = prec
	return a
}

// Apply returns the state after handling ev. After an error, every event
// other than Clear is ignored so the display keeps showing the error.
func (a Accumulator) Apply(ev Event) Accumulator {
	if a.err != nil && ev.Kind != EventClear {
		return a
	}
	switch ev.Kind {
	case EventDigit:
		return a.digit(ev.Rune)
	case EventOperator:
		return a.operator(ev.Rune)
	case EventPercent:
		return a.percent()
	case EventSqrt:
		return a.sqrt()
	case EventClear:
		return a.clear()
	case EventEquals:
		return a.equals()
	case EventBackspace:
		return a.backspace()
	default:
		return a
	}
}

// Press applies the event for a keypad button label.
func (a Accumulator) Press(label string) (Accumulator, error) {
	ev, err := ParseButton(label)
	if err != nil {
		return a, err
	}
	return a.Apply(ev), nil
}

// Display returns the text the calculator shows.
func (a Accumulator) Display() string {
	if a.err != nil {
		return ErrorText
	}
	return a.buf.String()
}

// Expression returns the expression text, even while the display shows an
// error.
func (a Accumulator) Expression() string {
	return a.buf.String()
}

// Err returns the reason the display shows ErrorText, or nil.
func (a Accumulator) Err() error {
	return a.err
}

// OperatorPressed reports whether the last accepted key was an operator.
func (a Accumulator) OperatorPressed() bool {
	return a.operatorPressed
}

// Modulus reports whether % will evaluate as the remainder operator.
func (a Accumulator) Modulus() bool {
	return a.isModulus
}

func (a Accumulator) fail(err error) Accumulator {
	a.err = err
	return a
}

func (a Accumulator) digit(r rune) Accumulator {
	a.buf = a.buf.appendDigit(r)
	a.operatorPressed = false
	return a
}

func (a Accumulator) clear() Accumulator {
	return Accumulator{prec: a.prec}
}

// unary replaces a display holding one number with f of that number.
func (a Accumulator) unary(f rune) Accumulator {
	x, ok := a.buf.number()
	if !ok {
		return a.fail(&ParseError{Text: a.buf.String(), Func: string(f)})
	}
	a.buf = result(funcs[f](x, a.prec))
	a.operatorPressed = false
	return a
}

func (a Accumulator) sqrt() Accumulator {
	return a.unary('√')
}

func (a Accumulator) percent() Accumulator {
	if !a.operatorPressed {
		return a.unary('%')
	}
	a.isModulus = true
	mod := entry{kind: entryOp, text: "%"}
	if a.buf.last().kind == entryOp {
		a.buf = a.buf.replaceLast(mod)
	} else {
		a.buf = a.buf.push(mod)
	}
	return a
}

func (a Accumulator) operator(r rune) Accumulator {
	op := entry{kind: entryOp, text: string(r)}
	if a.operatorPressed && a.buf.last().kind == entryOp {
		a.buf = a.buf.replaceLast(op)
	} else {
		a.buf = a.buf.push(op)
	}
	a.operatorPressed = true
	a.isModulus = false
	return a
}

func (a Accumulator) equals() Accumulator {
	b := a.buf
	if b.last().kind == entryOp {
		b = b.pop()
	}
	x, err := Evaluate(b.String(), Modulus(a.isModulus), Prec(a.prec))
	if err != nil {
		return a.fail(err)
	}
	a.buf = result(x)
	a.operatorPressed = false
	a.isModulus = false
	return a
}

func (a Accumulator) backspace() Accumulator {
	a.buf = a.buf.backspace()
	return a
}

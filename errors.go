package deskcalc

import "strconv"

// MalformedTokenError indicates a token that is neither a number nor an
// operator. It implements InputError.
type MalformedTokenError struct {
	// Col is the position of the token.
	Col int
	// Text is the token that was not understood.
	Text string
}

func (err *MalformedTokenError) Error() string {
	return errpos(err.Col, "malformed token "+strconv.Quote(err.Text))
}

func (err *MalformedTokenError) Pos() int {
	return err.Col
}

// UnbalancedError indicates an expression whose numbers and operators do not
// pair up, e.g. two adjacent operators or an empty expression. It implements
// InputError.
type UnbalancedError struct {
	// Col is the position of the operator that lacked an operand, or the end
	// of the expression if numbers were left over.
	Col int
	// Op is the operator that could not be applied. It is 0 when the
	// evaluation finished with zero or several values.
	Op rune
	// Values is the number of values remaining when evaluation failed.
	Values int
}

func (err *UnbalancedError) Error() string {
	if err.Op != 0 {
		return errpos(err.Col, "missing operand for "+strconv.QuoteRune(err.Op))
	}
	if err.Values == 0 {
		return errpos(err.Col, "no expression")
	}
	return errpos(err.Col, strconv.Itoa(err.Values)+" values without operators")
}

func (err *UnbalancedError) Pos() int {
	return err.Col
}

// DivisionByZeroError is returned when the right operand of / is zero. It
// implements InputError.
type DivisionByZeroError struct {
	// Col is the position of the division operator.
	Col int
	// X is the dividend.
	X float64
}

func (err *DivisionByZeroError) Error() string {
	return errpos(err.Col, "division of "+strconv.FormatFloat(err.X, 'g', -1, 64)+" by zero")
}

func (err *DivisionByZeroError) Pos() int {
	return err.Col
}

// ParseError indicates display text that had to be a single number but was
// not, e.g. pressing √ while an expression is pending.
type ParseError struct {
	// Text is the text that failed to parse.
	Text string
	// Func names the operation that needed a number.
	Func string
}

func (err *ParseError) Error() string {
	r := "not a number: " + strconv.Quote(err.Text)
	if err.Func != "" {
		r = err.Func + ": " + r
	}
	return r
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// an invalid expression passed to Evaluate implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*MalformedTokenError)(nil)
	_ InputError = (*UnbalancedError)(nil)
	_ InputError = (*DivisionByZeroError)(nil)
)

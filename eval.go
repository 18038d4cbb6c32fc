package deskcalc

import (
	"math"
	"strconv"
)

// opEntry is a pending operator and where it appeared.
type opEntry struct {
	op  rune
	pos int
}

// evaluator holds the working stacks for one shunting-yard pass. It is not
// safe to use an evaluator concurrently.
type evaluator struct {
	values []float64
	ops    []opEntry
	evalctx
}

// Evaluate computes the value of a space-delimited infix expression such as
// "10 - 2 * 3". Numbers and the operators + - * / ^ % must be separated by
// spaces. ^ and % bind tighter than * and /, which bind tighter than + and -;
// operators of one tier group left to right. There are no parentheses and no
// unary operators.
//
// The returned error, if any, implements InputError and is one of
// *MalformedTokenError, *UnbalancedError, or *DivisionByZeroError.
func Evaluate(expr string, opts ...EvalOption) (float64, error) {
	toks, err := lex(expr)
	if err != nil {
		return 0, err
	}
	e := evaluator{evalctx: newEvalctx(opts)}
	for _, tok := range toks {
		switch tok.kind {
		case tokenNum:
			e.values = append(e.values, tok.num)
		case tokenOp:
			op := rune(tok.text[0])
			for len(e.ops) > 0 && hasPrecedence(op, e.topOp()) {
				if err := e.reduce(); err != nil {
					return 0, err
				}
			}
			e.ops = append(e.ops, opEntry{op: op, pos: tok.pos})
		default:
			panic("deskcalc: invalid token " + tok.String())
		}
	}
	for len(e.ops) > 0 {
		if err := e.reduce(); err != nil {
			return 0, err
		}
	}
	if len(e.values) != 1 {
		return 0, &UnbalancedError{Col: len([]rune(expr)) + 1, Values: len(e.values)}
	}
	return e.values[0], nil
}

// topOp returns the operator on top of the stack.
func (e *evaluator) topOp() rune {
	return e.ops[len(e.ops)-1].op
}

// reduce pops one operator and two values and pushes the result of applying
// the operator to them. The most recently pushed value is the right operand.
func (e *evaluator) reduce() error {
	op := e.ops[len(e.ops)-1]
	e.ops = e.ops[:len(e.ops)-1]
	if len(e.values) < 2 {
		return &UnbalancedError{Col: op.pos, Op: op.op, Values: len(e.values)}
	}
	b := e.values[len(e.values)-1]
	a := e.values[len(e.values)-2]
	e.values = e.values[:len(e.values)-2]
	r, err := e.apply(op, b, a)
	if err != nil {
		return err
	}
	e.values = append(e.values, r)
	return nil
}

// apply computes a op b. The argument order matches the order in which the
// operands come off the value stack.
func (e *evaluator) apply(op opEntry, b, a float64) (float64, error) {
	switch op.op {
	case '+':
		return a + b, nil
	case '-':
		return a - b, nil
	case '*':
		return a * b, nil
	case '/':
		if b == 0 {
			return 0, &DivisionByZeroError{Col: op.pos, X: a}
		}
		return a / b, nil
	case '^':
		return pow(a, b, e.prec), nil
	case '%':
		if e.modulus {
			return math.Mod(a, b), nil
		}
		// A % that reaches here without modulus mode only comes from keyboard
		// input in the middle of an expression. The keypad handles the
		// percent button before evaluation.
		return funcs['%'](a, e.prec), nil
	default:
		panic("deskcalc: invalid operator " + strconv.QuoteRune(op.op))
	}
}

// hasPrecedence reports whether op2, already on the operator stack, should be
// applied before op1 is pushed.
func hasPrecedence(op1, op2 rune) bool {
	if op2 == '(' || op2 == ')' {
		return false
	}
	if (op1 == '*' || op1 == '/') && (op2 == '+' || op2 == '-') {
		return false
	}
	if (op1 == '^' || op1 == '%') && (op2 != '^' && op2 != '%') {
		return false
	}
	return true
}

package deskcalc

import (
	"errors"
	"strconv"
	"strings"
)

type lexToken struct {
	text string
	kind tokenKind
	num  float64
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenNum is a decimal number, NaN, or Infinity.
	tokenNum
	// tokenOp is a single-character binary operator.
	tokenOp
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenNum:
		return "Num"
	case tokenOp:
		return "Op"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are considered to be binary operators.
const Operators = "+-*/^%"

// lex splits an expression on single spaces into numbers and operators.
// Empty fields, i.e. runs of spaces, are skipped. Positions are 1-based rune
// columns of the first rune of each token.
func lex(src string) ([]lexToken, error) {
	var toks []lexToken
	col := 1
	for _, field := range strings.Split(src, " ") {
		pos := col
		col += len([]rune(field)) + 1
		if field == "" {
			continue
		}
		if v, ok := parseNum(field); ok {
			toks = append(toks, lexToken{text: field, kind: tokenNum, num: v, pos: pos})
			continue
		}
		if len(field) == 1 && strings.IndexByte(Operators, field[0]) >= 0 {
			toks = append(toks, lexToken{text: field, kind: tokenOp, pos: pos})
			continue
		}
		return toks, &MalformedTokenError{Col: pos, Text: field}
	}
	return toks, nil
}

// parseNum parses a decimal floating-point literal. It accepts what the
// calculator can display: digits with an optional point and exponent, NaN,
// and signed Infinity. Hexadecimal and underscore-separated forms are
// rejected. Values beyond the float64 range round to infinity or zero rather
// than failing.
func parseNum(s string) (float64, bool) {
	if s == "" || strings.ContainsAny(s, "_xXpP") {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v, true
		}
		return 0, false
	}
	return v, true
}

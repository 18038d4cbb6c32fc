package deskcalc

import (
	"errors"
	"math"
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexToken
		err    bool
	}{
		// spaces
		{"", nil, false},
		{"   ", nil, false},
		// numbers
		{"0", []lexToken{{text: "0", kind: tokenNum, num: 0, pos: 1}}, false},
		{"9876543210", []lexToken{{text: "9876543210", kind: tokenNum, num: 9876543210, pos: 1}}, false},
		{"1 0", []lexToken{{text: "1", kind: tokenNum, num: 1, pos: 1}, {text: "0", kind: tokenNum, num: 0, pos: 3}}, false},
		{"1.0", []lexToken{{text: "1.0", kind: tokenNum, num: 1, pos: 1}}, false},
		{".5", []lexToken{{text: ".5", kind: tokenNum, num: 0.5, pos: 1}}, false},
		{"5.", []lexToken{{text: "5.", kind: tokenNum, num: 5, pos: 1}}, false},
		{"1.0E10", []lexToken{{text: "1.0E10", kind: tokenNum, num: 1e10, pos: 1}}, false},
		{"-3.0", []lexToken{{text: "-3.0", kind: tokenNum, num: -3, pos: 1}}, false},
		{"Infinity", []lexToken{{text: "Infinity", kind: tokenNum, num: math.Inf(1), pos: 1}}, false},
		{"1e400", []lexToken{{text: "1e400", kind: tokenNum, num: math.Inf(1), pos: 1}}, false},
		// operators
		{"+", []lexToken{{text: "+", kind: tokenOp, pos: 1}}, false},
		{"1 + 2", []lexToken{{text: "1", kind: tokenNum, num: 1, pos: 1}, {text: "+", kind: tokenOp, pos: 3}, {text: "2", kind: tokenNum, num: 2, pos: 5}}, false},
		{"12  %  7", []lexToken{{text: "12", kind: tokenNum, num: 12, pos: 1}, {text: "%", kind: tokenOp, pos: 5}, {text: "7", kind: tokenNum, num: 7, pos: 8}}, false},
		{"2 ^ ", []lexToken{{text: "2", kind: tokenNum, num: 2, pos: 1}, {text: "^", kind: tokenOp, pos: 3}}, false},
		// erroneous tokens
		{"1+2", nil, true},
		{"1.1.1", nil, true},
		{".", nil, true},
		{"++", nil, true},
		{"1 $", []lexToken{{text: "1", kind: tokenNum, num: 1, pos: 1}}, true},
		{"0x10", nil, true},
		{"1_000", nil, true},
		{"√ 4", nil, true},
		{"Error", nil, true},
	}

	for _, c := range cases {
		toks, err := lex(c.src)
		if (err != nil) != c.err {
			t.Errorf("lexing %q: want error %v, got %v", c.src, c.err, err)
		}
		if len(toks) != len(c.tokens) {
			t.Errorf("lexing %q: want %v, got %v", c.src, c.tokens, toks)
			continue
		}
		for i, want := range c.tokens {
			if toks[i] != want {
				t.Errorf("lexing %q: token %d: want %v, got %v", c.src, i, want, toks[i])
			}
		}
	}
}

func TestLexErrorPos(t *testing.T) {
	_, err := lex("1 + abc")
	var m *MalformedTokenError
	if !errors.As(err, &m) {
		t.Fatalf("want *MalformedTokenError, got %#v", err)
	}
	if m.Text != "abc" {
		t.Errorf("wrong token text: want %q, got %q", "abc", m.Text)
	}
	if m.Pos() != 5 {
		t.Errorf("wrong position: want 5, got %d", m.Pos())
	}
}

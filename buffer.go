package deskcalc

import (
	"strconv"
	"strings"
)

// entry is one element of the text on the calculator display.
type entry struct {
	kind entryKind
	// text is the digits of a number, or the operator.
	text string
}

type entryKind int8

const (
	entryNone entryKind = iota

	entryNum // digits, point, or a formatted result
	entryOp  // single operator rune, displayed with a space on each side
)

func (k entryKind) String() string {
	switch k {
	case entryNone:
		return "None"
	case entryNum:
		return "Num"
	case entryOp:
		return "Op"
	default:
		return "entryKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// buffer is the in-progress expression. Methods that modify a buffer return a
// new one and never write through to the backing array of the receiver, so a
// buffer can be shared between accumulator states.
type buffer []entry

// String flattens the buffer to display text such as "12 + 7 % ".
func (b buffer) String() string {
	var s strings.Builder
	for _, e := range b {
		switch e.kind {
		case entryNum:
			s.WriteString(e.text)
		case entryOp:
			s.WriteByte(' ')
			s.WriteString(e.text)
			s.WriteByte(' ')
		default:
			panic("deskcalc: invalid buffer entry " + e.kind.String())
		}
	}
	return s.String()
}

// last returns the final entry, or an entryNone entry if b is empty.
func (b buffer) last() entry {
	if len(b) == 0 {
		return entry{}
	}
	return b[len(b)-1]
}

// push returns b with e appended.
func (b buffer) push(e entry) buffer {
	r := make(buffer, len(b), len(b)+1)
	copy(r, b)
	return append(r, e)
}

// pop returns b without its last entry.
func (b buffer) pop() buffer {
	if len(b) == 0 {
		return b
	}
	return b[:len(b)-1:len(b)-1]
}

// replaceLast returns b with its last entry replaced by e.
func (b buffer) replaceLast(e entry) buffer {
	return b.pop().push(e)
}

// appendDigit returns b with r added to the trailing number, starting a new
// number if the buffer is empty or ends in an operator.
func (b buffer) appendDigit(r rune) buffer {
	if l := b.last(); l.kind == entryNum {
		return b.replaceLast(entry{kind: entryNum, text: l.text + string(r)})
	}
	return b.push(entry{kind: entryNum, text: string(r)})
}

// backspace returns b without its last rune. An operator is removed whole
// along with the spaces around it.
func (b buffer) backspace() buffer {
	l := b.last()
	switch l.kind {
	case entryNone:
		return b
	case entryNum:
		rs := []rune(l.text)
		if len(rs) <= 1 {
			return b.pop()
		}
		return b.replaceLast(entry{kind: entryNum, text: string(rs[:len(rs)-1])})
	default:
		return b.pop()
	}
}

// number returns the value of the buffer if it holds exactly one number.
func (b buffer) number() (float64, bool) {
	if len(b) != 1 || b[0].kind != entryNum {
		return 0, false
	}
	return parseNum(b[0].text)
}

// result returns a buffer holding only the formatted value x.
func result(x float64) buffer {
	return buffer{{kind: entryNum, text: FormatResult(x)}}
}

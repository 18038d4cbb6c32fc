package deskcalc

import "strconv"

// EventKind identifies the kind of an input event.
type EventKind uint8

const (
	EventNone EventKind = iota
	// EventDigit enters a digit or decimal point. Event.Rune holds it.
	EventDigit
	// EventOperator enters one of + - * / ^. Event.Rune holds it.
	EventOperator
	// EventPercent is the % button: percent-of-100 or modulus.
	EventPercent
	// EventSqrt replaces the display with its square root.
	EventSqrt
	// EventClear empties the display and resets the input mode.
	EventClear
	// EventEquals evaluates the display.
	EventEquals
	// EventBackspace removes the last character of the display.
	EventBackspace
)

func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventDigit:
		return "Digit"
	case EventOperator:
		return "Operator"
	case EventPercent:
		return "Percent"
	case EventSqrt:
		return "Sqrt"
	case EventClear:
		return "Clear"
	case EventEquals:
		return "Equals"
	case EventBackspace:
		return "Backspace"
	default:
		return "EventKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Event is a single key or button press.
type Event struct {
	Kind EventKind
	// Rune is the digit or operator for EventDigit and EventOperator.
	Rune rune
}

// String returns the button label for the event, or "⌫" for backspace.
func (ev Event) String() string {
	switch ev.Kind {
	case EventDigit, EventOperator:
		return string(ev.Rune)
	case EventPercent:
		return "%"
	case EventSqrt:
		return "√"
	case EventClear:
		return "C"
	case EventEquals:
		return "="
	case EventBackspace:
		return "⌫"
	default:
		return ev.Kind.String()
	}
}

// Digit creates an event entering r, which must be 0-9 or a decimal point.
func Digit(r rune) Event {
	if !isDigit(r) {
		panic("deskcalc: not a digit: " + strconv.QuoteRune(r))
	}
	return Event{Kind: EventDigit, Rune: r}
}

// Operator creates an event entering r, which must be one of + - * / ^.
func Operator(r rune) Event {
	if !isOperator(r) {
		panic("deskcalc: not an operator: " + strconv.QuoteRune(r))
	}
	return Event{Kind: EventOperator, Rune: r}
}

// Events without an argument.
var (
	Percent   = Event{Kind: EventPercent}
	Sqrt      = Event{Kind: EventSqrt}
	Clear     = Event{Kind: EventClear}
	Equals    = Event{Kind: EventEquals}
	Backspace = Event{Kind: EventBackspace}
)

func isDigit(r rune) bool {
	return '0' <= r && r <= '9' || r == '.'
}

func isOperator(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '^':
		return true
	}
	return false
}

// Keypad lists the button labels in display order, four to a row.
var Keypad = [...]string{
	"C", "√", "%", "/",
	"7", "8", "9", "*",
	"4", "5", "6", "-",
	"1", "2", "3", "+",
	"0", ".", "=", "^",
}

// KeypadColumns is the number of buttons in each row of Keypad.
const KeypadColumns = 4

// ParseButton returns the event for a keypad button label.
func ParseButton(label string) (Event, error) {
	switch label {
	case "C":
		return Clear, nil
	case "√":
		return Sqrt, nil
	case "%":
		return Percent, nil
	case "=":
		return Equals, nil
	}
	if r := []rune(label); len(r) == 1 {
		switch {
		case isDigit(r[0]):
			return Event{Kind: EventDigit, Rune: r[0]}, nil
		case isOperator(r[0]):
			return Event{Kind: EventOperator, Rune: r[0]}, nil
		}
	}
	return Event{}, &ButtonError{Label: label}
}

// ParseKey returns the event for a keyboard key, named the way terminal
// libraries name them: single characters, "enter", and "backspace". Keys
// without a calculator meaning report false. There is no key for √.
func ParseKey(key string) (Event, bool) {
	switch key {
	case "enter":
		return Equals, true
	case "backspace":
		return Backspace, true
	case "c", "C":
		return Clear, true
	case "%":
		return Percent, true
	}
	if r := []rune(key); len(r) == 1 {
		switch {
		case isDigit(r[0]):
			return Event{Kind: EventDigit, Rune: r[0]}, true
		case isOperator(r[0]):
			return Event{Kind: EventOperator, Rune: r[0]}, true
		}
	}
	return Event{}, false
}

// ButtonError is an error indicating an unknown keypad button label.
type ButtonError struct {
	Label string
}

func (err *ButtonError) Error() string {
	return "unknown button " + strconv.Quote(err.Label)
}

// Package deskcalc implements the evaluator and input state machine behind a
// desk calculator keypad.
//
// Expressions are flat, space-delimited infix strings such as "10 - 2 * 3",
// the text a calculator display accumulates as buttons are pressed. Evaluate
// computes them with operator precedence but without parentheses or unary
// operators. An Accumulator assembles that text one key press at a time and
// hands it to Evaluate when "=" is pressed.
//
package deskcalc

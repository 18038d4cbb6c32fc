package deskcalc_test

import (
	"fmt"

	"github.com/zephyrtronium/deskcalc"
)

func ExampleEvaluate() {
	r, err := deskcalc.Evaluate("10 - 2 * 3")
	fmt.Println(r, err)
	r, err = deskcalc.Evaluate("10 % 3", deskcalc.Modulus(true))
	fmt.Println(r, err)
	_, err = deskcalc.Evaluate("5 / 0")
	fmt.Println(err)

	// Output:
	// 4 <nil>
	// 1 <nil>
	// 3: division of 5 by zero
}

func ExampleAccumulator() {
	var a deskcalc.Accumulator
	for _, ev := range []deskcalc.Event{
		deskcalc.Digit('1'),
		deskcalc.Digit('2'),
		deskcalc.Operator('+'),
		deskcalc.Operator('*'),
		deskcalc.Digit('3'),
	} {
		a = a.Apply(ev)
	}
	fmt.Printf("%q\n", a.Display())
	a = a.Apply(deskcalc.Equals)
	fmt.Printf("%q\n", a.Display())
	a = a.Apply(deskcalc.Percent)
	fmt.Printf("%q\n", a.Display())

	// Output:
	// "12 * 3"
	// "36.0"
	// "0.36"
}

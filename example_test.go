package bracket_test

import (
	"fmt"
	"math"

	"github.com/pa-m/bracket"
)

func ExampleBisection() {
	x, _, err := bracket.Bisection(math.Sin, 3, 4, bracket.Options{})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.6f\n", x)
	// Output: 3.141593
}

func ExampleA42() {
	f := func(v float64) float64 { return math.Exp(v) - math.Cos(v) }
	x, _, err := bracket.A42(f, -1, 1, bracket.Options{})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.6f\n", x)
	// Output: 0.000000
}

func ExampleFalsePosition() {
	f := func(v float64) float64 { return v*v*v - 1 }
	x, _, err := bracket.FalsePosition(f, 0, 2, bracket.Options{Reduction: bracket.AndersonBjork, XTol: 1e-10})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.4f\n", x)
	// Output: 1.0000
}

func ExampleBisection_notABracket() {
	_, _, err := bracket.Bisection(func(v float64) float64 { return v * v }, 1, 2, bracket.Options{})
	fmt.Println(err)
	// Output: bracket: not a bracket [1, 2]
}

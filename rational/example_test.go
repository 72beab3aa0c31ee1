package rational_test

import (
	"fmt"

	"github.com/katalvlaran/ratmat/rational"
)

// ExampleNew demonstrates canonicalization: reduction to lowest terms
// and the positive-denominator sign convention.
func ExampleNew() {
	a, _ := rational.New(2, 4)  // reduces to 1/2
	b, _ := rational.New(7, -8) // sign moves to the numerator
	c, _ := rational.New(0, -3) // zero is always 0/1

	fmt.Println(a, b, c)
	fmt.Println(a == rational.MustNew(-1, -2)) // same canonical value
	// Output:
	// 1/2 -7/8 0
	// true
}

// ExampleRational_Cmp demonstrates the exact total order.
func ExampleRational_Cmp() {
	third := rational.MustNew(1, 3)
	half := rational.MustNew(1, 2)

	fmt.Println(third.Cmp(half))
	fmt.Println(half.Cmp(rational.MustNew(2, 4)))
	// Output:
	// -1
	// 0
}

// ExampleRational_Add demonstrates checked, reduced arithmetic.
func ExampleRational_Add() {
	sum, err := rational.MustNew(1, 6).Add(rational.MustNew(1, 10))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(sum)
	// Output:
	// 4/15
}

// Copyright 2020 Aleksandr Demakin. All rights reserved.

package z10

import (
	"fmt"
)

func ExampleInt_QuoRem() {
	x := MustFromString("-100000000000000000000")
	y := FromInt64(7)
	q, r, _ := x.QuoRem(y)
	fmt.Println(q, r)
	fmt.Println(q.Mul(y).Add(r))
	// Output:
	// -14285714285714285714 -2
	// -100000000000000000000
}

func ExampleGCD() {
	fmt.Println(GCD(FromInt64(-462), FromInt64(1071)))
	// Output: 21
}

// Copyright 2020 Aleksandr Demakin. All rights reserved.

package q10

import (
	"fmt"
)

func ExampleRat_DecimalString() {
	// 22/7 - 1/3
	r := MustFromFrac(22, 7).Sub(MustFromFrac(1, 3))
	fmt.Println(r, r.Reduce())
	fmt.Println(r.DecimalString(10))
	// Output:
	// 59/21 59/21
	// 2.8095238095
}

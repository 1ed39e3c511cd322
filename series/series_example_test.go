// Copyright 2020 Aleksandr Demakin. All rights reserved.

package series

import (
	"context"
	"fmt"
)

func ExampleCompute() {
	pi, err := Compute(context.Background(), RatBackend(), Machin, 20, 2)
	if err != nil {
		panic(err)
	}
	fmt.Println(pi)
	// Output: 3.14159265358979323846
}

func ExampleGregoryLeibniz() {
	sum, _ := GregoryLeibniz(context.Background(), 3)
	fmt.Println(sum, sum.DecimalString(4))
	// Output: 52/15 3.4666
}

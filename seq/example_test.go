package seq_test

import (
	"fmt"

	"github.com/charmingruby/functional/curry"
	"github.com/charmingruby/functional/seq"
)

func ExampleAp() {
	ops := []curry.Applyable1[int, int]{
		curry.Func2(func(a, b int) int { return a + b }).Call(10),
		curry.Func2(func(a, b int) int { return a * b }).Call(10),
	}
	fmt.Println(seq.Ap(ops, []int{1, 2, 3}))
	// Output:
	// [11 12 13 10 20 30]
}

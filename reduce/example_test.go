package reduce_test

import (
	"fmt"

	"github.com/katalvlaran/rref/matrix"
	"github.com/katalvlaran/rref/reduce"
)

// ExampleReduce prints the derivation of a 2×3 system whose first pivot
// needs scaling.
func ExampleReduce() {
	m, err := matrix.FromInts([][]int64{{2, 4, 6}, {1, 3, 5}})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	steps, err := reduce.Reduce(m)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, s := range steps {
		fmt.Printf("%-8s %-9s %s\n", s.Phase, s.Op, s.Label)
	}
	fmt.Print(reduce.Final(steps))
	// Output:
	// start    none      Original Matrix
	// forward  eliminate R2 = R2 - (1/2) * R1
	// mid      none      Echelon Form
	// backward eliminate R1 = R1 - (4) * R2
	// backward scale     R1 = (1/2) * R1
	// end      none      Reduced Echelon Form (RREF)
	// [1, 0, -1]
	// [0, 1, 2]
}

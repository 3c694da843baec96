package render_test

import (
	"os"

	"github.com/katalvlaran/rref/matrix"
	"github.com/katalvlaran/rref/render"
)

func ExampleMatrix() {
	m, _ := matrix.Parse([][]string{{"1", "3/4"}, {"-2", "0"}})
	_ = render.Matrix(os.Stdout, m)
	// Output:
	//   [   1  3/4 ]
	//   [  -2    0 ]
}

// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qs/matrix"
)

// ExampleMatrixX_Inv inverts a 2×2 matrix and prints it row by row.
func ExampleMatrixX_Inv() {
	a, _ := matrix.NewMatrixFrom(2, 2,
		4.0, 7.0,
		2.0, 6.0)
	inv, err := a.Inv()
	if err != nil {
		fmt.Println(err)
		return
	}
	var i int
	for i = 0; i < inv.Rows(); i++ {
		fmt.Printf("%.2f %.2f\n", matrix.Must(inv.At(i, 0)), matrix.Must(inv.At(i, 1)))
	}
	// Output:
	// 0.60 -0.70
	// -0.20 0.40
}

// ExampleMatrixX_Inv_singular shows how a singular input is reported.
func ExampleMatrixX_Inv_singular() {
	s, _ := matrix.NewMatrixFrom(2, 2,
		1.0, 2.0,
		2.0, 4.0)
	_, err := s.Inv()
	fmt.Println(errors.Is(err, matrix.ErrSingular))
	// Output:
	// true
}

// ExampleMatrixX_Det computes an integer determinant exactly.
func ExampleMatrixX_Det() {
	m, _ := matrix.NewMatrixFrom(3, 3,
		1, 2, 3,
		4, 5, 6,
		7, 8, 10)
	d, _ := m.Det()
	fmt.Println(d)
	// Output:
	// -3
}

// ExampleEyeOf builds a fixed-shape identity and evaluates the quadratic form xᵀIx.
func ExampleEyeOf() {
	eye := matrix.Must(matrix.EyeOf[float64, matrix.Mat3]())
	x := matrix.Must(matrix.NewMatrixValues[float64, matrix.Vec3](1, 2, 2))

	ix := matrix.Must(eye.Mul(x.Dynamic()))
	q := matrix.Must(matrix.Must(x.T()).Mul(ix))
	fmt.Println(matrix.Must(q.Scalar()), matrix.Must(x.Norm2()))
	// Output:
	// 9 3
}

// ExampleArray_Sign shows the elementwise helpers used by soft thresholding.
func ExampleArray_Sign() {
	a, _ := matrix.ArrayFrom(2.5, -0.5, 0)
	fmt.Println(a.Sign().Values(), a.Abs().SubScalar(1).Max(0).Values())
	// Output:
	// [1 -1 -1] [1.5 0 0]
}

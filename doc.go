// Package qs is a small dense linear-algebra kernel for Go, with a handful of
// iterative solvers built on top of it.
//
// 🚀 What is in qs?
//
//	• matrix/: Array[T], row-major MatrixX[T] and the fixed-shape Matrix[T, S]:
//	  arithmetic, transpose, Gauss-Jordan inverse, cofactor determinant, trace,
//	  vector norms, sub-blocks, symmetry and definiteness tests
//	• optim/: soft-thresholding, Newton and gradient descent on xᵀAx, and an
//	  ADMM lasso solver
//	• bridge/: copies to and from gonum's mat.Dense / mat.VecDense
//	• cmd/qsdemo: a CLI that inspects matrices and runs the solvers
//
// ✨ Conventions
//
//   - Generic over signed integers and floats (matrix.Number).
//   - Errors, not panics: every precondition failure wraps a sentinel from
//     matrix/errors.go and is matched with errors.Is.
//   - Methods suffixed InPlace mutate; everything else returns a fresh value.
//   - Randomness is explicit and seeded (matrix.NewRand).
//
// Quick start:
//
//	a, _ := matrix.NewMatrixFrom(2, 2,
//		4.0, 7.0,
//		2.0, 6.0)
//	inv, err := a.Inv()
//	if errors.Is(err, matrix.ErrSingular) { ... }
//	fmt.Println(inv)
package qs

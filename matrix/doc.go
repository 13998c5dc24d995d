// Package matrix is a small dense linear-algebra kernel over generic numeric
// element types.
//
// The matrix package provides:
//
//   - Array[T]: an owning, fixed-length buffer with elementwise arithmetic
//     (Add, Sub, Mul, Scale, Max, Abs, Sign) and no shape semantics.
//   - MatrixX[T]: a row-major matrix over an owned Array with shape-aware
//     operations: Add, Sub, Mul, Scale, T, Inv (Gauss-Jordan), Det (cofactor
//     expansion), Trace, Norm1, Norm2, Submatrix, IsSym, IsPD, IsPSD.
//   - Matrix[T, S]: a fixed-shape wrapper whose dimensions come from the shape
//     type S (Mat2, Mat3, Mat4, Vec2, Vec3, Vec4, Scalar or a caller's own).
//
// Every precondition violation (shape mismatch, index out of range, non-square
// input, singular inversion) is returned as an error wrapping one of the
// sentinels in errors.go; match them with errors.Is. Methods suffixed InPlace
// mutate the receiver; every other operation returns a fresh value.
//
// Determinant and the definiteness tests use cofactor expansion, O(n!): the
// kernel targets small matrices.
//
// See the examples in this package for usage patterns.
package matrix

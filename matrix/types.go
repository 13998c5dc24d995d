// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by Array, MatrixX and the fixed-shape
// wrapper. This file intentionally contains ONLY type declarations; errors and
// options live in dedicated files (errors.go, options.go).
package matrix

// Number is the element constraint for Array and MatrixX.
// Signed integers and floating-point types are accepted; unsigned types are
// excluded because Sign and Abs are defined in terms of negative values.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Shape describes a fixed (rows, cols) pair carried by a zero-size type.
// It stands in for compile-time dimensions: Matrix[T, Mat3] is always 3×3.
type Shape interface {
	// Dims returns the rows and columns of the shape. Both must be > 0.
	Dims() (rows, cols int)
}

// SquareShape is a Shape with rows == cols. The Square marker method lets
// Eye reject non-square shapes at compile time.
type SquareShape interface {
	Shape
	Square()
}

// Built-in shapes. Callers may declare their own: any type with a value
// receiver Dims method satisfies Shape.
type (
	// Scalar is the 1×1 shape.
	Scalar struct{}
	// Mat2 is the 2×2 shape.
	Mat2 struct{}
	// Mat3 is the 3×3 shape.
	Mat3 struct{}
	// Mat4 is the 4×4 shape.
	Mat4 struct{}
	// Vec2 is the 2×1 column-vector shape.
	Vec2 struct{}
	// Vec3 is the 3×1 column-vector shape.
	Vec3 struct{}
	// Vec4 is the 4×1 column-vector shape.
	Vec4 struct{}
)

func (Scalar) Dims() (int, int) { return 1, 1 }
func (Mat2) Dims() (int, int)   { return 2, 2 }
func (Mat3) Dims() (int, int)   { return 3, 3 }
func (Mat4) Dims() (int, int)   { return 4, 4 }
func (Vec2) Dims() (int, int)   { return 2, 1 }
func (Vec3) Dims() (int, int)   { return 3, 1 }
func (Vec4) Dims() (int, int)   { return 4, 1 }

func (Scalar) Square() {}
func (Mat2) Square()   {}
func (Mat3) Square()   {}
func (Mat4) Square()   {}

// Compile-time assertions for the built-in shapes.
var (
	_ SquareShape = Scalar{}
	_ SquareShape = Mat2{}
	_ SquareShape = Mat3{}
	_ SquareShape = Mat4{}
	_ Shape       = Vec2{}
	_ Shape       = Vec3{}
	_ Shape       = Vec4{}
)

// SPDX-License-Identifier: MIT

// Package matrix - Matrix[T, S]: fixed-shape wrapper over MatrixX.
//
// Purpose:
//   - Carry the dimensions in the type: Matrix[float64, Mat3] is always 3×3 and
//     Matrix[float32, Vec3] is always a 3-element column vector.
//   - Compose, don't inherit: the wrapper owns a private *MatrixX and checks
//     the shape at every boundary where a dynamic value enters (FromDynamic,
//     FromArray, AssignDynamic). Operations that keep the shape return a
//     Matrix[T, S]; operations that change it (T, Mul, Submatrix) return *MatrixX.
//
// Determinism:
//   - Shapes are zero-size types; dimsOf costs a method call, no allocation.
package matrix

import "math/rand"

const (
	ctxFixed       = "Matrix"
	ctxFromDynamic = "FromDynamic"
	ctxAssignDyn   = "AssignDynamic"
	ctxEye         = "Eye"
)

// Matrix is a MatrixX whose shape is fixed by S. The zero value is not usable;
// construct with NewMatrix, FromDynamic, FromArray or a factory.
type Matrix[T Number, S Shape] struct {
	m *MatrixX[T] // always S.Dims()
}

// dimsOf returns the (rows, cols) declared by the shape type S.
func dimsOf[S Shape]() (int, int) {
	var s S
	return s.Dims()
}

// NewMatrix returns a zero matrix of shape S.
// Errors: ErrInvalidDimensions when S declares a non-positive dimension.
func NewMatrix[T Number, S Shape]() (*Matrix[T, S], error) {
	r, c := dimsOf[S]()
	if err := validateShape(r, c); err != nil {
		return nil, matrixErrorf(ctxFixed, err)
	}
	m, err := NewMatrixX[T](r, c)
	if err != nil {
		return nil, err
	}

	return &Matrix[T, S]{m: m}, nil
}

// NewMatrixValues builds a matrix of shape S from exactly R*C row-major values.
// Errors: ErrLengthMismatch on a wrong value count.
func NewMatrixValues[T Number, S Shape](vals ...T) (*Matrix[T, S], error) {
	f, err := NewMatrix[T, S]()
	if err != nil {
		return nil, err
	}
	if err = f.m.Assign(vals...); err != nil {
		return nil, err
	}

	return f, nil
}

// FromDynamic copies x into a new Matrix[T, S].
// Errors: ErrDimensionMismatch unless x is exactly S.Dims(); nothing is
// truncated or padded.
func FromDynamic[T Number, S Shape](x *MatrixX[T]) (*Matrix[T, S], error) {
	f, err := NewMatrix[T, S]()
	if err != nil {
		return nil, err
	}
	if err = f.AssignDynamic(x); err != nil {
		return nil, matrixErrorf(ctxFromDynamic, err)
	}

	return f, nil
}

// FromArray wraps a (taking ownership) as a Matrix[T, S].
// Errors: ErrDimensionMismatch unless a.Len() == R*C.
//
// The ownership rules of NewMatrixFromArray apply: an Array returned by
// Array() on a live matrix must be cloned (or released) first.
func FromArray[T Number, S Shape](a *Array[T]) (*Matrix[T, S], error) {
	r, c := dimsOf[S]()
	m, err := NewMatrixFromArray(a, r, c)
	if err != nil {
		return nil, err
	}

	return &Matrix[T, S]{m: m}, nil
}

// AssignDynamic overwrites f with a copy of x.
// Errors: ErrNilMatrix, ErrInvalidDimensions, or ErrDimensionMismatch when x
// is not exactly S.Dims(); f is unchanged on error.
func (f *Matrix[T, S]) AssignDynamic(x *MatrixX[T]) error {
	if err := validateLive(x); err != nil {
		return matrixErrorf(ctxAssignDyn, err)
	}
	r, c := dimsOf[S]()
	if x.r != r || x.c != c {
		return matrixErrorf(ctxAssignDyn, ErrDimensionMismatch)
	}
	f.m = x.Clone()

	return nil
}

// Assign overwrites all elements from exactly R*C row-major values.
func (f *Matrix[T, S]) Assign(vals ...T) error { return f.m.Assign(vals...) }

// Init starts a streaming row-major fill; see MatrixX.Init.
func (f *Matrix[T, S]) Init(v T) *Initializer[T] { return f.m.Init(v) }

// Dynamic returns an independent *MatrixX copy of f.
func (f *Matrix[T, S]) Dynamic() *MatrixX[T] { return f.m.Clone() }

// Array returns the owned buffer (shared storage, fixed length).
func (f *Matrix[T, S]) Array() *Array[T] { return f.m.Array() }

// Rows returns R.
func (f *Matrix[T, S]) Rows() int { return f.m.r }

// Cols returns C.
func (f *Matrix[T, S]) Cols() int { return f.m.c }

// At returns the value at (row, col) or ErrOutOfRange.
func (f *Matrix[T, S]) At(row, col int) (T, error) { return f.m.At(row, col) }

// Set stores v at (row, col) or returns ErrOutOfRange.
func (f *Matrix[T, S]) Set(row, col int, v T) error { return f.m.Set(row, col, v) }

// Scalar returns the sole element of a 1×1 matrix, or ErrNotScalar.
func (f *Matrix[T, S]) Scalar() (T, error) { return f.m.Scalar() }

// Clone returns a deep copy with the same shape type.
func (f *Matrix[T, S]) Clone() *Matrix[T, S] { return &Matrix[T, S]{m: f.m.Clone()} }

// Equal reports element-wise equality (shapes are equal by construction).
func (f *Matrix[T, S]) Equal(o *Matrix[T, S]) bool { return f.m.Equal(o.m) }

// String renders f like MatrixX.String.
func (f *Matrix[T, S]) String() string { return f.m.String() }

// Add returns f + o.
func (f *Matrix[T, S]) Add(o *Matrix[T, S]) (*Matrix[T, S], error) {
	sum, err := f.m.Add(o.m)
	if err != nil {
		return nil, err
	}

	return &Matrix[T, S]{m: sum}, nil
}

// Sub returns f - o.
func (f *Matrix[T, S]) Sub(o *Matrix[T, S]) (*Matrix[T, S], error) {
	diff, err := f.m.Sub(o.m)
	if err != nil {
		return nil, err
	}

	return &Matrix[T, S]{m: diff}, nil
}

// Scale returns v*f.
func (f *Matrix[T, S]) Scale(v T) (*Matrix[T, S], error) {
	scaled, err := f.m.Scale(v)
	if err != nil {
		return nil, err
	}

	return &Matrix[T, S]{m: scaled}, nil
}

// Mul returns the dynamic product f × o.
func (f *Matrix[T, S]) Mul(o *MatrixX[T]) (*MatrixX[T], error) { return f.m.Mul(o) }

// T returns the dynamic transpose (shape C×R).
func (f *Matrix[T, S]) T() (*MatrixX[T], error) { return f.m.T() }

// Inv returns f⁻¹ with the same shape; fails with ErrNonSquare for non-square S.
func (f *Matrix[T, S]) Inv(opts ...Option) (*Matrix[T, S], error) {
	inv, err := f.m.Inv(opts...)
	if err != nil {
		return nil, err
	}

	return &Matrix[T, S]{m: inv}, nil
}

// Det returns the determinant; see MatrixX.Det.
func (f *Matrix[T, S]) Det() (T, error) { return f.m.Det() }

// Trace returns the diagonal sum; see MatrixX.Trace.
func (f *Matrix[T, S]) Trace() (T, error) { return f.m.Trace() }

// Norm1 returns Σ|xᵢ| for a vector shape.
func (f *Matrix[T, S]) Norm1() (T, error) { return f.m.Norm1() }

// Norm2 returns the Euclidean norm for a vector shape.
func (f *Matrix[T, S]) Norm2() (T, error) { return f.m.Norm2() }

// Submatrix copies a block out as a dynamic matrix.
func (f *Matrix[T, S]) Submatrix(sr, sc, rows, cols int) (*MatrixX[T], error) {
	return f.m.Submatrix(sr, sc, rows, cols)
}

// IsSym reports exact symmetry.
func (f *Matrix[T, S]) IsSym() bool { return f.m.IsSym() }

// IsPD reports positive definiteness; see MatrixX.IsPD.
func (f *Matrix[T, S]) IsPD() (bool, error) { return f.m.IsPD() }

// IsPSD reports positive semi-definiteness; see MatrixX.IsPSD.
func (f *Matrix[T, S]) IsPSD() (bool, error) { return f.m.IsPSD() }

// FillRandInPlace refills f from rng; see MatrixX.FillRandInPlace.
func (f *Matrix[T, S]) FillRandInPlace(rng *rand.Rand) { f.m.FillRandInPlace(rng) }

// FillZerosInPlace sets every element to 0.
func (f *Matrix[T, S]) FillZerosInPlace() { f.m.FillZerosInPlace() }

// FillOnesInPlace sets every element to 1.
func (f *Matrix[T, S]) FillOnesInPlace() { f.m.FillOnesInPlace() }

// ---------- Factories ----------

// EyeOf returns the identity of a square shape S.
// Non-square shapes are rejected at compile time by the SquareShape
// constraint; a shape that implements Square but declares R != C fails with
// ErrNonSquare.
func EyeOf[T Number, S SquareShape]() (*Matrix[T, S], error) {
	f, err := NewMatrix[T, S]()
	if err != nil {
		return nil, err
	}
	if f.m.r != f.m.c {
		return nil, matrixErrorf(ctxEye, ErrNonSquare)
	}
	f.m.eyeInPlace()

	return f, nil
}

// RandOf returns a matrix of shape S filled from rng.
func RandOf[T Number, S Shape](rng *rand.Rand) (*Matrix[T, S], error) {
	f, err := NewMatrix[T, S]()
	if err != nil {
		return nil, err
	}
	f.m.FillRandInPlace(rng)

	return f, nil
}

// OnesOf returns a matrix of shape S filled with ones.
func OnesOf[T Number, S Shape]() (*Matrix[T, S], error) {
	f, err := NewMatrix[T, S]()
	if err != nil {
		return nil, err
	}
	f.m.FillOnesInPlace()

	return f, nil
}

// ZerosOf returns a zero matrix of shape S.
func ZerosOf[T Number, S Shape]() (*Matrix[T, S], error) {
	return NewMatrix[T, S]()
}

// SPDX-License-Identifier: MIT

// Package matrix - MatrixX: dynamically shaped, row-major matrix over an owned Array.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula r*cols + c.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep the core invariant rows*cols == Array.Len() at every shape-changing operation.
//   - Make mutation visible in the API: *InPlace methods mutate the receiver and
//     return nothing (or only an error); every other method returns a fresh value.
//
// Complexity quicksheet:
//   - NewMatrixX: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Release: O(1).
package matrix

import "math/rand"

// ---------- error context tags ----------

const (
	ctxNew      = "NewMatrixX"
	ctxFrom     = "NewMatrixFrom"
	ctxFromArr  = "NewMatrixFromArray"
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxAssign   = "Assign"
	ctxInit     = "Init"
	ctxResize   = "ResizeInPlace"
	ctxScalar   = "Scalar"
	ctxIndexAt  = "AtIndex"
	ctxIndexSet = "SetIndex"
)

// MatrixX is a row-major matrix of Number values whose shape is known only at run time.
//   - r,c hold dimensions (rows, cols); both are > 0 for a live matrix.
//   - arr owns r*c elements in row-major order (offset = i*c + j).
//   - After Release the matrix is empty: 0×0 with no buffer.
type MatrixX[T Number] struct {
	r, c int       // row and column counts
	arr  *Array[T] // owned storage, arr.Len() == r*c
}

// NewMatrixX creates an r×c zero matrix.
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled Array of length rows*cols.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewMatrixX[T Number](rows, cols int) (*MatrixX[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(ctxNew, ErrInvalidDimensions)
	}
	arr, err := NewArray[T](rows * cols)
	if err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}

	return &MatrixX[T]{r: rows, c: cols, arr: arr}, nil
}

// NewMatrixFrom builds an r×c matrix from exactly r*c values in row-major order.
// Returns ErrLengthMismatch when len(vals) != rows*cols; nothing is silently
// truncated or zero-padded.
//
// Example:
//
//	A, err := NewMatrixFrom(2, 2,
//		1.0, 2.0,
//		3.0, 4.0)
func NewMatrixFrom[T Number](rows, cols int, vals ...T) (*MatrixX[T], error) {
	m, err := NewMatrixX[T](rows, cols)
	if err != nil {
		return nil, err
	}
	if len(vals) != rows*cols {
		return nil, matrixErrorf(ctxFrom, ErrLengthMismatch)
	}
	copy(m.arr.data, vals)

	return m, nil
}

// NewMatrixFromArray wraps a with the shape rows×cols, taking ownership of a.
// The caller must not use a afterwards; Clone it first to keep a private copy.
//
// Ownership:
//   - a must not be owned by a live matrix. An Array obtained through
//     MatrixX.Array or Matrix.Array is still owned by that matrix: pass
//     m.Array().Clone(), or m.Release() when m is no longer needed. Wrapping
//     the shared buffer directly gives two matrices over one storage, and
//     writes through either one show up in both.
//
// Errors:
//   - ErrNilMatrix when a is nil.
//   - ErrInvalidDimensions when rows or cols is non-positive.
//   - ErrDimensionMismatch when a.Len() != rows*cols.
func NewMatrixFromArray[T Number](a *Array[T], rows, cols int) (*MatrixX[T], error) {
	if a == nil {
		return nil, matrixErrorf(ctxFromArr, ErrNilMatrix)
	}
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(ctxFromArr, ErrInvalidDimensions)
	}
	if a.Len() != rows*cols {
		return nil, matrixErrorf(ctxFromArr, ErrDimensionMismatch)
	}

	return &MatrixX[T]{r: rows, c: cols, arr: a}, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *MatrixX[T]) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *MatrixX[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *MatrixX[T]) Shape() (rows, cols int) { return m.r, m.c }

// Len returns rows*cols.
func (m *MatrixX[T]) Len() int { return m.r * m.c }

// IsScalar reports whether m is 1×1.
func (m *MatrixX[T]) IsScalar() bool { return m != nil && m.r == 1 && m.c == 1 }

// Scalar returns the sole element of a 1×1 matrix, or ErrNotScalar.
// Typical use: the quadratic form xᵀAx evaluates to a 1×1 matrix.
func (m *MatrixX[T]) Scalar() (T, error) {
	if !m.IsScalar() {
		var zero T
		return zero, matrixErrorf(ctxScalar, ErrNotScalar)
	}

	return m.arr.data[0], nil
}

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *MatrixX[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *MatrixX[T]) At(row, col int) (T, error) {
	if m == nil {
		var zero T
		return zero, matrixErrorf(ctxAt, ErrNilMatrix)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.arr.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *MatrixX[T]) Set(row, col int, v T) error {
	if m == nil {
		return matrixErrorf(ctxSet, ErrNilMatrix)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.arr.data[off] = v

	return nil
}

// AtIndex returns the element at flat row-major index i.
func (m *MatrixX[T]) AtIndex(i int) (T, error) {
	if m == nil || m.arr == nil {
		var zero T
		return zero, matrixErrorf(ctxIndexAt, ErrOutOfRange)
	}
	v, err := m.arr.At(i)
	if err != nil {
		return v, matrixErrorf(ctxIndexAt, ErrOutOfRange)
	}

	return v, nil
}

// SetIndex stores v at flat row-major index i.
func (m *MatrixX[T]) SetIndex(i int, v T) error {
	if m == nil || m.arr == nil {
		return matrixErrorf(ctxIndexSet, ErrOutOfRange)
	}
	if err := m.arr.Set(i, v); err != nil {
		return matrixErrorf(ctxIndexSet, ErrOutOfRange)
	}

	return nil
}

// Array returns the owned buffer. It shares storage with m: element writes
// through it are visible in m. Its length cannot change, so the shape
// invariant holds. Clone it before handing it to NewMatrixFromArray or
// FromArray.
func (m *MatrixX[T]) Array() *Array[T] {
	if m == nil {
		return nil
	}

	return m.arr
}

// Release transfers ownership of the buffer to the caller and leaves m empty
// (shape 0×0). Every operation on an empty matrix fails with ErrInvalidDimensions.
// Complexity: O(1).
func (m *MatrixX[T]) Release() *Array[T] {
	if m == nil {
		return nil
	}
	a := m.arr
	m.arr, m.r, m.c = nil, 0, 0

	return a
}

// Clone returns a deep copy (new buffer, same shape).
// Complexity: O(r*c).
func (m *MatrixX[T]) Clone() *MatrixX[T] {
	if m == nil {
		return nil
	}

	return &MatrixX[T]{r: m.r, c: m.c, arr: m.arr.Clone()}
}

// Equal reports whether shapes match and every element compares equal.
// Exact comparison; see AllClose for tolerance-based checks.
func (m *MatrixX[T]) Equal(o *MatrixX[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}

	return m.arr.Equal(o.arr)
}

// Assign overwrites all elements from exactly rows*cols values in row-major order.
// On ErrLengthMismatch the matrix is left untouched.
func (m *MatrixX[T]) Assign(vals ...T) error {
	if err := validateLive(m); err != nil {
		return matrixErrorf(ctxAssign, err)
	}
	if len(vals) != m.Len() {
		return matrixErrorf(ctxAssign, ErrLengthMismatch)
	}
	copy(m.arr.data, vals)

	return nil
}

// Initializer streams values into a matrix in row-major order.
// The first failure is sticky and reported by Err and Done.
type Initializer[T Number] struct {
	m   *MatrixX[T]
	i   int   // next flat index to write
	err error // first failure, sticky
}

// Init starts a streaming fill: v lands at index 0, and each Next call writes
// the following index. Finish with Done, which requires exactly rows*cols values.
//
//	err := m.Init(1).Next(2).Next(3).Next(4).Done()
func (m *MatrixX[T]) Init(v T) *Initializer[T] {
	in := &Initializer[T]{m: m}
	if err := validateLive(m); err != nil {
		in.err = matrixErrorf(ctxInit, err)
		return in
	}

	return in.Next(v)
}

// Next writes v at the next row-major index. Writing past rows*cols records
// ErrOutOfRange.
func (in *Initializer[T]) Next(v T) *Initializer[T] {
	if in.err != nil {
		return in
	}
	if in.i >= in.m.Len() {
		in.err = matrixErrorf(ctxInit, ErrOutOfRange)
		return in
	}
	in.m.arr.data[in.i] = v
	in.i++

	return in
}

// Err returns the first failure observed so far, if any.
func (in *Initializer[T]) Err() error { return in.err }

// Done finishes the fill. It returns the sticky error, or ErrLengthMismatch
// when fewer than rows*cols values were written.
func (in *Initializer[T]) Done() error {
	if in.err != nil {
		return in.err
	}
	if in.i != in.m.Len() {
		return matrixErrorf(ctxInit, ErrLengthMismatch)
	}

	return nil
}

// FillZerosInPlace sets every element to 0.
func (m *MatrixX[T]) FillZerosInPlace() { m.fillInPlace(0) }

// FillOnesInPlace sets every element to 1.
func (m *MatrixX[T]) FillOnesInPlace() { m.fillInPlace(1) }

func (m *MatrixX[T]) fillInPlace(v T) {
	if m == nil || m.arr == nil {
		return
	}
	var i int
	for i = range m.arr.data {
		m.arr.data[i] = v
	}
}

// FillRandInPlace fills every element from rng: floating types receive values
// uniform in [0,1), integer types receive values spanning the full range of T.
// A nil rng uses a stream seeded with the package default seed, so results are
// reproducible unless the caller supplies its own generator.
//
// Concurrency:
//   - *rand.Rand is not goroutine-safe; do not share rng across goroutines.
func (m *MatrixX[T]) FillRandInPlace(rng *rand.Rand) {
	if m == nil || m.arr == nil {
		return
	}
	if rng == nil {
		rng = NewRand(0)
	}
	var i int
	for i = range m.arr.data {
		m.arr.data[i] = randomValue[T](rng)
	}
}

// ResizeInPlace reshapes m to rows×cols by resizing the flat buffer: the first
// min(old, new) elements keep their flat positions, new elements are zero.
// Contents are not reflowed to preserve (row, col) positions.
func (m *MatrixX[T]) ResizeInPlace(rows, cols int) error {
	if m == nil {
		return matrixErrorf(ctxResize, ErrNilMatrix)
	}
	if rows <= 0 || cols <= 0 {
		return matrixErrorf(ctxResize, ErrInvalidDimensions)
	}
	n := rows * cols
	data := make([]T, n)
	if m.arr != nil {
		copy(data, m.arr.data)
	}
	m.r, m.c = rows, cols
	m.arr = &Array[T]{data: data}

	return nil
}

// eyeInPlace writes 1 on the main diagonal; other elements are untouched.
func (m *MatrixX[T]) eyeInPlace() {
	var i int
	for i = 0; i < m.r; i++ {
		m.arr.data[i*m.c+i] = 1
	}
}

// SPDX-License-Identifier: MIT

// Package matrix - Array: flat owning numeric buffer with elementwise primitives.
//
// Purpose:
//   - Hold the contiguous storage behind every MatrixX (no shape semantics here).
//   - Provide elementwise arithmetic usable directly by consumers building
//     composite expressions (e.g. soft-thresholding: sign(x) * max(|x| - k, 0)).
//
// Contract:
//   - Length is fixed at construction; only the owning MatrixX may resize it.
//   - Pure operations return a fresh Array; *InPlace operations mutate the
//     receiver and return nothing.
//
// Complexity quicksheet:
//   - NewArray/Clone/any elementwise op: O(n); At/Set: O(1).
package matrix

import (
	"strconv"
	"strings"
)

const (
	ctxArrayAt  = "Array.At"
	ctxArraySet = "Array.Set"
	ctxArrayAdd = "Array.Add"
	ctxArraySub = "Array.Sub"
	ctxArrayMul = "Array.Mul"
)

// Array is an owning, fixed-length buffer of Number elements.
// The zero value is an empty array; use NewArray or ArrayFrom to allocate.
type Array[T Number] struct {
	data []T // contiguous storage; len(data) is the array size
}

// NewArray allocates a zero-filled Array of length n.
// Returns ErrInvalidDimensions when n <= 0.
// Complexity: O(n).
func NewArray[T Number](n int) (*Array[T], error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Array[T]{data: make([]T, n)}, nil
}

// ArrayFrom copies vals into a new Array.
// Returns ErrInvalidDimensions when vals is empty.
// Complexity: O(n).
func ArrayFrom[T Number](vals ...T) (*Array[T], error) {
	a, err := NewArray[T](len(vals))
	if err != nil {
		return nil, err
	}
	copy(a.data, vals)

	return a, nil
}

// Len returns the number of elements. A nil Array has length 0.
func (a *Array[T]) Len() int {
	if a == nil {
		return 0
	}

	return len(a.data)
}

// At returns element i or ErrOutOfRange when i is outside [0, Len()).
func (a *Array[T]) At(i int) (T, error) {
	if i < 0 || i >= a.Len() {
		var zero T
		return zero, matrixErrorf(ctxArrayAt, ErrOutOfRange)
	}

	return a.data[i], nil
}

// Set stores v at index i or returns ErrOutOfRange.
func (a *Array[T]) Set(i int, v T) error {
	if i < 0 || i >= a.Len() {
		return matrixErrorf(ctxArraySet, ErrOutOfRange)
	}
	a.data[i] = v

	return nil
}

// Values returns a copy of the elements in index order.
func (a *Array[T]) Values() []T {
	out := make([]T, a.Len())
	if a != nil {
		copy(out, a.data)
	}

	return out
}

// Clone returns a deep copy. Mutations of the copy never affect a.
// Complexity: O(n).
func (a *Array[T]) Clone() *Array[T] {
	if a == nil {
		return nil
	}
	cp := make([]T, len(a.data))
	copy(cp, a.data)

	return &Array[T]{data: cp}
}

// binary applies f pairwise over two equal-length arrays into a fresh Array.
// Implementation:
//   - Stage 1: reject nil operands and length mismatch.
//   - Stage 2: single flat loop 0..n-1.
//
// Complexity:
//   - Time O(n), Space O(n).
func (a *Array[T]) binary(b *Array[T], tag string, f func(x, y T) T) (*Array[T], error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(tag, ErrNilMatrix)
	}
	if len(a.data) != len(b.data) {
		return nil, matrixErrorf(tag, ErrDimensionMismatch)
	}
	out := make([]T, len(a.data))
	var i int
	for i = range out {
		out[i] = f(a.data[i], b.data[i])
	}

	return &Array[T]{data: out}, nil
}

// unary maps f over every element into a fresh Array.
func (a *Array[T]) unary(f func(x T) T) *Array[T] {
	if a == nil {
		return nil
	}
	out := make([]T, len(a.data))
	var i int
	for i = range out {
		out[i] = f(a.data[i])
	}

	return &Array[T]{data: out}
}

// Add returns a + b elementwise. Lengths must match (ErrDimensionMismatch).
func (a *Array[T]) Add(b *Array[T]) (*Array[T], error) {
	return a.binary(b, ctxArrayAdd, func(x, y T) T { return x + y })
}

// Sub returns a - b elementwise. Lengths must match (ErrDimensionMismatch).
func (a *Array[T]) Sub(b *Array[T]) (*Array[T], error) {
	return a.binary(b, ctxArraySub, func(x, y T) T { return x - y })
}

// Mul returns the elementwise (Hadamard) product a ⊙ b.
func (a *Array[T]) Mul(b *Array[T]) (*Array[T], error) {
	return a.binary(b, ctxArrayMul, func(x, y T) T { return x * y })
}

// Scale returns v * a[i] for every element.
func (a *Array[T]) Scale(v T) *Array[T] {
	return a.unary(func(x T) T { return x * v })
}

// AddScalar returns a[i] + v for every element.
func (a *Array[T]) AddScalar(v T) *Array[T] {
	return a.unary(func(x T) T { return x + v })
}

// SubScalar returns a[i] - v for every element.
func (a *Array[T]) SubScalar(v T) *Array[T] {
	return a.unary(func(x T) T { return x - v })
}

// Max returns max(a[i], v) for every element.
func (a *Array[T]) Max(v T) *Array[T] {
	return a.unary(func(x T) T { return max(x, v) })
}

// Abs returns |a[i]| for every element.
func (a *Array[T]) Abs() *Array[T] {
	return a.unary(absOf[T])
}

// Sign returns +1 where a[i] > 0 and -1 otherwise. Zero maps to -1.
func (a *Array[T]) Sign() *Array[T] {
	return a.unary(func(x T) T {
		var one T = 1
		if x > 0 {
			return one
		}

		return -one
	})
}

// MaxInPlace replaces every element with max(a[i], v).
func (a *Array[T]) MaxInPlace(v T) {
	if a == nil {
		return
	}
	var i int
	for i = range a.data {
		a.data[i] = max(a.data[i], v)
	}
}

// AbsInPlace replaces every element with its absolute value.
func (a *Array[T]) AbsInPlace() {
	if a == nil {
		return
	}
	var i int
	for i = range a.data {
		a.data[i] = absOf(a.data[i])
	}
}

// Equal reports whether a and b have the same length and identical elements.
// Arrays of different lengths are never equal.
func (a *Array[T]) Equal(b *Array[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	var i int
	for i = 0; i < a.Len(); i++ {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// String renders "Array<n>{a, b, c}" with DefaultPrecision fractional digits.
func (a *Array[T]) String() string {
	var b strings.Builder
	n := a.Len()
	b.WriteString("Array<")
	b.WriteString(strconv.Itoa(n))
	b.WriteString(">{")
	var i int
	for i = 0; i < n; i++ {
		b.WriteString(formatElem(a.data[i], DefaultPrecision))
		if i != n-1 {
			b.WriteString(_fmtSep)
		}
	}
	b.WriteString("}")

	return b.String()
}

// absOf returns |x|.
func absOf[T Number](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

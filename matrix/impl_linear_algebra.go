// SPDX-License-Identifier: MIT
// Package matrix provides the shape-aware operations of MatrixX: element-wise
// addition and subtraction, scaling, matrix multiplication, transpose,
// Gauss-Jordan inversion, cofactor-expansion determinant, trace, vector norms,
// sub-matrix extraction and the symmetry/definiteness tests.
//
// Purpose:
//   - Every kernel validates through validators.go and wraps sentinels with an
//     operation tag via matrixErrorf.
//   - Operands are never mutated; each kernel allocates a fresh result.
//   - Loop orders are fixed (i→j→k) so results are bitwise reproducible.

package matrix

import "math"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opTranspose = "T"
	opInverse   = "Inv"
	opDet       = "Det"
	opTrace     = "Trace"
	opNorm1     = "Norm1"
	opNorm2     = "Norm2"
	opSubmatrix = "Submatrix"
	opIsPD      = "IsPD"
	opIsPSD     = "IsPSD"
	opAllClose  = "AllClose"
)

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation, and the flat loop.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b).
//   - Stage 2: single flat loop 0..n-1 into a fresh buffer.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub[T Number](a, b *MatrixX[T], neg bool, opTag string) (*MatrixX[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	out := make([]T, a.Len())
	var i int
	if neg {
		for i = range out {
			out[i] = a.arr.data[i] - b.arr.data[i]
		}
	} else {
		for i = range out {
			out[i] = a.arr.data[i] + b.arr.data[i]
		}
	}

	return &MatrixX[T]{r: a.r, c: a.c, arr: &Array[T]{data: out}}, nil
}

// Add returns m + o. Shapes must be identical (ErrDimensionMismatch).
func (m *MatrixX[T]) Add(o *MatrixX[T]) (*MatrixX[T], error) { return addSub(m, o, false, opAdd) }

// Sub returns m - o. Shapes must be identical (ErrDimensionMismatch).
func (m *MatrixX[T]) Sub(o *MatrixX[T]) (*MatrixX[T], error) { return addSub(m, o, true, opSub) }

// Scale returns v*m for any shape.
// Errors: ErrNilMatrix, ErrInvalidDimensions for a released receiver.
// Complexity: O(r*c).
func (m *MatrixX[T]) Scale(v T) (*MatrixX[T], error) {
	if err := validateLive(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return &MatrixX[T]{r: m.r, c: m.c, arr: m.arr.Scale(v)}, nil
}

// ScaleLeft returns v*m; it is the left-scalar spelling of m.Scale(v).
func ScaleLeft[T Number](v T, m *MatrixX[T]) (*MatrixX[T], error) { return m.Scale(v) }

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b) (a.Cols == b.Rows).
//   - Stage 2: triple loop i→j→k; each C[i,j] is the dot product of row i of A
//     and column j of B, accumulated in a local before the store.
//
// Returns:
//   - *MatrixX shaped (a.Rows, b.Cols).
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrDimensionMismatch (wrapped with "Mul").
//
// Complexity:
//   - Time O(r*c*k), Space O(r*c).
func (m *MatrixX[T]) Mul(o *MatrixX[T]) (*MatrixX[T], error) {
	if err := ValidateMulCompatible(m, o); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	rows, inner, cols := m.r, m.c, o.c
	out := make([]T, rows*cols)
	a, b := m.arr.data, o.arr.data

	var i, j, k, base int
	var sum T
	for i = 0; i < rows; i++ {
		base = i * inner
		for j = 0; j < cols; j++ {
			sum = 0
			for k = 0; k < inner; k++ {
				sum += a[base+k] * b[k*cols+j]
			}
			out[i*cols+j] = sum
		}
	}

	return &MatrixX[T]{r: rows, c: cols, arr: &Array[T]{data: out}}, nil
}

// T returns the transpose: a (cols×rows) matrix with out(c, r) = m(r, c).
// Defined for every rectangular shape.
// Errors: ErrNilMatrix, ErrInvalidDimensions for a released receiver.
// Complexity: O(r*c).
func (m *MatrixX[T]) T() (*MatrixX[T], error) {
	if err := validateLive(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out := make([]T, m.Len())
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out[j*m.r+i] = m.arr.data[i*m.c+j]
		}
	}

	return &MatrixX[T]{r: m.c, c: m.r, arr: &Array[T]{data: out}}, nil
}

// Inv computes m⁻¹ by Gauss-Jordan elimination on the augmented pair (A | I).
//
// Implementation:
//   - Stage 1: ValidateSquare; copy A into a working buffer, start the accumulator at I.
//   - Stage 2: for each pivot column c:
//     (a) when |A[c,c]| <= eps, swap in the first lower row with a usable entry
//     in column c, in both the working matrix and the accumulator;
//     (b) divide the pivot row by the pivot value;
//     (c) subtract the right multiple of the pivot row from every other row.
//   - Stage 3: return the accumulator.
//
// Behavior highlights:
//   - Singular policy: by default a column without a usable pivot yields
//     ErrSingular. WithNonFiniteInverse() keeps going and lets the division by
//     zero produce ±Inf/NaN for floating types. Integer types always report
//     ErrSingular, since integer division by zero cannot yield a value.
//   - Integer element types divide with truncation.
//
// Options:
//   - WithEpsilon(eps): pivot tolerance (default 0, exact).
//   - WithSingularError() / WithNonFiniteInverse(): singular policy.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrNonSquare, ErrSingular (wrapped with "Inv").
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// AI-Hints:
//   - Verify with AllClose(A.Mul(Ainv), Eye(n)); exact Equal rarely holds for floats.
func (m *MatrixX[T]) Inv(opts ...Option) (*MatrixX[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)
	n := m.r
	work := m.arr.Clone().data // working copy of A
	acc := make([]T, n*n)      // accumulator, starts at I
	var i int
	for i = 0; i < n; i++ {
		acc[i*n+i] = 1
	}

	failOnZero := o.singularError || !isFloat[T]()

	var c, r, k int
	var pivot, factor T
	for c = 0; c < n; c++ {
		// (a) pivot search among the rows below.
		if isZeroPivot(work[c*n+c], o.eps) {
			for r = c + 1; r < n; r++ {
				if !isZeroPivot(work[r*n+c], o.eps) {
					swapRows(work, n, c, r)
					swapRows(acc, n, c, r)
					break
				}
			}
		}
		pivot = work[c*n+c]
		if failOnZero && isZeroPivot(pivot, o.eps) {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}

		// (b) normalize the pivot row.
		for k = 0; k < n; k++ {
			work[c*n+k] /= pivot
			acc[c*n+k] /= pivot
		}

		// (c) eliminate column c from every other row.
		for r = 0; r < n; r++ {
			if r == c {
				continue
			}
			factor = work[r*n+c]
			for k = 0; k < n; k++ {
				acc[r*n+k] -= acc[c*n+k] * factor
				work[r*n+k] -= factor * work[c*n+k]
			}
		}
	}

	return &MatrixX[T]{r: n, c: n, arr: &Array[T]{data: acc}}, nil
}

// isZeroPivot reports |v| <= eps (exact zero test when eps == 0).
func isZeroPivot[T Number](v T, eps float64) bool {
	if eps == 0 {
		return v == 0
	}

	return math.Abs(float64(v)) <= eps
}

// swapRows exchanges rows r1 and r2 of a row-major n-column buffer.
func swapRows[T Number](data []T, n, r1, r2 int) {
	var k int
	for k = 0; k < n; k++ {
		data[r1*n+k], data[r2*n+k] = data[r2*n+k], data[r1*n+k]
	}
}

// Det returns the determinant by recursive cofactor expansion along the first row.
//
// Implementation:
//   - Base cases: 1×1 returns the sole element; 2×2 returns ad − bc.
//   - General case: for every column c of row 0, build the (n−1)×(n−1) minor
//     without row 0 and column c, recurse, and accumulate sign(c)·a[0,c]·det(minor),
//     with sign alternating from + at c = 0.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrNonSquare (wrapped with "Det").
//
// Complexity:
//   - Time O(n!), Space O(n²) per recursion level. Intended for small matrices.
func (m *MatrixX[T]) Det() (T, error) {
	if err := ValidateSquare(m); err != nil {
		var zero T
		return zero, matrixErrorf(opDet, err)
	}

	return cofactorDet(m.arr.data, m.r), nil
}

// cofactorDet expands a row-major n×n buffer along its first row.
func cofactorDet[T Number](a []T, n int) T {
	switch n {
	case 1:
		return a[0]
	case 2:
		return a[0]*a[3] - a[2]*a[1]
	}

	var result T
	minor := make([]T, (n-1)*(n-1)) // reused across columns
	var c, mr, mc, cc int
	var sign T = 1
	for c = 0; c < n; c++ {
		for mr = 1; mr < n; mr++ {
			cc = 0
			for mc = 0; mc < n; mc++ {
				if mc == c {
					continue
				}
				minor[(mr-1)*(n-1)+cc] = a[mr*n+mc]
				cc++
			}
		}
		result += sign * a[c] * cofactorDet(minor, n-1)
		sign = -sign
	}

	return result
}

// Trace returns the sum of the main diagonal of a square matrix.
// Complexity: O(n).
func (m *MatrixX[T]) Trace() (T, error) {
	var sum T
	if err := ValidateSquare(m); err != nil {
		return sum, matrixErrorf(opTrace, err)
	}
	var i int
	for i = 0; i < m.r; i++ {
		sum += m.arr.data[i*m.c+i]
	}

	return sum, nil
}

// Norm2 returns the Euclidean norm sqrt(Σ xᵢ²) of a column vector.
// The square root is taken in float64 and converted back to T, so integer
// element types truncate.
// Errors: ErrNotVector when cols != 1.
func (m *MatrixX[T]) Norm2() (T, error) {
	if err := ValidateVector(m); err != nil {
		var zero T
		return zero, matrixErrorf(opNorm2, err)
	}
	var sum T
	for _, v := range m.arr.data {
		sum += v * v
	}

	return T(math.Sqrt(float64(sum))), nil
}

// Norm1 returns Σ |xᵢ| of a column vector.
// Errors: ErrNotVector when cols != 1.
func (m *MatrixX[T]) Norm1() (T, error) {
	if err := ValidateVector(m); err != nil {
		var zero T
		return zero, matrixErrorf(opNorm1, err)
	}
	var sum T
	for _, v := range m.arr.data {
		sum += absOf(v)
	}

	return sum, nil
}

// Submatrix copies the rows×cols block whose top-left corner is (sr, sc).
//
// Behavior highlights:
//   - Requesting the whole matrix returns an independent copy equal to m.
//   - The block is copied row-major; the result never shares storage with m.
//
// Errors:
//   - ErrInvalidDimensions when rows or cols is non-positive.
//   - ErrOutOfRange when sr < 0, sc < 0, or the block leaves the matrix.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func (m *MatrixX[T]) Submatrix(sr, sc, rows, cols int) (*MatrixX[T], error) {
	if err := validateLive(m); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opSubmatrix, ErrInvalidDimensions)
	}
	if sr < 0 || sc < 0 || sr+rows > m.r || sc+cols > m.c {
		return nil, matrixErrorf(opSubmatrix, ErrOutOfRange)
	}
	if sr == 0 && sc == 0 && rows == m.r && cols == m.c {
		return m.Clone(), nil
	}

	out := make([]T, rows*cols)
	var i int
	for i = 0; i < rows; i++ {
		copy(out[i*cols:(i+1)*cols], m.arr.data[(sr+i)*m.c+sc:(sr+i)*m.c+sc+cols])
	}

	return &MatrixX[T]{r: rows, c: cols, arr: &Array[T]{data: out}}, nil
}

// IsSym reports whether m equals its transpose exactly.
// 1×1 matrices are symmetric; non-square, nil and released matrices are not.
// Complexity: O(n²) on the upper triangle.
func (m *MatrixX[T]) IsSym() bool {
	if ValidateSquare(m) != nil {
		return false
	}
	if m.r == 1 {
		return true
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = i + 1; j < m.c; j++ {
			if m.arr.data[i*m.c+j] != m.arr.data[j*m.c+i] {
				return false
			}
		}
	}

	return true
}

// IsPD reports positive definiteness by a Sylvester-style principal-minor test.
//
// Implementation:
//   - For i = 0..n−1 take the trailing principal block starting at (i, i) of
//     size (n−i)×(n−i) and require det > 0.
//
// Notes:
//   - Trailing minors are used, not the leading ones of the textbook criterion.
//     Both are valid for symmetric input; symmetry is not checked here, so
//     callers with possibly non-symmetric input should check IsSym first.
//
// Complexity:
//   - n determinants of sizes n..1, dominated by O(n!).
func (m *MatrixX[T]) IsPD() (bool, error) { return m.definite(false, opIsPD) }

// IsPSD is IsPD with det >= 0 accepted for every trailing principal minor.
func (m *MatrixX[T]) IsPSD() (bool, error) { return m.definite(true, opIsPSD) }

func (m *MatrixX[T]) definite(semi bool, opTag string) (bool, error) {
	if err := ValidateSquare(m); err != nil {
		return false, matrixErrorf(opTag, err)
	}
	n := m.r
	var i int
	var d T
	for i = 0; i < n; i++ {
		block, err := m.Submatrix(i, i, n-i, n-i)
		if err != nil {
			return false, matrixErrorf(opTag, err)
		}
		d = cofactorDet(block.arr.data, n-i)
		if d < 0 || (!semi && d == 0) {
			return false, nil
		}
	}

	return true, nil
}

// AllClose reports whether a and b have the same shape and
// |a[i]−b[i]| <= atol + rtol*|b[i]| for every element (computed in float64).
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrDimensionMismatch (wrapped with "AllClose").
//
// Complexity:
//   - Time O(r*c), Space O(1).
func AllClose[T Number](a, b *MatrixX[T], rtol, atol float64) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	var i int
	var x, y float64
	for i = range a.arr.data {
		x, y = float64(a.arr.data[i]), float64(b.arr.data[i])
		if math.IsNaN(x) || math.IsNaN(y) {
			return false, nil
		}
		if math.Abs(x-y) > atol+rtol*math.Abs(y) {
			return false, nil
		}
	}

	return true, nil
}

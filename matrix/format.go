// SPDX-License-Identifier: MIT

// Package matrix - text rendering for MatrixX and Array.
//
// Layout: "Matrix<rows, cols>{", then for every row a newline, two spaces and
// each element followed by ", ", then "\n}". A 2×2 identity renders as
// "Matrix<2, 2>{\n  1.00, 0.00, \n  0.00, 1.00, \n}".
//
// Elements are printed in fixed-point notation with DefaultPrecision
// fractional digits regardless of the element type. Rendering is a debugging
// aid; it is not a serialization format.
package matrix

import (
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen    = "Matrix<"
	_fmtDimSep  = ", "
	_fmtBody    = ">{"
	_fmtRowLead = "\n  "
	_fmtSep     = ", "
	_fmtClose   = "\n}"
)

// String implements fmt.Stringer with DefaultPrecision.
func (m *MatrixX[T]) String() string { return m.Format() }

// Format renders m like String; WithPrecision(p) changes the number of
// fractional digits. Other options are ignored.
// Complexity: O(r*c).
func (m *MatrixX[T]) Format(opts ...Option) string {
	o := gatherOptions(opts...)
	var b strings.Builder
	var rows, cols int
	if m != nil {
		rows, cols = m.r, m.c
	}
	b.WriteString(_fmtOpen)
	b.WriteString(strconv.Itoa(rows))
	b.WriteString(_fmtDimSep)
	b.WriteString(strconv.Itoa(cols))
	b.WriteString(_fmtBody)

	var i int
	for i = 0; i < rows*cols; i++ {
		if i%cols == 0 {
			b.WriteString(_fmtRowLead)
		}
		b.WriteString(formatElem(m.arr.data[i], o.precision))
		b.WriteString(_fmtSep)
	}
	b.WriteString(_fmtClose)

	return b.String()
}

// formatElem prints v in fixed-point notation with prec fractional digits.
func formatElem[T Number](v T, prec int) string {
	return strconv.FormatFloat(float64(v), 'f', prec, 64)
}

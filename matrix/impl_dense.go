// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Deep-copy at every boundary (constructors, Clone, ToRows, Row, Col).
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Set: O(1); Clone/ToRows: O(r*c); Row: O(c); Col: O(r).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linalg/numeric"
	"github.com/katalvlaran/linalg/vector"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); both are fixed after construction.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[T numeric.Number] struct {
	r, c int // row and column counts (>=0)
	data []T // contiguous row-major storage (len == r*c)
}

var _ fmt.Stringer = (*Dense[float64])(nil)

// New creates an r×c zero matrix. A zero dimension is legal and yields an
// empty buffer (e.g. New(0, 3) has shape (0, 3)).
//
// Errors:
//   - ErrInvalidArgument if rows < 0, cols < 0, or rows*cols overflows int.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T numeric.Number](rows, cols int) (*Dense[T], error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, numeric.Errorf(ctxNew, err)
	}

	return newDense[T](rows, cols), nil
}

// newDense allocates without validation; callers guarantee validateDims(rows, cols).
func newDense[T numeric.Number](rows, cols int) *Dense[T] {
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}
}

// NewIdentity returns the n×n identity matrix.
func NewIdentity[T numeric.Number](n int) (*Dense[T], error) {
	if err := validateDims(n, n); err != nil {
		return nil, numeric.Errorf(ctxIdentity, err)
	}
	m := newDense[T](n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// FromRows builds a matrix from a rectangular nested slice, copying every
// element. Later writes to rows never reach the matrix.
//
// Implementation:
//   - Stage 1: validate len(rows) > 0, len(rows[0]) > 0 and that every row
//     has exactly len(rows[0]) elements.
//   - Stage 2: copy row by row into one flat buffer.
//
// Errors:
//   - ErrInvalidArgument on empty input, an empty row, or ragged rows.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows[T numeric.Number](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, numeric.Errorf(ctxFromRows, ErrInvalidArgument)
	}
	r, c := len(rows), len(rows[0])
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d: %w",
				ctxFromRows, i, len(rows[i]), c, ErrInvalidArgument)
		}
	}

	m := newDense[T](r, c)
	for i, row := range rows {
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// FromVectors builds a matrix whose i-th row is a copy of rows[i].
// The same shape rules as FromRows apply; a nil row is ErrInvalidArgument.
func FromVectors[T numeric.Number](rows ...*vector.Vector[T]) (*Dense[T], error) {
	if len(rows) == 0 {
		return nil, numeric.Errorf(ctxFromVectors, ErrInvalidArgument)
	}
	nested := make([][]T, len(rows))
	for i, v := range rows {
		if v == nil {
			return nil, fmt.Errorf("%s: row %d is nil: %w", ctxFromVectors, i, ErrInvalidArgument)
		}
		nested[i] = v.Slice()
	}

	return FromRows(nested)
}

// Rows returns the row count. A nil *Dense has shape (0, 0).
func (m *Dense[T]) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the column count.
func (m *Dense[T]) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// indexOf computes the row-major offset or returns ErrIndexOutOfBounds.
// The sentinel is returned bare; public methods wrap it with coordinates.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.Rows() {
		return 0, ErrIndexOutOfBounds
	}
	if col < 0 || col >= m.c {
		return 0, ErrIndexOutOfBounds
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrIndexOutOfBounds.
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return numeric.Zero[T](), numeric.IndexErrorf(ctxAt, err, row, col)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrIndexOutOfBounds.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return numeric.IndexErrorf(ctxSet, err, row, col)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i as a Vector of length Cols().
func (m *Dense[T]) Row(i int) (*vector.Vector[T], error) {
	if i < 0 || i >= m.Rows() {
		return nil, numeric.IndexErrorf(ctxRow, ErrIndexOutOfBounds, i)
	}

	return vector.Of(m.data[i*m.c : (i+1)*m.c]...), nil
}

// Col returns a copy of column j as a Vector of length Rows().
func (m *Dense[T]) Col(j int) (*vector.Vector[T], error) {
	if j < 0 || j >= m.Cols() {
		return nil, numeric.IndexErrorf(ctxCol, ErrIndexOutOfBounds, j)
	}
	out := make([]T, m.r)
	for i := range out {
		out[i] = m.data[i*m.c+j]
	}

	return vector.Of(out...), nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense[T]) Clone() *Dense[T] {
	out := newDense[T](m.Rows(), m.Cols())
	if m != nil {
		copy(out.data, m.data)
	}

	return out
}

// ToRows returns the elements as a freshly allocated nested slice.
func (m *Dense[T]) ToRows() [][]T {
	rows := make([][]T, m.Rows())
	for i := range rows {
		rows[i] = make([]T, m.c)
		copy(rows[i], m.data[i*m.c:(i+1)*m.c])
	}

	return rows
}

// Equal reports whether m and o have the same shape and equal elements.
// Comparison uses native ==, so NaN never compares equal.
func (m *Dense[T]) Equal(o *Dense[T]) bool {
	if m.Rows() != o.Rows() || m.Cols() != o.Cols() {
		return false
	}
	for idx := range m.Rows() * m.Cols() {
		if m.data[idx] != o.data[idx] {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line, e.g. "[1, 2]\n[3, 4]\n".
// Complexity: O(r*c).
func (m *Dense[T]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.Rows(); i++ { // iterate over rows
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ { // iterate over columns
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%v", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// Do visits every element in row-major order until f returns false.
// f must not mutate m; use Apply for that.
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		base := i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces every element with f(i, j, v) in row-major order and
// returns the receiver.
func (m *Dense[T]) Apply(f func(i, j int, v T) T) *Dense[T] {
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		base := i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}

	return m
}

// Package matrix: Matrix is the concrete, row-major generic matrix type,
// storing elements in a flat slice for performance and cache friendliness.
// This file holds the type, its constructors, and element-level access.
package matrix

import (
	"fmt"
	"strings"
)

// Matrix is a row-major r×c grid of Number values.
// rows/cols are the dimensions and data holds rows*cols elements in row-major
// order (cell (i,j) lives at data[i*cols+j]). transposed is a pure bookkeeping
// flag flipped by the in-place Transpose; it has no algorithmic effect.
//
// Matrix has value semantics at the API level: every operation that is not
// explicitly in-place returns a fresh, independent instance. A single instance
// must not be mutated from multiple goroutines concurrently; distinct
// instances are safe to use in parallel.
type Matrix[T Number] struct {
	rows, cols int  // dimensions, both >= 1 for any constructed matrix
	data       []T  // flat backing storage, length == rows*cols
	transposed bool // observable in-place-transpose parity; no algorithmic role
}

// newMatrix allocates a zeroed rows×cols matrix without validation.
// Internal fast path; callers MUST guarantee rows >= 1 and cols >= 1.
func newMatrix[T Number](rows, cols int) *Matrix[T] {
	return &Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
}

// New builds a matrix from nested row data.
// Stage 1 (Validate): outer slice non-empty, all rows of equal length >= 1.
// Stage 2 (Execute): copy rows into fresh flat storage.
// The input slices are copied, never aliased; later mutation of rows does not
// affect the returned matrix.
//
// Errors: ErrMalformedInput (empty outer slice, empty first row, ragged rows).
// Complexity: O(r*c) time and memory.
func New[T Number](rows [][]T) (*Matrix[T], error) {
	// Reject an empty outer sequence.
	if len(rows) == 0 {
		return nil, matrixErrorf(opNew, ErrMalformedInput)
	}
	// The first row fixes the column count; it must be non-empty.
	cols := len(rows[0])
	if cols == 0 {
		return nil, matrixErrorf(opNew, ErrMalformedInput)
	}
	// Every remaining row must match the first row's length.
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return nil, matrixErrorf(opNew, fmt.Errorf("row %d has %d cells, want %d: %w",
				i, len(rows[i]), cols, ErrMalformedInput))
		}
	}

	// Copy row by row into flat row-major storage.
	m := newMatrix[T](len(rows), cols)
	for i, row := range rows {
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// NewZeros creates a rows×cols matrix filled with the additive identity.
// Non-positive dimensions are rejected with ErrBadShape rather than silently
// accepted; a valid matrix always has at least one row and one column.
// Complexity: O(r*c) time and memory.
func NewZeros[T Number](rows, cols int) (*Matrix[T], error) {
	// Validate dimensions before allocation.
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opZeros, ErrBadShape)
	}

	return newMatrix[T](rows, cols), nil
}

// NewIdentity returns I_n: the n×n matrix with the multiplicative identity on
// the diagonal and the additive identity elsewhere.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity[T Number](n int) (*Matrix[T], error) {
	// Delegate shape validation to NewZeros.
	m, err := NewZeros[T](n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, ErrBadShape)
	}
	// Set the diagonal deterministically in a single loop.
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Handy to build a neutral element for Add-based identities.
func ZerosLike[T Number](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opZeros, err)
	}

	return newMatrix[T](m.rows, m.cols), nil
}

// IdentityLike returns I with dimension = m.Rows(); requires a square input.
func IdentityLike[T Number](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}

	return NewIdentity[T](m.rows)
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.cols }

// Size returns the (rows, cols) pair as a Size value. Complexity: O(1).
func (m *Matrix[T]) Size() Size { return Size{Rows: m.rows, Cols: m.cols} }

// IsTransposed reports whether the in-place Transpose has been applied an odd
// number of times to this instance. Pure bookkeeping: no operation changes its
// behavior based on this flag, and the pure Transposed kernel never sets it.
func (m *Matrix[T]) IsTransposed() bool { return m.transposed }

// inRange reports whether (i,j) addresses a valid cell.
func (m *Matrix[T]) inRange(i, j int) bool {
	return i >= 0 && i < m.rows && j >= 0 && j < m.cols
}

// At retrieves the element at (row, col).
// Out-of-bounds coordinates are a recoverable, typed failure (ErrOutOfRange)
// by contract — this package never terminates the process on bad indices.
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	if !m.inRange(row, col) {
		var zero T
		return zero, indexErrorf("At", row, col, ErrOutOfRange)
	}

	return m.data[row*m.cols+col], nil
}

// Set assigns value v at (row, col).
// Same bounds contract as At: ErrOutOfRange on violation, never a panic.
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	if !m.inRange(row, col) {
		return indexErrorf("Set", row, col, ErrOutOfRange)
	}
	m.data[row*m.cols+col] = v

	return nil
}

// Equal reports shape-aware structural equality: same Size and all
// corresponding cells equal. Matrices of differing size are NOT equal — this
// is a false report, never an error. Two nil matrices are equal.
// Complexity: O(r*c) worst case, O(1) on shape mismatch.
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	// nil handling: equality never fails, it only reports.
	if m == nil || o == nil {
		return m == nil && o == nil
	}
	// Shape gate first: differing sizes short-circuit to false.
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	// Flat cell-by-cell scan in deterministic order.
	for idx, v := range m.data {
		if v != o.data[idx] {
			return false
		}
	}

	return true
}

// Clone returns a deep copy of the matrix, including the transposed flag.
// The returned instance is fully independent of the original.
// Complexity: O(r*c) time and memory.
func (m *Matrix[T]) Clone() *Matrix[T] {
	cp := newMatrix[T](m.rows, m.cols)
	copy(cp.data, m.data)
	cp.transposed = m.transposed

	return cp
}

// String implements fmt.Stringer for easy debugging: one bracketed line per
// row, e.g. "[1, 2]\n[3, 4]\n". Not a stable serialization format.
// Complexity: O(r*c).
func (m *Matrix[T]) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		b.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%v", m.data[i*m.cols+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}

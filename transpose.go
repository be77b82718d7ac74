// SPDX-License-Identifier: MIT
// Package matrix: structural transforms (pure and in-place transpose).

package matrix

// Transposed returns a new (cols × rows) matrix with result[j,i] = m[i,j].
// The receiver is never mutated and its transposed flag is NOT copied or
// flipped: a freshly built transpose starts with a clean flag.
//
// Errors: ErrNilMatrix. Complexity: Time O(r*c), Space O(r*c).
func Transposed[T Number](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Allocate the result with flipped dimensions and map cells directly:
	// data[i*cols + j] → res.data[j*rows + i].
	res := newMatrix[T](m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		base := i * m.cols
		for j := 0; j < m.cols; j++ {
			res.data[j*m.rows+i] = m.data[base+j]
		}
	}

	return res, nil
}

// Transpose rebuilds the receiver in place with swapped row/column roles,
// updates its Size to the swapped dimensions, and flips IsTransposed.
//
// Atomicity: the replacement storage is fully built before any field of the
// receiver changes, so an observer (in the single-goroutine contract) never
// sees old shape with new data or vice versa.
//
// Complexity: Time O(r*c), Space O(r*c) transient for the rebuilt slice.
func (m *Matrix[T]) Transpose() {
	// Build the swapped storage first; do not touch receiver state yet.
	next := make([]T, len(m.data))
	for i := 0; i < m.rows; i++ {
		base := i * m.cols
		for j := 0; j < m.cols; j++ {
			next[j*m.rows+i] = m.data[base+j]
		}
	}

	// Publish the rebuilt state: storage, swapped dims, flipped parity.
	m.data = next
	m.rows, m.cols = m.cols, m.rows
	m.transposed = !m.transposed
}

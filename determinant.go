// SPDX-License-Identifier: MIT
// Package matrix: determinant (Laplace cofactor expansion) and the boolean
// structural predicates built on it.

package matrix

// Det computes the determinant via Laplace expansion along the first row:
//
//	det = Σ_{j} sign(j) * m[0,j] * det(minor(0,j)),  sign(j) = (-1)^j,
//
// where minor(0,j) is the unchecked removal of row 0 and column j.
//
// This is the naive cofactor algorithm — exponential time by intentional
// design (no elimination-based shortcut), matching the package's exact-ring
// arithmetic: integer instantiations stay exact, with no division anywhere.
//
// Implementation:
//   - Stage 1: ValidateSquare (ErrNilMatrix / ErrNonSquare for non-square).
//   - Stage 2: pure recursion over freshly built minors; 1×1 base case
//     returns the sole cell. No shared mutable accumulator.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: Time O(n!), Space O(n^2) per recursion level.
func (m *Matrix[T]) Det() (T, error) {
	var zero T
	if err := ValidateSquare(m); err != nil {
		return zero, matrixErrorf(opDet, err)
	}

	return m.det(), nil
}

// det is the unchecked recursive kernel behind Det.
// Callers MUST guarantee the receiver is square.
func (m *Matrix[T]) det() T {
	// Base case: the determinant of a 1×1 matrix is its sole cell.
	if m.rows == 1 {
		return m.data[0]
	}

	// Expand along row 0 with alternating sign.
	var acc T
	sign := T(1)
	for j := 0; j < m.cols; j++ {
		pivot := m.data[j] // cell (0, j)
		if pivot != 0 {
			acc += sign * pivot * m.minorUnchecked(0, j).det()
		}
		sign = -sign
	}

	return acc
}

// IsSquare reports whether the matrix has as many rows as columns.
// Complexity: O(1).
func (m *Matrix[T]) IsSquare() bool {
	return m.rows == m.cols
}

// IsDegenerate reports whether the determinant equals the additive identity.
// A non-square receiver has no determinant: that is a typed ErrNonSquare
// failure, not a boolean answer and not a crash.
// Complexity: same as Det.
func (m *Matrix[T]) IsDegenerate() (bool, error) {
	d, err := m.Det()
	if err != nil {
		return false, err
	}

	return d == 0, nil
}

// IsSymmetric reports whether the matrix is square and equals its transpose,
// i.e. m[i,j] == m[j,i] for all cells. Compared by direct upper-triangle scan;
// semantically identical to Transposed(m).Equal(m) without the copy.
// Complexity: Time O(n^2), Space O(1).
func (m *Matrix[T]) IsSymmetric() bool {
	if m.rows != m.cols {
		return false
	}
	n := m.rows
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m.data[i*n+j] != m.data[j*n+i] {
				return false
			}
		}
	}

	return true
}

// IsAntisymmetric reports whether the matrix is square and equals the negation
// of its transpose, i.e. m[i,j] == -m[j,i] for all cells (the diagonal must be
// zero). Semantically identical to comparing against Neg(Transposed(m)).
// Complexity: Time O(n^2), Space O(1).
func (m *Matrix[T]) IsAntisymmetric() bool {
	if m.rows != m.cols {
		return false
	}
	n := m.rows
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ { // j == i covers the zero-diagonal requirement
			if m.data[i*n+j] != -m.data[j*n+i] {
				return false
			}
		}
	}

	return true
}

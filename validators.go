// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels/facades minimal by delegating shape/nil/index checks here.
//   - Return plain sentinel errors (no operation tag) so call sites can wrap
//     uniformly via matrixErrorf.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Index-set validation runs O(k) over the supplied indices.

package matrix

import "fmt"

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil[T Number](m *Matrix[T]) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Returns ErrDimensionMismatch on violation. Complexity: O(1).
func ValidateSameShape[T Number](a, b *Matrix[T]) error {
	if a.rows != b.rows || a.cols != b.cols {
		return fmt.Errorf("%dx%d vs %dx%d: %w", a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateBinarySameShape[T Number](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateMulCompatible[T Number](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.cols != b.rows {
		return fmt.Errorf("inner %d vs %d: %w", a.cols, b.rows, ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare is the composite NotNil → square (Rows == Cols).
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(1).
func ValidateSquare[T Number](m *Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.rows != m.cols {
		return fmt.Errorf("%dx%d: %w", m.rows, m.cols, ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil and its length matches n.
// Errors: ErrNilMatrix (nil argument), ErrDimensionMismatch. Complexity: O(1).
func ValidateVecLen[T Number](x []T, n int) error {
	if x == nil {
		return ErrNilMatrix
	}
	if len(x) != n {
		return fmt.Errorf("vector length %d, want %d: %w", len(x), n, ErrDimensionMismatch)
	}

	return nil
}

// validateIndexSet checks that every index in idx lies in [0, limit).
// Returns ErrOutOfRange with the offending index on violation.
// Complexity: O(k) for k indices, no allocations on the happy path.
func validateIndexSet(idx []int, limit int) error {
	for _, v := range idx {
		if v < 0 || v >= limit {
			return fmt.Errorf("index %d outside [0,%d): %w", v, limit, ErrOutOfRange)
		}
	}

	return nil
}

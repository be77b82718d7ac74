// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation may panic on user-triggered error conditions.
// Panics are reserved for programmer errors in private helpers (if any).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// An invalid operation never yields a placeholder value: failures always
// surface as a typed sentinel, distinguishable by kind.

var (
	// ErrMalformedInput is returned by construction when the supplied rows are
	// empty or ragged (two rows of different length).
	ErrMalformedInput = errors.New("matrix: malformed input rows")

	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	// Constructors must validate shape before allocation.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) and Choose/Remove MUST return this,
	// not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrEmptySelection signals that Choose/Remove ended up with an empty row or
	// column index set (either supplied empty, or everything was removed).
	ErrEmptySelection = errors.New("matrix: empty index selection")

	// ErrNegativePower marks a negative exponent passed to Pow; inverse powers
	// are intentionally unsupported (no division on the element type).
	ErrNegativePower = errors.New("matrix: negative power")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNew       = "New"
	opZeros     = "NewZeros"
	opIdentity  = "NewIdentity"
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opNeg       = "Neg"
	opHadamard  = "Hadamard"
	opMatVec    = "MatVec"
	opTrace     = "Trace"
	opPow       = "Pow"
	opTranspose = "Transpose"
	opChoose    = "Choose"
	opRemove    = "Remove"
	opDet       = "Det"
	opParse     = "Parse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w. The wrapper keeps a stable "Op: underlying" shape for uniform
// reporting across the package. Use only when err != nil.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexErrorf wraps an underlying error with method and coordinate context,
// e.g. "Matrix.At(3,0): matrix: index out of range".
func indexErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// SPDX-License-Identifier: MIT

// Package matrix: domain types shared across constructors and kernels.
// This file intentionally contains ONLY domain-facing types (the element
// constraint and the Size pair). Errors live in errors.go, validators in
// validators.go, per the package conventions.
package matrix

// Number is the element type set accepted by Matrix: signed integers and
// floats. Signedness is required because unary negation and the alternating
// cofactor sign need an exact -1; unsigned integers are excluded on purpose.
// All four ring operations (+, -, *, accumulation via +=) must be exact for
// integer instantiations; float instantiations follow IEEE-754 as usual.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Size is a (rows, columns) pair describing matrix dimensions.
// Equality is componentwise; Size has plain value semantics.
type Size struct {
	Rows int // number of rows, >= 1 for any constructed matrix
	Cols int // number of columns, >= 1 for any constructed matrix
}

// Equal reports componentwise equality of two sizes.
// Complexity: O(1).
func (s Size) Equal(o Size) bool {
	return s.Rows == o.Rows && s.Cols == o.Cols
}

// SPDX-License-Identifier: MIT
// Package matrix: elementwise and multiplicative kernels.
// All kernels perform strict fail-fast validation via the central validators,
// allocate exactly one fresh result, never mutate their operands, and walk
// cells in a fixed order for deterministic results. A shape mismatch is a
// typed failure (ErrDimensionMismatch) — never a placeholder result.

package matrix

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation and the loop.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b); allocate result.
//   - Stage 2: single flat loop 0..n-1 over the backing slices.
//
// Complexity: Time O(r*c), Space O(r*c) for the fresh result.
func addSub[T Number](a, b *Matrix[T], sign T, opTag string) (*Matrix[T], error) {
	// Validate both operands are non-nil and have identical shapes.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Single allocation; flat deterministic walk.
	res := newMatrix[T](a.rows, a.cols)
	for idx := range res.data {
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add computes the elementwise sum C = A + B into a fresh result.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: Time O(r*c), Space O(r*c).
func Add[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return addSub(a, b, 1, opAdd) }

// Sub computes the elementwise difference C = A - B into a fresh result.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: Time O(r*c), Space O(r*c).
func Sub[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (non-nil, A.Cols == B.Rows); allocate C.
//   - Stage 2: i→k→j triple loop with row-major strides; zero A[i,k] entries
//     are skipped to avoid useless multiplies.
//
// Behavior highlights:
//   - Deterministic accumulation order; each C[i,j] = Σ_k A[i,k]*B[k,j]
//     accumulated in T arithmetic. No fast multiplication algorithm.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (inner dimensions disagree).
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	// Validate inputs via the canonical validator.
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res := newMatrix[T](a.rows, b.cols)
	var av T
	var rowA, rowB, rowR int // row base offsets into the flat slices
	for i := 0; i < a.rows; i++ {
		rowA = i * a.cols
		rowR = i * b.cols
		for k := 0; k < a.cols; k++ {
			av = a.data[rowA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowB = k * b.cols
			for j := 0; j < b.cols; j++ {
				res.data[rowR+j] += av * b.data[rowB+j]
			}
		}
	}

	return res, nil
}

// Scale returns a new matrix whose cells are alpha * m[i,j].
// Scalar multiplication is commutative by definition here: scalar×matrix and
// matrix×scalar are the same operation, and both spell Scale(m, alpha).
// Errors: ErrNilMatrix. Complexity: Time O(r*c), Space O(r*c).
func Scale[T Number](m *Matrix[T], alpha T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res := newMatrix[T](m.rows, m.cols)
	for idx, v := range m.data {
		res.data[idx] = v * alpha
	}

	return res, nil
}

// ScaleInPlace multiplies every cell of the receiver by alpha, in place.
// The compound form of Scale; shape and the transposed flag are untouched.
// Complexity: Time O(r*c), Space O(1).
func (m *Matrix[T]) ScaleInPlace(alpha T) {
	for idx := range m.data {
		m.data[idx] *= alpha
	}
}

// Neg returns the unary negation -m, defined as scalar multiplication by -1
// (the additive inverse of the multiplicative identity) rather than as a
// separate elementwise kernel.
// Errors: ErrNilMatrix. Complexity: Time O(r*c), Space O(r*c).
func Neg[T Number](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNeg, err)
	}

	return Scale(m, -1)
}

// Hadamard computes the elementwise product (a ⊙ b) into a fresh result.
// Hadamard ≠ matrix multiplication; use Mul for A×B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Hadamard[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	res := newMatrix[T](a.rows, a.cols)
	for idx := range res.data {
		res.data[idx] = a.data[idx] * b.data[idx]
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x with len(x) == m.Cols().
// One pass per row with flat indexing; zero x[j] entries are skipped.
// Errors: ErrNilMatrix, ErrDimensionMismatch (vector length).
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec[T Number](m *Matrix[T], x []T) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.cols); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]T, m.rows)
	var acc, xv T
	for i := 0; i < m.rows; i++ {
		acc = 0
		base := i * m.cols
		for j := 0; j < m.cols; j++ {
			xv = x[j]
			if xv == 0 {
				continue // skip zero multiplications
			}
			acc += m.data[base+j] * xv
		}
		y[i] = acc
	}

	return y, nil
}

// Trace returns the diagonal sum Σ_i m[i,i] of a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: Time O(n), Space O(1).
func Trace[T Number](m *Matrix[T]) (T, error) {
	var zero T
	if err := ValidateSquare(m); err != nil {
		return zero, matrixErrorf(opTrace, err)
	}

	acc := zero
	for i := 0; i < m.rows; i++ {
		acc += m.data[i*m.cols+i]
	}

	return acc, nil
}

// Pow returns m^k for a non-negative integer exponent via repeated Mul.
// k == 0 yields the identity of matching order. Inverse powers are not
// supported (no division on the element type); k < 0 is ErrNegativePower.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNegativePower.
// Complexity: Time O(k * n^3), Space O(n^2).
func Pow[T Number](m *Matrix[T], k int) (*Matrix[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	if k < 0 {
		return nil, matrixErrorf(opPow, ErrNegativePower)
	}

	// Start from I_n and fold m in k times; k==0 falls through to identity.
	res, err := NewIdentity[T](m.rows)
	if err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	for step := 0; step < k; step++ {
		res, err = Mul(res, m)
		if err != nil {
			return nil, matrixErrorf(opPow, err)
		}
	}

	return res, nil
}

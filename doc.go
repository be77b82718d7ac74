// SPDX-License-Identifier: MIT

// Package matrix is a self-contained generic dense matrix library over
// signed numeric element types.
//
// What it provides:
//   - Construction: New (nested rows), NewZeros, NewIdentity, Parse* helpers
//   - Access & equality: checked At/Set, shape-aware Equal, Clone
//   - Arithmetic: Add, Sub, Mul, Scale (+ ScaleInPlace), Neg, Hadamard,
//     MatVec, Trace, Pow
//   - Structural transforms: pure Transposed and in-place Transpose
//   - Submatrix machinery: Choose / Remove with order-independent,
//     deduplicated, bounds-checked index sets
//   - Determinant via Laplace cofactor expansion, plus the predicates
//     IsSquare, IsDegenerate, IsSymmetric, IsAntisymmetric
//
// Design rules:
//   - Every failure is a typed sentinel (errors.go) matched via errors.Is;
//     an impossible operation never yields a placeholder value.
//   - Operations that are not explicitly in-place return fresh, independent
//     instances; operands are never mutated or aliased.
//   - Loops run in fixed deterministic order; integer instantiations compute
//     exactly (no division anywhere in the package).
//   - The determinant is the naive cofactor expansion on purpose: exact,
//     simple, exponential. This package is not a numerical linear algebra
//     suite — no LU/QR, eigenvalues, solvers or sparse storage.
//
// Concurrency: a Matrix owns its storage exclusively. Distinct instances are
// safe to use from distinct goroutines; concurrent mutation of one instance
// must be serialized by the caller.
package matrix

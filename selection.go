// SPDX-License-Identifier: MIT
// Package matrix: submatrix selection (Choose) and removal (Remove).
// Both public entry points validate, normalize (dedupe + ascending sort, so
// caller-supplied order never affects the result) and then delegate to the
// unchecked chooseUnchecked kernel. The unchecked variants skip every guard
// and are reserved for internal hot paths (the determinant recursion); for
// valid inputs they produce results identical to the validated path.

package matrix

import "sort"

// normalizeIndexSet returns a sorted, duplicate-free copy of idx.
// The input slice is never mutated. Complexity: O(k log k).
func normalizeIndexSet(idx []int) []int {
	out := make([]int, len(idx))
	copy(out, idx)
	sort.Ints(out)

	// Compact adjacent duplicates in place.
	w := 0
	for r := 0; r < len(out); r++ {
		if r == 0 || out[r] != out[r-1] {
			out[w] = out[r]
			w++
		}
	}

	return out[:w]
}

// complementIndexSet returns the ascending complement of the sorted,
// duplicate-free set idx against the full range [0, limit).
// Complexity: O(limit).
func complementIndexSet(idx []int, limit int) []int {
	out := make([]int, 0, limit-len(idx))
	next := 0 // cursor into idx
	for v := 0; v < limit; v++ {
		if next < len(idx) && idx[next] == v {
			next++ // v is excluded
			continue
		}
		out = append(out, v)
	}

	return out
}

// chooseUnchecked builds the (len(rows) × len(cols)) submatrix with
// cell (i,j) = m[rows[i], cols[j]]. No validation: callers MUST guarantee
// both sets are non-empty, sorted, duplicate-free and in range.
// Complexity: Time O(|rows|*|cols|), Space O(|rows|*|cols|).
func (m *Matrix[T]) chooseUnchecked(rows, cols []int) *Matrix[T] {
	res := newMatrix[T](len(rows), len(cols))
	idx := 0 // write cursor into res.data, row-major
	for _, ri := range rows {
		base := ri * m.cols
		for _, cj := range cols {
			res.data[idx] = m.data[base+cj]
			idx++
		}
	}

	return res
}

// minorUnchecked builds the (r-1)×(c-1) matrix with row skipRow and column
// skipCol removed — the unchecked single-row/single-column Remove used on the
// determinant's recursive hot path. Callers MUST guarantee r >= 2, c >= 2 and
// valid skip coordinates.
// Complexity: Time O(r*c), Space O((r-1)*(c-1)).
func (m *Matrix[T]) minorUnchecked(skipRow, skipCol int) *Matrix[T] {
	res := newMatrix[T](m.rows-1, m.cols-1)
	idx := 0 // write cursor into res.data
	for i := 0; i < m.rows; i++ {
		if i == skipRow {
			continue
		}
		base := i * m.cols
		for j := 0; j < m.cols; j++ {
			if j == skipCol {
				continue
			}
			res.data[idx] = m.data[base+j]
			idx++
		}
	}

	return res
}

// Choose returns the submatrix selected by the given row and column index
// sets. Each set is deduplicated and sorted ascending before use, so
// Choose([2,1], [1,2]) and Choose([1,2], [2,1]) produce identical results.
//
// Implementation:
//   - Stage 1: reject empty sets (ErrEmptySelection); normalize both sets;
//     bounds-check every remaining index (ErrOutOfRange with the offender).
//   - Stage 2: delegate to the unchecked gather kernel.
//
// Errors: ErrNilMatrix, ErrEmptySelection, ErrOutOfRange.
// Complexity: Time O(k log k + |rows|*|cols|).
func (m *Matrix[T]) Choose(rowIdx, colIdx []int) (*Matrix[T], error) {
	if m == nil {
		return nil, matrixErrorf(opChoose, ErrNilMatrix)
	}
	// An empty selection on either axis cannot form a matrix.
	if len(rowIdx) == 0 || len(colIdx) == 0 {
		return nil, matrixErrorf(opChoose, ErrEmptySelection)
	}

	// Normalize: order-independence and duplicate tolerance by construction.
	rows := normalizeIndexSet(rowIdx)
	cols := normalizeIndexSet(colIdx)

	// Validate every surviving index against the current dimensions.
	if err := validateIndexSet(rows, m.rows); err != nil {
		return nil, matrixErrorf(opChoose, err)
	}
	if err := validateIndexSet(cols, m.cols); err != nil {
		return nil, matrixErrorf(opChoose, err)
	}

	return m.chooseUnchecked(rows, cols), nil
}

// Remove returns the submatrix left after dropping the given row and column
// index sets: the complement of each set against the full [0,rows)/[0,cols)
// range is computed and handed to the selection kernel. Empty input sets are
// allowed and remove nothing on that axis; removing every row or every column
// is ErrEmptySelection.
//
// Implementation:
//   - Stage 1: normalize and bounds-check the given sets (ErrOutOfRange);
//     build ascending complements; reject empty complements.
//   - Stage 2: delegate to the unchecked gather kernel — the complements are
//     sorted, unique and in range by construction.
//
// Errors: ErrNilMatrix, ErrOutOfRange, ErrEmptySelection.
// Complexity: Time O(k log k + rows + cols + result cells).
func (m *Matrix[T]) Remove(rowIdx, colIdx []int) (*Matrix[T], error) {
	if m == nil {
		return nil, matrixErrorf(opRemove, ErrNilMatrix)
	}

	// Normalize and validate the indices being removed.
	dropRows := normalizeIndexSet(rowIdx)
	dropCols := normalizeIndexSet(colIdx)
	if err := validateIndexSet(dropRows, m.rows); err != nil {
		return nil, matrixErrorf(opRemove, err)
	}
	if err := validateIndexSet(dropCols, m.cols); err != nil {
		return nil, matrixErrorf(opRemove, err)
	}

	// Complement against the full ranges; what survives is what we select.
	rows := complementIndexSet(dropRows, m.rows)
	cols := complementIndexSet(dropCols, m.cols)
	if len(rows) == 0 || len(cols) == 0 {
		return nil, matrixErrorf(opRemove, ErrEmptySelection)
	}

	return m.chooseUnchecked(rows, cols), nil
}

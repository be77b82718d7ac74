// Package matrix_test contains unit tests for the Choose/Remove submatrix
// machinery: normalization, validation and complement semantics.
package matrix_test

import (
	"testing"

	"github.com/lvlmath/matrix"
	"github.com/stretchr/testify/require"
)

// selectionFixture is the 3x4 grid shared by the selection tests.
func selectionFixture(t *testing.T) *matrix.Matrix[int] {
	t.Helper()
	return mustNew(t, [][]int{
		{1, 3, -5, 4},
		{3, 2, 7, 6},
		{-8, 4, 5, 2},
	})
}

// TestChooseKnown verifies a hand-checked selection.
func TestChooseKnown(t *testing.T) {
	m := selectionFixture(t)
	want := mustNew(t, [][]int{{3, 7, 6}, {-8, 5, 2}})

	got, err := m.Choose([]int{1, 2}, []int{0, 2, 3})
	require.NoError(t, err)
	require.True(t, want.Equal(got))
}

// TestChooseOrderIndependent ensures caller-supplied index order and
// duplicates never affect the result.
func TestChooseOrderIndependent(t *testing.T) {
	m := selectionFixture(t)

	a, err := m.Choose([]int{2, 1}, []int{1, 0})
	require.NoError(t, err)
	b, err := m.Choose([]int{1, 2}, []int{0, 1})
	require.NoError(t, err)
	require.True(t, a.Equal(b)) // order-insensitive by construction

	c, err := m.Choose([]int{1, 2, 1, 2}, []int{0, 0, 1})
	require.NoError(t, err)
	require.True(t, a.Equal(c)) // duplicates collapse
}

// TestChooseEmptySelection ensures empty index sets fail typed.
func TestChooseEmptySelection(t *testing.T) {
	m := selectionFixture(t)

	_, err := m.Choose(nil, []int{0})
	require.ErrorIs(t, err, matrix.ErrEmptySelection)
	_, err = m.Choose([]int{0}, []int{})
	require.ErrorIs(t, err, matrix.ErrEmptySelection)
}

// TestChooseOutOfRange ensures out-of-bounds indices fail typed.
func TestChooseOutOfRange(t *testing.T) {
	m := selectionFixture(t)

	_, err := m.Choose([]int{0, 3}, []int{0}) // row 3 does not exist
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Choose([]int{0}, []int{-1}) // negative column
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Choose([]int{0}, []int{4}) // column past the end
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestRemoveKnown verifies removal of one row and one column.
func TestRemoveKnown(t *testing.T) {
	m := selectionFixture(t)
	want := mustNew(t, [][]int{{3, 7, 6}, {-8, 5, 2}}) // rows {1,2} x columns {0,2,3}

	// Removing row 0 and column 1 keeps everything else.
	got, err := m.Remove([]int{0}, []int{1})
	require.NoError(t, err)
	require.Equal(t, 2, got.Rows()) // (n-1) rows
	require.Equal(t, 3, got.Cols()) // (m-1) columns
	require.True(t, want.Equal(got))
}

// TestRemoveIsComplementOfChoose checks Remove(R,C) == Choose(full\R, full\C).
func TestRemoveIsComplementOfChoose(t *testing.T) {
	m := selectionFixture(t)

	removed, err := m.Remove([]int{1}, []int{0, 3})
	require.NoError(t, err)
	chosen, err := m.Choose([]int{0, 2}, []int{1, 2}) // complements of {1} and {0,3}
	require.NoError(t, err)
	require.True(t, chosen.Equal(removed))
}

// TestRemoveNothing ensures empty removal sets leave the matrix unchanged.
func TestRemoveNothing(t *testing.T) {
	m := selectionFixture(t)

	got, err := m.Remove(nil, nil)
	require.NoError(t, err)
	require.True(t, m.Equal(got))
}

// TestRemoveEverything ensures removing all rows or columns fails typed.
func TestRemoveEverything(t *testing.T) {
	m := selectionFixture(t)

	_, err := m.Remove([]int{0, 1, 2}, nil) // all rows gone
	require.ErrorIs(t, err, matrix.ErrEmptySelection)
	_, err = m.Remove(nil, []int{0, 1, 2, 3}) // all columns gone
	require.ErrorIs(t, err, matrix.ErrEmptySelection)
}

// TestRemoveOutOfRange ensures the given indices themselves are validated.
func TestRemoveOutOfRange(t *testing.T) {
	m := selectionFixture(t)

	_, err := m.Remove([]int{5}, nil)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Remove(nil, []int{-2})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestChooseIndependence ensures the selected submatrix owns its storage.
func TestChooseIndependence(t *testing.T) {
	m := selectionFixture(t)

	got, err := m.Choose([]int{0}, []int{0, 1})
	require.NoError(t, err)

	require.NoError(t, got.Set(0, 0, 100)) // mutate the selection
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v) // source matrix is untouched
}

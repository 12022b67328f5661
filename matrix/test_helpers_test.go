// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and assertions shared by the
//     matrix tests.
//   • Keep fatal-on-error boilerplate out of individual tests.

package matrix_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/lvchess/matrix"
	"github.com/stretchr/testify/require"
)

// token is a pointer-typed element used to exercise absent-value checks and
// identity-based equality.
type token struct{ name string }

func (t *token) String() string { return t.name }

// MustFromRows builds a matrix from rows or fails the test.
func MustFromRows[X comparable](tb testing.TB, rows [][]X) *matrix.Matrix[X] {
	tb.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(tb, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt[X comparable](tb testing.TB, m *matrix.Matrix[X], i, j int) X {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// RequireRows compares the full contents of m against want via cmp.Diff.
func RequireRows[X comparable](tb testing.TB, want [][]X, m *matrix.Matrix[X]) {
	tb.Helper()
	if diff := cmp.Diff(want, m.Rows()); diff != "" {
		tb.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

// RequireShapeInvariant checks that m has Height() rows of Width() cells each.
func RequireShapeInvariant[X comparable](tb testing.TB, m *matrix.Matrix[X]) {
	tb.Helper()
	rows := m.Rows()
	require.Len(tb, rows, m.Height())
	for i, row := range rows {
		require.Lenf(tb, row, m.Width(), "row %d", i)
	}
}

// square2 is the [[1,2],[3,4]] fixture used throughout.
func square2(tb testing.TB) *matrix.Matrix[int] {
	tb.Helper()

	return MustFromRows(tb, [][]int{{1, 2}, {3, 4}})
}

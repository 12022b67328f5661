// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvchess/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Empty verifies the empty constructor yields a 0×0 matrix.
func TestNew_Empty(t *testing.T) {
	m := matrix.New[int]()
	require.Equal(t, 0, m.Height())
	require.Equal(t, 0, m.Width())
	require.Empty(t, m.Rows())
	require.Equal(t, "", m.String())
}

// TestZeroValue_IsEmpty ensures the zero Matrix behaves like New().
func TestZeroValue_IsEmpty(t *testing.T) {
	var m matrix.Matrix[string]
	require.Equal(t, 0, m.Height())
	require.Equal(t, 0, m.Width())
	require.True(t, m.Equal(matrix.New[string]()))
}

// TestNewFromRows_ShapeAndContent checks shape and deep contents.
func TestNewFromRows_ShapeAndContent(t *testing.T) {
	m := MustFromRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	require.Equal(t, 2, m.Height())
	require.Equal(t, 3, m.Width())
	RequireRows(t, [][]int{{1, 2, 3}, {4, 5, 6}}, m)
	RequireShapeInvariant(t, m)
}

// TestNewFromRows_Errors covers nil input, ragged rows and absent cells.
func TestNewFromRows_Errors(t *testing.T) {
	_, err := matrix.NewFromRows[int](nil)
	require.ErrorIs(t, err, matrix.ErrNilArgument)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)

	_, err = matrix.NewFromRows([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)

	_, err = matrix.NewFromRows([][]*token{{{name: "a"}, nil}})
	require.ErrorIs(t, err, matrix.ErrAbsentValue)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
}

// TestNewFromRows_EmptyInputIsValid: zero rows are vacuously uniform.
func TestNewFromRows_EmptyInputIsValid(t *testing.T) {
	m, err := matrix.NewFromRows([][]int{})
	require.NoError(t, err)
	require.Equal(t, 0, m.Height())
	require.Equal(t, 0, m.Width())
}

// TestNewFromRows_ZeroWidthRows keeps the height even when rows are empty.
func TestNewFromRows_ZeroWidthRows(t *testing.T) {
	m := MustFromRows(t, [][]int{{}, {}, {}})
	require.Equal(t, 3, m.Height())
	require.Equal(t, 0, m.Width())
	RequireShapeInvariant(t, m)
}

// TestNewFromRows_CopiesInput ensures later input mutation never leaks in.
func TestNewFromRows_CopiesInput(t *testing.T) {
	in := [][]int{{1, 2}, {3, 4}}
	m := MustFromRows(t, in)

	in[0][0] = 100
	in[1] = []int{7, 7}

	RequireRows(t, [][]int{{1, 2}, {3, 4}}, m)
}

// TestNewReplicated_Content checks each replicated row equals the input.
func TestNewReplicated_Content(t *testing.T) {
	m, err := matrix.NewReplicated([]string{"a", "b"}, 3)
	require.NoError(t, err)
	require.Equal(t, 3, m.Height())
	require.Equal(t, 2, m.Width())
	RequireRows(t, [][]string{{"a", "b"}, {"a", "b"}, {"a", "b"}}, m)
}

// TestNewReplicated_RowsAreIndependent is the regression test for shared
// row storage: mutating row 0 must leave rows 1 and 2 untouched.
func TestNewReplicated_RowsAreIndependent(t *testing.T) {
	row := []int{1, 2, 3}
	m, err := matrix.NewReplicated(row, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(9, 0, 1))
	RequireRows(t, [][]int{{1, 9, 3}, {1, 2, 3}, {1, 2, 3}}, m)

	// Input row is not aliased either.
	row[0] = -1
	assert.Equal(t, 1, MustAt(t, m, 2, 0))
}

// TestNewReplicated_Errors covers nil row, negative copies and absent cells.
func TestNewReplicated_Errors(t *testing.T) {
	_, err := matrix.NewReplicated[int](nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilArgument)

	_, err = matrix.NewReplicated([]int{1}, -1)
	require.ErrorIs(t, err, matrix.ErrNegativeCount)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)

	_, err = matrix.NewReplicated([]*token{nil}, 1)
	require.ErrorIs(t, err, matrix.ErrAbsentValue)
}

// TestNewReplicated_ZeroCopies yields an empty matrix.
func TestNewReplicated_ZeroCopies(t *testing.T) {
	m, err := matrix.NewReplicated([]int{1, 2}, 0)
	require.NoError(t, err)
	require.Equal(t, 0, m.Height())
	require.Equal(t, 0, m.Width())
}

// TestNewFilled_Uniform checks every cell equals the fill value.
func TestNewFilled_Uniform(t *testing.T) {
	m, err := matrix.NewFilled(7, 2, 3)
	require.NoError(t, err)
	RequireRows(t, [][]int{{7, 7, 7}, {7, 7, 7}}, m)
	RequireShapeInvariant(t, m)
}

// TestNewFilled_Errors covers absent value and negative counts.
func TestNewFilled_Errors(t *testing.T) {
	_, err := matrix.NewFilled[*token](nil, 1, 1)
	require.ErrorIs(t, err, matrix.ErrAbsentValue)

	_, err = matrix.NewFilled(1, -1, 1)
	require.ErrorIs(t, err, matrix.ErrNegativeCount)

	_, err = matrix.NewFilled(1, 1, -1)
	require.ErrorIs(t, err, matrix.ErrNegativeCount)
}

// TestNewFilled_AbsentInterfaceValue rejects a nil interface and a typed nil
// pointer stored in an interface.
func TestNewFilled_AbsentInterfaceValue(t *testing.T) {
	_, err := matrix.NewFilled[any](nil, 1, 1)
	require.ErrorIs(t, err, matrix.ErrAbsentValue)

	var typedNil *token
	_, err = matrix.NewFilled[any](typedNil, 1, 1)
	require.ErrorIs(t, err, matrix.ErrAbsentValue)
}

// TestConstructors_ShapeInvariant runs every valid construction path through
// the row-uniformity check.
func TestConstructors_ShapeInvariant(t *testing.T) {
	filled, err := matrix.NewFilled("x", 4, 2)
	require.NoError(t, err)
	replicated, err := matrix.NewReplicated([]string{"p", "q", "r"}, 5)
	require.NoError(t, err)

	cases := map[string]*matrix.Matrix[string]{
		"empty":      matrix.New[string](),
		"fromRows":   MustFromRows(t, [][]string{{"a"}, {"b"}}),
		"filled":     filled,
		"replicated": replicated,
	}
	for name, m := range cases {
		t.Run(name, func(t *testing.T) {
			RequireShapeInvariant(t, m)
		})
	}
}

// SPDX-License-Identifier: MIT

// Package matrix - safe accessors and in-place mutation.
//
// Purpose:
//   - Guarantee safety at the public surface: At/Set/Fill return errors
//     instead of panicking.
//   - Check every precondition before touching storage, so a failed call
//     leaves the matrix exactly as it was.
//   - Keep Set and Fill the only mutating operations in the package.
//
// Complexity quicksheet:
//   - At/Set: O(1); Fill, Rows, Clone: O(r*c).

package matrix

// ---------- error context tags ----------

const (
	ctxAt   = "At"   // method tag used in error wrappers
	ctxSet  = "Set"  // method tag used in error wrappers
	ctxFill = "Fill" // method tag used in error wrappers
)

// At returns the value stored at (row, col).
//
// Errors:
//   - ErrNilArgument on a nil receiver.
//   - ErrOutOfRange if row ∉ [0,Height()) or col ∉ [0,Width()).
//
// Complexity: O(1).
func (m *Matrix[X]) At(row, col int) (X, error) {
	var zero X
	if m == nil {
		return zero, cellErrorf(ctxAt, row, col, ErrNilArgument)
	}
	if err := ValidateIndex(m, row, col); err != nil {
		return zero, cellErrorf(ctxAt, row, col, err)
	}

	return m.rows[row][col], nil
}

// Set replaces the value at (row, col) in place. Shape is unchanged.
//
// Errors:
//   - ErrNilArgument on a nil receiver.
//   - ErrOutOfRange on indices outside the current shape.
//   - ErrAbsentValue if value is absent.
//
// Complexity: O(1).
func (m *Matrix[X]) Set(value X, row, col int) error {
	if m == nil {
		return cellErrorf(ctxSet, row, col, ErrNilArgument)
	}
	if err := ValidateIndex(m, row, col); err != nil {
		return cellErrorf(ctxSet, row, col, err)
	}
	if err := ValidatePresent(value); err != nil {
		return cellErrorf(ctxSet, row, col, err)
	}
	m.rows[row][col] = value

	return nil
}

// Fill sets every cell to value.
//
// Errors:
//   - ErrNilArgument on a nil receiver.
//   - ErrAbsentValue if value is absent.
//   - ErrEmptyMatrix if the matrix has zero rows.
//
// Complexity: O(r*c).
func (m *Matrix[X]) Fill(value X) error {
	if m == nil {
		return matrixErrorf(ctxFill, ErrNilArgument)
	}
	if err := ValidatePresent(value); err != nil {
		return matrixErrorf(ctxFill, err)
	}
	if len(m.rows) == 0 {
		return matrixErrorf(ctxFill, ErrEmptyMatrix)
	}
	for _, row := range m.rows {
		for j := range row {
			row[j] = value
		}
	}

	return nil
}

// Rows returns a deep-copied snapshot of the contents in row-major order.
// The result never aliases internal storage. A nil matrix yields an empty
// (non-nil) slice.
// Complexity: O(r*c).
func (m *Matrix[X]) Rows() [][]X {
	if m == nil {
		return [][]X{}
	}

	return cloneRows(m.rows)
}

// Clone returns a matrix with identical shape and content and no shared
// storage. Cloning a nil matrix yields an empty matrix.
// Complexity: O(r*c).
func (m *Matrix[X]) Clone() *Matrix[X] {
	if m == nil {
		return New[X]()
	}

	return &Matrix[X]{rows: cloneRows(m.rows)}
}

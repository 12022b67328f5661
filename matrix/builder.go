// SPDX-License-Identifier: MIT

// Package matrix - constructors.
//
// Purpose:
//   - Provide the four construction modes of Matrix: empty, from explicit
//     rows, one row replicated N times, and a uniform R×C fill.
//   - Validate everything before allocating; a failed constructor returns a
//     nil matrix and a sentinel error, never a half-built value.
//   - Guarantee exclusive ownership: every row is freshly allocated, so no
//     caller slice (and no sibling row) is ever shared.
//
// Complexity quicksheet:
//   - New: O(1); NewFromRows, NewReplicated, NewFilled: O(rows*cols).

package matrix

// ---------- error context tags ----------

const (
	ctxFromRows   = "NewFromRows"   // ctor tag for NewFromRows
	ctxReplicated = "NewReplicated" // ctor tag for NewReplicated
	ctxFilled     = "NewFilled"     // ctor tag for NewFilled
)

// New returns an empty matrix (height = width = 0).
// Complexity: O(1).
func New[X comparable]() *Matrix[X] {
	return &Matrix[X]{rows: [][]X{}}
}

// NewFromRows builds a matrix from explicit rows.
//
// Implementation:
//   - Stage 1: ValidateRows (nil, ragged, absent cells).
//   - Stage 2: deep-copy every row so later mutation of the input never
//     reaches the matrix.
//
// Errors:
//   - ErrNilArgument if rows is nil.
//   - ErrRaggedRows if any two rows differ in length.
//   - ErrAbsentValue if any cell is absent.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewFromRows[X comparable](rows [][]X) (*Matrix[X], error) {
	if err := ValidateRows(rows); err != nil {
		return nil, matrixErrorf(ctxFromRows, err)
	}

	return &Matrix[X]{rows: cloneRows(rows)}, nil
}

// NewReplicated builds a matrix of copies rows, each equal in content to row.
// Every produced row has independent storage: mutating one never changes
// another.
//
// Errors:
//   - ErrNilArgument if row is nil.
//   - ErrNegativeCount if copies < 0.
//   - ErrAbsentValue if row contains an absent value.
//
// Complexity: Time O(copies*len(row)), Space O(copies*len(row)).
func NewReplicated[X comparable](row []X, copies int) (*Matrix[X], error) {
	if row == nil {
		return nil, matrixErrorf(ctxReplicated, ErrNilArgument)
	}
	if err := ValidateCount(copies); err != nil {
		return nil, matrixErrorf(ctxReplicated, err)
	}
	for _, v := range row {
		if err := ValidatePresent(v); err != nil {
			return nil, matrixErrorf(ctxReplicated, err)
		}
	}

	rows := make([][]X, copies)
	for i := range rows {
		// Fresh backing array per row.
		rows[i] = append(make([]X, 0, len(row)), row...)
	}

	return &Matrix[X]{rows: rows}, nil
}

// NewFilled builds a rowCount×colCount matrix with every cell equal to value.
//
// Errors:
//   - ErrAbsentValue if value is absent.
//   - ErrNegativeCount if rowCount or colCount is negative.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewFilled[X comparable](value X, rowCount, colCount int) (*Matrix[X], error) {
	if err := ValidatePresent(value); err != nil {
		return nil, matrixErrorf(ctxFilled, err)
	}
	if err := ValidateCount(rowCount); err != nil {
		return nil, matrixErrorf(ctxFilled, err)
	}
	if err := ValidateCount(colCount); err != nil {
		return nil, matrixErrorf(ctxFilled, err)
	}

	rows := make([][]X, rowCount)
	for i := range rows {
		row := make([]X, colCount)
		for j := range row {
			row[j] = value
		}
		rows[i] = row
	}

	return &Matrix[X]{rows: rows}, nil
}

// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for argument validation.
//  - Keep constructors and combinators minimal by delegating nil/shape/range
//    checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with matrixErrorf.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing on success.
//  - ValidateRows runs O(rows*cols) (uniformity + absent-cell scan); the rest are O(1).
//
// Note:
//  - Validators never mutate their inputs; a failed validation leaves every
//    matrix untouched.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateCount ensures a row, column or copy count is non-negative.
// Complexity: O(1).
func ValidateCount(n int) error {
	if n < 0 {
		return validatorErrorf("ValidateCount", ErrNegativeCount)
	}

	return nil
}

// ValidatePresent ensures v is not an absent value (nil interface, nil
// pointer or nil channel).
// Complexity: O(1).
func ValidatePresent[X comparable](v X) error {
	if isAbsent(v) {
		return validatorErrorf("ValidatePresent", ErrAbsentValue)
	}

	return nil
}

// ValidateIndex ensures (row, col) lies within [0,m.Height()) × [0,m.Width()).
// Assumes m is not nil (caller must ensure).
// Complexity: O(1).
func ValidateIndex[X comparable](m *Matrix[X], row, col int) error {
	if row < 0 || row >= m.Height() {
		return validatorErrorf("ValidateIndex: row", ErrOutOfRange)
	}
	if col < 0 || col >= m.Width() {
		return validatorErrorf("ValidateIndex: col", ErrOutOfRange)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal height and width.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape[X comparable](a, b *Matrix[X]) error {
	if a.Height() != b.Height() {
		return validatorErrorf("ValidateSameShape: Height", ErrDimensionMismatch)
	}
	if a.Width() != b.Width() {
		return validatorErrorf("ValidateSameShape: Width", ErrDimensionMismatch)
	}

	return nil
}

// ValidateRows ensures a proposed row set is present, row-uniform and free of
// absent cells. A non-nil empty set is trivially valid.
//
// Stage 1: reject nil.
// Stage 2: compare every row length against row 0.
// Stage 3: scan every cell for absent values.
//
// Complexity: O(rows*cols).
func ValidateRows[X comparable](rows [][]X) error {
	if rows == nil {
		return validatorErrorf("ValidateRows", ErrNilArgument)
	}
	if len(rows) == 0 {
		return nil
	}
	width := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != width {
			return validatorErrorf(fmt.Sprintf("ValidateRows: row %d", i), ErrRaggedRows)
		}
	}
	for i, row := range rows {
		for j, v := range row {
			if isAbsent(v) {
				return validatorErrorf(fmt.Sprintf("ValidateRows: cell (%d,%d)", i, j), ErrAbsentValue)
			}
		}
	}

	return nil
}

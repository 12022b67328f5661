// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// call-site context) and tests MUST check them via errors.Is. No operation
// panics on a caller-triggered error condition.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON ERROR KINDS
// -------------------
// Every precondition violation in this package is one kind of failure:
// ErrInvalidArgument. The narrower sentinels below wrap it, so a caller may
// match either the precise cause or the umbrella kind:
//
//	errors.Is(err, matrix.ErrOutOfRange)      // precise
//	errors.Is(err, matrix.ErrInvalidArgument) // umbrella, always true
//
// Every message is prefixed with "matrix: ..." for easy grepping.

// ErrInvalidArgument is the single error kind reported by this package.
var ErrInvalidArgument = errors.New("matrix: invalid argument")

var (
	// ErrNilArgument marks an absent required argument: nil rows, nil row,
	// nil operand matrix, nil function or nil receiver.
	ErrNilArgument = fmt.Errorf("%w: nil argument", ErrInvalidArgument)

	// ErrAbsentValue marks an absent cell value (nil interface, nil pointer or
	// nil channel) offered for storage in a matrix.
	ErrAbsentValue = fmt.Errorf("%w: absent value", ErrInvalidArgument)

	// ErrNegativeCount marks a negative row, column or copy count.
	ErrNegativeCount = fmt.Errorf("%w: negative count", ErrInvalidArgument)

	// ErrOutOfRange indicates that a row or column index lies outside the
	// current shape. At/Set MUST return this, not panic.
	ErrOutOfRange = fmt.Errorf("%w: index out of range", ErrInvalidArgument)

	// ErrRaggedRows marks construction input whose rows differ in length.
	ErrRaggedRows = fmt.Errorf("%w: rows differ in length", ErrInvalidArgument)

	// ErrDimensionMismatch indicates operands of different shapes in an
	// element-wise combination.
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrInvalidArgument)

	// ErrEmptyMatrix is returned by Fill on a matrix with zero rows.
	ErrEmptyMatrix = fmt.Errorf("%w: matrix has no rows", ErrInvalidArgument)
)

// matrixErrorf wraps err with a uniform "Matrix.<method>" context tag.
// The sentinel is preserved via %w.
func matrixErrorf(method string, err error) error {
	return fmt.Errorf("Matrix.%s: %w", method, err)
}

// cellErrorf wraps err with method context and the offending coordinates.
func cellErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

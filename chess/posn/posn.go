// SPDX-License-Identifier: MIT

// Package posn provides the board position value type.
//
// A Posn is an immutable (row, col) pair on an 8×8 board; both coordinates
// lie in [0, MaxDimension]. Posn is comparable and safe to use as a map key
// or matrix element.
package posn

import (
	"errors"
	"fmt"
)

// MaxDimension is the largest valid row or column index.
const MaxDimension = 7

// ErrInvalidArgument is returned for coordinates outside [0, MaxDimension].
var ErrInvalidArgument = errors.New("posn: coordinate out of range")

// Posn is a board position.
type Posn struct {
	row, col int
}

// New returns the position (row, col).
// Returns ErrInvalidArgument if either coordinate is outside [0, MaxDimension].
func New(row, col int) (Posn, error) {
	if row < 0 || row > MaxDimension {
		return Posn{}, fmt.Errorf("posn.New(%d,%d): row: %w", row, col, ErrInvalidArgument)
	}
	if col < 0 || col > MaxDimension {
		return Posn{}, fmt.Errorf("posn.New(%d,%d): col: %w", row, col, ErrInvalidArgument)
	}

	return Posn{row: row, col: col}, nil
}

// MustNew is New for package-level constants; it panics on invalid input.
func MustNew(row, col int) Posn {
	p, err := New(row, col)
	if err != nil {
		panic(err)
	}

	return p
}

// Row returns the row coordinate.
func (p Posn) Row() int { return p.row }

// Col returns the column coordinate.
func (p Posn) Col() int { return p.col }

// MirrorCol returns the position reflected across the board's vertical axis.
func (p Posn) MirrorCol() Posn {
	return Posn{row: p.row, col: MaxDimension - p.col}
}

// String renders the position as "(row,col)".
func (p Posn) String() string {
	return fmt.Sprintf("(%d,%d)", p.row, p.col)
}

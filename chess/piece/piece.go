// SPDX-License-Identifier: MIT

// Package piece defines the chess piece hierarchy.
//
// Every kind embeds a shared base carrying owner, value, position and
// liveness. Movement rules are not implemented: CanMoveTo always reports
// false and PossibleMoves always returns an empty slice.
//
// Pieces are handled by pointer, so a matrix.Matrix[Piece] compares and
// hashes them by identity.
package piece

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvchess/chess/player"
	"github.com/katalvlaran/lvchess/chess/posn"
)

// MaxValue is the largest material value a piece may carry (the King's).
const MaxValue = 10

var (
	// ErrInvalidValue is returned for a value outside [0, MaxValue].
	ErrInvalidValue = errors.New("piece: value out of range")
)

// Piece is a chess piece on the board.
type Piece interface {
	// CanMoveTo reports whether the piece may legally move to dst.
	CanMoveTo(dst posn.Posn) bool
	// IsAlive reports whether the piece is still on the board.
	IsAlive() bool
	// PossibleMoves lists every legal destination. Never nil.
	PossibleMoves() []posn.Posn
	// Owner is the side the piece belongs to.
	Owner() player.Player
	// Value is the material value, in [0, MaxValue].
	Value() int
	// Position is the square the piece occupies.
	Position() posn.Posn
	fmt.Stringer
}

// base holds the state shared by every kind.
type base struct {
	alive  bool
	owner  player.Player
	value  int
	pos    posn.Posn
	symbol string
}

// newBase validates owner and value and places the piece. Black pieces have
// their starting column mirrored.
func newBase(owner player.Player, value int, start posn.Posn, symbol string) (base, error) {
	if err := owner.Validate(); err != nil {
		return base{}, fmt.Errorf("piece %s: %w", symbol, err)
	}
	if value < 0 || value > MaxValue {
		return base{}, fmt.Errorf("piece %s: value %d: %w", symbol, value, ErrInvalidValue)
	}
	if owner == player.Black {
		start = start.MirrorCol()
	}

	return base{alive: true, owner: owner, value: value, pos: start, symbol: symbol}, nil
}

func (b *base) IsAlive() bool { return b.alive }

func (b *base) Owner() player.Player { return b.owner }

func (b *base) Value() int { return b.value }

func (b *base) Position() posn.Posn { return b.pos }

// CanMoveTo is not implemented for any kind.
func (b *base) CanMoveTo(posn.Posn) bool { return false }

// PossibleMoves is not implemented for any kind.
func (b *base) PossibleMoves() []posn.Posn { return []posn.Posn{} }

// String renders owner initial and kind symbol, e.g. "WK" or "BP".
func (b *base) String() string {
	return b.owner.String()[:1] + b.symbol
}

// SPDX-License-Identifier: MIT

package piece

import (
	"github.com/katalvlaran/lvchess/chess/player"
	"github.com/katalvlaran/lvchess/chess/posn"
)

// Material values per kind.
const (
	KingValue   = MaxValue
	QueenValue  = 9
	RookValue   = 5
	BishopValue = 3
	KnightValue = 3
	PawnValue   = 1
)

// Starting squares of the single-instance kinds, from White's side.
var (
	KingStart  = posn.MustNew(posn.MaxDimension, 5)
	QueenStart = posn.MustNew(posn.MaxDimension, 3)
)

type King struct{ base }
type Queen struct{ base }
type Rook struct{ base }
type Bishop struct{ base }
type Knight struct{ base }
type Pawn struct{ base }

// Compile-time assertions for Piece conformance.
var (
	_ Piece = (*King)(nil)
	_ Piece = (*Queen)(nil)
	_ Piece = (*Rook)(nil)
	_ Piece = (*Bishop)(nil)
	_ Piece = (*Knight)(nil)
	_ Piece = (*Pawn)(nil)
)

// NewKing places owner's king on KingStart.
func NewKing(owner player.Player) (*King, error) {
	b, err := newBase(owner, KingValue, KingStart, "K")
	if err != nil {
		return nil, err
	}

	return &King{b}, nil
}

// NewQueen places owner's queen on QueenStart.
func NewQueen(owner player.Player) (*Queen, error) {
	b, err := newBase(owner, QueenValue, QueenStart, "Q")
	if err != nil {
		return nil, err
	}

	return &Queen{b}, nil
}

// NewRook places a rook on start (mirrored for Black).
func NewRook(owner player.Player, start posn.Posn) (*Rook, error) {
	b, err := newBase(owner, RookValue, start, "R")
	if err != nil {
		return nil, err
	}

	return &Rook{b}, nil
}

// NewBishop places a bishop on start (mirrored for Black).
func NewBishop(owner player.Player, start posn.Posn) (*Bishop, error) {
	b, err := newBase(owner, BishopValue, start, "B")
	if err != nil {
		return nil, err
	}

	return &Bishop{b}, nil
}

// NewKnight places a knight on start (mirrored for Black).
func NewKnight(owner player.Player, start posn.Posn) (*Knight, error) {
	b, err := newBase(owner, KnightValue, start, "N")
	if err != nil {
		return nil, err
	}

	return &Knight{b}, nil
}

// NewPawn places a pawn on start (mirrored for Black).
func NewPawn(owner player.Player, start posn.Posn) (*Pawn, error) {
	b, err := newBase(owner, PawnValue, start, "P")
	if err != nil {
		return nil, err
	}

	return &Pawn{b}, nil
}

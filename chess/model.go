// SPDX-License-Identifier: MIT

// Package chess wires the piece hierarchy onto the generic matrix.
//
// It declares the Model contract of a chess game and the Board type a model
// exposes. No Model implementation exists yet: move legality, turn order,
// scoring, graveyards and game termination have no defined behavior.
package chess

import (
	"fmt"

	"github.com/katalvlaran/lvchess/chess/piece"
	"github.com/katalvlaran/lvchess/chess/player"
	"github.com/katalvlaran/lvchess/chess/posn"
	"github.com/katalvlaran/lvchess/matrix"
)

// BoardSize is the number of rows and of columns on a board.
const BoardSize = posn.MaxDimension + 1

// Board is a grid of pieces indexed by (row, col).
type Board = *matrix.Matrix[piece.Piece]

// Model is a game of chess.
type Model interface {
	// Move moves p to dst.
	Move(p piece.Piece, dst posn.Posn) error
	// Winner returns the winning side; ok is false while there is none.
	Winner() (winner player.Player, ok bool)
	// CurrentPlayer is the side to move.
	CurrentPlayer() player.Player
	// Board returns the current board.
	Board() Board
	// PieceAt returns the piece on dst.
	PieceAt(dst posn.Posn) (piece.Piece, error)
	// ScoreOf returns the score of a side.
	ScoreOf(p player.Player) int
	// GraveyardOf lists the pieces a side has lost.
	GraveyardOf(p player.Player) []piece.Piece
}

// NewBoard returns a BoardSize×BoardSize board with every square holding
// fill. Errors are those of matrix.NewFilled.
func NewBoard(fill piece.Piece) (Board, error) {
	b, err := matrix.NewFilled(fill, BoardSize, BoardSize)
	if err != nil {
		return nil, fmt.Errorf("chess.NewBoard: %w", err)
	}

	return b, nil
}

// PieceAt reads the square at p from b.
func PieceAt(b Board, p posn.Posn) (piece.Piece, error) {
	pc, err := b.At(p.Row(), p.Col())
	if err != nil {
		return nil, fmt.Errorf("chess.PieceAt%s: %w", p, err)
	}

	return pc, nil
}

// Place writes pc onto square p of b.
func Place(b Board, pc piece.Piece, p posn.Posn) error {
	if err := b.Set(pc, p.Row(), p.Col()); err != nil {
		return fmt.Errorf("chess.Place%s: %w", p, err)
	}

	return nil
}

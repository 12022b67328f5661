// Package lvchess is the model layer of a chess game, built on a generic
// matrix container.
//
// Under the hood, everything is organized under a few subpackages:
//
//	matrix/       - generic, row-uniform Matrix[X] with Map/ElementWise/Reduce,
//	                structural Equal/Hash and "R<i>:" rendering
//	chess/        - Model contract and Board helpers over Matrix[piece.Piece]
//	chess/piece/  - King, Queen, Rook, Bishop, Knight, Pawn (rules not implemented)
//	chess/player/ - White / Black
//	chess/posn/   - (row, col) board positions in [0,7]
//
// Quick example:
//
//	m, _ := matrix.NewFromRows([][]int{{1, 2}, {3, 4}})
//	sum, _ := m.Reduce(func(a, b int) int { return a + b }, 0) // 10
//
//	go get github.com/katalvlaran/lvchess
package lvchess

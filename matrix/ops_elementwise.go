// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the algebra-like combinators of Matrix: ElementWise (binary,
//     same shape), Map (unary, element type may change), Reduce and Fold
//     (accumulate to a scalar).
//   - Every combinator is pure with respect to its operands: results are new
//     matrices, receivers and arguments are never mutated.
//
// Determinism:
//   - Fixed row-major loop order (row 0 left→right, then row 1, …). Callers
//     folding with non-commutative or non-associative operations may rely
//     on it.
//
// Note:
//   - Map and Fold are package functions rather than methods: Go methods
//     cannot introduce type parameters of their own.

package matrix

// ---------- error context tags ----------

const (
	ctxElementWise = "ElementWise"
	ctxMap         = "Map"
	ctxReduce      = "Reduce"
	ctxFold        = "Fold"
)

// ElementWise returns a new matrix whose cell (r,c) is op(m[r,c], other[r,c]).
//
// Implementation:
//   - Stage 1: validate receiver, op, other and shape.
//   - Stage 2: clone the receiver and combine into the clone, so a failure
//     part-way through the scan never reaches m or other.
//
// Errors:
//   - ErrNilArgument if m, op or other is nil.
//   - ErrDimensionMismatch if shapes differ.
//   - ErrAbsentValue if op yields an absent value.
//
// Complexity: Time O(r*c), Space O(r*c).
func (m *Matrix[X]) ElementWise(op func(X, X) X, other *Matrix[X]) (*Matrix[X], error) {
	if m == nil || op == nil || other == nil {
		return nil, matrixErrorf(ctxElementWise, ErrNilArgument)
	}
	if err := ValidateSameShape(m, other); err != nil {
		return nil, matrixErrorf(ctxElementWise, err)
	}

	out := m.Clone()
	for i, row := range out.rows {
		for j := range row {
			v := op(row[j], other.rows[i][j])
			if isAbsent(v) {
				return nil, cellErrorf(ctxElementWise, i, j, ErrAbsentValue)
			}
			row[j] = v
		}
	}

	return out, nil
}

// Map returns a new matrix of the same shape with every cell replaced by
// f(cell). The element type may change. m is never mutated.
//
// Errors:
//   - ErrNilArgument if m or f is nil.
//   - ErrAbsentValue if f yields an absent value.
//
// Complexity: Time O(r*c), Space O(r*c).
func Map[X, Y comparable](m *Matrix[X], f func(X) Y) (*Matrix[Y], error) {
	if m == nil || f == nil {
		return nil, matrixErrorf(ctxMap, ErrNilArgument)
	}

	rows := make([][]Y, len(m.rows))
	for i, row := range m.rows {
		mapped := make([]Y, len(row))
		for j, v := range row {
			y := f(v)
			if isAbsent(y) {
				return nil, cellErrorf(ctxMap, i, j, ErrAbsentValue)
			}
			mapped[j] = y
		}
		rows[i] = mapped
	}

	return &Matrix[Y]{rows: rows}, nil
}

// Reduce folds every cell into a single value in row-major order:
// acc starts at base and each step computes acc = op(acc, cell).
// An empty matrix reduces to base.
//
// Errors:
//   - ErrNilArgument if m or op is nil.
//
// Complexity: Time O(r*c), Space O(1).
func (m *Matrix[X]) Reduce(op func(X, X) X, base X) (X, error) {
	if m == nil || op == nil {
		return base, matrixErrorf(ctxReduce, ErrNilArgument)
	}

	return Fold(m, op, base)
}

// Fold is Reduce with an accumulator of arbitrary type A, e.g. summing piece
// values of a Matrix[Piece] into an int, or rendering ints into a string.
// Traversal order is row-major, left to right, top to bottom.
//
// Errors:
//   - ErrNilArgument if m or op is nil.
//
// Complexity: Time O(r*c), Space O(1) beyond what op allocates.
func Fold[X comparable, A any](m *Matrix[X], op func(A, X) A, base A) (A, error) {
	if m == nil || op == nil {
		return base, matrixErrorf(ctxFold, ErrNilArgument)
	}

	acc := base
	for _, row := range m.rows {
		for _, v := range row {
			acc = op(acc, v)
		}
	}

	return acc, nil
}

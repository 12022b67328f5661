// Package matrix offers a generic, rectangular, row-uniform 2D container.
//
// The matrix package provides:
//
//   - Matrix[X], a grid of homogeneous comparable values with four
//     construction modes (empty, from rows, replicated row, uniform fill).
//   - Bounds-checked access (At, Set) and whole-grid Fill.
//   - Algebra-like combinators: ElementWise, Map, Reduce and Fold, all of
//     which return new values and never mutate their operands.
//   - Structural Equal, a Hash consistent with Equal, and a canonical
//     String rendering ("R<i>: a b c" per row) plus configurable Render.
//
// Every failure is reported as an error matching ErrInvalidArgument; no
// public method panics on caller input. Matrices are not internally
// synchronized: give each instance a single owner, or exchange Clone()s
// across goroutines.
//
// Complexity: shape queries and At/Set are O(1); everything else is
// O(rows*cols).
package matrix

// SPDX-License-Identifier: MIT

// Package matrix: the Matrix type itself.
// This file intentionally contains ONLY the container type, its shape
// queries and the absent-value probe shared by every mutating path.
// Constructors live in builder.go, accessors in impl_access.go, combinators
// in ops_elementwise.go and comparison/rendering in methods_compare.go.
package matrix

import (
	"fmt"
	"reflect"
)

// Matrix is a rectangular grid of comparable values of type X.
//
// Invariants (hold after every successful construction and mutation):
//   - every row in rows has identical length;
//   - every cell holds a non-absent value (see isAbsent);
//   - rows is owned exclusively: no caller slice is retained and no internal
//     slice is ever returned.
//
// The zero value is a valid empty (0×0) matrix.
// Matrix is not safe for concurrent mutation; callers serialize access.
type Matrix[X comparable] struct {
	rows [][]X // row-major storage; len(rows) == Height()
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[int])(nil)

// Height returns the number of rows. A nil matrix has height 0.
// Complexity: O(1).
func (m *Matrix[X]) Height() int {
	if m == nil {
		return 0
	}

	return len(m.rows)
}

// Width returns the number of columns, or 0 if the matrix has no rows.
// Complexity: O(1).
func (m *Matrix[X]) Width() int {
	if m == nil || len(m.rows) == 0 {
		return 0
	}

	// Row 0 is representative by the row-uniform invariant.
	return len(m.rows[0])
}

// isAbsent reports whether v is an "absent" value: a nil interface, or a nil
// pointer or channel held in X. Plain values (numbers, strings, structs) are
// never absent.
// Complexity: O(1).
func isAbsent[X comparable](v X) bool {
	boxed := any(v)
	if boxed == nil {
		return true
	}
	rv := reflect.ValueOf(boxed)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}

// cloneRows deep-copies a row set. The caller guarantees row uniformity.
// Complexity: O(rows*cols).
func cloneRows[X comparable](src [][]X) [][]X {
	out := make([][]X, len(src))
	for i, row := range src {
		out[i] = append(make([]X, 0, len(row)), row...)
	}

	return out
}

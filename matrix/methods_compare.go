// SPDX-License-Identifier: MIT

// Package matrix - structural equality, hashing and rendering.
//
// Equal and Hash are value-based: two matrices built separately from the same
// literal rows are Equal and Hash to the same value. Identity never matters.
package matrix

import (
	"fmt"
	"hash/maphash"
	"strconv"
	"strings"
)

// hashSeed is fixed for the life of the process so Hash is stable across
// calls. Hash values are not stable across processes.
var hashSeed = maphash.MakeSeed()

// Equal reports whether m and other have the same height and width and every
// pair of corresponding cells compares equal with ==.
// Two nil matrices are equal; a nil and a non-nil matrix are not.
// Complexity: O(r*c).
func (m *Matrix[X]) Equal(other *Matrix[X]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m == other {
		return true
	}
	if m.Height() != other.Height() || m.Width() != other.Width() {
		return false
	}
	for i, row := range m.rows {
		for j, v := range row {
			if v != other.rows[i][j] {
				return false
			}
		}
	}

	return true
}

// Hash returns a hash consistent with Equal: the sum of every cell's hash,
// taken in row-major order. Equal matrices always hash equal.
// Complexity: O(r*c).
func (m *Matrix[X]) Hash() uint64 {
	if m == nil {
		return 0
	}
	var sum uint64
	for _, row := range m.rows {
		for _, v := range row {
			sum += maphash.Comparable(hashSeed, v)
		}
	}

	return sum
}

// String renders the canonical form: one line per row, each line
// "R<i>:" followed by " <cell>" for every cell, each line ending in "\n".
// Cells are formatted with fmt.Sprint. An empty matrix renders as "".
//
//	R0: 1 2
//	R1: 3 4
func (m *Matrix[X]) String() string {
	return m.Render()
}

// Render is String with configurable labels, separators and terminators.
// Render() with no options equals String().
// Complexity: O(r*c) for string construction.
func (m *Matrix[X]) Render(opts ...RenderOption) string {
	if m == nil {
		return ""
	}
	o := gatherRenderOptions(opts...)

	var sb strings.Builder
	for i, row := range m.rows {
		if o.rowLabels {
			sb.WriteString(o.rowPrefix)
			sb.WriteString(strconv.Itoa(i))
			sb.WriteString(o.labelSuffix)
		}
		for j, v := range row {
			// With labels every cell is preceded by the separator; without
			// them only the cells after the first are.
			if o.rowLabels || j > 0 {
				sb.WriteString(o.cellSeparator)
			}
			sb.WriteString(fmt.Sprint(v))
		}
		sb.WriteString(o.rowTerminator)
	}

	return sb.String()
}

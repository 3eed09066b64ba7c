// Package textpos maps flat character offsets in decoded text to 1-based
// (line, column) positions and renders bounded context snippets around them.
package textpos

import "sort"

// LineStarts is the offset of the first character of every line, in
// increasing order. Index 0 is always 0; one further entry follows every
// line feed in the text.
type LineStarts []int

// Build scans text once and records the start offset of each line.
// It is total over any input: empty text yields the single-entry index [0].
func Build(text []rune) LineStarts {
	starts := LineStarts{0}
	for i, r := range text {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// Locate resolves a character offset to a 1-based (line, column) pair via
// binary search over the line starts. The offset must satisfy
// 0 <= offset <= len(text); callers own that guarantee.
func (ls LineStarts) Locate(offset int) (line, col int) {
	// Greatest line start <= offset.
	k := sort.Search(len(ls), func(i int) bool { return ls[i] > offset }) - 1
	return k + 1, offset - ls[k] + 1
}

// Offset is the inverse of Locate: it reconstructs the flat character offset
// of a 1-based (line, column) pair.
func (ls LineStarts) Offset(line, col int) int {
	return ls[line-1] + col - 1
}

// Lines reports the number of lines indexed.
func (ls LineStarts) Lines() int { return len(ls) }

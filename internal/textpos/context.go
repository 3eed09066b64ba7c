package textpos

import "strings"

// DefaultRadius is the number of characters shown on each side of a hit.
const DefaultRadius = 20

// Snippet extracts up to radius characters on either side of offset, clipped
// at the text boundaries, with carriage returns and line feeds escaped so the
// snippet always renders as a single display line. Other control characters
// pass through verbatim; the snippet is a diagnostic aid, not a sanitizer.
func Snippet(text []rune, offset, radius int) string {
	left := offset - radius
	if left < 0 {
		left = 0
	}
	right := offset + radius + 1
	if right > len(text) {
		right = len(text)
	}
	s := string(text[left:right])
	s = strings.ReplaceAll(s, "\r", `\r`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}

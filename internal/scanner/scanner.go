// Package scanner walks a file's decoded text and reports every character
// matched by the active rules.
package scanner

import (
	"github.com/bidiguard/bidiguard/internal/detectors"
	"github.com/bidiguard/bidiguard/internal/textpos"
	"github.com/bidiguard/bidiguard/internal/types"
)

// Scan decodes data, indexes line starts once, and walks the text left to
// right, appending one hit per matched character in offset order. Malformed
// byte sequences decode to U+FFFD instead of failing: the scan must survive
// any input. A pure function of its arguments; an empty result means the
// file is clean.
func Scan(path string, data []byte, rules []detectors.Rule) []types.Hit {
	// The string->[]rune conversion substitutes the replacement character
	// for each invalid byte, and gives us character offsets for free.
	text := []rune(string(data))
	index := textpos.Build(text)

	var hits []types.Hit
	for i, r := range text {
		for _, rule := range rules {
			if !rule.Matches(r, i) {
				continue
			}
			line, col := index.Locate(i)
			hits = append(hits, types.Hit{
				Path:      path,
				Line:      line,
				Column:    col,
				Codepoint: r,
				Name:      detectors.Name(r),
				Rule:      rule.ID,
				Severity:  rule.Severity,
				Context:   textpos.Snippet(text, i, textpos.DefaultRadius),
			})
			break
		}
	}
	return hits
}

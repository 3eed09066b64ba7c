package detectors

import "github.com/bidiguard/bidiguard/internal/types"

// ZeroWidth flags zero-width characters usable to smuggle invisible content
// into identifiers or string literals. A U+FEFF at offset 0 is a byte order
// mark, which is encoding metadata rather than hidden content, and is
// exempt.
var ZeroWidth = Rule{
	ID:       "zero_width",
	Describe: "zero-width spaces and joiners",
	Severity: types.SevMed,
	Matches: func(r rune, offset int) bool {
		switch r {
		case 0x200B, 0x200C, 0x200D, 0x2060:
			return true
		case 0xFEFF:
			return offset > 0
		}
		return false
	},
}

var invisibleFormat = map[rune]bool{
	0x00AD: true, // soft hyphen
	0x034F: true, // combining grapheme joiner
	0x180E: true, // Mongolian vowel separator
	0x2061: true, // function application
	0x2062: true, // invisible times
	0x2063: true, // invisible separator
	0x2064: true, // invisible plus
	0x206A: true, // deprecated Arabic/digit shaping controls
	0x206B: true,
	0x206C: true,
	0x206D: true,
	0x206E: true,
	0x206F: true,
}

// InvisibleFormat flags the remaining invisible formatting characters that
// render as nothing in most editors. Low severity: legitimate occurrences in
// natural-language text are plausible.
var InvisibleFormat = Rule{
	ID:       "invisible_format",
	Describe: "other invisible formatting characters",
	Severity: types.SevLow,
	Matches: func(r rune, _ int) bool {
		return invisibleFormat[r]
	},
}

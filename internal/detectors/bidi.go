package detectors

import "github.com/bidiguard/bidiguard/internal/types"

// The forbidden set is two contiguous ranges of bidirectional formatting
// controls. Both upper bounds are exclusive: U+202F (narrow no-break space)
// and U+206A sit immediately past the ranges and must never match.
const (
	bidiEmbedLo   = 0x202A // LRE
	bidiEmbedHi   = 0x202F // exclusive
	bidiIsolateLo = 0x2066 // LRI
	bidiIsolateHi = 0x206A // exclusive
)

// BidiControls flags the embedding/override and isolate controls that can
// visually reorder rendered source (Trojan Source, CVE-2021-42574).
var BidiControls = Rule{
	ID:       "bidi_control",
	Describe: "bidirectional embedding, override and isolate controls",
	Severity: types.SevHigh,
	Default:  true,
	Matches: func(r rune, _ int) bool {
		return (r >= bidiEmbedLo && r < bidiEmbedHi) || (r >= bidiIsolateLo && r < bidiIsolateHi)
	},
}

// BidiMarks flags the implicit directional marks. They reorder neighboring
// neutral characters only, so they are less dangerous than the controls and
// stay opt-in.
var BidiMarks = Rule{
	ID:       "bidi_mark",
	Describe: "left-to-right/right-to-left marks and the Arabic letter mark",
	Severity: types.SevMed,
	Matches: func(r rune, _ int) bool {
		return r == 0x200E || r == 0x200F || r == 0x061C
	},
}

var codepointNames = map[rune]string{
	0x061C: "ARABIC LETTER MARK",
	0x00AD: "SOFT HYPHEN",
	0x034F: "COMBINING GRAPHEME JOINER",
	0x180E: "MONGOLIAN VOWEL SEPARATOR",
	0x200B: "ZERO WIDTH SPACE",
	0x200C: "ZERO WIDTH NON-JOINER",
	0x200D: "ZERO WIDTH JOINER",
	0x200E: "LEFT-TO-RIGHT MARK",
	0x200F: "RIGHT-TO-LEFT MARK",
	0x202A: "LEFT-TO-RIGHT EMBEDDING",
	0x202B: "RIGHT-TO-LEFT EMBEDDING",
	0x202C: "POP DIRECTIONAL FORMATTING",
	0x202D: "LEFT-TO-RIGHT OVERRIDE",
	0x202E: "RIGHT-TO-LEFT OVERRIDE",
	0x2060: "WORD JOINER",
	0x2061: "FUNCTION APPLICATION",
	0x2062: "INVISIBLE TIMES",
	0x2063: "INVISIBLE SEPARATOR",
	0x2064: "INVISIBLE PLUS",
	0x2066: "LEFT-TO-RIGHT ISOLATE",
	0x2067: "RIGHT-TO-LEFT ISOLATE",
	0x2068: "FIRST STRONG ISOLATE",
	0x2069: "POP DIRECTIONAL ISOLATE",
	0x206A: "INHIBIT SYMMETRIC SWAPPING",
	0x206B: "ACTIVATE SYMMETRIC SWAPPING",
	0x206C: "INHIBIT ARABIC FORM SHAPING",
	0x206D: "ACTIVATE ARABIC FORM SHAPING",
	0x206E: "NATIONAL DIGIT SHAPES",
	0x206F: "NOMINAL DIGIT SHAPES",
	0xFEFF: "ZERO WIDTH NO-BREAK SPACE",
}

// Name returns the Unicode character name for codepoints the rules can
// match, or empty when unknown.
func Name(r rune) string {
	return codepointNames[r]
}

package scanner

import (
	"reflect"
	"testing"

	"github.com/bidiguard/bidiguard/internal/detectors"
)

func defaults() []detectors.Rule { return detectors.Defaults() }

func TestScanCleanText(t *testing.T) {
	hits := Scan("a.txt", []byte("abc\ndef"), defaults())
	if len(hits) != 0 {
		t.Fatalf("expected no hits, got %v", hits)
	}
}

func TestScanRTLOverride(t *testing.T) {
	hits := Scan("a.txt", []byte("ab‮cd"), defaults())
	if len(hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(hits))
	}
	h := hits[0]
	if h.Line != 1 || h.Column != 3 {
		t.Fatalf("position = %d:%d, want 1:3", h.Line, h.Column)
	}
	if h.Codepoint != 0x202E {
		t.Fatalf("codepoint = %04X, want 202E", h.Codepoint)
	}
	// radius exceeds text length: context is the full string, nothing escaped
	if h.Context != "ab‮cd" {
		t.Fatalf("context = %q", h.Context)
	}
	if h.CodepointLabel() != "U+202E" {
		t.Fatalf("label = %q", h.CodepointLabel())
	}
}

func TestScanIsolateOnSecondLine(t *testing.T) {
	hits := Scan("a.txt", []byte("x\n⁦y"), defaults())
	if len(hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(hits))
	}
	if hits[0].Line != 2 || hits[0].Column != 1 || hits[0].Codepoint != 0x2066 {
		t.Fatalf("got %+v", hits[0])
	}
}

func TestScanNarrowNoBreakSpaceIsClean(t *testing.T) {
	hits := Scan("a.txt", []byte("a b"), defaults())
	if len(hits) != 0 {
		t.Fatalf("U+202F must not be flagged, got %v", hits)
	}
}

func TestScanBoundaryCharacters(t *testing.T) {
	// forbidden codepoint as the very first character
	hits := Scan("a.txt", []byte("‮abc"), defaults())
	if len(hits) != 1 || hits[0].Line != 1 || hits[0].Column != 1 {
		t.Fatalf("leading hit: %+v", hits)
	}
	// and as the very last character, after a newline
	hits = Scan("a.txt", []byte("abc\n⁩"), defaults())
	if len(hits) != 1 || hits[0].Line != 2 || hits[0].Column != 1 {
		t.Fatalf("trailing hit: %+v", hits)
	}
	if hits[0].Context != `abc\n`+"⁩" {
		t.Fatalf("trailing context = %q", hits[0].Context)
	}
}

func TestScanReportsAllOccurrencesInOrder(t *testing.T) {
	hits := Scan("a.txt", []byte("‪ one ‮ two\n⁦ three"), defaults())
	if len(hits) != 3 {
		t.Fatalf("expected 3 hits, got %d", len(hits))
	}
	want := []rune{0x202A, 0x202E, 0x2066}
	for i, h := range hits {
		if h.Codepoint != want[i] {
			t.Fatalf("hit %d = %04X, want %04X", i, h.Codepoint, want[i])
		}
	}
	if hits[2].Line != 2 {
		t.Fatalf("third hit line = %d, want 2", hits[2].Line)
	}
}

func TestScanMalformedBytesSurvive(t *testing.T) {
	// invalid UTF-8 before and after a real hit; the scan must not fail and
	// positions are in decoded characters
	data := []byte{0xFF, 0xFE, 'a', '\n', 0xE2, 0x80, 0xAE} // last 3 bytes are U+202E
	hits := Scan("bad.bin", data, defaults())
	if len(hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(hits))
	}
	if hits[0].Line != 2 || hits[0].Column != 1 {
		t.Fatalf("position = %d:%d, want 2:1", hits[0].Line, hits[0].Column)
	}
}

func TestScanIdempotent(t *testing.T) {
	data := []byte("a‮b\nc⁦d\xffe")
	first := Scan("a.txt", data, defaults())
	second := Scan("a.txt", data, defaults())
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("scan not idempotent:\n%v\n%v", first, second)
	}
}

func TestScanEmptyInput(t *testing.T) {
	if hits := Scan("empty", nil, defaults()); len(hits) != 0 {
		t.Fatalf("empty input produced hits: %v", hits)
	}
}

func TestScanOptInRules(t *testing.T) {
	data := []byte("a​b")
	if hits := Scan("a.txt", data, defaults()); len(hits) != 0 {
		t.Fatal("zero width space must not be flagged by default")
	}
	rules := detectors.Enabled("bidi_control,zero_width", "")
	hits := Scan("a.txt", data, rules)
	if len(hits) != 1 || hits[0].Rule != "zero_width" {
		t.Fatalf("got %v", hits)
	}
}

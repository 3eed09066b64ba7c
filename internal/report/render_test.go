package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/bidiguard/bidiguard/internal/types"
)

func sampleHit() types.Hit {
	return types.Hit{
		Path: "src/app.ts", Line: 3, Column: 7,
		Codepoint: 0x202E, Name: "RIGHT-TO-LEFT OVERRIDE",
		Rule: "bidi_control", Severity: types.SevHigh,
		Context: `const x = "‮";`,
	}
}

func TestPrintText_NoHits_ShowsConfirmation(t *testing.T) {
	var buf bytes.Buffer
	PrintText(&buf, nil, PrintOptions{Duration: 1200 * time.Millisecond, FilesScanned: 10})
	out := buf.String()
	if !strings.Contains(out, "No forbidden bidi/control characters found.") {
		t.Fatalf("expected confirmation message; got: %q", out)
	}
	if !strings.Contains(out, "Files scanned: 10") {
		t.Fatalf("expected footer with files scanned; got: %q", out)
	}
}

func TestPrintText_HitLineFormat(t *testing.T) {
	var buf bytes.Buffer
	PrintText(&buf, []types.Hit{sampleHit()}, PrintOptions{NoColor: true})
	out := buf.String()
	want := `src/app.ts:3:7 U+202E context="const x = "‮";"`
	if !strings.Contains(out, want) {
		t.Fatalf("expected line %q; got: %q", want, out)
	}
}

func TestPrintText_SortsByPathThenPosition(t *testing.T) {
	hits := []types.Hit{
		{Path: "b.go", Line: 1, Column: 1, Codepoint: 0x202A, Severity: types.SevHigh},
		{Path: "a.go", Line: 2, Column: 1, Codepoint: 0x202A, Severity: types.SevHigh},
		{Path: "a.go", Line: 1, Column: 5, Codepoint: 0x202A, Severity: types.SevHigh},
	}
	var buf bytes.Buffer
	PrintText(&buf, hits, PrintOptions{NoColor: true})
	out := buf.String()
	first := strings.Index(out, "a.go:1:5")
	second := strings.Index(out, "a.go:2:1")
	third := strings.Index(out, "b.go:1:1")
	if first < 0 || second < 0 || third < 0 || !(first < second && second < third) {
		t.Fatalf("unexpected order: %q", out)
	}
}

func TestPrintTable_WithHits(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, []types.Hit{sampleHit()}, PrintOptions{NoColor: true})
	out := buf.String()
	if !strings.Contains(out, "src/app.ts") {
		t.Fatalf("expected path in table; got: %q", out)
	}
	if !strings.Contains(out, "U+202E") {
		t.Fatalf("expected codepoint line after table; got: %q", out)
	}
}

func TestShouldFail(t *testing.T) {
	low := types.Hit{Severity: types.SevLow}
	high := types.Hit{Severity: types.SevHigh}
	if !ShouldFail([]types.Hit{low}, "low") {
		t.Fatal("any hit fails at threshold low")
	}
	if ShouldFail([]types.Hit{low}, "high") {
		t.Fatal("low hit must pass threshold high")
	}
	if !ShouldFail([]types.Hit{high}, "high") {
		t.Fatal("high hit fails threshold high")
	}
	if ShouldFail(nil, "low") {
		t.Fatal("no hits never fails")
	}
	// unknown threshold falls back to low
	if !ShouldFail([]types.Hit{low}, "bogus") {
		t.Fatal("unknown threshold should behave as low")
	}
}

package detectors

import "testing"

func TestBidiControlBounds(t *testing.T) {
	in := []rune{0x202A, 0x202B, 0x202C, 0x202D, 0x202E, 0x2066, 0x2067, 0x2068, 0x2069}
	for _, r := range in {
		if !BidiControls.Matches(r, 0) {
			t.Fatalf("U+%04X should match bidi_control", r)
		}
	}
	// neighbors of both ranges must not match; U+202F in particular is a
	// legitimate narrow no-break space
	out := []rune{0x2029, 0x202F, 0x2065, 0x206A, 'a', '\n', 0x200E}
	for _, r := range out {
		if BidiControls.Matches(r, 0) {
			t.Fatalf("U+%04X must not match bidi_control", r)
		}
	}
}

func TestZeroWidthBOMExemption(t *testing.T) {
	if ZeroWidth.Matches(0xFEFF, 0) {
		t.Fatal("leading BOM should be exempt")
	}
	if !ZeroWidth.Matches(0xFEFF, 5) {
		t.Fatal("embedded U+FEFF should match")
	}
	if !ZeroWidth.Matches(0x200B, 0) {
		t.Fatal("zero width space should match at any offset")
	}
}

func TestEnabledResolution(t *testing.T) {
	defaults := Enabled("", "")
	if len(defaults) != 1 || defaults[0].ID != "bidi_control" {
		t.Fatalf("default rule set = %v", ruleIDs(defaults))
	}

	got := Enabled("bidi_control, zero_width", "")
	if len(got) != 2 {
		t.Fatalf("enable list: got %v", ruleIDs(got))
	}

	got = Enabled("", "bidi_control")
	if len(got) != 0 {
		t.Fatalf("disable should empty the default set, got %v", ruleIDs(got))
	}

	got = Enabled("zero_width,bogus_rule", "")
	if len(got) != 1 || got[0].ID != "zero_width" {
		t.Fatalf("unknown IDs should be ignored, got %v", ruleIDs(got))
	}
}

func TestNames(t *testing.T) {
	if Name(0x202E) != "RIGHT-TO-LEFT OVERRIDE" {
		t.Fatalf("Name(U+202E) = %q", Name(0x202E))
	}
	if Name('a') != "" {
		t.Fatal("unknown codepoints should have empty names")
	}
}

func ruleIDs(rules []Rule) []string {
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = r.ID
	}
	return out
}

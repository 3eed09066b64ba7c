// Package detectors holds the codepoint classification rules. All rule data
// is constant, fixed at process start, and safe to share between scans.
package detectors

import (
	"strings"

	"github.com/bidiguard/bidiguard/internal/types"
)

// Rule classifies individual codepoints. Matches receives the rune and its
// character offset within the decoded text (the offset matters only for
// position-sensitive rules such as the leading-BOM exemption).
type Rule struct {
	ID       string
	Describe string
	Severity types.Severity
	Default  bool // enabled without an explicit --enable
	Matches  func(r rune, offset int) bool
}

var all = []Rule{
	BidiControls,
	BidiMarks,
	ZeroWidth,
	InvisibleFormat,
}

// IDs returns every known rule ID in registration order.
func IDs() []string {
	out := make([]string, len(all))
	for i, r := range all {
		out[i] = r.ID
	}
	return out
}

// Defaults returns the rules enabled when no --enable/--disable is given.
func Defaults() []Rule {
	var out []Rule
	for _, r := range all {
		if r.Default {
			out = append(out, r)
		}
	}
	return out
}

// Enabled resolves the comma-separated enable/disable lists into the active
// rule set. An enable list replaces the default set; disable is subtracted
// last. Unknown IDs are ignored.
func Enabled(enable, disable string) []Rule {
	allowed := idSet(enable)
	blocked := idSet(disable)
	var out []Rule
	for _, r := range all {
		if enable != "" {
			if !allowed[r.ID] {
				continue
			}
		} else if !r.Default {
			continue
		}
		if blocked[r.ID] {
			continue
		}
		out = append(out, r)
	}
	return out
}

func idSet(csv string) map[string]bool {
	if csv == "" {
		return nil
	}
	set := map[string]bool{}
	for _, id := range strings.Split(csv, ",") {
		if id = strings.TrimSpace(id); id != "" {
			set[id] = true
		}
	}
	return set
}

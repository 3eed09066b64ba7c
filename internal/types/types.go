package types

import "fmt"

// Severity is a coarse-grained risk level for a hit.
type Severity string

const (
	SevLow  Severity = "low"
	SevMed  Severity = "medium"
	SevHigh Severity = "high"
)

// Hit describes one forbidden codepoint found in a file. Line and Column are
// 1-based character coordinates; Context is an escaped snippet of the text
// surrounding the codepoint.
type Hit struct {
	Path      string   `json:"path"`
	Line      int      `json:"line"`
	Column    int      `json:"column"`
	Codepoint rune     `json:"codepoint"`
	Name      string   `json:"name,omitempty"` // Unicode character name
	Rule      string   `json:"rule"`
	Severity  Severity `json:"severity"`
	Context   string   `json:"context,omitempty"`
}

// CodepointLabel renders the codepoint in U+XXXX form (at least 4 hex digits,
// uppercase), the notation used in all reports.
func (h Hit) CodepointLabel() string {
	return fmt.Sprintf("U+%04X", h.Codepoint)
}

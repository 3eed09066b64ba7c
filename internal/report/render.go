package report

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/bidiguard/bidiguard/internal/types"
)

type PrintOptions struct {
	NoColor      bool
	Duration     time.Duration
	FilesScanned int
	ReadErrors   int
}

// PrintText writes one line per hit in the canonical grep-like form:
//
//	path:line:col U+XXXX context="escaped snippet"
//
// Hits are sorted by path, then line, then column; within a file this is
// exactly encounter order.
func PrintText(w io.Writer, hits []types.Hit, opts PrintOptions) {
	sortHits(hits)
	for _, h := range hits {
		label := h.CodepointLabel()
		if !opts.NoColor {
			label = colorize(h.Severity, label)
		}
		fmt.Fprintf(w, "%s:%d:%d %s context=\"%s\"\n", h.Path, h.Line, h.Column, label, h.Context)
	}
	printSummary(w, hits, opts)
}

// PrintTable renders a per-file summary table followed by the hit lines.
func PrintTable(w io.Writer, hits []types.Hit, opts PrintOptions) {
	sortHits(hits)
	if len(hits) > 0 {
		type row struct {
			path  string
			count int
			worst types.Severity
		}
		byPath := map[string]*row{}
		var order []string
		for _, h := range hits {
			r, ok := byPath[h.Path]
			if !ok {
				r = &row{path: h.Path, worst: h.Severity}
				byPath[h.Path] = r
				order = append(order, h.Path)
			}
			r.count++
			if sevRank(h.Severity) > sevRank(r.worst) {
				r.worst = h.Severity
			}
		}
		table := tablewriter.NewWriter(w)
		table.Header("File", "Hits", "Severity")
		for _, p := range order {
			r := byPath[p]
			_ = table.Append(r.path, fmt.Sprintf("%d", r.count), string(r.worst))
		}
		_ = table.Render()
		fmt.Fprintln(w)
		for _, h := range hits {
			fmt.Fprintf(w, "%s:%d:%d %s context=\"%s\"\n", h.Path, h.Line, h.Column, h.CodepointLabel(), h.Context)
		}
	}
	printSummary(w, hits, opts)
}

func printSummary(w io.Writer, hits []types.Hit, opts PrintOptions) {
	if len(hits) == 0 {
		fmt.Fprintln(w, "No forbidden bidi/control characters found.")
	}
	if opts.Duration > 0 || opts.FilesScanned > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Hits: %d\n", len(hits))
		if opts.FilesScanned > 0 {
			fmt.Fprintf(w, "Files scanned: %d\n", opts.FilesScanned)
		}
		if opts.ReadErrors > 0 {
			fmt.Fprintf(w, "Unreadable files skipped: %d\n", opts.ReadErrors)
		}
		if opts.Duration > 0 {
			fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
		}
	}
}

func sortHits(hits []types.Hit) {
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Path != hits[j].Path {
			return hits[i].Path < hits[j].Path
		}
		if hits[i].Line != hits[j].Line {
			return hits[i].Line < hits[j].Line
		}
		return hits[i].Column < hits[j].Column
	})
}

func sevRank(s types.Severity) int {
	switch s {
	case types.SevHigh:
		return 3
	case types.SevMed:
		return 2
	default:
		return 1
	}
}

func colorize(s types.Severity, text string) string {
	switch s {
	case types.SevHigh:
		return "\x1b[31m" + text + "\x1b[0m" // red
	case types.SevMed:
		return "\x1b[33m" + text + "\x1b[0m" // yellow
	default:
		return "\x1b[36m" + text + "\x1b[0m" // cyan
	}
}

// ShouldFail reports whether any hit reaches the fail-on threshold.
// The default threshold is low: any hit fails the run.
func ShouldFail(hits []types.Hit, failOn string) bool {
	level := map[string]int{"low": 1, "medium": 2, "high": 3}
	th := level[failOn]
	if th == 0 {
		th = 1
	}
	for _, h := range hits {
		if sevRank(h.Severity) >= th {
			return true
		}
	}
	return false
}

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bidiguard/bidiguard/internal/report"
	"github.com/bidiguard/bidiguard/internal/types"
)

func sampleHits() []types.Hit {
	return []types.Hit{
		{Path: "a.ts", Line: 1, Column: 3, Codepoint: 0x202E, Name: "RIGHT-TO-LEFT OVERRIDE",
			Rule: "bidi_control", Severity: types.SevHigh, Context: "ab?cd"},
		{Path: "b.md", Line: 4, Column: 1, Codepoint: 0x2066, Name: "LEFT-TO-RIGHT ISOLATE",
			Rule: "bidi_control", Severity: types.SevHigh, Context: "x"},
	}
}

func TestViewShowsSelectedHit(t *testing.T) {
	m := NewModel(sampleHits(), report.Baseline{Items: map[string]bool{}}, nil)
	out := m.View()
	if !strings.Contains(out, "2 hit(s)") {
		t.Fatalf("missing count in view: %q", out)
	}
	if !strings.Contains(out, "U+202E") {
		t.Fatalf("missing selected detail: %q", out)
	}
}

func TestBaselineToggle(t *testing.T) {
	hits := sampleHits()
	m := NewModel(hits, report.Baseline{Items: map[string]bool{}}, nil)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
	m = next.(Model)
	if !m.accepted[report.Key(hits[0])] {
		t.Fatal("b should accept the selected hit")
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
	m = next.(Model)
	if m.accepted[report.Key(hits[0])] {
		t.Fatal("b again should clear the acceptance")
	}
}

func TestWriteBaselineCallsSave(t *testing.T) {
	hits := sampleHits()
	var saved []types.Hit
	m := NewModel(hits, report.Baseline{Items: map[string]bool{report.Key(hits[1]): true}}, func(acc []types.Hit) error {
		saved = acc
		return nil
	})
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w")})
	m = next.(Model)
	if len(saved) != 1 || saved[0].Path != "b.md" {
		t.Fatalf("saved = %v", saved)
	}
	if !strings.Contains(m.status, "baseline written") {
		t.Fatalf("status = %q", m.status)
	}
}

func TestQuitKey(t *testing.T) {
	m := NewModel(nil, report.Baseline{Items: map[string]bool{}}, nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should quit")
	}
}

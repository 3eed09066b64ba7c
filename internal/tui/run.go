package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bidiguard/bidiguard/internal/report"
	"github.com/bidiguard/bidiguard/internal/types"
)

// Run starts the interactive review over the given hits. saveFunc persists
// the accepted set when the user writes the baseline.
func Run(hits []types.Hit, base report.Baseline, saveFunc func([]types.Hit) error) error {
	m := NewModel(hits, base, saveFunc)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}

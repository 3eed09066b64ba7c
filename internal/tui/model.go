package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bidiguard/bidiguard/internal/report"
	"github.com/bidiguard/bidiguard/internal/types"
)

var (
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true).
			Padding(0, 1)

	detailStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	hitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	acceptedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("7"))
)

// Model drives the interactive hit review: a table of hits with a detail
// pane, baseline toggling, and clipboard copy of the selected location.
type Model struct {
	hits     []types.Hit
	accepted map[string]bool // baseline keys toggled in this session
	table    table.Model
	status   string
	width    int
	saveFunc func(accepted []types.Hit) error
}

func NewModel(hits []types.Hit, base report.Baseline, saveFunc func([]types.Hit) error) Model {
	accepted := map[string]bool{}
	for _, h := range hits {
		if base.Items[report.Key(h)] {
			accepted[report.Key(h)] = true
		}
	}

	columns := []table.Column{
		{Title: "File", Width: 36},
		{Title: "Pos", Width: 10},
		{Title: "Codepoint", Width: 10},
		{Title: "Rule", Width: 16},
		{Title: "✓", Width: 2},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(14),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(s)

	m := Model{hits: hits, accepted: accepted, table: t, saveFunc: saveFunc}
	m.refreshRows()
	return m
}

func (m *Model) refreshRows() {
	rows := make([]table.Row, len(m.hits))
	for i, h := range m.hits {
		mark := ""
		if m.accepted[report.Key(h)] {
			mark = "✓"
		}
		rows[i] = table.Row{
			h.Path,
			fmt.Sprintf("%d:%d", h.Line, h.Column),
			h.CodepointLabel(),
			h.Rule,
			mark,
		}
	}
	m.table.SetRows(rows)
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "c":
			if h, ok := m.selected(); ok {
				loc := fmt.Sprintf("%s:%d:%d", h.Path, h.Line, h.Column)
				if err := clipboard.WriteAll(loc); err != nil {
					m.status = "clipboard unavailable"
				} else {
					m.status = "copied " + loc
				}
			}
		case "b":
			if h, ok := m.selected(); ok {
				k := report.Key(h)
				m.accepted[k] = !m.accepted[k]
				m.refreshRows()
			}
		case "w":
			if m.saveFunc == nil {
				break
			}
			var acc []types.Hit
			for _, h := range m.hits {
				if m.accepted[report.Key(h)] {
					acc = append(acc, h)
				}
			}
			if err := m.saveFunc(acc); err != nil {
				m.status = "baseline write failed: " + err.Error()
			} else {
				m.status = fmt.Sprintf("baseline written (%d accepted)", len(acc))
			}
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) selected() (types.Hit, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.hits) {
		return types.Hit{}, false
	}
	return m.hits[i], true
}

func (m Model) View() string {
	title := titleStyle.Render(fmt.Sprintf("bidiguard review: %d hit(s)", len(m.hits)))
	body := baseStyle.Render(m.table.View())

	detail := "no hits"
	if h, ok := m.selected(); ok {
		state := hitStyle.Render("new")
		if m.accepted[report.Key(h)] {
			state = acceptedStyle.Render("accepted")
		}
		detail = fmt.Sprintf("%s  %s  %s\n%s:%d:%d  [%s]\ncontext: %s",
			h.CodepointLabel(), h.Name, state,
			h.Path, h.Line, h.Column, h.Severity, h.Context)
	}

	help := statusStyle.Render(" j/k: navigate | b: toggle baseline | w: write baseline | c: copy location | q: quit ")
	out := title + "\n" + body + "\n" + detailStyle.Render(detail) + "\n" + help
	if m.status != "" {
		out += "\n" + m.status
	}
	return out
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	lipglossv2 "github.com/charmbracelet/lipgloss/v2"

	"github.com/mithrel/linemark/internal/blocks"
	"github.com/mithrel/linemark/internal/util"
	"github.com/mithrel/linemark/pkg/api"
)

// typeModal is a foreground modal for choosing a block type, filtered by a
// fuzzy query.
type typeModal struct {
	input   textinput.Model
	current api.BlockType
	matches []api.BlockType
	sel     int
	width   int
	height  int
	padX    int
	padY    int
	box     lipglossv2.Style
}

func newTypeModal(current api.BlockType, termW, termH int) *typeModal {
	m := &typeModal{current: current, padX: 2, padY: 1}
	ti := textinput.New()
	ti.Prompt = "type: "
	ti.Placeholder = "h2, list, quote…"
	ti.Focus()
	m.input = ti
	m.filter()
	for i, t := range m.matches {
		if t == current {
			m.sel = i
		}
	}
	m.resizeForTerm(termW, termH)
	return m
}

// typeCandidates are the strings the query is matched against, one per block type.
func typeCandidates() []string {
	all := api.AllBlockTypes()
	out := make([]string, len(all))
	for i, t := range all {
		out[i] = fmt.Sprintf("%s %s", t, blocks.Label(t))
	}
	return out
}

func (m *typeModal) filter() {
	all := api.AllBlockTypes()
	q := strings.TrimSpace(m.input.Value())
	idx := util.Rank(q, typeCandidates())
	m.matches = make([]api.BlockType, 0, len(idx))
	for _, i := range idx {
		m.matches = append(m.matches, all[i])
	}
	if m.sel >= len(m.matches) {
		m.sel = max(0, len(m.matches)-1)
	}
}

func (m *typeModal) selected() (api.BlockType, bool) {
	if m.sel < 0 || m.sel >= len(m.matches) {
		return "", false
	}
	return m.matches[m.sel], true
}

func (m *typeModal) resizeForTerm(termW, termH int) {
	if termW <= 0 || termH <= 0 {
		termW, termH = 80, 24
	}
	w := min(44, max(30, termW-4))
	h := len(api.AllBlockTypes()) + 8
	if h > termH-1 {
		h = max(8, termH-1)
	}
	m.width, m.height = w, h
	m.box = lipglossv2.NewStyle().
		Width(w).
		Height(h).
		Padding(m.padY, m.padX).
		Border(lipglossv2.RoundedBorder()).
		BorderForeground(lipglossv2.Color("63"))
	m.input.Width = max(8, w-2-m.padX*2-lipgloss.Width(m.input.Prompt))
}

func (m *typeModal) update(msg tea.Msg) (*typeModal, tea.Cmd) {
	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		m.resizeForTerm(x.Width, x.Height)
		return m, nil
	case tea.KeyMsg:
		switch x.String() {
		case "down", "tab", "ctrl+n":
			if len(m.matches) > 0 {
				m.sel = (m.sel + 1) % len(m.matches)
			}
			return m, nil
		case "up", "shift+tab", "ctrl+p":
			if len(m.matches) > 0 {
				m.sel = (m.sel + len(m.matches) - 1) % len(m.matches)
			}
			return m, nil
		}
	}
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.sel = 0
	}
	m.filter()
	return m, cmd
}

func (m *typeModal) View() string {
	header := lipgloss.NewStyle().Bold(true).Render("Block type")
	rows := make([]string, 0, len(m.matches))
	for i, t := range m.matches {
		cursor := "  "
		if i == m.sel {
			cursor = "› "
		}
		row := fmt.Sprintf("%s%-2s %s", cursor, blocks.Glyph(t), blocks.Label(t))
		if t == m.current {
			row += lipgloss.NewStyle().Faint(true).Render(" (current)")
		}
		if i == m.sel {
			row = lipgloss.NewStyle().Bold(true).Render(row)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		rows = append(rows, lipgloss.NewStyle().Faint(true).Render("  no match"))
	}
	help := lipgloss.NewStyle().Faint(true).Render("enter=apply • esc=cancel • ↑/↓ select")
	body := strings.Join([]string{
		header,
		m.input.View(),
		"",
		strings.Join(rows, "\n"),
		"",
		help,
	}, "\n")
	return m.box.Render(body)
}

func (m *typeModal) Init() tea.Cmd                           { return nil }
func (m *typeModal) Update(msg tea.Msg) (tea.Model, tea.Cmd) { return m.update(msg) }

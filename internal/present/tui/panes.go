package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mithrel/linemark/internal/blocks"
	"github.com/mithrel/linemark/internal/doc"
	"github.com/mithrel/linemark/internal/render"
)

const gutterWidth = 10

// terminalRender renders the preview; swapped in tests to count renders.
var terminalRender = render.Terminal

var (
	gutterStyle   = lipgloss.NewStyle().Width(gutterWidth).Foreground(lipgloss.Color("244"))
	selectedStyle = lipgloss.NewStyle().Width(gutterWidth).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	inactiveStyle = lipgloss.NewStyle().Faint(true)
	emptyStyle    = lipgloss.NewStyle().Faint(true).Italic(true)
)

// refresh re-renders both panes and re-syncs their scroll positions.
func (m *model) refresh() {
	m.clampCursor()
	m.renderCards()
	m.ensureCursorVisible()
	m.renderPreview()
	m.syncFrom(m.focus)
}

func (m *model) renderCards() {
	items := m.doc.Items()
	bodyW := max(4, m.cards.Width-gutterWidth)
	m.cardTop = m.cardTop[:0]
	m.cardH = m.cardH[:0]

	var b strings.Builder
	line := 0
	for i, it := range items {
		mark := "●"
		if !it.Active {
			mark = "○"
		}
		gs := gutterStyle
		if i == m.cursor {
			gs = selectedStyle
		}
		gutter := gs.Render(fmt.Sprintf("%3d %s %s", i+1, mark, blocks.Glyph(it.Type)))

		var body string
		switch {
		case m.editing && i == m.cursor:
			body = m.editor.View()
		case strings.TrimSpace(it.Text) == "":
			body = emptyStyle.Render("(empty)")
		default:
			body = lipgloss.NewStyle().Width(bodyW).Render(it.Text)
		}
		if !it.Active && !(m.editing && i == m.cursor) {
			body = inactiveStyle.Render(body)
		}
		card := lipgloss.JoinHorizontal(lipgloss.Top, gutter, body)
		h := lipgloss.Height(card)

		m.cardTop = append(m.cardTop, line)
		m.cardH = append(m.cardH, h)
		line += h
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(card)
	}
	m.cards.SetContent(b.String())
}

func (m *model) ensureCursorVisible() {
	if m.cursor < 0 || m.cursor >= len(m.cardTop) {
		return
	}
	top := m.cardTop[m.cursor]
	bottom := top + m.cardH[m.cursor]
	switch {
	case top < m.cards.YOffset:
		m.cards.SetYOffset(top)
	case bottom > m.cards.YOffset+m.cards.Height:
		m.cards.SetYOffset(bottom - m.cards.Height)
	}
}

// previewMarkdown is the document Markdown, with the pending edit applied
// while the editor is open so the preview follows keystrokes.
func (m *model) previewMarkdown() string {
	if !m.editing {
		return m.doc.Markdown()
	}
	items := m.doc.Items()
	if m.cursor >= 0 && m.cursor < len(items) {
		items[m.cursor].Text = m.editor.Value()
	}
	return doc.New(items, 1).Markdown()
}

// renderPreview re-renders the preview only when the markdown, wrap width or
// style changed since the last render.
func (m *model) renderPreview() {
	md := m.previewMarkdown()
	width := m.opts.WordWrap
	if width <= 0 {
		width = m.preview.Width - 2
	}
	key := fmt.Sprintf("%s\x00%d\x00%s", m.opts.Style, width, md)
	if key == m.previewKey {
		return
	}
	m.previewKey = key
	if md == "" {
		m.preview.SetContent(emptyStyle.Render("(nothing to preview)"))
		return
	}
	out, err := terminalRender(md, width, m.opts.Style)
	if err != nil {
		m.log.Printf("preview: %v", err)
		out = md
	}
	m.preview.SetContent(out)
}

// syncFrom copies the scroll position of the src pane onto the other pane.
func (m *model) syncFrom(src pane) {
	if src == paneCards {
		m.preview.SetYOffset(syncOffset(
			m.cards.YOffset, m.cards.TotalLineCount(), m.cards.Height,
			m.preview.TotalLineCount(), m.preview.Height))
		return
	}
	m.cards.SetYOffset(syncOffset(
		m.preview.YOffset, m.preview.TotalLineCount(), m.preview.Height,
		m.cards.TotalLineCount(), m.cards.Height))
}

func (m *model) scrollPreview(delta int) {
	m.preview.SetYOffset(m.preview.YOffset + delta)
	m.syncFrom(panePreview)
}

func (m *model) scrollCards(delta int) {
	m.cards.SetYOffset(m.cards.YOffset + delta)
	m.syncFrom(paneCards)
}

// handleMouse scrolls the pane under the pointer and lets it drive the other.
func (m model) handleMouse(msg tea.MouseMsg) model {
	var delta int
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		delta = -3
	case tea.MouseButtonWheelDown:
		delta = 3
	default:
		return m
	}
	if msg.X < m.width/2 {
		m.focus = paneCards
		m.scrollCards(delta)
	} else {
		m.focus = panePreview
		m.scrollPreview(delta)
	}
	return m
}

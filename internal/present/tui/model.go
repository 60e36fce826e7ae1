package tui

import (
	"context"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mithrel/linemark/internal/blocks"
	"github.com/mithrel/linemark/internal/doc"
	"github.com/mithrel/linemark/internal/render"
	"github.com/mithrel/linemark/pkg/api"
)

// Options configures the editor.
type Options struct {
	// Style is the glamour style used by the preview pane.
	Style string
	// WordWrap fixes the preview wrap width; zero follows the pane width.
	WordWrap int
	// ExportPath is where "w" writes the document.
	ExportPath string
	// ExportFormat is "markdown" or "html".
	ExportFormat string
	// HTML configures the HTML export.
	HTML render.Options
	// Copy puts text on the clipboard; nil disables copying.
	Copy func(string) error
	Log  *log.Logger
}

type pane int

const (
	paneCards pane = iota
	panePreview
)

// Run opens the dual-pane editor on d and returns the document as left on exit.
func Run(ctx context.Context, d *doc.Document, opts Options) (*doc.Document, error) {
	m := newModel(ctx, d, opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return d, err
	}
	if fm, ok := final.(model); ok {
		return fm.doc, nil
	}
	return d, nil
}

type model struct {
	ctx    context.Context
	doc    *doc.Document
	opts   Options
	log    *log.Logger
	cursor int
	focus  pane

	cards   viewport.Model
	preview viewport.Model
	cardTop []int
	cardH   []int

	editing bool
	editor  textarea.Model
	picker  *typeModal

	width  int
	height int
	status string
	saved  string // fingerprint at last export

	quitArmed  bool   // a quit key was pressed with unexported changes
	previewKey string // style, width and markdown of the rendered preview
}

func newModel(ctx context.Context, d *doc.Document, opts Options) model {
	logger := opts.Log
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.Prompt = ""
	m := model{
		ctx:     ctx,
		doc:     d,
		opts:    opts,
		log:     logger,
		cards:   viewport.New(40, 20),
		preview: viewport.New(40, 20),
		editor:  ta,
		saved:   d.Fingerprint(),
	}
	m.refresh()
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.applyLayout()
		if m.picker != nil {
			m.picker.resizeForTerm(msg.Width, msg.Height)
		}
		m.refresh()
		return m, nil
	case copyResultMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Copy failed: %v", msg.err)
			m.log.Printf("copy: %v", msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("Copied %d bytes", msg.n)
		return m, nil
	case writeResultMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Write failed: %v", msg.err)
			m.log.Printf("export %s: %v", msg.path, msg.err)
			return m, nil
		}
		m.saved = msg.fingerprint
		m.status = "Wrote " + msg.path
		m.log.Printf("export wrote %s", msg.path)
		return m, nil
	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	case tea.KeyMsg:
		if m.picker != nil {
			return m.updatePicker(msg)
		}
		if m.editing {
			return m.updateEditor(msg)
		}
		return m.updateNormal(msg)
	}
	if m.editing {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	armed := m.quitArmed
	m.quitArmed = false
	switch key {
	case "q", "ctrl+c", "ctrl+q":
		if m.dirty() && !armed {
			m.quitArmed = true
			m.status = "Unexported changes: press q again to quit, w to write"
			return m, nil
		}
		return m, tea.Quit
	case "tab":
		if m.focus == paneCards {
			m.focus = panePreview
		} else {
			m.focus = paneCards
		}
		return m, nil
	case "up", "k":
		if m.focus == panePreview {
			m.scrollPreview(-1)
			return m, nil
		}
		m.moveCursor(-1)
		return m, nil
	case "down", "j":
		if m.focus == panePreview {
			m.scrollPreview(1)
			return m, nil
		}
		m.moveCursor(1)
		return m, nil
	case "pgup":
		if m.focus == panePreview {
			m.scrollPreview(-m.preview.Height)
			return m, nil
		}
		m.moveCursor(-5)
		return m, nil
	case "pgdown":
		if m.focus == panePreview {
			m.scrollPreview(m.preview.Height)
			return m, nil
		}
		m.moveCursor(5)
		return m, nil
	case "g", "home":
		m.moveCursor(-m.doc.Len())
		return m, nil
	case "G", "end":
		m.moveCursor(m.doc.Len())
		return m, nil
	case "enter", "e":
		return m.startEditing()
	case "t":
		cur, _ := m.doc.Item(m.cursor)
		m.picker = newTypeModal(cur.Type, m.width, m.height)
		return m, nil
	case "1", "2", "3", "4", "5", "6", "7":
		n, _ := strconv.Atoi(key)
		m.setType(api.AllBlockTypes()[n-1])
		return m, nil
	case " ":
		active, err := m.doc.Toggle(m.cursor)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		if active {
			m.status = fmt.Sprintf("Item %d on", m.cursor+1)
		} else {
			m.status = fmt.Sprintf("Item %d off", m.cursor+1)
		}
		m.refresh()
		return m, nil
	case "o", "O":
		after := m.cursor
		if key == "O" {
			after = m.cursor - 1
		}
		at, err := m.doc.Insert(after)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.cursor = at
		m.refresh()
		return m.startEditing()
	case "d", "delete":
		if err := m.doc.Delete(m.cursor); err != nil {
			m.status = capitalize(err.Error())
			return m, nil
		}
		if m.cursor >= m.doc.Len() {
			m.cursor = m.doc.Len() - 1
		}
		m.status = "Deleted item"
		m.refresh()
		return m, nil
	case "J", "K":
		delta := 1
		if key == "K" {
			delta = -1
		}
		j, err := m.doc.Move(m.cursor, delta)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.cursor = j
		m.refresh()
		return m, nil
	case "b", "i", "s", "c", "l", "r", "x":
		dec := decorationKeys[key]
		if err := m.doc.Decorate(m.cursor, dec); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.status = "Applied " + string(dec)
		m.refresh()
		return m, nil
	case "u", "ctrl+z":
		if err := m.doc.Undo(); err != nil {
			m.status = capitalize(err.Error())
			return m, nil
		}
		m.clampCursor()
		m.status = "Undo"
		m.refresh()
		return m, nil
	case "U", "ctrl+y", "ctrl+r":
		if err := m.doc.Redo(); err != nil {
			m.status = capitalize(err.Error())
			return m, nil
		}
		m.clampCursor()
		m.status = "Redo"
		m.refresh()
		return m, nil
	case "y":
		md := m.doc.Markdown()
		if md == "" {
			m.status = "No markdown to copy"
			return m, nil
		}
		if m.opts.Copy == nil {
			m.status = "Clipboard disabled"
			return m, nil
		}
		m.status = "Copying…"
		return m, copyCmd(m.opts.Copy, md)
	case "w":
		md := m.doc.Markdown()
		if md == "" {
			m.status = "No markdown to write"
			return m, nil
		}
		content, err := m.exportContent(md)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.status = "Writing…"
		return m, writeCmd(m.opts.ExportPath, content, m.doc.Fingerprint())
	}
	return m, nil
}

var decorationKeys = map[string]blocks.Decoration{
	"b": blocks.DecorBold,
	"i": blocks.DecorItalic,
	"s": blocks.DecorStrike,
	"c": blocks.DecorCode,
	"l": blocks.DecorLink,
	"r": blocks.DecorRule,
	"x": blocks.DecorDetails,
}

func (m model) startEditing() (tea.Model, tea.Cmd) {
	it, err := m.doc.Item(m.cursor)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.editing = true
	m.focus = paneCards
	m.editor.SetValue(it.Text)
	m.sizeEditor()
	cmd := m.editor.Focus()
	m.refresh()
	return m, cmd
}

func (m model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+s":
		if err := m.doc.SetText(m.cursor, m.editor.Value()); err != nil {
			m.status = err.Error()
		} else {
			m.status = fmt.Sprintf("Saved item %d", m.cursor+1)
		}
		m.editing = false
		m.editor.Blur()
		m.refresh()
		return m, nil
	case "ctrl+c":
		m.editing = false
		m.editor.Blur()
		m.status = "Edit discarded"
		m.refresh()
		return m, nil
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m.sizeEditor()
	m.refresh()
	return m, cmd
}

func (m model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c", "ctrl+q":
		m.picker = nil
		return m, nil
	case "enter":
		t, ok := m.picker.selected()
		m.picker = nil
		if ok {
			m.setType(t)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.update(msg)
	return m, cmd
}

func (m *model) setType(t api.BlockType) {
	if err := m.doc.SetType(m.cursor, t); err != nil {
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("Item %d → %s", m.cursor+1, blocks.Label(t))
	m.refresh()
}

func (m *model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
	m.refresh()
}

func (m *model) clampCursor() {
	if m.cursor >= m.doc.Len() {
		m.cursor = m.doc.Len() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// dirty reports whether the document changed since the last export.
func (m model) dirty() bool { return m.doc.Fingerprint() != m.saved }

func (m *model) exportContent(md string) (string, error) {
	if strings.EqualFold(strings.TrimSpace(m.opts.ExportFormat), "html") {
		return render.HTMLPage(firstHeading(m.doc.Items()), md, m.opts.HTML)
	}
	return md + "\n", nil
}

// firstHeading returns the first active heading text for use as a page title.
func firstHeading(items []api.Item) string {
	for _, it := range items {
		if !it.Active {
			continue
		}
		if it.Type == api.BlockH2 || it.Type == api.BlockH3 {
			return strings.TrimSpace(blocks.Strip(it.Text))
		}
	}
	return ""
}

func (m *model) applyLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	leftW := m.width / 2
	rightW := m.width - leftW
	h := max(3, m.height-1-2)
	m.cards.Width = max(10, leftW-2)
	m.cards.Height = h
	m.preview.Width = max(10, rightW-2)
	m.preview.Height = h
	m.sizeEditor()
}

func (m *model) sizeEditor() {
	m.editor.SetWidth(max(10, m.cards.Width-gutterWidth))
	lines := strings.Count(m.editor.Value(), "\n") + 2
	m.editor.SetHeight(min(max(2, lines), max(2, m.cards.Height-2)))
}

func (m model) renderFooter() string {
	left := "↑/↓ move • enter edit • t type • space on/off • o add • d del • u/U undo/redo • y copy • w write • q quit"
	if m.editing {
		left = "esc/ctrl+s save • ctrl+c discard"
	}

	var right string
	if m.status != "" {
		right = m.status + " • "
	}
	dirty := ""
	if m.dirty() {
		dirty = "*"
	}
	right += fmt.Sprintf("%d/%d active%s ", m.doc.ActiveCount(), m.doc.Len(), dirty)

	space := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if space < 1 {
		left = ""
		space = max(1, m.width-lipgloss.Width(right))
	}
	return left + strings.Repeat(" ", space) + right
}

func (m model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "loading…\n"
	}
	left := paneStyle(m.focus == paneCards).Render(m.cards.View())
	right := paneStyle(m.focus == panePreview).Render(m.preview.View())
	base := lipgloss.JoinHorizontal(lipgloss.Top, left, right) + "\n" + m.renderFooter()
	if m.picker != nil {
		return m.renderOverlay(base, m.picker)
	}
	return base
}

func paneStyle(focused bool) lipgloss.Style {
	s := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	if focused {
		s = s.BorderForeground(lipgloss.Color("63"))
	}
	return s
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

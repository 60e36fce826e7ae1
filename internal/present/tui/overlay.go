package tui

import (
	"github.com/charmbracelet/lipgloss/v2"
)

// renderOverlay draws the type picker over a faded copy of the editor view.
// The picker is measured after rendering so its border and padding count.
func (m model) renderOverlay(base string, p *typeModal) string {
	termW, termH := m.width, m.height
	if termW <= 0 || termH <= 0 {
		termW, termH = 80, 24
	}
	fg := p.View()
	w, h := lipgloss.Width(fg), lipgloss.Height(fg)
	x, y := overlayOrigin(termW, termH, w, h)

	faded := lipgloss.NewLayer(lipgloss.NewStyle().Faint(true).Render(base)).
		Width(termW).
		Height(termH)
	picker := lipgloss.NewLayer(fg).
		Width(min(w, termW)).
		Height(min(h, termH)).
		X(x).
		Y(y).
		Z(1)

	return lipgloss.NewCanvas(faded, picker).Render()
}

// overlayOrigin centers a w x h box horizontally and places it a third of the
// way down, keeping the title row visible and the box inside the terminal.
func overlayOrigin(termW, termH, w, h int) (x, y int) {
	x = max(0, (termW-w)/2)
	y = (termH - h) / 3
	if y < 1 {
		y = 1
	}
	if y+h > termH {
		y = max(0, termH-h)
	}
	return x, y
}

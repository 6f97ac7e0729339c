package view

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lineview/document"
	"github.com/iw2rmb/lineview/reveal"
)

// Wheel steps in cells.
const (
	wheelLines   = 3
	wheelColumns = 6
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	lh := m.layout.LineHeight()
	switch msg.Button { //nolint:exhaustive
	case tea.MouseButtonWheelUp:
		m.scrollBy(-wheelLines*lh, 0)
		return m, m.render()
	case tea.MouseButtonWheelDown:
		m.scrollBy(wheelLines*lh, 0)
		return m, m.render()
	case tea.MouseButtonWheelLeft:
		m.scrollBy(0, -wheelColumns)
		return m, m.render()
	case tea.MouseButtonWheelRight:
		m.scrollBy(0, wheelColumns)
		return m, m.render()
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.mouseInBounds(msg.X, msg.Y) {
			return m, nil
		}
		p, ok := m.screenToDocPos(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		m.cursor = p
		m.anchor = p
		m.dragging = true
		m.publishCursor()
		return m, m.render()

	case tea.MouseActionMotion:
		if !m.dragging {
			return m, nil
		}
		x, y := m.clampMouseToBounds(msg.X, msg.Y)
		p, ok := m.screenToDocPos(x, y)
		if !ok {
			return m, nil
		}
		m.cursor = p
		m.publishCursor()
		m.revealCursor(reveal.Simple, reveal.SourceMouse)
		return m, m.render()

	case tea.MouseActionRelease:
		m.dragging = false
	}
	return m, nil
}

// screenToDocPos maps model-local cells to a document position. ok is false
// when the row holds no rendered line.
func (m Model) screenToDocPos(x, y int) (document.Pos, bool) {
	left, top := m.frameOrigin()
	line := document.ViewToModelLine(m.firstRowLine() + y - top)
	offset := m.layout.ScrollLeft() + float64(x-left-m.gutterWidth())*m.ctrl.Options().CharWidth
	return m.ctrl.PositionAt(line, offset)
}

// frameOrigin is the cell where the first row starts inside the viewport
// style frame.
func (m Model) frameOrigin() (x, y int) {
	st := m.viewport.Style
	x = st.GetMarginLeft() + st.GetBorderLeftSize() + st.GetPaddingLeft()
	y = st.GetMarginTop() + st.GetBorderTopSize() + st.GetPaddingTop()
	return x, y
}

func (m Model) mouseInBounds(x, y int) bool {
	w, h := m.frameWidth(), m.frameHeight()
	if w <= 0 || h <= 0 {
		return false
	}
	left, top := m.frameOrigin()
	return x >= left && x < left+w && y >= top && y < top+h
}

func (m Model) clampMouseToBounds(x, y int) (int, int) {
	left, top := m.frameOrigin()
	if w := m.frameWidth(); w > 0 {
		x = max(left, min(x, left+w-1))
	}
	if h := m.frameHeight(); h > 0 {
		y = max(top, min(y, top+h-1))
	}
	return x, y
}

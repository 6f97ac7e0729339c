package view

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lineview/document"
	"github.com/iw2rmb/lineview/reveal"
	"github.com/iw2rmb/lineview/viewevent"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	// Paste events always insert literal text.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		return m.edit(func(pos document.Pos) (document.Pos, []viewevent.Event) {
			return m.doc.Insert(pos, string(msg.Runes))
		})
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m = m.moveCursor(m.cursor.Line, m.cursor.Column-1)
	case key.Matches(msg, km.Right):
		m = m.moveCursor(m.cursor.Line, m.cursor.Column+1)
	case key.Matches(msg, km.Up):
		m = m.moveCursor(m.cursor.Line-1, m.cursor.Column)
	case key.Matches(msg, km.Down):
		m = m.moveCursor(m.cursor.Line+1, m.cursor.Column)
	case key.Matches(msg, km.Home):
		m = m.moveCursor(m.cursor.Line, 1)
	case key.Matches(msg, km.End):
		m = m.moveCursor(m.cursor.Line, m.doc.LineMaxColumn(m.cursor.Line))

	case key.Matches(msg, km.PageUp):
		return m.page(-1), m.render()
	case key.Matches(msg, km.PageDown):
		return m.page(1), m.render()

	case key.Matches(msg, km.Center):
		m.revealCursor(reveal.CenterIfOutsideViewport, "")
		return m, m.render()
	case key.Matches(msg, km.NearTop):
		m.revealCursor(reveal.NearTop, "")
		return m, m.render()

	case key.Matches(msg, km.Backspace):
		return m.edit(m.doc.DeleteBackward)
	case key.Matches(msg, km.Enter):
		return m.edit(func(pos document.Pos) (document.Pos, []viewevent.Event) {
			return m.doc.Insert(pos, "\n")
		})
	case key.Matches(msg, km.DeleteLine):
		return m.edit(func(pos document.Pos) (document.Pos, []viewevent.Event) {
			events := m.doc.DeleteLines(pos.Line, pos.Line)
			return m.doc.ClampPos(document.Pos{Line: pos.Line, Column: 1}), events
		})

	default:
		switch {
		case msg.Type == tea.KeyTab:
			return m.edit(func(pos document.Pos) (document.Pos, []viewevent.Event) {
				return m.doc.Insert(pos, "\t")
			})
		case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
			return m.edit(func(pos document.Pos) (document.Pos, []viewevent.Event) {
				return m.doc.Insert(pos, string(msg.Runes))
			})
		}
		return m, nil
	}

	m.revealCursor(reveal.Simple, "")
	return m, m.render()
}

func (m Model) moveCursor(line, col int) Model {
	next := m.doc.ClampPos(document.Pos{Line: line, Column: col})
	if next != m.cursor || m.anchor != m.cursor {
		m.cursor = next
		m.anchor = next
		m.publishCursor()
	}
	return m
}

// page scrolls by one screen and carries the cursor along.
func (m Model) page(dir int) Model {
	rows := max(1, m.frameHeight()-1)
	m.scrollBy(float64(dir*rows)*m.layout.LineHeight(), 0)
	m = m.moveCursor(m.cursor.Line+dir*rows, m.cursor.Column)
	m.revealCursor(reveal.Simple, "")
	return m
}

// edit applies a document mutation at the cursor, forwards its events and
// keeps the cursor in view.
func (m Model) edit(fn func(document.Pos) (document.Pos, []viewevent.Event)) (Model, tea.Cmd) {
	if m.cfg.ReadOnly {
		return m, nil
	}
	next, events := fn(m.cursor)
	if len(events) == 0 {
		return m, nil
	}
	m.apply(events)
	m.cursor = next
	m.anchor = next
	m.publishCursor()
	m.revealCursor(reveal.Simple, "")
	return m, m.render()
}

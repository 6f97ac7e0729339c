package view

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lineview/document"
	"github.com/iw2rmb/lineview/reveal"
	"github.com/iw2rmb/lineview/viewconfig"
	"github.com/iw2rmb/lineview/viewevent"
	"github.com/iw2rmb/lineview/viewlayout"
	"github.com/iw2rmb/lineview/viewlines"
)

const scrollBeyondLastColumns = 4

// animationFrameMsg advances a smooth scroll by one frame.
type animationFrameMsg struct{}

// frame holds the rows last committed by the controller.
type frame struct {
	startRow int
	rows     []string
	// ticking is set while an animation frame is in flight.
	ticking bool
}

func (f *frame) RenderRows(startRow, endRow int, lines []*viewlines.Line) {
	f.startRow = startRow
	f.rows = f.rows[:0]
	for _, l := range lines {
		f.rows = append(f.rows, l.Text())
	}
}

// row returns the committed text of 1-based line n.
func (f *frame) row(n int) (string, bool) {
	idx := n - 1 - f.startRow
	if idx < 0 || idx >= len(f.rows) {
		return "", false
	}
	return f.rows[idx], true
}

// Reader is the read-only side of the hosted document. Edits go through
// SetText, Apply or input so the controller sees their events.
type Reader interface {
	Text() string
	Version() uint64
	LineCount() int
	LineContent(n int) string
	LineMaxColumn(n int) int
}

// Model is a Bubble Tea component that renders a document through a
// virtualized line window.
type Model struct {
	cfg Config

	doc    *document.Document
	layout *viewlayout.Layout
	ctrl   *viewlines.Controller
	frame  *frame

	// viewport frames the committed rows. Its YOffset stays 0: scrolling is
	// owned by layout.
	viewport viewport.Model

	cursor   document.Pos
	anchor   document.Pos
	dragging bool
}

func New(cfg Config) (Model, error) {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Options == (viewconfig.Options{}) {
		cfg.Options = viewconfig.Default()
	}
	opts := cfg.Options.Normalize()

	doc := document.New(cfg.Text)
	layout := viewlayout.New(doc.LineCount, viewlayout.Options{
		LineHeight:           opts.LineHeight,
		ScrollBeyondLastLine: cfg.ScrollBeyondLastLine,
		// Room for the cursor past the end of the widest line.
		ScrollBeyondLastColumn: scrollBeyondLastColumns * opts.CharWidth,
	})
	fr := &frame{}
	ctrl, err := viewlines.New(layout, doc, fr, opts)
	if err != nil {
		return Model{}, fmt.Errorf("view: %w", err)
	}

	vp := viewport.New(0, 0)
	vp.Style = cfg.Style.Frame

	start := document.Pos{Line: 1, Column: 1}
	m := Model{
		cfg:      cfg,
		doc:      doc,
		layout:   layout,
		ctrl:     ctrl,
		frame:    fr,
		viewport: vp,
		cursor:   start,
		anchor:   start,
	}
	m.publishCursor()
	return m, nil
}

func (m Model) Document() Reader { return m.doc }

func (m Model) Cursor() document.Pos { return m.cursor }

// Selection is the committed cursor state: the span between the drag anchor
// and the cursor. It is empty unless a drag is selecting text.
func (m Model) Selection() reveal.Selection {
	if sel := m.ctrl.Selections(); len(sel) > 0 {
		return sel[0]
	}
	return selectionBetween(m.cursor, m.cursor)
}

func (m Model) Init() tea.Cmd { return m.render() }

// SetSize resizes the view, frame included. The new rows are drawn on the
// next render, which Update runs for tea.WindowSizeMsg.
func (m Model) SetSize(width, height int) Model {
	m.viewport.Width = max(0, width)
	m.viewport.Height = max(0, height)
	m.syncLayoutSize()
	return m
}

// SetText replaces the whole document. The window and line widths are
// flushed and the cursor returns to the start.
func (m Model) SetText(text string) (Model, tea.Cmd) {
	m.apply(m.doc.SetText(text))
	m.cursor = document.Pos{Line: 1, Column: 1}
	m.anchor = m.cursor
	m.publishCursor()
	return m, m.render()
}

// Apply forwards view events raised outside the model, such as decoration
// or theme changes, and re-renders when any of them needs it.
func (m Model) Apply(events ...viewevent.Event) tea.Cmd {
	if !m.apply(events) {
		return nil
	}
	return m.render()
}

// Close stops deferred work. The model ignores later task messages.
func (m Model) Close() { m.ctrl.Dispose() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.SetSize(msg.Width, msg.Height)
		return m, m.render()
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case animationFrameMsg:
		return m, m.animate()
	default:
		if m.ctrl.Update(msg) {
			return m, m.render()
		}
		return m, nil
	}
}

func (m Model) View() string {
	vp := m.viewport
	vp.SetContent(m.renderContent())
	return vp.View()
}

// render re-runs the controller and keeps an animation frame in flight
// while a smooth scroll runs.
func (m Model) render() tea.Cmd {
	m.syncLayoutSize()
	cmd := m.ctrl.Render()
	if m.layout.Animating() && !m.frame.ticking {
		m.frame.ticking = true
		cmd = tea.Batch(cmd, nextFrame())
	}
	return cmd
}

func (m Model) animate() tea.Cmd {
	m.frame.ticking = false
	before := m.layout.ScrollTop()
	m.layout.AnimateStep()
	if m.layout.ScrollTop() != before {
		m.ctrl.Handle(m.scrollChanged(true, false))
	}
	return m.render()
}

func nextFrame() tea.Cmd {
	return tea.Tick(viewlayout.FrameInterval(), func(time.Time) tea.Msg { return animationFrameMsg{} })
}

func (m Model) scrollChanged(top, left bool) viewevent.ScrollChanged {
	return viewevent.ScrollChanged{
		ScrollTop:         m.layout.ScrollTop(),
		ScrollLeft:        m.layout.ScrollLeft(),
		ScrollWidth:       m.layout.ScrollWidth(),
		ScrollTopChanged:  top,
		ScrollLeftChanged: left,
	}
}

// scrollBy moves the viewport on behalf of the user and tells the
// controller someone else scrolled.
func (m Model) scrollBy(dTop, dLeft float64) {
	beforeTop, beforeLeft := m.layout.ScrollTop(), m.layout.ScrollLeft()
	m.layout.SetScrollPosition(viewlayout.ScrollPosition{
		ScrollTop:  m.layout.FutureViewport().Top + dTop,
		ScrollLeft: beforeLeft + dLeft,
	}, reveal.Immediate)
	top := m.layout.ScrollTop() != beforeTop
	left := m.layout.ScrollLeft() != beforeLeft
	if top || left {
		m.ctrl.Handle(m.scrollChanged(top, left))
	}
}

func (m Model) apply(events []viewevent.Event) bool {
	dirty := false
	for _, ev := range events {
		if m.ctrl.Handle(ev) {
			dirty = true
		}
	}
	return dirty
}

func (m Model) publishCursor() {
	sel := selectionBetween(m.anchor, m.cursor)
	m.ctrl.Handle(viewevent.CursorStateChanged{Selections: []reveal.Selection{sel}})
}

// revealCursor asks the controller to bring the cursor into view.
func (m Model) revealCursor(vt reveal.VerticalType, source string) {
	line := document.ModelToViewLine(m.cursor.Line)
	r := reveal.Range{StartLine: line, StartColumn: m.cursor.Column, EndLine: line, EndColumn: m.cursor.Column}
	st := reveal.Immediate
	if m.cfg.SmoothScrolling {
		st = reveal.Smooth
	}
	m.ctrl.Handle(viewevent.RevealRangeRequest{Request: reveal.Request{
		Source:           source,
		Range:            &r,
		RevealHorizontal: true,
		VerticalType:     vt,
		ScrollType:       st,
	}})
}

func (m Model) gutterWidth() int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return gutterDigits(m.doc.LineCount()) + 1
}

// frameWidth and frameHeight are the cells inside the viewport style frame.
func (m Model) frameWidth() int {
	return max(0, m.viewport.Width-m.viewport.Style.GetHorizontalFrameSize())
}

func (m Model) frameHeight() int {
	return max(0, m.viewport.Height-m.viewport.Style.GetVerticalFrameSize())
}

// contentWidth excludes the gutter.
func (m Model) contentWidth() int {
	return max(0, m.frameWidth()-m.gutterWidth())
}

func (m Model) syncLayoutSize() {
	m.layout.SetSize(float64(m.contentWidth()), float64(m.frameHeight()))
}

// firstRowLine is the line drawn on screen row 0.
func (m Model) firstRowLine() int {
	return int(math.Floor(m.layout.ScrollTop()/m.layout.LineHeight())) + 1
}

func gutterDigits(lineCount int) int {
	digits := 1
	for n := lineCount; n >= 10; n /= 10 {
		digits++
	}
	return digits
}

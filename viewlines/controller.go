package viewlines

import (
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lineview/document"
	"github.com/iw2rmb/lineview/reveal"
	"github.com/iw2rmb/lineview/viewconfig"
	"github.com/iw2rmb/lineview/viewevent"
	"github.com/iw2rmb/lineview/viewlayout"
)

// Layout is the host view-model the controller reads geometry from and
// writes scroll positions to.
type Layout interface {
	reveal.Geometry
	LineCount() int
	Width() float64
	ScrollTop() float64
	ScrollLeft() float64
	FutureViewport() reveal.Viewport
	VisibleLines() (start, end int)
	ValidateScrollPosition(p viewlayout.ScrollPosition) viewlayout.ScrollPosition
	SetScrollPosition(p viewlayout.ScrollPosition, st reveal.ScrollType)
	SetMaxLineWidth(w int)
}

// RenderDispatcher receives the committed rows. Rows are 0-based and
// inclusive; endRow < startRow means nothing is visible.
type RenderDispatcher interface {
	RenderRows(startRow, endRow int, lines []*Line)
}

type horizontalReveal struct {
	mode       reveal.HorizontalMode
	minimal    bool
	rng        reveal.Range
	selections []reveal.Selection
	scrollType reveal.ScrollType

	startScrollTop float64
	stopScrollTop  float64
}

func (h *horizontalReveal) lineSpan() (minLine, maxLine int) {
	if h.mode == reveal.HorizontalRange {
		return h.rng.StartLine, h.rng.EndLine
	}
	minLine, maxLine = h.selections[0].StartLine, h.selections[0].EndLine
	for _, s := range h.selections[1:] {
		minLine = min(minLine, s.StartLine)
		maxLine = max(maxLine, s.EndLine)
	}
	return minLine, maxLine
}

// Controller owns the line window and everything derived from it.
type Controller struct {
	opts   viewconfig.Options
	logger *slog.Logger

	layout     Layout
	src        LineSource
	dispatcher RenderDispatcher

	win     *Window
	widths  *WidthTracker
	checker MonospaceChecker
	planner reveal.Planner

	widthTask     *Task
	monospaceTask *Task

	horizontal *horizontalReveal
	selections []reveal.Selection
	disposed   bool
}

// New builds a controller. dispatcher may be nil.
func New(layout Layout, src LineSource, dispatcher RenderDispatcher, opts viewconfig.Options) (*Controller, error) {
	if layout == nil {
		return nil, errors.New("viewlines: nil layout")
	}
	if src == nil {
		return nil, errors.New("viewlines: nil line source")
	}
	opts = opts.Normalize()
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("viewlines: %w", err)
	}

	c := &Controller{
		opts:       opts,
		logger:     opts.LoggerOrDiscard(),
		layout:     layout,
		src:        src,
		dispatcher: dispatcher,
	}
	c.win = newWindow(src, c.lineOptions(opts.Monospace))
	c.widths = NewWidthTracker(layout.SetMaxLineWidth)
	c.checker = NewMonospaceChecker(c.logger)
	c.planner = reveal.NewPlanner(opts.RevealOptions(), layout)
	c.widthTask = NewTask("line-widths", LineWidthsDelay, func() { c.UpdateLineWidths(false) })
	c.monospaceTask = NewTask("monospace-check", MonospaceAssumptionDelay, c.CheckMonospaceAssumptions)
	return c, nil
}

func (c *Controller) lineOptions(fast bool) lineOptions {
	return lineOptions{charWidth: c.opts.CharWidth, tabWidth: c.opts.TabWidth, fast: fast}
}

func (c *Controller) Options() viewconfig.Options { return c.opts }

// Window exposes the materialized lines.
func (c *Controller) Window() *Window { return c.win }

func (c *Controller) MaxLineWidth() int { return c.widths.Max() }

func (c *Controller) Selections() []reveal.Selection { return c.selections }

// Handle applies one view event and reports whether a render is needed.
func (c *Controller) Handle(ev viewevent.Event) bool {
	if c.disposed {
		return false
	}
	switch ev := ev.(type) {
	case viewevent.ConfigurationChanged:
		return c.onConfigurationChanged(ev.Options)
	case viewevent.CursorStateChanged:
		c.selections = append(c.selections[:0], ev.Selections...)
		return true
	case viewevent.DecorationsChanged:
		c.win.InvalidateAll()
		return true
	case viewevent.Flushed:
		c.win.OnFlushed()
		c.widths.Flush()
		return true
	case viewevent.LinesChanged:
		return c.win.OnLinesChanged(ev.FromLine, ev.ToLine)
	case viewevent.LinesDeleted:
		c.win.OnLinesDeleted(ev.FromLine, ev.ToLine)
		return true
	case viewevent.LinesInserted:
		c.win.OnLinesInserted(ev.FromLine, ev.ToLine)
		return true
	case viewevent.RevealRangeRequest:
		return c.onRevealRangeRequest(ev.Request)
	case viewevent.ScrollChanged:
		c.onScrollChanged(ev)
		return true
	case viewevent.ThemeChanged:
		c.win.InvalidateAll()
		return true
	case viewevent.TokensChanged:
		return c.win.OnLinesChanged(ev.FromLine, ev.ToLine)
	case viewevent.ZonesChanged:
		return true
	}
	return false
}

func (c *Controller) onConfigurationChanged(next viewconfig.Options) bool {
	next = next.Normalize()
	if err := next.Validate(); err != nil {
		c.logger.Warn("ignoring invalid view options", "error", err)
		return false
	}

	fast := c.win.FastPath()
	if c.opts.FontChanged(next) {
		// A new font gets a fresh chance at the fixed-width path.
		fast = next.Monospace
	}
	c.opts = next
	c.logger = next.LoggerOrDiscard()
	c.checker = NewMonospaceChecker(c.logger)
	c.planner = reveal.NewPlanner(next.RevealOptions(), c.layout)
	c.win.setOptions(c.lineOptions(fast))
	return true
}

func (c *Controller) onRevealRangeRequest(req reveal.Request) bool {
	current := c.layout.ScrollTop()
	plan, ok := c.planner.Plan(c.layout.FutureViewport(), current, req)
	if !ok {
		c.logger.Debug("reveal dropped", "source", req.Source, "vertical", req.VerticalType.String())
		return false
	}

	pos := c.layout.ValidateScrollPosition(viewlayout.ScrollPosition{
		ScrollTop:  plan.ScrollTop,
		ScrollLeft: c.layout.ScrollLeft(),
	})
	scrollType := reveal.EffectiveScrollType(req.ScrollType, current, pos.ScrollTop, c.opts.LineHeight)

	c.horizontal = nil
	switch plan.Horizontal {
	case reveal.HorizontalReset:
		pos.ScrollLeft = 0
	case reveal.HorizontalRange, reveal.HorizontalSelections:
		c.horizontal = &horizontalReveal{
			mode:           plan.Horizontal,
			minimal:        req.MinimalReveal,
			rng:            plan.Range,
			selections:     plan.Selections,
			scrollType:     scrollType,
			startScrollTop: current,
			stopScrollTop:  pos.ScrollTop,
		}
	}

	c.layout.SetScrollPosition(pos, scrollType)
	return true
}

func (c *Controller) onScrollChanged(ev viewevent.ScrollChanged) {
	if c.horizontal == nil {
		return
	}
	if ev.ScrollLeftChanged {
		// Someone else scrolled horizontally.
		c.horizontal = nil
		return
	}
	if ev.ScrollTopChanged {
		lo := min(c.horizontal.startScrollTop, c.horizontal.stopScrollTop)
		hi := max(c.horizontal.startScrollTop, c.horizontal.stopScrollTop)
		if ev.ScrollTop < lo || ev.ScrollTop > hi {
			c.horizontal = nil
		}
	}
}

// Render re-windows to the visible lines, commits them to the dispatcher and
// returns the commands for the deferred passes it scheduled.
func (c *Controller) Render() tea.Cmd {
	if c.disposed {
		return nil
	}
	start, end := c.layout.VisibleLines()
	c.win.Render(start, end)
	if c.dispatcher != nil {
		c.dispatcher.RenderRows(c.win.StartLineNumber()-1, c.win.EndLineNumber()-1, c.win.Lines())
	}

	c.resolveHorizontalReveal()

	var cmds []tea.Cmd
	if c.UpdateLineWidths(true) {
		c.widthTask.Cancel()
	} else {
		// Some widths need measuring; do it once the view settles.
		cmds = append(cmds, c.widthTask.Schedule())
	}
	if c.win.NeedsMonospaceCheck() {
		// Rescheduled on every render, so a 60 fps smooth scroll starts a
		// timer per frame and keeps pushing the check back until it settles.
		cmds = append(cmds, c.monospaceTask.Schedule())
	}
	return tea.Batch(cmds...)
}

func (c *Controller) resolveHorizontalReveal() {
	h := c.horizontal
	if h == nil {
		return
	}
	minLine, maxLine := h.lineSpan()
	if minLine < c.win.StartLineNumber() || maxLine > c.win.EndLineNumber() {
		// Wait until the target lines are rendered.
		return
	}
	c.horizontal = nil

	boxStart, boxEnd, ok := c.horizontalBox(h)
	if !ok {
		return
	}
	target, ok := reveal.HorizontalScrollLeft(reveal.HorizontalInput{
		ViewportLeft:  c.layout.ScrollLeft(),
		ViewportWidth: c.layout.Width(),
		BoxStart:      boxStart,
		BoxEnd:        boxEnd,
		Minimal:       h.minimal,
		Selections:    h.mode == reveal.HorizontalSelections,
		LeftPadding:   c.opts.RevealHorizontalLeftPadding,
		RightPadding:  c.opts.RevealHorizontalRightPadding,
	})
	if !ok {
		c.logger.Debug("horizontal reveal dropped", "box_start", boxStart, "box_end", boxEnd)
		return
	}

	// Grow the scroll width first so the clamp keeps the new scroll-left.
	c.EnsureMaxLineWidth(target.MaxHorizontalOffset)
	pos := c.layout.ValidateScrollPosition(viewlayout.ScrollPosition{
		ScrollTop:  c.layout.FutureViewport().Top,
		ScrollLeft: target.ScrollLeft,
	})
	c.layout.SetScrollPosition(pos, h.scrollType)
}

func (c *Controller) horizontalBox(h *horizontalReveal) (start, end float64, ok bool) {
	ranges := []reveal.Range{h.rng}
	if h.mode == reveal.HorizontalSelections {
		ranges = ranges[:0]
		for _, s := range h.selections {
			ranges = append(ranges, s.Range)
		}
	}

	first := true
	for _, r := range ranges {
		for n := r.StartLine; n <= r.EndLine; n++ {
			l, found := c.win.Line(n)
			if !found {
				continue
			}
			startCol, endCol := 1, len(l.cols())
			if n == r.StartLine {
				startCol = r.StartColumn
			}
			if n == r.EndLine {
				endCol = r.EndColumn
			}
			a, b := l.OffsetForColumn(startCol), l.OffsetForColumn(endCol)
			if a > b {
				a, b = b, a
			}
			if first {
				start, end, first = a, b, false
				continue
			}
			start, end = min(start, a), max(end, b)
		}
	}
	return start, end, !first
}

// Update runs a deferred pass whose delay elapsed. It reports whether msg
// belonged to this controller and ran, in which case the host re-renders.
func (c *Controller) Update(msg tea.Msg) bool {
	fired, ok := msg.(TaskFiredMsg)
	if !ok || c.disposed {
		return false
	}
	for _, t := range []*Task{c.widthTask, c.monospaceTask} {
		if t.Fire(fired) {
			c.logger.Debug("deferred pass ran", "task", t.Name())
			return true
		}
	}
	return false
}

// DeferredPending reports whether a width or monospace pass is waiting for
// its delay to elapse.
func (c *Controller) DeferredPending() bool {
	return c.widthTask.IsScheduled() || c.monospaceTask.IsScheduled()
}

// UpdateLineWidths folds windowed line widths into the maximum. See
// WidthTracker.Update.
func (c *Controller) UpdateLineWidths(fast bool) bool {
	all := c.widths.Update(c.win, c.layout.LineCount(), fast)
	if !all {
		c.logger.Debug("line widths incomplete", "start", c.win.StartLineNumber(), "end", c.win.EndLineNumber())
	}
	return all
}

// EnsureMaxLineWidth raises the tracked maximum to w.
func (c *Controller) EnsureMaxLineWidth(w float64) { c.widths.Ensure(w) }

// CheckMonospaceAssumptions validates the fixed-width shortcut on the
// current window.
func (c *Controller) CheckMonospaceAssumptions() {
	c.checker.Check(c.win)
}

// PositionAt maps an x offset on line n to a document position. ok is false
// when the line is not rendered.
func (c *Controller) PositionAt(n int, x float64) (document.Pos, bool) {
	return c.win.PositionAt(n, x)
}

// OffsetForColumn returns the x offset of a column on a rendered line.
func (c *Controller) OffsetForColumn(n, col int) (float64, bool) {
	return c.win.OffsetForColumn(n, col)
}

// Dispose cancels deferred passes. Later messages and events are ignored.
func (c *Controller) Dispose() {
	c.widthTask.Cancel()
	c.monospaceTask.Cancel()
	c.horizontal = nil
	c.disposed = true
}

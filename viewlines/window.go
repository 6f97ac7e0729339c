package viewlines

import "github.com/iw2rmb/lineview/document"

// LineSource supplies line content by 1-based line number.
type LineSource interface {
	LineCount() int
	LineContent(n int) string
}

// Window is the contiguous run of materialized lines [start, start+len).
type Window struct {
	src   LineSource
	opts  lineOptions
	start int
	lines []*Line
}

func newWindow(src LineSource, opts lineOptions) *Window {
	return &Window{src: src, opts: opts, start: 1}
}

func (w *Window) StartLineNumber() int { return w.start }

// EndLineNumber is StartLineNumber-1 when the window is empty.
func (w *Window) EndLineNumber() int { return w.start + len(w.lines) - 1 }

func (w *Window) Len() int { return len(w.lines) }

// Lines returns the materialized lines in order.
func (w *Window) Lines() []*Line { return w.lines }

// Line returns line n when it is inside the window.
func (w *Window) Line(n int) (*Line, bool) {
	idx := n - w.start
	if idx < 0 || idx >= len(w.lines) {
		return nil, false
	}
	return w.lines[idx], true
}

// FastPath reports whether newly rendered lines use the fixed-width path.
func (w *Window) FastPath() bool { return w.opts.fast }

// Render re-windows to [start, end], keeping lines that stay inside.
func (w *Window) Render(start, end int) {
	if end < start {
		w.start = max(1, start)
		w.lines = nil
		return
	}
	lines := make([]*Line, 0, end-start+1)
	for n := start; n <= end; n++ {
		if l, ok := w.Line(n); ok {
			lines = append(lines, l)
			continue
		}
		lines = append(lines, newLine(w.src.LineContent(n), w.opts))
	}
	w.start = start
	w.lines = lines
}

func (w *Window) OnFlushed() {
	w.start = 1
	w.lines = nil
}

// OnLinesChanged reloads the content of [from, to] and reports whether any
// of them were windowed.
func (w *Window) OnLinesChanged(from, to int) bool {
	changed := false
	for n := max(from, w.start); n <= min(to, w.EndLineNumber()); n++ {
		l, _ := w.Line(n)
		l.reset(w.src.LineContent(n), w.opts)
		changed = true
	}
	return changed
}

// OnLinesDeleted drops deleted lines and shifts the window for lines
// removed above it.
func (w *Window) OnLinesDeleted(from, to int) {
	if len(w.lines) == 0 {
		return
	}
	start, end := w.start, w.EndLineNumber()
	if to < start {
		w.start -= to - from + 1
		return
	}
	if from > end {
		return
	}

	delFrom := max(from, start) - start
	delTo := min(to, end) - start
	w.lines = append(w.lines[:delFrom], w.lines[delTo+1:]...)

	if from < start {
		w.start -= start - from
	}
}

// OnLinesInserted shifts the window for lines inserted above it and
// materializes lines inserted inside it. Lines pushed past the old end are
// dropped.
func (w *Window) OnLinesInserted(from, to int) {
	if len(w.lines) == 0 {
		return
	}
	count := to - from + 1
	start, end := w.start, w.EndLineNumber()
	if from <= start {
		w.start += count
		return
	}
	if from > end {
		return
	}

	idx := from - start
	if from+count > end {
		w.lines = w.lines[:idx]
		return
	}

	lines := make([]*Line, 0, len(w.lines))
	lines = append(lines, w.lines[:idx]...)
	for n := from; n <= to; n++ {
		lines = append(lines, newLine(w.src.LineContent(n), w.opts))
	}
	lines = append(lines, w.lines[idx:len(w.lines)-count]...)
	w.lines = lines
}

// InvalidateAll reloads every windowed line.
func (w *Window) InvalidateAll() {
	for i, l := range w.lines {
		l.reset(w.src.LineContent(w.start+i), w.opts)
	}
}

// InvalidateMonospace moves every windowed line, and every line rendered
// later, to the measured path.
func (w *Window) InvalidateMonospace() {
	w.opts.fast = false
	for _, l := range w.lines {
		l.InvalidateMonospace()
	}
}

func (w *Window) setOptions(opts lineOptions) {
	w.opts = opts
	w.InvalidateAll()
}

// NeedsMonospaceCheck reports whether any windowed line awaits validation.
func (w *Window) NeedsMonospaceCheck() bool {
	for _, l := range w.lines {
		if l.NeedsMonospaceCheck() {
			return true
		}
	}
	return false
}

// WidthIfFast returns the width of line n when it is windowed and cheap to
// compute. ok is false otherwise; a false result never means zero width.
func (w *Window) WidthIfFast(n int) (width float64, ok bool) {
	l, ok := w.Line(n)
	if !ok || !l.WidthIsFast() {
		return 0, false
	}
	return l.Width(), true
}

// OffsetForColumn returns the x offset of a 1-based column on line n.
func (w *Window) OffsetForColumn(n, col int) (float64, bool) {
	l, ok := w.Line(n)
	if !ok {
		return 0, false
	}
	return l.OffsetForColumn(col), true
}

// PositionAt maps an x offset on line n to a document position.
func (w *Window) PositionAt(n int, x float64) (document.Pos, bool) {
	l, ok := w.Line(n)
	if !ok {
		return document.Pos{}, false
	}
	return document.Pos{Line: n, Column: l.ColumnAtOffset(x)}, true
}

package viewlines

import (
	"math"

	graphemeutil "github.com/iw2rmb/lineview/internal/grapheme"
)

// monospaceTolerance is the share of a character width by which the
// fixed-width estimate may differ from the measured width.
const monospaceTolerance = 0.5

type lineOptions struct {
	charWidth float64
	tabWidth  int
	// fast selects the fixed-width path for newly rendered lines.
	fast bool
}

// Line is one materialized line of the window.
type Line struct {
	text     string
	clusters []string
	opts     lineOptions

	fastPath bool
	// columns holds the cell offset of each cluster start plus the total,
	// computed for the active path.
	columns []int
	// width is the cached width in pixels, -1 when unknown.
	width float64

	needsMonospaceCheck bool
}

func newLine(text string, opts lineOptions) *Line {
	l := &Line{}
	l.reset(text, opts)
	return l
}

func (l *Line) reset(text string, opts lineOptions) {
	l.text = text
	l.clusters = nil
	l.opts = opts
	l.fastPath = opts.fast
	l.columns = nil
	l.width = -1
	l.needsMonospaceCheck = opts.fast
}

func (l *Line) Text() string { return l.text }

// FastPath reports whether the line is positioned with the fixed-width
// estimate.
func (l *Line) FastPath() bool { return l.fastPath }

// WidthIsFast reports whether Width can be answered without measuring.
func (l *Line) WidthIsFast() bool { return l.fastPath || l.width >= 0 }

// Width returns the rendered width in pixels.
func (l *Line) Width() float64 {
	if l.width < 0 {
		cols := l.cols()
		l.width = float64(cols[len(cols)-1]) * l.opts.charWidth
	}
	return l.width
}

// NeedsMonospaceCheck reports whether the fixed-width estimate for this line
// has not been validated yet.
func (l *Line) NeedsMonospaceCheck() bool { return l.fastPath && l.needsMonospaceCheck }

// MonospaceAssumptionsAreValid compares the fixed-width estimate with a full
// measurement. Lines on the measured path are always valid.
func (l *Line) MonospaceAssumptionsAreValid() bool {
	if !l.fastPath {
		return true
	}
	clusters := l.graphemes()
	expected := graphemeutil.Columns(clusters, l.opts.tabWidth, true)
	actual := graphemeutil.Columns(clusters, l.opts.tabWidth, false)
	diff := float64(actual[len(actual)-1]-expected[len(expected)-1]) * l.opts.charWidth
	return math.Abs(diff) < monospaceTolerance*l.opts.charWidth
}

func (l *Line) markMonospaceChecked() { l.needsMonospaceCheck = false }

// InvalidateMonospace moves the line to the measured path and drops every
// cached position.
func (l *Line) InvalidateMonospace() {
	l.fastPath = false
	l.columns = nil
	l.width = -1
	l.needsMonospaceCheck = false
}

// OffsetForColumn returns the x offset of the 1-based column, clamped to
// the line.
func (l *Line) OffsetForColumn(col int) float64 {
	cols := l.cols()
	col = max(1, min(col, len(cols)))
	return float64(cols[col-1]) * l.opts.charWidth
}

// ColumnAtOffset returns the 1-based column whose boundary is closest to x.
func (l *Line) ColumnAtOffset(x float64) int {
	cols := l.cols()
	cw := l.opts.charWidth
	for i := 0; i < len(cols)-1; i++ {
		left := float64(cols[i]) * cw
		right := float64(cols[i+1]) * cw
		if x < right {
			if x-left > right-x {
				return i + 2
			}
			return i + 1
		}
	}
	return len(cols)
}

func (l *Line) graphemes() []string {
	if l.clusters == nil {
		l.clusters = graphemeutil.Split(l.text)
	}
	return l.clusters
}

func (l *Line) cols() []int {
	if l.columns == nil {
		l.columns = graphemeutil.Columns(l.graphemes(), l.opts.tabWidth, l.fastPath)
	}
	return l.columns
}

package view

import (
	"math"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/lineview/document"
	graphemeutil "github.com/iw2rmb/lineview/internal/grapheme"
	"github.com/iw2rmb/lineview/reveal"
)

// renderContent draws the rows inside the viewport frame from the lines the
// controller last committed.
func (m Model) renderContent() string {
	height := m.frameHeight()
	if height <= 0 {
		return ""
	}
	gutter := m.gutterWidth()
	width := m.contentWidth()
	left := int(math.Floor(m.layout.ScrollLeft() / m.ctrl.Options().CharWidth))
	first := m.firstRowLine()
	sel := m.Selection()
	active := activePos(sel)

	out := make([]string, 0, height)
	for y := 0; y < height; y++ {
		n := first + y
		text, ok := m.frame.row(n)

		var sb strings.Builder
		if gutter > 0 {
			sb.WriteString(m.renderGutter(n, ok, gutter, active.Line))
		}
		if ok {
			sb.WriteString(m.renderRow(n, text, left, width, sel, active))
		} else {
			sb.WriteString(m.cfg.Style.Text.Render(strings.Repeat(" ", width)))
		}
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

func (m Model) renderGutter(n int, rendered bool, width, activeLine int) string {
	if !rendered {
		return m.cfg.Style.LineNum.Render(strings.Repeat(" ", width))
	}
	label := runewidth.FillLeft(strconv.Itoa(n), width-1) + " "
	if document.ViewToModelLine(n) == activeLine {
		return m.cfg.Style.LineNumActive.Render(label)
	}
	return m.cfg.Style.LineNum.Render(label)
}

type cellKind int

const (
	cellText cellKind = iota
	cellSelected
	cellCursor
)

// renderRow draws the cells [left, left+width) of view line n. Wide clusters
// cut by either edge are replaced with spaces.
func (m Model) renderRow(n int, text string, left, width int, sel reveal.Selection, active document.Pos) string {
	clusters := graphemeutil.Split(text)
	tabWidth := m.ctrl.Options().TabWidth
	right := left + width
	cursorIdx := -1
	if document.ViewToModelLine(n) == active.Line {
		cursorIdx = active.Column - 1
	}
	selFrom, selTo, selected := selectedSpan(sel, n, len(clusters))

	var (
		sb   strings.Builder
		run  strings.Builder
		kind cellKind
		used int
	)
	flush := func() {
		if run.Len() == 0 {
			return
		}
		switch kind {
		case cellCursor:
			sb.WriteString(m.cfg.Style.Cursor.Render(run.String()))
		case cellSelected:
			sb.WriteString(m.cfg.Style.Selection.Render(run.String()))
		default:
			sb.WriteString(m.cfg.Style.Text.Render(run.String()))
		}
		run.Reset()
	}
	emit := func(k cellKind, cell string) {
		if k != kind {
			flush()
			kind = k
		}
		run.WriteString(cell)
	}

	col := 0
	for i, c := range clusters {
		if col >= right {
			break
		}
		w := graphemeutil.CellWidth(c, col, tabWidth)
		start, end := col, col+w
		col = end
		if end <= left {
			continue
		}

		cell := c
		if c == "\t" || start < left || end > right {
			cell = strings.Repeat(" ", min(end, right)-max(start, left))
		}
		k := cellText
		switch {
		case i == cursorIdx:
			k = cellCursor
		case selected && i+1 >= selFrom && i+1 < selTo:
			k = cellSelected
		}
		emit(k, cell)
		used += min(end, right) - max(start, left)
	}

	if cursorIdx == len(clusters) && col >= left && col < right {
		emit(cellCursor, " ")
		used++
	}
	if used < width {
		emit(cellText, strings.Repeat(" ", width-used))
	}
	flush()
	return sb.String()
}

package view

import (
	"github.com/iw2rmb/lineview/document"
	"github.com/iw2rmb/lineview/reveal"
)

// selectionBetween orders anchor and cursor into a range. Reversed records
// that the cursor sits at the start.
func selectionBetween(anchor, cursor document.Pos) reveal.Selection {
	start, end := anchor, cursor
	reversed := document.ComparePos(cursor, anchor) < 0
	if reversed {
		start, end = cursor, anchor
	}
	return reveal.Selection{
		Range: reveal.Range{
			StartLine:   document.ModelToViewLine(start.Line),
			StartColumn: start.Column,
			EndLine:     document.ModelToViewLine(end.Line),
			EndColumn:   end.Column,
		},
		Reversed: reversed,
	}
}

// activePos is the end of s the cursor is drawn at.
func activePos(s reveal.Selection) document.Pos {
	if s.Reversed {
		return document.Pos{Line: document.ViewToModelLine(s.StartLine), Column: s.StartColumn}
	}
	return document.Pos{Line: document.ViewToModelLine(s.EndLine), Column: s.EndColumn}
}

// selectedSpan returns the 1-based columns [from, to) of view line n that s
// covers. A selection ending on a later line covers n up to to = maxCol+1.
func selectedSpan(s reveal.Selection, n, maxCol int) (from, to int, ok bool) {
	if n < s.StartLine || n > s.EndLine {
		return 0, 0, false
	}
	from, to = 1, maxCol+1
	if n == s.StartLine {
		from = s.StartColumn
	}
	if n == s.EndLine {
		to = s.EndColumn
	}
	return from, to, from < to
}

package document

import (
	"strings"

	graphemeutil "github.com/iw2rmb/lineview/internal/grapheme"
	"github.com/iw2rmb/lineview/viewevent"
)

// Document holds the lines of a text and a version bumped on every
// effective edit.
type Document struct {
	lines   []string
	version uint64
}

func New(text string) *Document {
	return &Document{lines: splitLines(text)}
}

func (d *Document) Text() string { return strings.Join(d.lines, "\n") }

func (d *Document) Version() uint64 { return d.version }

func (d *Document) LineCount() int { return len(d.lines) }

// LineContent returns the text of line n, or "" when n is out of range.
func (d *Document) LineContent(n int) string {
	if n < 1 || n > len(d.lines) {
		return ""
	}
	return d.lines[n-1]
}

func (d *Document) LineMinColumn(int) int { return 1 }

func (d *Document) LineMaxColumn(n int) int {
	return graphemeutil.Count(d.LineContent(n)) + 1
}

// ClampPos clamps p into document bounds.
func (d *Document) ClampPos(p Pos) Pos {
	line := clampInt(p.Line, 1, len(d.lines))
	return Pos{Line: line, Column: clampInt(p.Column, 1, d.LineMaxColumn(line))}
}

// SetText replaces the whole content.
func (d *Document) SetText(text string) []viewevent.Event {
	d.lines = splitLines(text)
	d.version++
	return []viewevent.Event{viewevent.Flushed{}}
}

// Insert inserts text at pos and returns the position after it.
func (d *Document) Insert(pos Pos, text string) (Pos, []viewevent.Event) {
	pos = d.ClampPos(pos)
	if text == "" {
		return pos, nil
	}
	text = normalizeNewlines(text)

	clusters := graphemeutil.Split(d.lines[pos.Line-1])
	prefix := strings.Join(clusters[:pos.Column-1], "")
	suffix := strings.Join(clusters[pos.Column-1:], "")

	parts := strings.Split(text, "\n")
	d.version++
	if len(parts) == 1 {
		d.lines[pos.Line-1] = prefix + text + suffix
		next := Pos{Line: pos.Line, Column: pos.Column + graphemeutil.Count(text)}
		return next, []viewevent.Event{viewevent.LinesChanged{FromLine: pos.Line, ToLine: pos.Line}}
	}

	last := parts[len(parts)-1]
	inserted := make([]string, 0, len(parts))
	inserted = append(inserted, prefix+parts[0])
	inserted = append(inserted, parts[1:len(parts)-1]...)
	inserted = append(inserted, last+suffix)

	lines := make([]string, 0, len(d.lines)+len(parts)-1)
	lines = append(lines, d.lines[:pos.Line-1]...)
	lines = append(lines, inserted...)
	lines = append(lines, d.lines[pos.Line:]...)
	d.lines = lines

	lastLine := pos.Line + len(parts) - 1
	next := Pos{Line: lastLine, Column: graphemeutil.Count(last) + 1}
	return next, []viewevent.Event{
		viewevent.LinesChanged{FromLine: pos.Line, ToLine: pos.Line},
		viewevent.LinesInserted{FromLine: pos.Line + 1, ToLine: lastLine},
	}
}

// DeleteBackward removes the grapheme before pos, joining with the previous
// line at a line start.
func (d *Document) DeleteBackward(pos Pos) (Pos, []viewevent.Event) {
	pos = d.ClampPos(pos)
	if pos.Column > 1 {
		clusters := graphemeutil.Split(d.lines[pos.Line-1])
		clusters = append(clusters[:pos.Column-2], clusters[pos.Column-1:]...)
		d.lines[pos.Line-1] = strings.Join(clusters, "")
		d.version++
		return Pos{Line: pos.Line, Column: pos.Column - 1}, []viewevent.Event{
			viewevent.LinesChanged{FromLine: pos.Line, ToLine: pos.Line},
		}
	}
	if pos.Line == 1 {
		return pos, nil
	}

	prev := pos.Line - 1
	next := Pos{Line: prev, Column: d.LineMaxColumn(prev)}
	d.lines[prev-1] += d.lines[pos.Line-1]
	d.lines = append(d.lines[:pos.Line-1], d.lines[pos.Line:]...)
	d.version++
	return next, []viewevent.Event{
		viewevent.LinesChanged{FromLine: prev, ToLine: prev},
		viewevent.LinesDeleted{FromLine: pos.Line, ToLine: pos.Line},
	}
}

// DeleteLines removes lines [from, to]. The document always keeps one line.
func (d *Document) DeleteLines(from, to int) []viewevent.Event {
	from = clampInt(from, 1, len(d.lines))
	to = clampInt(to, from, len(d.lines))
	if from == 1 && to == len(d.lines) {
		return d.SetText("")
	}
	d.lines = append(d.lines[:from-1], d.lines[to:]...)
	d.version++
	return []viewevent.Event{viewevent.LinesDeleted{FromLine: from, ToLine: to}}
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func splitLines(text string) []string {
	return strings.Split(normalizeNewlines(text), "\n")
}

package viewlines

import (
	"fmt"
	"testing"
)

// sliceSource serves lines from a slice; tests mutate it to mirror edits.
type sliceSource struct {
	lines []string
}

func numberedSource(n int) *sliceSource {
	s := &sliceSource{}
	for i := 1; i <= n; i++ {
		s.lines = append(s.lines, fmt.Sprintf("line %d", i))
	}
	return s
}

func (s *sliceSource) LineCount() int { return len(s.lines) }

func (s *sliceSource) LineContent(n int) string {
	if n < 1 || n > len(s.lines) {
		return ""
	}
	return s.lines[n-1]
}

func windowTexts(w *Window) []string {
	out := make([]string, 0, w.Len())
	for _, l := range w.Lines() {
		out = append(out, l.Text())
	}
	return out
}

func assertTexts(t *testing.T, w *Window, want ...string) {
	t.Helper()
	got := windowTexts(w)
	if len(got) != len(want) {
		t.Fatalf("window texts: got %q, want %q", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("window texts: got %q, want %q", got, want)
		}
	}
}

func TestWindow_RenderReusesSurvivingLines(t *testing.T) {
	w := newWindow(numberedSource(10), fastOpts(1))
	w.Render(1, 3)
	before, _ := w.Line(2)

	w.Render(2, 4)
	after, ok := w.Line(2)
	if !ok || after != before {
		t.Fatalf("line 2 should be reused across renders")
	}
	if w.StartLineNumber() != 2 || w.EndLineNumber() != 4 {
		t.Fatalf("bounds: got [%d, %d], want [2, 4]", w.StartLineNumber(), w.EndLineNumber())
	}
	if _, ok := w.Line(1); ok {
		t.Fatalf("line 1 left the window")
	}
}

func TestWindow_EmptyRender(t *testing.T) {
	w := newWindow(numberedSource(3), fastOpts(1))
	w.Render(1, 0)
	if w.Len() != 0 || w.EndLineNumber() != w.StartLineNumber()-1 {
		t.Fatalf("empty window: got len %d, [%d, %d]", w.Len(), w.StartLineNumber(), w.EndLineNumber())
	}
	w.OnLinesInserted(1, 2)
	w.OnLinesDeleted(1, 1)
	if w.StartLineNumber() != 1 {
		t.Fatalf("edits on an empty window should not move it, start %d", w.StartLineNumber())
	}
}

func TestWindow_LinesChanged(t *testing.T) {
	src := numberedSource(10)
	w := newWindow(src, fastOpts(1))
	w.Render(3, 5)

	if w.OnLinesChanged(7, 9) {
		t.Fatalf("change below the window should report false")
	}
	src.lines[3] = "edited"
	if !w.OnLinesChanged(1, 4) {
		t.Fatalf("change overlapping the window should report true")
	}
	assertTexts(t, w, "line 3", "edited", "line 5")
}

func TestWindow_LinesDeleted(t *testing.T) {
	t.Run("above", func(t *testing.T) {
		w := newWindow(numberedSource(20), fastOpts(1))
		w.Render(10, 12)
		w.OnLinesDeleted(2, 4)
		if w.StartLineNumber() != 7 {
			t.Fatalf("start: got %d, want 7", w.StartLineNumber())
		}
		assertTexts(t, w, "line 10", "line 11", "line 12")
	})

	t.Run("overlapping start", func(t *testing.T) {
		w := newWindow(numberedSource(20), fastOpts(1))
		w.Render(5, 8)
		w.OnLinesDeleted(3, 6)
		if w.StartLineNumber() != 3 {
			t.Fatalf("start: got %d, want 3", w.StartLineNumber())
		}
		assertTexts(t, w, "line 7", "line 8")
	})

	t.Run("inside", func(t *testing.T) {
		w := newWindow(numberedSource(20), fastOpts(1))
		w.Render(5, 8)
		w.OnLinesDeleted(6, 7)
		if w.StartLineNumber() != 5 {
			t.Fatalf("start: got %d, want 5", w.StartLineNumber())
		}
		assertTexts(t, w, "line 5", "line 8")
	})

	t.Run("below", func(t *testing.T) {
		w := newWindow(numberedSource(20), fastOpts(1))
		w.Render(5, 8)
		w.OnLinesDeleted(12, 15)
		assertTexts(t, w, "line 5", "line 6", "line 7", "line 8")
	})
}

func TestWindow_LinesInserted(t *testing.T) {
	t.Run("above", func(t *testing.T) {
		w := newWindow(numberedSource(20), fastOpts(1))
		w.Render(5, 6)
		w.OnLinesInserted(2, 3)
		if w.StartLineNumber() != 7 {
			t.Fatalf("start: got %d, want 7", w.StartLineNumber())
		}
		assertTexts(t, w, "line 5", "line 6")
	})

	t.Run("inside", func(t *testing.T) {
		src := &sliceSource{lines: []string{"a", "b", "c", "d"}}
		w := newWindow(src, fastOpts(1))
		w.Render(1, 4)

		src.lines = []string{"a", "X", "b", "c", "d"}
		w.OnLinesInserted(2, 2)
		if w.StartLineNumber() != 1 {
			t.Fatalf("start: got %d, want 1", w.StartLineNumber())
		}
		assertTexts(t, w, "a", "X", "b", "c")
	})

	t.Run("past the end", func(t *testing.T) {
		src := &sliceSource{lines: []string{"a", "b", "c"}}
		w := newWindow(src, fastOpts(1))
		w.Render(1, 3)

		src.lines = []string{"a", "b", "X", "Y", "Z", "c"}
		w.OnLinesInserted(3, 5)
		assertTexts(t, w, "a", "b")
	})
}

func TestWindow_PositionAtOutsideWindow(t *testing.T) {
	w := newWindow(numberedSource(10), fastOpts(1))
	w.Render(2, 4)

	if _, ok := w.PositionAt(9, 0); ok {
		t.Fatalf("line 9 is not rendered")
	}
	if _, ok := w.OffsetForColumn(1, 1); ok {
		t.Fatalf("line 1 is not rendered")
	}
	pos, ok := w.PositionAt(3, 2.2)
	if !ok || pos.Line != 3 || pos.Column != 3 {
		t.Fatalf("position: got %+v (%v), want {3 3}", pos, ok)
	}
}

func TestWindow_InvalidateMonospaceAffectsLaterLines(t *testing.T) {
	w := newWindow(numberedSource(10), fastOpts(1))
	w.Render(1, 2)
	w.InvalidateMonospace()

	for _, l := range w.Lines() {
		if l.FastPath() {
			t.Fatalf("windowed line %q kept the fast path", l.Text())
		}
	}
	w.Render(1, 5)
	if l, _ := w.Line(5); l.FastPath() {
		t.Fatalf("newly rendered line should use measured positioning")
	}
}

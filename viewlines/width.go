package viewlines

import "math"

// WidthTracker owns the widest rendered line width seen so far.
type WidthTracker struct {
	max    int
	notify func(int)
}

// NewWidthTracker returns a tracker that calls notify whenever the maximum
// grows.
func NewWidthTracker(notify func(int)) *WidthTracker {
	return &WidthTracker{notify: notify}
}

func (t *WidthTracker) Max() int { return t.max }

// Ensure raises the maximum to ceil(w). It never lowers it.
func (t *WidthTracker) Ensure(w float64) {
	iw := int(math.Ceil(w))
	if t.max >= iw {
		return
	}
	t.max = iw
	if t.notify != nil {
		t.notify(t.max)
	}
}

// Flush forgets the maximum after the document was replaced.
func (t *WidthTracker) Flush() { t.max = 0 }

// Update folds the widths of the windowed lines into the maximum and reports
// whether every width was computed. In fast mode lines that would need a
// measurement are skipped.
//
// When the window covers the whole document and nothing was skipped the
// previous maximum is dropped first, which is the only way a width shrinks.
func (t *WidthTracker) Update(win *Window, lineCount int, fast bool) bool {
	localMax := 1.0
	allComputed := true
	for _, l := range win.Lines() {
		if fast && !l.WidthIsFast() {
			allComputed = false
			continue
		}
		localMax = math.Max(localMax, l.Width())
	}

	if allComputed && win.StartLineNumber() == 1 && win.EndLineNumber() == lineCount {
		t.max = 0
	}
	t.Ensure(localMax)
	return allComputed
}

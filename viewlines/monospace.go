package viewlines

import "log/slog"

// MonospaceChecker validates the fixed-width layout shortcut on the widest
// unvalidated line, where accumulated rounding error shows first.
type MonospaceChecker struct {
	logger *slog.Logger
}

func NewMonospaceChecker(logger *slog.Logger) MonospaceChecker {
	return MonospaceChecker{logger: logger}
}

// Check validates the widest line awaiting a check. On failure every
// windowed line switches to measured positioning; on success the other
// pending lines are considered covered.
func (c MonospaceChecker) Check(win *Window) (checked, invalidated bool) {
	var (
		longest      *Line
		longestLine  int
		longestWidth = -1.0
	)
	for i, l := range win.Lines() {
		if !l.NeedsMonospaceCheck() {
			continue
		}
		if w := l.Width(); w > longestWidth {
			longest, longestLine, longestWidth = l, win.StartLineNumber()+i, w
		}
	}
	if longest == nil {
		return false, false
	}

	if !longest.MonospaceAssumptionsAreValid() {
		if c.logger != nil {
			c.logger.Warn("monospace assumption failed, switching to measured positioning",
				"line", longestLine, "width", longestWidth)
		}
		win.InvalidateMonospace()
		return true, true
	}

	for _, l := range win.Lines() {
		l.markMonospaceChecked()
	}
	return true, false
}

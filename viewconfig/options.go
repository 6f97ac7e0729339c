// Package viewconfig holds the configuration snapshot read by the viewport
// controller.
package viewconfig

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/iw2rmb/lineview/reveal"
)

// ErrInvalidOptions is wrapped by every Validate failure.
var ErrInvalidOptions = errors.New("invalid view options")

// Options is a read-only snapshot of view configuration. It is taken at
// construction and replaced on ConfigurationChanged.
type Options struct {
	// LineHeight is the height of one line in pixels.
	LineHeight float64
	// CharWidth is the advance of one character under the monospace
	// assumption.
	CharWidth float64
	// Monospace enables the fixed-width fast path for positioning.
	Monospace bool
	TabWidth  int

	HorizontalScrollbarHeight float64
	// RevealHorizontalLeftPadding and RevealHorizontalRightPadding are kept
	// around horizontally revealed columns, in the same units as CharWidth.
	// A pixel host typically uses reveal.DefaultHorizontalLeftPadding.
	RevealHorizontalLeftPadding  float64
	RevealHorizontalRightPadding float64

	SurroundingLines      int
	SurroundingLinesStyle reveal.SurroundingLinesStyle

	StickyScrollEnabled  bool
	StickyScrollMaxLines int

	// Logger receives diagnostics. Nil discards them.
	Logger *slog.Logger
}

// Default returns options for a terminal host: one cell per pixel.
func Default() Options {
	return Options{
		LineHeight:                   1,
		CharWidth:                    1,
		Monospace:                    true,
		TabWidth:                     4,
		HorizontalScrollbarHeight:    1,
		RevealHorizontalLeftPadding:  4,
		RevealHorizontalRightPadding: 4,
		SurroundingLines:             0,
		SurroundingLinesStyle:        reveal.SurroundingDefault,
		StickyScrollMaxLines:         5,
	}
}

// Normalize fills zero values with defaults.
func (o Options) Normalize() Options {
	d := Default()
	if o.LineHeight == 0 {
		o.LineHeight = d.LineHeight
	}
	if o.CharWidth == 0 {
		o.CharWidth = d.CharWidth
	}
	if o.TabWidth == 0 {
		o.TabWidth = d.TabWidth
	}
	if o.SurroundingLinesStyle == "" {
		o.SurroundingLinesStyle = d.SurroundingLinesStyle
	}
	if o.StickyScrollEnabled && o.StickyScrollMaxLines == 0 {
		o.StickyScrollMaxLines = d.StickyScrollMaxLines
	}
	return o
}

// Validate reports the first inconsistent setting.
func (o Options) Validate() error {
	switch {
	case o.LineHeight <= 0:
		return fmt.Errorf("%w: line height must be positive, got %v", ErrInvalidOptions, o.LineHeight)
	case o.CharWidth <= 0:
		return fmt.Errorf("%w: char width must be positive, got %v", ErrInvalidOptions, o.CharWidth)
	case o.TabWidth <= 0:
		return fmt.Errorf("%w: tab width must be positive, got %d", ErrInvalidOptions, o.TabWidth)
	case o.HorizontalScrollbarHeight < 0:
		return fmt.Errorf("%w: scrollbar height must not be negative, got %v", ErrInvalidOptions, o.HorizontalScrollbarHeight)
	case o.RevealHorizontalLeftPadding < 0 || o.RevealHorizontalRightPadding < 0:
		return fmt.Errorf("%w: reveal padding must not be negative, got %v/%v", ErrInvalidOptions,
			o.RevealHorizontalLeftPadding, o.RevealHorizontalRightPadding)
	case o.SurroundingLines < 0:
		return fmt.Errorf("%w: surrounding lines must not be negative, got %d", ErrInvalidOptions, o.SurroundingLines)
	case o.StickyScrollMaxLines < 0:
		return fmt.Errorf("%w: sticky scroll max lines must not be negative, got %d", ErrInvalidOptions, o.StickyScrollMaxLines)
	}
	switch o.SurroundingLinesStyle {
	case reveal.SurroundingDefault, reveal.SurroundingAll:
	default:
		return fmt.Errorf("%w: unknown surrounding lines style %q", ErrInvalidOptions, o.SurroundingLinesStyle)
	}
	return nil
}

// RevealOptions projects the settings the reveal planner reads.
func (o Options) RevealOptions() reveal.Options {
	return reveal.Options{
		LineHeight:                o.LineHeight,
		HorizontalScrollbarHeight: o.HorizontalScrollbarHeight,
		SurroundingLines:          o.SurroundingLines,
		SurroundingLinesStyle:     o.SurroundingLinesStyle,
		StickyScrollEnabled:       o.StickyScrollEnabled,
		StickyScrollMaxLines:      o.StickyScrollMaxLines,
	}
}

// FontChanged reports whether switching from o to next invalidates
// measured widths.
func (o Options) FontChanged(next Options) bool {
	return o.CharWidth != next.CharWidth || o.Monospace != next.Monospace || o.TabWidth != next.TabWidth
}

// LoggerOrDiscard returns the configured logger or one that drops records.
func (o Options) LoggerOrDiscard() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

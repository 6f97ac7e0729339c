// Package viewevent defines the closed set of changes a view reacts to.
//
// Every variant implements Event; consumers dispatch with a single type
// switch and report whether the change requires a re-render.
package viewevent

import (
	"github.com/iw2rmb/lineview/reveal"
	"github.com/iw2rmb/lineview/viewconfig"
)

// Event is implemented only by the types in this package.
type Event interface {
	isViewEvent()
}

// ConfigurationChanged carries the new options snapshot.
type ConfigurationChanged struct {
	Options viewconfig.Options
}

// CursorStateChanged carries the current selections.
type CursorStateChanged struct {
	Selections []reveal.Selection
}

type DecorationsChanged struct{}

// Flushed means the whole document was replaced.
type Flushed struct{}

// LinesChanged means the content of [FromLine, ToLine] changed in place.
type LinesChanged struct {
	FromLine int
	ToLine   int
}

// LinesDeleted means [FromLine, ToLine] were removed; later lines shift up.
type LinesDeleted struct {
	FromLine int
	ToLine   int
}

// LinesInserted means [FromLine, ToLine] are new; later lines shift down.
type LinesInserted struct {
	FromLine int
	ToLine   int
}

type RevealRangeRequest struct {
	Request reveal.Request
}

// ScrollChanged reports a scroll position change made by someone other than
// the controller.
type ScrollChanged struct {
	ScrollTop   float64
	ScrollLeft  float64
	ScrollWidth float64

	ScrollTopChanged  bool
	ScrollLeftChanged bool
}

type ThemeChanged struct{}

// TokensChanged means the styling of [FromLine, ToLine] changed.
type TokensChanged struct {
	FromLine int
	ToLine   int
}

type ZonesChanged struct{}

func (ConfigurationChanged) isViewEvent() {}
func (CursorStateChanged) isViewEvent()   {}
func (DecorationsChanged) isViewEvent()   {}
func (Flushed) isViewEvent()              {}
func (LinesChanged) isViewEvent()         {}
func (LinesDeleted) isViewEvent()         {}
func (LinesInserted) isViewEvent()        {}
func (RevealRangeRequest) isViewEvent()   {}
func (ScrollChanged) isViewEvent()        {}
func (ThemeChanged) isViewEvent()         {}
func (TokensChanged) isViewEvent()        {}
func (ZonesChanged) isViewEvent()         {}

// Package viewlayout implements the host view-model a viewport controller
// reads geometry from and writes scroll positions to.
package viewlayout

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/iw2rmb/lineview/reveal"
)

// Spring parameters for smooth scrolling.
const (
	springFPS       = 60
	springFrequency = 7.0
	springDamping   = 1.0
	// settleDistance ends an animation once it is this close and this slow.
	settleDistance = 0.5
)

// ScrollPosition is a scroll offset pair in pixels.
type ScrollPosition struct {
	ScrollTop  float64
	ScrollLeft float64
}

// Options configure a Layout.
type Options struct {
	LineHeight float64
	// ScrollBeyondLastLine lets the last line scroll up to the viewport top.
	ScrollBeyondLastLine bool
	// ScrollBeyondLastColumn is extra horizontal room past the widest line.
	ScrollBeyondLastColumn float64
}

type scrollAnimation struct {
	spring   harmonica.Spring
	target   float64
	velocity float64
}

// Layout tracks viewport size, scroll position and the horizontal extent.
type Layout struct {
	opts      Options
	lineCount func() int

	width  float64
	height float64

	scrollTop  float64
	scrollLeft float64

	maxLineWidth float64
	anim         *scrollAnimation
}

// New returns a Layout over a document whose size is reported by lineCount.
func New(lineCount func() int, opts Options) *Layout {
	if opts.LineHeight <= 0 {
		opts.LineHeight = 1
	}
	if lineCount == nil {
		lineCount = func() int { return 0 }
	}
	return &Layout{opts: opts, lineCount: lineCount}
}

func (l *Layout) LineHeight() float64 { return l.opts.LineHeight }

func (l *Layout) SetLineHeight(h float64) {
	if h > 0 {
		l.opts.LineHeight = h
	}
	l.revalidate()
}

func (l *Layout) SetSize(width, height float64) {
	l.width = math.Max(0, width)
	l.height = math.Max(0, height)
	l.revalidate()
}

func (l *Layout) Width() float64  { return l.width }
func (l *Layout) Height() float64 { return l.height }

func (l *Layout) LineCount() int { return l.lineCount() }

// VerticalOffsetForLine returns the top of 1-based line n.
func (l *Layout) VerticalOffsetForLine(n int) float64 {
	n = max(1, min(n, l.lineCount()+1))
	return float64(n-1) * l.opts.LineHeight
}

func (l *Layout) ScrollHeight() float64 {
	content := float64(l.lineCount()) * l.opts.LineHeight
	if l.opts.ScrollBeyondLastLine {
		content += math.Max(0, l.height-l.opts.LineHeight)
	}
	return math.Max(content, l.height)
}

func (l *Layout) ScrollWidth() float64 {
	return math.Max(l.maxLineWidth+l.opts.ScrollBeyondLastColumn, l.width)
}

func (l *Layout) ScrollTop() float64  { return l.scrollTop }
func (l *Layout) ScrollLeft() float64 { return l.scrollLeft }

// Viewport returns the currently displayed vertical span.
func (l *Layout) Viewport() reveal.Viewport {
	return reveal.Viewport{Top: l.scrollTop, Height: l.height}
}

// FutureViewport returns the span that will be displayed once a running
// smooth scroll settles.
func (l *Layout) FutureViewport() reveal.Viewport {
	if l.anim != nil {
		return reveal.Viewport{Top: l.anim.target, Height: l.height}
	}
	return l.Viewport()
}

// ValidateScrollPosition clamps p into the scrollable area.
func (l *Layout) ValidateScrollPosition(p ScrollPosition) ScrollPosition {
	maxTop := math.Max(0, l.ScrollHeight()-l.height)
	maxLeft := math.Max(0, l.ScrollWidth()-l.width)
	return ScrollPosition{
		ScrollTop:  clamp(p.ScrollTop, 0, maxTop),
		ScrollLeft: clamp(p.ScrollLeft, 0, maxLeft),
	}
}

// SetScrollPosition validates and applies p. Smooth scrolls animate the
// vertical component; horizontal movement is always immediate.
func (l *Layout) SetScrollPosition(p ScrollPosition, st reveal.ScrollType) {
	p = l.ValidateScrollPosition(p)
	l.scrollLeft = p.ScrollLeft
	if st == reveal.Immediate || p.ScrollTop == l.scrollTop {
		l.anim = nil
		l.scrollTop = p.ScrollTop
		return
	}
	velocity := 0.0
	if l.anim != nil {
		velocity = l.anim.velocity
	}
	l.anim = &scrollAnimation{
		spring:   harmonica.NewSpring(harmonica.FPS(springFPS), springFrequency, springDamping),
		target:   p.ScrollTop,
		velocity: velocity,
	}
}

// Animating reports whether a smooth scroll is in flight.
func (l *Layout) Animating() bool { return l.anim != nil }

// AnimateStep advances a smooth scroll by one frame and reports whether
// another frame is needed.
func (l *Layout) AnimateStep() bool {
	if l.anim == nil {
		return false
	}
	a := l.anim
	l.scrollTop, a.velocity = a.spring.Update(l.scrollTop, a.velocity, a.target)
	if math.Abs(l.scrollTop-a.target) < settleDistance && math.Abs(a.velocity) < settleDistance {
		l.scrollTop = a.target
		l.anim = nil
		return false
	}
	return true
}

// FrameInterval is the delay between animation frames.
func FrameInterval() time.Duration { return time.Second / springFPS }

// SetMaxLineWidth records the widest rendered line.
func (l *Layout) SetMaxLineWidth(w int) {
	l.maxLineWidth = float64(w)
}

func (l *Layout) MaxLineWidth() float64 { return l.maxLineWidth }

// VisibleLines returns the 1-based lines intersecting the viewport. end is
// less than start when nothing is visible.
func (l *Layout) VisibleLines() (start, end int) {
	count := l.lineCount()
	if count == 0 || l.height <= 0 {
		return 1, 0
	}
	lh := l.opts.LineHeight
	start = int(math.Floor(l.scrollTop/lh)) + 1
	end = int(math.Ceil((l.scrollTop + l.height) / lh))
	start = max(1, min(start, count))
	end = max(start, min(end, count))
	return start, end
}

func (l *Layout) revalidate() {
	p := l.ValidateScrollPosition(ScrollPosition{ScrollTop: l.scrollTop, ScrollLeft: l.scrollLeft})
	l.scrollTop, l.scrollLeft = p.ScrollTop, p.ScrollLeft
	if l.anim != nil {
		l.anim.target = l.ValidateScrollPosition(ScrollPosition{ScrollTop: l.anim.target}).ScrollTop
	}
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return math.Max(lo, math.Min(v, hi))
}

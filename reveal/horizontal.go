package reveal

// DefaultHorizontalLeftPadding is the left padding, in pixels, a
// proportional host keeps before a non-minimal horizontal reveal.
const DefaultHorizontalLeftPadding = 30

// HorizontalInput describes a horizontal reveal against rendered geometry.
type HorizontalInput struct {
	ViewportLeft  float64
	ViewportWidth float64

	// BoxStart and BoxEnd are the rendered x extents of the target columns.
	BoxStart float64
	BoxEnd   float64

	Minimal bool
	// Selections makes an over-wide box abort instead of revealing its start.
	Selections bool

	// LeftPadding and RightPadding widen a non-minimal box. The left
	// padding shrinks as needed so the box still fits the viewport.
	LeftPadding  float64
	RightPadding float64
}

// HorizontalTarget is the resolved horizontal reveal.
type HorizontalTarget struct {
	ScrollLeft float64
	// MaxHorizontalOffset must be absorbed by the width tracker before the
	// scroll-left is applied, otherwise the host clamp would undo it.
	MaxHorizontalOffset float64
}

// HorizontalScrollLeft resolves a horizontal reveal. ok is false when a
// selection box is wider than the viewport.
func HorizontalScrollLeft(in HorizontalInput) (HorizontalTarget, bool) {
	viewportStart := in.ViewportLeft
	viewportEnd := viewportStart + in.ViewportWidth

	boxStart := in.BoxStart
	boxEnd := in.BoxEnd
	if !in.Minimal {
		boxEnd += in.RightPadding
		padded := max(0, boxStart-max(0, in.LeftPadding))
		// Never pad past the viewport: that would reveal the padding and
		// leave the target columns off screen.
		boxStart = max(padded, min(boxStart, boxEnd-in.ViewportWidth))
	}

	if in.Selections && boxEnd-boxStart > in.ViewportWidth {
		return HorizontalTarget{}, false
	}

	return HorizontalTarget{
		ScrollLeft:          MinimumScrolling(viewportStart, viewportEnd, boxStart, boxEnd, false, false),
		MaxHorizontalOffset: boxEnd,
	}, true
}

package reveal

// SourceMouse marks reveal requests that originate from a pointer drag.
const SourceMouse = "mouse"

// Viewport is the visible vertical span in pixels.
type Viewport struct {
	Top    float64
	Height float64
}

func (v Viewport) Bottom() float64 { return v.Top + v.Height }

// Range is a 1-based line/column range. Columns may be given in reverse
// order on a single line.
type Range struct {
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// IsSingleLine reports whether the range starts and ends on one line.
func (r Range) IsSingleLine() bool { return r.StartLine == r.EndLine }

// Selection is a range with a direction.
type Selection struct {
	Range
	// Reversed is true when the active end sits at the range start.
	Reversed bool
}

// VerticalType selects how aggressively a reveal repositions the viewport.
type VerticalType int

const (
	// Simple scrolls the minimum amount.
	Simple VerticalType = iota
	Center
	CenterIfOutsideViewport
	// Top aligns the box start with the viewport top.
	Top
	// Bottom aligns the box end with the viewport bottom.
	Bottom
	// NearTop keeps a comfortable gap above the box.
	NearTop
	NearTopIfOutsideViewport
)

func (t VerticalType) String() string {
	switch t {
	case Simple:
		return "simple"
	case Center:
		return "center"
	case CenterIfOutsideViewport:
		return "center-if-outside-viewport"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case NearTop:
		return "near-top"
	case NearTopIfOutsideViewport:
		return "near-top-if-outside-viewport"
	default:
		return "unknown"
	}
}

// ScrollType is the animation mode used to apply a scroll position.
type ScrollType int

const (
	Smooth ScrollType = iota
	Immediate
)

// SurroundingLinesStyle controls when surrounding lines are kept visible.
type SurroundingLinesStyle string

const (
	// SurroundingDefault ignores surrounding lines for pointer and minimal
	// reveals.
	SurroundingDefault SurroundingLinesStyle = "default"
	// SurroundingAll always honors surrounding lines.
	SurroundingAll SurroundingLinesStyle = "all"
)

// Request is a caller's intent to make a range or selections visible.
//
// Selections take precedence over Range when both are set.
type Request struct {
	Source           string
	MinimalReveal    bool
	Range            *Range
	Selections       []Selection
	RevealHorizontal bool
	VerticalType     VerticalType
	ScrollType       ScrollType
}

// Options are the configuration values the planner reads.
type Options struct {
	LineHeight                float64
	HorizontalScrollbarHeight float64
	SurroundingLines          int
	SurroundingLinesStyle     SurroundingLinesStyle
	StickyScrollEnabled       bool
	StickyScrollMaxLines      int
}

// Geometry maps 1-based line numbers to vertical pixel offsets.
type Geometry interface {
	VerticalOffsetForLine(line int) float64
}

// GeometryFunc adapts a function to Geometry.
type GeometryFunc func(line int) float64

func (f GeometryFunc) VerticalOffsetForLine(line int) float64 { return f(line) }

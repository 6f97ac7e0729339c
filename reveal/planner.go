package reveal

import "math"

// nearTopMinGapLines is the smallest gap, in lines, kept above a NearTop box.
const nearTopMinGapLines = 5

// nearTopGapRatio is the share of the viewport height kept above a NearTop box.
const nearTopGapRatio = 0.2

// HorizontalMode says what horizontal adjustment a plan asks for.
type HorizontalMode int

const (
	HorizontalNone HorizontalMode = iota
	// HorizontalReset scrolls to column 0; used for multi-line ranges.
	HorizontalReset
	// HorizontalRange reveals the columns of a single-line range.
	HorizontalRange
	// HorizontalSelections reveals the columns of every selection.
	HorizontalSelections
)

// Plan is the outcome of a reveal request that was not aborted.
type Plan struct {
	ScrollTop  float64
	ScrollType ScrollType
	Horizontal HorizontalMode

	// Range and Selections echo the request for horizontal resolution.
	Range      Range
	Selections []Selection
}

// Planner computes reveal scroll targets.
type Planner struct {
	opts Options
	geom Geometry
}

func NewPlanner(opts Options, geom Geometry) Planner {
	if opts.SurroundingLinesStyle == "" {
		opts.SurroundingLinesStyle = SurroundingDefault
	}
	return Planner{opts: opts, geom: geom}
}

func (p Planner) Options() Options { return p.opts }

// ScrollTop returns the scroll top that satisfies req inside vp.
//
// ok is false when the request must be dropped: it has neither a range nor
// selections, or its selections span more than the viewport can show.
func (p Planner) ScrollTop(vp Viewport, req Request) (float64, bool) {
	if p.geom == nil {
		return 0, false
	}
	lineHeight := p.opts.LineHeight
	viewportStart := vp.Top
	viewportHeight := vp.Height
	viewportEnd := viewportStart + viewportHeight

	var (
		boxIsSingleRange bool
		boxStart         float64
		boxEnd           float64
	)
	switch {
	case len(req.Selections) > 0:
		minLine := req.Selections[0].StartLine
		maxLine := req.Selections[0].EndLine
		for _, sel := range req.Selections[1:] {
			minLine = min(minLine, sel.StartLine)
			maxLine = max(maxLine, sel.EndLine)
		}
		boxIsSingleRange = false
		boxStart = p.geom.VerticalOffsetForLine(minLine)
		boxEnd = p.geom.VerticalOffsetForLine(maxLine) + lineHeight
	case req.Range != nil:
		boxIsSingleRange = true
		boxStart = p.geom.VerticalOffsetForLine(req.Range.StartLine)
		boxEnd = p.geom.VerticalOffsetForLine(req.Range.EndLine) + lineHeight
	default:
		return 0, false
	}

	paddingTop, paddingBottom := p.padding(viewportHeight, req)
	boxStart -= paddingTop
	boxEnd += paddingBottom

	switch {
	case boxEnd-boxStart > viewportHeight:
		// Never partially reveal a multi-cursor spread.
		if !boxIsSingleRange {
			return 0, false
		}
		return boxStart, true

	case req.VerticalType == NearTop || req.VerticalType == NearTopIfOutsideViewport:
		if req.VerticalType == NearTopIfOutsideViewport && viewportStart <= boxStart && boxEnd <= viewportEnd {
			return viewportStart, true
		}
		desiredGap := math.Max(nearTopMinGapLines*lineHeight, viewportHeight*nearTopGapRatio)
		return math.Max(boxEnd-viewportHeight, boxStart-desiredGap), true

	case req.VerticalType == Center || req.VerticalType == CenterIfOutsideViewport:
		if req.VerticalType == CenterIfOutsideViewport && viewportStart <= boxStart && boxEnd <= viewportEnd {
			return viewportStart, true
		}
		boxMiddle := (boxStart + boxEnd) / 2
		return math.Max(0, boxMiddle-viewportHeight/2), true

	default:
		return MinimumScrolling(viewportStart, viewportEnd, boxStart, boxEnd, req.VerticalType == Top, req.VerticalType == Bottom), true
	}
}

// padding returns the space kept above and below the box.
func (p Planner) padding(viewportHeight float64, req Request) (top, bottom float64) {
	lineHeight := p.opts.LineHeight
	ignoreScrollOff := (req.Source == SourceMouse || req.MinimalReveal) &&
		p.opts.SurroundingLinesStyle == SurroundingDefault

	if !ignoreScrollOff {
		context := float64(p.opts.SurroundingLines)
		if lineHeight > 0 {
			context = math.Min(viewportHeight/lineHeight/2, context)
		}
		if p.opts.StickyScrollEnabled {
			top = math.Max(context, float64(p.opts.StickyScrollMaxLines)) * lineHeight
		} else {
			top = context * lineHeight
		}
		bottom = math.Max(0, context-1) * lineHeight
	} else if !req.MinimalReveal {
		// Pointer drags still see one extra line above.
		top = lineHeight
	}

	if req.VerticalType == Simple || req.VerticalType == Bottom {
		// Keep the last line clear of the horizontal scrollbar.
		if req.MinimalReveal {
			bottom += p.opts.HorizontalScrollbarHeight
		} else {
			bottom += lineHeight
		}
	}
	return top, bottom
}

// Plan computes the full outcome of req: the vertical target, the effective
// animation mode relative to currentScrollTop, and the horizontal mode.
func (p Planner) Plan(vp Viewport, currentScrollTop float64, req Request) (Plan, bool) {
	top, ok := p.ScrollTop(vp, req)
	if !ok {
		return Plan{}, false
	}

	plan := Plan{
		ScrollTop:  top,
		ScrollType: EffectiveScrollType(req.ScrollType, currentScrollTop, top, p.opts.LineHeight),
	}
	if req.Range != nil {
		plan.Range = *req.Range
	}
	if len(req.Selections) > 0 {
		plan.Selections = append([]Selection(nil), req.Selections...)
	}

	if req.RevealHorizontal {
		switch {
		case len(req.Selections) > 0:
			plan.Horizontal = HorizontalSelections
		case req.Range != nil && !req.Range.IsSingleLine():
			plan.Horizontal = HorizontalReset
		case req.Range != nil:
			plan.Horizontal = HorizontalRange
		}
	}
	return plan, true
}

// EffectiveScrollType downgrades Smooth to Immediate when the scroll moves
// by at most one line.
func EffectiveScrollType(requested ScrollType, fromTop, toTop, lineHeight float64) ScrollType {
	if requested == Smooth && math.Abs(toTop-fromTop) <= lineHeight {
		return Immediate
	}
	return requested
}

package reveal

// MinimumScrolling returns the viewport start that brings [boxStart, boxEnd)
// into [viewportStart, viewportEnd) with the least movement.
//
// All bounds are truncated to whole pixels first so fractional drift cannot
// make repeated reveals oscillate. revealAtStart and revealAtEnd force the
// box to align with the viewport start or end when it fits.
func MinimumScrolling(viewportStart, viewportEnd, boxStart, boxEnd float64, revealAtStart, revealAtEnd bool) float64 {
	vStart := int64(viewportStart)
	vEnd := int64(viewportEnd)
	bStart := int64(boxStart)
	bEnd := int64(boxEnd)

	viewportLength := vEnd - vStart
	boxLength := bEnd - bStart

	if boxLength >= viewportLength {
		return float64(bStart)
	}

	switch {
	case revealAtStart:
		return float64(bStart)
	case revealAtEnd:
		return float64(max(0, bEnd-viewportLength))
	case bStart < vStart:
		return float64(bStart)
	case bEnd > vEnd:
		return float64(max(0, bEnd-viewportLength))
	}
	return float64(vStart)
}

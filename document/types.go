package document

// Pos points into the document by 1-based line and grapheme column.
type Pos struct {
	Line   int
	Column int
}

func ComparePos(a, b Pos) int {
	if a.Line < b.Line {
		return -1
	}
	if a.Line > b.Line {
		return 1
	}
	if a.Column < b.Column {
		return -1
	}
	if a.Column > b.Column {
		return 1
	}
	return 0
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ModelToViewLine converts a document line to a view line. Without folding
// or wrapping the mapping is the identity.
func ModelToViewLine(line int) int { return line }

// ViewToModelLine is the inverse of ModelToViewLine.
func ViewToModelLine(line int) int { return line }

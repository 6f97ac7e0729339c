package grapheme

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DefaultTabWidth is used when a caller passes a non-positive tab width.
const DefaultTabWidth = 4

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// TabAdvance returns the number of cells a tab occupies when it starts at
// visualCol.
func TabAdvance(visualCol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	adv := tabWidth - visualCol%tabWidth
	if adv < 1 {
		return 1
	}
	return adv
}

// CellWidth returns the terminal cell width of a single cluster placed at
// visualCol.
func CellWidth(cluster string, visualCol, tabWidth int) int {
	if cluster == "\t" {
		return TabAdvance(visualCol, tabWidth)
	}

	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		if fallback := uniseg.StringWidth(cluster); fallback > w {
			w = fallback
		}
	}
	return w
}

// Columns returns the cell offset at which every cluster of clusters starts,
// plus one trailing entry holding the total width.
//
// When uniform is true every non-tab cluster counts as exactly one cell,
// which is the fixed-width estimate used by the monospace fast path.
func Columns(clusters []string, tabWidth int, uniform bool) []int {
	out := make([]int, len(clusters)+1)
	col := 0
	for i, c := range clusters {
		out[i] = col
		switch {
		case c == "\t":
			col += TabAdvance(col, tabWidth)
		case uniform:
			col++
		default:
			col += CellWidth(c, col, tabWidth)
		}
	}
	out[len(clusters)] = col
	return out
}

// Width returns the total cell width of text with tabs expanded.
func Width(text string, tabWidth int) int {
	cols := Columns(Split(text), tabWidth, false)
	return cols[len(cols)-1]
}

// ExpandTabs replaces tabs with spaces up to the next tab stop.
func ExpandTabs(text string, tabWidth int) string {
	clusters := Split(text)
	hasTab := false
	for _, c := range clusters {
		if c == "\t" {
			hasTab = true
			break
		}
	}
	if !hasTab {
		return text
	}

	out := make([]byte, 0, len(text)+tabWidth)
	col := 0
	for _, c := range clusters {
		if c == "\t" {
			adv := TabAdvance(col, tabWidth)
			for i := 0; i < adv; i++ {
				out = append(out, ' ')
			}
			col += adv
			continue
		}
		out = append(out, c...)
		col += CellWidth(c, col, tabWidth)
	}
	return string(out)
}

package view

import "github.com/charmbracelet/lipgloss"

// Style controls the view's rendering.
type Style struct {
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text      lipgloss.Style
	Cursor    lipgloss.Style
	Selection lipgloss.Style

	// Frame styles the viewport around the rows. Its frame size is taken
	// out of the space given to SetSize.
	Frame lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		Selection:     lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Frame:         lipgloss.NewStyle(),
	}
}

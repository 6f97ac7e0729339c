package view

import "github.com/iw2rmb/lineview/viewconfig"

// Config configures the view Model.
type Config struct {
	// Initial text for the internal document.
	Text string

	// Options are forwarded to the viewlines controller. The zero value
	// means viewconfig.Default.
	Options viewconfig.Options

	// SmoothScrolling animates reveals that move more than one line.
	SmoothScrolling bool
	// ScrollBeyondLastLine lets the last line scroll up to the top row.
	ScrollBeyondLastLine bool

	ReadOnly     bool
	ShowLineNums bool

	// KeyMap defaults to DefaultKeyMap when left empty.
	KeyMap KeyMap
	Style  Style
}

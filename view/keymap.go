package view

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the view key bindings.
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	PageUp, PageDown      key.Binding
	Home, End             key.Binding

	// Center reveals the cursor line in the middle when it is off screen.
	Center key.Binding
	// NearTop reveals the cursor line close to the top.
	NearTop key.Binding

	Backspace  key.Binding
	Enter      key.Binding
	DeleteLine key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		Center:  key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "center cursor")),
		NearTop: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "cursor near top")),

		Backspace:  key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Enter:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
		DeleteLine: key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "delete line")),
	}
}

func (km KeyMap) isZero() bool {
	return len(km.Up.Keys()) == 0 && len(km.Down.Keys()) == 0 &&
		len(km.Left.Keys()) == 0 && len(km.Right.Keys()) == 0
}

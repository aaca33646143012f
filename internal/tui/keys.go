package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the viewer key bindings.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	RefOlder key.Binding
	RefNewer key.Binding
	CurOlder key.Binding
	CurNewer key.Binding

	NextFeature key.Binding
	PrevFeature key.Binding
	SwitchPane  key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "row up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "row down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),

		RefOlder: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "reference older")),
		RefNewer: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "reference newer")),
		CurOlder: key.NewBinding(key.WithKeys("{"), key.WithHelp("{", "current older")),
		CurNewer: key.NewBinding(key.WithKeys("}"), key.WithHelp("}", "current newer")),

		NextFeature: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next feature")),
		PrevFeature: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "prev feature")),
		SwitchPane:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch side")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/bnema/sash/internal/infrastructure/config"
)

// keyMap defines keybindings for the layout host.
type keyMap struct {
	SplitRight key.Binding
	SplitDown  key.Binding
	Close      key.Binding
	FocusNext  key.Binding
	Save       key.Binding
	Search     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SplitRight, k.SplitDown, k.Close, k.FocusNext, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SplitRight, k.SplitDown, k.Close},
		{k.FocusNext, k.Search, k.Save},
		{k.Help, k.Quit},
	}
}

func binding(keys []string, desc string) key.Binding {
	b := key.NewBinding(key.WithKeys(keys...))
	if len(keys) > 0 {
		b.SetHelp(keys[0], desc)
	} else {
		b.SetEnabled(false)
	}
	return b
}

func newKeyMap(k config.KeyBindings) keyMap {
	return keyMap{
		SplitRight: binding(k.SplitRight, "split right"),
		SplitDown:  binding(k.SplitDown, "split down"),
		Close:      binding(k.Close, "close"),
		FocusNext:  binding(k.FocusNext, "next pane"),
		Save:       binding(k.Save, "save"),
		Search:     binding(k.Search, "find pane"),
		Help:       binding(k.Help, "help"),
		Quit:       binding(k.Quit, "quit"),
	}
}

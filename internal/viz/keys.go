package viz

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the viewer bindings; it feeds both Update and the help view.
type KeyMap struct {
	Back        key.Binding
	Forward     key.Binding
	FastBack    key.Binding
	FastForward key.Binding
	First       key.Binding
	Last        key.Binding
	Theme       key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Back:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "back")),
		Forward:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "forward")),
		FastBack:    key.NewBinding(key.WithKeys("shift+left", "H", "pgdown"), key.WithHelp("H", "back ×10")),
		FastForward: key.NewBinding(key.WithKeys("shift+right", "L", "pgup"), key.WithHelp("L", "forward ×10")),
		First:       key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
		Last:        key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
		Theme:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Forward, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Back, k.Forward, k.FastBack, k.FastForward},
		{k.First, k.Last},
		{k.Theme, k.Help, k.Quit},
	}
}

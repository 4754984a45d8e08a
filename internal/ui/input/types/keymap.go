package types

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"slidereel/internal/config"
)

// KeyMap holds the bindings of every key set
type KeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Help     key.Binding
	Copy     key.Binding
	Overview key.Binding
	Quit     key.Binding
}

// NewKeyMap builds bindings from the configured key sets
func NewKeyMap(ks config.KeySettings) KeyMap {
	return KeyMap{
		Next:     binding(ks.Next, "next slide"),
		Prev:     binding(ks.Prev, "previous slide"),
		Help:     binding(ks.Help, "toggle help"),
		Copy:     binding(ks.Copy, "copy snippet"),
		Overview: binding(ks.Overview, "outline"),
		Quit:     binding(ks.Quit, "quit"),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Copy, k.Overview},
		{k.Help, k.Quit},
	}
}

func binding(keys []string, desc string) key.Binding {
	names := make([]string, 0, len(keys))
	labels := make([]string, 0, len(keys))
	for _, k := range keys {
		name := KeyName(k)
		if name == "" {
			continue
		}
		names = append(names, name)
		labels = append(labels, keyLabel(name))
	}
	if len(names) == 0 {
		b := key.NewBinding(key.WithHelp("", desc))
		b.SetEnabled(false)
		return b
	}
	return key.NewBinding(
		key.WithKeys(names...),
		key.WithHelp(strings.Join(labels, "/"), desc),
	)
}

// KeyName converts configured key notation to the string bubbletea reports for it
func KeyName(k string) string {
	switch strings.ToLower(strings.TrimSpace(k)) {
	case "space", "spacebar":
		return " "
	case "escape":
		return "esc"
	case "return":
		return "enter"
	}
	if strings.TrimSpace(k) == "" && k != "" {
		return " "
	}
	return strings.TrimSpace(k)
}

func keyLabel(name string) string {
	switch name {
	case " ":
		return "space"
	case "right":
		return "→"
	case "left":
		return "←"
	case "up":
		return "↑"
	case "down":
		return "↓"
	}
	return name
}

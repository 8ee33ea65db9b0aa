package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the keyboard bindings for the watch view.
type keyMap struct {
	Quit         key.Binding
	Help         key.Binding
	Refresh      key.Binding
	CycleDisplay key.Binding
	CycleTheme   key.Binding
	Logs         key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Refresh now"),
		),
		CycleDisplay: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Cycle display"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Logs: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "Toggle log"),
		),
	}
}

// bindings returns the keys in help order.
func (k keyMap) bindings() []key.Binding {
	return []key.Binding{k.Refresh, k.CycleDisplay, k.CycleTheme, k.Logs, k.Help, k.Quit}
}

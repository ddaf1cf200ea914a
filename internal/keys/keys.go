// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	// Focus and panels
	FocusNext     key.Binding
	FocusEditor   key.Binding
	ToggleTree    key.Binding
	ToggleShell   key.Binding
	TogglePreview key.Binding

	// Files and tabs
	Save        key.Binding
	CloseTab    key.Binding
	CloseOthers key.Binding
	NextTab     key.Binding
	PrevTab     key.Binding
	Reload      key.Binding

	// File tree
	Up       key.Binding
	Down     key.Binding
	Open     key.Binding
	Collapse key.Binding
	Bookmark key.Binding

	// General
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		FocusNext: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "next panel"),
		),
		FocusEditor: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "focus editor"),
		),
		ToggleTree: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "toggle file tree"),
		),
		ToggleShell: key.NewBinding(
			key.WithKeys("ctrl+j"),
			key.WithHelp("ctrl+j", "toggle shell"),
		),
		TogglePreview: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "toggle preview"),
		),

		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save file"),
		),
		CloseTab: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("ctrl+w", "close tab"),
		),
		CloseOthers: key.NewBinding(
			key.WithKeys("alt+w"),
			key.WithHelp("alt+w", "close other tabs"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("ctrl+right", "ctrl+pgdown"),
			key.WithHelp("ctrl+→", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("ctrl+left", "ctrl+pgup"),
			key.WithHelp("ctrl+←", "previous tab"),
		),
		Reload: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reload from disk"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "move down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", "l"),
			key.WithHelp("enter", "open"),
		),
		Collapse: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "collapse"),
		),
		Bookmark: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "toggle bookmark"),
		),

		Help: key.NewBinding(
			key.WithKeys("ctrl+_"),
			key.WithHelp("ctrl+?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q"),
			key.WithHelp("ctrl+q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the compact help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.FocusNext, k.ToggleTree, k.Quit}
}

// FullHelp returns all bindings grouped by concern.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.FocusNext, k.FocusEditor, k.ToggleTree, k.ToggleShell, k.TogglePreview},
		{k.Save, k.CloseTab, k.CloseOthers, k.NextTab, k.PrevTab, k.Reload},
		{k.Up, k.Down, k.Open, k.Collapse, k.Bookmark},
		{k.Help, k.Quit},
	}
}

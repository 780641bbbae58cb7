package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Top         key.Binding
	Bottom      key.Binding
	SwitchPane  key.Binding
	Select      key.Binding
	NewProject  key.Binding
	NewSuite    key.Binding
	Rename      key.Binding
	Delete      key.Binding
	ClearSuites key.Binding
	YankID      key.Binding
	Jump        key.Binding
	Dismiss     key.Binding
	Confirm     key.Binding
	Cancel      key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default vim-style key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "go to bottom"),
		),
		SwitchPane: key.NewBinding(
			key.WithKeys("tab", "h", "l"),
			key.WithHelp("tab", "switch pane"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		NewProject: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new project"),
		),
		NewSuite: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "new suite"),
		),
		Rename: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "rename"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		ClearSuites: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear suites"),
		),
		YankID: key.NewBinding(
			key.WithKeys("Y"),
			key.WithHelp("Y", "yank ID"),
		),
		Jump: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "jump"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss error"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n/esc", "cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

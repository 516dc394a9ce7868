package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings for the demo.
type KeyMap struct {
	PushInfo    key.Binding
	PushSuccess key.Binding
	PushWarning key.Binding
	PushError   key.Binding
	Progress    key.Binding
	Sticky      key.Binding
	Clickable   key.Binding
	Dismiss     key.Binding
	Click       key.Binding
	Clear       key.Binding

	Help key.Binding
	Quit key.Binding
}

// ShortHelp returns a short help message.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PushInfo, k.Sticky, k.Clear, k.Help, k.Quit}
}

// FullHelp returns a full help message.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PushInfo, k.PushSuccess, k.PushWarning, k.PushError},
		{k.Progress, k.Sticky, k.Clickable},
		{k.Dismiss, k.Click, k.Clear},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PushInfo: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "info toast"),
		),
		PushSuccess: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "success toast"),
		),
		PushWarning: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "warning toast"),
		),
		PushError: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "error toast"),
		),
		Progress: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "progress (stable id)"),
		),
		Sticky: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "sticky toast"),
		),
		Clickable: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "clickable toast"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "dismiss newest sticky"),
		),
		Click: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "click newest clickable"),
		),
		Clear: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "clear all"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	StepDown    key.Binding
	StepUp      key.Binding
	Zero        key.Binding
	Complete    key.Binding
	Toggle      key.Binding
	Focus       key.Binding
	Shorter     key.Binding
	Longer      key.Binding
	SortPattern key.Binding
	SortCatches key.Binding
	SortDate    key.Binding
	Reset       key.Binding
	Confirm     key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "-1"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "+1"),
		),
		StepDown: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "-10"),
		),
		StepUp: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "+10"),
		),
		Zero: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "clear"),
		),
		Complete: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "complete"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "symbols/patterns"),
		),
		Shorter: key.NewBinding(
			key.WithKeys("<", ","),
			key.WithHelp("<", "shorter"),
		),
		Longer: key.NewBinding(
			key.WithKeys(">", "."),
			key.WithHelp(">", "longer"),
		),
		SortPattern: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "sort pattern"),
		),
		SortCatches: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "sort catches"),
		),
		SortDate: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "sort date"),
		),
		Reset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset all"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "confirm"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

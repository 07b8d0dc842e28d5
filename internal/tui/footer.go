package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// CompactWidth is the terminal width below which the footer drops key
// descriptions.
const CompactWidth = 90

// Footer renders context-sensitive keybinding hints.
type Footer struct {
	Width    int
	Bindings []key.Binding
}

// View renders the footer as a single line of keybinding hints.
// In compact mode (narrow terminals), shows only key hints without descriptions.
func (f Footer) View() string {
	compact := f.Width < CompactWidth

	var parts []string
	for _, b := range f.Bindings {
		if !b.Enabled() {
			continue
		}
		help := b.Help()
		var part string
		if compact {
			// Compact: key only, no description.
			part = styleFooterKey.Render(help.Key)
		} else {
			part = styleFooterKey.Render(help.Key) + styleFooterSep.Render(":") + styleFooterDesc.Render(help.Desc)
		}
		parts = append(parts, part)
	}
	sep := styleFooterSep.Render("  ")
	if compact {
		sep = styleFooterSep.Render(" ")
	}
	line := strings.Join(parts, sep)
	return styleFooter.Width(f.Width).Render(line)
}

// PatternFooterBindings returns footer bindings while the pattern table has focus.
func PatternFooterBindings(km KeyMap) []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Left, km.Right, km.StepUp, km.Complete, km.Zero,
		km.SortPattern, km.SortCatches, km.SortDate, km.Focus, km.Quit}
}

// SymbolFooterBindings returns footer bindings while the symbol bar has focus.
func SymbolFooterBindings(km KeyMap) []key.Binding {
	left, right := km.Left, km.Right
	left.SetHelp("←/h", "prev")
	right.SetHelp("→/l", "next")
	return []key.Binding{left, right, km.Toggle, km.Shorter, km.Longer, km.Reset, km.Focus, km.Quit}
}

// ConfirmFooterBindings returns footer bindings during the reset prompt.
func ConfirmFooterBindings(km KeyMap) []key.Binding {
	cancel := key.NewBinding(key.WithKeys("esc"), key.WithHelp("any", "cancel"))
	return []key.Binding{km.Confirm, cancel}
}

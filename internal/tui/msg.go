package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/jugglelog/internal/watch"
)

// MsgProgressChanged is sent when the progress file changed on disk.
type MsgProgressChanged struct {
	File string
}

// MsgInfo displays an informational message.
type MsgInfo struct {
	Msg string
}

// MsgError displays an error message.
type MsgError struct {
	Msg string
}

// waitForChange blocks on the watcher channel and converts the next change
// into a MsgProgressChanged. A closed channel ends the subscription.
func waitForChange(ch <-chan watch.Change) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		c, ok := <-ch
		if !ok {
			return nil
		}
		return MsgProgressChanged{File: c.File}
	}
}

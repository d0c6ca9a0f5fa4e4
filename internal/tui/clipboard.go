package tui

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// clipboardCopiedMsg is sent after a clipboard copy attempt.
type clipboardCopiedMsg struct {
	err error
}

// copyToClipboard copies text to the system clipboard off the update loop.
func copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardCopiedMsg{err: clipboard.WriteAll(text)}
	}
}

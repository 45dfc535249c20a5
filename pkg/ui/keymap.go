package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Command names one editor action. The outline core exposes the seven
// structural commands; the rest are UI-level (edit, yank, help, quit).
type Command int

const (
	CmdNone Command = iota
	CmdAddLine
	CmdMovePrev
	CmdMoveNext
	CmdIndent
	CmdOutdent
	CmdExpand
	CmdCollapse
	CmdEditTitle
	CmdYankTitle
	CmdHelp
	CmdQuit
)

// Binding pairs a key gesture with a command. The keymap is an ordered
// list: the first binding matching an input event wins and the event is
// consumed (not passed on to any default handling).
type Binding struct {
	Keys    key.Binding
	Command Command
}

// Keymap is an ordered gesture-to-command table.
type Keymap []Binding

// DefaultKeymap returns the standard outliner bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		{key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "new line")), CmdAddLine},
		{key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev line")), CmdMovePrev},
		{key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next line")), CmdMoveNext},
		{key.NewBinding(key.WithKeys("tab", ">"), key.WithHelp("tab/>", "indent")), CmdIndent},
		{key.NewBinding(key.WithKeys("shift+tab", "<"), key.WithHelp("s-tab/<", "outdent")), CmdOutdent},
		{key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "expand")), CmdExpand},
		{key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "collapse")), CmdCollapse},
		{key.NewBinding(key.WithKeys("i", "f2"), key.WithHelp("i", "edit title")), CmdEditTitle},
		{key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yank title")), CmdYankTitle},
		{key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")), CmdHelp},
		{key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")), CmdQuit},
	}
}

// Match returns the command of the first binding matching msg, or
// (CmdNone, false) when no gesture matches.
func (km Keymap) Match(msg tea.KeyMsg) (Command, bool) {
	for _, b := range km {
		if key.Matches(msg, b.Keys) {
			return b.Command, true
		}
	}
	return CmdNone, false
}

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Next, Prev        key.Binding
	SubmitTitle       key.Binding
	SubmitDescription key.Binding
	Press             key.Binding
	Up, Down          key.Binding
	Complete          key.Binding
	Expand            key.Binding
	Delete            key.Binding
	Quit, ForceQuit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:              key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:              key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
		SubmitTitle:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		SubmitDescription: key.NewBinding(key.WithKeys("alt+enter", "ctrl+s"), key.WithHelp("alt+enter", "add")),
		Press:             key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "add")),
		Up:                key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:              key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Complete:          key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "done")),
		Expand:            key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Delete:            key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Quit:              key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		ForceQuit:         key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// bindings adapts a flat binding slice to help.KeyMap.
type bindings []key.Binding

func (b bindings) ShortHelp() []key.Binding  { return b }
func (b bindings) FullHelp() [][]key.Binding { return [][]key.Binding{b} }

// helpFor lists the bindings that apply to the focused control.
func (k keyMap) helpFor(f focus) bindings {
	switch f {
	case focusTitle:
		return bindings{k.SubmitTitle, k.Next}
	case focusDescription:
		return bindings{k.SubmitDescription, k.Next, k.Prev}
	case focusAdd:
		return bindings{k.Press, k.Next, k.Prev}
	default:
		return bindings{k.Up, k.Down, k.Complete, k.Expand, k.Delete, k.Next, k.Quit}
	}
}

// Different terminals report alt+enter differently.
func isAltEnter(msg tea.KeyMsg) bool {
	if msg.Alt && msg.Type == tea.KeyEnter {
		return true
	}
	switch msg.String() {
	case "alt+enter", "alt+return", "alt+\r":
		return true
	}
	return false
}

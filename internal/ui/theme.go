package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + panel border.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, Done, Help, Button, ButtonFocused   lipgloss.Style
	Description                                   lipgloss.Style

	BoxUnchecked, BoxChecked string
	SymDone, SymPending      string
	Delete                   string
	Border                   lipgloss.Border
	BorderColor              lipgloss.TerminalColor
}

var current = classic()

// SetTheme switches the active theme. Unknown names select classic.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = neon()
	case "mono":
		SetColorMode(ColorNever)
		current = mono()
	default:
		current = classic()
	}
}

// Current exposes the active theme to renderers.
func Current() Theme { return current }

func classic() Theme {
	base := lipgloss.NewStyle()
	return Theme{
		Title:         base.Bold(true),
		Muted:         base.Faint(true),
		Accent:        base.Foreground(lipgloss.Color("12")),
		Success:       base.Foreground(lipgloss.Color("42")),
		Error:         base.Foreground(lipgloss.Color("9")).Bold(true),
		Pending:       base.Foreground(lipgloss.Color("214")),
		Selected:      base.Bold(true).Reverse(true),
		Done:          base.Faint(true).Strikethrough(true),
		Help:          base.Faint(true),
		Button:        base.Padding(0, 1).Border(lipgloss.NormalBorder()),
		ButtonFocused: base.Padding(0, 1).Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("12")).Bold(true),
		Description:   base.Faint(true).PaddingLeft(4),
		BoxUnchecked:  "☐", BoxChecked: "☑",
		SymDone: "✔", SymPending: "•",
		Delete:      "[delete]",
		Border:      lipgloss.RoundedBorder(),
		BorderColor: lipgloss.Color("8"),
	}
}

func neon() Theme {
	t := classic()
	t.Title = t.Title.Foreground(lipgloss.Color("13"))
	t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	t.Pending = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	t.ButtonFocused = t.ButtonFocused.BorderForeground(lipgloss.Color("13"))
	t.BoxUnchecked, t.BoxChecked = "◻", "◼"
	t.BorderColor = lipgloss.Color("13")
	return t
}

func mono() Theme {
	base := lipgloss.NewStyle()
	return Theme{
		Title:         base.Bold(true),
		Muted:         base,
		Accent:        base,
		Success:       base,
		Error:         base.Bold(true),
		Pending:       base,
		Selected:      base.Reverse(true),
		Done:          base.Strikethrough(true),
		Help:          base,
		Button:        base.Padding(0, 1).Border(lipgloss.ASCIIBorder()),
		ButtonFocused: base.Padding(0, 1).Border(lipgloss.ASCIIBorder()).Bold(true),
		Description:   base.PaddingLeft(4),
		BoxUnchecked:  "[ ]", BoxChecked: "[x]",
		SymDone: "x", SymPending: "-",
		Delete:      "[delete]",
		Border:      lipgloss.ASCIIBorder(),
		BorderColor: lipgloss.NoColor{},
	}
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/tada/internal/todo"
	"github.com/idilsaglam/tada/internal/ui"
)

func (m *Model) View() string {
	th := ui.Current()
	done, pending := m.ctrl.Stats()

	header := fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		th.Title.Render("Todos"),
		th.Success.Render(th.SymDone), done,
		th.Pending.Render(th.SymPending), pending,
		th.Accent.Render("Total"), done+pending,
	)

	sections := []string{
		header,
		th.Muted.Render(ui.ProgressBar(done, done+pending, 28)),
		"",
		m.inputsView(),
		"",
		renderContainer(m.container, m.cursor, m.focus == focusList),
		"",
		m.help.View(m.keys.helpFor(m.focus)),
	}
	return ui.Panel(strings.Join(sections, "\n"), m.width)
}

func (m *Model) inputsView() string {
	th := ui.Current()
	button := th.Button.Render("Add")
	if m.focus == focusAdd {
		button = th.ButtonFocused.Render("Add")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.title.View(),
		m.description.View(),
		button,
	)
}

// renderContainer draws the tree: each row followed by its description
// region when that region is visible.
func renderContainer(tree todo.Tree, cursor int, active bool) string {
	th := ui.Current()
	if tree.Len() == 0 {
		return th.Muted.Render("no items")
	}

	lines := make([]string, 0, tree.Len()*2)
	for i, e := range tree.Entries {
		box := th.Muted.Render(th.BoxUnchecked)
		title := e.Row.Title
		if e.Row.Completed {
			box = th.Success.Render(th.BoxChecked)
			title = th.Done.Render(title)
		}
		prefix := "  "
		if active && i == cursor {
			prefix = th.Selected.Render("> ")
		}
		lines = append(lines, fmt.Sprintf("%s%s %s  %s", prefix, box, title, th.Muted.Render(th.Delete)))
		if e.Description.Visible {
			lines = append(lines, th.Description.Render(e.Description.Text))
		}
	}
	return strings.Join(lines, "\n")
}

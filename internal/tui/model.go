// Package tui is the terminal page the todo controller renders into: a
// title input, a description input, an add button and the list container.
package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/tada/internal/logging"
	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/todo"
	"github.com/idilsaglam/tada/internal/ui"
)

type focus int

const (
	focusTitle focus = iota
	focusDescription
	focusAdd
	focusList
	focusCount
)

// Options configure a new Model.
type Options struct {
	Items  []model.Item // initial list; nil starts empty
	Logger *slog.Logger
}

// Model is the Bubble Tea model and the controller's Surface.
// It uses pointer receivers so the controller and the program share it.
type Model struct {
	ctrl *todo.Controller
	log  *slog.Logger

	title       textinput.Model
	description textarea.Model
	focus       focus

	// container holds exactly what the controller last rendered.
	container todo.Tree
	cursor    int

	keys keyMap
	help help.Model

	width, height int
}

// New builds the page and binds a controller to it.
func New(opt Options) *Model {
	m := &Model{
		log:  opt.Logger,
		keys: defaultKeyMap(),
		help: help.New(),
	}
	if m.log == nil {
		m.log = logging.NewNop()
	}

	m.title = textinput.New()
	m.title.Prompt = "> "
	m.title.Placeholder = "What needs doing?"
	m.title.CharLimit = 200
	m.title.Focus()

	m.description = textarea.New()
	m.description.Placeholder = "Description (optional)"
	m.description.ShowLineNumbers = false
	m.description.SetHeight(3)

	th := ui.Current()
	m.help.Styles.ShortKey = th.Help.Bold(true)
	m.help.Styles.FullKey = th.Help.Bold(true)
	m.help.Styles.ShortDesc = th.Help
	m.help.Styles.FullDesc = th.Help
	m.help.Styles.ShortSeparator = th.Help
	m.help.Styles.FullSeparator = th.Help
	m.help.Styles.Ellipsis = th.Help

	m.ctrl = todo.New(m, todo.WithItems(opt.Items), todo.WithLogger(m.log))
	return m
}

// Controller exposes the bound list controller.
func (m *Model) Controller() *todo.Controller { return m.ctrl }

// Inputs implements todo.Surface.
func (m *Model) Inputs() (string, string) {
	return m.title.Value(), m.description.Value()
}

// ClearInputs implements todo.Surface.
func (m *Model) ClearInputs() {
	m.title.SetValue("")
	m.description.Reset()
}

// Replace implements todo.Surface. The cursor follows the selected item
// when it is still in the tree.
func (m *Model) Replace(tree todo.Tree) {
	if e, ok := m.selected(); ok {
		if i := tree.Index(e.Row.ID); i >= 0 {
			m.cursor = i
		}
	}
	m.container = tree
	if m.cursor >= tree.Len() {
		m.cursor = tree.Len() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) Init() tea.Cmd { return textinput.Blink }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.ForceQuit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			return m, m.setFocus((m.focus + 1) % focusCount)
		case key.Matches(msg, m.keys.Prev):
			return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
		}

		switch m.focus {
		case focusTitle:
			if key.Matches(msg, m.keys.SubmitTitle) {
				return m, m.submit()
			}
		case focusDescription:
			if key.Matches(msg, m.keys.SubmitDescription) || isAltEnter(msg) {
				return m, m.submit()
			}
		case focusAdd:
			if key.Matches(msg, m.keys.Press) {
				return m, m.submit()
			}
			return m, nil
		case focusList:
			return m.updateList(msg)
		}
	}

	// Everything else goes to the focused input.
	var cmd tea.Cmd
	switch m.focus {
	case focusTitle:
		m.title, cmd = m.title.Update(msg)
	case focusDescription:
		m.description, cmd = m.description.Update(msg)
	}
	return m, cmd
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.container.Len()-1 {
			m.cursor++
		}
	}

	e, ok := m.selected()
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Complete):
		// The checkbox flips itself; the controller only records it.
		e.Row.Completed = !e.Row.Completed
		m.ctrl.ToggleCompleted(e.Row.ID)
	case key.Matches(msg, m.keys.Expand):
		m.ctrl.ToggleExpanded(e.Row.ID)
	case key.Matches(msg, m.keys.Delete):
		m.ctrl.Remove(e.Row.ID)
	}
	return m, nil
}

// selected returns the container entry under the cursor.
func (m *Model) selected() (*todo.Entry, bool) {
	if m.cursor < 0 || m.cursor >= m.container.Len() {
		return nil, false
	}
	return &m.container.Entries[m.cursor], true
}

func (m *Model) submit() tea.Cmd {
	it, ok := m.ctrl.Submit()
	if !ok {
		return nil
	}
	m.log.Info("added", "id", it.ID)
	return m.setFocus(focusTitle)
}

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	m.title.Blur()
	m.description.Blur()
	switch f {
	case focusTitle:
		return m.title.Focus()
	case focusDescription:
		return m.description.Focus()
	}
	return nil
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	inner := w - 6
	if inner < 10 {
		inner = 10
	}
	m.title.Width = inner - len(m.title.Prompt)
	m.description.SetWidth(inner)
	m.help.Width = inner
}

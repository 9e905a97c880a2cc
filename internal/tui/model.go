// Package tui implements the interactive two-panel interface: projects on
// the left, the selected project's todos on the right, with a transient
// text entry line for add and rename operations.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/secheng722/s-todo/internal/models"
	"github.com/secheng722/s-todo/internal/store"
	"github.com/secheng722/s-todo/internal/util"
)

// inputMode identifies what a committed text entry will do. modeNormal is
// the only mode in which navigation and mutation keys are live.
type inputMode int

const (
	modeNormal inputMode = iota
	modeAddProject
	modeAddTodo
	modeRenameProject
	modeRenameTodo
)

// panel identifies which list has keyboard focus.
type panel int

const (
	panelProjects panel = iota
	panelTodos
)

// Model is the Elm-style application state. All mutation happens in Update;
// View renders from this struct alone.
type Model struct {
	data        models.AppData
	store       store.Store
	sel         selectionState
	activePanel panel
	mode        inputMode
	input       textinput.Model

	width  int
	height int
}

func NewModel(data models.AppData, st store.Store) Model {
	input := textinput.New()
	input.CharLimit = 128
	input.Width = 40

	m := Model{
		data:  data,
		store: st,
		sel:   newSelectionState(),
		input: input,
	}
	if len(m.data.Projects) > 0 {
		m.sel.project = 0
		m.sel.resetTodo(len(m.data.Projects[0].Todos))
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) currentProject() *models.Project {
	if m.sel.project == noSelection {
		return nil
	}
	return &m.data.Projects[m.sel.project]
}

func (m *Model) currentTodo() *models.Todo {
	p := m.currentProject()
	if p == nil || m.sel.todo == noSelection {
		return nil
	}
	return &p.Todos[m.sel.todo]
}

func (m *Model) todoCount() int {
	if p := m.currentProject(); p != nil {
		return len(p.Todos)
	}
	return 0
}

// persist writes the current data best-effort. A failed save never
// interrupts the session.
func (m *Model) persist() {
	if err := m.store.Save(m.data); err != nil {
		util.LogError("save data", err)
	}
}

package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/secheng722/s-todo/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeNormal {
			return m.updateNormal(msg)
		}
		return m.updateTextEntry(msg)
	}

	if m.mode != modeNormal {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.persist()
		return m, tea.Quit

	case "s":
		m.persist()
		return m, nil

	case "tab":
		return m.switchPanel(), nil

	case "j", "down":
		return m.moveCursor(dirDown), nil

	case "k", "up":
		return m.moveCursor(dirUp), nil

	case " ":
		return m.toggleComplete(), nil

	case "a":
		return m.beginAdd()

	case "r":
		return m.beginRename()

	case "t":
		return m.toggleTimer(), nil

	case "d":
		return m.deleteSelected(), nil
	}
	return m, nil
}

// switchPanel moves focus between the two lists, seeding a selection in
// the newly focused panel when it has items but no cursor yet.
func (m Model) switchPanel() Model {
	if m.activePanel == panelProjects {
		m.activePanel = panelTodos
		m.sel.ensureTodo(m.todoCount())
	} else {
		m.activePanel = panelProjects
		m.sel.ensureProject(len(m.data.Projects))
	}
	return m
}

func (m Model) moveCursor(dir int) Model {
	if m.activePanel == panelProjects {
		before := m.sel.project
		m.sel.moveProject(dir, len(m.data.Projects))
		if m.sel.project != before {
			m.sel.resetTodo(m.todoCount())
		}
	} else {
		m.sel.moveTodo(dir, m.todoCount())
	}
	return m
}

// toggleComplete flips the selected todo's done state. Marking an
// in-progress todo done stops its timer first so the session is credited.
func (m Model) toggleComplete() Model {
	if m.activePanel != panelTodos {
		return m
	}
	todo := m.currentTodo()
	if todo == nil {
		return m
	}
	if todo.IsWorking() && !todo.Completed {
		todo.EndWork()
	}
	todo.Completed = !todo.Completed
	m.persist()
	return m
}

func (m Model) toggleTimer() Model {
	if m.activePanel != panelTodos {
		return m
	}
	todo := m.currentTodo()
	if todo == nil {
		return m
	}
	todo.ToggleWork()
	m.persist()
	return m
}

func (m Model) beginAdd() (Model, tea.Cmd) {
	if m.activePanel == panelProjects {
		m.mode = modeAddProject
		m.input.Placeholder = "project name"
	} else {
		if m.currentProject() == nil {
			return m, nil
		}
		m.mode = modeAddTodo
		m.input.Placeholder = "todo title"
	}
	m.input.Reset()
	m.input.Focus()
	return m, textinput.Blink
}

// beginRename opens the text entry seeded with the current name. A no-op
// when nothing is selected.
func (m Model) beginRename() (Model, tea.Cmd) {
	if m.activePanel == panelProjects {
		p := m.currentProject()
		if p == nil {
			return m, nil
		}
		m.mode = modeRenameProject
		m.input.Placeholder = "project name"
		m.input.SetValue(p.Name)
	} else {
		todo := m.currentTodo()
		if todo == nil {
			return m, nil
		}
		m.mode = modeRenameTodo
		m.input.Placeholder = "todo title"
		m.input.SetValue(todo.Title)
	}
	m.input.CursorEnd()
	m.input.Focus()
	return m, textinput.Blink
}

func (m Model) deleteSelected() Model {
	if m.activePanel == panelProjects {
		idx := m.sel.project
		if idx == noSelection {
			return m
		}
		m.data.Projects = append(m.data.Projects[:idx], m.data.Projects[idx+1:]...)
		m.sel.project = reindexAfterDelete(idx, len(m.data.Projects))
		m.sel.resetTodo(m.todoCount())
	} else {
		p := m.currentProject()
		idx := m.sel.todo
		if p == nil || idx == noSelection {
			return m
		}
		p.Todos = append(p.Todos[:idx], p.Todos[idx+1:]...)
		m.sel.todo = reindexAfterDelete(idx, len(p.Todos))
	}
	m.persist()
	return m
}

func (m Model) updateTextEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = modeNormal
		m.input.Reset()
		m.input.Blur()
		return m, nil

	case tea.KeyEnter:
		return m.commitInput(), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// commitInput applies the buffered text. An empty buffer commits nothing
// but still leaves text entry.
func (m Model) commitInput() Model {
	value := m.input.Value()
	if value != "" {
		switch m.mode {
		case modeAddProject:
			m.data.Projects = append(m.data.Projects, models.Project{Name: value, Todos: []models.Todo{}})
			m.sel.project = len(m.data.Projects) - 1
			m.sel.todo = noSelection
			m.persist()

		case modeAddTodo:
			if p := m.currentProject(); p != nil {
				p.Todos = append(p.Todos, models.NewTodo(value))
				m.sel.todo = len(p.Todos) - 1
				m.persist()
			}

		case modeRenameProject:
			if p := m.currentProject(); p != nil {
				p.Name = value
				m.persist()
			}

		case modeRenameTodo:
			if todo := m.currentTodo(); todo != nil {
				todo.Title = value
				m.persist()
			}
		}
	}

	m.mode = modeNormal
	m.input.Reset()
	m.input.Blur()
	return m
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/secheng722/s-todo/internal/models"
)

// narrowLayoutWidth is the terminal width below which the two panels stack
// vertically instead of sitting side by side.
const narrowLayoutWidth = 80

const helpLine = "tab switch • j/k move • space done • a add • r rename • t timer • d delete • s save • q quit"

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	theme := CurrentTheme

	footer := m.renderFooter(theme)
	footerHeight := lipgloss.Height(footer)
	bodyHeight := m.height - footerHeight
	if bodyHeight < 3 {
		bodyHeight = 3
	}

	var body string
	if m.width < narrowLayoutWidth {
		half := bodyHeight / 2
		projects := m.renderProjects(theme, m.width, half)
		todos := m.renderTodos(theme, m.width, bodyHeight-half)
		body = lipgloss.JoinVertical(lipgloss.Left, projects, todos)
	} else {
		projectsWidth := m.width * 3 / 10
		projects := m.renderProjects(theme, projectsWidth, bodyHeight)
		todos := m.renderTodos(theme, m.width-projectsWidth, bodyHeight)
		body = lipgloss.JoinHorizontal(lipgloss.Top, projects, todos)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

func (m Model) renderProjects(theme Theme, width, height int) string {
	lines := make([]string, 0, len(m.data.Projects))
	for i, p := range m.data.Projects {
		label := fmt.Sprintf("📁 %s (%d)", p.Name, len(p.Todos))
		lines = append(lines, m.renderRow(theme, label, i == m.sel.project, theme.Item, width-4))
	}
	return m.renderPanel(theme, "Projects", lines, m.sel.project,
		m.activePanel == panelProjects, width, height)
}

func (m Model) renderTodos(theme Theme, width, height int) string {
	var lines []string
	if p := m.currentProject(); p != nil {
		lines = make([]string, 0, len(p.Todos))
		for i, todo := range p.Todos {
			lines = append(lines, m.renderRow(theme, todoLabel(todo),
				i == m.sel.todo, todoStyle(theme, todo), width-4))
		}
	}
	return m.renderPanel(theme, "Todos", lines, m.sel.todo,
		m.activePanel == panelTodos, width, height)
}

func todoLabel(todo models.Todo) string {
	var b strings.Builder
	if todo.Completed {
		b.WriteString("✅ ")
	} else {
		b.WriteString("⭕ ")
	}
	if todo.IsWorking() {
		b.WriteString("⏱ ")
	}
	b.WriteString(todo.Title)
	if dur := todo.FormatDuration(); dur != "" {
		b.WriteString(" [")
		b.WriteString(dur)
		b.WriteString("]")
	}
	return b.String()
}

func todoStyle(theme Theme, todo models.Todo) lipgloss.Style {
	switch {
	case todo.IsWorking():
		return theme.Working
	case todo.Completed:
		return theme.Completed
	}
	return theme.Item
}

func (m Model) renderRow(theme Theme, label string, selected bool, style lipgloss.Style, maxWidth int) string {
	if maxWidth < 4 {
		maxWidth = 4
	}
	label = ansi.Truncate(label, maxWidth, "…")
	if selected {
		return theme.Focused.Render("> " + label)
	}
	return style.Render("  " + label)
}

// renderPanel frames a list of rows, scrolling so the selected row stays
// visible within the available height.
func (m Model) renderPanel(theme Theme, title string, rows []string, selected int, active bool, width, height int) string {
	border := theme.Border
	if active {
		border = theme.ActiveBorder
	}

	// Two border lines plus the title line.
	visible := height - 3
	if visible < 1 {
		visible = 1
	}
	offset := 0
	if selected != noSelection && selected >= visible {
		offset = selected - visible + 1
	}
	if offset > len(rows) {
		offset = len(rows)
	}
	end := offset + visible
	if end > len(rows) {
		end = len(rows)
	}
	rows = rows[offset:end]

	content := theme.Title.Render(title)
	if len(rows) > 0 {
		content += "\n" + strings.Join(rows, "\n")
	}

	return border.
		Width(width - 2).
		Height(height - 2).
		Render(content)
}

func (m Model) renderFooter(theme Theme) string {
	if m.mode == modeNormal {
		return theme.Dim.Render(ansi.Truncate(helpLine, m.width, "…"))
	}

	var title string
	switch m.mode {
	case modeAddProject:
		title = "Add Project"
	case modeAddTodo:
		title = "Add Todo"
	case modeRenameProject:
		title = "Rename Project"
	case modeRenameTodo:
		title = "Rename Todo"
	}

	prompt := theme.InputTitle.Render(title) + "\n" + m.input.View() +
		"\n" + theme.Dim.Render("enter confirm • esc cancel")
	return theme.ActiveBorder.Width(m.width - 2).Render(prompt)
}

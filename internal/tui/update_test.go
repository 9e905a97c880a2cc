package tui

import (
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/secheng722/s-todo/internal/models"
	"github.com/secheng722/s-todo/internal/testutil"
)

// memStore records saves without touching disk.
type memStore struct {
	saves int
	last  models.AppData
}

func (s *memStore) Load() (models.AppData, error) { return models.AppData{}, os.ErrNotExist }

func (s *memStore) Save(data models.AppData) error {
	s.saves++
	s.last = data
	return nil
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(Model)
	}
	return m
}

func twoProjectModel(st *memStore) Model {
	data := models.AppData{
		Projects: []models.Project{
			testutil.NewProject().WithName("Work").WithTodos(
				testutil.NewTodo().WithTitle("Finish report").Build(),
				testutil.NewTodo().WithTitle("Review PR").Build(),
				testutil.NewTodo().WithTitle("Plan sprint").Build(),
			).Build(),
			testutil.NewProject().WithName("Personal").WithTodos(
				testutil.NewTodo().WithTitle("Learn Go").Build(),
			).Build(),
		},
	}
	return NewModel(data, st)
}

func TestNewModelSeedsSelection(t *testing.T) {
	m := twoProjectModel(&memStore{})
	if m.sel.project != 0 || m.sel.todo != 0 {
		t.Fatalf("selection = (%d, %d), want (0, 0)", m.sel.project, m.sel.todo)
	}

	empty := NewModel(models.AppData{}, &memStore{})
	if empty.sel.project != noSelection || empty.sel.todo != noSelection {
		t.Fatalf("empty selection = (%d, %d), want no selection", empty.sel.project, empty.sel.todo)
	}
}

func TestAddProjectFlow(t *testing.T) {
	st := &memStore{}
	m := NewModel(models.AppData{}, st)

	m = press(t, m, "a", "Groceries", "enter")

	if len(m.data.Projects) != 1 || m.data.Projects[0].Name != "Groceries" {
		t.Fatalf("projects = %+v, want one named Groceries", m.data.Projects)
	}
	if m.sel.project != 0 {
		t.Fatalf("new project not selected: %d", m.sel.project)
	}
	if m.mode != modeNormal {
		t.Fatalf("mode = %d, want normal after commit", m.mode)
	}
	if st.saves != 1 {
		t.Fatalf("saves = %d, want 1", st.saves)
	}
}

func TestAddTodoFlow(t *testing.T) {
	st := &memStore{}
	m := twoProjectModel(st)

	m = press(t, m, "tab", "a", "Water plants", "enter")

	todos := m.data.Projects[0].Todos
	if len(todos) != 4 || todos[3].Title != "Water plants" {
		t.Fatalf("todos = %+v, want Water plants appended", todos)
	}
	if m.sel.todo != 3 {
		t.Fatalf("new todo not selected: %d", m.sel.todo)
	}
}

func TestAddTodoWithoutProjectIsNoOp(t *testing.T) {
	m := NewModel(models.AppData{}, &memStore{})
	m = press(t, m, "tab", "a")
	if m.mode != modeNormal {
		t.Fatalf("mode = %d, want normal when no project exists", m.mode)
	}
}

func TestEmptyCommitIsNoOp(t *testing.T) {
	st := &memStore{}
	m := twoProjectModel(st)

	m = press(t, m, "tab", "a", "enter")

	if len(m.data.Projects[0].Todos) != 3 {
		t.Fatalf("todo count changed on empty commit")
	}
	if m.mode != modeNormal {
		t.Fatalf("mode = %d, want normal", m.mode)
	}
	if st.saves != 0 {
		t.Fatalf("saves = %d, want 0 for an empty commit", st.saves)
	}
}

func TestEscapeDiscardsBuffer(t *testing.T) {
	m := twoProjectModel(&memStore{})
	m = press(t, m, "a", "half typed", "esc")
	if m.mode != modeNormal {
		t.Fatalf("mode = %d, want normal after escape", m.mode)
	}
	if len(m.data.Projects) != 2 {
		t.Fatalf("escape committed a project")
	}
	if m.input.Value() != "" {
		t.Fatalf("buffer not cleared: %q", m.input.Value())
	}
}

func TestNavigationWrapsAndResetsTodo(t *testing.T) {
	m := twoProjectModel(&memStore{})

	m = press(t, m, "k")
	if m.sel.project != 1 {
		t.Fatalf("up from head should wrap to %d, got %d", 1, m.sel.project)
	}
	if m.sel.todo != 0 {
		t.Fatalf("todo selection not reset after project move: %d", m.sel.todo)
	}

	m = press(t, m, "j")
	if m.sel.project != 0 {
		t.Fatalf("down from tail should wrap to 0, got %d", m.sel.project)
	}

	m = press(t, m, "tab", "j", "j", "j")
	if m.sel.todo != 0 {
		t.Fatalf("todo cursor should wrap back to 0, got %d", m.sel.todo)
	}
}

func TestTabSeedsSelectionInTarget(t *testing.T) {
	data := models.AppData{Projects: []models.Project{
		testutil.NewProject().WithTodos(testutil.NewTodo().Build()).Build(),
	}}
	m := NewModel(data, &memStore{})
	m.sel.todo = noSelection

	m = press(t, m, "tab")
	if m.activePanel != panelTodos {
		t.Fatalf("panel = %d, want todos", m.activePanel)
	}
	if m.sel.todo != 0 {
		t.Fatalf("todo = %d, want 0 after focus", m.sel.todo)
	}
}

func TestToggleCompleteStopsOpenTimer(t *testing.T) {
	st := &memStore{}
	start := time.Now().Unix() - 120
	data := models.AppData{Projects: []models.Project{
		testutil.NewProject().WithTodos(
			testutil.NewTodo().WithTitle("In progress").Working(start).Build(),
		).Build(),
	}}
	m := NewModel(data, st)

	m = press(t, m, "tab", " ")

	todo := m.data.Projects[0].Todos[0]
	if !todo.Completed {
		t.Fatal("todo not marked completed")
	}
	if todo.IsWorking() {
		t.Fatal("timer still running after completion")
	}
	if todo.TotalDuration < 120 {
		t.Fatalf("TotalDuration = %d, want at least 120", todo.TotalDuration)
	}
	if st.saves != 1 {
		t.Fatalf("saves = %d, want 1", st.saves)
	}
}

func TestToggleCompleteOnProjectsPanelIsNoOp(t *testing.T) {
	st := &memStore{}
	m := twoProjectModel(st)
	m = press(t, m, " ")
	if m.data.Projects[0].Todos[0].Completed {
		t.Fatal("space on the projects panel toggled a todo")
	}
	if st.saves != 0 {
		t.Fatalf("saves = %d, want 0", st.saves)
	}
}

func TestTimerKeyTogglesAndSaves(t *testing.T) {
	st := &memStore{}
	m := twoProjectModel(st)

	m = press(t, m, "tab", "t")
	if !m.data.Projects[0].Todos[0].IsWorking() {
		t.Fatal("timer not started")
	}
	m = press(t, m, "t")
	if m.data.Projects[0].Todos[0].IsWorking() {
		t.Fatal("timer not stopped")
	}
	if st.saves != 2 {
		t.Fatalf("saves = %d, want 2", st.saves)
	}
}

func TestTimerKeyIgnoredOnProjectsPanel(t *testing.T) {
	m := twoProjectModel(&memStore{})
	m = press(t, m, "t")
	if m.data.Projects[0].Todos[0].IsWorking() {
		t.Fatal("timer started from the projects panel")
	}
}

func TestDeleteTodoReindexes(t *testing.T) {
	st := &memStore{}
	m := twoProjectModel(st)

	m = press(t, m, "tab", "j", "d")
	todos := m.data.Projects[0].Todos
	if len(todos) != 2 {
		t.Fatalf("todo count = %d, want 2", len(todos))
	}
	if todos[1].Title != "Plan sprint" {
		t.Fatalf("wrong todo removed: %+v", todos)
	}
	if m.sel.todo != 1 {
		t.Fatalf("selection = %d, want 1 (next item)", m.sel.todo)
	}

	// Deleting the tail steps the cursor back.
	m = press(t, m, "d")
	if m.sel.todo != 0 {
		t.Fatalf("selection = %d, want 0 after tail delete", m.sel.todo)
	}

	m = press(t, m, "d")
	if m.sel.todo != noSelection {
		t.Fatalf("selection = %d, want none after last delete", m.sel.todo)
	}
}

func TestDeleteProjectCascades(t *testing.T) {
	st := &memStore{}
	m := twoProjectModel(st)

	m = press(t, m, "d")
	if len(m.data.Projects) != 1 || m.data.Projects[0].Name != "Personal" {
		t.Fatalf("projects = %+v, want only Personal", m.data.Projects)
	}
	if m.sel.project != 0 || m.sel.todo != 0 {
		t.Fatalf("selection = (%d, %d), want (0, 0)", m.sel.project, m.sel.todo)
	}

	m = press(t, m, "d")
	if m.sel.project != noSelection || m.sel.todo != noSelection {
		t.Fatalf("selection = (%d, %d), want no selection", m.sel.project, m.sel.todo)
	}

	// Delete with nothing left must not panic or save.
	saves := st.saves
	m = press(t, m, "d")
	if st.saves != saves {
		t.Fatalf("delete on an empty list saved")
	}
	_ = m
}

func TestRenameSeedsBuffer(t *testing.T) {
	m := twoProjectModel(&memStore{})

	m = press(t, m, "r")
	if m.mode != modeRenameProject {
		t.Fatalf("mode = %d, want rename project", m.mode)
	}
	if m.input.Value() != "Work" {
		t.Fatalf("buffer = %q, want Work", m.input.Value())
	}

	m = press(t, m, "esc", "tab", "r")
	if m.input.Value() != "Finish report" {
		t.Fatalf("buffer = %q, want Finish report", m.input.Value())
	}

	m = press(t, m, "2", "enter")
	if got := m.data.Projects[0].Todos[0].Title; got != "Finish report2" {
		t.Fatalf("title = %q, want Finish report2", got)
	}
}

func TestRenameWithoutSelectionIsNoOp(t *testing.T) {
	m := NewModel(models.AppData{}, &memStore{})
	m = press(t, m, "r")
	if m.mode != modeNormal {
		t.Fatalf("mode = %d, want normal when nothing is selected", m.mode)
	}
}

func TestQuitSavesAndReturnsQuit(t *testing.T) {
	st := &memStore{}
	m := twoProjectModel(st)

	next, cmd := m.Update(keyMsg("q"))
	_ = next
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("q command = %T, want tea.QuitMsg", cmd())
	}
	if st.saves != 1 {
		t.Fatalf("saves = %d, want 1", st.saves)
	}
}

func TestManualSave(t *testing.T) {
	st := &memStore{}
	m := twoProjectModel(st)
	press(t, m, "s")
	if st.saves != 1 {
		t.Fatalf("saves = %d, want 1", st.saves)
	}
	if len(st.last.Projects) != 2 {
		t.Fatalf("saved %d projects, want 2", len(st.last.Projects))
	}
}

func TestMutationKeysInertDuringTextEntry(t *testing.T) {
	st := &memStore{}
	m := twoProjectModel(st)

	// While typing, "d" and "q" are text, not commands.
	m = press(t, m, "a", "d", "q", "esc")
	if len(m.data.Projects) != 2 {
		t.Fatalf("projects mutated during text entry: %+v", m.data.Projects)
	}
	if st.saves != 0 {
		t.Fatalf("saves = %d, want 0", st.saves)
	}
}

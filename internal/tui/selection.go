package tui

// noSelection marks a panel whose list is empty.
const noSelection = -1

// Cursor movement directions.
const (
	dirDown = 1
	dirUp   = -1
)

// selectionState tracks the cursor in each panel. Invariants: project is
// noSelection iff there are no projects, todo is noSelection iff the
// selected project has no todos; otherwise both are in range.
type selectionState struct {
	project int
	todo    int
}

func newSelectionState() selectionState {
	return selectionState{project: noSelection, todo: noSelection}
}

// cycleIndex advances cur by dir within [0, n), wrapping at both ends.
func cycleIndex(cur, n, dir int) int {
	if n <= 0 {
		return noSelection
	}
	if cur == noSelection {
		return 0
	}
	next := cur + dir
	if next < 0 {
		return n - 1
	}
	if next >= n {
		return 0
	}
	return next
}

// reindexAfterDelete adjusts a cursor after removing deletedIdx from a list
// that now holds newLen items: the cursor keeps its slot (now referring to
// the next item) unless the tail slot was removed.
func reindexAfterDelete(deletedIdx, newLen int) int {
	if newLen == 0 {
		return noSelection
	}
	if deletedIdx >= newLen {
		return newLen - 1
	}
	return deletedIdx
}

func (s *selectionState) moveProject(dir, numProjects int) {
	if numProjects == 0 {
		return
	}
	s.project = cycleIndex(s.project, numProjects, dir)
}

func (s *selectionState) moveTodo(dir, numTodos int) {
	if numTodos == 0 {
		s.todo = noSelection
		return
	}
	s.todo = cycleIndex(s.todo, numTodos, dir)
}

// resetTodo re-seeds the todo cursor after the selected project changes.
func (s *selectionState) resetTodo(numTodos int) {
	if numTodos > 0 {
		s.todo = 0
	} else {
		s.todo = noSelection
	}
}

// ensureProject seeds the project cursor when the panel gains focus with
// nothing selected.
func (s *selectionState) ensureProject(numProjects int) {
	if s.project == noSelection && numProjects > 0 {
		s.project = 0
	}
}

func (s *selectionState) ensureTodo(numTodos int) {
	if s.todo == noSelection && numTodos > 0 {
		s.todo = 0
	}
}

// Package testutil provides test data builders.
package testutil

import (
	"github.com/secheng722/s-todo/internal/models"
)

// TodoBuilder provides fluent API for creating test todos.
type TodoBuilder struct {
	todo models.Todo
}

func NewTodo() *TodoBuilder {
	return &TodoBuilder{
		todo: models.Todo{Title: "Test Todo"},
	}
}

func (b *TodoBuilder) WithTitle(t string) *TodoBuilder {
	b.todo.Title = t
	return b
}

func (b *TodoBuilder) WithDescription(d string) *TodoBuilder {
	b.todo.Description = d
	return b
}

func (b *TodoBuilder) Completed() *TodoBuilder {
	b.todo.Completed = true
	return b
}

func (b *TodoBuilder) WithDuration(seconds uint64) *TodoBuilder {
	b.todo.TotalDuration = seconds
	return b
}

// Working marks the todo as having an open session started at start.
func (b *TodoBuilder) Working(start int64) *TodoBuilder {
	b.todo.StartTime = &start
	b.todo.EndTime = nil
	return b
}

func (b *TodoBuilder) Build() models.Todo {
	return b.todo
}

// ProjectBuilder provides fluent API for creating test projects.
type ProjectBuilder struct {
	project models.Project
}

func NewProject() *ProjectBuilder {
	return &ProjectBuilder{
		project: models.Project{Name: "Test Project", Todos: []models.Todo{}},
	}
}

func (b *ProjectBuilder) WithName(n string) *ProjectBuilder {
	b.project.Name = n
	return b
}

func (b *ProjectBuilder) WithTodos(todos ...models.Todo) *ProjectBuilder {
	b.project.Todos = todos
	return b
}

func (b *ProjectBuilder) Build() models.Project {
	return b.project
}

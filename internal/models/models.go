package models

import (
	"fmt"
	"time"
)

// Unit ladder for duration labels. A month is a fixed 30-day block, not a
// calendar month.
const (
	secondsPerMinute uint64 = 60
	secondsPerHour   uint64 = 3600
	secondsPerDay    uint64 = 86400
	secondsPerMonth  uint64 = 2592000
)

// Todo is a single actionable item. StartTime and EndTime record the most
// recent work session as Unix seconds; TotalDuration accumulates whole
// completed sessions only. A session is open while StartTime is set and
// EndTime is not.
type Todo struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Completed     bool   `json:"completed"`
	StartTime     *int64 `json:"start_time"`
	EndTime       *int64 `json:"end_time"`
	TotalDuration uint64 `json:"total_duration"`
}

func NewTodo(title string) Todo {
	return Todo{Title: title}
}

// IsWorking reports whether a work session is currently open.
func (t *Todo) IsWorking() bool {
	return t.StartTime != nil && t.EndTime == nil
}

// StartWork opens a work session. Starting while already working re-bases
// the open session; the prior partial elapsed time is not credited.
func (t *Todo) StartWork() {
	t.startWorkAt(time.Now().Unix())
}

func (t *Todo) startWorkAt(now int64) {
	t.StartTime = &now
	t.EndTime = nil
}

// EndWork closes the open session and credits its length to TotalDuration.
// No-op when no session is open.
func (t *Todo) EndWork() {
	t.endWorkAt(time.Now().Unix())
}

func (t *Todo) endWorkAt(now int64) {
	if !t.IsWorking() {
		return
	}
	if elapsed := now - *t.StartTime; elapsed > 0 {
		t.TotalDuration += uint64(elapsed)
	}
	t.EndTime = &now
}

// ToggleWork ends the open session if one exists, otherwise starts one.
func (t *Todo) ToggleWork() {
	if t.IsWorking() {
		t.EndWork()
	} else {
		t.StartWork()
	}
}

// FormatDuration renders TotalDuration as a compact label holding at most
// the two most significant non-zero units ("1d 1h", "2m 5s"). Months pair
// only with days or hours, days only with hours or minutes. Zero renders as
// the empty string.
func (t *Todo) FormatDuration() string {
	total := t.TotalDuration
	if total == 0 {
		return ""
	}

	months := total / secondsPerMonth
	days := total % secondsPerMonth / secondsPerDay
	hours := total % secondsPerDay / secondsPerHour
	minutes := total % secondsPerHour / secondsPerMinute
	seconds := total % secondsPerMinute

	switch {
	case months > 0:
		switch {
		case days > 0:
			return fmt.Sprintf("%dmo %dd", months, days)
		case hours > 0:
			return fmt.Sprintf("%dmo %dh", months, hours)
		default:
			return fmt.Sprintf("%dmo", months)
		}
	case days > 0:
		switch {
		case hours > 0:
			return fmt.Sprintf("%dd %dh", days, hours)
		case minutes > 0:
			return fmt.Sprintf("%dd %dm", days, minutes)
		default:
			return fmt.Sprintf("%dd", days)
		}
	case hours > 0:
		switch {
		case minutes > 0:
			return fmt.Sprintf("%dh %dm", hours, minutes)
		case seconds > 0:
			return fmt.Sprintf("%dh %ds", hours, seconds)
		default:
			return fmt.Sprintf("%dh", hours)
		}
	case minutes > 0:
		if seconds > 0 {
			return fmt.Sprintf("%dm %ds", minutes, seconds)
		}
		return fmt.Sprintf("%dm", minutes)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

// Project owns an ordered list of todos.
type Project struct {
	Name  string `json:"name"`
	Todos []Todo `json:"todos"`
}

// AppData is the persisted root document.
type AppData struct {
	Projects []Project `json:"projects"`
}

// DefaultData seeds a fresh install, or any data file that fails to load.
func DefaultData() AppData {
	return AppData{
		Projects: []Project{
			{Name: "Work", Todos: []Todo{NewTodo("Finish report")}},
			{Name: "Personal", Todos: []Todo{NewTodo("Learn Go")}},
		},
	}
}

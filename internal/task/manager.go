package task

import (
	"strings"

	"github.com/worksonmyai/smallt/internal/storage"
)

// Manager runs task operations against a single store. Every operation
// reloads the full file; mutating operations write the full file back.
// There is no locking: two concurrent instances race with last-writer-
// wins semantics.
type Manager struct {
	store *storage.Store
}

// NewManager returns a manager bound to store.
func NewManager(store *storage.Store) *Manager {
	return &Manager{store: store}
}

// List returns all tasks in file order with 1-based ranks.
func (m *Manager) List() []Task {
	var tasks []Task
	for _, line := range m.store.Load() {
		if !IsTaskLine(line) {
			continue
		}
		tasks = append(tasks, Task{
			Rank: len(tasks) + 1,
			Text: lineText(line),
			Done: isDone(line),
		})
	}
	return tasks
}

// Add appends a new incomplete task and returns the trimmed text.
func (m *Manager) Add(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", ErrEmptyInput
	}

	lines := append(m.store.Load(), markerIncomplete+" "+trimmed)
	if err := m.store.Save(lines); err != nil {
		return "", &StorageError{Op: "add task", Err: err}
	}
	return trimmed, nil
}

// Check marks the task at rank index complete.
func (m *Manager) Check(index int) error {
	lines := m.store.Load()
	idxs := taskLineIndexes(lines)
	if index < 1 || index > len(idxs) {
		return ErrNotFound
	}

	i := idxs[index-1]
	if isDone(lines[i]) {
		return ErrAlreadyDone
	}

	lines[i] = strings.Replace(lines[i], "[ ]", "[x]", 1)
	if err := m.store.Save(lines); err != nil {
		return &StorageError{Op: "check task", Err: err}
	}
	return nil
}

// Delete removes the task at rank index and returns its text with the
// checkbox marker stripped. The line is removed by its position among
// all lines, so surrounding non-task text is untouched.
func (m *Manager) Delete(index int) (string, error) {
	lines := m.store.Load()
	idxs := taskLineIndexes(lines)
	if index < 1 || index > len(idxs) {
		return "", ErrNotFound
	}

	i := idxs[index-1]
	removed := lineText(lines[i])
	lines = append(lines[:i], lines[i+1:]...)
	if err := m.store.Save(lines); err != nil {
		return "", &StorageError{Op: "delete task", Err: err}
	}
	return removed, nil
}

// ClearCompleted removes every completed task line and returns the
// count removed. Zero removed is a valid, successful result.
func (m *Manager) ClearCompleted() (int, error) {
	lines := m.store.Load()

	var kept []string
	removed := 0
	for _, line := range lines {
		if IsTaskLine(line) && isDone(line) {
			removed++
			continue
		}
		kept = append(kept, line)
	}

	if err := m.store.Save(kept); err != nil {
		return 0, &StorageError{Op: "clear completed", Err: err}
	}
	return removed, nil
}

// ClearAll removes every task line, completed or not, and returns the
// count removed. With no tasks it reports ErrNoTasks without writing.
func (m *Manager) ClearAll() (int, error) {
	lines := m.store.Load()

	var kept []string
	removed := 0
	for _, line := range lines {
		if IsTaskLine(line) {
			removed++
			continue
		}
		kept = append(kept, line)
	}

	if removed == 0 {
		return 0, ErrNoTasks
	}
	if err := m.store.Save(kept); err != nil {
		return 0, &StorageError{Op: "clear all", Err: err}
	}
	return removed, nil
}

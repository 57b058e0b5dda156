// Package task defines the task model and the operations over the
// markdown task file: list, add, check, delete, and the two clear
// variants. Operations are positional: a task is identified by its
// 1-based rank among task lines in file order, so removing a line
// renumbers everything after it.
package task

import (
	"errors"
	"fmt"
	"strings"
)

// Checkbox markers. A task line always starts with markerPrefix; the
// character inside the brackets alone decides completion ("x"/"X" vs
// space). Reads accept either case, writes always use lowercase.
const (
	markerPrefix     = "- ["
	markerIncomplete = "- [ ]"
	markerComplete   = "- [x]"
	markerCompleteUC = "- [X]"
)

// Operation failures surfaced to the presentation layer. None of these
// are fatal; callers map them to status messages and keep going.
var (
	ErrEmptyInput  = errors.New("task cannot be empty")
	ErrNotFound    = errors.New("task not found")
	ErrAlreadyDone = errors.New("task already completed")
	ErrNoTasks     = errors.New("no tasks to clear")
)

// StorageError wraps a failed write of the backing file.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Task is one checkbox line of the file.
type Task struct {
	Rank int    `json:"rank"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// IsTaskLine reports whether line is a checkbox list item.
func IsTaskLine(line string) bool {
	return strings.HasPrefix(line, markerPrefix)
}

// isDone reports whether a task line is marked complete. The bracket
// letter is case-insensitive on read.
func isDone(line string) bool {
	return strings.HasPrefix(line, markerComplete) || strings.HasPrefix(line, markerCompleteUC)
}

// lineText strips the checkbox marker from a task line.
func lineText(line string) string {
	for _, marker := range []string{markerIncomplete, markerComplete, markerCompleteUC} {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(line[len(marker):])
		}
	}
	return strings.TrimSpace(line)
}

// taskLineIndexes returns the positions of task lines within lines, in
// file order. Rank N corresponds to taskLineIndexes(lines)[N-1].
func taskLineIndexes(lines []string) []int {
	var idxs []int
	for i, line := range lines {
		if IsTaskLine(line) {
			idxs = append(idxs, i)
		}
	}
	return idxs
}

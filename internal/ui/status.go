package ui

import (
	"errors"
	"fmt"

	"github.com/worksonmyai/smallt/internal/task"
)

// Category selects the display style of a status message.
type Category int

const (
	Info Category = iota
	Success
	Warning
	Error
)

// Status is the outcome of the last operation, ready for display. The
// category is used only for styling; operations themselves return
// structured errors, not pre-formatted strings.
type Status struct {
	Category Category
	Message  string
}

// RenderStatus styles a status message by its category.
func RenderStatus(s Status) string {
	switch s.Category {
	case Success:
		return successStyle.Render(s.Message)
	case Warning:
		return warningStyle.Render(s.Message)
	case Error:
		return errorStyle.Render(s.Message)
	default:
		return infoStyle.Render(s.Message)
	}
}

// Status constructors for successful operations.

func Added(text string) Status {
	return Status{Success, fmt.Sprintf("✅ Added: %s", text)}
}

func Checked(index int) Status {
	return Status{Success, fmt.Sprintf("☑️ Checked off task #%d", index)}
}

func Deleted(text string) Status {
	return Status{Success, fmt.Sprintf("🗑️ Deleted: %s", text)}
}

func Cleared(n int) Status {
	return Status{Success, fmt.Sprintf("🧹 Cleared %d completed task(s).", n)}
}

func ClearedAll(n int) Status {
	return Status{Success, fmt.Sprintf("🗑️ Cleared all %d task(s).", n)}
}

// Shell-level statuses.

func Cancelled() Status {
	return Status{Error, "❌ Cancelled."}
}

func InvalidNumber() Status {
	return Status{Error, "❌ Invalid number."}
}

func UnknownCommand() Status {
	return Status{Info, "❓ Unknown command."}
}

// StatusFor maps an operation error to its display status. Unrecognized
// errors fall through as generic error statuses; nothing here is fatal.
func StatusFor(err error) Status {
	var storageErr *task.StorageError
	switch {
	case errors.Is(err, task.ErrEmptyInput):
		return Status{Error, "❌ Task cannot be empty."}
	case errors.Is(err, task.ErrNotFound):
		return Status{Error, "❌ Task not found."}
	case errors.Is(err, task.ErrAlreadyDone):
		return Status{Warning, "⚠️ Already completed."}
	case errors.Is(err, task.ErrNoTasks):
		return Status{Warning, "⚠️ No tasks to clear."}
	case errors.As(err, &storageErr):
		return Status{Error, "❌ Failed to save changes."}
	default:
		return Status{Error, fmt.Sprintf("❌ %v", err)}
	}
}

// Package ui renders tasks and status messages for the terminal. It is
// a pure view layer: functions map (tasks, status) to styled text and
// keep no state, so both the interactive shell and the one-shot CLI
// share them.
package ui

import (
	"fmt"
	"strings"

	"github.com/worksonmyai/smallt/internal/task"
)

const titleBar = "═══════════════════════════════════════════"

// Title returns the bordered title block shown at the top of the shell.
func Title() string {
	return borderStyle.Render(titleBar) + "\n" +
		titleStyle.Render("           📋 smallt task manager") + "\n" +
		borderStyle.Render(titleBar)
}

// TaskLine renders one task as "<rank>. <checkbox> <text>", dimming
// completed tasks.
func TaskLine(t task.Task) string {
	rank := rankStyle.Render(fmt.Sprintf("%d.", t.Rank))
	if t.Done {
		return rank + " " + doneStyle.Render("- [x] "+t.Text)
	}
	return rank + " - [ ] " + t.Text
}

// TaskList renders all tasks, one per line, or a placeholder when there
// are none.
func TaskList(tasks []task.Task) string {
	if len(tasks) == 0 {
		return placeholderStyle.Render("   No tasks yet. Add one to get started!")
	}
	rows := make([]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, TaskLine(t))
	}
	return strings.Join(rows, "\n")
}

// shellCommands is the static command listing shown under the task list.
var shellCommands = []struct {
	name string
	desc string
}{
	{"add <task>", "Add a new task"},
	{"check <number>", "Mark task as complete"},
	{"delete <number>", "Delete a specific task"},
	{"clear", "Remove completed tasks"},
	{"clearall", "Remove ALL tasks"},
	{"list", "Refresh task list"},
	{"exit", "Quit program"},
}

// Help returns the interactive command listing.
func Help() string {
	var b strings.Builder
	b.WriteString(helpTitleStyle.Render("Commands:"))
	for _, c := range shellCommands {
		b.WriteString("\n  ")
		b.WriteString(helpCmdStyle.Render(fmt.Sprintf("%-20s", c.name)))
		b.WriteString(" ")
		b.WriteString(helpDescStyle.Render(c.desc))
	}
	return b.String()
}

// Prompt returns the styled input prompt.
func Prompt() string {
	return promptStyle.Render(">") + " "
}

// ConfirmClearAll returns the destructive-action confirmation prompt.
func ConfirmClearAll() string {
	return warningStyle.Render("⚠️  This will delete ALL tasks. Continue?") + " " +
		helpCmdStyle.Render("(y/N):") + " "
}

// Farewell returns the goodbye line printed when the shell exits.
func Farewell() string {
	return farewellStyle.Render("👋 Goodbye!")
}

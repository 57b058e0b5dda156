package ui

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worksonmyai/smallt/internal/task"
)

func TestTitleHasBorders(t *testing.T) {
	title := Title()

	lines := strings.Split(title, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "═")
	assert.Contains(t, lines[1], "smallt task manager")
	assert.Contains(t, lines[2], "═")
}

func TestTaskLine(t *testing.T) {
	tests := []struct {
		name string
		task task.Task
		want []string
	}{
		{
			name: "incomplete",
			task: task.Task{Rank: 1, Text: "buy milk"},
			want: []string{"1.", "- [ ]", "buy milk"},
		},
		{
			name: "complete",
			task: task.Task{Rank: 3, Text: "call mom", Done: true},
			want: []string{"3.", "- [x]", "call mom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TaskLine(tt.task)
			for _, want := range tt.want {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestTaskListPlaceholder(t *testing.T) {
	assert.Contains(t, TaskList(nil), "No tasks yet")
}

func TestTaskListJoinsRows(t *testing.T) {
	tasks := []task.Task{
		{Rank: 1, Text: "one"},
		{Rank: 2, Text: "two", Done: true},
	}

	out := TaskList(tasks)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "one")
	assert.Contains(t, lines[1], "two")
}

func TestHelpListsAllCommands(t *testing.T) {
	help := Help()

	for _, name := range []string{"add", "check", "delete", "clear", "clearall", "list", "exit"} {
		assert.Contains(t, help, name)
	}
}

func TestConfirmClearAllMentionsDefaultNo(t *testing.T) {
	assert.Contains(t, ConfirmClearAll(), "(y/N)")
}

func TestTasksJSON(t *testing.T) {
	tasks := []task.Task{
		{Rank: 1, Text: "buy milk"},
		{Rank: 2, Text: "call mom", Done: true},
	}

	out, err := TasksJSON(tasks)
	require.NoError(t, err)

	var decoded []task.Task
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, tasks, decoded)
}

func TestTasksJSONEmptyIsArray(t *testing.T) {
	out, err := TasksJSON(nil)
	require.NoError(t, err)

	assert.Equal(t, "[]", strings.TrimSpace(string(out)))
}

package ui

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/pretty"

	"github.com/worksonmyai/smallt/internal/task"
)

// TasksJSON returns the task list as pretty-printed JSON for scripting
// use. An empty list marshals to [] rather than null.
func TasksJSON(tasks []task.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []task.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}
	return pretty.Pretty(data), nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/worksonmyai/smallt/internal/ui"
)

var listFormat string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all tasks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		tasks := manager.List()

		switch listFormat {
		case "json":
			out, err := ui.TasksJSON(tasks)
			if err != nil {
				return err
			}
			cmd.Print(string(out))
		case "pretty":
			if len(tasks) == 0 {
				cmd.Println("No tasks yet.")
				return nil
			}
			cmd.Println(ui.TaskList(tasks))
		default:
			return fmt.Errorf("unknown format %q (want pretty or json)", listFormat)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listFormat, "format", "pretty", "output format: pretty or json")
}

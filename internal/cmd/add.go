package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/worksonmyai/smallt/internal/ui"
)

var addCmd = &cobra.Command{
	Use:   "add <task>",
	Short: "Add a new task",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Operation errors (empty text, storage failure) are reported
		// as status lines, not process failures.
		text, err := manager.Add(strings.Join(args, " "))
		if err != nil {
			cmd.Println(ui.RenderStatus(ui.StatusFor(err)))
			return nil
		}
		cmd.Println(ui.RenderStatus(ui.Added(text)))
		return nil
	},
}

package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the raw task file as markdown",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := os.ReadFile(store.Path())
		if err != nil {
			return fmt.Errorf("read task file: %w", err)
		}

		renderer, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(80),
		)
		if err != nil {
			return fmt.Errorf("create renderer: %w", err)
		}

		out, err := renderer.Render(string(data))
		if err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		cmd.Print(out)
		return nil
	},
}

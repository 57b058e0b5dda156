// Package cmd implements the CLI commands for smallt.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/worksonmyai/smallt/internal/config"
	"github.com/worksonmyai/smallt/internal/logging"
	"github.com/worksonmyai/smallt/internal/shell"
	"github.com/worksonmyai/smallt/internal/storage"
	"github.com/worksonmyai/smallt/internal/task"
)

// Version information set from main.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// SetVersionInfo sets the version information for the CLI.
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (%s, %s)", version, commit, date)
}

var (
	flagFile    string
	flagVerbose bool

	// store and manager are initialized before any command runs; the
	// file is ensured to exist before dispatch.
	store   *storage.Store
	manager *task.Manager
)

var rootCmd = &cobra.Command{
	Use:   "smallt",
	Short: "A tiny task manager backed by a markdown checklist",
	Long: `smallt keeps tasks as checkbox items in a plain markdown file.

Run it without arguments for the interactive shell, or use a subcommand
for one-shot operations:

  smallt              # Launch interactive mode
  smallt add <task>   # Add a task
  smallt list         # Show all tasks
  smallt help         # Show this help`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logging.Setup(flagVerbose)

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		path := cfg.TaskFile
		if flagFile != "" {
			path = flagFile
		}

		store = storage.New(path)
		store.Ensure()
		manager = task.NewManager(store)
		return nil
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return shell.Run(manager)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "task file path (default "+config.DefaultTaskFile+")")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(previewCmd)
}

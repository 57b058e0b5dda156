package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worksonmyai/smallt/internal/storage"
	"github.com/worksonmyai/smallt/internal/task"
)

// setupManager points the package-level store and manager at a
// temporary task file and restores them afterwards.
func setupManager(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.md")
	oldStore, oldManager := store, manager
	t.Cleanup(func() {
		store = oldStore
		manager = oldManager
	})
	store = storage.New(path)
	store.Ensure()
	manager = task.NewManager(store)
	return path
}

// runE invokes a command's run function with captured output.
func runE(t *testing.T, c *cobra.Command, args []string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	out := &cobra.Command{}
	out.SetOut(&buf)
	out.SetErr(&buf)
	err := c.RunE(out, args)
	return buf.String(), err
}

// executeRoot runs the full command tree, including the persistent
// pre-run wiring, with captured output.
func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs([]string{})
		flagFile = ""
	})
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCmdDefinition(t *testing.T) {
	assert.Equal(t, "smallt", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.True(t, rootCmd.SilenceUsage)
	assert.Contains(t, rootCmd.Long, "smallt add <task>")
	assert.Contains(t, rootCmd.Long, "Launch interactive mode")
}

func TestRootCmdFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()

	fileFlag := flags.Lookup("file")
	require.NotNil(t, fileFlag)
	assert.Equal(t, "f", fileFlag.Shorthand)
	assert.Equal(t, "", fileFlag.DefValue)

	verboseFlag := flags.Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "false", verboseFlag.DefValue)
}

func TestSetVersionInfo(t *testing.T) {
	SetVersionInfo("1.2.3", "abc1234", "2026-01-02")

	assert.Contains(t, rootCmd.Version, "1.2.3")
	assert.Contains(t, rootCmd.Version, "abc1234")
	assert.Contains(t, rootCmd.Version, "2026-01-02")
}

func TestUnknownCommandFails(t *testing.T) {
	_, err := executeRoot(t, "frobnicate")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestExecuteEnsuresTaskFileBeforeDispatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.md")

	out, err := executeRoot(t, "list", "--file", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err, "the task file must exist after any dispatch")
	assert.True(t, strings.HasPrefix(string(data), storage.Header))
	assert.Contains(t, out, "No tasks yet.")
}

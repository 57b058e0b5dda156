// Package logging configures the process-wide diagnostic logger.
package logging

import (
	"os"

	"github.com/charmbracelet/log"
)

// Setup directs diagnostics to stderr. Verbose lowers the threshold to
// Debug; otherwise only warnings and errors surface, keeping stdout
// clean for task output and the shell's full-screen redraws.
func Setup(verbose bool) {
	log.SetOutput(os.Stderr)
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
}

// Package cli runs the demo commands.
package cli

import (
	"log"

	"github.com/spf13/cobra"
)

// Run executes cmd and logs a returned error instead of letting cobra print
// it. It returns the process exit code.
func Run(cmd *cobra.Command, logger *log.Logger) int {
	cmd.SilenceErrors = true
	if err := cmd.Execute(); err != nil {
		logger.Print(err)
		return 1
	}
	return 0
}

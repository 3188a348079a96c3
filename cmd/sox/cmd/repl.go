package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/sox/internal/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive sox session",
	Long:  "Start a read-eval-print loop: each line is lexed, parsed, resolved, and run against a shared global scope.",
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
	return repl.New("sox> ").Start(os.Stdin, os.Stdout)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/sox/internal/config"
)

var (
	// Version information, set by build-time -ldflags (teacher's
	// cmd/dwscript/cmd/version.go pattern).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "sox",
	Short: "sox interpreter",
	Long: `sox is a small dynamically-typed, class-based scripting language.

It supports lexical scoping, first-class functions, closures, single
inheritance, and the usual if/while/for control flow, evaluated directly
off the AST by a tree-walking interpreter.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&config.Verbose, "verbose", "v", false, "verbose output")
}

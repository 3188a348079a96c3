// Package config holds CLI-level run configuration shared between cmd/sox's
// subcommands: how to get source text, and how much the pipeline should
// report along the way (spec.md §5.2, grounded on the teacher's cmd/dwscript
// package-level flag variables wired up through cobra.Command.Flags()).
package config

import (
	"fmt"
	"io"
	"os"
)

// Source describes where a subcommand's input comes from: an inline
// expression (-e), a file argument, or stdin when neither is given —
// mirrors the teacher's runScript/runParse input-resolution order.
type Source struct {
	Eval     string
	FilePath string
}

// Name is the display name used in error messages and AST dumps: the file
// path, "<eval>" for inline code, or "<stdin>".
func (s Source) Name() string {
	switch {
	case s.Eval != "":
		return "<eval>"
	case s.FilePath != "":
		return s.FilePath
	default:
		return "<stdin>"
	}
}

// Read resolves the source text per the precedence above.
func (s Source) Read(stdin io.Reader) (string, error) {
	switch {
	case s.Eval != "":
		return s.Eval, nil
	case s.FilePath != "":
		data, err := os.ReadFile(s.FilePath)
		if err != nil {
			return "", fmt.Errorf("failed to read file %s: %w", s.FilePath, err)
		}
		return string(data), nil
	default:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
}

// RunOptions controls the `run` subcommand (spec.md §5.2).
type RunOptions struct {
	Source
	DumpAST bool
	Trace   bool
	Color   bool
}

// LexOptions controls the `lex` subcommand.
type LexOptions struct {
	Source
	ShowPos    bool
	ShowType   bool
	OnlyErrors bool
}

// ParseOptions controls the `parse` subcommand.
type ParseOptions struct {
	Source
	DumpAST bool
}

// ResolveOptions controls the `resolve` subcommand.
type ResolveOptions struct {
	Source
	ShowGlobals bool
}

// Verbose is set by the root command's persistent --verbose flag (teacher's
// rootCmd.PersistentFlags().BoolP pattern). No subcommand reads it.
var Verbose bool

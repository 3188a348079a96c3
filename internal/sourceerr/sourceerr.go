// Package sourceerr provides the shared error rendering used by the lexer,
// parser, resolver, and evaluator: every stage-local error type embeds
// Positioned so they all render "[line N] Error: <message>" the same way,
// and SourceError additionally renders a caret pointing at the offending
// column when the source text is available (grounded on the teacher's
// internal/errors.CompilerError.Format).
package sourceerr

import (
	"fmt"
	"strings"

	"github.com/cwbudde/sox/internal/token"
)

// Positioned is embedded by every stage's local error type (lexer.Error,
// parser.SyntaxError, resolver.StaticError, interp.RuntimeError) so each
// gets an identical Error() for free without sharing a single concrete type
// across packages that otherwise have no reason to import one another.
type Positioned struct {
	Message string
	Pos     token.Position
}

func (p Positioned) Error() string {
	return "[" + p.Pos.String() + "] Error: " + p.Message
}

// SourceError is a standalone positioned error for callers (the CLI) that
// don't need a stage-specific type, with an optional caret-pointing render
// against the original source text.
type SourceError struct {
	Positioned
}

// New creates a SourceError at pos.
func New(message string, pos token.Position) *SourceError {
	return &SourceError{Positioned{Message: message, Pos: pos}}
}

// Format renders the error against source, underlining the offending column
// with a caret. color wraps the caret in ANSI red/bold the way the
// teacher's CompilerError.Format(color bool) does. source may be empty, in
// which case Format falls back to Error().
func (e *SourceError) Format(source string, color bool) string {
	return Render(e.Message, e.Pos, source, color)
}

// Render is the shared caret-rendering implementation. Every stage-local
// error type (lexer.Error, parser.SyntaxError, resolver.StaticError,
// interp.RuntimeError) exposes its own Format(source, color) that delegates
// here, so the CLI can render any of them identically without this package
// needing to know their concrete types.
func Render(message string, pos token.Position, source string, color bool) string {
	line := sourceLine(source, pos.Line)
	if line == "" {
		return "[" + pos.String() + "] Error: " + message
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s] Error: %s\n", pos.String(), message)
	gutter := fmt.Sprintf("%4d | ", pos.Line)
	sb.WriteString(gutter)
	sb.WriteString(line)
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat(" ", len(gutter)+max0(pos.Column-1)))
	if color {
		sb.WriteString("\033[1;31m")
	}
	sb.WriteByte('^')
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func sourceLine(source string, lineNum int) string {
	if source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatAll renders a batch of errors (e.g. every SyntaxError from a single
// Parse call) against one source text, one per line.
func FormatAll[E interface{ Format(string, bool) string }](errs []E, source string, color bool) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Format(source, color)
	}
	return strings.Join(parts, "\n")
}

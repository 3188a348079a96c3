// Package repl implements sox's interactive Read-Eval-Print Loop: one line
// of source at a time, lexed, parsed, resolved, and evaluated against an
// interpreter whose global scope persists across lines — so a `let` on one
// line is visible on the next (spec.md §6, grounded on
// akashmaji946-go-mix's repl.Repl, rebuilt around sox's lex→parse→resolve→
// eval pipeline instead of go-mix's single-pass evaluator).
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/cwbudde/sox/internal/interp"
	"github.com/cwbudde/sox/internal/lexer"
	"github.com/cwbudde/sox/internal/parser"
	"github.com/cwbudde/sox/internal/resolver"
	"github.com/cwbudde/sox/internal/values"
)

var (
	promptColor = color.New(color.FgCyan)
	errorColor  = color.New(color.FgRed)
	bannerColor = color.New(color.FgGreen)
)

// Repl is a persistent interactive session: one global scope shared by
// every line read until the user exits.
type Repl struct {
	Prompt string
	it     *interp.Interpreter
}

// New creates a Repl with a fresh global scope and an empty resolver table
// — each line gets its own table, since resolver coordinates only make
// sense within the AST they were computed from; every reference that
// crosses a line boundary is necessarily a global, resolved by name.
func New(prompt string) *Repl {
	return &Repl{
		Prompt: prompt,
		it:     interp.New(nil),
	}
}

// Start reads lines from in, echoing prompts and results to out, until EOF
// or ".exit".
func (r *Repl) Start(in io.Reader, out io.Writer) error {
	bannerColor.Fprintln(out, "sox "+"— type '.exit' or press Ctrl-D to quit")

	rl, err := readline.NewEx(&readline.Config{
		Prompt: promptColor.Sprint(r.Prompt),
		Stdin:  io.NopCloser(in),
		Stdout: out,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	r.it.Out = out

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(out, "bye")
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			fmt.Fprintln(out, "bye")
			return nil
		}
		rl.SaveHistory(line)
		r.evalLine(line, out)
	}
}

func (r *Repl) evalLine(line string, out io.Writer) {
	toks := lexer.New(line).Tokens()
	program, perrs := parser.New(toks).Parse()
	if len(perrs) > 0 {
		for _, e := range perrs {
			errorColor.Fprintln(out, e.Format(line, false))
		}
		return
	}

	table, rerrs := resolver.Resolve(program.Statements)
	if len(rerrs) > 0 {
		for _, e := range rerrs {
			errorColor.Fprintln(out, e.Format(line, false))
		}
		return
	}

	r.it.SetTable(table)
	val, err := r.it.Run(program)
	if err != nil {
		errorColor.Fprintln(out, err.Error())
		return
	}
	if _, isNone := val.(values.None); !isNone {
		fmt.Fprintln(out, val.Render())
	}
}

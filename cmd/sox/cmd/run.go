package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/sox/internal/config"
	"github.com/cwbudde/sox/internal/interp"
	"github.com/cwbudde/sox/internal/lexer"
	"github.com/cwbudde/sox/internal/parser"
	"github.com/cwbudde/sox/internal/resolver"
)

var runOpts config.RunOptions

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a sox program",
	Long: `Execute a sox program from a file or inline expression.

Examples:
  sox run script.sox
  sox run -e "print 1 + 2;"
  sox run --dump-ast script.sox`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runOpts.Eval, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&runOpts.DumpAST, "dump-ast", false, "dump the parsed AST before running")
	runCmd.Flags().BoolVar(&runOpts.Trace, "trace", false, "announce which file/expression is executing")
	runCmd.Flags().BoolVar(&runOpts.Color, "color", true, "colorize error output")
}

func runRun(_ *cobra.Command, args []string) error {
	if len(args) == 1 {
		runOpts.FilePath = args[0]
	}
	input, err := runOpts.Read(os.Stdin)
	if err != nil {
		return err
	}
	name := runOpts.Name()

	toks := lexer.New(input).Tokens()
	program, perrs := parser.New(toks).Parse()
	if len(perrs) > 0 {
		for _, e := range perrs {
			fmt.Fprintln(os.Stderr, e.Format(input, runOpts.Color))
		}
		return fmt.Errorf("parsing failed with %d error(s)", len(perrs))
	}

	if runOpts.DumpAST {
		fmt.Println(program.String())
	}

	table, rerrs := resolver.Resolve(program.Statements)
	if len(rerrs) > 0 {
		for _, e := range rerrs {
			fmt.Fprintln(os.Stderr, e.Format(input, runOpts.Color))
		}
		return fmt.Errorf("resolving failed with %d error(s)", len(rerrs))
	}

	if runOpts.Trace {
		fmt.Fprintf(os.Stderr, "[running %s]\n", name)
	}

	it := interp.New(table)
	it.Out = os.Stdout
	if _, err := it.Run(program); err != nil {
		if rt, ok := err.(*interp.RuntimeError); ok {
			fmt.Fprintln(os.Stderr, rt.Format(input, runOpts.Color))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return fmt.Errorf("execution failed")
	}
	return nil
}

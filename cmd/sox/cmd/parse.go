package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/sox/internal/config"
	"github.com/cwbudde/sox/internal/lexer"
	"github.com/cwbudde/sox/internal/parser"
)

var parseOpts config.ParseOptions

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse sox source and print the AST",
	Long: `Parse sox source code and print the resulting Abstract Syntax Tree.

If no file is given, reads from stdin. Use -e to parse an inline
expression or statement list.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseOpts.Eval, "eval", "e", "", "parse inline code instead of reading from file")
	parseCmd.Flags().BoolVar(&parseOpts.DumpAST, "dump-ast", false, "print one statement per line instead of a single rendered program")
}

func runParse(_ *cobra.Command, args []string) error {
	if len(args) == 1 {
		parseOpts.FilePath = args[0]
	}
	input, err := parseOpts.Read(os.Stdin)
	if err != nil {
		return err
	}

	toks := lexer.New(input).Tokens()
	program, errs := parser.New(toks).Parse()
	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e.Format(input, true))
		}
		return fmt.Errorf("parsing failed with %d error(s)", len(errs))
	}

	if parseOpts.DumpAST {
		for i, stmt := range program.Statements {
			fmt.Printf("%3d: %s\n", i, stmt.String())
		}
		return nil
	}
	fmt.Println(program.String())
	return nil
}

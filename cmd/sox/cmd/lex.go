package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/sox/internal/config"
	"github.com/cwbudde/sox/internal/lexer"
	"github.com/cwbudde/sox/internal/token"
)

var lexOpts config.LexOptions

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize sox source and print the resulting tokens",
	Long: `Tokenize (lex) a sox program and print the resulting tokens.

Examples:
  sox lex script.sox
  sox lex -e "let x = 1 + 2;"
  sox lex --show-pos --show-type script.sox`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexOpts.Eval, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&lexOpts.ShowPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&lexOpts.ShowType, "show-type", false, "show token type names")
	lexCmd.Flags().BoolVar(&lexOpts.OnlyErrors, "only-errors", false, "show only illegal tokens")
}

func runLex(_ *cobra.Command, args []string) error {
	if len(args) == 1 {
		lexOpts.FilePath = args[0]
	}
	input, err := lexOpts.Read(os.Stdin)
	if err != nil {
		return err
	}

	l := lexer.New(input)
	toks := l.Tokens()

	for _, tok := range toks {
		if lexOpts.OnlyErrors && tok.Type != token.ILLEGAL {
			continue
		}
		printToken(tok)
	}

	if errs := l.Errors(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e.Format(input, true))
		}
		return fmt.Errorf("lexing failed with %d error(s)", len(errs))
	}
	return nil
}

func printToken(tok token.Token) {
	var out string
	if lexOpts.ShowType {
		out = fmt.Sprintf("[%-12s]", tok.Type)
	}
	if tok.Literal != nil {
		out += fmt.Sprintf(" %q", tok.Lexeme)
	} else {
		out += " " + tok.Lexeme
	}
	if lexOpts.ShowPos {
		out += fmt.Sprintf(" @%d:%d", tok.Pos.Line, tok.Pos.Column)
	}
	fmt.Println(out)
}

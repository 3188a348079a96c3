package lexer

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestTokenDumpSnapshots pins the non-trivia token stream for a few
// representative programs, the way the teacher pins interpreter output
// with go-snaps in internal/interp/fixture_test.go.
func TestTokenDumpSnapshots(t *testing.T) {
	programs := map[string]string{
		"numbers_and_strings": `let a = 1; let b = 2.5; let s = "hi\nthere";`,
		"operators":           `a == b != c <= d >= e and f or not g`,
		"class_decl":          `class C: Base { init(x) { this.x = x; } }`,
	}

	for name, src := range programs {
		t.Run(name, func(t *testing.T) {
			toks := nonTrivia(New(src).Tokens())
			var sb strings.Builder
			for _, tok := range toks {
				sb.WriteString(tok.Type.String())
				sb.WriteByte(' ')
				sb.WriteString(tok.Lexeme)
				sb.WriteByte('\n')
			}
			snaps.MatchSnapshot(t, sb.String())
		})
	}
}

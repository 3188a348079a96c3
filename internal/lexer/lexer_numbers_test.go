package lexer

import (
	"testing"

	"github.com/cwbudde/sox/internal/token"
)

func TestLexerIntegerLiteral(t *testing.T) {
	toks := nonTrivia(New("123").Tokens())
	if toks[0].Type != token.NUMBER_INT || toks[0].Literal.(int64) != 123 {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestLexerFloatLiteral(t *testing.T) {
	toks := nonTrivia(New("3.5").Tokens())
	if toks[0].Type != token.NUMBER_FLOAT || toks[0].Literal.(float64) != 3.5 {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestLexerDotWithoutFractionalDigitIsNotAFloat(t *testing.T) {
	// "7." is not a valid fractional part (peek-two rule): must be INT then DOT.
	toks := nonTrivia(New("7.").Tokens())
	if toks[0].Type != token.NUMBER_INT {
		t.Fatalf("expected NUMBER_INT, got %s", toks[0].Type)
	}
	if toks[1].Type != token.DOT {
		t.Fatalf("expected DOT after bare integer, got %s", toks[1].Type)
	}
}

package lexer

import (
	"testing"

	"github.com/cwbudde/sox/internal/token"
)

func typesOf(toks []token.Token) []token.Type {
	types := make([]token.Type, len(toks))
	for i, t := range toks {
		types[i] = t.Type
	}
	return types
}

func nonTrivia(toks []token.Token) []token.Token {
	var out []token.Token
	for _, t := range toks {
		switch t.Type {
		case token.WHITESPACE, token.NEWLINE, token.COMMENT:
			continue
		}
		out = append(out, t)
	}
	return out
}

func TestLexerPunctuationAndOperators(t *testing.T) {
	src := `(){},.;:+-*/%!====<<=>>=`
	toks := nonTrivia(New(src).Tokens())
	want := []token.Type{
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE, token.COMMA,
		token.DOT, token.SEMICOLON, token.COLON, token.PLUS, token.MINUS,
		token.STAR, token.SLASH, token.PERCENT, token.BANG_EQ, token.EQUAL_EQ,
		token.EQUAL, token.LESS, token.LESS_EQ, token.GREATER, token.GREATER_EQ,
		token.EOF,
	}
	got := typesOf(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestLexerKeywords(t *testing.T) {
	toks := nonTrivia(New("class def let while if else print return this super and or true false None").Tokens())
	want := []token.Type{
		token.CLASS, token.DEF, token.LET, token.WHILE, token.IF, token.ELSE,
		token.PRINT, token.RETURN, token.THIS, token.SUPER, token.AND, token.OR,
		token.TRUE, token.FALSE, token.NONE, token.EOF,
	}
	got := typesOf(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestLexerLineTracking(t *testing.T) {
	toks := nonTrivia(New("let a = 1;\nlet b = 2;").Tokens())
	// "let" on line 1, "let" (second decl) on line 2.
	var lines []int
	for _, tk := range toks {
		if tk.Type == token.LET {
			lines = append(lines, tk.Pos.Line)
		}
	}
	if len(lines) != 2 || lines[0] != 1 || lines[1] != 2 {
		t.Fatalf("expected let tokens on lines [1 2], got %v", lines)
	}
}

func TestLexerComments(t *testing.T) {
	toks := New("// line comment\nlet /* block\ncomment */ a = 1;").Tokens()
	var sawLineComment, sawBlockComment bool
	for _, tk := range toks {
		if tk.Type == token.COMMENT {
			if tk.Lexeme[:2] == "//" {
				sawLineComment = true
			} else if tk.Lexeme[:2] == "/*" {
				sawBlockComment = true
			}
		}
	}
	if !sawLineComment || !sawBlockComment {
		t.Fatalf("expected both a line and a block comment token, got %+v", toks)
	}
}

func TestLexerUnterminatedString(t *testing.T) {
	l := New(`"unterminated`)
	l.Tokens()
	if len(l.Errors()) != 1 {
		t.Fatalf("expected 1 lexer error, got %d: %v", len(l.Errors()), l.Errors())
	}
}

func TestLexerUnterminatedBlockComment(t *testing.T) {
	l := New("/* never closed")
	l.Tokens()
	if len(l.Errors()) != 1 {
		t.Fatalf("expected 1 lexer error, got %d: %v", len(l.Errors()), l.Errors())
	}
}

func TestLexerEmptySource(t *testing.T) {
	toks := New("").Tokens()
	if len(toks) != 1 || toks[0].Type != token.EOF {
		t.Fatalf("empty source should lex to a single EOF token, got %v", toks)
	}
}

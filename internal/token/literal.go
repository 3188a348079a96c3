package token

import "sync/atomic"

// Literal is the optional payload carried by a literal token: a string, an
// int64, a float64, a bool, or nil (for tokens with no literal value).
type Literal = any

// nextID hands out the monotonic unique token identities described in
// spec.md §3.1 / §9: two tokens at different source positions with the same
// text must be distinguishable when used as resolver hash-map keys. We pick
// the unique-id strategy over the (lexeme, line) pair strategy so the
// resolver's map key is a single comparable int rather than a composite, and
// so two same-named variables declared on the same line (e.g. `let a = 1;
// let a = 2;` written on one line by a formatter) remain distinct keys.
var nextID uint64

// Token is a single lexical unit: its Type, the exact source substring
// (Lexeme), an optional Literal payload, its Position, and a process-unique
// ID.
type Token struct {
	Type    Type
	Lexeme  string
	Literal Literal
	Pos     Position
	ID      uint64
}

// New constructs a Token and assigns it the next unique ID.
func New(typ Type, lexeme string, literal Literal, pos Position) Token {
	return Token{
		Type:    typ,
		Lexeme:  lexeme,
		Literal: literal,
		Pos:     pos,
		ID:      atomic.AddUint64(&nextID, 1),
	}
}

func (t Token) String() string {
	if t.Literal != nil {
		return t.Type.String() + " " + t.Lexeme
	}
	return t.Type.String()
}

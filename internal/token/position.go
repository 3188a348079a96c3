package token

import "strconv"

// Position is source-location metadata attached to every token. Column is
// measured in runes, matching the teacher lexer's Unicode-aware counting
// (column positions are rune counts, not byte offsets or display widths);
// Offset is the byte offset of the token's first character in the source.
type Position struct {
	Line   int
	Column int
	Offset int
}

// String renders "line N" for use in `[line N] Error ...` messages.
func (p Position) String() string {
	return "line " + strconv.Itoa(p.Line)
}

package sourceerr

import (
	"strings"
	"testing"

	"github.com/cwbudde/sox/internal/token"
)

func TestPositionedErrorFormat(t *testing.T) {
	p := Positioned{Message: "unexpected token", Pos: token.Position{Line: 3}}
	if got, want := p.Error(), "[line 3] Error: unexpected token"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSourceErrorFallsBackWithoutSource(t *testing.T) {
	e := New("boom", token.Position{Line: 1})
	if got := e.Format("", false); got != e.Error() {
		t.Fatalf("got %q, want %q", got, e.Error())
	}
}

func TestSourceErrorCaretPointsAtColumn(t *testing.T) {
	src := "let x = ;"
	e := New("expected expression", token.Position{Line: 1, Column: 9})
	out := e.Format(src, false)
	lines := strings.Split(out, "\n")
	if len(lines) < 3 {
		t.Fatalf("expected at least 3 lines, got %q", out)
	}
	if !strings.Contains(lines[1], src) {
		t.Fatalf("expected source line rendered, got %q", lines[1])
	}
	caretCol := strings.Index(lines[2], "^")
	sourceCol := strings.Index(lines[1], ";")
	if caretCol == -1 {
		t.Fatalf("expected a caret in %q", lines[2])
	}
	if caretCol != sourceCol {
		t.Fatalf("caret at %d, want %d (under ';', column 9)", caretCol, sourceCol)
	}
}

func TestRenderOmitsColorCodesWhenDisabled(t *testing.T) {
	out := Render("bad", token.Position{Line: 1, Column: 1}, "oops", false)
	if strings.Contains(out, "\033[") {
		t.Fatalf("expected no ANSI codes, got %q", out)
	}
}

func TestRenderIncludesColorCodesWhenEnabled(t *testing.T) {
	out := Render("bad", token.Position{Line: 1, Column: 1}, "oops", true)
	if !strings.Contains(out, "\033[1;31m") {
		t.Fatalf("expected ANSI red in %q", out)
	}
}

package config

import (
	"strings"
	"testing"
)

func TestSourceNamePrecedence(t *testing.T) {
	cases := []struct {
		src  Source
		want string
	}{
		{Source{Eval: "1+1"}, "<eval>"},
		{Source{FilePath: "foo.sox"}, "foo.sox"},
		{Source{}, "<stdin>"},
		{Source{Eval: "1+1", FilePath: "foo.sox"}, "<eval>"},
	}
	for _, c := range cases {
		if got := c.src.Name(); got != c.want {
			t.Errorf("Source{%+v}.Name() = %q, want %q", c.src, got, c.want)
		}
	}
}

func TestSourceReadEval(t *testing.T) {
	src := Source{Eval: "print 1;"}
	got, err := src.Read(strings.NewReader("ignored"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "print 1;" {
		t.Fatalf("got %q", got)
	}
}

func TestSourceReadStdin(t *testing.T) {
	src := Source{}
	got, err := src.Read(strings.NewReader("print 2;"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "print 2;" {
		t.Fatalf("got %q", got)
	}
}

func TestSourceReadMissingFile(t *testing.T) {
	src := Source{FilePath: "/nonexistent/does-not-exist.sox"}
	if _, err := src.Read(nil); err == nil {
		t.Fatal("expected an error reading a missing file")
	}
}

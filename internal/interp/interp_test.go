package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cwbudde/sox/internal/lexer"
	"github.com/cwbudde/sox/internal/parser"
	"github.com/cwbudde/sox/internal/resolver"
)

func run(t *testing.T, src string) (string, error) {
	t.Helper()
	toks := lexer.New(src).Tokens()
	prog, perrs := parser.New(toks).Parse()
	if len(perrs) != 0 {
		t.Fatalf("unexpected parse errors: %v", perrs)
	}
	table, rerrs := resolver.Resolve(prog.Statements)
	if len(rerrs) != 0 {
		t.Fatalf("unexpected resolver errors: %v", rerrs)
	}
	var buf bytes.Buffer
	it := New(table)
	it.Out = &buf
	_, err := it.Run(prog)
	return buf.String(), err
}

func TestArithmeticAndPrint(t *testing.T) {
	out, err := run(t, `print 1 + 2 * 3; print 7 / 2;`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "7\n3.5\n" {
		t.Fatalf("got %q", out)
	}
}

func TestClosuresCaptureMutableState(t *testing.T) {
	src := `
def make() {
  let i = 0;
  def tick() { i = i + 1; return i; }
  return tick;
}
let t = make();
print t(); print t(); print t();
`
	out, err := run(t, src)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "1\n2\n3\n" {
		t.Fatalf("got %q", out)
	}
}

func TestClassWithInitAndMethod(t *testing.T) {
	src := `
class C {
  init(x) { this.x = x; }
  get() { return this.x; }
}
let c = C(42);
print c.get();
`
	out, err := run(t, src)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "42\n" {
		t.Fatalf("got %q", out)
	}
}

func TestInheritanceWithSuper(t *testing.T) {
	src := `
class A { hi() { return "A"; } }
class B: A { hi() { return super.hi() + "B"; } }
print B().hi();
`
	out, err := run(t, src)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "AB\n" {
		t.Fatalf("got %q", out)
	}
}

func TestUndefinedVariableIsNameError(t *testing.T) {
	_, err := run(t, `print undefined_name;`)
	if err == nil {
		t.Fatal("expected a runtime NameError")
	}
	if !strings.Contains(err.Error(), "NameError: name 'undefined_name' is not defined") {
		t.Fatalf("unexpected error message: %v", err)
	}
}

func TestIfWithNoneConditionTakesElseBranch(t *testing.T) {
	out, err := run(t, `let x = None; let a = 0; if (x) { a = 1; } else { a = 2; } print a;`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "2\n" {
		t.Fatalf("got %q", out)
	}
}

func TestBareReturnInPlainFunctionIsNone(t *testing.T) {
	out, err := run(t, `
def f() { return; }
let v = f();
print v;
`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "None\n" {
		t.Fatalf("got %q", out)
	}
}

func TestBareReturnInInitReturnsThis(t *testing.T) {
	src := `
class C { init() { return; } }
let c = C();
print c.init();
`
	out, err := run(t, src)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if !strings.Contains(out, "C instance") {
		t.Fatalf("got %q", out)
	}
}

func TestMethodLookupPrefersMostDerived(t *testing.T) {
	src := `
class Base { who() { return "base"; } }
class Derived: Base { who() { return "derived"; } }
print Derived().who();
`
	out, err := run(t, src)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "derived\n" {
		t.Fatalf("got %q", out)
	}
}

func TestWhileLoop(t *testing.T) {
	src := `let i = 0; while (i < 3) { print i; i = i + 1; }`
	out, err := run(t, src)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "0\n1\n2\n" {
		t.Fatalf("got %q", out)
	}
}

func TestForDesugaring(t *testing.T) {
	src := `for (let i = 0; i < 3; i = i + 1) print i;`
	out, err := run(t, src)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "0\n1\n2\n" {
		t.Fatalf("got %q", out)
	}
}

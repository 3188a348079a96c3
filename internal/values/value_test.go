package values

import "testing"

func TestFloatRenderAlwaysShowsFractionalDigit(t *testing.T) {
	cases := map[Float]string{
		1:    "1.0",
		1.5:  "1.5",
		-2:   "-2.0",
		0:    "0.0",
	}
	for in, want := range cases {
		if got := in.Render(); got != want {
			t.Errorf("Float(%v).Render() = %q, want %q", float64(in), got, want)
		}
	}
}

func TestTruthiness(t *testing.T) {
	truthy := []Value{Int(0), Float(0), String(""), Bool(true)}
	for _, v := range truthy {
		if !Truthy(v) {
			t.Errorf("Truthy(%#v) = false, want true", v)
		}
	}
	falsy := []Value{Bool(false), None{}}
	for _, v := range falsy {
		if Truthy(v) {
			t.Errorf("Truthy(%#v) = true, want false", v)
		}
	}
}

func TestEqualCrossesIntAndFloat(t *testing.T) {
	if !Equal(Int(2), Float(2.0)) {
		t.Fatal("expected Int(2) == Float(2.0)")
	}
	if Equal(Int(2), Float(2.5)) {
		t.Fatal("expected Int(2) != Float(2.5)")
	}
}

func TestAddStringConcatenation(t *testing.T) {
	v, err := Add(String("foo"), String("bar"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != String("foobar") {
		t.Fatalf("got %v, want foobar", v)
	}
}

func TestAddMixedIntFloatPromotesToFloat(t *testing.T) {
	v, err := Add(Int(1), Float(2.5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != Float(3.5) {
		t.Fatalf("got %v, want 3.5", v)
	}
}

func TestAddIntIntStaysInt(t *testing.T) {
	v, err := Add(Int(2), Int(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != Int(5) {
		t.Fatalf("got %v, want Int(5)", v)
	}
}

func TestDivByZeroIsError(t *testing.T) {
	if _, err := Div(Int(1), Int(0)); err == nil {
		t.Fatal("expected division-by-zero error")
	}
}

func TestModFloatUsesIEEERemainder(t *testing.T) {
	v, err := Mod(Float(5.5), Float(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != Float(-0.5) {
		t.Fatalf("got %v, want -0.5", v)
	}
}

func TestModIntStaysInt(t *testing.T) {
	v, err := Mod(Int(7), Int(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != Int(1) {
		t.Fatalf("got %v, want Int(1)", v)
	}
}

func TestClassFindMethodWalksSuperclass(t *testing.T) {
	base := &Class{Name: "Base", Methods: map[string]*Function{"greet": {}}}
	derived := &Class{Name: "Derived", Superclass: base, Methods: map[string]*Function{}}
	if derived.FindMethod("greet") == nil {
		t.Fatal("expected Derived.FindMethod(\"greet\") to find the base method")
	}
	if derived.FindMethod("missing") != nil {
		t.Fatal("expected FindMethod(\"missing\") to return nil")
	}
}

func TestBuiltinsCatalogIsStable(t *testing.T) {
	if Builtins() != Builtins() {
		t.Fatal("expected Builtins() to return the same catalog instance across calls")
	}
}

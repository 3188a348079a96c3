package values

import (
	"fmt"
	"math"
)

// asNumber widens an Int/Float value to a float64, reporting whether v was
// numeric at all.
func asNumber(v Value) (float64, bool) {
	switch n := v.(type) {
	case Int:
		return float64(n), true
	case Float:
		return float64(n), true
	default:
		return 0, false
	}
}

// bothInt reports whether a and b are both Int, so integer operators can
// stay in integer arithmetic instead of round-tripping through float64.
func bothInt(a, b Value) (Int, Int, bool) {
	ai, aok := a.(Int)
	bi, bok := b.(Int)
	return ai, bi, aok && bok
}

// Add implements `+`: numeric addition, or string concatenation when both
// operands are strings.
func Add(a, b Value) (Value, error) {
	if as, ok := a.(String); ok {
		if bs, ok := b.(String); ok {
			return as + bs, nil
		}
		return nil, fmt.Errorf("can't add %s and %s", a.TypeName(), b.TypeName())
	}
	if ai, bi, ok := bothInt(a, b); ok {
		return ai + bi, nil
	}
	an, aok := asNumber(a)
	bn, bok := asNumber(b)
	if aok && bok {
		return Float(an + bn), nil
	}
	return nil, fmt.Errorf("can't add %s and %s", a.TypeName(), b.TypeName())
}

// Sub implements `-`.
func Sub(a, b Value) (Value, error) {
	if ai, bi, ok := bothInt(a, b); ok {
		return ai - bi, nil
	}
	an, aok := asNumber(a)
	bn, bok := asNumber(b)
	if aok && bok {
		return Float(an - bn), nil
	}
	return nil, fmt.Errorf("can't subtract %s and %s", a.TypeName(), b.TypeName())
}

// Mul implements `*`.
func Mul(a, b Value) (Value, error) {
	if ai, bi, ok := bothInt(a, b); ok {
		return ai * bi, nil
	}
	an, aok := asNumber(a)
	bn, bok := asNumber(b)
	if aok && bok {
		return Float(an * bn), nil
	}
	return nil, fmt.Errorf("can't multiply %s and %s", a.TypeName(), b.TypeName())
}

// Div implements `/`. Division always produces a Float, even for two Ints,
// since sox has no separate truncating-division operator.
func Div(a, b Value) (Value, error) {
	an, aok := asNumber(a)
	bn, bok := asNumber(b)
	if !aok || !bok {
		return nil, fmt.Errorf("can't divide %s and %s", a.TypeName(), b.TypeName())
	}
	if bn == 0 {
		return nil, fmt.Errorf("division by zero")
	}
	return Float(an / bn), nil
}

// Mod implements `%`. Two Ints use Go's integer remainder; anything
// involving a Float uses math.Remainder, the IEEE 754 remainder (spec.md §9
// open question, resolved).
func Mod(a, b Value) (Value, error) {
	if ai, bi, ok := bothInt(a, b); ok {
		if bi == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		return ai % bi, nil
	}
	an, aok := asNumber(a)
	bn, bok := asNumber(b)
	if !aok || !bok {
		return nil, fmt.Errorf("can't take the remainder of %s and %s", a.TypeName(), b.TypeName())
	}
	if bn == 0 {
		return nil, fmt.Errorf("division by zero")
	}
	return Float(math.Remainder(an, bn)), nil
}

// Negate implements unary `-`.
func Negate(v Value) (Value, error) {
	switch n := v.(type) {
	case Int:
		return -n, nil
	case Float:
		return -n, nil
	default:
		return nil, fmt.Errorf("can't negate %s", v.TypeName())
	}
}

// compare returns -1/0/1 for a<b, a==b, a>b, restricted to numeric operands
// (spec.md §4.4 — ordering is only defined between numbers).
func compare(a, b Value) (int, error) {
	an, aok := asNumber(a)
	bn, bok := asNumber(b)
	if !aok || !bok {
		return 0, fmt.Errorf("can't compare %s and %s", a.TypeName(), b.TypeName())
	}
	switch {
	case an < bn:
		return -1, nil
	case an > bn:
		return 1, nil
	default:
		return 0, nil
	}
}

func Less(a, b Value) (Value, error) {
	c, err := compare(a, b)
	if err != nil {
		return nil, err
	}
	return Bool(c < 0), nil
}

func LessEq(a, b Value) (Value, error) {
	c, err := compare(a, b)
	if err != nil {
		return nil, err
	}
	return Bool(c <= 0), nil
}

func Greater(a, b Value) (Value, error) {
	c, err := compare(a, b)
	if err != nil {
		return nil, err
	}
	return Bool(c > 0), nil
}

func GreaterEq(a, b Value) (Value, error) {
	c, err := compare(a, b)
	if err != nil {
		return nil, err
	}
	return Bool(c >= 0), nil
}

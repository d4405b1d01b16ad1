package ir

import (
	"math"
	"testing"
)

func obj(kvs ...any) *Node {
	res := make([]KeyVal, 0, len(kvs)/2)
	for i := 0; i < len(kvs); i += 2 {
		res = append(res, KeyVal{Key: kvs[i].(string), Val: kvs[i+1].(*Node)})
	}
	return FromKeyVals(res)
}

func arr(vs ...*Node) *Node {
	return FromSlice(vs)
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// Type Ranking: Null < Bool < Number < String < Array < Object
		{"Null < Bool", Null(), FromBool(false), -1},
		{"Bool < Number", FromBool(true), FromInt(1), -1},
		{"Number < String", FromInt(1), FromString("a"), -1},
		{"String < Array", FromString("a"), arr(), -1},
		{"Array < Object", arr(), obj(), -1},

		{"false < true", FromBool(false), FromBool(true), -1},
		{"true > false", FromBool(true), FromBool(false), 1},
		{"true == true", FromBool(true), FromBool(true), 0},

		{"Int == Float", FromInt(1), FromNumber(1.0), 0},
		{"1 < 2", FromInt(1), FromNumber(2), -1},
		{"NaN < 0", FromNumber(math.NaN()), FromNumber(0), -1},

		{"String < String", FromString("a"), FromString("b"), -1},

		{"Empty Array == Empty Array", arr(), arr(), 0},
		{"Short Array < Long Array", arr(FromInt(1)), arr(FromInt(1), FromInt(2)), -1},
		{"Array Element Comparison", arr(FromInt(1)), arr(FromInt(2)), -1},

		{"Empty Object == Empty Object", obj(), obj(), 0},
		{"Short Object < Long Object",
			obj("a", FromInt(1)),
			obj("a", FromInt(1), "b", FromInt(2)),
			-1},
		{"Object Key Comparison",
			obj("a", FromInt(1)),
			obj("b", FromInt(1)),
			-1},
		{"Object Value Comparison",
			obj("a", FromInt(1)),
			obj("a", FromInt(2)),
			-1},
		{"Object Order Independent",
			obj("a", FromInt(1), "b", FromInt(2)),
			obj("b", FromInt(2), "a", FromInt(1)),
			0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
		eq   bool
	}{
		{"null", Null(), Null(), true},
		{"zero node is null", &Node{}, Null(), true},
		{"bool", FromBool(true), FromBool(true), true},
		{"bool differs", FromBool(true), FromBool(false), false},
		{"number", FromInt(42), FromNumber(42), true},
		{"negative zero", FromNumber(math.Copysign(0, -1)), FromNumber(0), true},
		{"nan", FromNumber(math.NaN()), FromNumber(math.NaN()), false},
		{"string", FromString("x"), FromString("x"), true},
		{"string vs number", FromString("1"), FromInt(1), false},
		{"null vs false", Null(), FromBool(false), false},
		{"array order matters", arr(FromInt(1), FromInt(2)), arr(FromInt(2), FromInt(1)), false},
		{"array length", arr(FromInt(1)), arr(FromInt(1), FromInt(1)), false},
		{"object order", obj("a", FromInt(1), "b", Null()), obj("b", Null(), "a", FromInt(1)), true},
		{"object missing key", obj("a", FromInt(1)), obj("b", FromInt(1)), false},
		{"object extra key", obj("a", FromInt(1)), obj("a", FromInt(1), "b", FromInt(1)), false},
		{"nested",
			arr(obj("pitch", FromNumber(440))),
			arr(obj("pitch", FromInt(440))),
			true},
		{"nil vs null", nil, Null(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.eq {
				t.Errorf("Equal(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.eq)
			}
			if got := Equal(tt.b, tt.a); got != tt.eq {
				t.Errorf("Equal not symmetric for %s, %s", tt.a, tt.b)
			}
			if tt.eq && tt.a.Hash() != tt.b.Hash() {
				t.Errorf("equal nodes %s and %s hash differently", tt.a, tt.b)
			}
		})
	}
}

func TestEqualReflexive(t *testing.T) {
	n := obj("a", arr(FromInt(1), FromString("x"), Null()), "b", obj("c", FromBool(true)))
	if !n.Equal(n) {
		t.Error("node not equal to itself")
	}
	if !Equal(n, n.Clone()) {
		t.Error("node not equal to its clone")
	}
}

func TestEqualNaNIsNotReflexive(t *testing.T) {
	for _, n := range []*Node{
		FromNumber(math.NaN()),
		arr(FromInt(1), FromNumber(math.NaN())),
		obj("a", FromNumber(math.NaN())),
	} {
		if Equal(n, n) {
			t.Errorf("%s equal to itself", n)
		}
		if Equal(n, n.Clone()) {
			t.Errorf("%s equal to its clone", n)
		}
		if Compare(n, n) != 0 {
			t.Errorf("Compare(%s, itself) != 0", n)
		}
	}
	if !Equal(nil, nil) {
		t.Error("nil not equal to nil")
	}
}

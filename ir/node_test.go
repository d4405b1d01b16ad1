package ir

import (
	"encoding/json"
	"errors"
	"math"
	"slices"
	"testing"
)

func TestFromKeyValsLastWins(t *testing.T) {
	n := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromInt(1)},
		{Key: "a", Val: FromInt(2)},
	})
	if n.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", n.Len())
	}
	v, ok := n.Get("a")
	if !ok || v.Number() != 2 {
		t.Errorf("expected a=2, got %s", n)
	}
}

func TestObjectBuilder(t *testing.T) {
	b := NewObjectBuilder(2)
	b.Set("x", FromInt(1)).Set("y", nil).Set("x", FromString("z"))
	if b.Len() != 2 {
		t.Fatalf("expected 2 fields, got %d", b.Len())
	}
	n := b.Node()
	want := FromMap(map[string]*Node{"x": FromString("z"), "y": Null()})
	if !Equal(n, want) {
		t.Errorf("got %s want %s", n, want)
	}
	b.Set("w", FromInt(0))
	if n.Len() != 2 {
		t.Errorf("sealed node changed after builder reuse: %s", n)
	}
	if empty := NewObjectBuilder(0).Node(); empty.Type() != ObjectType || empty.Len() != 0 {
		t.Errorf("expected empty object, got %s", empty)
	}
}

func TestNilChildrenAreNull(t *testing.T) {
	n := FromSlice([]*Node{nil, FromInt(1)})
	if n.Index(0).Type() != NullType {
		t.Errorf("expected null element, got %s", n.Index(0).Type())
	}
	if n.Index(2) != nil || n.Index(-1) != nil {
		t.Error("expected nil for out of range index")
	}
}

func TestAccessorsOnWrongType(t *testing.T) {
	s := FromString("s")
	if s.Bool() || s.Number() != 0 || s.Len() != 0 || s.Keys() != nil || s.Elements() != nil {
		t.Error("accessors on string node should return zero values")
	}
	if _, ok := s.Get("s"); ok {
		t.Error("Get on string should fail")
	}
	if FromInt(3).Str() != "" {
		t.Error("Str on number should be empty")
	}
}

func TestFieldsSorted(t *testing.T) {
	n := FromMap(map[string]*Node{"b": Null(), "c": Null(), "a": Null()})
	var keys []string
	for k := range n.Fields() {
		keys = append(keys, k)
	}
	if !slices.Equal(keys, []string{"a", "b", "c"}) {
		t.Errorf("got keys %v", keys)
	}
}

func TestCloneIsDeep(t *testing.T) {
	n := arr(obj("a", arr(FromInt(1))))
	c := n.Clone()
	if !Equal(n, c) {
		t.Fatalf("clone %s differs from %s", c, n)
	}
	if c.Index(0) == n.Index(0) {
		t.Error("clone shares children")
	}
	ca, _ := c.Index(0).Get("a")
	na, _ := n.Index(0).Get("a")
	if ca == na {
		t.Error("clone shares grandchildren")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		n    *Node
		want string
	}{
		{Null(), "null"},
		{FromBool(false), "false"},
		{FromInt(42), "42"},
		{FromNumber(-0.5), "-0.5"},
		{FromNumber(1e21), "1e+21"},
		{FromNumber(1e-7), "1e-07"},
		{FromNumber(math.Inf(-1)), "-Inf"},
		{FromString("a\"b\n"), `"a\"b\n"`},
		{arr(), "[]"},
		{obj(), "{}"},
		{arr(FromInt(1), Null(), FromString("x")), `[1, null, "x"]`},
		{obj("b", FromInt(2), "a", arr(FromBool(true))), `{"a": [true], "b": 2}`},
	}
	for _, tt := range tests {
		if got := tt.n.String(); got != tt.want {
			t.Errorf("got %s want %s", got, tt.want)
		}
	}
}

func TestVisit(t *testing.T) {
	n := obj("b", arr(FromInt(1)), "a", FromString("x"))
	var paths []string
	err := n.Visit(func(p *Path, y *Node, isPost bool) (bool, error) {
		if !isPost {
			paths = append(paths, p.String())
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"$", "$.a", "$.b", "$.b[0]"}
	if !slices.Equal(paths, want) {
		t.Errorf("got %v want %v", paths, want)
	}
}

func TestLookup(t *testing.T) {
	n := obj("a b", arr(FromInt(1), obj("c", FromString("x"))))
	p := (*Path)(nil).Field("a b").Index(1).Field("c")
	if p.String() != "$['a b'][1].c" {
		t.Errorf("unexpected path string %s", p)
	}
	if p.Depth() != 3 {
		t.Errorf("unexpected depth %d", p.Depth())
	}
	v, err := n.Lookup(p)
	if err != nil {
		t.Fatal(err)
	}
	if v.Str() != "x" {
		t.Errorf("got %s", v)
	}
	if _, err := n.Lookup((*Path)(nil).Field("a b").Index(7)); !errors.Is(err, ErrIndex) {
		t.Errorf("expected ErrIndex, got %v", err)
	}
	if _, err := n.Lookup((*Path)(nil).Index(0)); !errors.Is(err, ErrType) {
		t.Errorf("expected ErrType, got %v", err)
	}
}

func TestJSON(t *testing.T) {
	n := obj("a", arr(FromInt(1), FromNumber(2.5), Null()), "b", FromBool(true), "c", FromString("s"))
	d, err := json.Marshal(n)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != `{"a":[1,2.5,null],"b":true,"c":"s"}` {
		t.Errorf("unexpected json %s", d)
	}
	back := &Node{}
	if err := json.Unmarshal(d, back); err != nil {
		t.Fatal(err)
	}
	if !Equal(n, back) {
		t.Errorf("got %s want %s", back, n)
	}
	if err := back.UnmarshalJSON([]byte("{")); !errors.Is(err, ErrJSON) {
		t.Errorf("expected ErrJSON, got %v", err)
	}
}

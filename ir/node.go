package ir

import (
	"iter"
	"maps"
	"slices"
)

// Node is one document value. The zero Node is null.
type Node struct {
	typ    Type
	b      bool
	num    float64
	str    string
	values []*Node
	fields map[string]*Node
}

func Null() *Node {
	return &Node{typ: NullType}
}

func FromBool(v bool) *Node {
	return &Node{typ: BoolType, b: v}
}

func FromNumber(f float64) *Node {
	return &Node{typ: NumberType, num: f}
}

// FromInt converts v to float64; magnitudes beyond 2^53 are rounded.
func FromInt(v int64) *Node {
	return FromNumber(float64(v))
}

func FromString(v string) *Node {
	return &Node{typ: StringType, str: v}
}

// FromSlice creates an array node owning the given elements. The slice
// itself is copied; nil elements are stored as null.
func FromSlice(vs []*Node) *Node {
	res := make([]*Node, len(vs))
	for i, v := range vs {
		res[i] = orNull(v)
	}
	return &Node{typ: ArrayType, values: res}
}

// FromMap creates an object node owning the values of m. The map itself
// is copied; nil values are stored as null.
func FromMap(m map[string]*Node) *Node {
	res := make(map[string]*Node, len(m))
	for k, v := range m {
		res[k] = orNull(v)
	}
	return &Node{typ: ObjectType, fields: res}
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals creates an object node from pairs in one step. When a key
// occurs more than once the last pair wins.
func FromKeyVals(kvs []KeyVal) *Node {
	res := make(map[string]*Node, len(kvs))
	for _, kv := range kvs {
		res[kv.Key] = orNull(kv.Val)
	}
	return &Node{typ: ObjectType, fields: res}
}

// ObjectBuilder assembles an object field by field.
type ObjectBuilder struct {
	fields map[string]*Node
}

func NewObjectBuilder(sizeHint int) *ObjectBuilder {
	return &ObjectBuilder{fields: make(map[string]*Node, sizeHint)}
}

// Set inserts or replaces the value for key.
func (b *ObjectBuilder) Set(key string, v *Node) *ObjectBuilder {
	if b.fields == nil {
		b.fields = map[string]*Node{}
	}
	b.fields[key] = orNull(v)
	return b
}

func (b *ObjectBuilder) Len() int {
	return len(b.fields)
}

// Node seals the fields set so far into an object node. The builder is
// reset and may be reused.
func (b *ObjectBuilder) Node() *Node {
	fields := b.fields
	if fields == nil {
		fields = map[string]*Node{}
	}
	b.fields = nil
	return &Node{typ: ObjectType, fields: fields}
}

func orNull(v *Node) *Node {
	if v == nil {
		return Null()
	}
	return v
}

func (y *Node) Type() Type {
	if y == nil {
		return NullType
	}
	return y.typ
}

// Bool returns the payload of a bool node and false otherwise.
func (y *Node) Bool() bool {
	return y.Type() == BoolType && y.b
}

// Number returns the payload of a number node and 0 otherwise.
func (y *Node) Number() float64 {
	if y.Type() != NumberType {
		return 0
	}
	return y.num
}

// Str returns the payload of a string node and "" otherwise.
func (y *Node) Str() string {
	if y.Type() != StringType {
		return ""
	}
	return y.str
}

// Len returns the number of elements of an array or entries of an object.
func (y *Node) Len() int {
	switch y.Type() {
	case ArrayType:
		return len(y.values)
	case ObjectType:
		return len(y.fields)
	}
	return 0
}

// Index returns the i'th element of an array node, or nil.
func (y *Node) Index(i int) *Node {
	if y.Type() != ArrayType || i < 0 || i >= len(y.values) {
		return nil
	}
	return y.values[i]
}

func (y *Node) Elements() []*Node {
	if y.Type() != ArrayType {
		return nil
	}
	return slices.Clone(y.values)
}

func (y *Node) Get(key string) (*Node, bool) {
	if y.Type() != ObjectType {
		return nil, false
	}
	v, ok := y.fields[key]
	return v, ok
}

// Keys returns the keys of an object node in sorted order.
func (y *Node) Keys() []string {
	if y.Type() != ObjectType {
		return nil
	}
	return slices.Sorted(maps.Keys(y.fields))
}

// Fields iterates the entries of an object node in key order.
func (y *Node) Fields() iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		for _, k := range y.Keys() {
			if !yield(k, y.fields[k]) {
				return
			}
		}
	}
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{
		typ: y.typ,
		b:   y.b,
		num: y.num,
		str: y.str,
	}
	switch y.typ {
	case ArrayType:
		res.values = make([]*Node, len(y.values))
		for i, v := range y.values {
			res.values[i] = v.Clone()
		}
	case ObjectType:
		res.fields = make(map[string]*Node, len(y.fields))
		for k, v := range y.fields {
			res.fields[k] = v.Clone()
		}
	}
	return res
}

// Visit calls f on y before (isPost=false) and after (isPost=true) its
// children. Children are visited only if the pre call returns true.
// Object entries are visited in key order.
func (y *Node) Visit(f func(p *Path, y *Node, isPost bool) (bool, error)) error {
	return y.visit(nil, f)
}

func (y *Node) visit(p *Path, f func(p *Path, y *Node, isPost bool) (bool, error)) error {
	dive, err := f(p, y, false)
	if err != nil {
		return err
	}
	if dive {
		switch y.Type() {
		case ArrayType:
			for i, v := range y.values {
				if err := v.visit(p.Index(i), f); err != nil {
					return err
				}
			}
		case ObjectType:
			for k, v := range y.Fields() {
				if err := v.visit(p.Field(k), f); err != nil {
					return err
				}
			}
		}
	}
	if _, err := f(p, y, true); err != nil {
		return err
	}
	return nil
}

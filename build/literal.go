package build

import "github.com/signadot/jsonlit/ir"

type nullLit struct{}

func (nullLit) String() string { return "null" }

// Null is the null literal.
var Null = nullLit{}

// Arr is an array literal.
type Arr []any

// Obj is an object literal: an ordered list of entries which may repeat
// keys.
type Obj []Field

// Field is one entry of an Obj. Key is rendered with coerce.Key.
type Field struct {
	Key   any
	Value any
}

func KV(k, v any) Field {
	return Field{Key: k, Value: v}
}

// Literal returns a literal which builds to a node equal to n. Objects
// are rendered with their keys in sorted order.
func Literal(n *ir.Node) any {
	switch n.Type() {
	case ir.NullType:
		return Null
	case ir.BoolType:
		return n.Bool()
	case ir.NumberType:
		return n.Number()
	case ir.StringType:
		return n.Str()
	case ir.ArrayType:
		res := make(Arr, n.Len())
		for i, v := range n.Elements() {
			res[i] = Literal(v)
		}
		return res
	case ir.ObjectType:
		res := make(Obj, 0, n.Len())
		for k, v := range n.Fields() {
			res = append(res, KV(k, Literal(v)))
		}
		return res
	}
	return nil
}

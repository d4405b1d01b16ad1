package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ToAny converts y to the plain Go values produced by encoding/json:
// nil, bool, float64, string, []any and map[string]any.
func ToAny(y *Node) any {
	switch y.Type() {
	case BoolType:
		return y.b
	case NumberType:
		return y.num
	case StringType:
		return y.str
	case ArrayType:
		res := make([]any, len(y.values))
		for i, v := range y.values {
			res[i] = ToAny(v)
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(y.fields))
		for k, v := range y.fields {
			res[k] = ToAny(v)
		}
		return res
	}
	return nil
}

// FromJSONAny converts the output of encoding/json decoding into a node.
// json.Number is accepted for decoders configured with UseNumber.
func FromJSONAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(x), nil
	case float64:
		return FromNumber(x), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: number %q: %w", ErrJSON, x, err)
		}
		return FromNumber(f), nil
	case string:
		return FromString(x), nil
	case []any:
		res := make([]*Node, len(x))
		for i, elt := range x {
			n, err := FromJSONAny(elt)
			if err != nil {
				return nil, err
			}
			res[i] = n
		}
		return &Node{typ: ArrayType, values: res}, nil
	case map[string]any:
		res := make(map[string]*Node, len(x))
		for k, elt := range x {
			n, err := FromJSONAny(elt)
			if err != nil {
				return nil, err
			}
			res[k] = n
		}
		return &Node{typ: ObjectType, fields: res}, nil
	}
	return nil, fmt.Errorf("%w: unexpected %T", ErrJSON, v)
}

func (y *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(ToAny(y))
}

func (y *Node) UnmarshalJSON(d []byte) error {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("%w: %w", ErrJSON, err)
	}
	n, err := FromJSONAny(v)
	if err != nil {
		return err
	}
	*y = *n
	return nil
}

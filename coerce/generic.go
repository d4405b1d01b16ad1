package coerce

import "github.com/signadot/jsonlit/ir"

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Float interface {
	~float32 | ~float64
}

// Num converts any integer or float to a Number node.
func Num[T Integer | Float](v T) *ir.Node {
	return ir.FromNumber(float64(v))
}

func Str[T ~string](v T) *ir.Node {
	return ir.FromString(string(v))
}

func Bool[T ~bool](v T) *ir.Node {
	return ir.FromBool(bool(v))
}

// BoolSource is implemented by types which coerce to a Bool node.
type BoolSource interface {
	DocBool() bool
}

// NumberSource is implemented by types which coerce to a Number node.
type NumberSource interface {
	DocNumber() float64
}

// StringSource is implemented by types which coerce to a String node.
type StringSource interface {
	DocString() string
}

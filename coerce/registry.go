package coerce

import (
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"sync"

	"github.com/signadot/jsonlit/ir"
)

// Registry maps source types to their coercions. The zero Registry is
// not usable; use NewRegistry or Default.
//
// A Registry is safe for concurrent use.
type Registry struct {
	mu   sync.RWMutex
	leaf map[reflect.Type]func(any) (*ir.Node, error)
	keys map[reflect.Type]func(any) (string, error)
}

// NewRegistry returns a registry containing the builtin coercions.
func NewRegistry() *Registry {
	r := &Registry{
		leaf: map[reflect.Type]func(any) (*ir.Node, error){},
		keys: map[reflect.Type]func(any) (string, error){},
	}
	registerBuiltins(r)
	return r
}

var defaultRegistry = sync.OnceValue(NewRegistry)

// Default returns the package registry used by Coerce and Key.
func Default() *Registry {
	return defaultRegistry()
}

// Register installs f as the coercion for values of type T, replacing
// any previous coercion for T.
//
// Lookup is by the dynamic type of a value, so T must be a concrete type;
// Register panics if T is an interface. Types implementing one of the
// capability interfaces need no registration. The builder treats slice,
// array and map kinds as containers before consulting a registry, so a
// coercion registered for such a type is only reached through Coerce.
func Register[T any](r *Registry, f func(T) (*ir.Node, error)) {
	t := concrete[T]("Register")
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leaf[t] = func(v any) (*ir.Node, error) {
		return f(v.(T))
	}
}

// RegisterKey installs f as the key rendering for values of type T. Like
// Register, it panics if T is an interface.
func RegisterKey[T any](r *Registry, f func(T) (string, error)) {
	t := concrete[T]("RegisterKey")
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys[t] = func(v any) (string, error) {
		return f(v.(T))
	}
}

func concrete[T any](fn string) reflect.Type {
	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Interface {
		panic(fmt.Sprintf("coerce.%s: %s is an interface type", fn, t))
	}
	return t
}

func lift[T any](f func(T) *ir.Node) func(T) (*ir.Node, error) {
	return func(v T) (*ir.Node, error) {
		return f(v), nil
	}
}

func registerBuiltins(r *Registry) {
	Register(r, lift(Bool[bool]))

	Register(r, lift(Num[int]))
	Register(r, lift(Num[int8]))
	Register(r, lift(Num[int16]))
	Register(r, lift(Num[int32]))
	Register(r, lift(Num[int64]))
	Register(r, lift(Num[uint]))
	Register(r, lift(Num[uint8]))
	Register(r, lift(Num[uint16]))
	Register(r, lift(Num[uint32]))
	Register(r, lift(Num[uint64]))
	Register(r, lift(Num[uintptr]))
	Register(r, lift(Num[float32]))
	Register(r, lift(Num[float64]))
	Register(r, lift(bigInt))
	Register(r, lift(bigFloat))
	Register(r, jsonNumber)

	Register(r, lift(Str[string]))
}

func bigInt(v *big.Int) *ir.Node {
	if v == nil {
		return ir.Null()
	}
	f, _ := new(big.Float).SetInt(v).Float64()
	return ir.FromNumber(f)
}

func bigFloat(v *big.Float) *ir.Node {
	if v == nil {
		return ir.Null()
	}
	f, _ := v.Float64()
	return ir.FromNumber(f)
}

func jsonNumber(v json.Number) (*ir.Node, error) {
	f, err := v.Float64()
	if err != nil {
		return nil, fmt.Errorf("invalid json number %q: %w", v, err)
	}
	return ir.FromNumber(f), nil
}

// Coerce lifts v into a leaf node using the default registry.
func Coerce(v any) (*ir.Node, error) {
	return Default().Coerce(v)
}

// Key renders v as an object key using the default registry.
func Key(v any) (string, error) {
	return Default().Key(v)
}

// Coerce lifts v into a leaf node. Lookup order is: *ir.Node passthrough,
// registered exact type, capability interface, underlying kind.
func (r *Registry) Coerce(v any) (*ir.Node, error) {
	if n, ok := v.(*ir.Node); ok {
		if n == nil {
			return ir.Null(), nil
		}
		return n, nil
	}
	t := reflect.TypeOf(v)
	r.mu.RLock()
	f := r.leaf[t]
	r.mu.RUnlock()
	if f != nil {
		return f(v)
	}
	switch x := v.(type) {
	case BoolSource:
		return ir.FromBool(x.DocBool()), nil
	case NumberSource:
		return ir.FromNumber(x.DocNumber()), nil
	case StringSource:
		return ir.FromString(x.DocString()), nil
	}
	if t != nil {
		rv := reflect.ValueOf(v)
		switch t.Kind() {
		case reflect.Bool:
			return ir.FromBool(rv.Bool()), nil
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return ir.FromNumber(float64(rv.Int())), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return ir.FromNumber(float64(rv.Uint())), nil
		case reflect.Float32, reflect.Float64:
			return ir.FromNumber(rv.Float()), nil
		case reflect.String:
			return ir.FromString(rv.String()), nil
		}
	}
	return nil, &UnsupportedError{Type: t}
}

// Key renders v as an object key. Strings and string nodes are used as
// is; registered key functions, fmt.Stringer, and bool, integer and float
// kinds are formatted.
func (r *Registry) Key(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case *ir.Node:
		if x.Type() == ir.StringType {
			return x.Str(), nil
		}
	}
	t := reflect.TypeOf(v)
	r.mu.RLock()
	f := r.keys[t]
	r.mu.RUnlock()
	if f != nil {
		return f(v)
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String(), nil
	}
	if t != nil {
		rv := reflect.ValueOf(v)
		switch t.Kind() {
		case reflect.String:
			return rv.String(), nil
		case reflect.Bool:
			return strconv.FormatBool(rv.Bool()), nil
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return strconv.FormatInt(rv.Int(), 10), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return strconv.FormatUint(rv.Uint(), 10), nil
		case reflect.Float32, reflect.Float64:
			return ir.FormatNumber(rv.Float()), nil
		}
	}
	return "", &UnsupportedError{Type: t, Key: true}
}

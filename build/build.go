package build

import (
	"fmt"
	"maps"
	"reflect"
	"slices"

	"github.com/signadot/jsonlit/coerce"
	"github.com/signadot/jsonlit/debug"
	"github.com/signadot/jsonlit/ir"
)

// Builder builds literals with a fixed registry and object assembly
// path. A Builder has no mutable state and may be shared.
type Builder struct {
	reg         *coerce.Registry
	incremental bool
}

func New(opts ...BuildOption) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	if b.reg == nil {
		b.reg = coerce.Default()
	}
	return b
}

var (
	collecting  = New()
	incremental = New(Incremental())
)

// Build builds lit, sealing each object from its collected pairs.
func Build(lit any) (*ir.Node, error) {
	return collecting.Build(lit)
}

// BuildIncremental builds lit, inserting each object field one at a
// time. The result is equal to that of Build for every input.
func BuildIncremental(lit any) (*ir.Node, error) {
	return incremental.Build(lit)
}

// MustBuild is like Build but panics on error.
func MustBuild(lit any) *ir.Node {
	n, err := Build(lit)
	if err != nil {
		panic(err)
	}
	return n
}

func (b *Builder) Build(lit any) (*ir.Node, error) {
	n, err := b.build(nil, lit)
	if err != nil {
		if debug.Build() {
			debug.Logf("build %T: %v\n", lit, err)
		}
		return nil, err
	}
	if debug.Build() {
		debug.Logf("build %T -> %s\n", lit, n)
	}
	return n, nil
}

func (b *Builder) build(p *ir.Path, lit any) (*ir.Node, error) {
	switch x := lit.(type) {
	case nil, nullLit:
		return ir.Null(), nil
	case *ir.Node:
		// built trees never share children
		if x == nil {
			return ir.Null(), nil
		}
		return x.Clone(), nil
	case Arr:
		return b.array(p, len(x), func(i int) any { return x[i] })
	case []any:
		if x == nil {
			return ir.Null(), nil
		}
		return b.array(p, len(x), func(i int) any { return x[i] })
	case Obj:
		return b.object(p, x)
	case Field, *Field:
		return nil, fmt.Errorf("%w at %s: field %v outside of an object", ErrShape, p, lit)
	case map[string]any:
		if x == nil {
			return ir.Null(), nil
		}
		keys := slices.Sorted(maps.Keys(x))
		fields := make(Obj, len(keys))
		for i, k := range keys {
			fields[i] = KV(k, x[k])
		}
		return b.object(p, fields)
	}

	rv := reflect.ValueOf(lit)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			break
		}
		if rv.IsNil() {
			return ir.Null(), nil
		}
		return b.array(p, rv.Len(), func(i int) any { return rv.Index(i).Interface() })
	case reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			break
		}
		return b.array(p, rv.Len(), func(i int) any { return rv.Index(i).Interface() })
	case reflect.Map:
		if rv.IsNil() {
			return ir.Null(), nil
		}
		fields := make(Obj, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			fields = append(fields, KV(iter.Key().Interface(), iter.Value().Interface()))
		}
		return b.object(p, fields)
	}
	n, err := b.reg.Coerce(lit)
	if err != nil {
		return nil, fmt.Errorf("at %s: %w", p, err)
	}
	if debug.Coerce() {
		debug.Logf("coerce %s %T -> %s\n", p, lit, n)
	}
	return n, nil
}

func (b *Builder) array(p *ir.Path, n int, at func(int) any) (*ir.Node, error) {
	res := make([]*ir.Node, n)
	for i := range n {
		v, err := b.build(p.Index(i), at(i))
		if err != nil {
			return nil, err
		}
		res[i] = v
	}
	return ir.FromSlice(res), nil
}

func (b *Builder) object(p *ir.Path, fields Obj) (*ir.Node, error) {
	if b.incremental {
		ob := ir.NewObjectBuilder(len(fields))
		for _, f := range fields {
			k, v, err := b.field(p, f)
			if err != nil {
				return nil, err
			}
			ob.Set(k, v)
		}
		return ob.Node(), nil
	}
	kvs := make([]ir.KeyVal, 0, len(fields))
	for _, f := range fields {
		k, v, err := b.field(p, f)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: k, Val: v})
	}
	return ir.FromKeyVals(kvs), nil
}

func (b *Builder) field(p *ir.Path, f Field) (string, *ir.Node, error) {
	k, err := b.reg.Key(f.Key)
	if err != nil {
		return "", nil, fmt.Errorf("key at %s: %w", p, err)
	}
	v, err := b.build(p.Field(k), f.Value)
	if err != nil {
		return "", nil, err
	}
	return k, v, nil
}

package parse

import (
	"github.com/signadot/jsonlit/build"
	"github.com/signadot/jsonlit/coerce"
	"github.com/signadot/jsonlit/eval"
)

type parseOpts struct {
	env         eval.Env
	reg         *coerce.Registry
	incremental bool
	maxDepth    int
}

func newOpts(opts []ParseOption) *parseOpts {
	res := &parseOpts{}
	for _, f := range opts {
		f(res)
	}
	return res
}

func (o *parseOpts) buildOpts() []build.BuildOption {
	res := []build.BuildOption{}
	if o.reg != nil {
		res = append(res, build.WithRegistry(o.reg))
	}
	if o.incremental {
		res = append(res, build.Incremental())
	}
	return res
}

type ParseOption func(*parseOpts)

// WithEnv binds the variables visible to leaf expressions.
func WithEnv(env eval.Env) ParseOption {
	return func(o *parseOpts) { o.env = env }
}

func WithRegistry(r *coerce.Registry) ParseOption {
	return func(o *parseOpts) { o.reg = r }
}

// Incremental builds objects with build.Incremental.
func Incremental() ParseOption {
	return func(o *parseOpts) { o.incremental = true }
}

// MaxDepth bounds the nesting of arrays and objects. n <= 0 means no
// bound.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

package build

import "github.com/signadot/jsonlit/coerce"

type BuildOption func(*Builder)

// WithRegistry sets the registry used to lift leaves and render keys.
func WithRegistry(r *coerce.Registry) BuildOption {
	return func(b *Builder) { b.reg = r }
}

// Incremental assembles objects field by field with an ir.ObjectBuilder
// rather than collecting pairs first.
func Incremental() BuildOption {
	return func(b *Builder) { b.incremental = true }
}

// Package build constructs document values from nested Go literals.
//
// A literal is one of four productions, recognised in this order:
//
//  1. null: [Null] or a nil interface
//  2. array: [Arr], []any, or any other slice or array except []byte
//  3. object: [Obj], map[string]any, or any other map
//  4. leaf: any other value, lifted by a [coerce.Registry]
//
// For example
//
//	n, err := build.Build(build.Obj{
//		build.KV("name", "box"),
//		build.KV("size", build.Arr{4, 4.5}),
//		build.KV("tag", build.Null),
//	})
//
// builds {"name": "box", "size": [4, 4.5], "tag": null}.
//
// Object keys go through [coerce.Key]. When a key occurs more than once
// in an [Obj] the last entry wins.
//
// Building is all or nothing: an unsupported leaf or a malformed literal
// returns an error naming the path of the offending position and no
// tree.
package build

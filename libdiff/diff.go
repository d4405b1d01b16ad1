package libdiff

import (
	"slices"

	"github.com/signadot/jsonlit/debug"
	"github.com/signadot/jsonlit/ir"
)

// Diff returns the changes turning from into to. It returns nil when
// ir.Equal(from, to).
func Diff(from, to *ir.Node) []Change {
	var res []Change
	diff(nil, from, to, &res)
	if debug.Diff() {
		debug.Logf("diff %s %s -> %d changes\n", from, to, len(res))
	}
	return res
}

func diff(p *ir.Path, from, to *ir.Node, res *[]Change) {
	if from.Type() != to.Type() {
		*res = append(*res, Change{Op: Replace, Path: p, From: from, To: to})
		return
	}
	switch from.Type() {
	case ir.ObjectType:
		diffObject(p, from, to, res)
	case ir.ArrayType:
		diffArray(p, from, to, res)
	case ir.StringType:
		if from.Str() != to.Str() {
			*res = append(*res, Change{
				Op:    Replace,
				Path:  p,
				From:  from,
				To:    to,
				Edits: DiffString(from.Str(), to.Str()),
			})
		}
	default:
		if !ir.Equal(from, to) {
			*res = append(*res, Change{Op: Replace, Path: p, From: from, To: to})
		}
	}
}

func diffObject(p *ir.Path, from, to *ir.Node, res *[]Change) {
	keys := append(from.Keys(), to.Keys()...)
	slices.Sort(keys)
	for _, k := range slices.Compact(keys) {
		fv, fok := from.Get(k)
		tv, tok := to.Get(k)
		switch {
		case !tok:
			*res = append(*res, Change{Op: Delete, Path: p.Field(k), From: fv})
		case !fok:
			*res = append(*res, Change{Op: Insert, Path: p.Field(k), To: tv})
		default:
			diff(p.Field(k), fv, tv, res)
		}
	}
}

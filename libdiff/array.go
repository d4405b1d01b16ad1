package libdiff

import (
	"github.com/signadot/jsonlit/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// diffArray aligns the elements of from and to by
//
//  1. summarising each element: scalars by their literal form,
//     containers by their type alone
//  2. diffing the sequences of summaries
//  3. recursing into aligned elements, so that containers of the same
//     type are compared field by field
//
// A delete directly followed by an insert becomes a replace.
func diffArray(p *ir.Path, from, to *ir.Node, res *[]Change) {
	m := map[string]rune{}
	fromRunes := summaries(m, from)
	toRunes := summaries(m, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	fromVals, toVals := from.Elements(), to.Elements()
	fi, ti := 0, 0
	var pending []Change
	flush := func() {
		*res = append(*res, pending...)
		pending = pending[:0]
	}
	for i := range diffs {
		n := len([]rune(diffs[i].Text))
		switch diffs[i].Type {
		case diffpatch.DiffDelete:
			flush()
			for range n {
				pending = append(pending, Change{Op: Delete, Path: p.Index(fi), From: fromVals[fi]})
				fi++
			}
		case diffpatch.DiffInsert:
			for range n {
				if len(pending) != 0 {
					// pair with the oldest unmatched delete
					del := pending[0]
					pending = pending[1:]
					diff(del.Path, del.From, toVals[ti], res)
				} else {
					*res = append(*res, Change{Op: Insert, Path: p.Index(ti), To: toVals[ti]})
				}
				ti++
			}
			flush()
		case diffpatch.DiffEqual:
			flush()
			for range n {
				diff(p.Index(fi), fromVals[fi], toVals[ti], res)
				fi++
				ti++
			}
		}
	}
	flush()
}

func summaries(m map[string]rune, node *ir.Node) []rune {
	vals := node.Elements()
	rs := make([]rune, len(vals))
	for i, v := range vals {
		sum := summary(v)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summary(node *ir.Node) string {
	switch node.Type() {
	case ir.ObjectType, ir.ArrayType, ir.NullType:
		return node.Type().String()
	}
	return node.Type().String() + "-" + node.String()
}

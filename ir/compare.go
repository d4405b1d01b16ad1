package ir

import (
	"cmp"
	"slices"
	"strings"
)

// Equal reports whether a and b are structurally equal. Objects are
// compared as mappings, independent of order. Numbers compare with ==,
// so a node holding NaN is not equal to anything, itself included. A nil
// node equals only another nil node.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.typ != b.typ {
		return false
	}
	switch a.typ {
	case NullType:
		return true
	case BoolType:
		return a.b == b.b
	case NumberType:
		return a.num == b.num
	case StringType:
		return a.str == b.str
	case ArrayType:
		return slices.EqualFunc(a.values, b.values, Equal)
	case ObjectType:
		if len(a.fields) != len(b.fields) {
			return false
		}
		for k, av := range a.fields {
			bv, ok := b.fields[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	}
	return false
}

func (y *Node) Equal(o *Node) bool {
	return Equal(y, o)
}

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Types are ordered Null < Bool < Number < String < Array < Object.
// Objects compare entry by entry in key order. Unlike Equal, NaN compares
// equal to itself and less than any other number.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.typ)
	rankB := rank(b.typ)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.typ {
	case NumberType:
		return cmp.Compare(a.num, b.num)
	case StringType:
		return strings.Compare(a.str, b.str)
	case BoolType:
		if a.b == b.b {
			return 0
		}
		if !a.b {
			return -1
		}
		return 1
	case ArrayType:
		return slices.CompareFunc(a.values, b.values, Compare)
	case ObjectType:
		return compareObjects(a, b)
	}
	return 0
}

// rank returns the sorting rank of a type.
func rank(t Type) int {
	switch t {
	case NullType:
		return 1
	case BoolType:
		return 2
	case NumberType:
		return 3
	case StringType:
		return 4
	case ArrayType:
		return 5
	case ObjectType:
		return 6
	}
	return 100
}

func compareObjects(a, b *Node) int {
	keysA := a.Keys()
	keysB := b.Keys()
	minLen := min(len(keysA), len(keysB))

	for i := 0; i < minLen; i++ {
		if c := strings.Compare(keysA[i], keysB[i]); c != 0 {
			return c
		}
		if c := Compare(a.fields[keysA[i]], b.fields[keysB[i]]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(keysA), len(keysB))
}

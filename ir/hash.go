package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the node, consistent with Equal: equal
// nodes hash equally within one process. Object entries are combined
// independently of order.
// It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(hashSeed)
	h.WriteByte(byte(n.typ))

	var b [8]byte
	switch n.typ {
	case NullType:
	case BoolType:
		if n.b {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case NumberType:
		f := n.num
		if f == 0 {
			// -0 == 0
			f = 0
		}
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(f))
		h.Write(b[:])
	case StringType:
		h.WriteString(n.str)
	case ArrayType:
		for _, v := range n.values {
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
	case ObjectType:
		var sum uint64
		for k, v := range n.fields {
			sum += entryHash(k, v)
		}
		binary.LittleEndian.PutUint64(b[:], sum)
		h.Write(b[:])
	}
	return h.Sum64()
}

func entryHash(k string, v *Node) uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	h.WriteString(k)
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v.Hash())
	h.Write(b[:])
	return h.Sum64()
}

// Package ir provides the in-memory document value model for jsonlit.
//
// # Overview
//
// A document is a tree of *Node values. Every node holds exactly one of
// the following variants, reported by [Node.Type]:
//
//   - NullType: no payload
//   - BoolType: a boolean
//   - NumberType: a float64
//   - StringType: UTF-8 text
//   - ArrayType: an ordered list of nodes
//   - ObjectType: a mapping from string keys to nodes
//
// The zero Node is null, so there is no uninitialised state.
//
// # Numbers
//
// All numbers are float64. Integer sources of any width are converted on
// construction; integers beyond 2^53 in magnitude lose precision and this
// is not corrected.
//
// # Objects
//
// Objects are backed by a Go map. Keys are unique and their iteration
// order is not part of a node's value. Constructors that accept key/value
// pairs resolve repeated keys by keeping the last value written.
// Accessors which enumerate keys ([Node.Keys], [Node.Fields]) do so in
// sorted order so that output derived from them is deterministic.
//
// # Creating Nodes
//
//	flag := ir.FromBool(true)
//	num := ir.FromNumber(440)
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "pitch", Val: num},
//	})
//
// Most callers construct documents with package build rather than
// assembling nodes by hand.
//
// # Ownership and Immutability
//
// A container takes ownership of the child nodes passed to its
// constructor. Nodes have no mutating methods, so a built tree is
// immutable and may be read from several goroutines at once. Use
// [Node.Clone] to obtain an independent deep copy.
//
// # Comparison and Hashing
//
// [Equal] is structural: same variant and recursively equal payloads,
// with objects compared as mappings regardless of order. Numbers compare
// with float64 ==, so NaN is not equal to itself.
//
// [Compare] provides a total order and [Node.Hash] a hash consistent with
// Equal, for sorting and deduplication.
//
// # Text Form
//
// [Node.String] renders a deterministic literal form, for example
//
//	{"a": [1, true, null], "b": "x"}
//
// with object keys sorted. The form is accepted by package parse, so
// parsing the String of any node with finite numbers yields an equal node.
package ir

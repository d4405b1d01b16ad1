// Package parse builds document values from literal text.
//
// The grammar has the same four productions as [build] literals:
//
//	value := 'null'
//	       | '[' [value {',' value} [',']] ']'
//	       | '{' [key ':' value {',' key ':' value} [',']] '}'
//	       | leaf
//	key   := leaf
//
// A leaf is any run of text up to the next ',' ':' ']' or '}' outside
// quotes and parentheses. Leaves, including keys, are evaluated by
// [eval.Eval], so
//
//	{"width": width, "height": (width * 9.0 / 4.0)}
//
// parses against eval.Env{"width": 4.0} to {"height": 9, "width": 4}.
// Expressions with a top level ',' ':' '[' or '{', such as a ternary,
// must be parenthesized.
//
// The debug form of a node, [ir.Node.String], is valid input and
// parses back to an equal node.
package parse

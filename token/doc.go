// Package token provides tokenization of textual document literals.
//
// [Tokenize] splits a literal into structural tokens ('[', ']', '{', '}',
// ',', ':'), the keyword null, and leaf expressions. A leaf expression is
// everything up to the next structural character found outside string
// quotes and outside parentheses, so expressions containing commas,
// colons or brackets must be parenthesized:
//
//	{"height": (4.0 * 9.0 / 4.0), "xs": (list[0:2])}
//
// Tokenize also checks that brackets and braces are balanced.
package token

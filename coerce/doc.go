// Package coerce lifts scalar Go values into document leaves.
//
// Coercion is dispatched on the dynamic type of the source value:
//
//   - bool becomes a Bool node
//   - every integer width (int, int8..int64, uint, uint8..uint64, uintptr,
//     and *big.Int standing in for 128-bit integers) and both float widths
//     become a Number node holding a float64; integers beyond 2^53 in
//     magnitude lose precision
//   - string becomes a String node
//   - json.Number becomes a Number node
//   - *ir.Node passes through unchanged, so built values can be embedded
//
// New source types are added with [Register] on a [Registry] without any
// change to package ir or package build. A type may also declare its own
// capability by implementing [BoolSource], [NumberSource] or
// [StringSource]. Named types whose underlying kind is bool, numeric or
// string fall back to that kind.
//
// Values of any other type are rejected with an error wrapping
// [ErrUnsupported].
//
// Object keys use a separate capability, [Key], which renders a value as
// a string or fails with [ErrUnsupportedKey].
//
// For compile time checking, [Num], [Str] and [Bool] accept only type
// parameters in the supported sets.
package coerce

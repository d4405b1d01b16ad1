// Package libdiff computes the structural differences between two
// document values.
//
// [Diff] returns a list of [Change], one per differing position, in
// path order. Object entries are matched by key; array elements are
// aligned with a diff over per-element summaries, so an insertion in the
// middle of an array is reported as one insert rather than a cascade of
// replacements. Differing strings carry character edits when the edit
// is small relative to the strings.
package libdiff

// Package eval evaluates the scalar expressions found at leaf positions
// of a textual literal.
//
// Simple leaves are decoded directly: double quoted strings, decimal
// numbers and the keywords true and false. Everything else is compiled
// and run with github.com/expr-lang/expr against an [Env], so leaves may
// name variables, call functions or compute values:
//
//	eval.Eval(`(4.0 * 9.0 / 4.0)`, nil)       // 9.0
//	eval.Eval(`width * 2`, eval.Env{"width": 4}) // 8
//
// Besides the expr builtins, expressions may call getenv(name) to read
// an OS environment variable.
package eval

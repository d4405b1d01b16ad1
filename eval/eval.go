package eval

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/signadot/jsonlit/debug"

	"github.com/expr-lang/expr"
)

var decimal = regexp.MustCompile(`^[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?$`)

// Eval returns the value of the leaf expression src.
func Eval(src string, env Env) (any, error) {
	if v, ok := simple(src); ok {
		return v, nil
	}
	m := map[string]any(env)
	if m == nil {
		m = map[string]any{}
	}
	prg, err := expr.Compile(src, exprOpts(m)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrEval, src, err)
	}
	res, err := expr.Run(prg, m)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrEval, src, err)
	}
	if debug.Eval() {
		debug.Logf("eval %s -> %T %v\n", src, res, res)
	}
	return res, nil
}

// simple decodes literals which need no expression engine.
func simple(src string) (any, bool) {
	switch src {
	case "true":
		return true, true
	case "false":
		return false, true
	case "NaN", "Inf", "+Inf", "-Inf":
		f, _ := strconv.ParseFloat(src, 64)
		return f, true
	}
	if len(src) >= 2 && src[0] == '"' {
		s, err := strconv.Unquote(src)
		if err == nil {
			return s, true
		}
		return nil, false
	}
	if !decimal.MatchString(src) {
		return nil, false
	}
	if i, err := strconv.ParseInt(src, 10, 64); err == nil {
		return i, true
	}
	f, err := strconv.ParseFloat(src, 64)
	if err != nil {
		return nil, false
	}
	return f, true
}

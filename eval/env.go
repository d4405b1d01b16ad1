package eval

import (
	"maps"
	"os"

	"github.com/expr-lang/expr"
)

// Env binds the variables visible to leaf expressions.
type Env map[string]any

// With returns a copy of env with name bound to v.
func (env Env) With(name string, v any) Env {
	res := make(Env, len(env)+1)
	maps.Copy(res, env)
	res[name] = v
	return res
}

func exprOpts(env map[string]any) []expr.Option {
	return []expr.Option{
		expr.Env(env),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

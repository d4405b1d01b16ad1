package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/signadot/jsonlit/debug"
	"github.com/signadot/jsonlit/ir"
	"github.com/signadot/jsonlit/parse"

	"github.com/scott-cotton/cli"

	"github.com/goccy/go-yaml"
)

// envFunc binds key=val in env. val is decoded as yaml and a dotted key
// binds into nested maps.
func envFunc(env map[string]any, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	var v any
	err := yaml.Unmarshal([]byte(val), &v)
	if err != nil {
		return err
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmpEnv := env
	for i, part := range parts {
		if i == n-1 {
			tmpEnv[part] = v
			break
		}
		next := tmpEnv[part]
		if next == nil {
			next = map[string]any{}
			tmpEnv[part] = next
		}
		nextEnv, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot access %s, list or scalar", strings.Join(parts[:i+1], "."))
		}
		tmpEnv = nextEnv
	}
	return nil
}

const (
	EnvEnv = "JSONLIT_ENV"
)

// loadEnvEnv returns the bindings of the object literal in $JSONLIT_ENV.
func loadEnvEnv() (map[string]any, error) {
	envEnv := os.Getenv(EnvEnv)
	if envEnv == "" {
		return nil, nil
	}
	node, err := parse.Parse([]byte(envEnv))
	if err != nil {
		return nil, fmt.Errorf("error decoding env $%s: %w", EnvEnv, err)
	}
	theEnvEnv, ok := ir.ToAny(node).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("error decoding env $%s: wrong type %s", EnvEnv, node.Type())
	}
	if debug.Eval() {
		debug.Logf("loaded env from $%s: %s\n", EnvEnv, node)
	}
	return theEnvEnv, nil
}
